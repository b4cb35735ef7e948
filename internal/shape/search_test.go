package shape

import (
	"testing"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
)

func TestSearchResult(t *testing.T) {
	hit := RawSearchHit{HelloMoonCollectionID: "abc123", CollectionName: "Mad Lads"}
	stats := &RawStats{Close: fptr(2100000000), CurrentOwnerCount: fptr(3521)}

	got := SearchResult(hit, stats, testImageURL)
	if got.CollectionID != "abc123" || got.Name != "Mad Lads" {
		t.Errorf("identity = %+v", got)
	}
	if got.Image != "https://cdn.test/collection/abc123" {
		t.Errorf("image = %q", got.Image)
	}
	if got.FloorPrice != "2.10" {
		t.Errorf("floor price = %q, want 2.10", got.FloorPrice)
	}
	if got.Holders != "3521" {
		t.Errorf("holders = %q, want 3521", got.Holders)
	}
}

func TestSearchResultWithoutStats(t *testing.T) {
	got := SearchResult(RawSearchHit{HelloMoonCollectionID: "x"}, nil, testImageURL)
	if got.FloorPrice != display.Sentinel || got.Holders != display.Sentinel {
		t.Errorf("degraded result = %+v, want sentinel metrics", got)
	}
}

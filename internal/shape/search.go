package shape

import (
	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// RawSearchHit matches one row of the collection name search.
type RawSearchHit struct {
	HelloMoonCollectionID string `json:"helloMoonCollectionId"`
	CollectionName        string `json:"collectionName"`
}

// SearchResult enriches one search hit with its stats probe. A nil stats
// row (the probe failed or returned nothing) degrades the result to
// sentinel fields rather than dropping it.
func SearchResult(hit RawSearchHit, stats *RawStats, imageURL func(id string) string) model.SearchResult {
	out := model.SearchResult{
		CollectionID: hit.HelloMoonCollectionID,
		Name:         hit.CollectionName,
		Image:        imageURL(hit.HelloMoonCollectionID),
		FloorPrice:   display.Sentinel,
		Holders:      display.Sentinel,
	}
	if stats != nil {
		out.FloorPrice = display.Coerce(stats.Close, display.SOL)
		out.Holders = display.Coerce(stats.CurrentOwnerCount, display.Count)
	}
	return out
}

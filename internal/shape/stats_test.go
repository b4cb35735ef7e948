package shape

import (
	"errors"
	"testing"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
)

func TestStats(t *testing.T) {
	rows := []RawStats{{
		Supply:            fptr(10000),
		CurrentOwnerCount: fptr(3521),
		ListingCount:      fptr(412),
		AvgPriceSol:       fptr(1.618),
		MarketCapUSD:      fptr(2500000),
		AverageWashScore:  fptr(7.134),
	}}

	got, err := Stats(rows)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if got.Supply != "10000" || got.Holders != "3521" || got.Listings != "412" {
		t.Errorf("counts = %+v", got)
	}
	if got.AvgPrice != "1.62" {
		t.Errorf("avg price = %q, want 1.62", got.AvgPrice)
	}
	if got.MarketCap != "2500000" {
		t.Errorf("market cap = %q, want 2500000", got.MarketCap)
	}
	if got.WashScore != "7.13%" {
		t.Errorf("wash score = %q, want 7.13%%", got.WashScore)
	}
	if got.FloorPrice != display.Sentinel {
		t.Errorf("floor price = %q, want sentinel before the join", got.FloorPrice)
	}
}

func TestStatsPartialRow(t *testing.T) {
	got, err := Stats([]RawStats{{Supply: fptr(5000)}})
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if got.Supply != "5000" {
		t.Errorf("supply = %q, want 5000", got.Supply)
	}
	for name, v := range map[string]string{
		"holders":   got.Holders,
		"listings":  got.Listings,
		"avgPrice":  got.AvgPrice,
		"marketCap": got.MarketCap,
		"washScore": got.WashScore,
	} {
		if v != display.Sentinel {
			t.Errorf("%s = %q, want sentinel", name, v)
		}
	}
}

func TestStatsEmpty(t *testing.T) {
	_, err := Stats(nil)
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Stats(nil) error = %v, want ShapeError", err)
	}
}

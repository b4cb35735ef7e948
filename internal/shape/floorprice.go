package shape

import (
	"time"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// RawFloorBucket matches one hourly bucket of the floor price endpoint.
type RawFloorBucket struct {
	FloorPriceLamports *float64 `json:"floorPriceLamports"`
	ListingCount       *float64 `json:"listing_count"`
	VolumeLamports     *float64 `json:"volumeLamports"`
}

// FloorPriceHistory shapes up to 24 hourly buckets. The endpoint supplies
// no per-bucket timestamp, so an approximate one is synthesized by walking
// back one hour per bucket from now. Rows whose floor price is unavailable
// stay in the table but are excluded from the chart series. An empty
// payload shapes to an empty history, not an error.
func FloorPriceHistory(buckets []RawFloorBucket, now time.Time) model.FloorPriceHistory {
	out := model.FloorPriceHistory{
		Rows:  make([]model.FloorPricePoint, 0, len(buckets)),
		Chart: []model.FloorPricePoint{},
	}
	n := len(buckets)
	for i, b := range buckets {
		point := model.FloorPricePoint{
			Timeframe:  display.Stamp(now.Add(-time.Duration(n-1-i) * time.Hour)),
			FloorPrice: display.Coerce(b.FloorPriceLamports, display.SOL),
			Listings:   display.Coerce(b.ListingCount, display.Count),
			Volume:     display.Coerce(b.VolumeLamports, display.SOL),
		}
		out.Rows = append(out.Rows, point)
		if point.FloorPrice != display.Sentinel {
			out.Chart = append(out.Chart, point)
		}
	}
	return out
}

package shape

import (
	"sort"

	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// holdingOrder fixes the canonical ascending bucket sequence. Labels are
// the upstream's exact spelling.
var holdingOrder = map[string]int{
	"< 1 Week":           1,
	"1-2 weeks":          2,
	"2-4 weeks":          3,
	"4-8 weeks":          4,
	"8 weeks - 180 days": 5,
	"> 180 days":         6,
}

// RawHoldingBucket matches one bucket of the holding-period endpoint.
type RawHoldingBucket struct {
	HoldingPeriod string   `json:"holdingPeriod"`
	Number        *float64 `json:"number"`
}

// HoldingPeriod re-orders the unordered bucket distribution into the
// canonical sequence. Buckets absent from the source are omitted, not
// zero-filled; unknown labels sort after the known ones in input order.
func HoldingPeriod(buckets []RawHoldingBucket) []model.HoldingBucket {
	out := make([]model.HoldingBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, model.HoldingBucket{
			Period:  b.HoldingPeriod,
			Holders: count(b.Number),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i].Period) < rankOf(out[j].Period)
	})
	return out
}

func rankOf(period string) int {
	if r, ok := holdingOrder[period]; ok {
		return r
	}
	return len(holdingOrder) + 1
}

package shape

import (
	"testing"
	"time"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
)

func fptr(v float64) *float64 { return &v }

func TestFloorPriceHistory(t *testing.T) {
	now := time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)

	buckets := []RawFloorBucket{
		{FloorPriceLamports: fptr(1500000000), ListingCount: fptr(12), VolumeLamports: fptr(3000000000)},
		{FloorPriceLamports: nil, ListingCount: fptr(9), VolumeLamports: fptr(1000000000)},
		{FloorPriceLamports: fptr(2000000000), ListingCount: nil, VolumeLamports: nil},
	}

	got := FloorPriceHistory(buckets, now)

	if len(got.Rows) != 3 {
		t.Fatalf("Rows length = %d, want 3", len(got.Rows))
	}

	first := got.Rows[0]
	if first.FloorPrice != "1.50" || first.Listings != "12" || first.Volume != "3.00" {
		t.Errorf("first row = %+v, want floor 1.50, listings 12, volume 3.00", first)
	}
	if first.Timeframe != display.Stamp(now.Add(-2*time.Hour)) {
		t.Errorf("first timeframe = %q, want two hours before now", first.Timeframe)
	}
	if got.Rows[2].Timeframe != display.Stamp(now) {
		t.Errorf("last timeframe = %q, want now", got.Rows[2].Timeframe)
	}

	second := got.Rows[1]
	if second.FloorPrice != display.Sentinel {
		t.Errorf("missing floor price = %q, want sentinel", second.FloorPrice)
	}

	// Rows without a floor price stay in the table but never chart.
	if len(got.Chart) != 2 {
		t.Fatalf("Chart length = %d, want 2", len(got.Chart))
	}
	for _, p := range got.Chart {
		if p.FloorPrice == display.Sentinel {
			t.Errorf("chart contains sentinel floor price row: %+v", p)
		}
	}
}

func TestFloorPriceHistoryEmpty(t *testing.T) {
	got := FloorPriceHistory(nil, time.Now())
	if len(got.Rows) != 0 || len(got.Chart) != 0 {
		t.Errorf("empty input shaped to %+v, want empty history", got)
	}
}

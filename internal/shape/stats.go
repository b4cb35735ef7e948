package shape

import (
	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// RawStats matches one row of the upstream collection stats endpoint.
// Pointer fields distinguish absent values from zero.
type RawStats struct {
	Supply            *float64 `json:"supply"`
	CurrentOwnerCount *float64 `json:"currentOwnerCount"`
	ListingCount      *float64 `json:"listingCount"`
	AvgPriceSol       *float64 `json:"avg_price_sol"`
	MarketCapUSD      *float64 `json:"market_cap_usd"`
	AverageWashScore  *float64 `json:"averageWashScore"`
	Close             *float64 `json:"close"`
}

// Stats shapes the first row of a stats payload into the headline stat
// block. Each field defaults to the sentinel independently. FloorPrice is
// left as the sentinel here; the orchestrator joins it in from the floor
// price series.
func Stats(rows []RawStats) (model.Stats, error) {
	if len(rows) == 0 {
		return model.Stats{}, emptyErr("stats")
	}
	r := rows[0]
	return model.Stats{
		Supply:     display.Coerce(r.Supply, display.Count),
		Holders:    display.Coerce(r.CurrentOwnerCount, display.Count),
		Listings:   display.Coerce(r.ListingCount, display.Count),
		AvgPrice:   display.Coerce(r.AvgPriceSol, display.Amount),
		MarketCap:  display.Coerce(r.MarketCapUSD, display.Count),
		WashScore:  display.Coerce(r.AverageWashScore, display.Percent),
		FloorPrice: display.Sentinel,
	}, nil
}

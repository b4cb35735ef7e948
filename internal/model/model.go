// Package model defines the core data structures for the collection dashboard.
package model

// SearchResult is one row of a collection name search, enriched with a
// current floor price and holder count probe.
type SearchResult struct {
	// CollectionID is the provider's opaque collection key
	CollectionID string `json:"helloMoonCollectionId"`

	// Name is the collection display name
	Name string `json:"collectionName"`

	// Image is the CDN URL for the collection's sample image
	Image string `json:"image"`

	// FloorPrice is the latest close in SOL, or the sentinel
	FloorPrice string `json:"floorPrice"`

	// Holders is the current owner count, or the sentinel
	Holders string `json:"holders"`
}

// Stats is the headline stat block for one collection.
// Every field is display-ready; missing source values carry the sentinel.
type Stats struct {
	Supply     string `json:"supply"`
	Holders    string `json:"holders"`
	Listings   string `json:"listings"`
	AvgPrice   string `json:"avgPrice"`
	MarketCap  string `json:"marketCap"`
	WashScore  string `json:"washScore"`
	FloorPrice string `json:"floorPrice"`
}

// FloorPricePoint is one hourly bucket of floor price history.
type FloorPricePoint struct {
	Timeframe  string `json:"timeframe"`
	FloorPrice string `json:"floorPrice"`
	Listings   string `json:"listings"`
	Volume     string `json:"volume"`
}

// FloorPriceHistory carries the full table rows plus the chart series.
// Chart excludes rows whose floor price is unavailable; Rows keeps them.
type FloorPriceHistory struct {
	Rows  []FloorPricePoint `json:"rows"`
	Chart []FloorPricePoint `json:"chart"`
}

// OwnersPoint is one day of the distinct-owner time series.
type OwnersPoint struct {
	Date   string `json:"date"`
	Owners int64  `json:"owners"`
}

// Holder is one entry of the top-holder table.
type Holder struct {
	Rank        int    `json:"rank"`
	Wallet      string `json:"wallet"`
	WalletShort string `json:"walletShort"`
	Amount      int64  `json:"amount"`
}

// Ownership merges the three ownership sub-fetches for one collection.
type Ownership struct {
	CurrentOwners  string        `json:"currentOwners"`
	OwnersOverTime []OwnersPoint `json:"ownersOverTime"`
	TopHolders     []Holder      `json:"topHolders"`
}

// VolatilityWindow is the converted min/max bound for one lookback window.
type VolatilityWindow struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// Volatility always carries the three fixed windows.
type Volatility struct {
	Week7  VolatilityWindow `json:"7d"`
	Week14 VolatilityWindow `json:"14d"`
	Week30 VolatilityWindow `json:"30d"`
}

// LoanMarket is the per-market loan summary row. Volume stays numeric
// (already in SOL upstream) so the chart and the totals reduction do not
// re-parse a display string; it is rounded to two decimals at shaping time.
type LoanMarket struct {
	Market          string  `json:"market"`
	Volume          float64 `json:"volumeSol"`
	Offered         int64   `json:"offered"`
	Accepted        int64   `json:"accepted"`
	Repaid          int64   `json:"repaid"`
	Liquidated      int64   `json:"liquidated"`
	UniqueLenders   int64   `json:"uniqueLenders"`
	UniqueBorrowers int64   `json:"uniqueBorrowers"`
	AvgAPY          string  `json:"avgApy"`
	AvgDurationDays string  `json:"avgDurationDays"`
}

// LoanTotals is the headline reduction over all loan markets.
type LoanTotals struct {
	Volume     float64 `json:"volume"`
	Offered    int64   `json:"offered"`
	Accepted   int64   `json:"accepted"`
	Repaid     int64   `json:"repaid"`
	Liquidated int64   `json:"liquidated"`
}

// LoanSummary carries the per-market rows; totals are derived on demand.
type LoanSummary struct {
	Markets []LoanMarket `json:"markets"`
}

// Totals reduces the per-market rows to the five headline counters.
func (s LoanSummary) Totals() LoanTotals {
	var t LoanTotals
	for _, m := range s.Markets {
		t.Offered += m.Offered
		t.Accepted += m.Accepted
		t.Repaid += m.Repaid
		t.Liquidated += m.Liquidated
		t.Volume += m.Volume
	}
	return t
}

// SharkyRow is one loan-length bucket of the Sharky default statistics.
type SharkyRow struct {
	LoanLength  string `json:"loanLength"`
	Defaults    int64  `json:"numDefaults"`
	Repaid      int64  `json:"numRepaid"`
	DefaultRate string `json:"defaultRate"`
}

// HoldingBucket is one bucket of the holding-period distribution.
type HoldingBucket struct {
	Period  string `json:"holdingPeriod"`
	Holders int64  `json:"number"`
}

// CandleHeader is the latest-bucket stat block shown above the candle table.
type CandleHeader struct {
	Supply     string `json:"supply"`
	Owners     string `json:"owners"`
	FloorPrice string `json:"floorPrice"`
	MarketCap  string `json:"marketCap"`
	AvgPrice   string `json:"avgPrice"`
	WashScore  string `json:"washScore"`
}

// CandlePoint is one numeric close for time-series charting.
type CandlePoint struct {
	Time  string  `json:"time"`
	Close float64 `json:"close"`
}

// CandleRow is one display-ready OHLC row.
type CandleRow struct {
	Time   string `json:"time"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

// Candles is the stats-with-floor-price series: a chart series in raw
// upstream order and a reversed, paginated table view.
type Candles struct {
	Header CandleHeader  `json:"header"`
	Series []CandlePoint `json:"series"`
	Rows   []CandleRow   `json:"rows"`
}

// CandlePageSize is the fixed table page size.
const CandlePageSize = 6

// TotalPages reports how many table pages the reversed row view spans.
func (c Candles) TotalPages() int {
	return (len(c.Rows) + CandlePageSize - 1) / CandlePageSize
}

// Page returns the 1-based page of the reversed row view. Out-of-range
// pages return nil.
func (c Candles) Page(n int) []CandleRow {
	if n < 1 || n > c.TotalPages() {
		return nil
	}
	reversed := make([]CandleRow, len(c.Rows))
	for i, r := range c.Rows {
		reversed[len(c.Rows)-1-i] = r
	}
	start := (n - 1) * CandlePageSize
	end := start + CandlePageSize
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[start:end]
}

// Social is the collection's social metadata.
type Social struct {
	Narrative string `json:"narrative"`
	Twitter   string `json:"twitter"`
	Discord   string `json:"discord"`
	Website   string `json:"website"`
}

// CollectionViewModel is the composite of every shaped metric category
// for one collection. It is built atomically: either every category is
// populated or the build fails as a whole.
type CollectionViewModel struct {
	CollectionID           string            `json:"helloMoonCollectionId"`
	Stats                  Stats             `json:"stats"`
	Ownership              Ownership         `json:"ownership"`
	FloorPrice             FloorPriceHistory `json:"floorPrice"`
	Social                 Social            `json:"social"`
	Volatility             Volatility        `json:"volatility"`
	DistinctOwnersOverTime []OwnersPoint     `json:"distinctOwnersOverTime"`
	HoldingPeriod          []HoldingBucket   `json:"holdingPeriod"`
	LoanSummary            LoanSummary       `json:"loanSummary"`
	StatsWithFloorPrice    Candles           `json:"statsWithFloorPrice"`
	SharkyLoanSummary      []SharkyRow       `json:"sharkyLoanSummary"`
}

// LeaderboardEntry is one collection's summary row for a ranking category.
// The ranked metric plus the secondary metrics are all display strings;
// unavailable fields carry the sentinel.
type LeaderboardEntry struct {
	CollectionID string `json:"helloMoonCollectionId"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Supply       string `json:"supply"`
	Listings     string `json:"listings"`
	FloorPrice   string `json:"floorPrice"`
	MarketCap    string `json:"marketCap"`
	Holders      string `json:"holders"`
	WashScore    string `json:"washTradingScore"`
	AvgPrice     string `json:"avgPrice"`
	Volume       string `json:"volume"`
}

// Leaderboard is the composite of all four ranking categories.
type Leaderboard struct {
	FloorPrice  []LeaderboardEntry `json:"floorPrice"`
	Volume      []LeaderboardEntry `json:"volume"`
	Holders     []LeaderboardEntry `json:"holders"`
	WashTrading []LeaderboardEntry `json:"washTrading"`
}

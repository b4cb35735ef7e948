package shape

import (
	"math"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

const secondsPerDay = 86400

// RawLoanMarket matches one per-market row of the loan summary endpoint.
type RawLoanMarket struct {
	Market                 string   `json:"market"`
	VolumeSol              *float64 `json:"volumeSol"`
	CntOffered             *float64 `json:"cntOffered"`
	CntAccepted            *float64 `json:"cntAccepted"`
	CntRepayed             *float64 `json:"cntRepayed"`
	CntLiquidated          *float64 `json:"cntLiquidated"`
	CntUniqueLenders       *float64 `json:"cntUniqueLenders"`
	CntUniqueBorrowers     *float64 `json:"cntUniqueBorrowers"`
	AvgAPY                 *float64 `json:"avgApy"`
	AvgLoanDurationSeconds *float64 `json:"avgLoanDurationSeconds"`
}

// LoanSummary shapes the per-market loan rows. Counts pass through
// unchanged; the average loan duration converts from seconds to days.
// An empty payload is a valid summary with no markets.
func LoanSummary(rows []RawLoanMarket) model.LoanSummary {
	markets := make([]model.LoanMarket, 0, len(rows))
	for _, r := range rows {
		var volume float64
		if v, ok := display.Number(r.VolumeSol); ok {
			volume = math.Round(v*100) / 100
		}
		markets = append(markets, model.LoanMarket{
			Market:          r.Market,
			Volume:          volume,
			Offered:         count(r.CntOffered),
			Accepted:        count(r.CntAccepted),
			Repaid:          count(r.CntRepayed),
			Liquidated:      count(r.CntLiquidated),
			UniqueLenders:   count(r.CntUniqueLenders),
			UniqueBorrowers: count(r.CntUniqueBorrowers),
			AvgAPY:          display.Coerce(r.AvgAPY, display.Amount),
			AvgDurationDays: display.Coerce(r.AvgLoanDurationSeconds, display.Format{Divisor: secondsPerDay, Decimals: 2}),
		})
	}
	return model.LoanSummary{Markets: markets}
}

// RawSharkyRow matches one loan-length bucket of the Sharky default stats.
type RawSharkyRow struct {
	Granularity string   `json:"granularity"`
	NumDefaults *float64 `json:"numDefaults"`
	NumRepaid   *float64 `json:"numRepaid"`
	DefaultRate *float64 `json:"defaultRate"`
}

// SharkyLoanSummary shapes the Sharky default statistics per loan length.
func SharkyLoanSummary(rows []RawSharkyRow) []model.SharkyRow {
	out := make([]model.SharkyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.SharkyRow{
			LoanLength:  r.Granularity,
			Defaults:    count(r.NumDefaults),
			Repaid:      count(r.NumRepaid),
			DefaultRate: display.Coerce(r.DefaultRate, display.Percent),
		})
	}
	return out
}

func count(raw *float64) int64 {
	v, ok := display.Number(raw)
	if !ok {
		return 0
	}
	return int64(v)
}

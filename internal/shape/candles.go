package shape

import (
	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// RawCandle matches one hourly OHLC row of the stats endpoint when queried
// at hour granularity. The first row is the newest and also carries the
// header stats.
type RawCandle struct {
	StartTime          *float64 `json:"startTime"`
	Open               *float64 `json:"open"`
	High               *float64 `json:"high"`
	Low                *float64 `json:"low"`
	Close              *float64 `json:"close"`
	Volume             *float64 `json:"volume"`
	Supply             *float64 `json:"supply"`
	CurrentOwnerCount  *float64 `json:"currentOwnerCount"`
	FloorPriceLamports *float64 `json:"floorPriceLamports"`
	MarketCapSol       *float64 `json:"marketCapSol"`
	AvgPriceSol        *float64 `json:"avg_price_sol"`
	AverageWashScore   *float64 `json:"averageWashScore"`
}

// Candles shapes up to 24 hourly OHLC rows. All four OHLC fields and the
// volume convert from lamports to SOL. The chart series keeps the raw
// upstream ordering; the table rows feed the reversed, paginated view.
func Candles(rows []RawCandle) (model.Candles, error) {
	if len(rows) == 0 {
		return model.Candles{}, emptyErr("statsWithFloorPrice")
	}

	latest := rows[0]
	out := model.Candles{
		Header: model.CandleHeader{
			Supply:     display.Coerce(latest.Supply, display.Count),
			Owners:     display.Coerce(latest.CurrentOwnerCount, display.Count),
			FloorPrice: display.Coerce(latest.FloorPriceLamports, display.SOL),
			MarketCap:  display.Coerce(latest.MarketCapSol, display.Amount),
			AvgPrice:   display.Coerce(latest.AvgPriceSol, display.Amount),
			WashScore:  display.Coerce(latest.AverageWashScore, display.Amount),
		},
		Series: make([]model.CandlePoint, 0, len(rows)),
		Rows:   make([]model.CandleRow, 0, len(rows)),
	}

	for _, r := range rows {
		if c, ok := display.Number(r.Close); ok {
			out.Series = append(out.Series, model.CandlePoint{
				Time:  display.LocalTime(r.StartTime),
				Close: c / display.LamportsPerSol,
			})
		}
		out.Rows = append(out.Rows, model.CandleRow{
			Time:   display.LocalDateTime(r.StartTime),
			Open:   display.Coerce(r.Open, display.SOL),
			High:   display.Coerce(r.High, display.SOL),
			Low:    display.Coerce(r.Low, display.SOL),
			Close:  display.Coerce(r.Close, display.SOL),
			Volume: display.Coerce(r.Volume, display.SOL),
		})
	}
	return out, nil
}

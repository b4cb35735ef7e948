package shape

import (
	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// RawVolatility matches one row of the volatility endpoint. Windows are
// keyed by lookback label ("7d", "14d", "30d"); bounds are in lamports.
type RawVolatility struct {
	Volatility map[string]RawVolatilityWindow `json:"volatility"`
}

// RawVolatilityWindow is one min/max bound pair.
type RawVolatilityWindow struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// Volatility shapes the first volatility row. The three fixed windows are
// always present in the output; a window absent from the source shapes to
// sentinel bounds.
func Volatility(rows []RawVolatility) (model.Volatility, error) {
	if len(rows) == 0 {
		return model.Volatility{}, emptyErr("volatility")
	}
	windows := rows[0].Volatility
	return model.Volatility{
		Week7:  shapeWindow(windows, "7d"),
		Week14: shapeWindow(windows, "14d"),
		Week30: shapeWindow(windows, "30d"),
	}, nil
}

func shapeWindow(windows map[string]RawVolatilityWindow, key string) model.VolatilityWindow {
	w, ok := windows[key]
	if !ok {
		return model.VolatilityWindow{Min: display.Sentinel, Max: display.Sentinel}
	}
	return model.VolatilityWindow{
		Min: display.Coerce(w.Min, display.SOL),
		Max: display.Coerce(w.Max, display.SOL),
	}
}

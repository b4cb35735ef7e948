package shape

import (
	"github.com/mr-tron/base58"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// RawOwnerCount matches one row of the current-ownership endpoint.
type RawOwnerCount struct {
	NumOwners *float64 `json:"numOwners"`
}

// RawOwnersDay matches one day of the historical-ownership endpoint.
type RawOwnersDay struct {
	Day         any      `json:"day"`
	NumDistinct *float64 `json:"numDistinct"`
}

// RawHolder matches one row of the top-holders endpoint.
type RawHolder struct {
	OwnerAccount string   `json:"ownerAccount"`
	Amount       *float64 `json:"amount"`
}

// Ownership merges the three ownership payloads. The current-owner payload
// must carry at least one row; the other two may be empty.
func Ownership(current []RawOwnerCount, history []RawOwnersDay, holders []RawHolder) (model.Ownership, error) {
	if len(current) == 0 {
		return model.Ownership{}, emptyErr("ownership")
	}

	out := model.Ownership{
		CurrentOwners:  display.Coerce(current[0].NumOwners, display.Count),
		OwnersOverTime: OwnersOverTime(history),
		TopHolders:     make([]model.Holder, 0, len(holders)),
	}

	for i, h := range holders {
		var amount int64
		if v, ok := display.Number(h.Amount); ok {
			amount = int64(v)
		}
		out.TopHolders = append(out.TopHolders, model.Holder{
			Rank:        i + 1,
			Wallet:      h.OwnerAccount,
			WalletShort: shortWallet(h.OwnerAccount),
			Amount:      amount,
		})
	}
	return out, nil
}

// OwnersOverTime shapes the historical day records into dated points for
// the distinct-owners chart.
func OwnersOverTime(history []RawOwnersDay) []model.OwnersPoint {
	points := make([]model.OwnersPoint, 0, len(history))
	for _, d := range history {
		var owners int64
		if v, ok := display.Number(d.NumDistinct); ok {
			owners = int64(v)
		}
		points = append(points, model.OwnersPoint{
			Date:   display.LocalDate(d.Day),
			Owners: owners,
		})
	}
	return points
}

// shortWallet abbreviates a wallet address for display. Addresses that do
// not decode as base58 are left untouched.
func shortWallet(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	if _, err := base58.Decode(addr); err != nil {
		return addr
	}
	return addr[:4] + ".." + addr[len(addr)-4:]
}

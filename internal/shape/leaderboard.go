package shape

import (
	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// RawBoardRow matches one row of the per-category leaderboard endpoints.
// The four endpoints disagree on field names and on whether numbers come
// as numbers or strings, so everything variable is decoded loosely and
// the aliases are resolved here.
type RawBoardRow struct {
	HelloMoonCollectionID string `json:"helloMoonCollectionId"`
	CollectionName        string `json:"collectionName"`
	Name                  string `json:"name"`
	Supply                any    `json:"supply"`
	ListingCount          any    `json:"listing_count"`
	FloorPrice            any    `json:"floorPrice"`
	MarketCapUSD          any    `json:"market_cap_usd"`
	CurrentOwnerCount     any    `json:"current_owner_count"`
	NumOwners             any    `json:"numOwners"`
	AverageWashScore      any    `json:"average_wash_score"`
	Index                 any    `json:"index"`
	AvgPrice24Hr          any    `json:"avgPrice24hr"`
	AvgPriceSol           any    `json:"avg_price_sol"`
	Volume                any    `json:"volume"`
}

// BoardRows shapes raw leaderboard rows into display entries. imageURL
// maps a collection id to its CDN image; floor price and volume convert
// from lamports, the wash score is already a percentage.
func BoardRows(rows []RawBoardRow, imageURL func(id string) string) []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		name := r.CollectionName
		if name == "" {
			name = r.Name
		}
		out = append(out, model.LeaderboardEntry{
			CollectionID: r.HelloMoonCollectionID,
			Name:         name,
			Image:        imageURL(r.HelloMoonCollectionID),
			Supply:       display.Coerce(r.Supply, display.Count),
			Listings:     display.Coerce(r.ListingCount, display.Count),
			FloorPrice:   display.Coerce(r.FloorPrice, display.SOL),
			MarketCap:    display.Coerce(r.MarketCapUSD, display.Count),
			Holders:      display.Coerce(firstPresent(r.CurrentOwnerCount, r.NumOwners), display.Count),
			WashScore:    display.Coerce(firstPresent(r.AverageWashScore, r.Index), display.Amount),
			AvgPrice:     display.Coerce(firstPresent(r.AvgPrice24Hr, r.AvgPriceSol), display.Amount),
			Volume:       display.Coerce(r.Volume, display.SOL),
		})
	}
	return out
}

func firstPresent(values ...any) any {
	for _, v := range values {
		if _, ok := display.Number(v); ok {
			return v
		}
	}
	return nil
}

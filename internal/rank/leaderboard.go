// Package rank produces the top-collections leaderboard: one ranked,
// filtered list per category, fetched concurrently and delivered
// all-or-nothing.
package rank

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/fetch"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// Category is one leaderboard ranking dimension.
type Category string

// Ranking categories.
const (
	CategoryFloorPrice  Category = "floorPrice"
	CategoryVolume      Category = "volume"
	CategoryHolders     Category = "holders"
	CategoryWashTrading Category = "washTrading"
)

// Categories lists every ranking dimension in display order.
var Categories = []Category{CategoryFloorPrice, CategoryVolume, CategoryHolders, CategoryWashTrading}

// Source is the slice of the upstream client the ranker needs.
type Source interface {
	Board(ctx context.Context, endpoint string, params map[string]any) ([]model.LeaderboardEntry, error)
}

// Fetcher selects the category-specific endpoint, fetches the raw set,
// and ranks it.
type Fetcher struct {
	source     Source
	fetchLimit int
	topN       int
}

// NewFetcher creates a leaderboard Fetcher. fetchLimit bounds the raw set
// requested per category; topN bounds the ranked output.
func NewFetcher(source Source, fetchLimit, topN int) *Fetcher {
	return &Fetcher{source: source, fetchLimit: fetchLimit, topN: topN}
}

// Fetch retrieves all four categories concurrently. One failed category
// fails the whole leaderboard; no partial board is returned.
func (f *Fetcher) Fetch(ctx context.Context) (model.Leaderboard, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		board    model.Leaderboard
	)

	for _, category := range Categories {
		wg.Add(1)
		go func(category Category) {
			defer wg.Done()

			entries, err := f.Top(ctx, category)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = &model.AggregateError{Operation: "leaderboard", Category: string(category), Err: err}
					cancel()
				}
				return
			}
			switch category {
			case CategoryFloorPrice:
				board.FloorPrice = entries
			case CategoryVolume:
				board.Volume = entries
			case CategoryHolders:
				board.Holders = entries
			case CategoryWashTrading:
				board.WashTrading = entries
			}
		}(category)
	}

	wg.Wait()
	if firstErr != nil {
		logrus.Warnf("Discarding partial leaderboard: %v", firstErr)
		return model.Leaderboard{}, firstErr
	}
	return board, nil
}

// Top fetches and ranks one category: rows whose ranked field is the
// sentinel or fails numeric parse are excluded, the rest sort descending
// by that field (stable), truncated to the top N.
func (f *Fetcher) Top(ctx context.Context, category Category) ([]model.LeaderboardEntry, error) {
	endpoint, params := f.request(category)
	entries, err := f.source.Board(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	ranked := Rank(entries, category)
	if len(ranked) > f.topN {
		ranked = ranked[:f.topN]
	}
	return ranked, nil
}

// Rank filters and orders entries for one category without truncation.
func Rank(entries []model.LeaderboardEntry, category Category) []model.LeaderboardEntry {
	key := keyFor(category)

	type scored struct {
		entry model.LeaderboardEntry
		value float64
	}
	kept := make([]scored, 0, len(entries))
	for _, e := range entries {
		raw := key(e)
		if raw == display.Sentinel || raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		kept = append(kept, scored{entry: e, value: value})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].value > kept[j].value
	})

	out := make([]model.LeaderboardEntry, len(kept))
	for i, s := range kept {
		out[i] = s.entry
	}
	return out
}

// request maps a category to its source endpoint and parameter set.
func (f *Fetcher) request(category Category) (string, map[string]any) {
	switch category {
	case CategoryFloorPrice:
		return "/nft/collection/floorprices", map[string]any{
			"limit": f.fetchLimit,
		}
	case CategoryHolders:
		return "/nft/collection/ownership/current", map[string]any{
			"limit": f.fetchLimit,
		}
	case CategoryWashTrading:
		return "/nft/collection/washtrading", map[string]any{
			"limit": f.fetchLimit,
		}
	default:
		// Volume rides the stats leaderboard endpoint.
		return "/nft/collection/leaderboard/stats", map[string]any{
			"granularity": fetch.GranularityOneDay,
			"limit":       f.fetchLimit,
		}
	}
}

// keyFor selects the ranked display field for a category.
func keyFor(category Category) func(model.LeaderboardEntry) string {
	switch category {
	case CategoryFloorPrice:
		return func(e model.LeaderboardEntry) string { return e.FloorPrice }
	case CategoryHolders:
		return func(e model.LeaderboardEntry) string { return e.Holders }
	case CategoryWashTrading:
		return func(e model.LeaderboardEntry) string { return e.WashScore }
	default:
		return func(e model.LeaderboardEntry) string { return e.Volume }
	}
}

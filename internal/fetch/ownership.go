package fetch

import (
	"context"
	"sync"

	"github.com/yourorg/nft-collection-dashboard/internal/model"
	"github.com/yourorg/nft-collection-dashboard/internal/shape"
)

// Ownership retrieves and merges the three ownership views: current owner
// count, 30 days of historical counts, and the top-holder list. The three
// sub-requests run in parallel; any one failing fails the whole fetch.
func (c *Client) Ownership(ctx context.Context, collectionID string) (model.Ownership, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error

		current []shape.RawOwnerCount
		history []shape.RawOwnersDay
		holders []shape.RawHolder
	)

	run := func(fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
			}
		}()
	}

	run(func() error {
		return c.Post(ctx, "/nft/collection/ownership/current", map[string]any{
			"helloMoonCollectionId": collectionID,
		}, &current)
	})
	run(func() error {
		return c.Post(ctx, "/nft/collection/ownership/historical", map[string]any{
			"helloMoonCollectionId": collectionID,
			"limit":                 ownershipHistoryDays,
		}, &history)
	})
	run(func() error {
		return c.Post(ctx, "/nft/collection/ownership/top-holders", map[string]any{
			"helloMoonCollectionId": collectionID,
		}, &holders)
	})

	wg.Wait()
	if firstErr != nil {
		return model.Ownership{}, firstErr
	}
	return shape.Ownership(current, history, holders)
}

// DistinctOwners retrieves the distinct-owner time series on its own,
// for the standalone owners-over-time chart.
func (c *Client) DistinctOwners(ctx context.Context, collectionID string) ([]model.OwnersPoint, error) {
	var history []shape.RawOwnersDay
	err := c.Post(ctx, "/nft/collection/ownership/historical", map[string]any{
		"helloMoonCollectionId": collectionID,
		"limit":                 ownershipHistoryDays,
	}, &history)
	if err != nil {
		return nil, err
	}
	return shape.OwnersOverTime(history), nil
}

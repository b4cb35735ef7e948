package fetch

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/nft-collection-dashboard/internal/model"
	"github.com/yourorg/nft-collection-dashboard/internal/shape"
)

// Search looks up collections by name and enriches every hit with a
// current floor price and holder count probe. The probes run in parallel;
// a failed probe degrades its row to sentinel fields instead of failing
// the search.
func (c *Client) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	var hits []shape.RawSearchHit
	err := c.Post(ctx, "/nft/collection/name", map[string]any{
		"searchStrategy": "default",
		"collectionName": query,
	}, &hits)
	if err != nil {
		return nil, err
	}

	results := make([]model.SearchResult, len(hits))
	var wg sync.WaitGroup
	for i, hit := range hits {
		wg.Add(1)
		go func(i int, hit shape.RawSearchHit) {
			defer wg.Done()

			var rows []shape.RawStats
			err := c.Post(ctx, "/nft/collection/stats", map[string]any{
				"granularity":           GranularityOneMin,
				"helloMoonCollectionId": hit.HelloMoonCollectionID,
				"limit":                 1,
			}, &rows)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"collection": hit.HelloMoonCollectionID,
				}).Warnf("Stats probe failed during search: %v", err)
				results[i] = shape.SearchResult(hit, nil, c.ImageURL)
				return
			}

			var stats *shape.RawStats
			if len(rows) > 0 {
				stats = &rows[0]
			}
			results[i] = shape.SearchResult(hit, stats, c.ImageURL)
		}(i, hit)
	}
	wg.Wait()

	return results, nil
}

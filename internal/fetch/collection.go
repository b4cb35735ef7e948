package fetch

import (
	"context"

	"github.com/yourorg/nft-collection-dashboard/internal/model"
	"github.com/yourorg/nft-collection-dashboard/internal/shape"
)

// Stats retrieves the headline stat block for one collection.
func (c *Client) Stats(ctx context.Context, collectionID string) (model.Stats, error) {
	var rows []shape.RawStats
	err := c.Post(ctx, "/nft/collection/stats", map[string]any{
		"granularity":           GranularityOneMin,
		"helloMoonCollectionId": collectionID,
		"limit":                 1,
	}, &rows)
	if err != nil {
		return model.Stats{}, err
	}
	return shape.Stats(rows)
}

// Social retrieves the collection's social metadata.
func (c *Client) Social(ctx context.Context, collectionID string) (model.Social, error) {
	var rows []shape.RawSocial
	err := c.Post(ctx, "/nft/social", map[string]any{
		"helloMoonCollectionId": collectionID,
	}, &rows)
	if err != nil {
		return model.Social{}, err
	}
	return shape.Social(rows)
}

// Volatility retrieves the floor price volatility windows.
func (c *Client) Volatility(ctx context.Context, collectionID string) (model.Volatility, error) {
	var rows []shape.RawVolatility
	err := c.Post(ctx, "/nft/collection/volatility", map[string]any{
		"helloMoonCollectionId": collectionID,
	}, &rows)
	if err != nil {
		return model.Volatility{}, err
	}
	return shape.Volatility(rows)
}

// HoldingPeriod retrieves the holder distribution by holding period,
// re-ordered into the canonical bucket sequence.
func (c *Client) HoldingPeriod(ctx context.Context, collectionID string) ([]model.HoldingBucket, error) {
	var rows []shape.RawHoldingBucket
	err := c.Post(ctx, "/nft/collection/ownership/holding-period", map[string]any{
		"helloMoonCollectionId": collectionID,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return shape.HoldingPeriod(rows), nil
}

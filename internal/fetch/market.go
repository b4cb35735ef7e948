package fetch

import (
	"context"
	"time"

	"github.com/yourorg/nft-collection-dashboard/internal/model"
	"github.com/yourorg/nft-collection-dashboard/internal/shape"
)

// FloorPriceHistory retrieves the last 24 hourly floor price buckets.
func (c *Client) FloorPriceHistory(ctx context.Context, collectionID string) (model.FloorPriceHistory, error) {
	var rows []shape.RawFloorBucket
	err := c.Post(ctx, "/nft/collection/floorprice", map[string]any{
		"helloMoonCollectionId": collectionID,
		"granularity":           GranularityOneHour,
		"limit":                 floorPriceHours,
	}, &rows)
	if err != nil {
		return model.FloorPriceHistory{}, err
	}
	return shape.FloorPriceHistory(rows, time.Now()), nil
}

// Candles retrieves 24 hourly OHLC rows with the latest stats header.
func (c *Client) Candles(ctx context.Context, collectionID string) (model.Candles, error) {
	var rows []shape.RawCandle
	err := c.Post(ctx, "/nft/collection/stats", map[string]any{
		"helloMoonCollectionId": collectionID,
		"granularity":           GranularityOneHour,
		"limit":                 floorPriceHours,
	}, &rows)
	if err != nil {
		return model.Candles{}, err
	}
	return shape.Candles(rows)
}

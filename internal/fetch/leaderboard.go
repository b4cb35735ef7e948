package fetch

import (
	"context"

	"github.com/yourorg/nft-collection-dashboard/internal/model"
	"github.com/yourorg/nft-collection-dashboard/internal/shape"
)

// Board retrieves one raw leaderboard set from a category-specific
// endpoint and shapes the rows, CDN images included. The rank package
// owns endpoint selection, filtering and ordering.
func (c *Client) Board(ctx context.Context, endpoint string, params map[string]any) ([]model.LeaderboardEntry, error) {
	var rows []shape.RawBoardRow
	if err := c.Post(ctx, endpoint, params, &rows); err != nil {
		return nil, err
	}
	return shape.BoardRows(rows, c.ImageURL), nil
}

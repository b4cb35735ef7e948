package fetch

import (
	"context"

	"github.com/yourorg/nft-collection-dashboard/internal/model"
	"github.com/yourorg/nft-collection-dashboard/internal/shape"
)

// LoanSummary retrieves the per-market loan activity summary.
func (c *Client) LoanSummary(ctx context.Context, collectionID string) (model.LoanSummary, error) {
	var rows []shape.RawLoanMarket
	err := c.Post(ctx, "/nft/loans/collection-summary", map[string]any{
		"helloMoonCollectionId": collectionID,
	}, &rows)
	if err != nil {
		return model.LoanSummary{}, err
	}
	return shape.LoanSummary(rows), nil
}

// SharkyLoanSummary retrieves the Sharky default statistics by loan length.
func (c *Client) SharkyLoanSummary(ctx context.Context, collectionID string) ([]model.SharkyRow, error) {
	var rows []shape.RawSharkyRow
	err := c.Post(ctx, "/sharky/default-stats", map[string]any{
		"helloMoonCollectionId": collectionID,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return shape.SharkyLoanSummary(rows), nil
}

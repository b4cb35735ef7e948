package orchestrate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// stubFetcher returns canned category payloads. statsErr fails the stats
// category; fetches for the holdID collection block until hold is closed.
type stubFetcher struct {
	statsErr error
	holdID   string
	hold     chan struct{}
	floor    model.FloorPriceHistory
}

func (s *stubFetcher) wait(ctx context.Context, id string) error {
	if s.hold == nil || id != s.holdID {
		return nil
	}
	select {
	case <-s.hold:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stubFetcher) Stats(ctx context.Context, id string) (model.Stats, error) {
	if err := s.wait(ctx, id); err != nil {
		return model.Stats{}, err
	}
	if s.statsErr != nil {
		return model.Stats{}, s.statsErr
	}
	return model.Stats{Supply: "10000", FloorPrice: display.Sentinel}, nil
}

func (s *stubFetcher) Ownership(ctx context.Context, id string) (model.Ownership, error) {
	if err := s.wait(ctx, id); err != nil {
		return model.Ownership{}, err
	}
	return model.Ownership{CurrentOwners: "3521"}, nil
}

func (s *stubFetcher) FloorPriceHistory(ctx context.Context, id string) (model.FloorPriceHistory, error) {
	if err := s.wait(ctx, id); err != nil {
		return model.FloorPriceHistory{}, err
	}
	return s.floor, nil
}

func (s *stubFetcher) Social(ctx context.Context, id string) (model.Social, error) {
	return model.Social{Twitter: "https://twitter.com/test"}, s.wait(ctx, id)
}

func (s *stubFetcher) Volatility(ctx context.Context, id string) (model.Volatility, error) {
	return model.Volatility{}, s.wait(ctx, id)
}

func (s *stubFetcher) DistinctOwners(ctx context.Context, id string) ([]model.OwnersPoint, error) {
	return []model.OwnersPoint{{Date: "5/1/2024", Owners: 3400}}, s.wait(ctx, id)
}

func (s *stubFetcher) HoldingPeriod(ctx context.Context, id string) ([]model.HoldingBucket, error) {
	return []model.HoldingBucket{{Period: "< 1 Week", Holders: 12}}, s.wait(ctx, id)
}

func (s *stubFetcher) LoanSummary(ctx context.Context, id string) (model.LoanSummary, error) {
	return model.LoanSummary{}, s.wait(ctx, id)
}

func (s *stubFetcher) Candles(ctx context.Context, id string) (model.Candles, error) {
	return model.Candles{}, s.wait(ctx, id)
}

func (s *stubFetcher) SharkyLoanSummary(ctx context.Context, id string) ([]model.SharkyRow, error) {
	return nil, s.wait(ctx, id)
}

func floorHistory(prices ...string) model.FloorPriceHistory {
	h := model.FloorPriceHistory{}
	for _, p := range prices {
		h.Rows = append(h.Rows, model.FloorPricePoint{FloorPrice: p})
	}
	return h
}

func TestBuild(t *testing.T) {
	fetcher := &stubFetcher{floor: floorHistory("1.80", "2.10")}
	orch := New(fetcher)

	vm, err := orch.Build(context.Background(), "abc123")
	require.NoError(t, err)
	require.NotNil(t, vm)

	assert.Equal(t, "abc123", vm.CollectionID)
	assert.Equal(t, "10000", vm.Stats.Supply)
	assert.Equal(t, "3521", vm.Ownership.CurrentOwners)
	require.Len(t, vm.DistinctOwnersOverTime, 1)

	// The stat block's floor price is joined from the newest series row.
	assert.Equal(t, "2.10", vm.Stats.FloorPrice)

	latest, ok := orch.Latest()
	require.True(t, ok)
	assert.Same(t, vm, latest)
}

func TestBuildEmptyFloorSeries(t *testing.T) {
	orch := New(&stubFetcher{})

	vm, err := orch.Build(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, display.Sentinel, vm.Stats.FloorPrice)
}

func TestBuildAllOrNothing(t *testing.T) {
	boom := errors.New("upstream unavailable")
	orch := New(&stubFetcher{statsErr: boom})

	vm, err := orch.Build(context.Background(), "abc123")
	require.Error(t, err)
	assert.Nil(t, vm)
	assert.ErrorIs(t, err, boom)

	var aggErr *model.AggregateError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, "collection", aggErr.Operation)
	assert.Equal(t, "stats", aggErr.Category)

	_, ok := orch.Latest()
	assert.False(t, ok, "no partial view-model may be committed")
}

func TestBuildLastIdentifierWins(t *testing.T) {
	fetcher := &stubFetcher{
		holdID: "first",
		hold:   make(chan struct{}),
		floor:  floorHistory("3.00"),
	}
	orch := New(fetcher)

	type result struct {
		vm  *model.CollectionViewModel
		err error
	}
	firstDone := make(chan result, 1)
	go func() {
		vm, err := orch.Build(context.Background(), "first")
		firstDone <- result{vm, err}
	}()

	// Let the first build register before starting the second.
	time.Sleep(20 * time.Millisecond)

	vm, err := orch.Build(context.Background(), "second")
	require.NoError(t, err)
	assert.Equal(t, "second", vm.CollectionID)

	close(fetcher.hold)
	first := <-firstDone
	assert.Nil(t, first.vm)
	assert.ErrorIs(t, first.err, ErrSuperseded)

	latest, ok := orch.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", latest.CollectionID)
}

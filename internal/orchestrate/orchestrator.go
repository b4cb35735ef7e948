// Package orchestrate builds the composite collection view-model. All
// metric categories are fetched concurrently and the result is
// all-or-nothing: one failed category discards everything. Overlapping
// builds for different collections resolve last-identifier-wins.
package orchestrate

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
)

// ErrSuperseded reports that a newer build started for a different
// collection before this one committed; its result was discarded.
var ErrSuperseded = errors.New("build superseded by a newer request")

// Fetcher is the slice of the upstream client the orchestrator needs.
type Fetcher interface {
	Stats(ctx context.Context, collectionID string) (model.Stats, error)
	Ownership(ctx context.Context, collectionID string) (model.Ownership, error)
	FloorPriceHistory(ctx context.Context, collectionID string) (model.FloorPriceHistory, error)
	Social(ctx context.Context, collectionID string) (model.Social, error)
	Volatility(ctx context.Context, collectionID string) (model.Volatility, error)
	DistinctOwners(ctx context.Context, collectionID string) ([]model.OwnersPoint, error)
	HoldingPeriod(ctx context.Context, collectionID string) ([]model.HoldingBucket, error)
	LoanSummary(ctx context.Context, collectionID string) (model.LoanSummary, error)
	Candles(ctx context.Context, collectionID string) (model.Candles, error)
	SharkyLoanSummary(ctx context.Context, collectionID string) ([]model.SharkyRow, error)
}

// Orchestrator coordinates concurrent category fetches and guards the
// committed view-model against stale in-flight builds.
type Orchestrator struct {
	fetcher Fetcher

	mu     sync.Mutex
	seq    uint64
	latest *model.CollectionViewModel
}

// New creates an Orchestrator over the given fetcher.
func New(fetcher Fetcher) *Orchestrator {
	return &Orchestrator{fetcher: fetcher}
}

// Build fetches every metric category for one collection concurrently
// and returns the composite view-model. The first category failure
// cancels the remaining fetches and nothing partial is kept. If a newer
// Build starts before this one commits, the stale result is dropped and
// ErrSuperseded is returned.
func (o *Orchestrator) Build(ctx context.Context, collectionID string) (*model.CollectionViewModel, error) {
	token := o.begin()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vm := &model.CollectionViewModel{CollectionID: collectionID}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(category string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = &model.AggregateError{Operation: "collection", Category: category, Err: err}
			cancel()
		}
	}

	run := func(category string, fetch func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(ctx); err != nil {
				fail(category, err)
			}
		}()
	}

	run("stats", func(ctx context.Context) error {
		stats, err := o.fetcher.Stats(ctx, collectionID)
		vm.Stats = stats
		return err
	})
	run("ownership", func(ctx context.Context) error {
		ownership, err := o.fetcher.Ownership(ctx, collectionID)
		vm.Ownership = ownership
		return err
	})
	run("floorPrice", func(ctx context.Context) error {
		floor, err := o.fetcher.FloorPriceHistory(ctx, collectionID)
		vm.FloorPrice = floor
		return err
	})
	run("social", func(ctx context.Context) error {
		social, err := o.fetcher.Social(ctx, collectionID)
		vm.Social = social
		return err
	})
	run("volatility", func(ctx context.Context) error {
		vol, err := o.fetcher.Volatility(ctx, collectionID)
		vm.Volatility = vol
		return err
	})
	run("distinctOwnersOverTime", func(ctx context.Context) error {
		owners, err := o.fetcher.DistinctOwners(ctx, collectionID)
		vm.DistinctOwnersOverTime = owners
		return err
	})
	run("holdingPeriod", func(ctx context.Context) error {
		holding, err := o.fetcher.HoldingPeriod(ctx, collectionID)
		vm.HoldingPeriod = holding
		return err
	})
	run("loanSummary", func(ctx context.Context) error {
		loans, err := o.fetcher.LoanSummary(ctx, collectionID)
		vm.LoanSummary = loans
		return err
	})
	run("statsWithFloorPrice", func(ctx context.Context) error {
		candles, err := o.fetcher.Candles(ctx, collectionID)
		vm.StatsWithFloorPrice = candles
		return err
	})
	run("sharkyLoanSummary", func(ctx context.Context) error {
		sharky, err := o.fetcher.SharkyLoanSummary(ctx, collectionID)
		vm.SharkyLoanSummary = sharky
		return err
	})

	wg.Wait()

	if firstErr != nil {
		logrus.WithFields(logrus.Fields{
			"collection": collectionID,
		}).Warnf("Discarding partial view-model: %v", firstErr)
		return nil, firstErr
	}

	// The stat block's current floor price comes from the last row of
	// the floor price series, matching the series the chart shows.
	if n := len(vm.FloorPrice.Rows); n > 0 {
		vm.Stats.FloorPrice = vm.FloorPrice.Rows[n-1].FloorPrice
	} else {
		vm.Stats.FloorPrice = display.Sentinel
	}

	if !o.commit(token, vm) {
		return nil, ErrSuperseded
	}
	return vm, nil
}

// Latest returns the most recently committed view-model, if any.
func (o *Orchestrator) Latest() (*model.CollectionViewModel, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.latest == nil {
		return nil, false
	}
	return o.latest, true
}

// begin registers a new build and returns its token. Starting a build
// invalidates every earlier in-flight one.
func (o *Orchestrator) begin() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	return o.seq
}

// commit stores the view-model only if no newer build has begun.
func (o *Orchestrator) commit(token uint64, vm *model.CollectionViewModel) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if token != o.seq {
		return false
	}
	o.latest = vm
	return true
}

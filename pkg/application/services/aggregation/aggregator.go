package aggregation

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collisionworks/partsplan/pkg/application/dto"
	"github.com/collisionworks/partsplan/pkg/domain/entities"
	"github.com/collisionworks/partsplan/pkg/domain/sources"
	"github.com/collisionworks/partsplan/pkg/infrastructure/metrics"
)

// DefaultSourceTimeout bounds each per-source lookup
const DefaultSourceTimeout = 10 * time.Second

// Config holds configuration for the offer aggregator
type Config struct {
	// SourceTimeout bounds each individual source lookup (0 = DefaultSourceTimeout)
	SourceTimeout time.Duration
}

// Aggregator fans part searches out to every configured offer source and
// collects whatever succeeds. A source failure never aborts the aggregate
// call; it is recorded as a partial failure instead.
type Aggregator struct {
	sources []sources.OfferSource
	config  Config
	logger  *zap.Logger
	metrics *metrics.SearchMetrics
}

// NewAggregator creates an offer aggregator over the given sources. Logger
// and metrics may be nil.
func NewAggregator(srcs []sources.OfferSource, config Config, logger *zap.Logger, m *metrics.SearchMetrics) *Aggregator {
	if config.SourceTimeout <= 0 {
		config.SourceTimeout = DefaultSourceTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		sources: srcs,
		config:  config,
		logger:  logger,
		metrics: m,
	}
}

// sourceOutcome is the terminal state of one source lookup
type sourceOutcome struct {
	source string
	offers []entities.SupplierOffer
	err    error
}

// Search queries every source concurrently and returns the union of their
// offers with the three single-part rankings. The call succeeds even when
// every source fails; the result then carries an empty offer list and one
// partial failure per source.
func (a *Aggregator) Search(ctx context.Context, query entities.PartQuery) (*dto.SearchResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	searchID := uuid.New()
	logger := a.logger.With(
		zap.String("search_id", searchID.String()),
		zap.String("part_name", query.PartName),
	)

	outcomes := make(chan sourceOutcome, len(a.sources))
	for _, src := range a.sources {
		go func(src sources.OfferSource) {
			srcCtx, cancel := context.WithTimeout(ctx, a.config.SourceTimeout)
			defer cancel()

			offers, err := src.Search(srcCtx, query)
			outcomes <- sourceOutcome{source: src.Name(), offers: offers, err: err}
		}(src)
	}

	// Rankings are computed only after every lookup has resolved or failed,
	// so arrival order never affects the result.
	var offers []entities.SupplierOffer
	var failures []dto.SourceFailure
	for range a.sources {
		outcome := <-outcomes
		if outcome.err != nil {
			unavailable := &entities.SourceUnavailableError{Source: outcome.source, Err: outcome.err}
			logger.Warn("offer source failed", zap.String("source", outcome.source), zap.Error(outcome.err))
			a.metrics.ObserveSourceFailure(outcome.source)
			failures = append(failures, dto.SourceFailure{Source: outcome.source, Reason: unavailable.Error()})
			continue
		}
		offers = append(offers, outcome.offers...)
	}

	// Channel receive order is nondeterministic; keep the offer union and the
	// failure list stable for callers that compare results.
	sort.Slice(offers, func(i, j int) bool {
		if offers[i].SupplierID != offers[j].SupplierID {
			return offers[i].SupplierID < offers[j].SupplierID
		}
		return offers[i].PartID < offers[j].PartID
	})
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Source < failures[j].Source
	})

	elapsed := time.Since(start)
	a.metrics.ObserveSearch(len(offers), elapsed)
	logger.Info("offer search complete",
		zap.Int("offers", len(offers)),
		zap.Int("failed_sources", len(failures)),
		zap.Duration("elapsed", elapsed),
	)

	return &dto.SearchResult{
		SearchID:        searchID,
		Query:           query,
		Offers:          offers,
		Rankings:        RankOffers(offers),
		PartialFailures: failures,
		Elapsed:         elapsed,
	}, nil
}

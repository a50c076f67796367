package aggregation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
	"github.com/collisionworks/partsplan/pkg/domain/sources"
	"github.com/collisionworks/partsplan/pkg/infrastructure/metrics"
)

// stubSource is a scriptable offer source for aggregator tests
type stubSource struct {
	name   string
	offers []entities.SupplierOffer
	err    error
	block  bool // never return until the context is cancelled
}

var _ sources.OfferSource = (*stubSource)(nil)

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Search(ctx context.Context, query entities.PartQuery) ([]entities.SupplierOffer, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

func stubOffer(supplierID string, price int64, days int) entities.SupplierOffer {
	return entities.SupplierOffer{
		SupplierID:        entities.SupplierID(supplierID),
		SupplierName:      supplierID,
		SupplierCode:      entities.SupplierCode(supplierID),
		PartID:            "PART-100",
		UnitPrice:         decimal.NewFromInt(price),
		InStock:           true,
		QuantityAvailable: 10,
		ShippingDays:      days,
		Quality:           entities.QualityStandard,
	}
}

func TestAggregator_Search_PartialFailures(t *testing.T) {
	ctx := context.Background()

	srcs := []sources.OfferSource{
		&stubSource{name: "dealer-network", err: errors.New("connection refused")},
		&stubSource{name: "salvage-exchange", err: errors.New("503 service unavailable")},
		&stubSource{name: "aftermarket-hub", offers: []entities.SupplierOffer{
			stubOffer("SUP-A", 90, 5),
			stubOffer("SUP-B", 100, 2),
		}},
	}

	agg := NewAggregator(srcs, Config{}, nil, nil)
	result, err := agg.Search(ctx, entities.PartQuery{PartName: "bumper"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(result.Offers) != 2 {
		t.Errorf("Expected 2 offers, got %d", len(result.Offers))
	}
	if len(result.PartialFailures) != 2 {
		t.Errorf("Expected 2 partial failures, got %d", len(result.PartialFailures))
	}

	cheapest := result.Rankings.CheapestOffer()
	if cheapest == nil || cheapest.SupplierID != "SUP-A" {
		t.Errorf("Expected cheapest offer from SUP-A, got %v", cheapest)
	}
	fastest := result.Rankings.FastestOffer()
	if fastest == nil || fastest.SupplierID != "SUP-B" {
		t.Errorf("Expected fastest offer from SUP-B, got %v", fastest)
	}
}

func TestAggregator_Search_AllSourcesFail(t *testing.T) {
	ctx := context.Background()

	srcs := []sources.OfferSource{
		&stubSource{name: "dealer-network", err: errors.New("timeout")},
		&stubSource{name: "salvage-exchange", err: errors.New("timeout")},
	}

	agg := NewAggregator(srcs, Config{}, nil, nil)
	result, err := agg.Search(ctx, entities.PartQuery{PartName: "hood"})
	if err != nil {
		t.Fatalf("Search must succeed even when every source fails: %v", err)
	}

	if len(result.Offers) != 0 {
		t.Errorf("Expected empty offer list, got %d offers", len(result.Offers))
	}
	if len(result.PartialFailures) != 2 {
		t.Errorf("Expected 2 partial failures, got %d", len(result.PartialFailures))
	}
}

func TestAggregator_Search_InvalidQuery(t *testing.T) {
	agg := NewAggregator(nil, Config{}, nil, nil)

	_, err := agg.Search(context.Background(), entities.PartQuery{})
	if err == nil {
		t.Fatal("Expected error for empty query")
	}

	var invalidErr *entities.InvalidQueryError
	if !errors.As(err, &invalidErr) {
		t.Errorf("Expected InvalidQueryError, got %T", err)
	}
}

func TestAggregator_Search_SourceTimeout(t *testing.T) {
	ctx := context.Background()

	srcs := []sources.OfferSource{
		&stubSource{name: "slow-source", block: true},
		&stubSource{name: "fast-source", offers: []entities.SupplierOffer{stubOffer("SUP-A", 50, 3)}},
	}

	agg := NewAggregator(srcs, Config{SourceTimeout: 20 * time.Millisecond}, nil, nil)
	result, err := agg.Search(ctx, entities.PartQuery{PartName: "fender"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(result.Offers) != 1 {
		t.Errorf("Expected 1 offer from the fast source, got %d", len(result.Offers))
	}
	if len(result.PartialFailures) != 1 {
		t.Fatalf("Expected 1 partial failure, got %d", len(result.PartialFailures))
	}
	if result.PartialFailures[0].Source != "slow-source" {
		t.Errorf("Expected failure recorded for slow-source, got %s", result.PartialFailures[0].Source)
	}
}

func TestAggregator_Search_RecordsMetrics(t *testing.T) {
	ctx := context.Background()

	srcs := []sources.OfferSource{
		&stubSource{name: "dealer-network", err: errors.New("connection refused")},
		&stubSource{name: "aftermarket-hub", offers: []entities.SupplierOffer{stubOffer("SUP-A", 90, 5)}},
	}

	m := metrics.NewSearchMetrics(prometheus.NewRegistry(), "test")
	agg := NewAggregator(srcs, Config{}, nil, m)

	if _, err := agg.Search(ctx, entities.PartQuery{PartName: "bumper"}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if _, err := agg.Search(ctx, entities.PartQuery{PartName: "hood"}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if got := testutil.ToFloat64(m.SearchesTotal); got != 2 {
		t.Errorf("Expected 2 searches recorded, got %v", got)
	}
	if got := testutil.ToFloat64(m.SourceFailuresTotal.WithLabelValues("dealer-network")); got != 2 {
		t.Errorf("Expected 2 failures recorded for dealer-network, got %v", got)
	}
}

func TestAggregator_Search_Deterministic(t *testing.T) {
	ctx := context.Background()

	srcs := []sources.OfferSource{
		&stubSource{name: "source-1", offers: []entities.SupplierOffer{stubOffer("SUP-C", 75, 4)}},
		&stubSource{name: "source-2", offers: []entities.SupplierOffer{stubOffer("SUP-A", 75, 4)}},
		&stubSource{name: "source-3", offers: []entities.SupplierOffer{stubOffer("SUP-B", 75, 4)}},
	}

	agg := NewAggregator(srcs, Config{}, nil, nil)
	query := entities.PartQuery{PartName: "grille"}

	first, err := agg.Search(ctx, query)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := agg.Search(ctx, query)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		for j := range first.Offers {
			if again.Offers[j].SupplierID != first.Offers[j].SupplierID {
				t.Fatalf("Offer order changed between identical searches: run %d position %d", i, j)
			}
		}
		for j := range first.Rankings.LowestPrice {
			if again.Rankings.LowestPrice[j].SupplierID != first.Rankings.LowestPrice[j].SupplierID {
				t.Fatalf("Ranking order changed between identical searches: run %d position %d", i, j)
			}
		}
	}

	// Equal prices and days fall back to supplier ID ordering
	if first.Rankings.LowestPrice[0].SupplierID != "SUP-A" {
		t.Errorf("Expected SUP-A first on tie, got %s", first.Rankings.LowestPrice[0].SupplierID)
	}
}

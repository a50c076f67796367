package memory

import (
	"context"
	"strings"
	"time"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
	"github.com/collisionworks/partsplan/pkg/domain/sources"
)

// CatalogEntry pairs an offer with the searchable attributes a real supplier
// feed would index. Empty fitment fields mean the entry fits any vehicle.
type CatalogEntry struct {
	PartName     string
	Category     string
	VehicleMake  string
	VehicleModel string
	YearFrom     int
	YearTo       int
	Offer        entities.SupplierOffer
}

// CatalogSource provides offers from a static in-memory catalog. Latency and
// failure injection make it usable as a stand-in for real supplier feeds in
// tests and examples.
type CatalogSource struct {
	name    string
	entries []CatalogEntry
	latency time.Duration
	failure error
}

// NewCatalogSource creates a new catalog-backed offer source
func NewCatalogSource(name string) *CatalogSource {
	return &CatalogSource{name: name}
}

// Verify interface compliance
var _ sources.OfferSource = (*CatalogSource)(nil)

// AddEntry adds a catalog entry to the source
func (s *CatalogSource) AddEntry(entry CatalogEntry) {
	s.entries = append(s.entries, entry)
}

// SetLatency makes every search take at least the given duration
func (s *CatalogSource) SetLatency(latency time.Duration) {
	s.latency = latency
}

// FailWith makes every search fail with the given error
func (s *CatalogSource) FailWith(err error) {
	s.failure = err
}

// Name identifies the source in diagnostics and logs
func (s *CatalogSource) Name() string {
	return s.name
}

// Search returns catalog offers matching the query. Part numbers match
// exactly; names and categories match case-insensitively. Vehicle fields in
// the query filter out entries whose fitment is declared and incompatible.
func (s *CatalogSource) Search(ctx context.Context, query entities.PartQuery) ([]entities.SupplierOffer, error) {
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.failure != nil {
		return nil, s.failure
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var offers []entities.SupplierOffer
	for _, entry := range s.entries {
		if matches(&entry, &query) {
			offers = append(offers, entry.Offer)
		}
	}
	return offers, nil
}

func matches(entry *CatalogEntry, query *entities.PartQuery) bool {
	return matchesAttributes(entry, query) && fitsVehicle(entry, query)
}

func matchesAttributes(entry *CatalogEntry, query *entities.PartQuery) bool {
	if query.PartNumber != "" && entry.Offer.PartNumber == query.PartNumber {
		return true
	}
	if query.PartName != "" && strings.Contains(strings.ToLower(entry.PartName), strings.ToLower(query.PartName)) {
		return true
	}
	if query.Category != "" && strings.EqualFold(entry.Category, query.Category) {
		return true
	}
	return false
}

// fitsVehicle rejects an entry only when both the query and the entry declare
// a fitment field and they disagree
func fitsVehicle(entry *CatalogEntry, query *entities.PartQuery) bool {
	if query.VehicleMake != "" && entry.VehicleMake != "" && !strings.EqualFold(entry.VehicleMake, query.VehicleMake) {
		return false
	}
	if query.VehicleModel != "" && entry.VehicleModel != "" && !strings.EqualFold(entry.VehicleModel, query.VehicleModel) {
		return false
	}
	if query.VehicleYear != 0 {
		if entry.YearFrom != 0 && query.VehicleYear < entry.YearFrom {
			return false
		}
		if entry.YearTo != 0 && query.VehicleYear > entry.YearTo {
			return false
		}
	}
	return true
}

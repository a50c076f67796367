package sources

import (
	"context"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
)

// OfferSource provides candidate offers from one supplier backend. A source
// may fail or time out independently without affecting other sources.
type OfferSource interface {
	// Name identifies the source in diagnostics and logs
	Name() string
	// Search returns zero or more offers matching the query
	Search(ctx context.Context, query entities.PartQuery) ([]entities.SupplierOffer, error)
}

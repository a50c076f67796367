package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultLineWeight is the per-unit weight assumed when a cart line does not
// specify one.
var DefaultLineWeight = decimal.NewFromInt(5)

// CartLine represents one requested part with its candidate supplier offers
type CartLine struct {
	PartID   PartID          `json:"part_id"`
	PartName string          `json:"part_name"`
	Quantity int             `json:"quantity"`
	Weight   decimal.Decimal `json:"weight"` // per-unit; zero means unspecified
	Offers   []SupplierOffer `json:"offers"`
}

// Validate checks the cart line's structural invariants
func (l *CartLine) Validate() error {
	if l.PartID == "" {
		return fmt.Errorf("cart line: part ID is required")
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("cart line %s: quantity must be positive, got %d", l.PartID, l.Quantity)
	}
	if l.Weight.IsNegative() {
		return fmt.Errorf("cart line %s: weight must not be negative", l.PartID)
	}
	if len(l.Offers) == 0 {
		return fmt.Errorf("cart line %s: at least one offer is required", l.PartID)
	}
	for i := range l.Offers {
		if err := l.Offers[i].Validate(); err != nil {
			return fmt.Errorf("cart line %s: %w", l.PartID, err)
		}
	}
	return nil
}

// UnitWeight returns the per-unit weight, substituting the default when the
// line does not specify one
func (l *CartLine) UnitWeight() decimal.Decimal {
	if l.Weight.IsZero() {
		return DefaultLineWeight
	}
	return l.Weight
}

// TotalWeight returns the weight of the full requested quantity
func (l *CartLine) TotalWeight() decimal.Decimal {
	return l.UnitWeight().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

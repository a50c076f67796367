package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied when the caller does not supply a tax rate
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// Conservative defaults substituted when a supplier has no shipping rule
var (
	DefaultShippingFlatRate = decimal.NewFromInt(15)
	DefaultShippingDays     = 7
)

// ShippingRule represents one supplier's shipping policy
type ShippingRule struct {
	SupplierCode          SupplierCode     `json:"supplier_code"`
	FlatRate              decimal.Decimal  `json:"flat_rate"`
	FreeShippingThreshold *decimal.Decimal `json:"free_shipping_threshold,omitempty"`
	PerWeightRate         decimal.Decimal  `json:"per_weight_rate"`
	PerItemRate           decimal.Decimal  `json:"per_item_rate"`
	EstimatedShippingDays int              `json:"estimated_shipping_days"`
}

// Validate checks the rule's structural invariants
func (r *ShippingRule) Validate() error {
	if r.SupplierCode == "" {
		return fmt.Errorf("shipping rule: supplier code is required")
	}
	if r.FlatRate.IsNegative() {
		return fmt.Errorf("shipping rule %s: flat rate must not be negative", r.SupplierCode)
	}
	if r.FreeShippingThreshold != nil && r.FreeShippingThreshold.IsNegative() {
		return fmt.Errorf("shipping rule %s: free shipping threshold must not be negative", r.SupplierCode)
	}
	if r.PerWeightRate.IsNegative() {
		return fmt.Errorf("shipping rule %s: per-weight rate must not be negative", r.SupplierCode)
	}
	if r.PerItemRate.IsNegative() {
		return fmt.Errorf("shipping rule %s: per-item rate must not be negative", r.SupplierCode)
	}
	if r.EstimatedShippingDays < 0 {
		return fmt.Errorf("shipping rule %s: estimated shipping days must not be negative", r.SupplierCode)
	}
	return nil
}

// DefaultShippingRule returns the conservative rule substituted for suppliers
// with no configured shipping policy
func DefaultShippingRule(code SupplierCode) ShippingRule {
	return ShippingRule{
		SupplierCode:          code,
		FlatRate:              DefaultShippingFlatRate,
		EstimatedShippingDays: DefaultShippingDays,
	}
}

package optimization

import (
	"github.com/shopspring/decimal"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
)

// ShippingCost computes the shipping charge for one supplier group under a
// rule. A subtotal at or above the free shipping threshold waives shipping
// entirely; otherwise flat, per-weight, and per-item components are additive.
// The function is pure, so the optimizer may call it for every hypothetical
// move without memoization.
func ShippingCost(rule *entities.ShippingRule, subtotal, totalWeight decimal.Decimal, itemCount int) decimal.Decimal {
	if rule.FreeShippingThreshold != nil && subtotal.GreaterThanOrEqual(*rule.FreeShippingThreshold) {
		return decimal.Zero
	}

	cost := rule.FlatRate
	if !rule.PerWeightRate.IsZero() {
		cost = cost.Add(rule.PerWeightRate.Mul(totalWeight))
	}
	if !rule.PerItemRate.IsZero() {
		cost = cost.Add(rule.PerItemRate.Mul(decimal.NewFromInt(int64(itemCount))))
	}

	if cost.IsNegative() {
		return decimal.Zero
	}
	return cost
}

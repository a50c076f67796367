package repositories

import "github.com/collisionworks/partsplan/pkg/domain/entities"

// ShippingRuleRepository provides access to per-supplier shipping policies
type ShippingRuleRepository interface {
	GetRule(code entities.SupplierCode) (*entities.ShippingRule, error)
	GetAllRules() ([]*entities.ShippingRule, error)
	LoadRules(rules []*entities.ShippingRule) error
}

package memory

import (
	"fmt"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
	"github.com/collisionworks/partsplan/pkg/domain/repositories"
)

// ShippingRuleRepository provides in-memory shipping rule storage keyed by
// supplier code
type ShippingRuleRepository struct {
	rules    []entities.ShippingRule
	rulesMap map[entities.SupplierCode]int
}

// NewShippingRuleRepository creates a new in-memory shipping rule repository
func NewShippingRuleRepository(expectedRules int) *ShippingRuleRepository {
	return &ShippingRuleRepository{
		rules:    make([]entities.ShippingRule, 0, expectedRules),
		rulesMap: make(map[entities.SupplierCode]int, expectedRules),
	}
}

// Verify interface compliance
var _ repositories.ShippingRuleRepository = (*ShippingRuleRepository)(nil)

// NewShippingRuleRepositoryFromMap builds a repository from a caller-supplied
// rule map
func NewShippingRuleRepositoryFromMap(rules map[entities.SupplierCode]entities.ShippingRule) *ShippingRuleRepository {
	repo := NewShippingRuleRepository(len(rules))
	for code, rule := range rules {
		if rule.SupplierCode == "" {
			rule.SupplierCode = code
		}
		repo.AddRule(rule)
	}
	return repo
}

// LoadRules loads rules into the repository
func (r *ShippingRuleRepository) LoadRules(rules []*entities.ShippingRule) error {
	for _, rule := range rules {
		r.AddRule(*rule)
	}
	return nil
}

// AddRule adds a rule to the repository, replacing any existing rule for the
// same supplier code
func (r *ShippingRuleRepository) AddRule(rule entities.ShippingRule) {
	if index, exists := r.rulesMap[rule.SupplierCode]; exists {
		r.rules[index] = rule
		return
	}
	r.rulesMap[rule.SupplierCode] = len(r.rules)
	r.rules = append(r.rules, rule)
}

// GetRule returns the shipping rule for a supplier code
func (r *ShippingRuleRepository) GetRule(code entities.SupplierCode) (*entities.ShippingRule, error) {
	index, exists := r.rulesMap[code]
	if !exists {
		return nil, fmt.Errorf("shipping rule not found: %s", code)
	}
	return &r.rules[index], nil
}

// GetAllRules returns all rules
func (r *ShippingRuleRepository) GetAllRules() ([]*entities.ShippingRule, error) {
	var rules []*entities.ShippingRule
	for i := range r.rules {
		rules = append(rules, &r.rules[i])
	}
	return rules, nil
}

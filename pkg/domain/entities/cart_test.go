package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartLine_Validate(t *testing.T) {
	line := CartLine{
		PartID:   "PART-100",
		PartName: "Front Bumper Cover",
		Quantity: 1,
		Offers:   []SupplierOffer{validOffer()},
	}
	if err := line.Validate(); err != nil {
		t.Fatalf("Valid cart line failed validation: %v", err)
	}

	noOffers := line
	noOffers.Offers = nil
	if err := noOffers.Validate(); err == nil {
		t.Error("Expected error for cart line with no offers")
	}

	zeroQty := line
	zeroQty.Quantity = 0
	if err := zeroQty.Validate(); err == nil {
		t.Error("Expected error for zero quantity")
	}

	negWeight := line
	negWeight.Weight = decimal.NewFromInt(-2)
	if err := negWeight.Validate(); err == nil {
		t.Error("Expected error for negative weight")
	}

	badOffer := line
	bad := validOffer()
	bad.UnitPrice = decimal.NewFromInt(-10)
	badOffer.Offers = []SupplierOffer{bad}
	if err := badOffer.Validate(); err == nil {
		t.Error("Expected offer validation to surface through the cart line")
	}
}

func TestCartLine_UnitWeight_Default(t *testing.T) {
	line := CartLine{PartID: "PART-100", Quantity: 2}

	if !line.UnitWeight().Equal(DefaultLineWeight) {
		t.Errorf("Expected default weight %s, got %s", DefaultLineWeight, line.UnitWeight())
	}

	line.Weight = decimal.NewFromFloat(2.5)
	if !line.UnitWeight().Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("Expected explicit weight 2.5, got %s", line.UnitWeight())
	}
	if !line.TotalWeight().Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected total weight 5 for qty 2, got %s", line.TotalWeight())
	}
}

func TestShippingRule_Validate(t *testing.T) {
	threshold := decimal.NewFromInt(150)
	rule := ShippingRule{
		SupplierCode:          "acme",
		FlatRate:              decimal.NewFromInt(10),
		FreeShippingThreshold: &threshold,
		EstimatedShippingDays: 3,
	}
	if err := rule.Validate(); err != nil {
		t.Fatalf("Valid rule failed validation: %v", err)
	}

	negFlat := rule
	negFlat.FlatRate = decimal.NewFromInt(-1)
	if err := negFlat.Validate(); err == nil {
		t.Error("Expected error for negative flat rate")
	}

	negThreshold := decimal.NewFromInt(-50)
	badThreshold := rule
	badThreshold.FreeShippingThreshold = &negThreshold
	if err := badThreshold.Validate(); err == nil {
		t.Error("Expected error for negative free shipping threshold")
	}

	noCode := rule
	noCode.SupplierCode = ""
	if err := noCode.Validate(); err == nil {
		t.Error("Expected error for missing supplier code")
	}
}

func TestDefaultShippingRule(t *testing.T) {
	rule := DefaultShippingRule("unknown-supplier")

	if rule.SupplierCode != "unknown-supplier" {
		t.Errorf("Expected supplier code carried through, got %s", rule.SupplierCode)
	}
	if !rule.FlatRate.IsPositive() {
		t.Error("Default rule must carry a non-zero flat rate")
	}
	if rule.EstimatedShippingDays <= 1 {
		t.Error("Default rule must carry a multi-day estimate")
	}
	if err := rule.Validate(); err != nil {
		t.Errorf("Default rule failed validation: %v", err)
	}
}

func TestPartQuery_Validate(t *testing.T) {
	var invalidErr *InvalidQueryError

	empty := PartQuery{}
	err := empty.Validate()
	if err == nil {
		t.Fatal("Expected error for empty query")
	}
	if !errors.As(err, &invalidErr) {
		t.Errorf("Expected InvalidQueryError, got %T", err)
	}

	blank := PartQuery{PartName: "   "}
	if err := blank.Validate(); err == nil {
		t.Error("Expected error for whitespace-only name")
	}

	byName := PartQuery{PartName: "bumper"}
	if err := byName.Validate(); err != nil {
		t.Errorf("Query by name should be valid: %v", err)
	}

	byNumber := PartQuery{PartNumber: "FD-8842"}
	if err := byNumber.Validate(); err != nil {
		t.Errorf("Query by number should be valid: %v", err)
	}

	byCategory := PartQuery{Category: "body"}
	if err := byCategory.Validate(); err != nil {
		t.Errorf("Query by category should be valid: %v", err)
	}
}

package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validOffer() SupplierOffer {
	return SupplierOffer{
		SupplierID:        "SUP-1",
		SupplierName:      "Acme Auto Parts",
		SupplierCode:      "acme",
		PartID:            "PART-100",
		PartNumber:        "FD-8842",
		UnitPrice:         decimal.NewFromInt(100),
		InStock:           true,
		QuantityAvailable: 10,
		ShippingDays:      3,
		Condition:         ConditionNew,
		Quality:           QualityOEM,
	}
}

func TestSupplierOffer_Validate(t *testing.T) {
	offer := validOffer()
	if err := offer.Validate(); err != nil {
		t.Fatalf("Valid offer failed validation: %v", err)
	}

	negative := validOffer()
	negative.UnitPrice = decimal.NewFromInt(-1)
	if err := negative.Validate(); err == nil {
		t.Error("Expected error for negative unit price")
	}

	noSupplier := validOffer()
	noSupplier.SupplierID = ""
	if err := noSupplier.Validate(); err == nil {
		t.Error("Expected error for missing supplier ID")
	}

	badQty := validOffer()
	badQty.QuantityAvailable = -5
	if err := badQty.Validate(); err == nil {
		t.Error("Expected error for negative quantity available")
	}

	badDays := validOffer()
	badDays.ShippingDays = -1
	if err := badDays.Validate(); err == nil {
		t.Error("Expected error for negative shipping days")
	}
}

func TestSupplierOffer_CanFulfill(t *testing.T) {
	offer := validOffer()

	if !offer.CanFulfill(10) {
		t.Error("Expected offer to fulfill quantity equal to availability")
	}
	if offer.CanFulfill(11) {
		t.Error("Expected offer to reject quantity above availability")
	}

	offer.InStock = false
	if offer.CanFulfill(1) {
		t.Error("Out-of-stock offer must never fulfill")
	}
}

func TestQualityTier_Score(t *testing.T) {
	tests := []struct {
		tier  QualityTier
		score float64
	}{
		{QualityOEM, 1.0},
		{QualityPremium, 0.9},
		{QualityStandard, 0.7},
		{QualityEconomy, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			if got := tt.tier.Score(); got != tt.score {
				t.Errorf("Expected score %v for %s, got %v", tt.score, tt.tier, got)
			}
		})
	}
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		input   string
		want    Condition
		wantErr bool
	}{
		{"new", ConditionNew, false},
		{"Used", ConditionUsed, false},
		{"REBUILT", ConditionRebuilt, false},
		{"refurbished", ConditionRefurbished, false},
		{"", ConditionNew, false},
		{"salvage", ConditionNew, true},
	}

	for _, tt := range tests {
		got, err := ParseCondition(tt.input)
		if tt.wantErr && err == nil {
			t.Errorf("ParseCondition(%q): expected error", tt.input)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ParseCondition(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseCondition(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseQualityTier(t *testing.T) {
	tests := []struct {
		input   string
		want    QualityTier
		wantErr bool
	}{
		{"oem", QualityOEM, false},
		{"Premium", QualityPremium, false},
		{"standard", QualityStandard, false},
		{"economy", QualityEconomy, false},
		{"", QualityStandard, false},
		{"bargain", QualityStandard, true},
	}

	for _, tt := range tests {
		got, err := ParseQualityTier(tt.input)
		if tt.wantErr && err == nil {
			t.Errorf("ParseQualityTier(%q): expected error", tt.input)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ParseQualityTier(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseQualityTier(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

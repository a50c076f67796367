package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PartID represents a unique part identifier
type PartID string

// SupplierID represents a unique supplier identifier
type SupplierID string

// SupplierCode is the stable key used to look up a supplier's shipping rule
type SupplierCode string

// Condition represents the physical condition of an offered part
type Condition int

const (
	ConditionNew Condition = iota
	ConditionUsed
	ConditionRebuilt
	ConditionRefurbished
)

// QualityTier represents the quality classification of an offered part
type QualityTier int

const (
	QualityOEM QualityTier = iota
	QualityPremium
	QualityStandard
	QualityEconomy
)

// String method for Condition enum
func (c Condition) String() string {
	switch c {
	case ConditionNew:
		return "New"
	case ConditionUsed:
		return "Used"
	case ConditionRebuilt:
		return "Rebuilt"
	case ConditionRefurbished:
		return "Refurbished"
	default:
		return "Unknown"
	}
}

// String method for QualityTier enum
func (q QualityTier) String() string {
	switch q {
	case QualityOEM:
		return "OEM"
	case QualityPremium:
		return "Premium"
	case QualityStandard:
		return "Standard"
	case QualityEconomy:
		return "Economy"
	default:
		return "Unknown"
	}
}

// Score returns the fixed ordinal quality score used by blended value ranking
func (q QualityTier) Score() float64 {
	switch q {
	case QualityOEM:
		return 1.0
	case QualityPremium:
		return 0.9
	case QualityStandard:
		return 0.7
	case QualityEconomy:
		return 0.5
	default:
		return 0.5
	}
}

// ParseCondition parses a condition string (case-insensitive)
func ParseCondition(s string) (Condition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new", "":
		return ConditionNew, nil
	case "used":
		return ConditionUsed, nil
	case "rebuilt":
		return ConditionRebuilt, nil
	case "refurbished":
		return ConditionRefurbished, nil
	default:
		return ConditionNew, fmt.Errorf("unknown condition: %s", s)
	}
}

// ParseQualityTier parses a quality tier string (case-insensitive)
func ParseQualityTier(s string) (QualityTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oem":
		return QualityOEM, nil
	case "premium":
		return QualityPremium, nil
	case "standard", "":
		return QualityStandard, nil
	case "economy":
		return QualityEconomy, nil
	default:
		return QualityStandard, fmt.Errorf("unknown quality tier: %s", s)
	}
}

// SupplierOffer represents one supplier's quote for one part
type SupplierOffer struct {
	SupplierID        SupplierID      `json:"supplier_id"`
	SupplierName      string          `json:"supplier_name"`
	SupplierCode      SupplierCode    `json:"supplier_code"`
	PartID            PartID          `json:"part_id"`
	PartNumber        string          `json:"part_number"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	InStock           bool            `json:"in_stock"`
	QuantityAvailable int             `json:"quantity_available"`
	ShippingDays      int             `json:"shipping_days"`
	Condition         Condition       `json:"condition"`
	Quality           QualityTier     `json:"quality"`
}

// Validate checks the offer's structural invariants
func (o *SupplierOffer) Validate() error {
	if o.SupplierID == "" {
		return fmt.Errorf("offer for part %s: supplier ID is required", o.PartID)
	}
	if o.PartID == "" {
		return fmt.Errorf("offer from supplier %s: part ID is required", o.SupplierID)
	}
	if o.UnitPrice.IsNegative() {
		return fmt.Errorf("offer %s/%s: unit price must not be negative", o.SupplierID, o.PartID)
	}
	if o.QuantityAvailable < 0 {
		return fmt.Errorf("offer %s/%s: quantity available must not be negative", o.SupplierID, o.PartID)
	}
	if o.ShippingDays < 0 {
		return fmt.Errorf("offer %s/%s: shipping days must not be negative", o.SupplierID, o.PartID)
	}
	return nil
}

// CanFulfill reports whether the offer can cover the requested quantity.
// Out-of-stock offers can never fulfill anything.
func (o *SupplierOffer) CanFulfill(quantity int) bool {
	return o.InStock && o.QuantityAvailable >= quantity
}

package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
)

// Scenario holds a complete optimization input loaded from disk
type Scenario struct {
	TaxRate       *decimal.Decimal
	ShippingRules []*entities.ShippingRule
	CartLines     []entities.CartLine
}

// Loader handles loading optimization scenarios from JSON files
type Loader struct{}

// NewLoader creates a new JSON scenario loader
func NewLoader() *Loader {
	return &Loader{}
}

// Wire records carry condition/quality as strings; everything else reuses the
// entity field shapes directly.
type offerRecord struct {
	SupplierID        string          `json:"supplier_id"`
	SupplierName      string          `json:"supplier_name"`
	SupplierCode      string          `json:"supplier_code"`
	PartID            string          `json:"part_id"`
	PartNumber        string          `json:"part_number"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	InStock           bool            `json:"in_stock"`
	QuantityAvailable int             `json:"quantity_available"`
	ShippingDays      int             `json:"shipping_days"`
	Condition         string          `json:"condition"`
	Quality           string          `json:"quality"`
}

type lineRecord struct {
	PartID   string          `json:"part_id"`
	PartName string          `json:"part_name"`
	Quantity int             `json:"quantity"`
	Weight   decimal.Decimal `json:"weight"`
	Offers   []offerRecord   `json:"offers"`
}

type scenarioFile struct {
	TaxRate       *decimal.Decimal        `json:"tax_rate,omitempty"`
	ShippingRules []entities.ShippingRule `json:"shipping_rules"`
	CartLines     []lineRecord            `json:"cart_lines"`
}

// LoadScenario loads and validates a scenario from a JSON file
func (l *Loader) LoadScenario(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file %s: %w", filename, err)
	}

	var file scenarioFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario JSON: %w", err)
	}

	scenario := &Scenario{TaxRate: file.TaxRate}

	for i := range file.ShippingRules {
		rule := file.ShippingRules[i]
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("shipping rule %d: %w", i+1, err)
		}
		scenario.ShippingRules = append(scenario.ShippingRules, &rule)
	}

	for i, record := range file.CartLines {
		line, err := parseLine(record)
		if err != nil {
			return nil, fmt.Errorf("cart line %d: %w", i+1, err)
		}
		scenario.CartLines = append(scenario.CartLines, line)
	}

	if len(scenario.CartLines) == 0 {
		return nil, fmt.Errorf("scenario has no cart lines")
	}

	return scenario, nil
}

func parseLine(record lineRecord) (entities.CartLine, error) {
	line := entities.CartLine{
		PartID:   entities.PartID(record.PartID),
		PartName: record.PartName,
		Quantity: record.Quantity,
		Weight:   record.Weight,
	}

	for i, offer := range record.Offers {
		parsed, err := parseOffer(offer)
		if err != nil {
			return line, fmt.Errorf("offer %d: %w", i+1, err)
		}
		line.Offers = append(line.Offers, parsed)
	}

	if err := line.Validate(); err != nil {
		return line, err
	}
	return line, nil
}

func parseOffer(record offerRecord) (entities.SupplierOffer, error) {
	condition, err := entities.ParseCondition(record.Condition)
	if err != nil {
		return entities.SupplierOffer{}, err
	}
	quality, err := entities.ParseQualityTier(record.Quality)
	if err != nil {
		return entities.SupplierOffer{}, err
	}

	offer := entities.SupplierOffer{
		SupplierID:        entities.SupplierID(record.SupplierID),
		SupplierName:      record.SupplierName,
		SupplierCode:      entities.SupplierCode(record.SupplierCode),
		PartID:            entities.PartID(record.PartID),
		PartNumber:        record.PartNumber,
		UnitPrice:         record.UnitPrice,
		InStock:           record.InStock,
		QuantityAvailable: record.QuantityAvailable,
		ShippingDays:      record.ShippingDays,
		Condition:         condition,
		Quality:           quality,
	}
	if err := offer.Validate(); err != nil {
		return offer, err
	}
	return offer, nil
}

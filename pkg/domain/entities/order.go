package entities

import "github.com/shopspring/decimal"

// OrderLine represents one cart line assigned to a supplier within an order
type OrderLine struct {
	PartID    PartID          `json:"part_id"`
	PartName  string          `json:"part_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OptimizedOrder represents the subset of cart lines assigned to one supplier
type OptimizedOrder struct {
	SupplierID            SupplierID      `json:"supplier_id"`
	SupplierName          string          `json:"supplier_name"`
	SupplierCode          SupplierCode    `json:"supplier_code"`
	Lines                 []OrderLine     `json:"lines"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Shipping              decimal.Decimal `json:"shipping"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"total"`
	EstimatedDeliveryDays int             `json:"estimated_delivery_days"`
}

// OptimizationResult contains the complete fulfillment plan for a cart
type OptimizationResult struct {
	Orders             []OptimizedOrder `json:"orders"`
	TotalCost          decimal.Decimal  `json:"total_cost"`
	TotalShippingCost  decimal.Decimal  `json:"total_shipping_cost"`
	TotalUnits         int              `json:"total_units"`
	SavingsVsWorstCase decimal.Decimal  `json:"savings_vs_worst_case"`
	SavingsPercentage  decimal.Decimal  `json:"savings_percentage"`
}

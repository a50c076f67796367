package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
)

// PlanRequest describes one cart to optimize. TaxRate is optional; the
// default rate is applied when nil.
type PlanRequest struct {
	Lines   []entities.CartLine `json:"lines"`
	TaxRate *decimal.Decimal    `json:"tax_rate,omitempty"`
}

// PlanResult contains a successful optimization plus any non-fatal
// diagnostics accumulated while building it
type PlanResult struct {
	PlanID      uuid.UUID                    `json:"plan_id"`
	Result      *entities.OptimizationResult `json:"result"`
	Diagnostics []entities.Diagnostic        `json:"diagnostics,omitempty"`
	Elapsed     time.Duration                `json:"elapsed"`
}

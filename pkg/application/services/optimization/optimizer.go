package optimization

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/collisionworks/partsplan/pkg/application/dto"
	"github.com/collisionworks/partsplan/pkg/domain/entities"
	"github.com/collisionworks/partsplan/pkg/domain/repositories"
	"github.com/collisionworks/partsplan/pkg/infrastructure/metrics"
)

// Optimizer partitions a cart across suppliers to minimize total landed cost
// (parts + shipping + tax). A greedy per-line seed is refined by one
// hill-climbing sweep over every alternative offer.
type Optimizer struct {
	rules   repositories.ShippingRuleRepository
	logger  *zap.Logger
	metrics *metrics.PlanMetrics
}

// NewOptimizer creates a cart optimizer backed by the given shipping rule
// repository. Logger and metrics may be nil.
func NewOptimizer(rules repositories.ShippingRuleRepository, logger *zap.Logger, m *metrics.PlanMetrics) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{
		rules:   rules,
		logger:  logger,
		metrics: m,
	}
}

// Optimize chooses exactly one in-stock offer per cart line and groups the
// result into one order per supplier. It either returns a complete plan or a
// typed error; no partial plan is ever produced.
func (o *Optimizer) Optimize(ctx context.Context, req dto.PlanRequest) (*dto.PlanResult, error) {
	start := time.Now()

	result, err := o.optimize(ctx, req)
	if err != nil {
		o.metrics.ObserveError()
		return nil, err
	}

	result.Elapsed = time.Since(start)
	o.metrics.ObserveOptimization(result.Elapsed)
	o.logger.Info("cart optimized",
		zap.String("plan_id", result.PlanID.String()),
		zap.Int("orders", len(result.Result.Orders)),
		zap.String("total_cost", result.Result.TotalCost.String()),
		zap.String("savings", result.Result.SavingsVsWorstCase.String()),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func (o *Optimizer) optimize(ctx context.Context, req dto.PlanRequest) (*dto.PlanResult, error) {
	if len(req.Lines) == 0 {
		return nil, entities.ErrEmptyCart
	}
	for i := range req.Lines {
		if err := req.Lines[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid cart: %w", err)
		}
	}

	taxRate := entities.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("tax rate must not be negative, got %s", taxRate)
	}

	rules, diagnostics, err := o.resolveRules(req.Lines)
	if err != nil {
		return nil, err
	}

	state, err := newSearchState(req.Lines, rules, taxRate)
	if err != nil {
		return nil, err
	}

	state.seedGreedy()
	totalCost, err := state.refine(ctx)
	if err != nil {
		return nil, err
	}

	orders := state.buildOrders()

	totalShipping := decimal.Zero
	for _, order := range orders {
		totalShipping = totalShipping.Add(order.Shipping)
	}
	totalUnits := 0
	for i := range req.Lines {
		totalUnits += req.Lines[i].Quantity
	}

	worst := state.worstCase()
	savings := worst.Sub(totalCost)
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	savingsPct := decimal.Zero
	if worst.IsPositive() {
		savingsPct = savings.Div(worst).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &dto.PlanResult{
		PlanID: uuid.New(),
		Result: &entities.OptimizationResult{
			Orders:             orders,
			TotalCost:          totalCost,
			TotalShippingCost:  totalShipping,
			TotalUnits:         totalUnits,
			SavingsVsWorstCase: savings,
			SavingsPercentage:  savingsPct,
		},
		Diagnostics: diagnostics,
	}, nil
}

// resolveRules looks up the shipping rule for every supplier offering into
// the cart, substituting the conservative default (and recording a
// diagnostic) for suppliers with no configured rule.
func (o *Optimizer) resolveRules(lines []entities.CartLine) (map[entities.SupplierCode]*entities.ShippingRule, []entities.Diagnostic, error) {
	codes := make(map[entities.SupplierCode]struct{})
	for i := range lines {
		for j := range lines[i].Offers {
			codes[lines[i].Offers[j].SupplierCode] = struct{}{}
		}
	}

	sorted := make([]entities.SupplierCode, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	resolved := make(map[entities.SupplierCode]*entities.ShippingRule, len(codes))
	var diagnostics []entities.Diagnostic
	for _, code := range sorted {
		rule, err := o.rules.GetRule(code)
		if err != nil {
			missing := &entities.ShippingRuleMissingError{SupplierCode: code}
			o.logger.Warn("shipping rule missing, using default", zap.String("supplier_code", string(code)))
			diagnostics = append(diagnostics, entities.NewDiagnostic(entities.DiagShippingRuleMissing, missing))

			fallback := entities.DefaultShippingRule(code)
			resolved[code] = &fallback
			continue
		}
		if err := rule.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid shipping rule for %s: %w", code, err)
		}
		resolved[code] = rule
	}

	return resolved, diagnostics, nil
}

package optimization

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
)

// searchState holds the private assignment of one optimization run. Each call
// builds its own state, so concurrent optimizations never share grouping
// structures.
type searchState struct {
	lines    []entities.CartLine
	rules    map[entities.SupplierCode]*entities.ShippingRule
	taxRate  decimal.Decimal
	feasible [][]int // per line, indices of offers that can cover the quantity
	chosen   []int   // per line, index of the currently assigned offer
}

// newSearchState validates feasibility and builds the per-line candidate
// sets. A line with no in-stock offer that covers its quantity is fatal.
func newSearchState(lines []entities.CartLine, rules map[entities.SupplierCode]*entities.ShippingRule, taxRate decimal.Decimal) (*searchState, error) {
	state := &searchState{
		lines:    lines,
		rules:    rules,
		taxRate:  taxRate,
		feasible: make([][]int, len(lines)),
		chosen:   make([]int, len(lines)),
	}

	for i := range lines {
		line := &lines[i]
		for j := range line.Offers {
			if line.Offers[j].CanFulfill(line.Quantity) {
				state.feasible[i] = append(state.feasible[i], j)
			}
		}
		if len(state.feasible[i]) == 0 {
			return nil, &entities.NoAvailableOfferError{PartID: line.PartID}
		}
	}

	return state, nil
}

// seedGreedy assigns every line independently to its cheapest feasible offer.
// Ties go to fewer shipping days, then first-seen input order. Cross-line
// shipping interaction is ignored here; refine accounts for it.
func (s *searchState) seedGreedy() {
	for i := range s.lines {
		offers := s.lines[i].Offers
		best := s.feasible[i][0]
		for _, j := range s.feasible[i][1:] {
			if offers[j].UnitPrice.LessThan(offers[best].UnitPrice) ||
				(offers[j].UnitPrice.Equal(offers[best].UnitPrice) && offers[j].ShippingDays < offers[best].ShippingDays) {
				best = j
			}
		}
		s.chosen[i] = best
	}
}

// refine runs a single hill-climbing sweep over every (line, alternative)
// pair, committing each move that strictly lowers the total landed cost.
// Bounded by O(lines x offers-per-line) evaluations; the result is never
// worse than the greedy seed.
func (s *searchState) refine(ctx context.Context) (decimal.Decimal, error) {
	best := s.totalCost()

	for i := range s.lines {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}
		for _, alt := range s.feasible[i] {
			if alt == s.chosen[i] {
				continue
			}
			prev := s.chosen[i]
			s.chosen[i] = alt
			if total := s.totalCost(); total.LessThan(best) {
				best = total
			} else {
				s.chosen[i] = prev
			}
		}
	}

	return best, nil
}

// totalCost evaluates the current assignment end to end
func (s *searchState) totalCost() decimal.Decimal {
	total := decimal.Zero
	for _, order := range s.buildOrders() {
		total = total.Add(order.Total)
	}
	return total
}

// buildOrders materializes the current assignment into one OptimizedOrder per
// supplier, recomputing subtotal, shipping, and tax through the cost model.
// Orders come back sorted by supplier ID so identical assignments always
// render identically.
func (s *searchState) buildOrders() []entities.OptimizedOrder {
	type group struct {
		offer     *entities.SupplierOffer
		lineIdxs  []int
		subtotal  decimal.Decimal
		weight    decimal.Decimal
		unitCount int
		slowest   int
	}

	groups := make(map[entities.SupplierID]*group)
	for i := range s.lines {
		line := &s.lines[i]
		offer := &line.Offers[s.chosen[i]]

		g, ok := groups[offer.SupplierID]
		if !ok {
			g = &group{offer: offer, subtotal: decimal.Zero, weight: decimal.Zero}
			groups[offer.SupplierID] = g
		}

		g.lineIdxs = append(g.lineIdxs, i)
		g.subtotal = g.subtotal.Add(lineTotal(offer.UnitPrice, line.Quantity))
		g.weight = g.weight.Add(line.TotalWeight())
		g.unitCount += line.Quantity
		if offer.ShippingDays > g.slowest {
			g.slowest = offer.ShippingDays
		}
	}

	supplierIDs := make([]entities.SupplierID, 0, len(groups))
	for id := range groups {
		supplierIDs = append(supplierIDs, id)
	}
	sort.Slice(supplierIDs, func(i, j int) bool { return supplierIDs[i] < supplierIDs[j] })

	orders := make([]entities.OptimizedOrder, 0, len(groups))
	for _, id := range supplierIDs {
		g := groups[id]
		rule := s.ruleFor(g.offer.SupplierCode)

		shipping := ShippingCost(rule, g.subtotal, g.weight, g.unitCount).Round(2)
		tax := g.subtotal.Mul(s.taxRate).Round(2)

		deliveryDays := rule.EstimatedShippingDays
		if g.slowest > deliveryDays {
			deliveryDays = g.slowest
		}

		order := entities.OptimizedOrder{
			SupplierID:            g.offer.SupplierID,
			SupplierName:          g.offer.SupplierName,
			SupplierCode:          g.offer.SupplierCode,
			Lines:                 make([]entities.OrderLine, 0, len(g.lineIdxs)),
			Subtotal:              g.subtotal,
			Shipping:              shipping,
			Tax:                   tax,
			Total:                 g.subtotal.Add(shipping).Add(tax),
			EstimatedDeliveryDays: deliveryDays,
		}
		for _, i := range g.lineIdxs {
			line := &s.lines[i]
			offer := &line.Offers[s.chosen[i]]
			order.Lines = append(order.Lines, entities.OrderLine{
				PartID:    line.PartID,
				PartName:  line.PartName,
				Quantity:  line.Quantity,
				UnitPrice: offer.UnitPrice,
				LineTotal: lineTotal(offer.UnitPrice, line.Quantity),
			})
		}
		orders = append(orders, order)
	}

	return orders
}

// worstCase prices every line at its most expensive available offer, shipped
// alone under that supplier's rule without consolidation. Used only for the
// savings report.
func (s *searchState) worstCase() decimal.Decimal {
	total := decimal.Zero
	for i := range s.lines {
		line := &s.lines[i]

		priciest := s.feasible[i][0]
		for _, j := range s.feasible[i][1:] {
			if line.Offers[j].UnitPrice.GreaterThan(line.Offers[priciest].UnitPrice) {
				priciest = j
			}
		}
		offer := &line.Offers[priciest]

		subtotal := lineTotal(offer.UnitPrice, line.Quantity)
		rule := s.ruleFor(offer.SupplierCode)
		shipping := ShippingCost(rule, subtotal, line.TotalWeight(), line.Quantity).Round(2)
		tax := subtotal.Mul(s.taxRate).Round(2)

		total = total.Add(subtotal).Add(shipping).Add(tax)
	}
	return total
}

// ruleFor returns the resolved rule for a supplier. Missing suppliers were
// already substituted with the default rule during resolution.
func (s *searchState) ruleFor(code entities.SupplierCode) *entities.ShippingRule {
	if rule, ok := s.rules[code]; ok {
		return rule
	}
	fallback := entities.DefaultShippingRule(code)
	return &fallback
}

func lineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

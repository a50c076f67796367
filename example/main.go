package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/collisionworks/partsplan/pkg/application/dto"
	"github.com/collisionworks/partsplan/pkg/application/services/aggregation"
	"github.com/collisionworks/partsplan/pkg/application/services/optimization"
	"github.com/collisionworks/partsplan/pkg/domain/entities"
	"github.com/collisionworks/partsplan/pkg/domain/sources"
	"github.com/collisionworks/partsplan/pkg/infrastructure/metrics"
	rulerepo "github.com/collisionworks/partsplan/pkg/infrastructure/repositories/memory"
	catalog "github.com/collisionworks/partsplan/pkg/infrastructure/sources/memory"
)

func main() {
	ctx := context.Background()

	// Three supplier catalogs, one of them slow
	acme := catalog.NewCatalogSource("acme-catalog")
	rapid := catalog.NewCatalogSource("rapid-catalog")
	salvage := catalog.NewCatalogSource("salvage-catalog")
	salvage.SetLatency(50 * time.Millisecond)

	setupCatalogs(acme, rapid, salvage)

	registry := prometheus.NewRegistry()
	searchMetrics := metrics.NewSearchMetrics(registry, "example")
	planMetrics := metrics.NewPlanMetrics(registry, "example")

	// Search for a bumper across every source
	aggregator := aggregation.NewAggregator(
		[]sources.OfferSource{acme, rapid, salvage},
		aggregation.Config{SourceTimeout: 2 * time.Second},
		nil, searchMetrics,
	)

	fmt.Println("🔍 Searching for front bumper cover...")
	search, err := aggregator.Search(ctx, entities.PartQuery{PartName: "front bumper"})
	if err != nil {
		fmt.Printf("❌ Search failed: %v\n", err)
		return
	}

	fmt.Printf("Found %d offers (%d sources failed)\n", len(search.Offers), len(search.PartialFailures))
	if cheapest := search.Rankings.CheapestOffer(); cheapest != nil {
		fmt.Printf("  Cheapest: %s at $%s\n", cheapest.SupplierName, cheapest.UnitPrice.StringFixed(2))
	}
	if fastest := search.Rankings.FastestOffer(); fastest != nil {
		fmt.Printf("  Fastest:  %s in %d days\n", fastest.SupplierName, fastest.ShippingDays)
	}
	if best := search.Rankings.BestValueOffer(); best != nil {
		fmt.Printf("  Best value: %s (%s)\n", best.SupplierName, best.Quality)
	}
	fmt.Println()

	// Optimize a two-line repair cart using the search results
	ruleRepo := rulerepo.NewShippingRuleRepositoryFromMap(shippingRules())
	optimizer := optimization.NewOptimizer(ruleRepo, nil, planMetrics)

	cart := []entities.CartLine{
		{
			PartID:   "FB-2019-CIV",
			PartName: "Front Bumper Cover",
			Quantity: 1,
			Weight:   decimal.NewFromFloat(8.2),
			Offers:   search.Offers,
		},
		{
			PartID:   "HL-2019-CIV-L",
			PartName: "Headlight Assembly (Left)",
			Quantity: 1,
			Weight:   decimal.NewFromFloat(3.1),
			Offers:   headlightOffers(),
		},
	}

	fmt.Println("🛒 Optimizing cart across suppliers...")
	plan, err := optimizer.Optimize(ctx, dto.PlanRequest{Lines: cart})
	if err != nil {
		fmt.Printf("❌ Optimization failed: %v\n", err)
		return
	}

	fmt.Printf("📊 Plan: %d supplier orders, total $%s\n",
		len(plan.Result.Orders), plan.Result.TotalCost.StringFixed(2))
	for _, order := range plan.Result.Orders {
		fmt.Printf("  %s: %d line(s), subtotal $%s, shipping $%s, ~%d days\n",
			order.SupplierName, len(order.Lines),
			order.Subtotal.StringFixed(2), order.Shipping.StringFixed(2),
			order.EstimatedDeliveryDays)
	}
	fmt.Printf("💰 Savings vs worst case: $%s (%s%%)\n",
		plan.Result.SavingsVsWorstCase.StringFixed(2),
		plan.Result.SavingsPercentage.StringFixed(1))

	if families, err := registry.Gather(); err == nil {
		fmt.Printf("📈 Recorded %d metric families for this run\n", len(families))
	}
}

func setupCatalogs(acme, rapid, salvage *catalog.CatalogSource) {
	acme.AddEntry(catalog.CatalogEntry{
		PartName: "Front Bumper Cover",
		Category: "body",
		Offer: entities.SupplierOffer{
			SupplierID: "SUP-ACME", SupplierName: "Acme Auto Parts", SupplierCode: "acme",
			PartID: "FB-2019-CIV", PartNumber: "71101-TBA-A00",
			UnitPrice: decimal.NewFromFloat(189.99), InStock: true, QuantityAvailable: 4,
			ShippingDays: 3, Condition: entities.ConditionNew, Quality: entities.QualityOEM,
		},
	})
	rapid.AddEntry(catalog.CatalogEntry{
		PartName: "Front Bumper Cover",
		Category: "body",
		Offer: entities.SupplierOffer{
			SupplierID: "SUP-RAPID", SupplierName: "Rapid Parts Co", SupplierCode: "rapid",
			PartID: "FB-2019-CIV", PartNumber: "71101-TBA-A00",
			UnitPrice: decimal.NewFromFloat(154.25), InStock: true, QuantityAvailable: 2,
			ShippingDays: 2, Condition: entities.ConditionNew, Quality: entities.QualityPremium,
		},
	})
	salvage.AddEntry(catalog.CatalogEntry{
		PartName: "Front Bumper Cover",
		Category: "body",
		Offer: entities.SupplierOffer{
			SupplierID: "SUP-SALV", SupplierName: "Valley Salvage", SupplierCode: "salvage",
			PartID: "FB-2019-CIV", PartNumber: "71101-TBA-A00",
			UnitPrice: decimal.NewFromFloat(89.00), InStock: true, QuantityAvailable: 1,
			ShippingDays: 6, Condition: entities.ConditionUsed, Quality: entities.QualityEconomy,
		},
	})
}

func headlightOffers() []entities.SupplierOffer {
	return []entities.SupplierOffer{
		{
			SupplierID: "SUP-ACME", SupplierName: "Acme Auto Parts", SupplierCode: "acme",
			PartID: "HL-2019-CIV-L", PartNumber: "33150-TBA-A01",
			UnitPrice: decimal.NewFromFloat(312.40), InStock: true, QuantityAvailable: 2,
			ShippingDays: 3, Condition: entities.ConditionNew, Quality: entities.QualityOEM,
		},
		{
			SupplierID: "SUP-RAPID", SupplierName: "Rapid Parts Co", SupplierCode: "rapid",
			PartID: "HL-2019-CIV-L", PartNumber: "33150-TBA-A01",
			UnitPrice: decimal.NewFromFloat(289.99), InStock: true, QuantityAvailable: 5,
			ShippingDays: 2, Condition: entities.ConditionNew, Quality: entities.QualityStandard,
		},
	}
}

func shippingRules() map[entities.SupplierCode]entities.ShippingRule {
	freeOver200 := decimal.NewFromInt(200)
	return map[entities.SupplierCode]entities.ShippingRule{
		"acme": {
			FlatRate:              decimal.NewFromFloat(12.50),
			FreeShippingThreshold: &freeOver200,
			EstimatedShippingDays: 3,
		},
		"rapid": {
			FlatRate:              decimal.NewFromFloat(8.00),
			PerWeightRate:         decimal.NewFromFloat(0.45),
			EstimatedShippingDays: 2,
		},
		"salvage": {
			FlatRate:              decimal.NewFromFloat(25.00),
			EstimatedShippingDays: 7,
		},
	}
}

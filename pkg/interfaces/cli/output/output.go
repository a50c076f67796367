package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/collisionworks/partsplan/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate creates output in the specified format
func Generate(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.PlanResult, config Config) error {
	plan := result.Result

	fmt.Printf("📊 Fulfillment Plan Summary\n")
	fmt.Printf("===========================\n\n")

	fmt.Printf("Supplier Orders: %d\n", len(plan.Orders))
	fmt.Printf("Total Units: %d\n", plan.TotalUnits)
	fmt.Printf("Total Cost: $%s\n", plan.TotalCost.StringFixed(2))
	fmt.Printf("Total Shipping: $%s\n", plan.TotalShippingCost.StringFixed(2))
	fmt.Printf("Savings vs Worst Case: $%s (%s%%)\n",
		plan.SavingsVsWorstCase.StringFixed(2), plan.SavingsPercentage.StringFixed(1))
	fmt.Printf("Optimization Time: %v\n\n", result.Elapsed)

	for _, order := range plan.Orders {
		fmt.Printf("📦 %s (%s) - delivery in ~%d days\n",
			order.SupplierName, order.SupplierID, order.EstimatedDeliveryDays)
		fmt.Printf("%-15s %-30s %-6s %-12s %-12s\n",
			"Part ID", "Part Name", "Qty", "Unit Price", "Line Total")
		fmt.Printf("%-15s %-30s %-6s %-12s %-12s\n",
			"---------------", "------------------------------", "------", "------------", "------------")
		for _, line := range order.Lines {
			fmt.Printf("%-15s %-30s %-6d $%-11s $%-11s\n",
				line.PartID, line.PartName, line.Quantity,
				line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
		}
		fmt.Printf("Subtotal: $%s  Shipping: $%s  Tax: $%s  Total: $%s\n\n",
			order.Subtotal.StringFixed(2), order.Shipping.StringFixed(2),
			order.Tax.StringFixed(2), order.Total.StringFixed(2))
	}

	if len(result.Diagnostics) > 0 {
		fmt.Printf("⚠️  Warnings:\n")
		for _, diag := range result.Diagnostics {
			fmt.Printf("  [%s] %s\n", diag.Code, diag.Message)
		}
		fmt.Println()
	}

	if config.Verbose {
		fmt.Printf("Plan ID: %s\n", result.PlanID)
	}

	if config.OutputDir != "" {
		return writeFile(result, config.OutputDir, "plan.json")
	}
	return nil
}

// generateJSONOutput creates machine-readable JSON output
func generateJSONOutput(result *dto.PlanResult, config Config) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	fmt.Println(string(data))

	if config.OutputDir != "" {
		return writeFile(result, config.OutputDir, "plan.json")
	}
	return nil
}

func writeFile(result *dto.PlanResult, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/collisionworks/partsplan/pkg/application/dto"
	"github.com/collisionworks/partsplan/pkg/application/services/optimization"
	"github.com/collisionworks/partsplan/pkg/infrastructure/logging"
	"github.com/collisionworks/partsplan/pkg/infrastructure/metrics"
	"github.com/collisionworks/partsplan/pkg/infrastructure/repositories/memory"
	"github.com/collisionworks/partsplan/pkg/interfaces/cli/loader"
	"github.com/collisionworks/partsplan/pkg/interfaces/cli/output"
)

// Config holds the CLI configuration
type Config struct {
	ScenarioFile string
	Format       string
	OutputDir    string
	Verbose      bool
	Help         bool
}

// OptimizeCommand runs a cart optimization from a scenario file
type OptimizeCommand struct {
	config Config
}

// NewOptimizeCommand creates a new optimize command
func NewOptimizeCommand(config Config) *OptimizeCommand {
	return &OptimizeCommand{config: config}
}

// Execute runs the command
func (c *OptimizeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		printUsage()
		return nil
	}
	if c.config.ScenarioFile == "" {
		printUsage()
		return fmt.Errorf("a scenario file is required")
	}

	scenario, err := loader.NewLoader().LoadScenario(c.config.ScenarioFile)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ruleRepo := memory.NewShippingRuleRepository(len(scenario.ShippingRules))
	if err := ruleRepo.LoadRules(scenario.ShippingRules); err != nil {
		return fmt.Errorf("failed to load shipping rules: %w", err)
	}

	planMetrics := metrics.NewPlanMetrics(prometheus.DefaultRegisterer, "partsplan")
	optimizer := optimization.NewOptimizer(ruleRepo, logging.FromContext(ctx), planMetrics)
	result, err := optimizer.Optimize(ctx, dto.PlanRequest{
		Lines:   scenario.CartLines,
		TaxRate: scenario.TaxRate,
	})
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	return output.Generate(result, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

func printUsage() {
	fmt.Println(`partsplan - multi-supplier parts fulfillment optimizer

Usage:
  partsplan -scenario <file.json> [options]

Options:
  -scenario string   Path to a JSON scenario file (cart lines, offers, shipping rules)
  -format string     Output format: text, json (default "text")
  -output string     Directory to write plan.json into (optional)
  -verbose           Enable verbose output
  -help              Show this help message

The scenario file supplies the cart lines with their candidate supplier
offers, the per-supplier shipping rules, and an optional tax rate.`)
}

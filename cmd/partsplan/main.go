package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/collisionworks/partsplan/pkg/infrastructure/logging"
	"github.com/collisionworks/partsplan/pkg/interfaces/cli/commands"
)

func main() {
	// Environment defaults, overridable by flags
	_ = godotenv.Load()

	var (
		scenarioFile = flag.String("scenario", "", "Path to JSON scenario file")
		format       = flag.String("format", envOr("PARTSPLAN_FORMAT", "text"), "Output format: text, json")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		logLevel     = flag.String("log-level", envOr("PARTSPLAN_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if err := logging.Init(logging.Config{
		Level:       *logLevel,
		Environment: envOr("PARTSPLAN_ENV", "development"),
		ServiceName: "partsplan",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logging.Sync() }()

	config := commands.Config{
		ScenarioFile: *scenarioFile,
		Format:       *format,
		OutputDir:    *outputDir,
		Verbose:      *verbose,
		Help:         *help,
	}

	cmd := commands.NewOptimizeCommand(config)
	ctx := logging.WithContext(context.Background(), logging.L())

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

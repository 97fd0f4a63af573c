package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ochairo/depsentry/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/depsentry/internal/domain-orchestrators"
	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
	ifgateways "github.com/ochairo/depsentry/internal/domain/interfaces/gateways"
	yamladapter "github.com/ochairo/depsentry/internal/external-adapters/yaml"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "sbom":
		runSBOM(ctx, os.Args[2:])
	case "score":
		runScore(ctx, os.Args[2:])
	case "detect":
		runDetect(ctx, os.Args[2:])
	case "report":
		runReport(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`depsentry - Supply chain security analysis

Usage:
  depsentry <command> [options]

Commands:
  sbom    Build an SBOM from project dependencies and analyze it
  score   Compute a composite dependency risk score from evidence
  detect  Run supply-chain attack detection over dependency changes
  report  Assemble the full executive/technical analysis report

Use "depsentry <command> --help" for more information about a command.`)
}

// loadConfig reads the analysis configuration, falling back to the
// built-in defaults when no file is given.
func loadConfig(path string) (entities.AnalysisConfig, error) {
	if path == "" {
		return entities.DefaultConfig(), nil
	}
	return yamladapter.NewConfigLoader().LoadFile(path)
}

// buildOrchestrator wires adapters, services and the orchestrator.
// Advisory data comes from an optional local JSON database and,
// if enabled, live OSV lookups per ecosystem.
func buildOrchestrator(cfg entities.AnalysisConfig, advisoriesPath string, osv bool, logger interfaces.Logger) (*orchestrators.AnalysisOrchestrator, error) {
	sources := make([]ifgateways.VulnerabilitySource, 0)

	if advisoriesPath != "" {
		source, err := loadAdvisories(advisoriesPath)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	if osv {
		for _, ecosystem := range []string{"npm", "pypi", "maven", "nuget", "go-modules", "cargo"} {
			sources = append(sources, gateways.NewOSVSource(ecosystem))
		}
	}

	federation := gateways.NewFederation(cfg, logger, sources...)
	return orchestrators.NewAnalysisOrchestrator(cfg, federation, logger)
}

// loadAdvisories reads a local advisory database: a JSON object mapping
// "name@version" to a list of vulnerability records.
func loadAdvisories(path string) (*gateways.StaticSource, error) {
	//nolint:gosec // G304: path is a caller-supplied advisory database
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read advisories: %w", err)
	}

	var advisory map[string][]entities.VulnerabilityRecord
	if err := json.Unmarshal(data, &advisory); err != nil {
		return nil, fmt.Errorf("failed to parse advisories: %w", err)
	}

	return gateways.NewStaticSource("local", advisory), nil
}

// readJSONFile decodes a JSON input file into out.
func readJSONFile(path string, out interface{}) error {
	//nolint:gosec // G304: path is a caller-supplied input file
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// printJSON writes the result record as indented JSON on stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

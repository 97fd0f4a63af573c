package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
)

func runSBOM(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("sbom", flag.ExitOnError)
	var (
		depsPath       = fs.String("deps", "", "Path to project dependencies JSON (ecosystem -> entries)")
		advisoriesPath = fs.String("advisories", "", "Path to local advisory database JSON")
		configPath     = fs.String("config", "", "Path to analysis config YAML")
		osv            = fs.Bool("osv", false, "Also query the OSV API for each component")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: depsentry sbom [options]

Build an SBOM from per-ecosystem dependency declarations and run license
classification, vulnerability propagation and version-maturity analysis.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  depsentry sbom --deps deps.json
  depsentry sbom --deps deps.json --advisories advisories.json --osv
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *depsPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --deps is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := executeSBOM(ctx, *depsPath, *advisoriesPath, *configPath, *osv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeSBOM(ctx context.Context, depsPath, advisoriesPath, configPath string, osv bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var projectDependencies map[string][]entities.DependencyEntry
	if err := readJSONFile(depsPath, &projectDependencies); err != nil {
		return err
	}

	orchestrator, err := buildOrchestrator(cfg, advisoriesPath, osv, &interfaces.StderrLogger{})
	if err != nil {
		return err
	}

	return printJSON(orchestrator.SBOMAnalysis(ctx, projectDependencies))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
)

func runDetect(_ context.Context, args []string) {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	var (
		changesPath = fs.String("changes", "", "Path to dependency changes JSON")
		configPath  = fs.String("config", "", "Path to analysis config YAML")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: depsentry detect [options]

Run the four supply-chain attack heuristics over a dependency change
snapshot: behavioral anomalies, typosquatting, malicious code patterns
and maintainer compromise.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  depsentry detect --changes changes.json
  depsentry detect --changes changes.json --config analysis.yaml
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *changesPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --changes is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := executeDetect(*changesPath, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeDetect(changesPath, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var changes entities.DependencyChanges
	if err := readJSONFile(changesPath, &changes); err != nil {
		return err
	}

	orchestrator, err := buildOrchestrator(cfg, "", false, &interfaces.StderrLogger{})
	if err != nil {
		return err
	}

	return printJSON(orchestrator.SupplyChainAttackDetection(changes))
}

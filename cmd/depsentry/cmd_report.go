package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
)

func runReport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	var (
		depsPath       = fs.String("deps", "", "Path to project dependencies JSON")
		evidencePath   = fs.String("evidence", "", "Path to package evidence JSON")
		changesPath    = fs.String("changes", "", "Path to dependency changes JSON")
		advisoriesPath = fs.String("advisories", "", "Path to local advisory database JSON")
		configPath     = fs.String("config", "", "Path to analysis config YAML")
		osv            = fs.Bool("osv", false, "Also query the OSV API for each component")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: depsentry report [options]

Assemble the full analysis report: executive summary, technical details,
risk heat map, compliance mapping and remediation roadmap. Each input is
optional; its analysis runs only when supplied.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  depsentry report --deps deps.json --advisories advisories.json
  depsentry report --deps deps.json --evidence evidence.json --changes changes.json
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *depsPath == "" && *evidencePath == "" && *changesPath == "" {
		fmt.Fprintf(os.Stderr, "Error: at least one of --deps, --evidence or --changes is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := executeReport(ctx, *depsPath, *evidencePath, *changesPath, *advisoriesPath, *configPath, *osv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeReport(ctx context.Context, depsPath, evidencePath, changesPath, advisoriesPath, configPath string, osv bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var projectDependencies map[string][]entities.DependencyEntry
	if depsPath != "" {
		if err := readJSONFile(depsPath, &projectDependencies); err != nil {
			return err
		}
	}

	var evidence *entities.PackageEvidence
	if evidencePath != "" {
		evidence = &entities.PackageEvidence{}
		if err := readJSONFile(evidencePath, evidence); err != nil {
			return err
		}
	}

	var changes *entities.DependencyChanges
	if changesPath != "" {
		changes = &entities.DependencyChanges{}
		if err := readJSONFile(changesPath, changes); err != nil {
			return err
		}
	}

	orchestrator, err := buildOrchestrator(cfg, advisoriesPath, osv, &interfaces.StderrLogger{})
	if err != nil {
		return err
	}

	return printJSON(orchestrator.FullReport(ctx, projectDependencies, evidence, changes))
}

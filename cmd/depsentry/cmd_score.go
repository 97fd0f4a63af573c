package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/depsentry/internal/domain-adapters/gateways"
	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
)

func runScore(_ context.Context, args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	var (
		evidencePath = fs.String("evidence", "", "Path to package evidence JSON")
		configPath   = fs.String("config", "", "Path to analysis config YAML")
		artifactPath = fs.String("artifact", "", "Package artifact to verify (optional)")
		sigPath      = fs.String("signature", "", "Detached GPG signature for the artifact")
		keyringPath  = fs.String("keyring", "", "Armored public keyring for verification")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: depsentry score [options]

Compute the composite dependency risk score for one package's evidence.
If an artifact, signature and keyring are given, the signature is
verified first and the result feeds the supply-chain integrity facet.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  depsentry score --evidence evidence.json
  depsentry score --evidence evidence.json --artifact pkg.tgz --signature pkg.tgz.asc --keyring keys.asc
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *evidencePath == "" {
		fmt.Fprintf(os.Stderr, "Error: --evidence is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := executeScore(*evidencePath, *configPath, *artifactPath, *sigPath, *keyringPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeScore(evidencePath, configPath, artifactPath, sigPath, keyringPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var evidence entities.PackageEvidence
	if err := readJSONFile(evidencePath, &evidence); err != nil {
		return err
	}

	logger := &interfaces.StderrLogger{}

	// Verified signature evidence overrides the caller-supplied flag
	if artifactPath != "" && sigPath != "" && keyringPath != "" {
		checker := gateways.NewIntegrityChecker(logger)
		evidence.Integrity = checker.AttestSignature(evidence.Integrity, artifactPath, sigPath, keyringPath)
	}

	orchestrator, err := buildOrchestrator(cfg, "", false, logger)
	if err != nil {
		return err
	}

	return printJSON(orchestrator.DependencyRiskScoring(evidence))
}

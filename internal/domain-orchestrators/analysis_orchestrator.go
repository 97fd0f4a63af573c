// Package orchestrators coordinates services for complete analysis use cases.
package orchestrators

import (
	"context"
	"fmt"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
	"github.com/ochairo/depsentry/internal/domain/interfaces/gateways"
	"github.com/ochairo/depsentry/internal/domain/services"
)

// AnalysisOrchestrator exposes the three independent analysis entry
// points consumed by the API layer, plus full-report assembly. Each call
// is a single synchronous call graph with no retained resources.
type AnalysisOrchestrator struct {
	builder     *services.SBOMBuilder
	classifier  *services.LicenseClassifier
	propagation *services.PropagationEngine
	scorer      *services.RiskScorer
	detector    *services.AttackDetector
	reporter    *services.ReportGenerator
}

// NewAnalysisOrchestrator wires the analysis services from one
// configuration and one federated vulnerability lookup.
func NewAnalysisOrchestrator(cfg entities.AnalysisConfig, federation gateways.VulnerabilityFederation, logger interfaces.Logger) (*AnalysisOrchestrator, error) {
	detector, err := services.NewAttackDetector(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build attack detector: %w", err)
	}

	return &AnalysisOrchestrator{
		builder:     services.NewSBOMBuilder(logger),
		classifier:  services.NewLicenseClassifier(cfg),
		propagation: services.NewPropagationEngine(federation, cfg, logger),
		scorer:      services.NewRiskScorer(cfg),
		detector:    detector,
		reporter:    services.NewReportGenerator(),
	}, nil
}

// SBOMAnalysis builds the SBOM for the project's raw dependency
// declarations and runs license classification, vulnerability
// propagation and version-maturity flagging over it.
func (o *AnalysisOrchestrator) SBOMAnalysis(ctx context.Context, projectDependencies map[string][]entities.DependencyEntry) *entities.SBOMAnalysis {
	sbom := o.builder.Build(projectDependencies)

	return &entities.SBOMAnalysis{
		SBOM:               sbom,
		LicenseAudit:       o.classifier.Classify(sbom),
		Propagation:        o.propagation.Propagate(ctx, sbom),
		HighRiskComponents: o.builder.AssessVersionRisk(sbom),
	}
}

// DependencyRiskScoring computes the composite risk score for one
// package's evidence bundle.
func (o *AnalysisOrchestrator) DependencyRiskScoring(evidence entities.PackageEvidence) entities.RiskAssessment {
	return o.scorer.Score(evidence)
}

// SupplyChainAttackDetection runs the attack heuristics over a
// dependency change snapshot.
func (o *AnalysisOrchestrator) SupplyChainAttackDetection(changes entities.DependencyChanges) entities.DetectionResult {
	return o.detector.Detect(changes)
}

// FullReport runs every analysis the caller supplied input for and
// assembles the combined report. Nil inputs skip their analysis.
func (o *AnalysisOrchestrator) FullReport(ctx context.Context, projectDependencies map[string][]entities.DependencyEntry, evidence *entities.PackageEvidence, changes *entities.DependencyChanges) entities.AnalysisReport {
	var sbomAnalysis *entities.SBOMAnalysis
	if projectDependencies != nil {
		sbomAnalysis = o.SBOMAnalysis(ctx, projectDependencies)
	}

	var risk *entities.RiskAssessment
	if evidence != nil {
		assessment := o.DependencyRiskScoring(*evidence)
		risk = &assessment
	}

	var detection *entities.DetectionResult
	if changes != nil {
		result := o.SupplyChainAttackDetection(*changes)
		detection = &result
	}

	return o.reporter.GenerateReport(sbomAnalysis, risk, detection)
}

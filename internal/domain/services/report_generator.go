package services

import (
	"fmt"
	"time"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

// ReportGenerator assembles the outputs of the analysis components into
// an executive/technical report. Pure aggregation and formatting over
// its inputs; no external I/O.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport builds the full analysis report. Any of the three
// inputs may be nil when that analysis was not run.
func (g *ReportGenerator) GenerateReport(sbomAnalysis *entities.SBOMAnalysis, risk *entities.RiskAssessment, detection *entities.DetectionResult) entities.AnalysisReport {
	overall := overallScore(sbomAnalysis, risk, detection)

	return entities.AnalysisReport{
		GeneratedAt:      time.Now().UTC(),
		ExecutiveSummary: g.executiveSummary(overall, sbomAnalysis, risk, detection),
		TechnicalDetails: entities.TechnicalDetails{
			SBOMAnalysis:   sbomAnalysis,
			RiskAssessment: risk,
			Detection:      detection,
		},
		RiskHeatMap:      g.heatMap(sbomAnalysis, risk),
		ComplianceMatrix: complianceMatrix(),
		RemediationPlan:  g.remediationPlan(overall, sbomAnalysis, detection),
	}
}

func (g *ReportGenerator) executiveSummary(overall float64, sbomAnalysis *entities.SBOMAnalysis, risk *entities.RiskAssessment, detection *entities.DetectionResult) entities.ExecutiveSummary {
	summary := entities.ExecutiveSummary{
		RiskCategory: entities.RiskCategory(overall),
		OverallScore: overall,
		KeyFindings:  make([]string, 0),
	}

	if sbomAnalysis != nil {
		summary.TotalComponents = len(sbomAnalysis.SBOM.Components)
		summary.VulnerableCount = len(sbomAnalysis.Propagation.DirectVulnerabilities)
		summary.LicenseRiskLevel = sbomAnalysis.LicenseAudit.RiskLevel

		if summary.VulnerableCount > 0 {
			summary.KeyFindings = append(summary.KeyFindings,
				fmt.Sprintf("%d of %d components have known vulnerabilities", summary.VulnerableCount, summary.TotalComponents))
		}
		if affected := len(sbomAnalysis.Propagation.TransitiveVulnerabilities); affected > 0 {
			summary.KeyFindings = append(summary.KeyFindings,
				fmt.Sprintf("%d dependents are transitively affected", affected))
		}
		if nonCompliant := len(sbomAnalysis.LicenseAudit.NonCompliant); nonCompliant > 0 {
			summary.KeyFindings = append(summary.KeyFindings,
				fmt.Sprintf("%d components carry restrictive licenses", nonCompliant))
		}
		if flagged := len(sbomAnalysis.HighRiskComponents); flagged > 0 {
			summary.KeyFindings = append(summary.KeyFindings,
				fmt.Sprintf("%d components flagged high risk by version maturity", flagged))
		}
	}

	if risk != nil {
		summary.KeyFindings = append(summary.KeyFindings,
			fmt.Sprintf("Dependency risk score %.1f (%s) for %s", risk.Score, risk.RiskLevel, risk.Package))
	}

	if detection != nil {
		summary.AttackProbability = detection.AttackProbability
		if len(detection.ThreatIndicators) > 0 {
			summary.KeyFindings = append(summary.KeyFindings,
				fmt.Sprintf("%d active threat indicators, attack probability %.0f/100",
					len(detection.ThreatIndicators), detection.AttackProbability))
		}
	}

	return summary
}

// heatMap buckets packages into the fixed three-tier risk view:
// critical and high categories land in the high_risk bucket.
func (g *ReportGenerator) heatMap(sbomAnalysis *entities.SBOMAnalysis, risk *entities.RiskAssessment) entities.RiskHeatMap {
	heatMap := entities.RiskHeatMap{
		HighRisk:   entities.HeatMapBucket{Label: "high_risk", Packages: make([]string, 0)},
		MediumRisk: entities.HeatMapBucket{Label: "medium_risk", Packages: make([]string, 0)},
		LowRisk:    entities.HeatMapBucket{Label: "low_risk", Packages: make([]string, 0)},
	}

	seen := make(map[string]bool)
	place := func(pkg, category string) {
		if pkg == "" || seen[pkg] {
			return
		}
		seen[pkg] = true
		switch category {
		case "critical", "high":
			heatMap.HighRisk.Packages = append(heatMap.HighRisk.Packages, pkg)
		case "medium":
			heatMap.MediumRisk.Packages = append(heatMap.MediumRisk.Packages, pkg)
		default:
			heatMap.LowRisk.Packages = append(heatMap.LowRisk.Packages, pkg)
		}
	}

	if risk != nil {
		place(risk.Package, risk.RiskLevel)
	}

	if sbomAnalysis != nil {
		for _, dv := range sbomAnalysis.Propagation.DirectVulnerabilities {
			place(dv.Component.Name, dv.Severity.String())
		}
		for _, hr := range sbomAnalysis.HighRiskComponents {
			place(hr.Component, hr.RiskLevel)
		}
		for _, c := range sbomAnalysis.SBOM.Components {
			place(c.Name, "low")
		}
	}

	return heatMap
}

// complianceMatrix is the static mapping from analysis outputs to the
// compliance-framework controls they evidence.
func complianceMatrix() []entities.ComplianceMapping {
	return []entities.ComplianceMapping{
		{Framework: "NIST SSDF", Control: "PW.4 - Reuse well-secured software", Coverage: "Dependency risk scoring and license audit"},
		{Framework: "NIST SSDF", Control: "RV.1 - Identify vulnerabilities", Coverage: "Federated vulnerability lookup and propagation analysis"},
		{Framework: "SLSA", Control: "Provenance and build integrity", Coverage: "Supply-chain integrity evidence (signatures, reproducible builds)"},
		{Framework: "ISO 27001", Control: "A.5.21 - ICT supply chain security", Coverage: "SBOM inventory and attack detection heuristics"},
		{Framework: "SOC 2", Control: "CC9.2 - Vendor and third-party risk", Coverage: "Composite dependency risk assessment"},
	}
}

// remediationPlan buckets fixed remediation guidance by urgency,
// promoting items when the findings warrant it.
func (g *ReportGenerator) remediationPlan(overall float64, sbomAnalysis *entities.SBOMAnalysis, detection *entities.DetectionResult) entities.RemediationRoadmap {
	plan := entities.RemediationRoadmap{
		Immediate: make([]string, 0),
		ShortTerm: make([]string, 0),
		LongTerm:  make([]string, 0),
	}

	if sbomAnalysis != nil && len(sbomAnalysis.Propagation.DirectVulnerabilities) > 0 {
		plan.Immediate = append(plan.Immediate, "Upgrade or replace components with known vulnerabilities")
	}
	if detection != nil && len(detection.ThreatIndicators) > 0 {
		plan.Immediate = append(plan.Immediate, "Investigate active threat indicators before the next deployment")
	}
	if overall >= 75 {
		plan.Immediate = append(plan.Immediate, "Escalate to security review; block releases until critical findings are resolved")
	}

	plan.ShortTerm = append(plan.ShortTerm,
		"Pin dependency versions and enable lockfile integrity checks",
		"Resolve unknown and restrictive licenses with legal review")
	plan.LongTerm = append(plan.LongTerm,
		"Adopt signed, reproducible builds for first-party packages",
		"Establish continuous SBOM generation and drift monitoring")

	return plan
}

// overallScore folds the available analysis outputs into one [0,100]
// value for the executive summary.
func overallScore(sbomAnalysis *entities.SBOMAnalysis, risk *entities.RiskAssessment, detection *entities.DetectionResult) float64 {
	overall := 0.0

	if risk != nil && risk.Score > overall {
		overall = risk.Score
	}
	if detection != nil && detection.AttackProbability > overall {
		overall = detection.AttackProbability
	}
	if sbomAnalysis != nil {
		for _, dv := range sbomAnalysis.Propagation.DirectVulnerabilities {
			if s := severityScore(dv.Severity); s > overall {
				overall = s
			}
		}
	}

	return clampScore(overall)
}

// severityScore maps a severity level onto the [0,100] score scale.
func severityScore(s entities.Severity) float64 {
	switch s {
	case entities.SeverityCritical:
		return 90
	case entities.SeverityHigh:
		return 70
	case entities.SeverityMedium:
		return 40
	case entities.SeverityLow:
		return 20
	default:
		return 10
	}
}

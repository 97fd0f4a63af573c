package services

import (
	"strings"
	"testing"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

func sampleSBOMAnalysis() *entities.SBOMAnalysis {
	return &entities.SBOMAnalysis{
		SBOM: &entities.SBOMDocument{
			Components: []entities.Component{
				{Name: "left-pad", Version: "1.3.0", Ecosystem: "npm", License: "MIT"},
				{Name: "lodash", Version: "4.17.20", Ecosystem: "npm", License: "MIT"},
				{Name: "app", Version: "1.0.0", Ecosystem: "npm", License: "MIT"},
			},
		},
		LicenseAudit: entities.LicenseAudit{RiskLevel: "low"},
		Propagation: entities.PropagationResult{
			DirectVulnerabilities: []entities.DirectVulnerability{
				{
					Component: entities.Component{Name: "lodash", Version: "4.17.20", Ecosystem: "npm"},
					Severity:  entities.SeverityCritical,
				},
			},
			TransitiveVulnerabilities: []entities.TransitiveVulnerability{
				{VulnerableComponent: "lodash", AffectedComponent: "app", Severity: entities.SeverityCritical, Depth: 1},
			},
		},
		HighRiskComponents: []entities.HighRiskComponent{
			{Component: "left-pad", Version: "0.9.0", RiskLevel: "high", Reason: "Pre-1.0 version"},
		},
	}
}

// Test the full report against a complete set of analysis inputs
func TestReportGenerator_GenerateReport(t *testing.T) {
	generator := NewReportGenerator()

	risk := &entities.RiskAssessment{Package: "lodash", Score: 62, RiskLevel: "high"}
	detection := &entities.DetectionResult{
		AttackProbability: 35,
		ThreatIndicators: []entities.ThreatIndicator{
			{Category: CategoryTyposquatting, Package: "lodasq", Severity: entities.SeverityHigh},
		},
	}

	report := generator.GenerateReport(sampleSBOMAnalysis(), risk, detection)

	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}

	summary := report.ExecutiveSummary
	if summary.TotalComponents != 3 {
		t.Errorf("TotalComponents = %d, want 3", summary.TotalComponents)
	}
	if summary.VulnerableCount != 1 {
		t.Errorf("VulnerableCount = %d, want 1", summary.VulnerableCount)
	}
	if summary.LicenseRiskLevel != "low" {
		t.Errorf("LicenseRiskLevel = %s, want low", summary.LicenseRiskLevel)
	}
	if summary.AttackProbability != 35 {
		t.Errorf("AttackProbability = %v, want 35", summary.AttackProbability)
	}

	// Critical direct vulnerability dominates: 90 over risk 62 and detection 35
	if summary.OverallScore != 90 {
		t.Errorf("OverallScore = %v, want 90", summary.OverallScore)
	}
	if summary.RiskCategory != "critical" {
		t.Errorf("RiskCategory = %s, want critical", summary.RiskCategory)
	}

	if len(summary.KeyFindings) == 0 {
		t.Fatal("KeyFindings is empty")
	}

	if report.TechnicalDetails.RiskAssessment == nil || report.TechnicalDetails.RiskAssessment.Package != "lodash" {
		t.Error("TechnicalDetails.RiskAssessment not carried through")
	}
	if len(report.ComplianceMatrix) != 5 {
		t.Errorf("ComplianceMatrix = %d rows, want 5", len(report.ComplianceMatrix))
	}
}

// Test report generation when every input is absent
func TestReportGenerator_GenerateReport_AllNil(t *testing.T) {
	generator := NewReportGenerator()

	report := generator.GenerateReport(nil, nil, nil)

	if report.ExecutiveSummary.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", report.ExecutiveSummary.OverallScore)
	}
	if report.ExecutiveSummary.RiskCategory != "low" {
		t.Errorf("RiskCategory = %s, want low", report.ExecutiveSummary.RiskCategory)
	}
	if len(report.ExecutiveSummary.KeyFindings) != 0 {
		t.Errorf("KeyFindings = %v, want empty", report.ExecutiveSummary.KeyFindings)
	}
	if len(report.RemediationPlan.Immediate) != 0 {
		t.Errorf("Immediate = %v, want empty", report.RemediationPlan.Immediate)
	}
	if len(report.RemediationPlan.ShortTerm) == 0 || len(report.RemediationPlan.LongTerm) == 0 {
		t.Error("ShortTerm and LongTerm guidance should always be present")
	}
}

// Test heat map bucketing and deduplication
func TestReportGenerator_HeatMap(t *testing.T) {
	generator := NewReportGenerator()

	risk := &entities.RiskAssessment{Package: "lodash", Score: 55, RiskLevel: "high"}
	report := generator.GenerateReport(sampleSBOMAnalysis(), risk, nil)

	heatMap := report.RiskHeatMap

	// lodash placed once (risk assessment wins over its vulnerability entry),
	// left-pad flagged by version maturity
	wantHigh := []string{"lodash", "left-pad"}
	if len(heatMap.HighRisk.Packages) != len(wantHigh) {
		t.Fatalf("HighRisk = %v, want %v", heatMap.HighRisk.Packages, wantHigh)
	}
	for i, pkg := range wantHigh {
		if heatMap.HighRisk.Packages[i] != pkg {
			t.Errorf("HighRisk[%d] = %s, want %s", i, heatMap.HighRisk.Packages[i], pkg)
		}
	}

	if len(heatMap.LowRisk.Packages) != 1 || heatMap.LowRisk.Packages[0] != "app" {
		t.Errorf("LowRisk = %v, want [app]", heatMap.LowRisk.Packages)
	}

	total := len(heatMap.HighRisk.Packages) + len(heatMap.MediumRisk.Packages) + len(heatMap.LowRisk.Packages)
	if total != 3 {
		t.Errorf("Heat map placed %d packages, want 3 unique", total)
	}
}

// Test remediation escalation for high overall scores
func TestReportGenerator_RemediationEscalation(t *testing.T) {
	generator := NewReportGenerator()

	detection := &entities.DetectionResult{
		AttackProbability: 80,
		ThreatIndicators: []entities.ThreatIndicator{
			{Category: CategoryCodeInjection, Package: "evil-helper", Severity: entities.SeverityHigh},
		},
	}

	report := generator.GenerateReport(nil, nil, detection)

	escalated := false
	for _, action := range report.RemediationPlan.Immediate {
		if strings.Contains(action, "Escalate") {
			escalated = true
		}
	}
	if !escalated {
		t.Errorf("Immediate = %v, want escalation entry for score >= 75", report.RemediationPlan.Immediate)
	}
}

// Test severity to score mapping used for the overall score
func TestSeverityScore(t *testing.T) {
	tests := []struct {
		severity entities.Severity
		want     float64
	}{
		{entities.SeverityCritical, 90},
		{entities.SeverityHigh, 70},
		{entities.SeverityMedium, 40},
		{entities.SeverityLow, 20},
		{entities.SeverityInfo, 10},
	}

	for _, tt := range tests {
		if got := severityScore(tt.severity); got != tt.want {
			t.Errorf("severityScore(%s) = %v, want %v", tt.severity, got, tt.want)
		}
	}
}

package entities

import "time"

// LicenseAudit buckets every SBOM component by license compliance.
type LicenseAudit struct {
	Compliant    []LicenseFinding `json:"compliant"`
	NonCompliant []LicenseFinding `json:"non_compliant"`
	Unknown      []LicenseFinding `json:"unknown"`
	RiskLevel    string           `json:"risk_level"`
}

// LicenseFinding is one component's license classification.
type LicenseFinding struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	License   string `json:"license"`
	Reason    string `json:"reason,omitempty"`
}

// HighRiskComponent flags a component considered risky independent of
// any advisory, with the rule that flagged it.
type HighRiskComponent struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	RiskLevel string `json:"risk_level"`
	Reason    string `json:"reason"`
}

// SBOMAnalysis is the result of the sbomAnalysis entry point: the built
// document plus license audit, propagation analysis and pre-release flags.
type SBOMAnalysis struct {
	SBOM               *SBOMDocument       `json:"sbom"`
	LicenseAudit       LicenseAudit        `json:"license_audit"`
	Propagation        PropagationResult   `json:"propagation"`
	HighRiskComponents []HighRiskComponent `json:"high_risk_components"`
}

// ExecutiveSummary is the top-level view of one analysis run.
type ExecutiveSummary struct {
	RiskCategory      string   `json:"risk_category"`
	OverallScore      float64  `json:"overall_score"`
	TotalComponents   int      `json:"total_components"`
	VulnerableCount   int      `json:"vulnerable_count"`
	AttackProbability float64  `json:"attack_probability"`
	LicenseRiskLevel  string   `json:"license_risk_level"`
	KeyFindings       []string `json:"key_findings"`
}

// HeatMapBucket groups packages by risk category for the heat map view.
type HeatMapBucket struct {
	Label    string   `json:"label"`
	Packages []string `json:"packages"`
}

// RiskHeatMap is the fixed three-bucket risk view.
type RiskHeatMap struct {
	HighRisk   HeatMapBucket `json:"high_risk"`
	MediumRisk HeatMapBucket `json:"medium_risk"`
	LowRisk    HeatMapBucket `json:"low_risk"`
}

// ComplianceMapping ties one compliance framework control to the parts
// of the analysis that evidence it.
type ComplianceMapping struct {
	Framework string `json:"framework"`
	Control   string `json:"control"`
	Coverage  string `json:"coverage"`
}

// RemediationRoadmap buckets remediation actions by urgency.
type RemediationRoadmap struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// TechnicalDetails is the full-fidelity dump backing the executive view.
type TechnicalDetails struct {
	SBOMAnalysis   *SBOMAnalysis    `json:"sbom_analysis,omitempty"`
	RiskAssessment *RiskAssessment  `json:"risk_assessment,omitempty"`
	Detection      *DetectionResult `json:"detection,omitempty"`
}

// AnalysisReport is the assembled output of a full analysis run.
// Pure aggregation over the other result records; no external I/O.
type AnalysisReport struct {
	GeneratedAt      time.Time           `json:"generated_at"`
	ExecutiveSummary ExecutiveSummary    `json:"executive_summary"`
	TechnicalDetails TechnicalDetails    `json:"technical_details"`
	RiskHeatMap      RiskHeatMap         `json:"risk_heat_map"`
	ComplianceMatrix []ComplianceMapping `json:"compliance_matrix"`
	RemediationPlan  RemediationRoadmap  `json:"remediation_plan"`
}

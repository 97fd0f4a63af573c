package entities

// ThreatIndicator is one triggered finding from an attack-detection
// heuristic.
type ThreatIndicator struct {
	Category    string   `json:"category"` // behavioral, typosquatting, code_injection, maintainer_hijacking
	Package     string   `json:"package"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Evidence    string   `json:"evidence,omitempty"`
}

// DetectionResult aggregates the four attack-detection heuristics.
// AttackProbability is an OR-weighted risk index in [0,100], not a
// calibrated statistical probability.
type DetectionResult struct {
	AttackProbability         float64           `json:"attack_probability"`
	ThreatIndicators          []ThreatIndicator `json:"threat_indicators"`
	RecommendedActions        []string          `json:"recommended_actions"`
	MonitoringRecommendations []string          `json:"monitoring_recommendations"`
}

package entities

// RiskAssessment is the composite risk score for one package together
// with the five sub-scores it was combined from. All values are in
// [0, 100]; higher means riskier. Recomputed on every call, never stored.
type RiskAssessment struct {
	Package   string        `json:"package"`
	Score     float64       `json:"score"`
	RiskLevel string        `json:"risk_level"`
	Breakdown RiskBreakdown `json:"breakdown"`
}

// RiskBreakdown holds the five independent sub-scores, each already on
// the higher-is-riskier scale.
type RiskBreakdown struct {
	MaintainerReputation float64 `json:"maintainer_reputation"`
	MaintenanceHealth    float64 `json:"maintenance_health"`
	SecurityHistory      float64 `json:"security_history"`
	DependencyComplexity float64 `json:"dependency_complexity"`
	SupplyChainIntegrity float64 `json:"supply_chain_integrity"`
}

// RiskCategory maps a [0,100] score to its fixed label.
func RiskCategory(score float64) string {
	switch {
	case score >= 75:
		return "critical"
	case score >= 50:
		return "high"
	case score >= 25:
		return "medium"
	default:
		return "low"
	}
}

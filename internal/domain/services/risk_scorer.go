package services

import (
	"math"
	"sync"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

// RiskScorer computes a composite dependency risk score from five
// independent evidence facets. Every sub-score and the composite are on
// the same higher-is-riskier [0,100] scale.
type RiskScorer struct {
	weights entities.RiskBreakdown
}

// NewRiskScorer creates a scorer with the configured facet weights.
func NewRiskScorer(cfg entities.AnalysisConfig) *RiskScorer {
	return &RiskScorer{weights: cfg.Weights}
}

// Score computes the weighted composite risk for one package. The five
// sub-scores are mutually independent, so they are evaluated
// concurrently and combined afterwards. Deterministic for fixed input.
func (s *RiskScorer) Score(evidence entities.PackageEvidence) entities.RiskAssessment {
	var breakdown entities.RiskBreakdown

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		breakdown.MaintainerReputation = maintainerReputationRisk(evidence.Maintainers)
	}()
	go func() {
		defer wg.Done()
		breakdown.MaintenanceHealth = maintenanceHealthRisk(evidence.Releases)
	}()
	go func() {
		defer wg.Done()
		breakdown.SecurityHistory = securityHistoryRisk(evidence.Security)
	}()
	go func() {
		defer wg.Done()
		breakdown.DependencyComplexity = dependencyComplexityRisk(evidence.Dependencies)
	}()
	go func() {
		defer wg.Done()
		breakdown.SupplyChainIntegrity = supplyChainIntegrityRisk(evidence.Integrity)
	}()
	wg.Wait()

	composite := clampScore(
		breakdown.MaintainerReputation*s.weights.MaintainerReputation +
			breakdown.MaintenanceHealth*s.weights.MaintenanceHealth +
			breakdown.SecurityHistory*s.weights.SecurityHistory +
			breakdown.DependencyComplexity*s.weights.DependencyComplexity +
			breakdown.SupplyChainIntegrity*s.weights.SupplyChainIntegrity)

	return entities.RiskAssessment{
		Package:   evidence.Package,
		Score:     composite,
		RiskLevel: entities.RiskCategory(composite),
		Breakdown: breakdown,
	}
}

// maintainerReputationRisk scores maintainer trust. A package with no
// maintainers at all is maximum risk.
func maintainerReputationRisk(maintainers []entities.Maintainer) float64 {
	if len(maintainers) == 0 {
		return 100
	}

	total := 0.0
	for _, m := range maintainers {
		reputation := math.Min(float64(m.Commits)/100, 1)*40 +
			math.Min(m.YearsActive/5, 1)*30 +
			math.Min(float64(m.Followers)/1000, 1)*20 +
			math.Min(float64(m.Projects)/10, 1)*10
		total += reputation
	}

	return clampScore(100 - total/float64(len(maintainers)))
}

// maintenanceHealthRisk penalizes sparse releases, slow security patches
// and poor issue resolution. Missing observations take the conservative
// penalty rather than the benefit of the doubt.
func maintenanceHealthRisk(releases entities.ReleaseHistory) float64 {
	risk := 0.0

	switch count := len(releases.Releases); {
	case count == 0:
		risk += 50
	case count < 3:
		risk += 30
	default:
		risk += 20
	}

	switch {
	case releases.AvgPatchResponseDays == nil:
		risk += 10
	case *releases.AvgPatchResponseDays > 90:
		risk += 30
	case *releases.AvgPatchResponseDays > 30:
		risk += 15
	}

	if releases.IssueResolutionRate == nil || *releases.IssueResolutionRate < 0.5 {
		risk += 20
	}

	return clampScore(risk)
}

// securityHistoryRisk penalizes the package's CVE track record, with
// credit for demonstrated incident-response quality.
func securityHistoryRisk(history entities.SecurityHistory) float64 {
	risk := math.Min(float64(len(history.Vulnerabilities))*10, 50)

	for _, v := range history.Vulnerabilities {
		if v.Severity == entities.SeverityCritical {
			risk += 20
		}
	}

	if len(history.IncidentResponseScores) > 0 {
		total := 0.0
		for _, score := range history.IncidentResponseScores {
			total += score
		}
		risk -= total / float64(len(history.IncidentResponseScores))
	}

	return clampScore(risk)
}

// dependencyComplexityRisk penalizes wide and cyclic dependency trees.
func dependencyComplexityRisk(profile entities.DependencyProfile) float64 {
	risk := math.Min(float64(len(profile.Direct))*2, 30) +
		math.Min(float64(len(profile.Transitive))*0.5, 40) +
		float64(len(profile.Circular))*15
	return clampScore(risk)
}

// supplyChainIntegrityRisk penalizes missing signatures, irreproducible
// builds and unavailable source.
func supplyChainIntegrityRisk(integrity entities.IntegrityEvidence) float64 {
	risk := 0.0
	if !integrity.SignaturesVerified {
		risk += 40
	}
	if !integrity.ReproducibleBuilds {
		risk += 30
	}
	if !integrity.SourceAvailable {
		risk += 30
	}
	return clampScore(risk)
}

// clampScore bounds a risk value to [0, 100]. No unclamped intermediate
// value is ever surfaced to callers.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

package services

import (
	"fmt"
	"regexp"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

// Threat indicator categories.
const (
	CategoryBehavioral          = "behavioral"
	CategoryTyposquatting       = "typosquatting"
	CategoryCodeInjection       = "code_injection"
	CategoryMaintainerHijacking = "maintainer_hijacking"
)

// categoryPoints are the fixed per-category contributions to the
// aggregate attack probability. This is an OR-weighted risk index, not a
// calibrated probability.
var categoryPoints = map[string]float64{
	CategoryBehavioral:          25,
	CategoryTyposquatting:       35,
	CategoryCodeInjection:       40,
	CategoryMaintainerHijacking: 30,
}

// categoryOrder fixes iteration order for deterministic output.
var categoryOrder = []string{
	CategoryBehavioral,
	CategoryTyposquatting,
	CategoryCodeInjection,
	CategoryMaintainerHijacking,
}

// Typosquat similarity band: exact matches are legitimate, anything
// below the floor is an unrelated name.
const (
	typosquatFloor   = 0.7
	typosquatCeiling = 1.0
)

// sizeAnomalyFactor flags an update when a package at least doubles in size.
const sizeAnomalyFactor = 2

type compiledSignature struct {
	def entities.SignatureDefinition
	re  *regexp.Regexp
}

// AttackDetector runs four independent heuristics over a dependency
// change snapshot to estimate the likelihood of an active supply-chain
// attack. The malicious-code signature set is injected at construction.
type AttackDetector struct {
	signatures []compiledSignature
}

// NewAttackDetector compiles the configured signature set into a detector.
func NewAttackDetector(cfg entities.AnalysisConfig) (*AttackDetector, error) {
	signatures := make([]compiledSignature, 0, len(cfg.Signatures))
	for _, def := range cfg.Signatures {
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid signature %q: %w", def.Name, err)
		}
		signatures = append(signatures, compiledSignature{def: def, re: re})
	}
	return &AttackDetector{signatures: signatures}, nil
}

// Detect runs all four heuristics and aggregates their findings. The
// heuristics are order-independent; output order is fixed by category.
// Deterministic for fixed input.
func (d *AttackDetector) Detect(changes entities.DependencyChanges) entities.DetectionResult {
	indicators := make([]entities.ThreatIndicator, 0)
	indicators = append(indicators, d.detectBehavioralAnomalies(changes)...)
	indicators = append(indicators, d.detectTyposquatting(changes)...)
	indicators = append(indicators, d.scanMaliciousPatterns(changes)...)
	indicators = append(indicators, d.detectMaintainerCompromise(changes)...)

	triggered := make(map[string]bool)
	for _, indicator := range indicators {
		triggered[indicator.Category] = true
	}

	probability := 0.0
	for _, category := range categoryOrder {
		if triggered[category] {
			probability += categoryPoints[category]
		}
	}

	return entities.DetectionResult{
		AttackProbability:         clampScore(probability),
		ThreatIndicators:          indicators,
		RecommendedActions:        recommendedActions(triggered),
		MonitoringRecommendations: monitoringRecommendations(triggered),
	}
}

// detectBehavioralAnomalies compares each recent update against the
// historical size baseline for the same package name.
func (d *AttackDetector) detectBehavioralAnomalies(changes entities.DependencyChanges) []entities.ThreatIndicator {
	indicators := make([]entities.ThreatIndicator, 0)
	for _, update := range changes.RecentlyUpdated {
		baseline, ok := changes.Baselines[update.Name]
		if !ok || baseline.SizeBytes <= 0 {
			continue
		}
		if update.SizeBytes >= sizeAnomalyFactor*baseline.SizeBytes {
			indicators = append(indicators, entities.ThreatIndicator{
				Category:    CategoryBehavioral,
				Package:     update.Name,
				Severity:    entities.SeverityMedium,
				Description: "Package size grew abnormally since last baseline",
				Evidence:    fmt.Sprintf("size %d -> %d bytes", baseline.SizeBytes, update.SizeBytes),
			})
		}
	}
	return indicators
}

// detectTyposquatting flags newly added package names that are nearly,
// but not exactly, identical to a known-good name.
func (d *AttackDetector) detectTyposquatting(changes entities.DependencyChanges) []entities.ThreatIndicator {
	indicators := make([]entities.ThreatIndicator, 0)
	for _, pkg := range changes.NewPackages {
		for _, known := range changes.KnownPackages {
			similarity := nameSimilarity(pkg.Name, known)
			if similarity > typosquatFloor && similarity < typosquatCeiling {
				indicators = append(indicators, entities.ThreatIndicator{
					Category:    CategoryTyposquatting,
					Package:     pkg.Name,
					Severity:    entities.SeverityHigh,
					Description: fmt.Sprintf("Name is suspiciously similar to known package %q", known),
					Evidence:    fmt.Sprintf("similarity %.2f", similarity),
				})
			}
		}
	}
	return indicators
}

// scanMaliciousPatterns runs every compiled signature against each new
// package's raw source text.
func (d *AttackDetector) scanMaliciousPatterns(changes entities.DependencyChanges) []entities.ThreatIndicator {
	indicators := make([]entities.ThreatIndicator, 0)
	for _, pkg := range changes.NewPackages {
		if pkg.SourceText == "" {
			continue
		}
		for _, sig := range d.signatures {
			if sig.re.MatchString(pkg.SourceText) {
				indicators = append(indicators, entities.ThreatIndicator{
					Category:    CategoryCodeInjection,
					Package:     pkg.Name,
					Severity:    entities.SeverityHigh,
					Description: sig.def.Description,
					Evidence:    "signature " + sig.def.Name,
				})
			}
		}
	}
	return indicators
}

// detectMaintainerCompromise flags ownership transfers of dormant
// packages: a handover after a year of silence is the classic takeover
// pattern.
func (d *AttackDetector) detectMaintainerCompromise(changes entities.DependencyChanges) []entities.ThreatIndicator {
	indicators := make([]entities.ThreatIndicator, 0)
	for _, transfer := range changes.OwnershipTransfers {
		if transfer.DaysSinceLastActivity > 365 {
			indicators = append(indicators, entities.ThreatIndicator{
				Category:    CategoryMaintainerHijacking,
				Package:     transfer.Package,
				Severity:    entities.SeverityHigh,
				Description: "Ownership transfer of a dormant package",
				Evidence:    fmt.Sprintf("dormant %d days before transfer to %s", transfer.DaysSinceLastActivity, transfer.NewOwner),
			})
		}
	}
	return indicators
}

// nameSimilarity is the positional-character-match ratio between two
// names: matching positions divided by the longer length. Compared per
// rune so multi-byte homoglyph substitutions count as one changed
// character, not several shifted bytes.
func nameSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	shorter := len(ra)
	if len(rb) < shorter {
		shorter = len(rb)
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}

	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}

	return float64(matches) / float64(longer)
}

func recommendedActions(triggered map[string]bool) []string {
	actions := make([]string, 0)
	if triggered[CategoryBehavioral] {
		actions = append(actions, "Review recent package updates whose size doubled; diff against the previous release before upgrading")
	}
	if triggered[CategoryTyposquatting] {
		actions = append(actions, "Remove suspected typosquatted packages and pin the intended package names explicitly")
	}
	if triggered[CategoryCodeInjection] {
		actions = append(actions, "Quarantine packages with malicious code signatures and audit their full source before reinstating")
	}
	if triggered[CategoryMaintainerHijacking] {
		actions = append(actions, "Freeze versions of packages with suspicious ownership transfers until the new maintainer is vetted")
	}
	return actions
}

func monitoringRecommendations(triggered map[string]bool) []string {
	recommendations := make([]string, 0)
	if triggered[CategoryBehavioral] {
		recommendations = append(recommendations, "Track package size and file-count baselines on every dependency update")
	}
	if triggered[CategoryTyposquatting] {
		recommendations = append(recommendations, "Alert on new dependency names within edit distance of the approved package list")
	}
	if triggered[CategoryCodeInjection] {
		recommendations = append(recommendations, "Scan new package sources against the signature set in CI before merge")
	}
	if triggered[CategoryMaintainerHijacking] {
		recommendations = append(recommendations, "Subscribe to maintainer and ownership change feeds for all direct dependencies")
	}
	return recommendations
}

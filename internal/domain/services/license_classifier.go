package services

import (
	"github.com/ochairo/depsentry/internal/domain/entities"
)

const restrictiveLicenseReason = "Restrictive copyleft license"

// LicenseClassifier tags each SBOM component's license as compliant,
// non-compliant or unknown against a configured denylist.
type LicenseClassifier struct {
	denylist         map[string]bool
	unknownThreshold int
}

// NewLicenseClassifier creates a classifier from the configured denylist
// and unknown-license threshold.
func NewLicenseClassifier(cfg entities.AnalysisConfig) *LicenseClassifier {
	denylist := make(map[string]bool, len(cfg.LicenseDenylist))
	for _, license := range cfg.LicenseDenylist {
		denylist[license] = true
	}
	return &LicenseClassifier{
		denylist:         denylist,
		unknownThreshold: cfg.UnknownLicenseThreshold,
	}
}

// Classify buckets every component of the SBOM by license compliance.
// Pure business logic - no I/O.
func (c *LicenseClassifier) Classify(sbom *entities.SBOMDocument) entities.LicenseAudit {
	audit := entities.LicenseAudit{
		Compliant:    make([]entities.LicenseFinding, 0),
		NonCompliant: make([]entities.LicenseFinding, 0),
		Unknown:      make([]entities.LicenseFinding, 0),
	}

	for _, component := range sbom.Components {
		finding := entities.LicenseFinding{
			Component: component.Name,
			Version:   component.Version,
			License:   component.License,
		}

		switch {
		case component.License == "Unknown":
			audit.Unknown = append(audit.Unknown, finding)
		case c.denylist[component.License]:
			finding.Reason = restrictiveLicenseReason
			audit.NonCompliant = append(audit.NonCompliant, finding)
		default:
			audit.Compliant = append(audit.Compliant, finding)
		}
	}

	switch {
	case len(audit.NonCompliant) > 0:
		audit.RiskLevel = "high"
	case len(audit.Unknown) > c.unknownThreshold:
		audit.RiskLevel = "medium"
	default:
		audit.RiskLevel = "low"
	}

	return audit
}

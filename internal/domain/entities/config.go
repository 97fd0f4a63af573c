package entities

import "time"

// AnalysisConfig carries every tunable of the analysis core. Zero-config
// callers use DefaultConfig; loaded configuration overrides individual
// sections. Injected at construction time, never read from globals.
type AnalysisConfig struct {
	Weights                 RiskBreakdown
	LicenseDenylist         []string
	UnknownLicenseThreshold int
	PropagationMaxDepth     int // 0 = full transitive closure, 1 = direct parents only
	SourceTimeout           time.Duration
	Signatures              []SignatureDefinition
}

// SignatureDefinition is one malicious-code signature before compilation;
// the attack detector compiles patterns at construction time.
type SignatureDefinition struct {
	Name        string
	Pattern     string
	Description string
}

// DefaultConfig returns the built-in analysis configuration.
func DefaultConfig() AnalysisConfig {
	return AnalysisConfig{
		Weights: RiskBreakdown{
			MaintainerReputation: 0.15,
			MaintenanceHealth:    0.20,
			SecurityHistory:      0.30,
			DependencyComplexity: 0.15,
			SupplyChainIntegrity: 0.20,
		},
		LicenseDenylist:         []string{"GPL-3.0", "AGPL-3.0", "SSPL", "Commons Clause"},
		UnknownLicenseThreshold: 5,
		PropagationMaxDepth:     0,
		SourceTimeout:           10 * time.Second,
		Signatures:              DefaultSignatures(),
	}
}

// DefaultSignatures returns the built-in malicious-code signature set:
// dynamic code execution, process execution, dynamic import, sensitive
// file access, raw socket creation and base64 payload decoding.
func DefaultSignatures() []SignatureDefinition {
	return []SignatureDefinition{
		{
			Name:        "dynamic-code-execution",
			Pattern:     `\beval\s*\(`,
			Description: "Dynamic code execution",
		},
		{
			Name:        "process-execution",
			Pattern:     `\bexec\s*\(|child_process|subprocess\.`,
			Description: "Process execution",
		},
		{
			Name:        "dynamic-import",
			Pattern:     `__import__\s*\(|\bimportlib\b|require\s*\(\s*[a-zA-Z_]`,
			Description: "Dynamic module import",
		},
		{
			Name:        "sensitive-file-access",
			Pattern:     `/etc/passwd|/etc/shadow|\.ssh/|\.aws/credentials`,
			Description: "Sensitive file access",
		},
		{
			Name:        "raw-socket",
			Pattern:     `socket\s*\.\s*socket\s*\(|net\.createConnection|new\s+Socket\s*\(`,
			Description: "Raw socket creation",
		},
		{
			Name:        "base64-decode",
			Pattern:     `b64decode\s*\(|\batob\s*\(|base64\s+(-d|--decode)`,
			Description: "Base64 payload decoding",
		},
	}
}

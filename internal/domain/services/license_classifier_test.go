package services

import (
	"fmt"
	"testing"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

func sbomWithLicenses(licenses ...string) *entities.SBOMDocument {
	components := make([]entities.Component, 0, len(licenses))
	for i, license := range licenses {
		components = append(components, entities.Component{
			Name:      fmt.Sprintf("pkg-%d", i),
			Version:   "1.0.0",
			Ecosystem: "npm",
			License:   license,
		})
	}
	return &entities.SBOMDocument{Components: components}
}

// Test license bucket assignment
func TestLicenseClassifier_Classify(t *testing.T) {
	classifier := NewLicenseClassifier(entities.DefaultConfig())

	tests := []struct {
		name             string
		licenses         []string
		wantCompliant    int
		wantNonCompliant int
		wantUnknown      int
		wantRiskLevel    string
	}{
		{
			name:          "all permissive",
			licenses:      []string{"MIT", "Apache-2.0", "BSD-3-Clause"},
			wantCompliant: 3,
			wantRiskLevel: "low",
		},
		{
			name:             "restrictive copyleft",
			licenses:         []string{"GPL-3.0", "MIT"},
			wantCompliant:    1,
			wantNonCompliant: 1,
			wantRiskLevel:    "high",
		},
		{
			name:          "unknown license",
			licenses:      []string{"Unknown", "MIT"},
			wantCompliant: 1,
			wantUnknown:   1,
			wantRiskLevel: "low",
		},
		{
			name:             "every denylisted license",
			licenses:         []string{"GPL-3.0", "AGPL-3.0", "SSPL", "Commons Clause"},
			wantNonCompliant: 4,
			wantRiskLevel:    "high",
		},
		{
			name: "many unknown licenses raise risk",
			licenses: []string{
				"Unknown", "Unknown", "Unknown", "Unknown", "Unknown", "Unknown",
			},
			wantUnknown:   6,
			wantRiskLevel: "medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := classifier.Classify(sbomWithLicenses(tt.licenses...))

			if len(audit.Compliant) != tt.wantCompliant {
				t.Errorf("Compliant = %d, want %d", len(audit.Compliant), tt.wantCompliant)
			}
			if len(audit.NonCompliant) != tt.wantNonCompliant {
				t.Errorf("NonCompliant = %d, want %d", len(audit.NonCompliant), tt.wantNonCompliant)
			}
			if len(audit.Unknown) != tt.wantUnknown {
				t.Errorf("Unknown = %d, want %d", len(audit.Unknown), tt.wantUnknown)
			}
			if audit.RiskLevel != tt.wantRiskLevel {
				t.Errorf("RiskLevel = %s, want %s", audit.RiskLevel, tt.wantRiskLevel)
			}
		})
	}
}

// Test that non-compliant findings carry the restrictive license reason
func TestLicenseClassifier_Classify_Reason(t *testing.T) {
	classifier := NewLicenseClassifier(entities.DefaultConfig())

	audit := classifier.Classify(sbomWithLicenses("AGPL-3.0"))

	if len(audit.NonCompliant) != 1 {
		t.Fatalf("NonCompliant = %d, want 1", len(audit.NonCompliant))
	}

	if audit.NonCompliant[0].Reason != "Restrictive copyleft license" {
		t.Errorf("Reason = %q, want %q", audit.NonCompliant[0].Reason, "Restrictive copyleft license")
	}
}

// Test a custom denylist from configuration
func TestLicenseClassifier_Classify_CustomDenylist(t *testing.T) {
	cfg := entities.DefaultConfig()
	cfg.LicenseDenylist = []string{"MIT"}
	classifier := NewLicenseClassifier(cfg)

	audit := classifier.Classify(sbomWithLicenses("MIT", "GPL-3.0"))

	if len(audit.NonCompliant) != 1 {
		t.Fatalf("NonCompliant = %d, want 1", len(audit.NonCompliant))
	}

	if audit.NonCompliant[0].License != "MIT" {
		t.Errorf("NonCompliant license = %s, want MIT", audit.NonCompliant[0].License)
	}
}

// Package yaml provides YAML-based analysis configuration loading.
package yaml

import (
	"fmt"
	"os"
	"time"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	Weights     yamlWeights     `yaml:"weights"`
	Licenses    yamlLicenses    `yaml:"licenses"`
	Propagation yamlPropagation `yaml:"propagation"`
	Federation  yamlFederation  `yaml:"federation"`
	Signatures  []yamlSignature `yaml:"signatures"`
}

type yamlWeights struct {
	MaintainerReputation *float64 `yaml:"maintainer_reputation"`
	MaintenanceHealth    *float64 `yaml:"maintenance_health"`
	SecurityHistory      *float64 `yaml:"security_history"`
	DependencyComplexity *float64 `yaml:"dependency_complexity"`
	SupplyChainIntegrity *float64 `yaml:"supply_chain_integrity"`
}

type yamlLicenses struct {
	Denylist         []string `yaml:"denylist"`
	UnknownThreshold *int     `yaml:"unknown_threshold"`
}

type yamlPropagation struct {
	// 0 means full transitive closure; 1 reproduces single-hop analysis
	MaxDepth *int `yaml:"max_depth"`
}

type yamlFederation struct {
	SourceTimeoutSeconds *int `yaml:"source_timeout_seconds"`
}

type yamlSignature struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
}

// ConfigLoader parses YAML analysis configuration files
type ConfigLoader struct{}

// NewConfigLoader creates a new YAML config loader
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// LoadFile parses a YAML config file into an AnalysisConfig
func (l *ConfigLoader) LoadFile(filePath string) (entities.AnalysisConfig, error) {
	//nolint:gosec // G304: filePath is a caller-supplied configuration path
	data, err := os.ReadFile(filePath)
	if err != nil {
		return entities.AnalysisConfig{}, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return l.Load(data)
}

// Load parses YAML bytes into an AnalysisConfig, starting from the
// built-in defaults and overriding only the sections the document sets.
func (l *ConfigLoader) Load(data []byte) (entities.AnalysisConfig, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return entities.AnalysisConfig{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := entities.DefaultConfig()

	applyWeights(&cfg.Weights, raw.Weights)

	if raw.Licenses.Denylist != nil {
		cfg.LicenseDenylist = raw.Licenses.Denylist
	}
	if raw.Licenses.UnknownThreshold != nil {
		cfg.UnknownLicenseThreshold = *raw.Licenses.UnknownThreshold
	}

	if raw.Propagation.MaxDepth != nil {
		if *raw.Propagation.MaxDepth < 0 {
			return entities.AnalysisConfig{}, fmt.Errorf("propagation max_depth must be >= 0, got %d", *raw.Propagation.MaxDepth)
		}
		cfg.PropagationMaxDepth = *raw.Propagation.MaxDepth
	}

	if raw.Federation.SourceTimeoutSeconds != nil {
		if *raw.Federation.SourceTimeoutSeconds <= 0 {
			return entities.AnalysisConfig{}, fmt.Errorf("federation source_timeout_seconds must be positive")
		}
		cfg.SourceTimeout = time.Duration(*raw.Federation.SourceTimeoutSeconds) * time.Second
	}

	if raw.Signatures != nil {
		sigs := make([]entities.SignatureDefinition, 0, len(raw.Signatures))
		for _, s := range raw.Signatures {
			if s.Name == "" || s.Pattern == "" {
				return entities.AnalysisConfig{}, fmt.Errorf("signature must have a name and a pattern")
			}
			sigs = append(sigs, entities.SignatureDefinition{
				Name:        s.Name,
				Pattern:     s.Pattern,
				Description: s.Description,
			})
		}
		cfg.Signatures = sigs
	}

	return cfg, nil
}

func applyWeights(w *entities.RiskBreakdown, raw yamlWeights) {
	if raw.MaintainerReputation != nil {
		w.MaintainerReputation = *raw.MaintainerReputation
	}
	if raw.MaintenanceHealth != nil {
		w.MaintenanceHealth = *raw.MaintenanceHealth
	}
	if raw.SecurityHistory != nil {
		w.SecurityHistory = *raw.SecurityHistory
	}
	if raw.DependencyComplexity != nil {
		w.DependencyComplexity = *raw.DependencyComplexity
	}
	if raw.SupplyChainIntegrity != nil {
		w.SupplyChainIntegrity = *raw.SupplyChainIntegrity
	}
}

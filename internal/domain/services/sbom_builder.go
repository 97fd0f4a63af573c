// Package services implements domain business logic and use cases.
package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
)

const (
	toolName    = "depsentry"
	toolVersion = "1.0.0"
)

// supportedEcosystems are the ecosystems the builder knows how to
// normalize. Entries under any other ecosystem name are silently skipped.
var supportedEcosystems = map[string]bool{
	"npm":        true,
	"pypi":       true,
	"maven":      true,
	"nuget":      true,
	"go-modules": true,
	"cargo":      true,
}

// SBOMBuilder normalizes raw per-ecosystem dependency declarations into a
// unified component and dependency graph.
type SBOMBuilder struct {
	logger interfaces.Logger
}

// NewSBOMBuilder creates a new SBOM builder. A nil logger disables logging.
func NewSBOMBuilder(logger interfaces.Logger) *SBOMBuilder {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &SBOMBuilder{logger: logger}
}

// Build constructs an SBOM document from the project's raw dependency
// declarations. One component per valid entry of a supported ecosystem;
// one edge per declared child name. Entries missing a name or version and
// entries repeating an already-built name@version key are skipped rather
// than failing the whole build. Side-effect free.
func (b *SBOMBuilder) Build(projectDependencies map[string][]entities.DependencyEntry) *entities.SBOMDocument {
	ecosystems := make([]string, 0, len(projectDependencies))
	for eco := range projectDependencies {
		ecosystems = append(ecosystems, eco)
	}
	// Deterministic component order regardless of map iteration order
	sort.Strings(ecosystems)

	components := make([]entities.Component, 0)
	edges := make([]entities.DependencyEdge, 0)
	included := make([]string, 0)
	seen := make(map[string]bool)

	for _, eco := range ecosystems {
		if !supportedEcosystems[eco] {
			b.logger.Debug("skipping unsupported ecosystem", interfaces.F("ecosystem", eco))
			continue
		}
		included = append(included, eco)

		for _, entry := range projectDependencies[eco] {
			if entry.Name == "" || entry.Version == "" {
				b.logger.Warn("skipping malformed dependency entry",
					interfaces.F("ecosystem", eco),
					interfaces.F("name", entry.Name))
				continue
			}

			component := entities.Component{
				Name:      entry.Name,
				Version:   entry.Version,
				Ecosystem: eco,
				License:   entry.License,
				Source:    entry.Source,
			}

			// Advisory lookups key on name@version, so a duplicate key
			// would double-query and double-report the same component
			if seen[component.Key()] {
				b.logger.Warn("skipping duplicate dependency entry",
					interfaces.F("ecosystem", eco),
					interfaces.F("component", component.Key()))
				continue
			}
			seen[component.Key()] = true

			if component.License == "" {
				component.License = "Unknown"
			}
			component.ContentHash = contentHash(component)
			components = append(components, component)

			for _, child := range entry.Dependencies {
				if child == "" {
					continue
				}
				edges = append(edges, entities.DependencyEdge{
					Parent: entry.Name,
					Child:  child,
					Kind:   "direct",
				})
			}
		}
	}

	return &entities.SBOMDocument{
		Metadata: entities.SBOMMetadata{
			Timestamp:   time.Now().UTC(),
			Tool:        toolName,
			ToolVersion: toolVersion,
			Ecosystems:  included,
		},
		Components: components,
		Edges:      edges,
	}
}

// AssessVersionRisk flags components considered high risk regardless of
// advisories. Pre-1.0 versions signal an immature, unstable API surface.
func (b *SBOMBuilder) AssessVersionRisk(sbom *entities.SBOMDocument) []entities.HighRiskComponent {
	flagged := make([]entities.HighRiskComponent, 0)
	for _, c := range sbom.Components {
		if strings.HasPrefix(c.Version, "0.") {
			flagged = append(flagged, entities.HighRiskComponent{
				Component: c.Name,
				Version:   c.Version,
				RiskLevel: "high",
				Reason:    "Pre-1.0 version",
			})
		}
	}
	return flagged
}

// contentHash computes the tamper-evidence hash for a component: the
// first 16 hex characters of SHA-256 over the canonical JSON encoding of
// its identity fields.
func contentHash(c entities.Component) string {
	payload := struct {
		Name      string `json:"name"`
		Version   string `json:"version"`
		Ecosystem string `json:"ecosystem"`
		License   string `json:"license"`
		Source    string `json:"source"`
	}{c.Name, c.Version, c.Ecosystem, c.License, c.Source}

	// Struct field order fixes the canonical encoding
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

// Package entities defines core domain models and data structures.
package entities

import "time"

// Component represents a single software component in an SBOM.
// Identity is the (Name, Version, Ecosystem) triple; components are
// immutable once built and owned by the SBOM document that produced them.
type Component struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Ecosystem   string `json:"ecosystem"`
	License     string `json:"license"`
	Source      string `json:"source"`
	ContentHash string `json:"content_hash"`
}

// Key returns the name@version identity string used for advisory lookups.
func (c Component) Key() string {
	return c.Name + "@" + c.Version
}

// DependencyEdge is a directed edge in the SBOM dependency graph.
// Multiple edges may point to the same child (shared dependency).
type DependencyEdge struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
	Kind   string `json:"kind"` // "direct"
}

// SBOMDocument is the normalized component and dependency graph for one
// analysis run. Read-only after construction; never shared across runs.
type SBOMDocument struct {
	Metadata   SBOMMetadata     `json:"metadata"`
	Components []Component      `json:"components"`
	Edges      []DependencyEdge `json:"edges"`
}

// SBOMMetadata records how and when an SBOM document was generated.
type SBOMMetadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Tool        string    `json:"tool"`
	ToolVersion string    `json:"tool_version"`
	Ecosystems  []string  `json:"ecosystems"`
}

// DependencyEntry is one raw per-ecosystem dependency declaration as
// supplied by the caller. Name and Version are required; entries missing
// either are skipped during SBOM construction rather than failing the build.
type DependencyEntry struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	License      string   `json:"license,omitempty"`
	Source       string   `json:"source,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

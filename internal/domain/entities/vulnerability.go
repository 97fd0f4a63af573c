package entities

// VulnerabilityRecord is a single advisory for a component, tagged with
// the federated source that reported it.
type VulnerabilityRecord struct {
	ID          string   `json:"id"`
	Severity    Severity `json:"severity"`
	CVSSScore   float64  `json:"cvss_score"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
}

// DirectVulnerability marks a component with at least one advisory.
// Severity is the maximum across all federated records for the component.
type DirectVulnerability struct {
	Component       Component             `json:"component"`
	Severity        Severity              `json:"severity"`
	Vulnerabilities []VulnerabilityRecord `json:"vulnerabilities"`
}

// TransitiveVulnerability marks a component affected through the
// dependency graph rather than by its own advisories.
type TransitiveVulnerability struct {
	VulnerableComponent string   `json:"vulnerable_component"`
	AffectedComponent   string   `json:"affected_component"`
	Severity            Severity `json:"severity"`
	Depth               int      `json:"depth"`
}

// PropagationPath is one dependency chain from an affected component
// down to the vulnerable component, most distant ancestor first.
type PropagationPath struct {
	VulnerableComponent string   `json:"vulnerable_component"`
	AffectedComponent   string   `json:"affected_component"`
	Path                []string `json:"path"`
	Severity            Severity `json:"severity"`
}

// PropagationResult is the full output of propagation analysis over an SBOM.
type PropagationResult struct {
	DirectVulnerabilities     []DirectVulnerability     `json:"direct_vulnerabilities"`
	TransitiveVulnerabilities []TransitiveVulnerability `json:"transitive_vulnerabilities"`
	PropagationPaths          []PropagationPath         `json:"propagation_paths"`
}

package entities

// PackageEvidence is the caller-supplied evidence bundle for a single
// package. The scorer never mutates it. Optional numeric observations are
// pointers so that "not observed" is explicit rather than a zero value.
type PackageEvidence struct {
	Package      string            `json:"package"`
	Maintainers  []Maintainer      `json:"maintainers"`
	Releases     ReleaseHistory    `json:"releases"`
	Security     SecurityHistory   `json:"security"`
	Dependencies DependencyProfile `json:"dependencies"`
	Integrity    IntegrityEvidence `json:"integrity"`
}

// Maintainer describes one maintainer's contribution history and
// community standing.
type Maintainer struct {
	Name        string  `json:"name"`
	Commits     int     `json:"commits"`
	YearsActive float64 `json:"years_active"`
	Followers   int     `json:"followers"`
	Projects    int     `json:"projects"`
}

// ReleaseHistory covers release cadence, security-patch timing and issue
// responsiveness for a package.
type ReleaseHistory struct {
	Releases             []Release `json:"releases"`
	AvgPatchResponseDays *float64  `json:"avg_patch_response_days,omitempty"`
	IssueResolutionRate  *float64  `json:"issue_resolution_rate,omitempty"`
}

// Release is one published version of a package.
type Release struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
}

// SecurityHistory covers a package's CVE track record and how well past
// incidents were handled.
type SecurityHistory struct {
	Vulnerabilities        []PastVulnerability `json:"vulnerabilities"`
	Advisories             int                 `json:"advisories"`
	IncidentResponseScores []float64           `json:"incident_response_scores"`
}

// PastVulnerability is one historical vulnerability of the package itself.
type PastVulnerability struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
}

// DependencyProfile lists the package's own dependency footprint.
type DependencyProfile struct {
	Direct     []string `json:"direct"`
	Transitive []string `json:"transitive"`
	Circular   []string `json:"circular"`
}

// IntegrityEvidence carries the supply-chain integrity flags for a
// package. Unverifiable evidence keeps the conservative false default.
type IntegrityEvidence struct {
	SignaturesVerified bool `json:"signatures_verified"`
	ReproducibleBuilds bool `json:"reproducible_builds"`
	SourceAvailable    bool `json:"source_available"`
}

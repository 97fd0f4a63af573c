package entities

// DependencyChanges is the snapshot consumed by attack detection: what a
// project's dependency set looked like, what just changed, and who owns it.
type DependencyChanges struct {
	Baselines          map[string]PackageBaseline `json:"baselines"`
	RecentlyUpdated    []PackageUpdate            `json:"recently_updated"`
	KnownPackages      []string                   `json:"known_packages"`
	NewPackages        []NewPackage               `json:"new_packages"`
	OwnershipTransfers []OwnershipTransfer        `json:"ownership_transfers"`
}

// PackageBaseline is the historical behavior profile for a package name.
type PackageBaseline struct {
	SizeBytes int `json:"size_bytes"`
}

// PackageUpdate is one recently published update of an existing package.
type PackageUpdate struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	SizeBytes int    `json:"size_bytes"`
}

// NewPackage is a package that just appeared in the dependency set,
// with its raw source text for signature scanning.
type NewPackage struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	SourceText string `json:"source_text"`
}

// OwnershipTransfer is a maintainer account change event for a package,
// with how long the package had been dormant before the transfer.
type OwnershipTransfer struct {
	Package               string `json:"package"`
	NewOwner              string `json:"new_owner"`
	DaysSinceLastActivity int    `json:"days_since_last_activity"`
}

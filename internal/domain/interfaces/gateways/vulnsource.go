package gateways

import (
	"context"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

// VulnerabilitySource is one named vulnerability database queried during
// propagation analysis. Implementations never mutate each other's state.
//
// A failing or unreachable source returns an error; the federation layer
// translates that into an empty result so partial-source failure never
// blocks the overall analysis.
type VulnerabilitySource interface {
	// Name identifies the source; every record it returns is stamped
	// with this name before merging.
	Name() string

	// Query returns all known advisories for the (package, version) pair.
	Query(ctx context.Context, pkg, version string) ([]entities.VulnerabilityRecord, error)
}

// VulnerabilityFederation is a uniform lookup over all configured sources.
type VulnerabilityFederation interface {
	// Query concatenates results from every source in registration
	// order; unreachable sources contribute an empty list.
	Query(ctx context.Context, pkg, version string) []entities.VulnerabilityRecord
}

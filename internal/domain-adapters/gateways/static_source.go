package gateways

import (
	"context"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

// StaticSource is an in-memory vulnerability source backed by a fixed
// advisory map keyed by "name@version". Callers supply real or curated
// advisory data through it; it is also the standard test double for the
// federation layer.
type StaticSource struct {
	name     string
	advisory map[string][]entities.VulnerabilityRecord
}

// NewStaticSource creates a named in-memory source.
func NewStaticSource(name string, advisory map[string][]entities.VulnerabilityRecord) *StaticSource {
	if advisory == nil {
		advisory = make(map[string][]entities.VulnerabilityRecord)
	}
	return &StaticSource{name: name, advisory: advisory}
}

// Name identifies this source in merged records.
func (s *StaticSource) Name() string {
	return s.name
}

// Add registers advisories for a (package, version) pair.
func (s *StaticSource) Add(pkg, version string, records ...entities.VulnerabilityRecord) {
	key := pkg + "@" + version
	s.advisory[key] = append(s.advisory[key], records...)
}

// Query returns the advisories recorded for the (package, version) pair.
// The returned slice is a copy; callers cannot mutate the source's state.
func (s *StaticSource) Query(_ context.Context, pkg, version string) ([]entities.VulnerabilityRecord, error) {
	records := s.advisory[pkg+"@"+version]
	if len(records) == 0 {
		return nil, nil
	}

	out := make([]entities.VulnerabilityRecord, len(records))
	copy(out, records)
	return out, nil
}

// Package gateways implements the infrastructure adapters behind the
// domain gateway interfaces.
package gateways

import (
	"context"
	"sync"
	"time"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
	ifgateways "github.com/ochairo/depsentry/internal/domain/interfaces/gateways"
)

// Federation composes multiple vulnerability sources behind one uniform
// lookup. Sources are queried in parallel, each under its own timeout; a
// failing or slow source degrades to an empty result so partial-source
// failure never blocks the analysis.
type Federation struct {
	sources []ifgateways.VulnerabilitySource
	timeout time.Duration
	logger  interfaces.Logger
}

// NewFederation creates a federation over the given sources.
func NewFederation(cfg entities.AnalysisConfig, logger interfaces.Logger, sources ...ifgateways.VulnerabilitySource) *Federation {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &Federation{
		sources: sources,
		timeout: cfg.SourceTimeout,
		logger:  logger,
	}
}

// Query asks every source for advisories on the (package, version) pair
// and concatenates the results in source registration order, preserving
// each source's arrival order. Every record is stamped with the name of
// the source that produced it.
func (f *Federation) Query(ctx context.Context, pkg, version string) []entities.VulnerabilityRecord {
	// Per-source slots keep registration order under parallel queries
	slots := make([][]entities.VulnerabilityRecord, len(f.sources))

	var wg sync.WaitGroup
	for i, source := range f.sources {
		wg.Add(1)
		go func(i int, source ifgateways.VulnerabilitySource) {
			defer wg.Done()
			slots[i] = f.querySource(ctx, source, pkg, version)
		}(i, source)
	}
	wg.Wait()

	merged := make([]entities.VulnerabilityRecord, 0)
	for _, records := range slots {
		merged = append(merged, records...)
	}
	return merged
}

// querySource runs one bounded source query, translating any failure
// into an explicit empty result.
func (f *Federation) querySource(ctx context.Context, source ifgateways.VulnerabilitySource, pkg, version string) []entities.VulnerabilityRecord {
	queryCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	records, err := source.Query(queryCtx, pkg, version)
	if err != nil {
		f.logger.Warn("vulnerability source degraded to empty result",
			interfaces.F("source", source.Name()),
			interfaces.F("package", pkg),
			interfaces.F("error", err))
		return nil
	}

	for i := range records {
		records[i].Source = source.Name()
	}
	return records
}

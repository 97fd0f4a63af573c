package services

import (
	"context"
	"sync"

	"github.com/ochairo/depsentry/internal/domain/entities"
	"github.com/ochairo/depsentry/internal/domain/interfaces"
	"github.com/ochairo/depsentry/internal/domain/interfaces/gateways"
)

// PropagationEngine finds directly vulnerable components in an SBOM and
// traces which dependents are transitively affected through the
// dependency graph.
type PropagationEngine struct {
	federation gateways.VulnerabilityFederation
	maxDepth   int
	logger     interfaces.Logger
}

// NewPropagationEngine creates a propagation engine over the given
// federated sources. MaxDepth 0 walks the full transitive closure;
// MaxDepth 1 restricts analysis to direct parents.
func NewPropagationEngine(federation gateways.VulnerabilityFederation, cfg entities.AnalysisConfig, logger interfaces.Logger) *PropagationEngine {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &PropagationEngine{
		federation: federation,
		maxDepth:   cfg.PropagationMaxDepth,
		logger:     logger,
	}
}

// Propagate queries every component against all federated sources and
// walks the dependency graph in reverse to find affected dependents.
// Components are queried concurrently; results keep component order.
func (e *PropagationEngine) Propagate(ctx context.Context, sbom *entities.SBOMDocument) entities.PropagationResult {
	result := entities.PropagationResult{
		DirectVulnerabilities:     make([]entities.DirectVulnerability, 0),
		TransitiveVulnerabilities: make([]entities.TransitiveVulnerability, 0),
		PropagationPaths:          make([]entities.PropagationPath, 0),
	}

	// Indexed slots keep the output deterministic under parallel queries
	records := make([][]entities.VulnerabilityRecord, len(sbom.Components))

	var wg sync.WaitGroup
	for i, component := range sbom.Components {
		wg.Add(1)
		go func(i int, component entities.Component) {
			defer wg.Done()
			records[i] = e.federation.Query(ctx, component.Name, component.Version)
		}(i, component)
	}
	wg.Wait()

	parents := reverseAdjacency(sbom.Edges)

	for i, component := range sbom.Components {
		if len(records[i]) == 0 {
			continue
		}

		severity := entities.MaxSeverity(records[i])
		result.DirectVulnerabilities = append(result.DirectVulnerabilities, entities.DirectVulnerability{
			Component:       component,
			Severity:        severity,
			Vulnerabilities: records[i],
		})

		e.logger.Info("vulnerable component found",
			interfaces.F("component", component.Name),
			interfaces.F("severity", severity.String()),
			interfaces.F("records", len(records[i])))

		e.trace(component.Name, severity, parents, &result)
	}

	return result
}

// trace walks the reverse dependency graph from a vulnerable component,
// emitting one path and one transitive entry per reachable dependent.
func (e *PropagationEngine) trace(vulnerable string, severity entities.Severity, parents map[string][]string, result *entities.PropagationResult) {
	type node struct {
		name  string
		path  []string
		depth int
	}

	visited := map[string]bool{vulnerable: true}
	queue := []node{{name: vulnerable, path: []string{vulnerable}, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if e.maxDepth > 0 && current.depth >= e.maxDepth {
			continue
		}

		for _, parent := range parents[current.name] {
			if visited[parent] {
				continue
			}
			visited[parent] = true

			path := make([]string, 0, len(current.path)+1)
			path = append(path, parent)
			path = append(path, current.path...)

			result.PropagationPaths = append(result.PropagationPaths, entities.PropagationPath{
				VulnerableComponent: vulnerable,
				AffectedComponent:   parent,
				Path:                path,
				Severity:            severity,
			})
			result.TransitiveVulnerabilities = append(result.TransitiveVulnerabilities, entities.TransitiveVulnerability{
				VulnerableComponent: vulnerable,
				AffectedComponent:   parent,
				Severity:            severity,
				Depth:               current.depth + 1,
			})

			queue = append(queue, node{name: parent, path: path, depth: current.depth + 1})
		}
	}
}

// reverseAdjacency maps each child name to the parents that depend on it.
func reverseAdjacency(edges []entities.DependencyEdge) map[string][]string {
	parents := make(map[string][]string)
	for _, edge := range edges {
		parents[edge.Child] = append(parents[edge.Child], edge.Parent)
	}
	return parents
}

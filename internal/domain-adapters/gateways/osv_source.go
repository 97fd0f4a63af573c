package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

const osvQueryURL = "https://api.osv.dev/v1/query"

// osvEcosystems maps SBOM ecosystem names to OSV ecosystem identifiers.
var osvEcosystems = map[string]string{
	"npm":        "npm",
	"pypi":       "PyPI",
	"maven":      "Maven",
	"nuget":      "NuGet",
	"go-modules": "Go",
	"cargo":      "crates.io",
}

// OSVSource queries the OSV database over its HTTP API. One source
// instance covers one package ecosystem.
type OSVSource struct {
	ecosystem  string
	apiURL     string
	httpClient *http.Client
}

// NewOSVSource creates an OSV-backed source for the given SBOM ecosystem
// name (npm, pypi, maven, nuget, go-modules, cargo).
func NewOSVSource(ecosystem string) *OSVSource {
	return &OSVSource{
		ecosystem: ecosystem,
		apiURL:    osvQueryURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name identifies this source in merged records.
func (s *OSVSource) Name() string {
	return "osv:" + s.ecosystem
}

// Query looks up advisories for the (package, version) pair. Transport
// and decoding failures surface as errors; the federation layer turns
// them into empty results.
func (s *OSVSource) Query(ctx context.Context, pkg, version string) ([]entities.VulnerabilityRecord, error) {
	osvEcosystem, ok := osvEcosystems[s.ecosystem]
	if !ok {
		return nil, nil
	}

	payload := osvQueryRequest{
		Package: osvPackage{
			Name:      pkg,
			Ecosystem: osvEcosystem,
		},
		Version: version,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OSV API request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OSV API returned status %d", resp.StatusCode)
	}

	var osvResp osvQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&osvResp); err != nil {
		return nil, fmt.Errorf("failed to parse OSV response: %w", err)
	}

	records := make([]entities.VulnerabilityRecord, 0, len(osvResp.Vulns))
	for _, vuln := range osvResp.Vulns {
		records = append(records, entities.VulnerabilityRecord{
			ID:          vuln.ID,
			Severity:    extractSeverity(vuln),
			CVSSScore:   extractCVSS(vuln),
			Description: vuln.Summary,
		})
	}
	return records, nil
}

// extractSeverity picks the best available severity signal: the
// database-specific label if present, otherwise a CVSS-score bracket.
func extractSeverity(vuln osvVulnerability) entities.Severity {
	if vuln.DatabaseSpecific.Severity != "" {
		return entities.ParseSeverity(vuln.DatabaseSpecific.Severity)
	}

	switch score := extractCVSS(vuln); {
	case score >= 9.0:
		return entities.SeverityCritical
	case score >= 7.0:
		return entities.SeverityHigh
	case score >= 4.0:
		return entities.SeverityMedium
	case score > 0:
		return entities.SeverityLow
	default:
		return entities.SeverityInfo
	}
}

// extractCVSS returns the first numeric severity score. Vector-string
// scores (CVSS:3.1/AV:N/...) are not parsed and yield zero.
func extractCVSS(vuln osvVulnerability) float64 {
	for _, s := range vuln.Severity {
		if score, err := strconv.ParseFloat(s.Score, 64); err == nil {
			return score
		}
	}
	return 0
}

// OSV API request/response types

type osvQueryRequest struct {
	Package osvPackage `json:"package"`
	Version string     `json:"version"`
}

type osvPackage struct {
	Name      string `json:"name"`
	Ecosystem string `json:"ecosystem"`
}

type osvQueryResponse struct {
	Vulns []osvVulnerability `json:"vulns"`
}

type osvVulnerability struct {
	ID               string        `json:"id"`
	Summary          string        `json:"summary"`
	Details          string        `json:"details"`
	Severity         []osvSeverity `json:"severity,omitempty"`
	DatabaseSpecific struct {
		Severity string `json:"severity"`
	} `json:"database_specific"`
}

type osvSeverity struct {
	Type  string `json:"type"`
	Score string `json:"score"`
}

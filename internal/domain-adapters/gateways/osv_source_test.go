package gateways

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ochairo/depsentry/internal/domain/entities"
)

// Test querying OSV with a mock API server
func TestOSVSource_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Method = %s, want POST", r.Method)
		}

		var req osvQueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Package.Name != "lodash" {
			t.Errorf("Package.Name = %s, want lodash", req.Package.Name)
		}
		if req.Package.Ecosystem != "npm" {
			t.Errorf("Package.Ecosystem = %s, want npm", req.Package.Ecosystem)
		}
		if req.Version != "4.17.20" {
			t.Errorf("Version = %s, want 4.17.20", req.Version)
		}

		response := osvQueryResponse{
			Vulns: []osvVulnerability{
				{
					ID:       "GHSA-35jh-r3h4-6jhm",
					Summary:  "Command injection in lodash",
					Severity: []osvSeverity{{Type: "CVSS_V3", Score: "7.2"}},
				},
			},
		}
		//nolint:errcheck // Test server response
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	source := NewOSVSource("npm")
	source.apiURL = server.URL

	records, err := source.Query(context.Background(), "lodash", "4.17.20")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Query returned %d records, want 1", len(records))
	}
	if records[0].ID != "GHSA-35jh-r3h4-6jhm" {
		t.Errorf("ID = %s, want GHSA-35jh-r3h4-6jhm", records[0].ID)
	}
	if records[0].Severity != entities.SeverityHigh {
		t.Errorf("Severity = %s, want high", records[0].Severity)
	}
	if records[0].CVSSScore != 7.2 {
		t.Errorf("CVSSScore = %v, want 7.2", records[0].CVSSScore)
	}
}

// Test that the database-specific label wins over the CVSS bracket
func TestOSVSource_Query_DatabaseSpecificSeverity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		vuln := osvVulnerability{
			ID:       "GHSA-xxxx",
			Summary:  "Prototype pollution",
			Severity: []osvSeverity{{Type: "CVSS_V3", Score: "5.0"}},
		}
		vuln.DatabaseSpecific.Severity = "CRITICAL"
		//nolint:errcheck // Test server response
		json.NewEncoder(w).Encode(osvQueryResponse{Vulns: []osvVulnerability{vuln}})
	}))
	defer server.Close()

	source := NewOSVSource("pypi")
	source.apiURL = server.URL

	records, err := source.Query(context.Background(), "requests", "2.0.0")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Query returned %d records, want 1", len(records))
	}
	if records[0].Severity != entities.SeverityCritical {
		t.Errorf("Severity = %s, want critical", records[0].Severity)
	}
}

// Test that a non-200 response surfaces as an error
func TestOSVSource_Query_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := NewOSVSource("npm")
	source.apiURL = server.URL

	if _, err := source.Query(context.Background(), "lodash", "4.17.20"); err == nil {
		t.Fatal("Expected error for HTTP 500, got nil")
	}
}

// Test that an unmapped ecosystem short-circuits without a request
func TestOSVSource_Query_UnknownEcosystem(t *testing.T) {
	source := NewOSVSource("homebrew")
	source.apiURL = "http://127.0.0.1:1" // must never be contacted

	records, err := source.Query(context.Background(), "wget", "1.21")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Query returned %d records, want 0", len(records))
	}
}

// Test CVSS vector strings yield a zero score and info severity
func TestExtractCVSS_VectorString(t *testing.T) {
	vuln := osvVulnerability{
		ID:       "GHSA-yyyy",
		Severity: []osvSeverity{{Type: "CVSS_V3", Score: "CVSS:3.1/AV:N/AC:L"}},
	}

	if got := extractCVSS(vuln); got != 0 {
		t.Errorf("extractCVSS = %v, want 0", got)
	}
	if got := extractSeverity(vuln); got != entities.SeverityInfo {
		t.Errorf("extractSeverity = %s, want info", got)
	}
}

// Test source naming per ecosystem
func TestOSVSource_Name(t *testing.T) {
	if got := NewOSVSource("cargo").Name(); got != "osv:cargo" {
		t.Errorf("Name = %s, want osv:cargo", got)
	}
}

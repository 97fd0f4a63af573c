package entities

import "strings"

// Severity is a totally ordered vulnerability severity level.
// Higher values are more severe, so severities compare with plain
// language operators (a > b) instead of list lookups.
type Severity int

// Severity levels, least to most severe.
const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the canonical lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return "info"
	}
}

// MarshalJSON encodes the severity as its canonical name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a severity from its name. Unknown names map to info.
func (s *Severity) UnmarshalJSON(data []byte) error {
	*s = ParseSeverity(strings.Trim(string(data), `"`))
	return nil
}

// ParseSeverity maps a severity name to its ordered level.
// Unknown names map to SeverityInfo, the least severe level.
func ParseSeverity(name string) Severity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium", "moderate":
		return SeverityMedium
	case "low":
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// MaxSeverity returns the most severe level among the given records.
// Ties keep the first record's level, preserving source-arrival order.
func MaxSeverity(records []VulnerabilityRecord) Severity {
	max := SeverityInfo
	for _, r := range records {
		if r.Severity > max {
			max = r.Severity
		}
	}
	return max
}

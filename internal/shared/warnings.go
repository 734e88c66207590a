package shared

import (
	"fmt"
	"sort"
)

// WarningType represents different types of warnings
type WarningType int

const (
	NoMatchWarning WarningType = iota
	SearchWarning
	ReleaseFetchWarning
)

// Warning represents a single warning with context
type Warning struct {
	Type    WarningType
	Message string
	Context string // Track context, e.g. "title - artist"
	Details string // Additional details like error message
}

// WarningCollector collects warnings during a tagging run
type WarningCollector struct {
	warnings []Warning
	enabled  bool
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector(enabled bool) *WarningCollector {
	return &WarningCollector{
		warnings: make([]Warning, 0),
		enabled:  enabled,
	}
}

// AddWarning adds a warning to the collector
func (wc *WarningCollector) AddWarning(warningType WarningType, context, message, details string) {
	if !wc.enabled {
		return
	}

	wc.warnings = append(wc.warnings, Warning{
		Type:    warningType,
		Message: message,
		Context: context,
		Details: details,
	})
}

// AddNoMatchWarning records a track that produced no catalog match
func (wc *WarningCollector) AddNoMatchWarning(track string) {
	wc.AddWarning(NoMatchWarning, track, "no matching release found", "")
}

// AddSearchWarning records a failed catalog search
func (wc *WarningCollector) AddSearchWarning(track, details string) {
	wc.AddWarning(SearchWarning, track, "catalog search failed", details)
}

// AddReleaseFetchWarning records a failed release detail fetch
func (wc *WarningCollector) AddReleaseFetchWarning(track, details string) {
	wc.AddWarning(ReleaseFetchWarning, track, "release lookup failed", details)
}

// Count returns the number of collected warnings
func (wc *WarningCollector) Count() int {
	return len(wc.warnings)
}

// HasWarnings reports whether any warnings were collected
func (wc *WarningCollector) HasWarnings() bool {
	return len(wc.warnings) > 0
}

// Warnings returns the collected warnings
func (wc *WarningCollector) Warnings() []Warning {
	return wc.warnings
}

// PrintSummary prints collected warnings grouped by type
func (wc *WarningCollector) PrintSummary() {
	if !wc.enabled || len(wc.warnings) == 0 {
		return
	}

	grouped := make(map[WarningType][]Warning)
	for _, w := range wc.warnings {
		grouped[w.Type] = append(grouped[w.Type], w)
	}

	types := make([]int, 0, len(grouped))
	for t := range grouped {
		types = append(types, int(t))
	}
	sort.Ints(types)

	ColorWarning.Printf("\n⚠️ %d warning(s) during tagging:\n", len(wc.warnings))
	for _, t := range types {
		for _, w := range grouped[WarningType(t)] {
			line := fmt.Sprintf("  - %s: %s", TruncateString(w.Context, 60), w.Message)
			if w.Details != "" {
				line += fmt.Sprintf(" (%s)", TruncateString(w.Details, 120))
			}
			ColorWarning.Println(line)
		}
	}
}

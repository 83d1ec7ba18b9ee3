package listing

import (
	"strings"

	"horario/internal/schedule"
)

// Format identifies which of the two supported listing layouts a paste uses.
type Format int

const (
	// FormatLegacy is the older export: one field per line, bilingual UI
	// chrome, one record per meeting day.
	FormatLegacy Format = iota
	// FormatTabular is the newer export: one tab-separated row per section,
	// day runs like "MoWeFr" collapsed into a single schedule expression.
	FormatTabular
)

func (f Format) String() string {
	if f == FormatTabular {
		return "tabular"
	}
	return "legacy"
}

// Detect scans the whole paste once for distinguishing substrings of the
// tabular layout: known course-code prefixes, the institution marker, or the
// column-header triplet. Anything else falls back to the legacy walk, so
// ambiguous or third-party layouts degrade silently.
func Detect(raw string) Format {
	if strings.Contains(raw, "MLING") ||
		strings.Contains(raw, "MLHUM") ||
		strings.Contains(raw, "MLECE") ||
		strings.Contains(raw, "UPANA") ||
		(strings.Contains(raw, "Code") && strings.Contains(raw, "Title") && strings.Contains(raw, "Schedule")) {
		return FormatTabular
	}
	return FormatLegacy
}

// Parse extracts class records from a pasted listing. It never fails:
// unrecognized input yields an empty slice.
func Parse(raw string) []schedule.Class {
	if Detect(raw) == FormatTabular {
		return parseTabular(raw)
	}
	return parseLegacy(raw)
}

// nonBlankLines splits the paste into trimmed, non-empty lines.
func nonBlankLines(raw string) []string {
	split := strings.Split(raw, "\n")
	lines := make([]string, 0, len(split))
	for _, line := range split {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

// pick pairs a collected room or instructor with a meeting slot by index,
// falling back to the first collected value, then to the unassigned sentinel.
// Index pairing when counts mismatch is an inherited heuristic from the
// source exports; see DESIGN.md.
func pick(values []string, index int) string {
	if index < len(values) {
		return values[index]
	}
	if len(values) > 0 {
		return values[0]
	}
	return schedule.Unassigned
}

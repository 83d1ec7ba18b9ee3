package listing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"horario/internal/schedule"
)

var (
	// tabularRecordStart matches the beginning of an export row: an optional
	// "Select CODE: Title" prefix, a one-letter type tag, and a course code.
	tabularRecordStart = regexp.MustCompile(`^(?:Select\s+\w+:\s+[^\t]+\s+)?([RE])\s+([A-Z]{2,}\d+)\s+(.+)`)

	// tabularSelectPrefix strips the "Select CODE: Title" column when the row
	// carried it as a leading tab-separated field.
	tabularSelectPrefix = regexp.MustCompile(`^Select\s+\w+:\s+[^\t]+\t(.+)`)

	// tabularPositional recovers the fields from rows that lost their tab
	// delimiters in the paste. Groups: type, code, title, section, schedule
	// expression, credits, campus, building blob, instructor.
	tabularPositional = regexp.MustCompile(`(?i)([RE])\s+(\w+)\s+(.+?)\s+(\d{3,4})\s+([A-Za-z]{2,}[A-Za-z\s]*\d{1,2}:\d{2}(?:AM|PM)\s*-\s*\d{1,2}:\d{2}(?:AM|PM)(?:\.\.\.)?)\s+(\d+\.\d+)\s+(\w+)\s+(.+?)\s+([A-Z][a-záéíóú]+(?:\s+[A-Z][a-záéíóú]+)*(?:\s+[a-z]+\s+[a-z]+)?(?:,\s*[A-Z][a-záéíóú]+(?:\s+[A-Z][a-záéíóú]+)*)*)`)

	// tabularSchedule decodes "MoWeFr 8:30AM - 9:59AM" style expressions.
	tabularSchedule = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}:\d{2}(?:AM|PM))\s*-\s*(\d{1,2}:\d{2}(?:AM|PM))`)

	tabularPager = regexp.MustCompile(`^Previous\d+Next$`)

	tabularTypeCode = regexp.MustCompile(`([RE])\s+(\w+)`)
)

// tabularRow carries the raw column values of one export row before any
// normalization.
type tabularRow struct {
	code         string
	title        string
	section      string
	scheduleExpr string
	credits      string
	campus       string
	building     string
	location     string
	instructor   string
	status       string
	availability string
}

func parseTabular(raw string) []schedule.Class {
	lines := nonBlankLines(raw)
	classes := make([]schedule.Class, 0, len(lines))
	seen := make(map[string]struct{})

	for _, line := range lines {
		if isTabularHeader(line) || isTabularNoise(line) {
			continue
		}
		if !tabularRecordStart.MatchString(line) {
			continue
		}
		row, ok := splitTabularRow(line)
		if !ok {
			continue
		}
		// Repeated export rows collapse on (code, section, raw schedule).
		key := row.code + "-" + row.section + "-" + row.scheduleExpr
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if cls, ok := classFromRow(row); ok {
			classes = append(classes, cls)
		}
	}
	return classes
}

func isTabularHeader(line string) bool {
	return (strings.Contains(line, "Add") && strings.Contains(line, "Code") && strings.Contains(line, "Title")) ||
		(strings.Contains(line, "Showing") && strings.Contains(line, "entries")) ||
		line == "Search" ||
		tabularPager.MatchString(line) ||
		line == "ALL"
}

func isTabularNoise(line string) bool {
	return line == "Show" ||
		line == "entries" ||
		utf8.RuneCountInString(line) < 5
}

// splitTabularRow extracts column values from one row, preferring the tab
// delimiters the export writes and falling back to a positional match when
// the paste flattened them into spaces.
func splitTabularRow(line string) (tabularRow, bool) {
	clean := line
	if m := tabularSelectPrefix.FindStringSubmatch(line); m != nil {
		clean = m[1]
	}

	parts := tabFields(clean)
	if len(parts) < 5 {
		m := tabularPositional.FindStringSubmatch(clean)
		if m == nil {
			return tabularRow{}, false
		}
		return tabularRow{
			code:         m[2],
			title:        m[3],
			section:      m[4],
			scheduleExpr: m[5],
			credits:      m[6],
			campus:       m[7],
			building:     "*various*",
			location:     "Mixcoac",
			instructor:   m[9],
			status:       "Available",
		}, true
	}

	typeCode := tabularTypeCode.FindStringSubmatch(parts[0])
	if typeCode == nil {
		return tabularRow{}, false
	}

	instructor := fieldAt(parts, 8)
	if instructor == "" {
		instructor = schedule.Unassigned
	}
	return tabularRow{
		code:         typeCode[2],
		title:        fieldAt(parts, 1),
		section:      fieldAt(parts, 2),
		scheduleExpr: fieldAt(parts, 3),
		credits:      fieldAt(parts, 4),
		campus:       fieldAt(parts, 5),
		building:     fieldAt(parts, 6),
		location:     fieldAt(parts, 7),
		instructor:   instructor,
		status:       fieldAt(parts, 10),
		availability: fieldAt(parts, 11),
	}, true
}

func tabFields(line string) []string {
	raw := strings.Split(line, "\t")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	return parts
}

func fieldAt(parts []string, index int) string {
	if index < len(parts) {
		return parts[index]
	}
	return ""
}

// classFromRow decodes the schedule expression and assembles the record. Rows
// whose expression yields no time pair or no day contribute nothing.
func classFromRow(row tabularRow) (schedule.Class, bool) {
	expr := strings.TrimSpace(strings.Replace(row.scheduleExpr, "...", "", 1))
	m := tabularSchedule.FindStringSubmatch(expr)
	if m == nil {
		return schedule.Class{}, false
	}

	days := decodeDayRun(m[1])
	if len(days) == 0 {
		return schedule.Class{}, false
	}

	return schedule.Class{
		Subject:    row.code + " - " + row.title,
		Section:    row.section,
		CRN:        row.section,
		Days:       days,
		Start:      m[2],
		End:        m[3],
		Room:       normalizeRoom(row.building),
		Instructor: normalizeInstructor(row.instructor),
		Modality:   schedule.ModalityInPerson,
	}, true
}

// decodeDayRun splits a concatenated day run ("TuWeTh") into localized day
// labels by greedy substring removal, consuming at most one occurrence of
// each code in week order.
func decodeDayRun(run string) []string {
	days := make([]string, 0, len(schedule.DayCodes))
	remaining := run
	for _, code := range schedule.DayCodes {
		if strings.Contains(remaining, code) {
			days = append(days, schedule.DayLabel(code))
			remaining = strings.Replace(remaining, code, "", 1)
		}
	}
	return days
}

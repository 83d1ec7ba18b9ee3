package listing

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"horario/internal/schedule"
	"horario/internal/textutil"
)

// The legacy export is one field per line: a subject heading, then per
// section a bare CRN line, a section label line, and a run of meeting lines
// with rooms and instructors interleaved, all wrapped in bilingual UI chrome.
// The walk below keeps the current subject as explicit state and hands each
// CRN line to a bounded block scan.

var (
	legacySubjectNumeric  = regexp.MustCompile(`^[A-Z_]{3,}\s+[A-Z]{2,}\d+\s*-\s*.+`)
	legacySubjectLettered = regexp.MustCompile(`^[A-Z_]{3,}\s+[A-Z-]{2,}\s*-\s*.+`)
	legacySubjectPrefix   = regexp.MustCompile(`^[A-Z_]{3,}\s+`)

	legacyCRN = regexp.MustCompile(`^\d{4,5}$`)

	legacyEnglishSlot = regexp.MustCompile(`^(Mo|Tu|We|Th|Fr|Sa|Su)\s+(\d{1,2}:\d{2}(?:AM|PM))\s*-\s*(\d{1,2}:\d{2}(?:AM|PM))$`)
	legacySpanishSlot = regexp.MustCompile(`^(Lun|Mar|Miérc|Jue|Vier|Sáb|Dom|V)\s+\d{1,2}:\d{2}\s*-\s*\d{1,2}:\d{2}$`)
	legacyDayStart    = regexp.MustCompile(`^(Mo|Tu|We|Th|Fr|Sa|Su)`)
	legacyRoomPrefix  = regexp.MustCompile(`^(Salón|Laboratorio|Aula|Sala|Lab)`)

	legacyDigitStart   = regexp.MustCompile(`^\d`)
	legacyPageFraction = regexp.MustCompile(`^\d+/\d+$`)

	legacy24HourPair = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)
	legacyTimePair   = regexp.MustCompile(`(\d{1,2}:\d{2}(?:AM|PM)?)\s*-\s*(\d{1,2}:\d{2}(?:AM|PM)?)`)
)

// legacyDayLabels accepts both the English codes and the localized labels the
// fallback scan sees, plus the single-letter "V" alias some terms use for
// Friday.
var legacyDayLabels = map[string]string{
	"Lun": "Lun", "Mar": "Mar", "Miérc": "Miérc", "Jue": "Jue",
	"Vier": "Vier", "Sáb": "Sáb", "Dom": "Dom", "V": "Vier",
	"Mo": "Lun", "Tu": "Mar", "We": "Miérc", "Th": "Jue",
	"Fr": "Vier", "Sa": "Sáb", "Su": "Dom",
}

func legacyDayLabel(day string) string {
	if label, ok := legacyDayLabels[day]; ok {
		return label
	}
	return day
}

// fallbackScanLimit bounds how far past a block start the alternate scan may
// look before giving up on the section.
const fallbackScanLimit = 20

type legacyWalk struct {
	lines   []string
	subject string
}

func parseLegacy(raw string) []schedule.Class {
	walk := legacyWalk{lines: nonBlankLines(raw)}
	return walk.run()
}

func (w *legacyWalk) run() []schedule.Class {
	var classes []schedule.Class
	i := 0
	for i < len(w.lines) {
		line := w.lines[i]

		if subject, ok := subjectTitle(line); ok {
			w.subject = subject
			i++
			continue
		}
		if isLegacyTableHeader(line) || isLegacyBoilerplate(line) {
			i++
			continue
		}
		if legacyCRN.MatchString(line) {
			classes = append(classes, w.parseBlock(i, line)...)
			i = w.nextBlock(i)
			continue
		}
		i++
	}
	return classes
}

// subjectTitle recognizes a heading like "INGENIERIA MAT102 - Álgebra" and
// returns it with the leading all-caps faculty token stripped.
func subjectTitle(line string) (string, bool) {
	if !legacySubjectNumeric.MatchString(line) && !legacySubjectLettered.MatchString(line) {
		return "", false
	}
	return strings.TrimSpace(legacySubjectPrefix.ReplaceAllString(line, "")), true
}

func isLegacyTableHeader(line string) bool {
	return (strings.Contains(line, "Class") || strings.Contains(line, "Clase")) &&
		(strings.Contains(line, "Section") || strings.Contains(line, "Sección")) &&
		(strings.Contains(line, "Days & Times") || strings.Contains(line, "Días y Horas"))
}

// isLegacyBoilerplate drops the catalog page's UI chrome: cart and status
// widgets, bilingual open/closed toggles, fixed institutional strings, page
// fractions, and modality legends.
func isLegacyBoilerplate(line string) bool {
	switch line {
	case "Open", "Closed", "Abierta", "Cerrada":
		return true
	}
	if strings.Contains(line, "Open") && strings.Contains(line, "Closed") {
		return true
	}
	if strings.Contains(line, "Abierta") && strings.Contains(line, "Cerrada") {
		return true
	}
	for _, marker := range []string{
		"Shopping Cart", "Carrito", "Your shopping cart", "Su carrito",
		"class section(s) found", "secciones de clase encontradas",
		"Collapsible section", "Sección Contraíble",
		"Show Open Classes Only", "Course Career",
		"Universidad Panamericana", "Mi Horario", "Búsqueda de Clases",
		"Rtdo Búsq Cls", "Se prevé que las sesiones", "Notas:",
		"Selección", "Presencial", "En línea", "Híbrida",
		"Personal", "INGLES", "Icono Ir a Inicio",
	} {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return legacyPageFraction.MatchString(line)
}

// parseBlock consumes one section block starting at the CRN line. The line
// after the CRN is unconditionally the section label; from there the primary
// scan collects English meeting slots with their trailing room and instructor
// lines until the block ends. A block whose primary scan finds no slots is
// retried with the alternate scan.
func (w *legacyWalk) parseBlock(start int, crn string) []schedule.Class {
	i := start + 1
	if i >= len(w.lines) {
		return nil
	}
	section := w.lines[i]
	i++

	var slots [][]string
	var rooms, instructors []string

	for i < len(w.lines) {
		line := w.lines[i]

		if m := legacyEnglishSlot.FindStringSubmatch(line); m != nil {
			slots = append(slots, m)
			i++

			if i < len(w.lines) && !legacyDigitStart.MatchString(w.lines[i]) {
				rooms = append(rooms, w.lines[i])
				i++
			}
			if i < len(w.lines) && !legacyDigitStart.MatchString(w.lines[i]) && !legacyDayStart.MatchString(w.lines[i]) {
				candidate := w.lines[i]
				if !strings.Contains(candidate, "/") && !strings.Contains(candidate, "Open") && !strings.Contains(candidate, "Select") {
					instructors = append(instructors, candidate)
				}
				i++
			}
			continue
		}

		if legacyDigitStart.MatchString(line) || line == "Open" || line == "Closed" || strings.Contains(line, "Select") {
			break
		}
		i++
	}

	if len(slots) == 0 {
		return w.fallbackBlock(start, crn, section)
	}

	classes := make([]schedule.Class, 0, len(slots))
	for j, m := range slots {
		classes = append(classes, schedule.Class{
			Subject:    w.subject,
			Section:    section,
			CRN:        crn,
			Days:       []string{schedule.DayLabel(m[1])},
			Start:      m[2],
			End:        m[3],
			Room:       pick(rooms, j),
			Instructor: textutil.TitleWords(pick(instructors, j)),
			Modality:   schedule.ModalityInPerson,
		})
	}
	return classes
}

// fallbackBlock is the alternate scan for blocks the primary scan could not
// read: it additionally accepts localized day abbreviations, 24-hour times
// without AM/PM, explicit room-prefix lines, the "P/Asig" sentinel, and a
// heuristic instructor classifier. The scan is bounded and pairs collected
// rooms and instructors with slots the same positional way.
func (w *legacyWalk) fallbackBlock(start int, crn, section string) []schedule.Class {
	type meeting struct {
		day   string
		times string
	}

	var meetings []meeting
	var rooms, instructors []string

	for i := start + 2; i < len(w.lines) && i < start+fallbackScanLimit; i++ {
		line := w.lines[i]

		// The scan stops only at a full "FACULTY CODE - Title" heading.
		// Bare all-caps lines like "MARIA ELENA GARZA" must stay visible
		// to the instructor classifier below.
		if legacyCRN.MatchString(line) ||
			strings.Contains(line, "Abierta") ||
			strings.Contains(line, "Cerrada") ||
			strings.Contains(line, "Selección") ||
			legacySubjectNumeric.MatchString(line) ||
			legacySubjectLettered.MatchString(line) {
			break
		}

		switch {
		case legacySpanishSlot.MatchString(line) || legacyEnglishSlot.MatchString(line):
			day, times, _ := strings.Cut(line, " ")
			meetings = append(meetings, meeting{day: day, times: times})
		case legacyRoomPrefix.MatchString(line):
			rooms = append(rooms, line)
		case line == "P/Asig":
			rooms = append(rooms, schedule.Unassigned)
		case isInstructorCandidate(line):
			instructors = append(instructors, line)
		}
	}

	if len(meetings) == 0 {
		return nil
	}

	classes := make([]schedule.Class, 0, len(meetings))
	for j, m := range meetings {
		times := m.times
		if !strings.Contains(times, "AM") && !strings.Contains(times, "PM") {
			times = to12HourPair(times)
		}
		pair := legacyTimePair.FindStringSubmatch(times)
		if pair == nil {
			continue
		}
		classes = append(classes, schedule.Class{
			Subject:    w.subject,
			Section:    section,
			CRN:        crn,
			Days:       []string{legacyDayLabel(m.day)},
			Start:      pair[1],
			End:        pair[2],
			Room:       pick(rooms, j),
			Instructor: textutil.TitleWords(pick(instructors, j)),
			Modality:   schedule.ModalityInPerson,
		})
	}
	return classes
}

// isInstructorCandidate classifies a free-text line as a probable instructor
// name: long enough, capitalized, space-containing, and none of the known
// chrome or status tokens.
func isInstructorCandidate(line string) bool {
	if utf8.RuneCountInString(line) <= 5 {
		return false
	}
	if legacyDigitStart.MatchString(line) || legacyPageFraction.MatchString(line) {
		return false
	}
	if !strings.Contains(line, " ") {
		return false
	}
	for _, marker := range []string{"/", "Open", "Select", "Ordinario", "DIS", "LAB", "LEC", "Personal", "INGLES"} {
		if strings.Contains(line, marker) {
			return false
		}
	}
	if legacyRoomPrefix.MatchString(line) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.ToUpper(first) == first
}

// to12HourPair converts a 24-hour "13:00-14:30" expression to the 12-hour
// display form: hour 0 maps to 12AM, 1-11 keep AM, 12 is 12PM, 13-23 drop 12
// and take PM. Expressions that do not look like a time pair pass through.
func to12HourPair(expr string) string {
	m := legacy24HourPair.FindStringSubmatch(expr)
	if m == nil {
		return expr
	}
	start := to12Hour(m[1], m[2])
	end := to12Hour(m[3], m[4])
	return start + " - " + end
}

func to12Hour(hourText, minutes string) string {
	hour, _ := strconv.Atoi(hourText)
	switch {
	case hour == 0:
		return "12:" + minutes + "AM"
	case hour < 12:
		return strconv.Itoa(hour) + ":" + minutes + "AM"
	case hour == 12:
		return "12:" + minutes + "PM"
	default:
		return strconv.Itoa(hour-12) + ":" + minutes + "PM"
	}
}

// nextBlock advances from a consumed block to the next CRN or subject
// heading, skipping anything the block scans left behind.
func (w *legacyWalk) nextBlock(start int) int {
	for i := start + 1; i < len(w.lines); i++ {
		line := w.lines[i]
		if legacyCRN.MatchString(line) {
			return i
		}
		if legacySubjectNumeric.MatchString(line) || legacySubjectLettered.MatchString(line) {
			return i
		}
	}
	return len(w.lines)
}

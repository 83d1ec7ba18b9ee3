package schedule

// DayCodes lists the two-letter day codes both listing layouts use, in week
// order. Tabular schedule expressions concatenate them ("MoWeFr"); the legacy
// layout emits one per line.
var DayCodes = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

var dayLabels = map[string]string{
	"Mo": "Lun",
	"Tu": "Mar",
	"We": "Miérc",
	"Th": "Jue",
	"Fr": "Vier",
	"Sa": "Sáb",
	"Su": "Dom",
}

// DayLabel translates a two-letter day code into the localized label records
// carry. Unknown codes pass through unchanged, matching the tolerant posture
// of the rest of the parse path.
func DayLabel(code string) string {
	if label, ok := dayLabels[code]; ok {
		return label
	}
	return code
}

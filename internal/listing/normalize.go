package listing

import (
	"strings"

	"horario/internal/schedule"
	"horario/internal/textutil"
)

// normalizeInstructor maps the export's placeholder strings onto the
// unassigned sentinel and rewrites "Last, First" names into display order.
func normalizeInstructor(name string) string {
	name = textutil.CollapseSpaces(name)
	if name == "" {
		return schedule.Unassigned
	}
	if strings.Contains(name, "Pendiente de Asignar") || strings.Contains(name, "Personal") {
		return schedule.Unassigned
	}
	return textutil.FlipComma(name)
}

// normalizeRoom resolves the export's building column. The "*various*"
// sentinel and empty values become unassigned; "Edificio X : R n" renders as
// "R n de X".
func normalizeRoom(building string) string {
	room := textutil.CollapseSpaces(building)
	if room == "" || room == "*various*" {
		return schedule.Unassigned
	}
	if strings.Contains(room, ":") {
		parts := strings.Split(room, ":")
		if len(parts) >= 2 {
			name := strings.TrimSpace(strings.Replace(strings.TrimSpace(parts[0]), "Edificio", "", 1))
			return strings.TrimSpace(parts[1]) + " de " + name
		}
	}
	return room
}

package planner

import (
	"sort"

	"horario/internal/schedule"
)

// Stats summarizes one combination for display: record count, distinct
// subjects, and the sorted list of meeting days. Pure projection, no side
// effects.
func Stats(combination schedule.Combination) schedule.Stats {
	subjects := make(map[string]struct{})
	days := make(map[string]struct{})
	for _, cls := range combination.Classes {
		subjects[cls.Subject] = struct{}{}
		for _, day := range cls.Days {
			days[day] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Strings(sorted)

	return schedule.Stats{
		TotalClasses: len(combination.Classes),
		Subjects:     len(subjects),
		DaysCount:    len(days),
		Days:         sorted,
	}
}

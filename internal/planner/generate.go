package planner

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"horario/internal/schedule"
)

// ErrTooManyCombinations reports that generation was refused because the
// Cartesian product would exceed the configured ceiling.
var ErrTooManyCombinations = errors.New("too many combinations")

// Options controls generation.
type Options struct {
	// MaxCombinations refuses generation when the product of per-subject
	// section counts exceeds it. Zero means unlimited.
	MaxCombinations int
}

// Generate produces every one-class-per-subject assignment over the given
// records and flags each as conflicting or not.
//
// Records are grouped by subject in first-occurrence order, which makes the
// output deterministic for a deterministic input ordering. The product of
// zero subjects is a single empty combination. Each combination's id is its
// index in product order; ids have no meaning across runs.
//
// The combination count is exponential in the subject count. When
// Options.MaxCombinations is set and the product would exceed it, Generate
// returns ErrTooManyCombinations (wrapped with the counts) before
// materializing anything. This is the only error the core ever returns.
func Generate(classes []schedule.Class, opts Options) ([]schedule.Combination, error) {
	groups, order := groupBySubject(classes)

	if opts.MaxCombinations > 0 {
		if count := productSize(groups, order); count > opts.MaxCombinations {
			return nil, fmt.Errorf("%w: %d subjects yield %d combinations (limit %d)",
				ErrTooManyCombinations, len(order), count, opts.MaxCombinations)
		}
	}

	picks := cartesian(groups, order)
	combinations := make([]schedule.Combination, len(picks))
	for i, chosen := range picks {
		combinations[i] = schedule.Combination{
			ID:        "combo-" + strconv.Itoa(i),
			Classes:   chosen,
			Conflicts: Conflicts(chosen),
		}
	}
	return combinations, nil
}

// Count returns the number of combinations Generate would produce for the
// given records without materializing them. Saturates at math.MaxInt.
func Count(classes []schedule.Class) int {
	groups, order := groupBySubject(classes)
	return productSize(groups, order)
}

// Conflicts reports whether any two meeting slots across the given records
// collide: same day with overlapping half-open time intervals. The check is
// pairwise over every expanded slot.
func Conflicts(classes []schedule.Class) bool {
	var slots []schedule.Slot
	for _, cls := range classes {
		slots = append(slots, cls.Slots()...)
	}
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].Overlaps(slots[j]) {
				return true
			}
		}
	}
	return false
}

func groupBySubject(classes []schedule.Class) (map[string][]schedule.Class, []string) {
	groups := make(map[string][]schedule.Class)
	var order []string
	for _, cls := range classes {
		if _, ok := groups[cls.Subject]; !ok {
			order = append(order, cls.Subject)
		}
		groups[cls.Subject] = append(groups[cls.Subject], cls)
	}
	return groups, order
}

func productSize(groups map[string][]schedule.Class, order []string) int {
	count := 1
	for _, subject := range order {
		size := len(groups[subject])
		if size == 0 {
			return 0
		}
		if count > math.MaxInt/size {
			return math.MaxInt
		}
		count *= size
	}
	return count
}

// cartesian recursively builds the product: the product over zero subjects is
// one empty pick, and each subject prepends every one of its sections to
// every pick of the remaining subjects.
func cartesian(groups map[string][]schedule.Class, order []string) [][]schedule.Class {
	if len(order) == 0 {
		return [][]schedule.Class{{}}
	}
	rest := cartesian(groups, order[1:])
	first := groups[order[0]]

	picks := make([][]schedule.Class, 0, len(first)*len(rest))
	for _, cls := range first {
		for _, tail := range rest {
			pick := make([]schedule.Class, 0, len(tail)+1)
			pick = append(pick, cls)
			pick = append(pick, tail...)
			picks = append(picks, pick)
		}
	}
	return picks
}

package schedule

// Unassigned is the sentinel used whenever a room or instructor cannot be
// resolved from the source listing. Records never carry an empty string for
// either field.
const Unassigned = "Por asignar"

// ModalityInPerson is the only modality either supported listing layout emits.
const ModalityInPerson = "Presencial"

// Class is one scheduled meeting pattern for one section of one subject.
//
// Subject combines the course code with the course title ("CODE - Title") and
// is the grouping key for combination generation. Section and CRN are derived
// from the same source field and are always equal; together with the raw
// schedule expression they discriminate sections within a subject.
//
// A Class from the tabular layout may span several days with identical start
// and end times; the legacy layout emits one Class per day instead.
type Class struct {
	Subject    string
	Section    string
	CRN        string
	Days       []string
	Start      string
	End        string
	Room       string
	Instructor string
	Modality   string
}

// Slot is one concrete meeting: a single day with start and end expressed in
// minutes since midnight. The interval is half open, so slots that merely
// touch at an endpoint do not overlap.
type Slot struct {
	Day   string
	Start int
	End   int
}

// Slots expands the class into one Slot per meeting day.
func (c Class) Slots() []Slot {
	slots := make([]Slot, 0, len(c.Days))
	start := TimeToMinutes(c.Start)
	end := TimeToMinutes(c.End)
	for _, day := range c.Days {
		slots = append(slots, Slot{Day: day, Start: start, End: end})
	}
	return slots
}

// Overlaps reports whether two slots collide: same day and overlapping
// half-open time intervals.
func (s Slot) Overlaps(other Slot) bool {
	if s.Day != other.Day {
		return false
	}
	return s.Start < other.End && s.End > other.Start
}

// Combination is one full assignment of exactly one Class per subject.
// ID is an index-derived identifier unique within one generation run; it
// carries no meaning across runs. Conflicts is computed once at creation.
type Combination struct {
	ID        string
	Classes   []Class
	Conflicts bool
}

// Stats summarizes one combination for display. It is a pure projection with
// no behavior of its own.
type Stats struct {
	TotalClasses int
	Subjects     int
	DaysCount    int
	Days         []string
}

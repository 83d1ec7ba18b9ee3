package listing_test

import (
	"reflect"
	"strings"
	"testing"

	"horario/internal/listing"
	"horario/internal/schedule"
)

func TestParseLegacyBlocks(t *testing.T) {
	raw := strings.Join([]string{
		"Universidad Panamericana",
		"Carrito de Compras",
		"CIENCIAS QUI205 - Química Orgánica",
		"Clase Sección Días y Horas Sala Instructor",
		"12345",
		"A01",
		"Mo 8:00AM - 9:30AM",
		"Salón 201",
		"García Luna, Pedro",
		"We 8:00AM - 9:30AM",
		"Salón 201",
		"García Luna, Pedro",
		"67890",
		"B02",
		"Tu 4:00PM - 5:30PM",
		"Lab 3",
		"Open",
	}, "\n")

	classes := listing.Parse(raw)
	if len(classes) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(classes), classes)
	}

	for i, want := range []struct {
		day, start, end, room, instructor, section, crn string
	}{
		{"Lun", "8:00AM", "9:30AM", "Salón 201", "García Luna, Pedro", "A01", "12345"},
		{"Miérc", "8:00AM", "9:30AM", "Salón 201", "García Luna, Pedro", "A01", "12345"},
		{"Mar", "4:00PM", "5:30PM", "Lab 3", schedule.Unassigned, "B02", "67890"},
	} {
		got := classes[i]
		if got.Subject != "QUI205 - Química Orgánica" {
			t.Errorf("record %d subject = %q", i, got.Subject)
		}
		if !reflect.DeepEqual(got.Days, []string{want.day}) {
			t.Errorf("record %d days = %v, want [%s]", i, got.Days, want.day)
		}
		if got.Start != want.start || got.End != want.end {
			t.Errorf("record %d times = %q-%q, want %q-%q", i, got.Start, got.End, want.start, want.end)
		}
		if got.Room != want.room {
			t.Errorf("record %d room = %q, want %q", i, got.Room, want.room)
		}
		if got.Instructor != want.instructor {
			t.Errorf("record %d instructor = %q, want %q", i, got.Instructor, want.instructor)
		}
		if got.Section != want.section || got.CRN != want.crn {
			t.Errorf("record %d section/crn = %q/%q, want %q/%q", i, got.Section, got.CRN, want.section, want.crn)
		}
	}
}

func TestParseLegacyFallbackScan(t *testing.T) {
	raw := strings.Join([]string{
		"NEGOCIOS ADM-F - Administración Financiera",
		"55555",
		"G01",
		"Miérc 13:00-14:30",
		"Salón 105",
		"MARIA ELENA GARZA",
		"V 7:00-8:30",
		"P/Asig",
	}, "\n")

	classes := listing.Parse(raw)
	if len(classes) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(classes), classes)
	}

	first := classes[0]
	if first.Subject != "ADM-F - Administración Financiera" {
		t.Errorf("subject = %q", first.Subject)
	}
	if !reflect.DeepEqual(first.Days, []string{"Miérc"}) {
		t.Errorf("days = %v, want [Miérc]", first.Days)
	}
	if first.Start != "1:00PM" || first.End != "2:30PM" {
		t.Errorf("24-hour conversion produced %q-%q, want 1:00PM-2:30PM", first.Start, first.End)
	}
	if first.Room != "Salón 105" {
		t.Errorf("room = %q", first.Room)
	}
	if first.Instructor != "Maria Elena Garza" {
		t.Errorf("instructor = %q, want re-cased name", first.Instructor)
	}

	second := classes[1]
	if !reflect.DeepEqual(second.Days, []string{"Vier"}) {
		t.Errorf("V alias days = %v, want [Vier]", second.Days)
	}
	if second.Start != "7:00AM" || second.End != "8:30AM" {
		t.Errorf("times = %q-%q, want 7:00AM-8:30AM", second.Start, second.End)
	}
	if second.Room != schedule.Unassigned {
		t.Errorf("room = %q, want unassigned sentinel", second.Room)
	}
	if second.Instructor != "Maria Elena Garza" {
		t.Errorf("instructor fallback = %q, want first collected name", second.Instructor)
	}
}

func TestParseLegacyFallbackStopsAtNextSubject(t *testing.T) {
	raw := strings.Join([]string{
		"NEGOCIOS ADM-F - Administración Financiera",
		"55555",
		"G01",
		"Miérc 13:00-14:30",
		"HUMANIDADES FIL110 - Lógica",
		"22222",
		"B01",
		"Tu 9:00AM - 10:30AM",
	}, "\n")

	classes := listing.Parse(raw)
	if len(classes) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(classes), classes)
	}
	if classes[0].Subject != "ADM-F - Administración Financiera" {
		t.Errorf("first subject = %q", classes[0].Subject)
	}
	if classes[0].Instructor != schedule.Unassigned {
		t.Errorf("heading swallowed as instructor: %q", classes[0].Instructor)
	}
	if classes[1].Subject != "FIL110 - Lógica" {
		t.Errorf("second subject = %q", classes[1].Subject)
	}
}

func TestParseLegacyRoomFallsBackToFirst(t *testing.T) {
	raw := strings.Join([]string{
		"CIENCIAS QUI205 - Química Orgánica",
		"12345",
		"A01",
		"Mo 8:00AM - 9:30AM",
		"Salón 201",
		"We 10:00AM - 11:30AM",
	}, "\n")

	classes := listing.Parse(raw)
	if len(classes) != 2 {
		t.Fatalf("expected 2 records, got %d", len(classes))
	}
	if classes[1].Room != "Salón 201" {
		t.Errorf("second slot room = %q, want first collected room", classes[1].Room)
	}
}

func TestParseLegacySubjectCarriesAcrossBlocks(t *testing.T) {
	raw := strings.Join([]string{
		"CIENCIAS QUI205 - Química Orgánica",
		"12345",
		"A01",
		"Mo 8:00AM - 9:30AM",
		"HUMANIDADES FIL110 - Lógica",
		"22222",
		"B01",
		"Tu 9:00AM - 10:30AM",
	}, "\n")

	classes := listing.Parse(raw)
	if len(classes) != 2 {
		t.Fatalf("expected 2 records, got %d", len(classes))
	}
	if classes[0].Subject != "QUI205 - Química Orgánica" {
		t.Errorf("first subject = %q", classes[0].Subject)
	}
	if classes[1].Subject != "FIL110 - Lógica" {
		t.Errorf("second subject = %q", classes[1].Subject)
	}
}

func TestParseUnrecognizedInputYieldsNothing(t *testing.T) {
	for _, raw := range []string{
		"",
		"completely unrelated prose\nwith several lines\nand no structure",
		"12a45\nnot a block",
	} {
		if classes := listing.Parse(raw); len(classes) != 0 {
			t.Errorf("Parse(%q) = %d records, want 0", raw, len(classes))
		}
	}
}

func TestParseLegacyBlockWithoutMeetingsDropped(t *testing.T) {
	raw := strings.Join([]string{
		"CIENCIAS QUI205 - Química Orgánica",
		"12345",
		"A01",
		"Abierta",
	}, "\n")

	if classes := listing.Parse(raw); len(classes) != 0 {
		t.Fatalf("expected block without meetings to emit nothing, got %d", len(classes))
	}
}

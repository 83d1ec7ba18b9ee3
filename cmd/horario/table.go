package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"horario/internal/schedule"
)

// classTable renders class records in catalog column order. The parse
// command and the per-combination output of plan share it so both surfaces
// show identical rows for identical records.
func classTable(records []schedule.Class) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Subject", "Section", "Days", "Schedule", "Room", "Instructor"})
	for _, record := range records {
		tw.AppendRow(table.Row{
			record.Subject,
			record.Section,
			strings.Join(record.Days, ", "),
			record.Start + " - " + record.End,
			record.Room,
			record.Instructor,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// subjectTable renders distinct subjects with right-aligned section counts.
func subjectTable(summaries []subjectSummary) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Subject", "Sections"})
	for _, summary := range summaries {
		tw.AppendRow(table.Row{summary.Subject, strconv.Itoa(summary.Sections)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

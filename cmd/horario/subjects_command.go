package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"horario/internal/listing"
	"horario/internal/logging"
	"horario/internal/schedule"
)

type subjectSummary struct {
	Subject  string `json:"subject"`
	Sections int    `json:"sections"`
}

func newSubjectsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "subjects <file|->",
		Short: "List distinct subjects with their section counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			raw, err := readListing(cmd, args[0])
			if err != nil {
				return err
			}

			records := listing.Parse(raw)
			summaries := summarizeSubjects(records)
			ctx.ensureLogger().Info("summarized subjects",
				slog.String(logging.FieldComponent, "subjects"),
				slog.Int(logging.FieldRecords, len(records)),
				slog.Int(logging.FieldSubjects, len(summaries)),
			)

			if jsonOut || cfg.Output.Format == "json" {
				return writeJSON(cmd, summaries)
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No class records recognized in the input.")
				return nil
			}
			fmt.Fprintln(out, subjectTable(summaries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit subjects as JSON")
	return cmd
}

// summarizeSubjects counts distinct sections per subject in first-occurrence
// order. Day-split records of one section count once.
func summarizeSubjects(records []schedule.Class) []subjectSummary {
	sections := make(map[string]map[string]struct{})
	order := make([]string, 0)
	for _, record := range records {
		if _, ok := sections[record.Subject]; !ok {
			sections[record.Subject] = make(map[string]struct{})
			order = append(order, record.Subject)
		}
		sections[record.Subject][record.Section] = struct{}{}
	}

	summaries := make([]subjectSummary, 0, len(order))
	for _, subject := range order {
		summaries = append(summaries, subjectSummary{
			Subject:  subject,
			Sections: len(sections[subject]),
		})
	}
	return summaries
}

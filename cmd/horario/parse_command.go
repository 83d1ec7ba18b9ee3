package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"horario/internal/listing"
	"horario/internal/logging"
	"horario/internal/schedule"
)

type recordView struct {
	Subject    string   `json:"subject"`
	Section    string   `json:"section"`
	CRN        string   `json:"crn"`
	Days       []string `json:"days"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Room       string   `json:"room"`
	Instructor string   `json:"instructor"`
	Modality   string   `json:"modality"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a pasted course listing into class records",
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

			format := listing.Detect(raw)
			records := listing.Parse(raw)
			ctx.ensureLogger().Info("parsed listing",
				slog.String(logging.FieldComponent, "parse"),
				slog.String(logging.FieldFormat, format.String()),
				slog.Int(logging.FieldRecords, len(records)),
			)

			if jsonOut || cfg.Output.Format == "json" {
				return writeJSON(cmd, recordViews(records))
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No class records recognized in the input.")
				return nil
			}
			fmt.Fprintln(out, classTable(records))
			fmt.Fprintf(out, "%d record(s), %s layout\n", len(records), format)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit records as JSON")
	return cmd
}

func recordViews(records []schedule.Class) []recordView {
	views := make([]recordView, 0, len(records))
	for _, record := range records {
		views = append(views, recordView{
			Subject:    record.Subject,
			Section:    record.Section,
			CRN:        record.CRN,
			Days:       record.Days,
			Start:      record.Start,
			End:        record.End,
			Room:       record.Room,
			Instructor: record.Instructor,
			Modality:   record.Modality,
		})
	}
	return views
}


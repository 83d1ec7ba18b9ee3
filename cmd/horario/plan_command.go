package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"horario/internal/listing"
	"horario/internal/logging"
	"horario/internal/planner"
	"horario/internal/schedule"
)

type combinationView struct {
	ID        string       `json:"id"`
	Conflicts bool         `json:"conflicts"`
	Classes   []recordView `json:"classes"`
	Stats     statsView    `json:"stats"`
}

type statsView struct {
	TotalClasses int      `json:"total_classes"`
	Subjects     int      `json:"subjects"`
	DaysCount    int      `json:"days_count"`
	Days         []string `json:"days"`
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var subjectFlags []string
	var freeOnly bool
	var maxFlag int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "plan <file|->",
		Short: "Generate every possible schedule combination from a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			raw, err := readListing(cmd, args[0])
			if err != nil {
				return err
			}

			records := listing.Parse(raw)
			if len(subjectFlags) > 0 {
				records = filterSubjects(records, subjectFlags)
				if len(records) == 0 {
					return fmt.Errorf("no records match the requested subjects %v", subjectFlags)
				}
			}

			ceiling := cfg.Planner.MaxCombinations
			if cmd.Flags().Changed("max") {
				ceiling = maxFlag
			}

			total := planner.Count(records)
			if warn := cfg.Planner.WarnCombinations; warn > 0 && total > warn {
				logger.Warn("large combination space",
					slog.String(logging.FieldComponent, "plan"),
					slog.Int(logging.FieldCombinations, total),
				)
			}

			combos, err := planner.Generate(records, planner.Options{MaxCombinations: ceiling})
			if err != nil {
				if errors.Is(err, planner.ErrTooManyCombinations) {
					return fmt.Errorf("%w; narrow the input with --subject or raise the ceiling with --max", err)
				}
				return err
			}
			if freeOnly {
				combos = withoutConflicts(combos)
			}

			logger.Info("generated combinations",
				slog.String(logging.FieldComponent, "plan"),
				slog.Int(logging.FieldRecords, len(records)),
				slog.Int(logging.FieldCombinations, len(combos)),
			)

			if jsonOut || cfg.Output.Format == "json" {
				return writeJSON(cmd, combinationViews(combos))
			}
			renderCombinations(cmd, combos, cfg.Output.Color)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&subjectFlags, "subject", "s", nil, "Restrict planning to a subject (repeatable; code or full name)")
	cmd.Flags().BoolVar(&freeOnly, "free-only", false, "Drop combinations with time conflicts")
	cmd.Flags().IntVar(&maxFlag, "max", 0, "Combination ceiling override (0 disables the ceiling)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit combinations as JSON")
	return cmd
}

// filterSubjects keeps records whose subject matches one of the requested
// values, compared case-insensitively against the full subject or its course
// code prefix.
func filterSubjects(records []schedule.Class, subjects []string) []schedule.Class {
	wanted := make(map[string]struct{}, len(subjects))
	for _, subject := range subjects {
		wanted[strings.ToLower(strings.TrimSpace(subject))] = struct{}{}
	}

	kept := make([]schedule.Class, 0, len(records))
	for _, record := range records {
		full := strings.ToLower(record.Subject)
		code, _, _ := strings.Cut(full, " - ")
		if _, ok := wanted[full]; ok {
			kept = append(kept, record)
			continue
		}
		if _, ok := wanted[strings.TrimSpace(code)]; ok {
			kept = append(kept, record)
		}
	}
	return kept
}

func withoutConflicts(combos []schedule.Combination) []schedule.Combination {
	kept := make([]schedule.Combination, 0, len(combos))
	for _, combo := range combos {
		if !combo.Conflicts {
			kept = append(kept, combo)
		}
	}
	return kept
}

func combinationViews(combos []schedule.Combination) []combinationView {
	views := make([]combinationView, 0, len(combos))
	for _, combo := range combos {
		stats := planner.Stats(combo)
		views = append(views, combinationView{
			ID:        combo.ID,
			Conflicts: combo.Conflicts,
			Classes:   recordViews(combo.Classes),
			Stats: statsView{
				TotalClasses: stats.TotalClasses,
				Subjects:     stats.Subjects,
				DaysCount:    stats.DaysCount,
				Days:         stats.Days,
			},
		})
	}
	return views
}

func renderCombinations(cmd *cobra.Command, combos []schedule.Combination, colorMode string) {
	out := cmd.OutOrStdout()
	useColor := shouldColorize(out, colorMode)

	if len(combos) == 0 {
		fmt.Fprintln(out, "No combinations to show.")
		return
	}

	for i, combo := range combos {
		if i > 0 {
			fmt.Fprintln(out)
		}
		marker := colorize("free of conflicts", ansiGreen, useColor)
		if combo.Conflicts {
			marker = colorize("has conflicts", ansiRed, useColor)
		}
		fmt.Fprintf(out, "== %s (%s) ==\n", combo.ID, marker)
		fmt.Fprintln(out, classTable(combo.Classes))

		stats := planner.Stats(combo)
		fmt.Fprintf(out, "%d class(es), %d subject(s), %d day(s): %s\n",
			stats.TotalClasses, stats.Subjects, stats.DaysCount, strings.Join(stats.Days, ", "))
	}
	fmt.Fprintf(out, "\n%d combination(s)\n", len(combos))
}

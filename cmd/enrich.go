package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquiz/internal/answer"
	"github.com/abhisek/geoquiz/internal/dataset"
	"github.com/abhisek/geoquiz/internal/enrich"
	"github.com/abhisek/geoquiz/internal/rawlog"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <answers.json>",
	Short: "Enrich a raw answer dump with sessions and streak counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		lenient, _ := cmd.Flags().GetBool("lenient")
		outPath, _ := cmd.Flags().GetString("output")

		records, report, err := rawlog.LoadFile(args[0], rawlog.Options{
			Lenient: lenient || cfg.Pipeline.Lenient,
		})
		if err != nil {
			return fmt.Errorf("load dump: %w", err)
		}

		enriched := enrich.Enrich(records, enrich.Options{SessionGap: cfg.SessionGap()})

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := dataset.New(enriched).WriteCSV(out); err != nil {
			return fmt.Errorf("write enriched csv: %w", err)
		}

		printLoadReport(report, enriched)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringP("output", "o", "", "Write the enriched CSV to this file (default stdout)")
	enrichCmd.Flags().Bool("lenient", false, "Skip malformed records instead of aborting")
}

// printLoadReport summarizes the run on stderr so the CSV on stdout stays
// clean.
func printLoadReport(report *rawlog.Report, enriched []answer.Record) {
	sessions := make(map[int]struct{})
	for _, r := range enriched {
		sessions[r.Session] = struct{}{}
	}

	fmt.Fprintf(os.Stderr, "run %s: %d records, %d answers, %d sessions\n",
		report.RunID, report.Total, report.Answers, len(sessions))

	if len(report.Skipped) > 0 {
		models := make([]string, 0, len(report.Skipped))
		for m := range report.Skipped {
			models = append(models, m)
		}
		sort.Strings(models)
		for _, m := range models {
			fmt.Fprintf(os.Stderr, "skipped %d %s records\n", report.Skipped[m], m)
		}
	}
	for _, merr := range report.Malformed {
		fmt.Fprintln(os.Stderr, "warning:", merr)
	}
}

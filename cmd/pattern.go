package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquiz/internal/dataset"
)

var patternCmd = &cobra.Command{
	Use:   "pattern <enriched.csv>",
	Short: "Plot response-time densities for answers matching a correctness pattern",
	Long: "Finds all runs of consecutive answers to the same place (per user, in time\n" +
		"order) whose correctness matches the pattern, and plots the response-time\n" +
		"density at each pattern position. Pattern chars: T/1 correct, F/0 wrong.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		spec, _ := cmd.Flags().GetString("pattern")
		labelSpec, _ := cmd.Flags().GetString("labels")
		normalize, _ := cmd.Flags().GetString("normalize")

		pattern, err := dataset.ParsePattern(spec)
		if err != nil {
			return err
		}
		labels := defaultLabels(pattern)
		if labelSpec != "" {
			labels = strings.Split(labelSpec, ",")
			if len(labels) != len(pattern) {
				return &dataset.ConfigurationError{
					Reason: fmt.Sprintf("%d labels for a %d-position pattern", len(labels), len(pattern)),
				}
			}
		}

		d, err := readDataset(args[0])
		if err != nil {
			return err
		}
		if normalize != "" {
			key, err := groupKey(normalize)
			if err != nil {
				return err
			}
			d = d.NormalizeBy(key)
		}

		buckets, err := d.PatternTimes(pattern)
		if err != nil {
			return err
		}

		views := make([]namedView, 0, len(buckets))
		for i, bucket := range buckets {
			fmt.Printf("%s: %d matches\n", labels[i], len(bucket))
			views = append(views, plotSeries(labels[i], dataset.New(bucket)))
		}
		fmt.Println()

		return renderDensities(os.Stdout, cfg.Plot.KDEPoints, cfg.Plot.Height, views...)
	},
}

func init() {
	patternCmd.Flags().String("pattern", "", "Correctness pattern, e.g. TTF or 110 (required)")
	patternCmd.Flags().String("labels", "", "Comma-separated label per pattern position")
	patternCmd.Flags().String("normalize", "", "Z-score response times per group first (user or place)")
	_ = patternCmd.MarkFlagRequired("pattern")
}

func defaultLabels(pattern []bool) []string {
	labels := make([]string, len(pattern))
	for i, correct := range pattern {
		state := "wrong"
		if correct {
			state = "correct"
		}
		labels[i] = fmt.Sprintf("pos %d (%s)", i+1, state)
	}
	return labels
}

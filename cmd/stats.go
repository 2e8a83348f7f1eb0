package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquiz/internal/answer"
	"github.com/abhisek/geoquiz/internal/dataset"
	"github.com/abhisek/geoquiz/internal/plot"
	"github.com/abhisek/geoquiz/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <enriched.csv>",
	Short: "Show response-time statistics for correct and wrong answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if bins, _ := cmd.Flags().GetInt("bins"); bins > 0 {
			cfg.Plot.Bins = bins
		}
		density, _ := cmd.Flags().GetBool("density")
		normalize, _ := cmd.Flags().GetString("normalize")

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

		correct := d.Correct()
		wrong := d.Wrong()

		printSummary(os.Stdout, d, correct, wrong)

		if density {
			return renderDensities(os.Stdout, cfg.Plot.KDEPoints, cfg.Plot.Height,
				plotSeries("Correct Answers", correct),
				plotSeries("Wrong Answers", wrong))
		}

		if err := plot.Histogram(os.Stdout, "Correct Answers: Response Time (log)",
			correct.ResponseTimes(), cfg.Plot.Bins, 0); err != nil {
			return err
		}
		fmt.Println()
		return plot.Histogram(os.Stdout, "Wrong Answers: Response Time (log)",
			wrong.ResponseTimes(), cfg.Plot.Bins, 0)
	},
}

func init() {
	statsCmd.Flags().Int("bins", 0, "Histogram bin count (overrides config)")
	statsCmd.Flags().Bool("density", false, "Plot kernel density estimates instead of histograms")
	statsCmd.Flags().String("normalize", "", "Z-score response times per group before plotting (user or place)")
}

func readDataset(path string) (dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("open enriched csv: %w", err)
	}
	defer f.Close()
	d, err := dataset.ReadCSV(f)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("read enriched csv: %w", err)
	}
	return d, nil
}

func groupKey(name string) (func(answer.Record) string, error) {
	switch name {
	case "user":
		return func(r answer.Record) string { return r.User }, nil
	case "place":
		return func(r answer.Record) string { return r.PlaceAsked }, nil
	default:
		return nil, fmt.Errorf("unknown normalization group %q (want user or place)", name)
	}
}

type namedView struct {
	name string
	view dataset.Dataset
}

func plotSeries(name string, view dataset.Dataset) namedView {
	return namedView{name: name, view: view}
}

// renderDensities evaluates each view's KDE over a shared range so the
// curves are directly comparable.
func renderDensities(out *os.File, points, height int, views ...namedView) error {
	var all []float64
	for _, v := range views {
		all = append(all, v.view.ResponseTimes()...)
	}
	if len(all) == 0 {
		_, err := fmt.Fprintln(out, "No data to plot.")
		return err
	}
	lo, hi := stats.MinMax(all)
	xs := stats.Linspace(lo, hi, points)

	series := make([]plot.Series, 0, len(views))
	for _, v := range views {
		series = append(series, plot.Series{
			Name:   v.name,
			Values: stats.KDE(v.view.ResponseTimes(), xs),
		})
	}
	return plot.Densities(out, "Response Time Density (log)", series, 0, height)
}

func printSummary(out *os.File, d, correct, wrong dataset.Dataset) {
	fmt.Fprintf(out, "%d answers, %d correct, %d wrong\n\n", d.Len(), correct.Len(), wrong.Len())

	success := d.SuccessByPlace()
	places := make([]string, 0, len(success))
	for p := range success {
		places = append(places, p)
	}
	sort.Strings(places)

	rows := make([][]string, 0, len(places))
	for _, p := range places {
		rows = append(rows, []string{p, fmt.Sprintf("%.2f", success[p])})
	}
	_ = plot.Table(out, []string{"Place", "Success"}, rows, map[int]bool{1: true})
	fmt.Fprintln(out)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquiz/internal/geomap"
	"github.com/abhisek/geoquiz/internal/places"
)

var mapCmd = &cobra.Command{
	Use:   "map <enriched.csv>",
	Short: "Write the choropleth stylesheet for per-place success rates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		placesPath, _ := cmd.Flags().GetString("places")
		outPath, _ := cmd.Flags().GetString("output")
		shapefile, _ := cmd.Flags().GetString("shapefile")

		reg, err := places.ReadFile(placesPath)
		if err != nil {
			return fmt.Errorf("load places: %w", err)
		}

		d, err := readDataset(args[0])
		if err != nil {
			return err
		}
		ratios := d.SuccessByPlace()

		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create stylesheet: %w", err)
		}
		defer out.Close()
		if err := geomap.SuccessStylesheet(out, ratios, reg); err != nil {
			return fmt.Errorf("write stylesheet: %w", err)
		}

		if shapefile != "" {
			cfgPath := outPath + ".layers.json"
			cfgFile, err := os.Create(cfgPath)
			if err != nil {
				return fmt.Errorf("create layer config: %w", err)
			}
			defer cfgFile.Close()
			if err := geomap.WriteLayerConfig(cfgFile, shapefile); err != nil {
				return fmt.Errorf("write layer config: %w", err)
			}
			fmt.Fprintln(os.Stderr, "wrote", cfgPath)
		}

		fmt.Fprintf(os.Stderr, "wrote %s (%d places)\n", outPath, len(ratios))
		return nil
	},
}

func init() {
	mapCmd.Flags().String("places", "", "Places CSV with id,code,name columns (required)")
	mapCmd.Flags().StringP("output", "o", "map.css", "Stylesheet output path")
	mapCmd.Flags().String("shapefile", "", "Also write a layer config for this shapefile")
	_ = mapCmd.MarkFlagRequired("places")
}

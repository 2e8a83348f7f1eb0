package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "geoquiz",
	Short: "Geography-quiz answer log analysis",
	Long: "Geoquiz enriches geography-quiz answer logs with sessions and per-place\n" +
		"streak counters, and reports on the enriched dataset.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (overrides GEOQUIZ_CONFIG env var)")

	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(patternCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config path using --config (highest priority),
// then the GEOQUIZ_CONFIG env var, then the default XDG path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	if p := os.Getenv("GEOQUIZ_CONFIG"); p != "" {
		return config.Load(p)
	}
	return config.Load(config.DefaultPath())
}

// fishing is a terminal fishing minigame: hold a key to lift a bar against
// gravity and keep it over a swimming fish until the catch meter fills.
//
// Usage:
//
//	fishing play             - Play in this terminal
//	fishing serve            - Start SSH server for remote play
//	fishing sim              - Run the simulation headless with scripted input
//	fishing config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Path to a fishing config YAML
//	--verbose        - Enable debug logging
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "fishing",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fishing",
	Short: "Fishing - a reel-the-fish minigame for your terminal",
	Long: `Fishing is a terminal minigame. Hold space to lift your bar against
gravity, keep it over the fish, and watch the catch meter fill.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run the simulation headless
  config   - Print the effective configuration

Examples:
  fishing play
  fishing play --seed 42 --config ./my-fishing.yaml
  fishing serve --ssh :2222
  fishing sim --ticks 3600 --hold 20/20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to fishing config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads and validates the configuration. Any error here is a
// fatal setup error: the caller must not start a session.
func loadConfig() (config.FishingConfig, error) {
	cfg, source, err := config.LoadFishing(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("loaded config", "source", source)
	return cfg, nil
}

// resolveSeed returns the seed flag, or a time based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// arena runs the hazard arena simulation in the terminal or headless.
//
// Usage:
//
//	arena play               - Interactive terminal viewer
//	arena render             - Run ticks headless and write a PNG plus status JSON
//	arena sources            - List available frame sources
//	arena config             - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Tuning file (default: search ~/.arena/configs, ./configs)
//	--preset <name>      - Tuning preset: calm, normal, frantic
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import sources to register them
	_ "github.com/vovakirdan/hazard-arena/internal/source/images"
	_ "github.com/vovakirdan/hazard-arena/internal/source/spots"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Hazard Arena - sweeping hazards, safe zones and live blob tracking",
	Long: `Hazard Arena renders a square arena where scanning beams, waves and
bursts sweep across the floor. Simulated players die when a beam catches
them while their color is the danger color. Bright regions in a camera
frame are tracked as blobs and checked against the hazards and safe zones.

Available commands:
  play     - Interactive terminal viewer
  render   - Headless run, writes a PNG and prints status JSON
  sources  - Show all frame sources
  config   - Print the effective tuning

Examples:
  arena play
  arena play --source images --frames ./captures
  arena render --ticks 90 --out arena.png
  arena config --preset frantic > tuning.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Tuning preset: calm, normal, frantic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(configCmd)
}

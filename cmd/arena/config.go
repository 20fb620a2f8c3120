package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning that play and render would use, after the search path,
--config and --preset are applied. With --defaults the built-in tuning file
is printed instead, as a starting point for your own.

Examples:
  arena config
  arena config --preset calm
  arena config --defaults > ~/.arena/configs/tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	tuning, _, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := tuning.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if path := config.ResolveTuningPath(flagConfig); path != "" {
		fmt.Printf("# source: %s\n", path)
	} else {
		fmt.Println("# source: built-in defaults")
	}
	os.Stdout.Write(data)
}

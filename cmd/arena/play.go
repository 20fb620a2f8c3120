package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hazard-arena/internal/arena"
	"github.com/vovakirdan/hazard-arena/internal/config"
	"github.com/vovakirdan/hazard-arena/internal/core"
	"github.com/vovakirdan/hazard-arena/internal/platform/tui"
	"github.com/vovakirdan/hazard-arena/internal/source"
)

var (
	flagSource   string
	flagFrames   string
	flagRate     float64
	flagSpots    int
	flagNoReload bool
	flagShotDir  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the arena in the terminal",
	Long: `Run the arena interactively. The output buffer is drawn with half-block
characters in truecolor, two pixels per cell.

Controls:
  S/Enter    - Start a round
  R          - Reset
  P/Space    - Pause
  D          - Toggle debug overlay
  Tab        - Toggle player table
  Ctrl+S     - Save a PNG screenshot
  Q/Ctrl+C   - Quit

The tuning file is watched and reloaded on save unless --no-reload is set.

Examples:
  arena play
  arena play --preset frantic --seed 42
  arena play --spots 6
  arena play --source images --frames ./captures --rate 5
  arena play --source none --log-file arena.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSourceFlags(playCmd)
	playCmd.Flags().BoolVar(&flagNoReload, "no-reload", false, "Do not watch the tuning file")
	playCmd.Flags().StringVar(&flagShotDir, "screenshots", "", "Screenshot directory (default: ~/.arena/screenshots)")
}

// addSourceFlags registers the frame source flags shared by play and render.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSource, "source", "spots", "Frame source (see 'arena sources')")
	cmd.Flags().StringVar(&flagFrames, "frames", "", "Image file or directory for the images source")
	cmd.Flags().Float64Var(&flagRate, "rate", 0, "Images per second for the images source")
	cmd.Flags().IntVar(&flagSpots, "spots", 0, "Number of moving spots for the spots source (0 = default)")
}

// openSource creates the frame source named by --source.
func openSource(res int, seed int64) (source.Source, error) {
	if !source.Exists(flagSource) {
		return nil, fmt.Errorf("unknown source %q; run 'arena sources' to see available sources", flagSource)
	}
	return source.Create(flagSource, source.Options{
		Width:  res,
		Height: res,
		Seed:   seed,
		Path:   flagFrames,
		Rate:   flagRate,
		Count:  flagSpots,
	})
}

func runPlay(cmd *cobra.Command, args []string) {
	tuning, preset, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	runSeed := seed()
	src, err := openSource(tuning.Resolution, runSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var watcher *config.Watcher
	if path := config.ResolveTuningPath(flagConfig); path != "" && !flagNoReload {
		watcher, err = config.NewWatcher(path)
		if err != nil {
			logger.Warn("tuning hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			logger.Info("watching tuning", "path", watcher.Path())
		}
	}

	logger.Info("starting viewer", "source", src.ID(), "seed", runSeed, "preset", preset, "resolution", tuning.Resolution)

	runErr := tui.Run(tui.Options{
		Controller: arena.NewController(tuning, runSeed, logger.WithPrefix("arena/controller")),
		Source:     src,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     runSeed,
		},
		Watcher:       watcher,
		Preset:        preset,
		ScreenshotDir: flagShotDir,
		Logger:        logger.WithPrefix("arena/tui"),
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

// loadTuning reads the tuning from --config or the search path and applies
// --preset on top.
func loadTuning() (config.Tuning, config.Preset, error) {
	preset := config.PresetNormal
	if flagPreset != "" {
		p, ok := config.ParsePreset(flagPreset)
		if !ok {
			return config.Tuning{}, "", fmt.Errorf("unknown preset %q (want calm, normal or frantic)", flagPreset)
		}
		preset = p
	}

	t, err := config.LoadTuning(flagConfig)
	if err != nil {
		return config.Tuning{}, "", err
	}
	config.ApplyPreset(&t, preset)
	t.Sanitize()
	return t, preset, nil
}

// newLogger builds the logger from --log-level and --log-file. Without a log
// file, output goes to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "arena",
		Level:           level,
	})
	return logger, closer, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

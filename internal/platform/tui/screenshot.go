package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/hazard-arena/internal/arena"
)

// DefaultScreenshotDir returns ~/.arena/screenshots, or a relative
// "screenshots" directory when the home directory is unknown.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arena", "screenshots")
}

// SaveScreenshot writes the buffer as a timestamped PNG in dir and returns
// the file path.
func SaveScreenshot(dir string, b *arena.Buffer, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("arena_%s.png", now.Format("20060102_150405.000"))
	path := filepath.Join(dir, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	if err := b.EncodePNG(f); err != nil {
		f.Close()
		return "", fmt.Errorf("screenshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("screenshot %s: %w", path, err)
	}
	return path, nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TuningFileName is the file looked up in the user and local config directories.
const TuningFileName = "tuning.yaml"

// ErrEmptyTuning is returned for a tuning file with no content, which is
// what a watcher sees between an editor's truncate and its write.
var ErrEmptyTuning = errors.New("tuning file is empty")

// LoadTuning loads the arena tuning.
// Search order: customPath -> ~/.arena/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default
// Keys missing from a file keep their default values. The result is sanitized.
func LoadTuning(customPath string) (Tuning, error) {
	// Try custom path first
	if customPath != "" {
		return LoadTuningFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(TuningFileName); userCfgPath != "" {
		if cfg, err := LoadTuningFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadTuningFile(filepath.Join("configs", TuningFileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseTuning(defaultTuningYAML)
	if err != nil {
		cfg = DefaultTuning() // Fallback to hardcoded if embed fails
		cfg.Sanitize()
	}
	return cfg, nil
}

// ResolveTuningPath returns the file LoadTuning would read, or "" when it
// would fall back to the embedded defaults.
func ResolveTuningPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{filepath.Join("configs", TuningFileName)}
	if userCfgPath := userConfigPath(TuningFileName); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadTuningFile reads and parses a single tuning file. An empty file is
// an error rather than a request for the defaults.
func LoadTuningFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultTuning(), fmt.Errorf("config %s: %w", path, ErrEmptyTuning)
	}
	cfg, err := ParseTuning(data)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseTuning decodes YAML on top of the defaults and sanitizes the result.
func ParseTuning(data []byte) (Tuning, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTuning(), fmt.Errorf("yaml unmarshal: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Marshal encodes the tuning as YAML.
func (t Tuning) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", "configs", filename)
}

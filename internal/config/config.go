// Package config provides YAML-based tuning for the hazard arena: the named
// values the host feeds into every tick, their defaults, presets and loading.
package config

// MaxColorClasses is the number of entries in the player color palette.
const MaxColorClasses = 7

// MaxBurstCount is the highest burst_count a tuning file may request.
const MaxBurstCount = 10

// Tuning contains every per-tick parameter of the arena pipeline.
type Tuning struct {
	Speed       float64         `yaml:"speed"`      // Global time multiplier for hazards
	Resolution  int             `yaml:"resolution"` // Output buffer is Resolution x Resolution
	Scanners    ScannerTuning   `yaml:"scanners"`
	Waves       WaveTuning      `yaml:"waves"`
	SafeZones   SafeZoneTuning  `yaml:"safe_zones"`
	HazardColor RGB             `yaml:"hazard_color"`
	Detection   DetectionTuning `yaml:"detection"`
	Players     PlayerTuning    `yaml:"players"`
	Debug       bool            `yaml:"debug"`
}

// ScannerTuning defines the horizontal and vertical scanning beams.
type ScannerTuning struct {
	Horizontal int     `yaml:"horizontal"`
	Vertical   int     `yaml:"vertical"`
	Width      float64 `yaml:"width"` // Gaussian scale and player hit distance, in pixels
	Speed      float64 `yaml:"speed"`
	Pulse      bool    `yaml:"pulse"`
}

// WaveTuning toggles the secondary hazard sources.
type WaveTuning struct {
	Diagonal   bool `yaml:"diagonal"`
	Circular   bool `yaml:"circular"`
	Bursts     bool `yaml:"bursts"`
	BurstCount int  `yaml:"burst_count"`
}

// SafeZoneTuning defines the safe rectangles.
type SafeZoneTuning struct {
	Count  int  `yaml:"count"`
	Size   int  `yaml:"size"` // Side length in pixels
	Moving bool `yaml:"moving"`
}

// RGB is a color with channels in [0, 1].
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// DetectionTuning controls blob detection and blob collision checks.
type DetectionTuning struct {
	Threshold          float64 `yaml:"threshold"`           // Brightness a pixel must exceed
	CollisionThreshold float64 `yaml:"collision_threshold"` // Hazard intensity a sample must exceed
	MinBlobArea        int     `yaml:"min_blob_area"`       // Pixels
}

// PlayerTuning controls the simulated players and the danger color timer.
type PlayerTuning struct {
	Count               int     `yaml:"count"`
	NumColors           int     `yaml:"num_colors"`
	MaxVelocity         float64 `yaml:"max_velocity"`          // Normalized units per second
	ColorChangeDuration float64 `yaml:"color_change_duration"` // Seconds
}

// Preset represents a named tuning profile.
type Preset string

const (
	PresetCalm    Preset = "calm"
	PresetNormal  Preset = "normal"
	PresetFrantic Preset = "frantic"
)

// ParsePreset converts a flag value to a Preset.
// Returns false for anything that is not a known preset name.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetCalm, PresetNormal, PresetFrantic:
		return Preset(s), true
	default:
		return "", false
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the hard-coded default tuning.
// It is the last fallback when neither a file nor the embedded YAML is usable.
func DefaultTuning() Tuning {
	return Tuning{
		Speed:      1.0,
		Resolution: 256,
		Scanners: ScannerTuning{
			Horizontal: 2,
			Vertical:   2,
			Width:      30,
			Speed:      1.0,
			Pulse:      true,
		},
		Waves: WaveTuning{
			Diagonal:   true,
			Circular:   true,
			Bursts:     true,
			BurstCount: 3,
		},
		SafeZones: SafeZoneTuning{
			Count:  8,
			Size:   40,
			Moving: true,
		},
		HazardColor: RGB{R: 1.0, G: 0.2, B: 0.0},
		Detection: DetectionTuning{
			Threshold:          0.8,
			CollisionThreshold: 0.3,
			MinBlobArea:        10,
		},
		Players: PlayerTuning{
			Count:               4,
			NumColors:           4,
			MaxVelocity:         0.03,
			ColorChangeDuration: 10,
		},
		Debug: false,
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}

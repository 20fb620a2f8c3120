package config

import (
	"math"

	"github.com/vovakirdan/hazard-arena/internal/core"
)

// ApplyPreset modifies the tuning based on a named preset.
// Unknown presets leave the tuning untouched.
func ApplyPreset(t *Tuning, preset Preset) {
	switch preset {
	case PresetCalm:
		t.Speed = 0.6
		t.Scanners.Speed = 0.6
		t.Scanners.Horizontal = 1
		t.Scanners.Vertical = 1
		t.Waves.Bursts = false
		t.SafeZones.Count = 4
		t.Players.ColorChangeDuration = 15
	case PresetNormal:
		// Tuning as loaded
	case PresetFrantic:
		t.Speed = 1.6
		t.Scanners.Speed = 1.5
		t.Scanners.Horizontal = 3
		t.Scanners.Vertical = 3
		t.Scanners.Pulse = true
		t.Waves.Bursts = true
		t.Waves.BurstCount = MaxBurstCount
		t.SafeZones.Count = 2
		t.SafeZones.Moving = true
		t.Players.ColorChangeDuration = 6
	}
}

// Sanitize clamps every field to its legal range so a hand-edited file can
// never push the pipeline outside its invariants.
func (t *Tuning) Sanitize() {
	if t.Speed < 0 || math.IsNaN(t.Speed) {
		t.Speed = 0
	}
	t.Resolution = core.Clamp(t.Resolution, 16, 1024)

	t.Scanners.Horizontal = core.Clamp(t.Scanners.Horizontal, 0, 16)
	t.Scanners.Vertical = core.Clamp(t.Scanners.Vertical, 0, 16)
	t.Scanners.Width = core.Clamp(t.Scanners.Width, 0.5, float64(t.Resolution))
	t.Scanners.Speed = core.Clamp(t.Scanners.Speed, 0, 20)

	t.Waves.BurstCount = core.Clamp(t.Waves.BurstCount, 0, MaxBurstCount)

	t.SafeZones.Count = core.Clamp(t.SafeZones.Count, 0, 32)
	t.SafeZones.Size = core.Clamp(t.SafeZones.Size, 1, t.Resolution)

	t.HazardColor.R = core.Clamp(t.HazardColor.R, 0, 1)
	t.HazardColor.G = core.Clamp(t.HazardColor.G, 0, 1)
	t.HazardColor.B = core.Clamp(t.HazardColor.B, 0, 1)

	t.Detection.Threshold = core.Clamp(t.Detection.Threshold, 0, 1)
	t.Detection.CollisionThreshold = core.Clamp(t.Detection.CollisionThreshold, 0, 1)
	if t.Detection.MinBlobArea < 1 {
		t.Detection.MinBlobArea = 1
	}

	t.Players.Count = core.Clamp(t.Players.Count, 0, 256)
	t.Players.NumColors = core.Clamp(t.Players.NumColors, 2, MaxColorClasses)
	t.Players.MaxVelocity = core.Clamp(t.Players.MaxVelocity, 0, 5)
	if t.Players.ColorChangeDuration <= 0 || math.IsNaN(t.Players.ColorChangeDuration) {
		t.Players.ColorChangeDuration = DefaultTuning().Players.ColorChangeDuration
	}
}

package arena

import (
	"math"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

// staticZoneSeed seeds the static layout. The generator is rebuilt from this
// seed on every call, so static layouts never change between ticks.
const staticZoneSeed = 42

// Moving zones drift within 30% of the free span either side of its middle,
// zone i on its own phase.
const (
	zoneDrift      = 0.3
	zoneRateX      = 0.3
	zoneRateY      = 0.25
	zonePhaseStepX = 2.0
	zonePhaseStepY = 1.5
)

// SafeZone is a rectangle exempt from hazard-based elimination.
// Bounds are inclusive and always lie within the frame.
type SafeZone struct {
	ID      int
	XStart  int
	XEnd    int
	YStart  int
	YEnd    int
	CenterX float64 // Normalized to [0, 1]
	CenterY float64 // Normalized to [0, 1]
}

// Contains returns true if pixel (x, y) lies inside the zone, bounds included.
func (z SafeZone) Contains(x, y int) bool {
	return x >= z.XStart && x <= z.XEnd && y >= z.YStart && y <= z.YEnd
}

// Width returns the zone width in pixels.
func (z SafeZone) Width() int {
	return z.XEnd - z.XStart + 1
}

// Height returns the zone height in pixels.
func (z SafeZone) Height() int {
	return z.YEnd - z.YStart + 1
}

// PlaceSafeZones lays out the safe zones for a w x h frame at time t.
// Moving zones drift with a per-zone phase; static zones come from a
// generator reset to staticZoneSeed on every call. Zone i keeps ID i even
// when an earlier zone is clipped away.
func PlaceSafeZones(w, h int, t float64, p config.SafeZoneTuning) []SafeZone {
	if w <= 0 || h <= 0 || p.Count <= 0 || p.Size <= 0 {
		return nil
	}

	spanX := float64(max(w-p.Size, 0))
	spanY := float64(max(h-p.Size, 0))

	var rng *RNG
	if !p.Moving {
		rng = NewRNG(staticZoneSeed)
	}

	zones := make([]SafeZone, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		var x, y int
		if p.Moving {
			fi := float64(i)
			x = int((math.Sin(zoneRateX*t+zonePhaseStepX*fi)*zoneDrift + 0.5) * spanX)
			y = int((math.Cos(zoneRateY*t+zonePhaseStepY*fi)*zoneDrift + 0.5) * spanY)
		} else {
			x = int(rng.Float() * spanX)
			y = int(rng.Float() * spanY)
		}

		zone, ok := clipZone(x, y, p.Size, w, h)
		if !ok {
			continue
		}
		zone.ID = i
		zones = append(zones, zone)
	}
	return zones
}

// clipZone clips a size x size square at (x, y) to the frame.
// Returns false when nothing is left.
func clipZone(x, y, size, w, h int) (SafeZone, bool) {
	xs, xe := max(x, 0), min(x+size-1, w-1)
	ys, ye := max(y, 0), min(y+size-1, h-1)
	if xe < xs || ye < ys {
		return SafeZone{}, false
	}
	return SafeZone{
		XStart:  xs,
		XEnd:    xe,
		YStart:  ys,
		YEnd:    ye,
		CenterX: float64(xs+xe+1) / 2 / float64(w),
		CenterY: float64(ys+ye+1) / 2 / float64(h),
	}, true
}

package arena

import (
	"math"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

// maxBurstsDrawn limits how many bursts are drawn per time slice, whatever
// burst_count asks for. Tuning accepts up to config.MaxBurstCount; the gap is
// an open product question and is kept as-is until it is answered.
const maxBurstsDrawn = 3

// burstSlicesPerSecond sets how often the burst layout changes.
const burstSlicesPerSecond = 2

// gaussianCutoff is the value of d²/σ² past which a Gaussian contribution is
// treated as zero (exp(-18) ≈ 1.5e-8).
const gaussianCutoff = 18.0

// Scanner motion. Positions swing 40% of the frame either side of center;
// vertical scanners follow a cosine at 0.8 of the horizontal rate.
const (
	scanAmplitude    = 0.4
	verticalRateMult = 0.8
)

// Secondary sources: peak intensity, Gaussian scale as a multiple of the
// scanner width and travel speed in pixels per second at scanner speed 1.
const (
	diagonalPeak  = 0.7
	diagonalScale = 2.0
	diagonalSpeed = 100.0
	ringPeak      = 0.6
	ringSpeed     = 50.0
	burstPeak     = 0.8
)

// Axis identifies the orientation of a scanning beam.
type Axis uint8

const (
	AxisHorizontal Axis = iota // Beam is a row; position is a y coordinate
	AxisVertical               // Beam is a column; position is an x coordinate
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Beam records where a scanner was centered on this tick.
type Beam struct {
	Pos  float64 // Pixel coordinate along the perpendicular axis
	Axis Axis
}

// HazardParams configures the hazard sources for one tick.
type HazardParams struct {
	Horizontal   int
	Vertical     int
	Width        float64 // Gaussian scale in pixels
	ScannerSpeed float64
	Pulse        bool
	Diagonal     bool
	Circular     bool
	Bursts       bool
	BurstCount   int
}

// HazardParamsFrom extracts the hazard parameters from a tuning.
func HazardParamsFrom(t config.Tuning) HazardParams {
	return HazardParams{
		Horizontal:   t.Scanners.Horizontal,
		Vertical:     t.Scanners.Vertical,
		Width:        t.Scanners.Width,
		ScannerSpeed: t.Scanners.Speed,
		Pulse:        t.Scanners.Pulse,
		Diagonal:     t.Waves.Diagonal,
		Circular:     t.Waves.Circular,
		Bursts:       t.Waves.Bursts,
		BurstCount:   t.Waves.BurstCount,
	}
}

// HazardField is a per-pixel danger intensity grid with values in [0, 1].
// Cells are stored in row-major order: index = y*W + x.
type HazardField struct {
	W     int
	H     int
	Cells []float64
}

// NewHazardField creates an all-zero field.
func NewHazardField(w, h int) *HazardField {
	return &HazardField{W: w, H: h, Cells: make([]float64, w*h)}
}

// InBounds returns true if (x, y) is inside the field.
func (f *HazardField) InBounds(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// At returns the intensity at (x, y), or 0 out of bounds.
func (f *HazardField) At(x, y int) float64 {
	if !f.InBounds(x, y) {
		return 0
	}
	return f.Cells[y*f.W+x]
}

// Clear zeroes every cell.
func (f *HazardField) Clear() {
	clear(f.Cells)
}

// Max returns the highest intensity in the field.
func (f *HazardField) Max() float64 {
	m := 0.0
	for _, v := range f.Cells {
		if v > m {
			m = v
		}
	}
	return m
}

// raise combines v into cell i by maximum.
func (f *HazardField) raise(i int, v float64) {
	if v > f.Cells[i] {
		f.Cells[i] = v
	}
}

// ScannerPosition returns the beam center for scanner i of n along an axis of
// the given size at time t. Horizontal scanners follow
// sin(t*speed + 2πi/n) and vertical ones cos(0.8*t*speed + 2πi/n), both
// mapped to size*(0.5 ± 0.4).
func ScannerPosition(axis Axis, i, n, size int, t, speed float64) float64 {
	phase := 2 * math.Pi * float64(i) / float64(max(n, 1))
	osc := math.Sin(t*speed + phase)
	if axis == AxisVertical {
		osc = math.Cos(t*speed*verticalRateMult + phase)
	}
	return (osc*scanAmplitude + 0.5) * float64(size)
}

// scannerPulse returns the amplitude of scanner i at time t. Each scanner
// breathes between 0.6 and 1 on its own phase.
func scannerPulse(axis Axis, i int, t float64) float64 {
	if axis == AxisVertical {
		return 0.8 + 0.2*math.Sin(4.5*t+2*float64(i))
	}
	return 0.8 + 0.2*math.Sin(5*t+float64(i))
}

// gaussian returns exp(-d²/scale²), or 0 beyond the cutoff.
func gaussian(d, scale float64) float64 {
	q := d * d / (scale * scale)
	if q > gaussianCutoff {
		return 0
	}
	return math.Exp(-q)
}

// GenerateHazard overwrites f with the hazard field at time t and returns the
// scanner beams that produced it. Sources combine by per-cell maximum.
func GenerateHazard(f *HazardField, t float64, p HazardParams) []Beam {
	f.Clear()
	if f.W <= 0 || f.H <= 0 {
		return nil
	}

	scale := math.Max(p.Width, 0.5)
	beams := make([]Beam, 0, p.Horizontal+p.Vertical)

	// Horizontal scanners depend on y only.
	profile := make([]float64, max(f.W, f.H))
	for i := 0; i < p.Horizontal; i++ {
		pos := ScannerPosition(AxisHorizontal, i, p.Horizontal, f.H, t, p.ScannerSpeed)
		beams = append(beams, Beam{Pos: pos, Axis: AxisHorizontal})
		amp := 1.0
		if p.Pulse {
			amp = scannerPulse(AxisHorizontal, i, t)
		}
		for y := 0; y < f.H; y++ {
			profile[y] = amp * gaussian(float64(y)-pos, scale)
		}
		for y := 0; y < f.H; y++ {
			v := profile[y]
			if v == 0 {
				continue
			}
			row := y * f.W
			for x := 0; x < f.W; x++ {
				f.raise(row+x, v)
			}
		}
	}

	// Vertical scanners depend on x only.
	for i := 0; i < p.Vertical; i++ {
		pos := ScannerPosition(AxisVertical, i, p.Vertical, f.W, t, p.ScannerSpeed)
		beams = append(beams, Beam{Pos: pos, Axis: AxisVertical})
		amp := 1.0
		if p.Pulse {
			amp = scannerPulse(AxisVertical, i, t)
		}
		for x := 0; x < f.W; x++ {
			profile[x] = amp * gaussian(float64(x)-pos, scale)
		}
		for y := 0; y < f.H; y++ {
			row := y * f.W
			for x := 0; x < f.W; x++ {
				if v := profile[x]; v > 0 {
					f.raise(row+x, v)
				}
			}
		}
	}

	if p.Diagonal {
		f.diagonal(t, p.ScannerSpeed, scale)
	}
	if p.Circular {
		f.circular(t, p.ScannerSpeed, scale)
	}
	if p.Bursts {
		f.bursts(t, p.BurstCount, scale)
	}

	return beams
}

// diagonal adds a band travelling along x+y at 100 px/s, wrapping modulo
// twice the frame size. The band is twice as wide as a scanner.
func (f *HazardField) diagonal(t, speed, width float64) {
	size := float64(max(f.W, f.H))
	pos := math.Mod(t*speed*diagonalSpeed, 2*size)
	if pos < 0 {
		pos += 2 * size
	}

	// Intensity depends on x+y only.
	band := make([]float64, f.W+f.H-1)
	for s := range band {
		band[s] = diagonalPeak * gaussian(float64(s)-pos, width*diagonalScale)
	}
	for y := 0; y < f.H; y++ {
		row := y * f.W
		for x := 0; x < f.W; x++ {
			if v := band[x+y]; v > 0 {
				f.raise(row+x, v)
			}
		}
	}
}

// circular adds a ring expanding from the center at 50 px/s, its radius
// wrapping modulo half the frame size.
func (f *HazardField) circular(t, speed, width float64) {
	half := float64(max(f.W, f.H) / 2)
	radius := math.Mod(t*speed*ringSpeed, half)
	if radius < 0 {
		radius += half
	}
	cx, cy := float64(f.W/2), float64(f.H/2)

	for y := 0; y < f.H; y++ {
		dy := float64(y) - cy
		row := y * f.W
		for x := 0; x < f.W; x++ {
			dx := float64(x) - cx
			d := math.Sqrt(dx*dx+dy*dy) - radius
			if v := ringPeak * gaussian(d, width); v > 0 {
				f.raise(row+x, v)
			}
		}
	}
}

// bursts adds scanner-wide Gaussian discs at integer positions drawn from a
// generator seeded with the current time slice, so a layout holds for the
// whole slice. Centers keep one width away from the frame edges.
func (f *HazardField) bursts(t float64, count int, width float64) {
	slice := math.Floor(t * burstSlicesPerSecond)
	rng := NewRNG(uint64(int64(slice)))

	margin := int(width)
	n := min(count, maxBurstsDrawn)
	for i := 0; i < n; i++ {
		cx := float64(burstCoord(rng, margin, f.W))
		cy := float64(burstCoord(rng, margin, f.H))

		reach := int(math.Ceil(width * math.Sqrt(gaussianCutoff)))
		x0, x1 := max(0, int(cx)-reach), min(f.W-1, int(cx)+reach)
		y0, y1 := max(0, int(cy)-reach), min(f.H-1, int(cy)+reach)
		for y := y0; y <= y1; y++ {
			dy := float64(y) - cy
			row := y * f.W
			for x := x0; x <= x1; x++ {
				dx := float64(x) - cx
				if v := burstPeak * gaussian(math.Sqrt(dx*dx+dy*dy), width); v > 0 {
					f.raise(row+x, v)
				}
			}
		}
	}
}

// burstCoord draws a coordinate in [margin, size-margin). When the margins
// leave no room the burst sits at the center.
func burstCoord(rng *RNG, margin, size int) int {
	span := size - 2*margin
	if span <= 0 {
		return size / 2
	}
	return margin + rng.Intn(span)
}

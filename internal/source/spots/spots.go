// Package spots provides a synthetic frame source: bright discs drifting on
// Lissajous paths over a dark background, standing in for people seen by an
// overhead camera.
package spots

import (
	"math"

	"github.com/vovakirdan/hazard-arena/internal/arena"
	"github.com/vovakirdan/hazard-arena/internal/source"
)

// ID is the registry identifier.
const ID = "spots"

// Defaults.
const (
	defaultWidth  = 160
	defaultHeight = 120
	defaultCount  = 3
	spotRadius    = 0.07 // Fraction of the shorter side
	pathReach     = 0.38 // Amplitude of the path around the frame center
	background    = 0.05
)

func init() {
	source.Register(source.Info{ID: ID, Title: "Synthetic moving spots"}, func(opts source.Options) (source.Source, error) {
		return New(opts), nil
	})
}

// spot is one disc and the parameters of its path.
type spot struct {
	freqX, freqY float64 // Radians per second
	phase        float64
	brightness   float64
}

// Source draws spots into a reused frame.
type Source struct {
	frame  *arena.Frame
	spots  []spot
	radius float64
}

// New creates a spots source. Options.Count sets the number of spots.
func New(opts source.Options) *Source {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	n := opts.Count
	if n <= 0 {
		n = defaultCount
	}

	rng := arena.NewRNG(uint64(opts.Seed))
	spots := make([]spot, n)
	for i := range spots {
		spots[i] = spot{
			freqX:      rng.Range(0.3, 0.9),
			freqY:      rng.Range(0.3, 0.9),
			phase:      rng.Range(0, 2*math.Pi),
			brightness: rng.Range(0.85, 1.0),
		}
	}

	return &Source{
		frame:  arena.NewFrame(w, h, 1),
		spots:  spots,
		radius: spotRadius * float64(min(w, h)),
	}
}

// ID returns the registry identifier.
func (s *Source) ID() string {
	return ID
}

// Position returns the center of spot i at time t in frame pixels.
func (s *Source) Position(i int, t float64) (float64, float64) {
	sp := s.spots[i]
	w, h := float64(s.frame.Width), float64(s.frame.Height)
	x := w * (0.5 + pathReach*math.Sin(sp.freqX*t+sp.phase))
	y := h * (0.5 + pathReach*math.Sin(sp.freqY*t+2*sp.phase))
	return x, y
}

// Frame renders the spots at time t. The same t always yields the same frame.
func (s *Source) Frame(t float64) *arena.Frame {
	f := s.frame
	for i := range f.Pix {
		f.Pix[i] = background
	}

	r2 := s.radius * s.radius
	for i, sp := range s.spots {
		cx, cy := s.Position(i, t)
		x0, x1 := int(math.Floor(cx-s.radius)), int(math.Ceil(cx+s.radius))
		y0, y1 := int(math.Floor(cy-s.radius)), int(math.Ceil(cy+s.radius))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dx, dy := float64(x)-cx, float64(y)-cy
				if dx*dx+dy*dy <= r2 {
					f.SetGray(x, y, sp.brightness)
				}
			}
		}
	}
	return f
}

// Close is a no-op.
func (s *Source) Close() error {
	return nil
}

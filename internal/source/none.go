package source

import "github.com/vovakirdan/hazard-arena/internal/arena"

// NoneID is the source that never produces a frame.
const NoneID = "none"

func init() {
	Register(Info{ID: NoneID, Title: "No camera"}, func(Options) (Source, error) {
		return none{}, nil
	})
}

type none struct{}

func (none) ID() string                 { return NoneID }
func (none) Frame(float64) *arena.Frame { return nil }
func (none) Close() error               { return nil }

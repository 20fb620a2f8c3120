package core

// RuntimeConfig contains host settings chosen on the command line.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Normalize fills zero or negative fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

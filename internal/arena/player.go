package arena

import (
	"math"

	"github.com/vovakirdan/hazard-arena/internal/core"
)

// Motion constants for the random walk, as fractions of the maximum velocity
// where they scale with it.
const (
	spawnSpeed    = 1.0 / 3 // Spawn velocity bound per axis
	perturbChance = 0.02    // Per-tick probability of a velocity kick
	perturbScale  = 1.0 / 6 // Kick bound per axis
	maxTickDelta  = 0.25    // Longest time step integrated in one tick, seconds
)

// Player is a simulated arena participant.
// Players are never removed; elimination only clears Alive.
type Player struct {
	ID    int
	X     float64 // Normalized position in [0, 1]
	Y     float64
	VX    float64 // Normalized units per second
	VY    float64
	Color int // Color class in [0, numColors)
	Score int
	Alive bool
}

// PixelPos returns the player position in a w x h frame.
func (p *Player) PixelPos(w, h int) (float64, float64) {
	return p.X * float64(w), p.Y * float64(h)
}

// SpawnPlayers creates n players with random positions and velocities up to
// a third of maxVel per axis. IDs equal slice indices and colors cycle
// through the classes, so every class is present once n >= numColors.
func SpawnPlayers(n, numColors int, maxVel float64, rng *RNG) []*Player {
	players := make([]*Player, n)
	v := maxVel * spawnSpeed
	for i := range players {
		players[i] = &Player{
			ID:    i,
			X:     rng.Float(),
			Y:     rng.Float(),
			VX:    rng.Range(-v, v),
			VY:    rng.Range(-v, v),
			Color: i % max(numColors, 1),
			Alive: true,
		}
	}
	return players
}

// StepPlayers advances every alive player by dt seconds: an occasional
// random velocity kick, clamping to ±maxVel, integration and an elastic
// bounce off the [0, 1] walls. Dead players are skipped.
func StepPlayers(players []*Player, dt, maxVel float64, rng *RNG) {
	dt = clampDelta(dt)
	for _, p := range players {
		if !p.Alive {
			continue
		}

		if rng.Chance(perturbChance) {
			kick := maxVel * perturbScale
			p.VX += rng.Range(-kick, kick)
			p.VY += rng.Range(-kick, kick)
		}
		p.VX = core.Clamp(p.VX, -maxVel, maxVel)
		p.VY = core.Clamp(p.VY, -maxVel, maxVel)

		p.X, p.VX = bounce(p.X+p.VX*dt, p.VX)
		p.Y, p.VY = bounce(p.Y+p.VY*dt, p.VY)
	}
}

// bounce reflects a coordinate that left [0, 1] and flips its velocity so it
// points back into the arena.
func bounce(pos, vel float64) (float64, float64) {
	switch {
	case pos < 0:
		return 0, math.Abs(vel)
	case pos > 1:
		return 1, -math.Abs(vel)
	case math.IsNaN(pos):
		return 0.5, 0
	default:
		return pos, vel
	}
}

// clampDelta limits a tick to [0, maxTickDelta]; NaN counts as no time.
func clampDelta(dt float64) float64 {
	return core.Clamp(dt, 0, maxTickDelta)
}

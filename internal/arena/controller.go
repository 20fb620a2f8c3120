// Package arena implements the per-tick simulation and render pipeline of
// the hazard arena: hazard field synthesis, safe zones, blob detection,
// collisions, player simulation and compositing.
//
// The package is UI-agnostic and deterministic for a given seed, tuning,
// timestamp sequence and frame sequence. A Controller is not safe for
// concurrent use; the host must not start a tick before the previous one
// returns.
package arena

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

// Danger color timing.
const (
	warnWindow     = 3.0  // Seconds before a rotation during which the hazard flashes
	warnFlashBoost = 0.3  // Peak brightness added by the warning flash
	warnFlashRate  = 10.0 // Flash angular rate, radians per second
	baseWeight     = 0.3  // Share of the tuned base color in the hazard color
)

// Controller owns the game state and runs the pipeline once per tick.
type Controller struct {
	state      GameState
	tuning     config.Tuning
	seed       uint64
	rng        *RNG // Spawning, motion and color rotation
	field      *HazardField
	detector   Detector
	compositor *Compositor
	status     Status
	logger     *log.Logger
}

// NewController creates an idle controller. A nil logger discards output.
func NewController(tuning config.Tuning, seed int64, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tuning.Sanitize()

	c := &Controller{
		tuning: tuning,
		seed:   uint64(seed),
		rng:    NewRNG(uint64(seed)),
		logger: logger,
	}
	c.allocate()
	c.status = BuildStatus(&c.state)
	return c
}

// allocate sizes the field and output buffer for the current resolution.
func (c *Controller) allocate() {
	res := c.tuning.Resolution
	if c.field == nil || c.field.W != res || c.field.H != res {
		c.field = NewHazardField(res, res)
		c.compositor = NewCompositor(res, res)
	}
}

// Tuning returns the tuning in effect.
func (c *Controller) Tuning() config.Tuning {
	return c.tuning
}

// SetTuning replaces the tuning. It takes effect on the next tick.
func (c *Controller) SetTuning(t config.Tuning) {
	t.Sanitize()
	c.tuning = t
	c.allocate()

	// Keep color classes inside the (possibly smaller) palette.
	n := t.Players.NumColors
	c.state.DangerColor %= n
	for _, p := range c.state.Players {
		p.Color %= n
	}
}

// State returns the live game state. Callers must treat it as read-only.
func (c *Controller) State() *GameState {
	return &c.state
}

// Buffer returns the output of the last tick.
func (c *Controller) Buffer() *Buffer {
	return c.compositor.Buffer()
}

// Status returns the status fields of the last tick.
func (c *Controller) Status() Status {
	return c.status
}

// Start activates the run state, spawns players and arms the color timer.
// Starting an already running game starts a fresh round.
func (c *Controller) Start(now float64) {
	t := c.tuning.Players

	c.state.Running = true
	c.state.Players = SpawnPlayers(t.Count, t.NumColors, t.MaxVelocity, c.rng)
	c.state.DangerColor = c.rng.Intn(t.NumColors)
	c.state.TimeUntilChange = t.ColorChangeDuration
	c.state.LastTick = now
	c.state.ticked = true

	c.logger.Info("game started",
		"players", len(c.state.Players),
		"danger", ClassName(c.state.DangerColor))
}

// Reset stops the game and clears players, beams, zones, blobs and
// collision results.
func (c *Controller) Reset() {
	c.state.Clear()
	c.field.Clear()
	c.status = BuildStatus(&c.state)
	c.logger.Info("game reset")
}

// Tick runs the whole pipeline for timestamp now (seconds) against an
// optional external frame and returns the composed buffer and status.
func (c *Controller) Tick(now float64, frame *Frame) (*Buffer, Status) {
	s := &c.state
	tun := c.tuning
	res := tun.Resolution

	dt := 0.0
	if s.ticked {
		dt = clampDelta(now - s.LastTick)
	}
	s.LastTick = now
	s.ticked = true
	t := now * tun.Speed

	if s.Running {
		c.advanceColorTimer(dt)

		s.Beams = GenerateHazard(c.field, t, HazardParamsFrom(tun))

		StepPlayers(s.Players, dt, tun.Players.MaxVelocity, c.rng)
		for _, hit := range ResolveBeamHits(s.Players, s.Beams, res, res, tun.Scanners.Width, s.DangerColor) {
			if hit.Eliminated {
				c.logger.Debug("player eliminated",
					"player", hit.PlayerID,
					"axis", hit.Beam.Axis,
					"alive", s.AliveCount())
			}
		}
	} else {
		c.field.Clear()
		s.Beams = nil
	}

	s.SafeZones = PlaceSafeZones(res, res, t, tun.SafeZones)

	// Detection is independent of the run state.
	s.Blobs = c.detector.Detect(frame, res, res, DetectParams{
		Threshold: tun.Detection.Threshold,
		MinArea:   tun.Detection.MinBlobArea,
	})
	s.TotalBlobs += len(s.Blobs)
	s.Collisions = ResolveBlobCollisions(s.Blobs, c.field, s.SafeZones, tun.Detection.CollisionThreshold)

	var players []*Player
	if s.Running {
		players = s.Players
	}
	buf := c.compositor.Compose(Layers{
		Field:      c.field,
		Hazard:     c.HazardColor(now),
		Zones:      s.SafeZones,
		Blobs:      s.Blobs,
		Collisions: s.Collisions,
		Players:    players,
		Debug:      tun.Debug,
	})

	c.status = BuildStatus(s)
	return buf, c.status
}

// advanceColorTimer counts down and rotates the danger color on expiry.
func (c *Controller) advanceColorTimer(dt float64) {
	s := &c.state
	s.TimeUntilChange -= dt
	if s.TimeUntilChange > 0 {
		return
	}

	prev := s.DangerColor
	s.DangerColor = NextDangerColor(prev, c.tuning.Players.NumColors, c.rng)
	s.TimeUntilChange = c.tuning.Players.ColorChangeDuration
	c.logger.Debug("danger color changed", "from", ClassName(prev), "to", ClassName(s.DangerColor))
}

// NextDangerColor steps forward from current by 1 to n-1 classes, uniformly,
// so the result is never current.
func NextDangerColor(current, n int, rng *RNG) int {
	if n < 2 {
		return current
	}
	return (current + 1 + rng.Intn(n-1)) % n
}

// HazardColor returns the displayed hazard base color: 30% tuned base color,
// 70% the danger class color, plus a flash of |sin(10*now)|*0.3 in the last
// seconds before a rotation.
func (c *Controller) HazardColor(now float64) Color {
	col := FromRGB(c.tuning.HazardColor).Mix(ClassColor(c.state.DangerColor), 1-baseWeight)
	if c.state.Running && c.state.TimeUntilChange < warnWindow {
		col = col.Add(math.Abs(math.Sin(warnFlashRate*now)) * warnFlashBoost)
	}
	return col
}

package arena

import "math"

// Compositor marker sizes, in pixels, and radial falloffs: a disc dims by
// falloff*d/r at distance d from its center.
const (
	PlayerRadius  = 8
	minDrawRadius = 5
	crosshairArm  = 20
	blobFalloff   = 0.3
	playerFalloff = 0.5
)

// Layers is everything the compositor draws for one tick.
type Layers struct {
	Field      *HazardField
	Hazard     Color // Displayed hazard base color
	Zones      []SafeZone
	Blobs      []Blob
	Collisions []CollisionRecord // Parallel to Blobs
	Players    []*Player
	Debug      bool
}

// Compositor builds the output buffer from the tick's layers.
type Compositor struct {
	buf *Buffer
}

// NewCompositor creates a compositor for a w x h output.
func NewCompositor(w, h int) *Compositor {
	return &Compositor{buf: NewBuffer(w, h)}
}

// Buffer returns the most recently composed output.
func (c *Compositor) Buffer() *Buffer {
	return c.buf
}

// Compose draws the layers in fixed order, each overwriting the pixels in
// its footprint: hazard, safe zones, blobs, alive players, debug crosshairs.
// Alpha is set to 1 everywhere before anything else is written.
func (c *Compositor) Compose(l Layers) *Buffer {
	b := c.buf
	b.Reset()

	c.drawHazard(l.Field, l.Hazard)
	c.drawZones(l.Zones)
	c.drawBlobs(l.Blobs, l.Collisions, l.Debug)
	c.drawPlayers(l.Players)
	if l.Debug {
		c.drawCrosshairs(l.Blobs)
	}
	return b
}

func (c *Compositor) drawHazard(f *HazardField, base Color) {
	if f == nil {
		return
	}
	for y := 0; y < c.buf.H; y++ {
		for x := 0; x < c.buf.W; x++ {
			v := f.At(x, y)
			if v <= 0 {
				continue
			}
			c.buf.Set(x, y, base.Scale(v))
		}
	}
}

func (c *Compositor) drawZones(zones []SafeZone) {
	for _, z := range zones {
		c.buf.FillRect(z.XStart, z.YStart, z.XEnd, z.YEnd, zoneFill)

		// A square a third of the zone side, green channel at full.
		sw, sh := z.Width()/3, z.Height()/3
		x0 := z.XStart + z.Width()/2 - sw/2
		y0 := z.YStart + z.Height()/2 - sh/2
		for y := y0; y < y0+sh; y++ {
			for x := x0; x < x0+sw; x++ {
				c.buf.SetGreen(x, y, 1)
			}
		}
	}
}

func (c *Compositor) drawBlobs(blobs []Blob, records []CollisionRecord, debug bool) {
	for i, bl := range blobs {
		var col Color
		switch {
		case debug:
			col = ClassColor(bl.ID)
		case i < len(records) && records[i].InSafeZone:
			col = blobSafe
		case i < len(records) && records[i].Colliding:
			col = blobColliding
		default:
			col = blobFree
		}
		r := max(minDrawRadius, int(bl.PixelRadius))
		c.drawDisc(int(bl.X), int(bl.Y), r, col, blobFalloff)
	}
}

func (c *Compositor) drawPlayers(players []*Player) {
	for _, p := range players {
		if !p.Alive {
			continue
		}
		px, py := p.PixelPos(c.buf.W, c.buf.H)
		c.drawDisc(int(px), int(py), PlayerRadius, ClassColor(p.Color), playerFalloff)
	}
}

func (c *Compositor) drawCrosshairs(blobs []Blob) {
	for _, bl := range blobs {
		cx, cy := int(bl.X), int(bl.Y)
		for d := -crosshairArm; d <= crosshairArm; d++ {
			c.buf.Set(cx+d, cy, crosshair)
			c.buf.Set(cx, cy+d, crosshair)
		}
	}
}

// drawDisc fills a disc of radius r around (cx, cy), dimming linearly by
// falloff towards the rim.
func (c *Compositor) drawDisc(cx, cy, r int, col Color, falloff float64) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d > float64(r) {
				continue
			}
			c.buf.Set(cx+dx, cy+dy, col.Scale(1-falloff*d/float64(r)))
		}
	}
}

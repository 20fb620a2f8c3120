package arena

import (
	"math"

	"github.com/vovakirdan/hazard-arena/internal/core"
)

// minPerimeterSamples is the least number of perimeter points tested per blob.
const minPerimeterSamples = 8

// BeamHit reports a player touching a beam on this tick.
type BeamHit struct {
	PlayerID   int
	Beam       Beam
	Eliminated bool // False means the hit scored a near-miss point
}

// ResolveBeamHits tests every alive player against every beam in a w x h
// frame. A player is hit when its perpendicular pixel coordinate is strictly
// closer than width to the beam. A hit kills players of the danger color and scores a
// point for everyone else. Dead players are skipped, so re-evaluation is a
// no-op for them.
func ResolveBeamHits(players []*Player, beams []Beam, w, h int, width float64, danger int) []BeamHit {
	var hits []BeamHit
	for _, p := range players {
		if !p.Alive {
			continue
		}
		px, py := p.PixelPos(w, h)
		for _, b := range beams {
			coord := py
			if b.Axis == AxisVertical {
				coord = px
			}
			if math.Abs(coord-b.Pos) >= width {
				continue
			}

			if p.Color == danger {
				p.Alive = false
				hits = append(hits, BeamHit{PlayerID: p.ID, Beam: b, Eliminated: true})
				break
			}
			p.Score++
			hits = append(hits, BeamHit{PlayerID: p.ID, Beam: b})
		}
	}
	return hits
}

// CollisionRecord is the per-tick collision status of one blob.
// Colliding and InSafeZone are independent; both may be set.
type CollisionRecord struct {
	BlobID     int
	Colliding  bool
	InSafeZone bool
	X          int // Clamped center pixel
	Y          int
}

// ResolveBlobCollisions samples the hazard field at each blob's clamped
// center and around its perimeter; any sample above threshold marks the
// blob colliding. Safe-zone membership uses the center pixel only.
func ResolveBlobCollisions(blobs []Blob, field *HazardField, zones []SafeZone, threshold float64) []CollisionRecord {
	if len(blobs) == 0 {
		return nil
	}

	records := make([]CollisionRecord, 0, len(blobs))
	for _, b := range blobs {
		cx := core.Clamp(int(b.X), 0, max(field.W-1, 0))
		cy := core.Clamp(int(b.Y), 0, max(field.H-1, 0))

		rec := CollisionRecord{BlobID: b.ID, X: cx, Y: cy}
		rec.Colliding = blobTouchesHazard(field, cx, cy, b.PixelRadius, threshold)
		for _, z := range zones {
			if z.Contains(cx, cy) {
				rec.InSafeZone = true
				break
			}
		}
		records = append(records, rec)
	}
	return records
}

// blobTouchesHazard checks the center and max(8, 2r) points on the circle of
// integer radius r around it. Samples falling outside the field are skipped.
func blobTouchesHazard(field *HazardField, cx, cy int, radius, threshold float64) bool {
	if field.At(cx, cy) > threshold {
		return true
	}

	r := float64(int(radius))
	n := max(minPerimeterSamples, int(2*r))
	for k := 0; k < n; k++ {
		angle := 2 * math.Pi * float64(k) / float64(n)
		sx := int(float64(cx) + r*math.Cos(angle))
		sy := int(float64(cy) + r*math.Sin(angle))
		if !field.InBounds(sx, sy) {
			continue
		}
		if field.At(sx, sy) > threshold {
			return true
		}
	}
	return false
}

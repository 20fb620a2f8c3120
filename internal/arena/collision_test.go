package arena

import "testing"

func TestDangerPlayerEliminatedOnBeam(t *testing.T) {
	field := NewHazardField(256, 256)
	beams := GenerateHazard(field, 0, HazardParams{Horizontal: 2, Width: 1, ScannerSpeed: 1})
	if beams[0].Pos != 128 {
		t.Fatalf("beam 0 position = %f, expected 128", beams[0].Pos)
	}

	players := []*Player{{ID: 0, X: 0.5, Y: 0.5, Color: 2, Alive: true}}
	hits := ResolveBeamHits(players, beams, 256, 256, 1, 2)

	if players[0].Alive {
		t.Error("player of the danger color on the beam should be eliminated")
	}
	if len(hits) != 1 || !hits[0].Eliminated || hits[0].PlayerID != 0 {
		t.Errorf("hits = %+v, expected one elimination of player 0", hits)
	}
	if players[0].Score != 0 {
		t.Errorf("eliminated player scored %d", players[0].Score)
	}
}

func TestSafeColorPlayerScoresNearMiss(t *testing.T) {
	beams := []Beam{
		{Pos: 128, Axis: AxisHorizontal},
		{Pos: 100, Axis: AxisVertical},
	}
	players := []*Player{
		{ID: 0, X: 0.5, Y: 0.5, Color: 1, Alive: true},      // Hits the horizontal beam
		{ID: 1, X: 100.0 / 256, Y: 0.5, Color: 3, Alive: true}, // Hits both beams
		{ID: 2, X: 0.1, Y: 0.1, Color: 0, Alive: true},       // Far from both
	}

	hits := ResolveBeamHits(players, beams, 256, 256, 6, 0)

	tests := []struct {
		id    int
		score int
		alive bool
	}{
		{0, 1, true},
		{1, 2, true},
		{2, 0, true},
	}
	for _, tc := range tests {
		p := players[tc.id]
		if p.Score != tc.score || p.Alive != tc.alive {
			t.Errorf("player %d: score=%d alive=%v, expected score=%d alive=%v",
				tc.id, p.Score, p.Alive, tc.score, tc.alive)
		}
	}
	for _, h := range hits {
		if h.Eliminated {
			t.Errorf("unexpected elimination %+v", h)
		}
	}
}

func TestVerticalBeamUsesXCoordinate(t *testing.T) {
	beams := []Beam{{Pos: 64, Axis: AxisVertical}}
	onBeam := &Player{ID: 0, X: 0.25, Y: 0.9, Color: 1, Alive: true}
	offBeam := &Player{ID: 1, X: 0.9, Y: 0.25, Color: 1, Alive: true}

	ResolveBeamHits([]*Player{onBeam, offBeam}, beams, 256, 256, 2, 1)

	if onBeam.Alive {
		t.Error("player at x=64 should be hit by a vertical beam at 64")
	}
	if !offBeam.Alive {
		t.Error("player at y=64 should not be hit by a vertical beam")
	}
}

func TestBeamWidthBoundaryExclusive(t *testing.T) {
	beams := []Beam{{Pos: 100, Axis: AxisHorizontal}}
	inside := &Player{X: 0.5, Y: 105.0 / 256, Color: 0, Alive: true}
	edge := &Player{ID: 1, X: 0.5, Y: 106.0 / 256, Color: 0, Alive: true}

	ResolveBeamHits([]*Player{inside, edge}, beams, 256, 256, 6, 0)

	if inside.Alive {
		t.Error("player closer than width should be hit")
	}
	if !edge.Alive {
		t.Error("player exactly width pixels away should not be hit")
	}
}

func TestDeadPlayersAreSkipped(t *testing.T) {
	beams := []Beam{{Pos: 128, Axis: AxisHorizontal}}
	dead := &Player{X: 0.5, Y: 0.5, Color: 1, Score: 4, Alive: false}

	for i := 0; i < 3; i++ {
		if hits := ResolveBeamHits([]*Player{dead}, beams, 256, 256, 6, 0); len(hits) != 0 {
			t.Fatalf("dead player produced hits: %+v", hits)
		}
	}
	if dead.Score != 4 || dead.Alive {
		t.Errorf("dead player changed: score=%d alive=%v", dead.Score, dead.Alive)
	}
}

func TestEliminationStopsAtFirstBeam(t *testing.T) {
	beams := []Beam{
		{Pos: 128, Axis: AxisHorizontal},
		{Pos: 128, Axis: AxisVertical},
	}
	p := &Player{X: 0.5, Y: 0.5, Color: 0, Alive: true}

	hits := ResolveBeamHits([]*Player{p}, beams, 256, 256, 6, 0)
	if len(hits) != 1 {
		t.Errorf("expected 1 hit after elimination, got %d", len(hits))
	}
}

func TestBlobCollisionFlags(t *testing.T) {
	field := NewHazardField(100, 100)
	for x := 0; x < 100; x++ {
		field.Cells[50*100+x] = 1 // Hazard row at y=50
	}
	zones := []SafeZone{{ID: 1, XStart: 0, XEnd: 30, YStart: 40, YEnd: 60}}

	blobs := []Blob{
		{ID: 1, X: 10, Y: 50, PixelRadius: 3}, // On the hazard, inside the zone
		{ID: 2, X: 80, Y: 50, PixelRadius: 3}, // On the hazard, outside the zone
		{ID: 3, X: 10, Y: 45, PixelRadius: 1}, // Clear of the hazard, inside the zone
		{ID: 4, X: 80, Y: 10, PixelRadius: 3}, // Clear of everything
	}

	records := ResolveBlobCollisions(blobs, field, zones, 0.5)
	if len(records) != len(blobs) {
		t.Fatalf("expected %d records, got %d", len(blobs), len(records))
	}

	tests := []struct {
		colliding bool
		safe      bool
	}{
		{true, true},
		{true, false},
		{false, true},
		{false, false},
	}
	for i, tc := range tests {
		r := records[i]
		if r.BlobID != blobs[i].ID {
			t.Errorf("record %d BlobID = %d, expected %d", i, r.BlobID, blobs[i].ID)
		}
		if r.Colliding != tc.colliding || r.InSafeZone != tc.safe {
			t.Errorf("blob %d: colliding=%v safe=%v, expected colliding=%v safe=%v",
				blobs[i].ID, r.Colliding, r.InSafeZone, tc.colliding, tc.safe)
		}
	}
}

func TestBlobCollisionSamplesPerimeter(t *testing.T) {
	field := NewHazardField(100, 100)
	field.Cells[50*100+60] = 1 // Single hot pixel 10 px right of the center

	near := []Blob{{ID: 1, X: 50, Y: 50, PixelRadius: 10}}
	if r := ResolveBlobCollisions(near, field, nil, 0.5); !r[0].Colliding {
		t.Error("hot pixel on the perimeter should mark the blob colliding")
	}

	small := []Blob{{ID: 1, X: 50, Y: 50, PixelRadius: 4}}
	if r := ResolveBlobCollisions(small, field, nil, 0.5); r[0].Colliding {
		t.Error("hot pixel outside the perimeter should not mark the blob colliding")
	}
}

func TestBlobCollisionClampsCenter(t *testing.T) {
	field := NewHazardField(64, 64)
	field.Cells[63*64+63] = 1

	blobs := []Blob{{ID: 1, X: 500, Y: 500, PixelRadius: 2}}
	r := ResolveBlobCollisions(blobs, field, nil, 0.5)
	if r[0].X != 63 || r[0].Y != 63 {
		t.Errorf("center = (%d, %d), expected (63, 63)", r[0].X, r[0].Y)
	}
	if !r[0].Colliding {
		t.Error("clamped center on a hot pixel should collide")
	}
}

func TestBlobCollisionSkipsOutOfBoundsSamples(t *testing.T) {
	field := NewHazardField(64, 100)
	for y := 0; y < 100; y++ {
		field.Cells[y*64] = 1 // Hot left column
	}

	// Left-hand samples land at negative x; clamping them onto column 0
	// would report a collision.
	edge := []Blob{{ID: 1, X: 2, Y: 50, PixelRadius: 10.8}}
	if r := ResolveBlobCollisions(edge, field, nil, 0.5); r[0].Colliding {
		t.Error("perimeter samples outside the field should be skipped")
	}

	touching := []Blob{{ID: 1, X: 10, Y: 50, PixelRadius: 10}}
	if r := ResolveBlobCollisions(touching, field, nil, 0.5); !r[0].Colliding {
		t.Error("in-bounds sample on the hot column should collide")
	}
}

func TestBlobCollisionThresholdIsStrict(t *testing.T) {
	field := NewHazardField(10, 10)
	for i := range field.Cells {
		field.Cells[i] = 0.5
	}
	r := ResolveBlobCollisions([]Blob{{ID: 1, X: 5, Y: 5, PixelRadius: 2}}, field, nil, 0.5)
	if r[0].Colliding {
		t.Error("intensity equal to the threshold should not collide")
	}
}

func TestNoBlobsNoRecords(t *testing.T) {
	if r := ResolveBlobCollisions(nil, NewHazardField(10, 10), nil, 0.5); r != nil {
		t.Errorf("expected nil records, got %+v", r)
	}
}

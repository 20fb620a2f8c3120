package arena

import (
	"encoding/json"
	"testing"
)

func TestBuildStatus(t *testing.T) {
	s := &GameState{
		Running:         true,
		DangerColor:     2,
		TimeUntilChange: 4.5,
		Players: []*Player{
			{ID: 0, Alive: true},
			{ID: 1, Alive: false},
			{ID: 2, Alive: true},
		},
		Blobs: []Blob{
			{ID: 1, X: 20.7, Y: 30.2, NX: 0.1, NY: 0.2},
			{ID: 2, X: 100, Y: 50, NX: 0.5, NY: 0.25},
		},
		Collisions: []CollisionRecord{
			{BlobID: 1, Colliding: true, X: 20, Y: 30},
			{BlobID: 2, InSafeZone: true, X: 100, Y: 50},
		},
		SafeZones:  []SafeZone{{ID: 1, CenterX: 0.25, CenterY: 0.75}},
		TotalBlobs: 7,
	}

	st := BuildStatus(s)

	if !st.Running || st.DangerColor != 2 || st.DangerColorName != "green" {
		t.Errorf("run fields = %+v", st)
	}
	if st.AlivePlayers != 2 || st.TotalPlayers != 3 {
		t.Errorf("players alive/total = %d/%d, expected 2/3", st.AlivePlayers, st.TotalPlayers)
	}
	if st.BlobCount != 2 || st.TotalBlobs != 7 || st.SafeZoneCount != 1 {
		t.Errorf("counts = %d blobs, %d total, %d zones", st.BlobCount, st.TotalBlobs, st.SafeZoneCount)
	}

	var blobs []struct {
		ID int     `json:"id"`
		X  float64 `json:"x"`
		PX int     `json:"px"`
		PY int     `json:"py"`
	}
	if err := json.Unmarshal([]byte(st.Blobs), &blobs); err != nil {
		t.Fatalf("Blobs is not valid JSON: %v", err)
	}
	if len(blobs) != 2 || blobs[0].ID != 1 || blobs[0].X != 0.1 || blobs[0].PX != 20 || blobs[0].PY != 30 {
		t.Errorf("blobs = %+v", blobs)
	}

	var collisions map[string]struct {
		Colliding  bool `json:"colliding"`
		InSafeZone bool `json:"in_safe_zone"`
	}
	if err := json.Unmarshal([]byte(st.Collisions), &collisions); err != nil {
		t.Fatalf("Collisions is not valid JSON: %v", err)
	}
	if !collisions["1"].Colliding || collisions["1"].InSafeZone {
		t.Errorf("collision 1 = %+v", collisions["1"])
	}
	if collisions["2"].Colliding || !collisions["2"].InSafeZone {
		t.Errorf("collision 2 = %+v", collisions["2"])
	}

	var zones []struct {
		ID int     `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
	}
	if err := json.Unmarshal([]byte(st.SafeZones), &zones); err != nil {
		t.Fatalf("SafeZones is not valid JSON: %v", err)
	}
	if len(zones) != 1 || zones[0].X != 0.25 || zones[0].Y != 0.75 {
		t.Errorf("zones = %+v", zones)
	}
}

func TestBuildStatusEmpty(t *testing.T) {
	st := BuildStatus(&GameState{})
	if st.Blobs != "[]" || st.Collisions != "{}" || st.SafeZones != "[]" {
		t.Errorf("empty status JSON = %q %q %q", st.Blobs, st.Collisions, st.SafeZones)
	}
	if st.DangerColorName != "red" {
		t.Errorf("DangerColorName = %q, expected red", st.DangerColorName)
	}
}

package arena

import (
	"encoding/json"
	"strconv"
)

// Status holds the read-only fields published after each tick.
// The JSON fields are pre-serialized for hosts that only pass strings around.
type Status struct {
	Running         bool    `json:"running"`
	DangerColor     int     `json:"danger_color"`
	DangerColorName string  `json:"danger_color_name"`
	TimeUntilChange float64 `json:"time_until_change"`
	AlivePlayers    int     `json:"alive_players"`
	TotalPlayers    int     `json:"total_players"`
	BlobCount       int     `json:"blob_count"`
	TotalBlobs      int     `json:"total_blobs"`
	Blobs           string  `json:"blobs"`      // JSON list of blob positions
	Collisions      string  `json:"collisions"` // JSON object keyed by blob id
	SafeZones       string  `json:"safe_zones"` // JSON list of zone centers
	SafeZoneCount   int     `json:"safe_zone_count"`
}

type blobJSON struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	PX int     `json:"px"`
	PY int     `json:"py"`
}

type collisionJSON struct {
	Colliding  bool `json:"colliding"`
	InSafeZone bool `json:"in_safe_zone"`
	X          int  `json:"x"`
	Y          int  `json:"y"`
}

type zoneJSON struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// BuildStatus summarizes a state.
func BuildStatus(s *GameState) Status {
	blobs := make([]blobJSON, 0, len(s.Blobs))
	for _, b := range s.Blobs {
		blobs = append(blobs, blobJSON{ID: b.ID, X: b.NX, Y: b.NY, PX: int(b.X), PY: int(b.Y)})
	}

	collisions := make(map[string]collisionJSON, len(s.Collisions))
	for _, r := range s.Collisions {
		collisions[strconv.Itoa(r.BlobID)] = collisionJSON{
			Colliding:  r.Colliding,
			InSafeZone: r.InSafeZone,
			X:          r.X,
			Y:          r.Y,
		}
	}

	zones := make([]zoneJSON, 0, len(s.SafeZones))
	for _, z := range s.SafeZones {
		zones = append(zones, zoneJSON{ID: z.ID, X: z.CenterX, Y: z.CenterY})
	}

	return Status{
		Running:         s.Running,
		DangerColor:     s.DangerColor,
		DangerColorName: ClassName(s.DangerColor),
		TimeUntilChange: s.TimeUntilChange,
		AlivePlayers:    s.AliveCount(),
		TotalPlayers:    len(s.Players),
		BlobCount:       len(s.Blobs),
		TotalBlobs:      s.TotalBlobs,
		Blobs:           mustJSON(blobs),
		Collisions:      mustJSON(collisions),
		SafeZones:       mustJSON(zones),
		SafeZoneCount:   len(s.SafeZones),
	}
}

// mustJSON encodes plain data that cannot fail to marshal.
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

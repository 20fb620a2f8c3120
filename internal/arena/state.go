package arena

// GameState is everything the arena remembers between ticks.
// It is owned by a Controller and handed to each component by pointer.
type GameState struct {
	Running         bool
	DangerColor     int     // Color class currently unsafe for players
	TimeUntilChange float64 // Seconds until the danger color rotates
	LastTick        float64 // Timestamp of the previous tick
	ticked          bool    // Whether LastTick holds a real timestamp

	// Players is a dense registry: Players[i].ID == i. It never shrinks
	// while running; elimination only clears Player.Alive.
	Players []*Player

	Beams      []Beam
	SafeZones  []SafeZone
	Blobs      []Blob
	Collisions []CollisionRecord // Parallel to Blobs
	TotalBlobs int               // Blobs detected since the last reset
}

// Clear returns the state to its initial idle form.
func (s *GameState) Clear() {
	*s = GameState{}
}

// AliveCount returns the number of players still in play.
func (s *GameState) AliveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

package runner

// Snapshot captures the complete simulation state for determinism testing.
// Slices are copied, so later frames do not alter a taken snapshot.
type Snapshot struct {
	Player        Player
	Obstacles     []Obstacle
	Coins         []Coin
	Score         int
	Mode          Mode
	ObstacleTimer float64
	CoinTimer     float64
	HillsX        float64
	Width         float64
}

// Snapshot returns a deep copy of the simulation fields.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Player:        s.Player,
		Obstacles:     append([]Obstacle{}, s.Obstacles...),
		Coins:         append([]Coin{}, s.Coins...),
		Score:         s.Score,
		Mode:          s.Mode,
		ObstacleTimer: s.ObstacleTimer,
		CoinTimer:     s.CoinTimer,
		HillsX:        s.HillsX,
		Width:         s.Width,
	}
}

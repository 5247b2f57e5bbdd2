package runner

import "github.com/vovakirdan/coin-runner/internal/core"

// Update advances the world by one frame. dtMs is the wall-clock time since
// the previous frame and only drives the spawn timers; motion is per frame.
// It does nothing unless the run is in ModeRunning.
func (s *State) Update(dtMs float64) {
	if !s.Running() {
		return
	}

	s.stepPlayer()

	speed := s.Speed()
	s.HillsX -= speed * s.cfg.Scroll.Parallax

	s.ObstacleTimer += dtMs
	if s.ObstacleTimer > s.cfg.Obstacles.IntervalMs {
		s.SpawnObstacle()
		s.ObstacleTimer = 0
	}
	s.stepObstacles(speed)

	s.CoinTimer += dtMs
	if s.CoinTimer > s.cfg.Coins.IntervalMs {
		s.SpawnCoin()
		s.CoinTimer = 0
	}
	s.stepCoins(speed)
}

// stepPlayer applies gravity and lands the player on the ground line.
func (s *State) stepPlayer() {
	p := &s.Player
	p.VY += s.cfg.Physics.Gravity
	p.Y += p.VY
	if p.Y+p.H >= s.cfg.Physics.GroundY {
		p.Y = s.cfg.Physics.GroundY - p.H
		p.VY = 0
		p.OnGround = true
	}
}

// stepObstacles scrolls obstacles, scores the ones fully behind the player,
// prunes the ones off-screen and ends the run on contact. The frame is
// finished even after a crash so the final picture is consistent.
func (s *State) stepObstacles(speed float64) {
	player := s.Player.Rect()
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.X -= speed
		if !o.Passed && o.X+o.W < s.Player.X {
			o.Passed = true
			s.Score += s.cfg.Obstacles.Points
			s.Events |= core.EventPassed
		}
		if player.Intersects(o.Rect()) && s.Mode == ModeRunning {
			s.Mode = ModeGameOver
			s.Events |= core.EventCrashed
		}
		if o.X+o.W < s.cfg.Scroll.PruneX {
			continue
		}
		kept = append(kept, o)
	}
	s.Obstacles = kept
}

// stepCoins scrolls coins, collects the ones touching the player and prunes
// the ones off-screen.
func (s *State) stepCoins(speed float64) {
	player := s.Player.Rect()
	kept := s.Coins[:0]
	for _, c := range s.Coins {
		c.X -= speed
		if !c.Taken && player.Intersects(c.Rect()) {
			c.Taken = true
			s.Score += s.cfg.Coins.Points
			s.Events |= core.EventCoin
			continue
		}
		if c.X+c.W < s.cfg.Scroll.PruneX {
			continue
		}
		kept = append(kept, c)
	}
	s.Coins = kept
}

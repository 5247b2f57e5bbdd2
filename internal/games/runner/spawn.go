package runner

// SpawnObstacle adds one obstacle just past the right edge with a random
// height and variant.
func (s *State) SpawnObstacle() {
	oc := s.cfg.Obstacles
	height := oc.MinHeight + s.rng.Float64()*oc.HeightRange
	variant := VariantTall
	if s.rng.Float64() > 0.5 {
		variant = VariantLow
	}

	s.Obstacles = append(s.Obstacles, Obstacle{
		X:       s.Width + oc.SpawnOffset,
		Y:       s.cfg.Physics.GroundY - height,
		W:       oc.Width,
		H:       height,
		Variant: variant,
	})
}

// SpawnCoin adds one coin just past the right edge at a random height
// within the coin band.
func (s *State) SpawnCoin() {
	cc := s.cfg.Coins
	s.Coins = append(s.Coins, Coin{
		X: s.Width + cc.SpawnOffset,
		Y: cc.MinY + s.rng.Float64()*cc.YRange,
		W: cc.Size,
		H: cc.Size,
	})
}

package runner

import "github.com/vovakirdan/coin-runner/internal/core"

// Apply is the single transition function for player input. It reports
// whether the action changed the state.
//
// ActionConfirm (Enter) toggles pause while playing and restarts after a
// game over. ActionJump only works while running and standing on the ground.
func Apply(s *State, a core.Action) bool {
	switch a {
	case core.ActionJump:
		return s.Jump()
	case core.ActionConfirm:
		if s.Mode == ModeGameOver {
			s.Restart()
			return true
		}
		return s.TogglePause()
	case core.ActionPause:
		return s.TogglePause()
	case core.ActionRestart:
		if s.Mode != ModeGameOver {
			return false
		}
		s.Restart()
		return true
	default:
		return false
	}
}

// Jump launches the player if it is running and grounded.
func (s *State) Jump() bool {
	if s.Mode != ModeRunning || !s.Player.OnGround {
		return false
	}
	s.Player.VY = s.cfg.Physics.JumpImpulse
	s.Player.OnGround = false
	s.Events |= core.EventJumped
	return true
}

// TogglePause switches between running and paused. A finished run cannot
// be paused.
func (s *State) TogglePause() bool {
	switch s.Mode {
	case ModeRunning:
		s.Mode = ModePaused
	case ModePaused:
		s.Mode = ModeRunning
	default:
		return false
	}
	return true
}

// Restart begins a new run from the initial state.
func (s *State) Restart() {
	s.Reset()
	s.Events |= core.EventRestarted
}

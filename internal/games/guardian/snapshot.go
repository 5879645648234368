package guardian

import (
	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/run"
)

// Snapshot is the observable field state, used to compare replays.
// The run id is left out since it differs on every run.
type Snapshot struct {
	Tick          uint64
	State         run.State
	Score         int
	Energy        int
	Lives         int
	TimeRemaining int
	Pose          run.Pose
	Player        core.Rect
	Obstacles     []core.Rect
	Powerups      []core.Rect
	Fireballs     []core.Rect
}

// Snapshot returns the current field state.
func (g *Game) Snapshot() Snapshot {
	rs := g.run.Snapshot()
	s := Snapshot{
		Tick:          g.tick,
		State:         rs.State,
		Score:         rs.Score,
		Energy:        rs.Energy,
		Lives:         rs.Lives,
		TimeRemaining: rs.TimeRemaining,
		Pose:          rs.Pose,
		Player:        g.player.Rect(),
	}
	for _, o := range g.obstacles {
		s.Obstacles = append(s.Obstacles, o.Rect())
	}
	for _, p := range g.powerups {
		s.Powerups = append(s.Powerups, p.Rect())
	}
	for _, f := range g.fireballs {
		s.Fireballs = append(s.Fireballs, f.Rect())
	}
	return s
}

// Package scene names the screens of the game and the data passed between them.
// The core decides when a transition happens and with what payload; the
// platform layer decides how the target screen is built.
package scene

import (
	"fmt"

	"github.com/vovakirdan/energy-guardian/internal/config"
)

// Name identifies a screen.
type Name string

const (
	Start         Name = "start"
	Objective     Name = "objective"
	Controls      Name = "controls"
	Difficulty    Name = "difficulty"
	Options       Name = "options"
	LevelSelect   Name = "level-select"
	Game          Name = "game"
	LevelComplete Name = "level-complete"
	GameOver      Name = "game-over"
	Scoreboard    Name = "scoreboard"
)

// Payload is the data carried into a scene. Menu scenes ignore it.
type Payload struct {
	Level      int // 1-indexed
	Difficulty config.Difficulty
	EnergyGoal int
	Score      int
	RunID      string
}

// Transition requests a switch to the Target scene.
type Transition struct {
	Target  Name
	Payload Payload
}

// To builds a transition without payload.
func To(target Name) Transition {
	return Transition{Target: target}
}

// String returns a compact description used in debug logs.
func (t Transition) String() string {
	if t.Payload == (Payload{}) {
		return string(t.Target)
	}
	return fmt.Sprintf("%s(level=%d difficulty=%s goal=%d score=%d)",
		t.Target, t.Payload.Level, t.Payload.Difficulty, t.Payload.EnergyGoal, t.Payload.Score)
}

// Package run implements the state machine of a single level attempt:
// score, energy, lives and countdown, mutated by discrete gameplay events
// until the run is completed or failed.
package run

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/scene"
)

// DefaultEnergyGoal is used when a run is started without a positive goal.
const DefaultEnergyGoal = 150

// Sound names emitted through the Sink.
const (
	SoundCollect      = "collect"
	SoundSolarCollect = "solar-collect"
	SoundShoot        = "shoot"
	SoundDead         = "dead"
	SoundComplete     = "complete"
	SoundPauseOpen    = "pause-open"
	SoundPauseClose   = "pause-close"
)

// State is the lifecycle state of a run.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateCompleted
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Sink receives the commands a run produces for the presentation layer.
type Sink interface {
	PlaySound(name string)
	ScoreChanged(score int)
	LivesChanged(lives int)
	TimeChanged(remaining int)
	EnergyChanged(energy, goal int)
	PlayerFlash()
	Finished(t scene.Transition)
}

// NopSink discards every command.
type NopSink struct{}

func (NopSink) PlaySound(string) {}
func (NopSink) ScoreChanged(int) {}
func (NopSink) LivesChanged(int) {}
func (NopSink) TimeChanged(int) {}
func (NopSink) EnergyChanged(int, int) {}
func (NopSink) PlayerFlash() {}
func (NopSink) Finished(scene.Transition) {}

// Params describes the level attempt.
type Params struct {
	Level      int // 1-indexed
	Difficulty config.Difficulty
	EnergyGoal int
	Config     config.GameConfig
}

// Snapshot is a read-only view of a run.
type Snapshot struct {
	ID            string
	State         State
	Level         int
	Difficulty    config.Difficulty
	Score         int
	Energy        int
	EnergyGoal    int
	Lives         int
	TimeRemaining int
	Pose          Pose
}

// Paused reports whether the run is paused.
func (s Snapshot) Paused() bool { return s.State == StatePaused }

// GameOver reports whether the run has ended either way.
func (s Snapshot) GameOver() bool { return s.State.Terminal() }

// Run is one attempt at a level. It is not safe for concurrent use; all
// events are expected on a single goroutine (the UI loop).
type Run struct {
	id     string
	params Params
	sink   Sink

	state         State
	score         int
	energy        int
	energyGoal    int
	lives         int
	timeRemaining int

	avatar   Avatar
	lastShot time.Duration
	hasShot  bool
	outcome  *scene.Transition
}

// New starts a run in the Playing state. A nil sink discards commands;
// a zero config means the defaults.
func New(p Params, sink Sink) *Run {
	if sink == nil {
		sink = NopSink{}
	}
	if p.Config == (config.GameConfig{}) {
		p.Config = config.DefaultGameConfig()
	}
	p.Difficulty = normalizeDifficulty(p.Difficulty)
	goal := p.EnergyGoal
	if goal <= 0 {
		goal = DefaultEnergyGoal
	}
	p.EnergyGoal = goal
	return &Run{
		id:            uuid.NewString(),
		params:        p,
		sink:          sink,
		state:         StatePlaying,
		energyGoal:    goal,
		lives:         p.Config.Run.Lives,
		timeRemaining: p.Config.Run.TimeLimit,
	}
}

func normalizeDifficulty(d config.Difficulty) config.Difficulty {
	if d.Valid() {
		return d
	}
	return config.DifficultyMedium
}

// ID returns the unique id of this run.
func (r *Run) ID() string { return r.id }

// State returns the current state.
func (r *Run) State() State { return r.state }

// Params returns the parameters the run was started with, after defaults
// were applied.
func (r *Run) Params() Params { return r.params }

// Avatar exposes the player character's locomotion state machine.
func (r *Run) Avatar() *Avatar { return &r.avatar }

// Outcome returns the terminal transition once the run has ended.
func (r *Run) Outcome() (scene.Transition, bool) {
	if r.outcome == nil {
		return scene.Transition{}, false
	}
	return *r.outcome, true
}

// Snapshot returns the current values.
func (r *Run) Snapshot() Snapshot {
	return Snapshot{
		ID:            r.id,
		State:         r.state,
		Level:         r.params.Level,
		Difficulty:    r.params.Difficulty,
		Score:         r.score,
		Energy:        r.energy,
		EnergyGoal:    r.energyGoal,
		Lives:         r.lives,
		TimeRemaining: r.timeRemaining,
		Pose:          r.avatar.Pose(),
	}
}

// accepting reports whether gameplay events may mutate the run.
// Terminal runs accept nothing; paused runs have physics frozen.
func (r *Run) accepting() bool {
	return r.state == StatePlaying
}

// ObstacleDestroyed awards a destroyed obstacle.
func (r *Run) ObstacleDestroyed() {
	if !r.accepting() {
		return
	}
	r.sink.PlaySound(SoundCollect)
	r.award(r.params.Config.Scoring.Obstacle)
}

// PowerupCollected awards a collected power-up.
func (r *Run) PowerupCollected() {
	if !r.accepting() {
		return
	}
	r.sink.PlaySound(SoundSolarCollect)
	r.award(r.params.Config.Scoring.Powerup)
}

func (r *Run) award(points int) {
	r.score += points
	r.energy += points
	r.sink.ScoreChanged(r.score)
	r.sink.EnergyChanged(r.energy, r.energyGoal)
	if r.energy >= r.energyGoal {
		r.finish(StateCompleted)
	}
}

// PlayerHit removes a life and fails the run when none remain.
func (r *Run) PlayerHit() {
	if !r.accepting() {
		return
	}
	r.lives--
	r.sink.LivesChanged(r.lives)
	r.sink.PlaySound(SoundDead)
	if r.lives <= 0 {
		r.finish(StateFailed)
		return
	}
	r.sink.PlayerFlash()
}

// TimerTick counts down one second and fails the run when time is up.
func (r *Run) TimerTick() {
	if !r.accepting() {
		return
	}
	r.timeRemaining--
	r.sink.TimeChanged(r.timeRemaining)
	if r.timeRemaining <= 0 {
		r.finish(StateFailed)
	}
}

// TogglePause flips between Playing and Paused. Returns false once the run has ended.
func (r *Run) TogglePause() bool {
	switch r.state {
	case StatePlaying:
		r.state = StatePaused
		r.sink.PlaySound(SoundPauseOpen)
	case StatePaused:
		r.state = StatePlaying
		r.sink.PlaySound(SoundPauseClose)
	default:
		return false
	}
	return true
}

// RequestAttack decides whether a shot may be fired at time now (run clock).
// Shots are rejected while walking and within the cooldown of the previous shot.
func (r *Run) RequestAttack(now time.Duration) bool {
	if !r.accepting() || !r.avatar.CanAttack() {
		return false
	}
	if r.hasShot && now-r.lastShot < r.params.Config.Run.AttackCooldown() {
		return false
	}
	r.lastShot = now
	r.hasShot = true
	r.avatar.Fire(TriggerAttack)
	r.sink.PlaySound(SoundShoot)
	return true
}

func (r *Run) finish(s State) {
	r.state = s
	target := scene.LevelComplete
	if s == StateFailed {
		target = scene.GameOver
		r.avatar.Fire(TriggerDie)
	} else {
		r.avatar = Avatar{}
		r.sink.PlaySound(SoundComplete)
	}
	t := scene.Transition{
		Target: target,
		Payload: scene.Payload{
			Level:      r.params.Level,
			Difficulty: r.params.Difficulty,
			EnergyGoal: r.energyGoal,
			Score:      r.score,
			RunID:      r.id,
		},
	}
	r.outcome = &t
	r.sink.Finished(t)
}

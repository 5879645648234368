package run

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/scene"
)

// recorder captures every command sent to the sink.
type recorder struct {
	sounds   []string
	scores   []int
	lives    []int
	times    []int
	flashes  int
	finished []scene.Transition
}

func (r *recorder) PlaySound(name string) { r.sounds = append(r.sounds, name) }
func (r *recorder) ScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recorder) LivesChanged(lives int) { r.lives = append(r.lives, lives) }
func (r *recorder) TimeChanged(remaining int) { r.times = append(r.times, remaining) }
func (r *recorder) EnergyChanged(_, _ int) {}
func (r *recorder) PlayerFlash() { r.flashes++ }
func (r *recorder) Finished(t scene.Transition) { r.finished = append(r.finished, t) }

func newTestRun(goal int) (*Run, *recorder) {
	rec := &recorder{}
	r := New(Params{
		Level:      2,
		Difficulty: config.DifficultyHard,
		EnergyGoal: goal,
		Config:     config.DefaultGameConfig(),
	}, rec)
	return r, rec
}

func TestNewRun(t *testing.T) {
	r, _ := newTestRun(150)
	s := r.Snapshot()

	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Energy)
	assert.Equal(t, 150, s.EnergyGoal)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 60, s.TimeRemaining)
	assert.Equal(t, PoseIdle, s.Pose)
	assert.NotEmpty(t, r.ID())
}

func TestNewRunZeroConfigUsesDefaults(t *testing.T) {
	r := New(Params{Level: 1, EnergyGoal: 150}, nil)
	s := r.Snapshot()
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 60, s.TimeRemaining)

	r.PowerupCollected()
	assert.Equal(t, 15, r.Snapshot().Energy)

	r.TimerTick()
	assert.Equal(t, 59, r.Snapshot().TimeRemaining)
	assert.Equal(t, StatePlaying, r.State())
}

func TestNewRunDefaults(t *testing.T) {
	r := New(Params{Level: 1, Config: config.DefaultGameConfig()}, nil)
	s := r.Snapshot()
	assert.Equal(t, DefaultEnergyGoal, s.EnergyGoal)
	assert.Equal(t, config.DifficultyMedium, s.Difficulty)

	other := New(Params{Level: 1, Config: config.DefaultGameConfig()}, nil)
	assert.NotEqual(t, r.ID(), other.ID())
}

func TestPowerupsCompleteExactlyOnce(t *testing.T) {
	r, rec := newTestRun(150)

	for i := 1; i <= 9; i++ {
		r.PowerupCollected()
		require.Equal(t, StatePlaying, r.State(), "completed early at call %d", i)
		require.Equal(t, i*15, r.Snapshot().Energy)
	}
	r.PowerupCollected()

	assert.Equal(t, StateCompleted, r.State())
	assert.Equal(t, 150, r.Snapshot().Energy)
	require.Len(t, rec.finished, 1)
	assert.Equal(t, scene.LevelComplete, rec.finished[0].Target)
	assert.Equal(t, scene.Payload{
		Level:      2,
		Difficulty: config.DifficultyHard,
		EnergyGoal: 150,
		Score:      150,
		RunID:      r.ID(),
	}, rec.finished[0].Payload)

	// Further events change nothing
	r.PowerupCollected()
	r.ObstacleDestroyed()
	assert.Equal(t, 150, r.Snapshot().Score)
	assert.Len(t, rec.finished, 1)
}

func TestObstacleDestroyedAwards(t *testing.T) {
	r, rec := newTestRun(25)
	r.ObstacleDestroyed()
	assert.Equal(t, 10, r.Snapshot().Score)
	assert.Equal(t, 10, r.Snapshot().Energy)
	assert.Contains(t, rec.sounds, SoundCollect)

	r.ObstacleDestroyed()
	r.ObstacleDestroyed()
	assert.Equal(t, StateCompleted, r.State(), "energy 30 >= goal 25")
}

func TestThreeHitsFail(t *testing.T) {
	r, rec := newTestRun(150)
	r.PowerupCollected()

	r.PlayerHit()
	r.PlayerHit()
	assert.Equal(t, StatePlaying, r.State())
	assert.Equal(t, 2, rec.flashes)

	r.PlayerHit()
	assert.Equal(t, StateFailed, r.State())
	assert.Equal(t, 2, rec.flashes, "no flash on the fatal hit")
	require.Len(t, rec.finished, 1)
	assert.Equal(t, scene.GameOver, rec.finished[0].Target)
	assert.Equal(t, PoseDead, r.Avatar().Pose())

	before := r.Snapshot()
	r.PlayerHit()
	assert.Equal(t, before, r.Snapshot())
	assert.Equal(t, []int{2, 1, 0}, rec.lives)
	assert.Len(t, rec.finished, 1)
}

func TestTimerRunsOut(t *testing.T) {
	r, rec := newTestRun(150)
	for i := 0; i < 59; i++ {
		r.TimerTick()
	}
	assert.Equal(t, StatePlaying, r.State())
	assert.Equal(t, 1, r.Snapshot().TimeRemaining)

	r.TimerTick()
	assert.Equal(t, StateFailed, r.State())
	assert.Equal(t, 0, r.Snapshot().TimeRemaining)
	require.Len(t, rec.finished, 1)
	assert.Equal(t, scene.GameOver, rec.finished[0].Target)

	r.TimerTick()
	assert.Equal(t, 0, r.Snapshot().TimeRemaining)
}

func TestTimerIgnoredAfterCompletion(t *testing.T) {
	r, rec := newTestRun(15)
	r.TimerTick()
	r.PowerupCollected()
	require.Equal(t, StateCompleted, r.State())

	r.TimerTick()
	assert.Equal(t, 59, r.Snapshot().TimeRemaining)
	assert.Equal(t, StateCompleted, r.State())
	assert.Len(t, rec.finished, 1)
}

func TestTogglePause(t *testing.T) {
	r, rec := newTestRun(150)
	r.PowerupCollected()
	r.PlayerHit()
	r.TimerTick()
	before := r.Snapshot()

	require.True(t, r.TogglePause())
	assert.Equal(t, StatePaused, r.State())
	require.True(t, r.TogglePause())

	after := r.Snapshot()
	assert.Equal(t, before, after)
	assert.Contains(t, rec.sounds, SoundPauseOpen)
	assert.Contains(t, rec.sounds, SoundPauseClose)
}

func TestPausedFreezesRun(t *testing.T) {
	r, _ := newTestRun(150)
	r.TogglePause()
	before := r.Snapshot()

	r.TimerTick()
	r.PlayerHit()
	r.PowerupCollected()
	assert.False(t, r.RequestAttack(time.Second))
	assert.Equal(t, before, r.Snapshot())
}

func TestTogglePauseAfterGameOver(t *testing.T) {
	r, _ := newTestRun(15)
	r.PowerupCollected()
	assert.False(t, r.TogglePause())
	assert.Equal(t, StateCompleted, r.State())
}

func TestAttackCooldown(t *testing.T) {
	r, rec := newTestRun(150)

	assert.True(t, r.RequestAttack(100*time.Millisecond), "first shot needs no cooldown")
	assert.False(t, r.RequestAttack(599*time.Millisecond))
	assert.True(t, r.RequestAttack(600*time.Millisecond))
	assert.Equal(t, []string{SoundShoot, SoundShoot}, rec.sounds)
	assert.Equal(t, PoseAttack, r.Avatar().Pose())
}

func TestAttackRejectedWhileWalking(t *testing.T) {
	r, _ := newTestRun(150)
	r.Avatar().Move()
	assert.False(t, r.RequestAttack(time.Second))

	r.Avatar().Settle()
	assert.True(t, r.RequestAttack(time.Second))
}

func TestAttackRejectedAfterGameOver(t *testing.T) {
	r, _ := newTestRun(10)
	r.ObstacleDestroyed()
	assert.False(t, r.RequestAttack(time.Hour))
}

func TestDispatch(t *testing.T) {
	r, _ := newTestRun(150)

	assert.True(t, r.Dispatch(EventObstacleDestroyed, 0))
	assert.True(t, r.Dispatch(EventPowerupCollected, 0))
	assert.True(t, r.Dispatch(EventPlayerHit, 0))
	assert.True(t, r.Dispatch(EventTimerTick, 0))
	assert.True(t, r.Dispatch(EventAttackRequested, time.Second))
	assert.True(t, r.Dispatch(EventPauseToggled, 0))
	assert.False(t, r.Dispatch(EventTimerTick, 0), "paused")
	assert.False(t, r.Dispatch(Event(99), 0))

	s := r.Snapshot()
	assert.Equal(t, 25, s.Score)
	assert.Equal(t, 2, s.Lives)
	assert.Equal(t, 59, s.TimeRemaining)
}

func TestEventNames(t *testing.T) {
	for e, name := range eventNames {
		got, ok := ParseEvent(name)
		require.True(t, ok)
		assert.Equal(t, e, got)
		assert.Equal(t, name, e.String())
	}
	_, ok := ParseEvent("explode")
	assert.False(t, ok)
}

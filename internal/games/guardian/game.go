// Package guardian is the playable field of a level: the player walks and
// shoots, smoke drifts in from the right and solar panels appear for a while.
// Scoring, lives and the countdown are delegated to a run.Run; timers come
// from a spawn.Cadence. The package knows nothing about the terminal.
package guardian

import (
	"time"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/run"
	"github.com/vovakirdan/energy-guardian/internal/scene"
	"github.com/vovakirdan/energy-guardian/internal/spawn"
)

// Sounds the field emits in addition to the run's own.
const (
	SoundSolarAppear    = "solar-appear"
	SoundSolarDisappear = "solar-disappear"
)

// Layout and timing.
const (
	MinScreenW = 40
	MinScreenH = 14

	hudTop    = 1 // score/lives/time row
	hudBottom = 2 // energy bar and hint rows

	// verticalAspect compensates for terminal cells being about twice as tall as wide.
	verticalAspect = 0.5

	// A key press keeps the player walking this long; terminal key repeat
	// extends it while the key is held.
	walkHold   = 150 * time.Millisecond
	attackAnim = 300 * time.Millisecond
	deathDelay = time.Second
)

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State run.Snapshot
}

// Game is one level attempt on the field.
type Game struct {
	params  run.Params
	runtime core.RuntimeConfig
	sink    run.Sink

	run     *run.Run
	cadence *spawn.Cadence
	placer  placer

	player    Player
	obstacles []Obstacle
	powerups  []Powerup
	fireballs []Fireball

	tick        uint64
	elapsed     time.Duration // unpaused play time
	moveUntil   time.Duration
	attackUntil time.Duration
	flashUntil  time.Duration
	sinceEnd    time.Duration
	exited      bool
}

// New creates a field for p and starts the first run.
// A nil sink discards the run's commands; a zero config means the defaults.
func New(p run.Params, runtime core.RuntimeConfig, sink run.Sink) *Game {
	if sink == nil {
		sink = run.NopSink{}
	}
	if p.Config == (config.GameConfig{}) {
		p.Config = config.DefaultGameConfig()
	}
	g := &Game{params: p, sink: sink}
	g.Reset(runtime)
	return g
}

// Reset starts a fresh run on a field sized to runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.run = run.New(g.params, tee{g})
	g.params = g.run.Params()

	profile := config.ProfileFor(g.params.Difficulty)
	spawnCfg := g.params.Config.Spawn
	g.cadence = spawn.New(spawn.Periods{
		Clock:           spawnCfg.Clock(),
		Obstacle:        profile.SpawnInterval,
		Powerup:         spawnCfg.PowerupPeriod(),
		PowerupLifetime: spawnCfg.PowerupLifetime(),
	})
	g.placer = newPlacer(runtime.Seed)

	w, h := g.FieldSize()
	g.player = Player{
		X:      float64(w-PlayerW) / 2,
		Y:      float64(h-PlayerH) / 2,
		Facing: 1,
	}
	g.obstacles = g.obstacles[:0]
	g.powerups = g.powerups[:0]
	g.fireballs = g.fireballs[:0]

	g.tick = 0
	g.elapsed = 0
	g.moveUntil = 0
	g.attackUntil = 0
	g.flashUntil = 0
	g.sinceEnd = 0
	g.exited = false
}

// Resize adapts the field to a new terminal size without restarting the run.
// Entities are kept inside the new bounds.
func (g *Game) Resize(width, height int) {
	g.runtime = g.runtime.WithSize(width, height)
	w, h := g.FieldSize()
	g.player.X = core.ClampF(g.player.X, 0, float64(max(w-PlayerW, 0)))
	g.player.Y = core.ClampF(g.player.Y, 0, float64(max(h-PlayerH, 0)))
	for i := range g.powerups {
		g.powerups[i].X = core.ClampF(g.powerups[i].X, 0, float64(max(w-SolarW, 0)))
		g.powerups[i].Y = core.ClampF(g.powerups[i].Y, 0, float64(max(h-SolarH, 0)))
	}
	for i := range g.obstacles {
		g.obstacles[i].Y = core.ClampF(g.obstacles[i].Y, 0, float64(max(h-SmokeH, 0)))
	}
}

// FieldSize returns the playable area below the HUD, in cells.
func (g *Game) FieldSize() (w, h int) {
	return max(g.runtime.ScreenW, 0), max(g.runtime.ScreenH-hudTop-hudBottom, 0)
}

// TooSmall reports whether the terminal cannot fit the field.
func (g *Game) TooSmall() bool {
	return g.runtime.ScreenW < MinScreenW || g.runtime.ScreenH < MinScreenH
}

// Run exposes the state machine of the current attempt.
func (g *Game) Run() *run.Run {
	return g.run
}

// State returns the current run values.
func (g *Game) State() run.Snapshot {
	return g.run.Snapshot()
}

// Elapsed returns the unpaused play time.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// Flashing reports whether the hit feedback is showing.
func (g *Game) Flashing() bool {
	return g.elapsed < g.flashUntil
}

// Result returns the transition the field wants once it is done: the run's
// outcome (a failed run lingers on the dead pose for a moment first), or
// level select when the player left through the pause menu.
func (g *Game) Result() (scene.Transition, bool) {
	if g.exited {
		return scene.To(scene.LevelSelect), true
	}
	t, ok := g.run.Outcome()
	if !ok {
		return scene.Transition{}, false
	}
	if t.Target == scene.GameOver && g.sinceEnd < deathDelay {
		return scene.Transition{}, false
	}
	return t, true
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	dt := g.runtime.TickDuration()
	g.tick++

	if g.run.State().Terminal() {
		g.sinceEnd += dt
		return StepResult{State: g.run.Snapshot()}
	}

	if in.Has(core.ActionPause) {
		g.run.TogglePause()
	}
	if g.run.State() == run.StatePaused {
		if in.Has(core.ActionExit) {
			g.exited = true
			g.cadence.Stop()
		}
		return StepResult{State: g.run.Snapshot()}
	}

	g.elapsed += dt
	g.handleInput(in)
	g.animate()
	g.move(dt)
	g.collide()
	if !g.run.State().Terminal() {
		g.handleSignals(g.cadence.Advance(dt, false))
	}

	if g.run.State().Terminal() {
		g.cadence.Stop()
		g.player.DirX, g.player.DirY = 0, 0
	}
	return StepResult{State: g.run.Snapshot()}
}

// handleInput applies walking and shooting intents.
// A walking player cannot shoot, so movement is applied first.
func (g *Game) handleInput(in core.InputFrame) {
	avatar := g.run.Avatar()

	if dx, dy := in.Direction(); dx != 0 || dy != 0 {
		g.player.DirX, g.player.DirY = dx, dy
		if dx != 0 {
			g.player.Facing = dx
		}
		g.moveUntil = g.elapsed + walkHold
		avatar.Move()
	}

	if in.Has(core.ActionAttack) && g.run.RequestAttack(g.elapsed) {
		g.attackUntil = g.elapsed + attackAnim
		g.fireballs = append(g.fireballs, g.newFireball())
	}
}

func (g *Game) newFireball() Fireball {
	x := g.player.X + PlayerW
	if g.player.Facing < 0 {
		x = g.player.X - FireballW
	}
	return Fireball{X: x, Y: g.player.Y + 1, Dir: g.player.Facing}
}

// animate ends walk holds and attack animations whose time is up.
func (g *Game) animate() {
	avatar := g.run.Avatar()
	switch avatar.Pose() {
	case run.PoseWalk:
		if g.elapsed >= g.moveUntil {
			g.player.DirX, g.player.DirY = 0, 0
			avatar.Settle()
		}
	case run.PoseAttack:
		if g.elapsed >= g.attackUntil {
			avatar.AnimationDone()
		}
	}
}

// move advances every entity by dt and drops what left the field.
func (g *Game) move(dt time.Duration) {
	w, h := g.FieldSize()
	secs := dt.Seconds()

	physics := g.params.Config.Physics
	speed := physics.PlayerSpeed * float64(w)
	g.player.X = core.ClampF(g.player.X+float64(g.player.DirX)*speed*secs, 0, float64(max(w-PlayerW, 0)))
	g.player.Y = core.ClampF(g.player.Y+float64(g.player.DirY)*speed*verticalAspect*secs, 0, float64(max(h-PlayerH, 0)))

	smokeSpeed := config.ProfileFor(g.params.Difficulty).ObstacleSpeed(w)
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= smokeSpeed * secs
		if o.X+SmokeW > 0 {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept

	shotSpeed := physics.FireballSpeed * float64(w)
	shots := g.fireballs[:0]
	for _, f := range g.fireballs {
		f.X += float64(f.Dir) * shotSpeed * secs
		if f.X+FireballW > 0 && f.X < float64(w) {
			shots = append(shots, f)
		}
	}
	g.fireballs = shots
}

// collide resolves overlaps. Each overlap is reported to the run; once the
// run ends the remaining overlaps are left alone.
func (g *Game) collide() {
	g.shootDown()

	player := g.player.Rect()
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if !g.run.State().Terminal() && o.Rect().Intersects(player) {
			g.run.PlayerHit()
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept

	panels := g.powerups[:0]
	for _, p := range g.powerups {
		if !g.run.State().Terminal() && p.Rect().Intersects(player) {
			g.cadence.Collected(p.ID)
			g.run.PowerupCollected()
			continue
		}
		panels = append(panels, p)
	}
	g.powerups = panels
}

// shootDown removes fireballs together with the first smoke cloud each one hits.
func (g *Game) shootDown() {
	shots := g.fireballs[:0]
	for _, f := range g.fireballs {
		hit := -1
		if !g.run.State().Terminal() {
			for i, o := range g.obstacles {
				if f.Rect().Intersects(o.Rect()) {
					hit = i
					break
				}
			}
		}
		if hit < 0 {
			shots = append(shots, f)
			continue
		}
		g.obstacles = append(g.obstacles[:hit], g.obstacles[hit+1:]...)
		g.run.ObstacleDestroyed()
	}
	g.fireballs = shots
}

// handleSignals turns cadence signals into run events and field entities.
func (g *Game) handleSignals(signals []spawn.Signal) {
	w, h := g.FieldSize()
	for _, sig := range signals {
		if g.run.State().Terminal() {
			return
		}
		switch sig.Kind {
		case spawn.ClockTick:
			g.run.TimerTick()
		case spawn.SpawnObstacle:
			g.obstacles = append(g.obstacles, g.placer.smoke(w, h))
		case spawn.SpawnPowerup:
			g.powerups = append(g.powerups, g.placer.solar(sig.ID, w, h))
			g.sink.PlaySound(SoundSolarAppear)
		case spawn.ExpirePowerup:
			g.removePowerup(sig.ID)
		}
	}
}

func (g *Game) removePowerup(id int) {
	for i, p := range g.powerups {
		if p.ID == id {
			g.powerups = append(g.powerups[:i], g.powerups[i+1:]...)
			g.sink.PlaySound(SoundSolarDisappear)
			return
		}
	}
}

// tee forwards run commands to the caller's sink and keeps the hit flash
// timer of the field in sync.
type tee struct{ g *Game }

func (t tee) PlaySound(name string) { t.g.sink.PlaySound(name) }
func (t tee) ScoreChanged(score int) { t.g.sink.ScoreChanged(score) }
func (t tee) LivesChanged(lives int) { t.g.sink.LivesChanged(lives) }
func (t tee) TimeChanged(remaining int) { t.g.sink.TimeChanged(remaining) }
func (t tee) EnergyChanged(energy, goal int) { t.g.sink.EnergyChanged(energy, goal) }
func (t tee) Finished(tr scene.Transition) { t.g.sink.Finished(tr) }

func (t tee) PlayerFlash() {
	t.g.flashUntil = t.g.elapsed + t.g.params.Config.Physics.Flash()
	t.g.sink.PlayerFlash()
}

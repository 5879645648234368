package guardian

import (
	"math/rand"

	"github.com/vovakirdan/energy-guardian/internal/core"
)

// Entity sizes in cells.
const (
	PlayerW   = 3
	PlayerH   = 3
	SmokeW    = 4
	SmokeH    = 2
	SolarW    = 3
	SolarH    = 2
	FireballW = 2
	FireballH = 1
)

// Sprites. Spaces are transparent.
var (
	PlayerIdleSprite   = []string{" o ", "/|\\", "/ \\"}
	PlayerWalkSprite   = []string{" o ", "<|>", "/ >"}
	PlayerAttackSprite = []string{" o ", "/|=", "/ \\"}
	PlayerDeadSprite   = []string{"   ", "   ", "x_o"}
	SmokeSprite        = []string{"░▒▓▒", "▒▓▒░"}
	SolarSprite        = []string{"╔╦╗", "╚╩╝"}
	FireballRight      = []string{"~●"}
	FireballLeft       = []string{"●~"}
)

// Player is the guardian controlled by the user.
type Player struct {
	X, Y   float64 // top-left, field coordinates
	Facing int     // -1 left, +1 right
	DirX   int     // current walk direction
	DirY   int
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.Rect {
	return core.RectAt(p.X, p.Y, PlayerW, PlayerH)
}

// Moving reports whether a walk direction is held.
func (p Player) Moving() bool {
	return p.DirX != 0 || p.DirY != 0
}

// Obstacle is a smoke cloud drifting towards the left edge.
type Obstacle struct {
	X, Y float64
}

// Rect returns the obstacle's hitbox.
func (o Obstacle) Rect() core.Rect {
	return core.RectAt(o.X, o.Y, SmokeW, SmokeH)
}

// Powerup is a solar panel waiting to be collected.
// ID matches the spawn cadence id so expiry can find it.
type Powerup struct {
	ID   int
	X, Y float64
}

// Rect returns the power-up's hitbox.
func (p Powerup) Rect() core.Rect {
	return core.RectAt(p.X, p.Y, SolarW, SolarH)
}

// Fireball is a shot travelling horizontally.
type Fireball struct {
	X, Y float64
	Dir  int
}

// Rect returns the fireball's hitbox.
func (f Fireball) Rect() core.Rect {
	return core.RectAt(f.X, f.Y, FireballW, FireballH)
}

// placer picks spawn positions inside the field.
type placer struct {
	rng *rand.Rand
}

func newPlacer(seed int64) placer {
	return placer{rng: rand.New(rand.NewSource(seed))}
}

// between returns a random integer in [lo, hi], or lo when the range is empty.
func (p placer) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo+1)
}

// band returns a random row between the fractions lo and hi of height,
// adjusted so an entity of size h stays inside the field.
func (p placer) band(height, h int, lo, hi float64) int {
	top := int(float64(height) * lo)
	bottom := min(int(float64(height)*hi), height-h)
	return core.Clamp(p.between(top, bottom), 0, max(height-h, 0))
}

// smoke enters at the right edge somewhere in the middle two thirds.
func (p placer) smoke(width, height int) Obstacle {
	return Obstacle{
		X: float64(width),
		Y: float64(p.band(height, SmokeH, 0.17, 0.83)),
	}
}

// solar appears anywhere away from the field borders.
func (p placer) solar(id, width, height int) Powerup {
	left := int(float64(width) * 0.125)
	right := min(int(float64(width)*0.875), width-SolarW)
	return Powerup{
		ID: id,
		X:  float64(p.between(left, right)),
		Y:  float64(p.band(height, SolarH, 0.167, 0.833)),
	}
}

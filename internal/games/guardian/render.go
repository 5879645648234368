package guardian

import (
	"fmt"

	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/run"
)

// Render draws the HUD, the field and, while paused, the pause menu.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.TooSmall() {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH), core.ColorRed)
		return
	}

	snap := g.run.Snapshot()
	g.renderHUD(dst, snap)
	g.renderField(dst, snap)
	g.renderEnergy(dst, snap)

	if snap.Paused() {
		g.renderPause(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap run.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)
	livesColor := core.ColorWhite
	if snap.Lives <= 1 {
		livesColor = core.ColorRed
	}
	dst.DrawText(14, 0, fmt.Sprintf("Lives: %d", snap.Lives), livesColor)
	dst.DrawTextCentered(0, fmt.Sprintf("Level %d · %s", snap.Level, snap.Difficulty), core.ColorGray)

	timeColor := core.ColorWhite
	if snap.TimeRemaining <= 10 {
		timeColor = core.ColorYellow
	}
	dst.DrawTextRight(0, fmt.Sprintf("Time: %d", snap.TimeRemaining), timeColor)
}

func (g *Game) renderField(dst *core.Screen, snap run.Snapshot) {
	for _, p := range g.powerups {
		r := p.Rect()
		dst.DrawSprite(r.X, r.Y+hudTop, SolarSprite, core.ColorBrightYellow)
	}
	for _, o := range g.obstacles {
		r := o.Rect()
		dst.DrawSprite(r.X, r.Y+hudTop, SmokeSprite, core.ColorGray)
	}
	for _, f := range g.fireballs {
		sprite := FireballRight
		if f.Dir < 0 {
			sprite = FireballLeft
		}
		r := f.Rect()
		dst.DrawSprite(r.X, r.Y+hudTop, sprite, core.ColorOrange)
	}

	sprite := PlayerIdleSprite
	switch snap.Pose {
	case run.PoseWalk:
		sprite = PlayerWalkSprite
	case run.PoseAttack:
		sprite = PlayerAttackSprite
	case run.PoseDead:
		sprite = PlayerDeadSprite
	}
	color := core.ColorBrightGreen
	if g.Flashing() || snap.Pose == run.PoseDead {
		color = core.ColorRed
	}
	r := g.player.Rect()
	dst.DrawSprite(r.X, r.Y+hudTop, sprite, color)
}

func (g *Game) renderEnergy(dst *core.Screen, snap run.Snapshot) {
	y := dst.Height() - hudBottom
	label := "Energy "
	counter := fmt.Sprintf(" %d/%d", snap.Energy, snap.EnergyGoal)
	barW := max(dst.Width()-len(label)-len(counter)-2, 1)
	dst.DrawText(1, y, label, core.ColorWhite)
	dst.DrawBar(1+len(label), y, barW, float64(snap.Energy)/float64(snap.EnergyGoal), core.ColorGreen, core.ColorGray)
	dst.DrawText(1+len(label)+barW, y, counter, core.ColorWhite)

	dst.DrawText(1, y+1, "ESC to Pause · arrows: move · space: fire", core.ColorGray)
}

func (g *Game) renderPause(dst *core.Screen) {
	lines := []string{"PAUSED", "", "ESC - Resume", "S - Exit"}
	boxW, boxH := 24, len(lines)+4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+2+i, line, color)
	}
}

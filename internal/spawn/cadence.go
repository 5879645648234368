// Package spawn provides the periodic timers of a level: the one-second
// countdown, obstacle spawns, power-up spawns and power-up expiry.
// Timers are driven by elapsed time from the game loop, so a paused or
// stopped cadence simply does not advance.
package spawn

import "time"

// Kind identifies what a signal asks the game to do.
type Kind int

const (
	ClockTick Kind = iota
	SpawnObstacle
	SpawnPowerup
	ExpirePowerup
)

// String returns the signal kind name.
func (k Kind) String() string {
	switch k {
	case ClockTick:
		return "clock-tick"
	case SpawnObstacle:
		return "spawn-obstacle"
	case SpawnPowerup:
		return "spawn-powerup"
	case ExpirePowerup:
		return "expire-powerup"
	default:
		return "unknown"
	}
}

// Signal is emitted when a timer fires. ID identifies the power-up for
// SpawnPowerup and ExpirePowerup signals.
type Signal struct {
	Kind Kind
	ID   int
	At   time.Duration
}

// Periods configures the cadence. Non-positive periods disable that timer.
type Periods struct {
	Clock           time.Duration
	Obstacle        time.Duration
	Powerup         time.Duration
	PowerupLifetime time.Duration
}

type expiry struct {
	id  int
	due time.Duration
}

// Cadence schedules the periodic signals of one run.
type Cadence struct {
	periods Periods
	now     time.Duration

	clockDue    time.Duration
	obstacleDue time.Duration
	powerupDue  time.Duration
	expiries    []expiry // ordered by due

	nextID  int
	stopped bool
}

// never is a due time no run reaches.
const never = time.Duration(1<<63 - 1)

// New creates a cadence starting at time zero.
func New(p Periods) *Cadence {
	return &Cadence{
		periods:     p,
		clockDue:    firstDue(p.Clock),
		obstacleDue: firstDue(p.Obstacle),
		powerupDue:  firstDue(p.Powerup),
	}
}

func firstDue(period time.Duration) time.Duration {
	if period <= 0 {
		return never
	}
	return period
}

// Now returns the cadence clock: total unpaused time advanced so far.
func (c *Cadence) Now() time.Duration {
	return c.now
}

// Stop halts every timer permanently.
func (c *Cadence) Stop() {
	c.stopped = true
	c.expiries = nil
}

// Stopped reports whether Stop was called.
func (c *Cadence) Stopped() bool {
	return c.stopped
}

// Pending returns the number of power-ups waiting to expire.
func (c *Cadence) Pending() int {
	return len(c.expiries)
}

// Collected cancels the expiry of power-up id.
func (c *Cadence) Collected(id int) {
	for i, e := range c.expiries {
		if e.id == id {
			c.expiries = append(c.expiries[:i], c.expiries[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by dt and returns the signals that fired,
// in time order. Nothing fires while paused or after Stop.
func (c *Cadence) Advance(dt time.Duration, paused bool) []Signal {
	if c.stopped || paused || dt <= 0 {
		return nil
	}

	end := c.now + dt
	var out []Signal
	for {
		kind, due := c.next()
		if due > end {
			break
		}
		c.now = due
		out = append(out, c.fire(kind))
	}
	c.now = end
	return out
}

// next returns the earliest pending timer. On ties the countdown wins, then
// expiries, then spawns.
func (c *Cadence) next() (Kind, time.Duration) {
	kind, due := ClockTick, c.clockDue
	if len(c.expiries) > 0 && c.expiries[0].due < due {
		kind, due = ExpirePowerup, c.expiries[0].due
	}
	if c.obstacleDue < due {
		kind, due = SpawnObstacle, c.obstacleDue
	}
	if c.powerupDue < due {
		kind, due = SpawnPowerup, c.powerupDue
	}
	return kind, due
}

func (c *Cadence) fire(kind Kind) Signal {
	switch kind {
	case ClockTick:
		c.clockDue += c.periods.Clock
		return Signal{Kind: ClockTick, At: c.now}

	case SpawnObstacle:
		c.obstacleDue += c.periods.Obstacle
		return Signal{Kind: SpawnObstacle, At: c.now}

	case SpawnPowerup:
		c.powerupDue += c.periods.Powerup
		c.nextID++
		if c.periods.PowerupLifetime > 0 {
			c.expiries = append(c.expiries, expiry{id: c.nextID, due: c.now + c.periods.PowerupLifetime})
		}
		return Signal{Kind: SpawnPowerup, ID: c.nextID, At: c.now}

	default:
		e := c.expiries[0]
		c.expiries = c.expiries[1:]
		return Signal{Kind: ExpirePowerup, ID: e.id, At: c.now}
	}
}

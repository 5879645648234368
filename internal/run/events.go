package run

import "time"

// Event is a discrete input consumed by a run.
type Event int

const (
	EventObstacleDestroyed Event = iota
	EventPowerupCollected
	EventPlayerHit
	EventTimerTick
	EventPauseToggled
	EventAttackRequested
)

var eventNames = map[Event]string{
	EventObstacleDestroyed: "obstacle-destroyed",
	EventPowerupCollected:  "powerup-collected",
	EventPlayerHit:         "player-hit",
	EventTimerTick:         "timer-tick",
	EventPauseToggled:      "pause-toggled",
	EventAttackRequested:   "attack-requested",
}

// String returns the wire name of the event.
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseEvent looks up an event by its wire name.
func ParseEvent(name string) (Event, bool) {
	for e, n := range eventNames {
		if n == name {
			return e, true
		}
	}
	return 0, false
}

// Dispatch routes an event to the matching method. now is the run clock and
// only matters for attacks. Returns whether the event was accepted.
func (r *Run) Dispatch(e Event, now time.Duration) bool {
	before := r.Snapshot()
	switch e {
	case EventObstacleDestroyed:
		r.ObstacleDestroyed()
	case EventPowerupCollected:
		r.PowerupCollected()
	case EventPlayerHit:
		r.PlayerHit()
	case EventTimerTick:
		r.TimerTick()
	case EventPauseToggled:
		return r.TogglePause()
	case EventAttackRequested:
		return r.RequestAttack(now)
	default:
		return false
	}
	return r.Snapshot() != before
}

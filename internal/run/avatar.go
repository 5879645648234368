package run

// Pose is the locomotion state of the player character.
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk
	PoseAttack
	PoseDead
)

// String returns the pose name.
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseWalk:
		return "walk"
	case PoseAttack:
		return "attack"
	case PoseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Trigger drives pose changes.
type Trigger int

const (
	TriggerMove          Trigger = iota // movement input this frame
	TriggerSettle                       // no movement input this frame
	TriggerAttack                       // an accepted shot
	TriggerAnimationDone                // the current one-shot animation ended
	TriggerDie
)

// poseTransitions lists every allowed change. Missing entries leave the pose as is.
var poseTransitions = map[Pose]map[Trigger]Pose{
	PoseIdle: {
		TriggerMove:   PoseWalk,
		TriggerAttack: PoseAttack,
		TriggerDie:    PoseDead,
	},
	PoseWalk: {
		TriggerMove:          PoseWalk,
		TriggerSettle:        PoseIdle,
		TriggerAnimationDone: PoseIdle,
		TriggerDie:           PoseDead,
	},
	PoseAttack: {
		TriggerMove:          PoseWalk,
		TriggerAnimationDone: PoseIdle,
		TriggerDie:           PoseDead,
	},
	PoseDead: {},
}

// Avatar is the player character's locomotion state machine.
type Avatar struct {
	pose Pose
}

// Pose returns the current pose.
func (a *Avatar) Pose() Pose {
	return a.pose
}

// Fire applies a trigger and reports whether the pose changed.
func (a *Avatar) Fire(t Trigger) bool {
	next, ok := poseTransitions[a.pose][t]
	if !ok || next == a.pose {
		return false
	}
	a.pose = next
	return true
}

// Move marks the avatar as walking.
func (a *Avatar) Move() bool { return a.Fire(TriggerMove) }

// Settle returns a walking avatar to idle when input stops.
func (a *Avatar) Settle() bool { return a.Fire(TriggerSettle) }

// AnimationDone ends a one-shot attack or walk cycle.
func (a *Avatar) AnimationDone() bool { return a.Fire(TriggerAnimationDone) }

// CanAttack reports whether the pose allows a new shot.
func (a *Avatar) CanAttack() bool {
	_, ok := poseTransitions[a.pose][TriggerAttack]
	return ok || a.pose == PoseAttack
}

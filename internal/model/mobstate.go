package model

// MobState is the behavior state of a hostile NPC.
type MobState int32

const (
	// StateIdle - mob is standing at rest, no active behavior.
	StateIdle MobState = iota
	// StatePatrol - mob is walking toward a random waypoint near home.
	StatePatrol
	// StateChase - mob is pursuing its primary target.
	StateChase
	// StateCombat - mob is within attack range, attacking on cooldown.
	StateCombat
	// StateReturning - mob gave up and is walking back home.
	StateReturning
	// StateDead - mob is dead and waiting for respawn.
	StateDead
)

// String returns a human-readable state name.
func (s MobState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StatePatrol:
		return "PATROL"
	case StateChase:
		return "CHASE"
	case StateCombat:
		return "COMBAT"
	case StateReturning:
		return "RETURNING"
	case StateDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

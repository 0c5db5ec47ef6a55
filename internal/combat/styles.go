package combat

// CombatStyle is a named attack stance that reweights accuracy against
// damage output.
type CombatStyle int32

const (
	StyleAccurate CombatStyle = iota
	StyleAggressive
	StyleDefensive
	StyleControlled
)

// String returns a human-readable style name.
func (s CombatStyle) String() string {
	switch s {
	case StyleAccurate:
		return "ACCURATE"
	case StyleAggressive:
		return "AGGRESSIVE"
	case StyleDefensive:
		return "DEFENSIVE"
	case StyleControlled:
		return "CONTROLLED"
	default:
		return "UNKNOWN"
	}
}

// AttackType is the broad class of an attack.
type AttackType int32

const (
	AttackMelee AttackType = iota
	AttackRanged
	AttackMagic
)

// String returns a human-readable attack type name.
func (t AttackType) String() string {
	switch t {
	case AttackMelee:
		return "MELEE"
	case AttackRanged:
		return "RANGED"
	case AttackMagic:
		return "MAGIC"
	default:
		return "UNKNOWN"
	}
}

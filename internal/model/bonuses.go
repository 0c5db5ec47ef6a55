package model

// BonusStyle is the axis along which accuracy and defense bonuses apply.
type BonusStyle int32

const (
	BonusStab BonusStyle = iota
	BonusSlash
	BonusCrush
	BonusRanged
	BonusMagic
)

// String returns a human-readable bonus style name.
func (b BonusStyle) String() string {
	switch b {
	case BonusStab:
		return "STAB"
	case BonusSlash:
		return "SLASH"
	case BonusCrush:
		return "CRUSH"
	case BonusRanged:
		return "RANGED"
	case BonusMagic:
		return "MAGIC"
	default:
		return "UNKNOWN"
	}
}

// CombatBonuses is the flat aggregate of all equipment contributions.
// Derived on demand, never stored long-term.
type CombatBonuses struct {
	AttackStab   int32
	AttackSlash  int32
	AttackCrush  int32
	AttackRanged int32
	AttackMagic  int32

	DefenseStab   int32
	DefenseSlash  int32
	DefenseCrush  int32
	DefenseRanged int32
	DefenseMagic  int32

	MeleeStrength  int32
	RangedStrength int32
	MagicDamage    int32

	Prayer int32
}

// Add accumulates another set of bonuses into b.
func (b *CombatBonuses) Add(other CombatBonuses) {
	b.AttackStab += other.AttackStab
	b.AttackSlash += other.AttackSlash
	b.AttackCrush += other.AttackCrush
	b.AttackRanged += other.AttackRanged
	b.AttackMagic += other.AttackMagic

	b.DefenseStab += other.DefenseStab
	b.DefenseSlash += other.DefenseSlash
	b.DefenseCrush += other.DefenseCrush
	b.DefenseRanged += other.DefenseRanged
	b.DefenseMagic += other.DefenseMagic

	b.MeleeStrength += other.MeleeStrength
	b.RangedStrength += other.RangedStrength
	b.MagicDamage += other.MagicDamage

	b.Prayer += other.Prayer
}

// AttackBonus returns the accuracy bonus along the given style axis.
func (b CombatBonuses) AttackBonus(style BonusStyle) int32 {
	switch style {
	case BonusStab:
		return b.AttackStab
	case BonusSlash:
		return b.AttackSlash
	case BonusCrush:
		return b.AttackCrush
	case BonusRanged:
		return b.AttackRanged
	case BonusMagic:
		return b.AttackMagic
	default:
		return 0
	}
}

// DefenseBonus returns the defensive bonus along the given style axis.
func (b CombatBonuses) DefenseBonus(style BonusStyle) int32 {
	switch style {
	case BonusStab:
		return b.DefenseStab
	case BonusSlash:
		return b.DefenseSlash
	case BonusCrush:
		return b.DefenseCrush
	case BonusRanged:
		return b.DefenseRanged
	case BonusMagic:
		return b.DefenseMagic
	default:
		return 0
	}
}

// IsZero reports whether every bonus field is zero.
func (b CombatBonuses) IsZero() bool {
	return b == CombatBonuses{}
}

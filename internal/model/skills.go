package model

// SkillType identifies one of the trainable combat skills.
type SkillType int32

const (
	SkillAttack SkillType = iota
	SkillStrength
	SkillDefense
	SkillRanged
	SkillMagic
	SkillHitpoints

	skillCount
)

// String returns a human-readable skill name.
func (s SkillType) String() string {
	switch s {
	case SkillAttack:
		return "ATTACK"
	case SkillStrength:
		return "STRENGTH"
	case SkillDefense:
		return "DEFENSE"
	case SkillRanged:
		return "RANGED"
	case SkillMagic:
		return "MAGIC"
	case SkillHitpoints:
		return "HITPOINTS"
	default:
		return "UNKNOWN"
	}
}

// Skill holds the current level and accumulated experience of one skill.
type Skill struct {
	Level      int32
	Experience int64
}

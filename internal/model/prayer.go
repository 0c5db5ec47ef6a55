package model

// Prayer is an active prayer/buff flag on a combatant.
type Prayer int32

const (
	// Strength boosters (melee damage).
	PrayerBurstOfStrength Prayer = iota
	PrayerSuperhumanStrength
	PrayerUltimateStrength

	// Accuracy boosters (melee attack).
	PrayerClarityOfThought
	PrayerImprovedReflexes
	PrayerIncredibleReflexes

	// Ranged / magic boosters.
	PrayerSharpEye
	PrayerHawkEye
	PrayerEagleEye
	PrayerMysticWill
	PrayerMysticLore
	PrayerMysticMight

	// Protection prayers.
	PrayerProtectFromMelee
	PrayerProtectFromMissiles
	PrayerProtectFromMagic
)

// String returns a human-readable prayer name.
func (p Prayer) String() string {
	switch p {
	case PrayerBurstOfStrength:
		return "BURST_OF_STRENGTH"
	case PrayerSuperhumanStrength:
		return "SUPERHUMAN_STRENGTH"
	case PrayerUltimateStrength:
		return "ULTIMATE_STRENGTH"
	case PrayerClarityOfThought:
		return "CLARITY_OF_THOUGHT"
	case PrayerImprovedReflexes:
		return "IMPROVED_REFLEXES"
	case PrayerIncredibleReflexes:
		return "INCREDIBLE_REFLEXES"
	case PrayerSharpEye:
		return "SHARP_EYE"
	case PrayerHawkEye:
		return "HAWK_EYE"
	case PrayerEagleEye:
		return "EAGLE_EYE"
	case PrayerMysticWill:
		return "MYSTIC_WILL"
	case PrayerMysticLore:
		return "MYSTIC_LORE"
	case PrayerMysticMight:
		return "MYSTIC_MIGHT"
	case PrayerProtectFromMelee:
		return "PROTECT_FROM_MELEE"
	case PrayerProtectFromMissiles:
		return "PROTECT_FROM_MISSILES"
	case PrayerProtectFromMagic:
		return "PROTECT_FROM_MAGIC"
	default:
		return "UNKNOWN"
	}
}

package combat

// Params are the numeric coefficients of the damage formulas. The exact
// values are server tuning knobs loaded from config; tests pin down only
// the relative invariants (stance ordering, prayer gains, armor
// monotonicity), never these constants.
type Params struct {
	// Max hit: maxHit = effLevel × (strengthBonus + EquipmentBonusOffset)
	// / StrengthDenominator, where effLevel folds in skill level, prayer
	// multiplier, stance bonus and EffectiveLevelOffset.
	EffectiveLevelOffset int32 `yaml:"effective_level_offset"`
	EquipmentBonusOffset int32 `yaml:"equipment_bonus_offset"`
	StrengthDenominator  int32 `yaml:"strength_denominator"`

	// Stance contributions. The flat damage bonuses sit outside the
	// scaled term so the aggressive > accurate ordering holds at every
	// level, not just on average.
	AggressiveLevelBonus  int32 `yaml:"aggressive_level_bonus"`
	ControlledLevelBonus  int32 `yaml:"controlled_level_bonus"`
	AggressiveDamageBonus int32 `yaml:"aggressive_damage_bonus"`
	ControlledDamageBonus int32 `yaml:"controlled_damage_bonus"`
	AccurateAccuracyBonus int32 `yaml:"accurate_accuracy_bonus"`

	// Flat damage granted by any active strength-class prayer, on top of
	// the effective-level multiplier. Keeps prayers strictly ahead.
	PrayerDamageBonus int32 `yaml:"prayer_damage_bonus"`

	// Damage reduction: armor contributes
	// MaxArmorReduction × defBonus/(defBonus+ArmorSoftCap), defense level
	// contributes DefenseLevelWeight × level/(level+100), protection
	// prayers add ProtectPrayerReduction; the sum is capped.
	ArmorSoftCap           float64 `yaml:"armor_soft_cap"`
	MaxArmorReduction      float64 `yaml:"max_armor_reduction"`
	DefenseLevelWeight     float64 `yaml:"defense_level_weight"`
	ProtectPrayerReduction float64 `yaml:"protect_prayer_reduction"`
	MaxTotalReduction      float64 `yaml:"max_total_reduction"`
}

// DefaultParams returns the stock tuning values.
func DefaultParams() Params {
	return Params{
		EffectiveLevelOffset: 8,
		EquipmentBonusOffset: 64,
		StrengthDenominator:  640,

		AggressiveLevelBonus:  3,
		ControlledLevelBonus:  1,
		AggressiveDamageBonus: 2,
		ControlledDamageBonus: 1,
		AccurateAccuracyBonus: 3,

		PrayerDamageBonus: 1,

		ArmorSoftCap:           200,
		MaxArmorReduction:      0.60,
		DefenseLevelWeight:     0.20,
		ProtectPrayerReduction: 0.40,
		MaxTotalReduction:      0.85,
	}
}

package combat

import (
	"math/rand/v2"

	"github.com/runemist/runemist/internal/model"
)

// Calculator evaluates the damage formulas under one set of tuning
// parameters. All operations are pure and tolerate missing stats by
// treating absent values as zero.
type Calculator struct {
	params Params
}

// NewCalculator creates a Calculator with the given tuning parameters.
func NewCalculator(params Params) *Calculator {
	return &Calculator{params: params}
}

// Params returns the active tuning parameters.
func (c *Calculator) Params() Params {
	return c.params
}

// strengthPrayers maps strength-class prayers to their effective-level
// multiplier, per attack type. The best active prayer wins.
var strengthPrayers = map[AttackType][]struct {
	prayer model.Prayer
	mult   float64
}{
	AttackMelee: {
		{model.PrayerUltimateStrength, 1.15},
		{model.PrayerSuperhumanStrength, 1.10},
		{model.PrayerBurstOfStrength, 1.05},
	},
	AttackRanged: {
		{model.PrayerEagleEye, 1.15},
		{model.PrayerHawkEye, 1.10},
		{model.PrayerSharpEye, 1.05},
	},
	AttackMagic: {
		{model.PrayerMysticMight, 1.15},
		{model.PrayerMysticLore, 1.10},
		{model.PrayerMysticWill, 1.05},
	},
}

// accuracyPrayers is the same table for the accuracy-class prayers.
// Ranged and magic prayers boost both axes.
var accuracyPrayers = map[AttackType][]struct {
	prayer model.Prayer
	mult   float64
}{
	AttackMelee: {
		{model.PrayerIncredibleReflexes, 1.15},
		{model.PrayerImprovedReflexes, 1.10},
		{model.PrayerClarityOfThought, 1.05},
	},
	AttackRanged: {
		{model.PrayerEagleEye, 1.15},
		{model.PrayerHawkEye, 1.10},
		{model.PrayerSharpEye, 1.05},
	},
	AttackMagic: {
		{model.PrayerMysticMight, 1.15},
		{model.PrayerMysticLore, 1.10},
		{model.PrayerMysticWill, 1.05},
	},
}

// CalculateMaxHit returns the highest damage one attack can roll for
// this attacker, stance and attack type. Never negative.
func (c *Calculator) CalculateMaxHit(attacker *model.CombatantStats, style CombatStyle, attackType AttackType) int32 {
	if attacker == nil {
		return 0
	}

	bonuses := c.totalBonuses(attacker)

	var level, strengthBonus int32
	switch attackType {
	case AttackRanged:
		level = attacker.SkillLevel(model.SkillRanged)
		strengthBonus = bonuses.RangedStrength
	case AttackMagic:
		level = attacker.SkillLevel(model.SkillMagic)
		strengthBonus = bonuses.MagicDamage
	default:
		level = attacker.SkillLevel(model.SkillStrength)
		strengthBonus = bonuses.MeleeStrength
	}
	if strengthBonus < 0 {
		strengthBonus = 0
	}

	prayerMult, prayed := bestPrayerMultiplier(attacker, strengthPrayers[attackType])

	eff := int32(float64(level)*prayerMult) + c.styleLevelBonus(style) + c.params.EffectiveLevelOffset

	denom := c.params.StrengthDenominator
	if denom <= 0 {
		denom = 1
	}

	maxHit := eff * (strengthBonus + c.params.EquipmentBonusOffset) / denom
	maxHit += c.styleDamageBonus(style)
	if prayed {
		maxHit += c.params.PrayerDamageBonus
	}

	if maxHit < 0 {
		maxHit = 0
	}
	return maxHit
}

// RollDamage returns a uniform random integer in [0, maxHit].
// RollDamage(0) is always 0.
func (c *Calculator) RollDamage(maxHit int32) int32 {
	if maxHit <= 0 {
		return 0
	}
	return rand.Int32N(maxHit + 1)
}

// CalculateAccuracy returns the attack roll for a hit check: effective
// attack level scaled by the equipment accuracy bonus along the weapon's
// style axis.
func (c *Calculator) CalculateAccuracy(attacker *model.CombatantStats, style CombatStyle, attackType AttackType) int32 {
	if attacker == nil {
		return 0
	}

	bonuses := c.totalBonuses(attacker)

	var level int32
	switch attackType {
	case AttackRanged:
		level = attacker.SkillLevel(model.SkillRanged)
	case AttackMagic:
		level = attacker.SkillLevel(model.SkillMagic)
	default:
		level = attacker.SkillLevel(model.SkillAttack)
	}

	prayerMult, _ := bestPrayerMultiplier(attacker, accuracyPrayers[attackType])

	eff := int32(float64(level)*prayerMult) + c.params.EffectiveLevelOffset
	if style == StyleAccurate {
		eff += c.params.AccurateAccuracyBonus
	} else if style == StyleControlled {
		eff += c.params.ControlledLevelBonus
	}

	attackBonus := bonuses.AttackBonus(c.attackAxis(attacker, attackType))
	if attackBonus < 0 {
		attackBonus = 0
	}

	roll := eff * (attackBonus + c.params.EquipmentBonusOffset)
	if roll < 0 {
		roll = 0
	}
	return roll
}

// CalculateDefenseRoll returns the defense roll a defender opposes a hit
// check with.
func (c *Calculator) CalculateDefenseRoll(defender *model.CombatantStats, attackType AttackType) int32 {
	if defender == nil {
		return 0
	}

	bonuses := c.totalBonuses(defender)
	eff := defender.SkillLevel(model.SkillDefense) + c.params.EffectiveLevelOffset

	defBonus := c.defenseBonusFor(bonuses, attackType)
	if defBonus < 0 {
		defBonus = 0
	}

	roll := eff * (defBonus + c.params.EquipmentBonusOffset)
	if roll < 0 {
		roll = 0
	}
	return roll
}

// CalcHitSuccess rolls whether an attack lands given the two opposed
// rolls.
func (c *Calculator) CalcHitSuccess(attackRoll, defenseRoll int32) bool {
	if attackRoll <= 0 {
		return false
	}
	if defenseRoll < 0 {
		defenseRoll = 0
	}

	var chance float64
	if attackRoll > defenseRoll {
		chance = 1.0 - float64(defenseRoll+2)/(2.0*float64(attackRoll+1))
	} else {
		chance = float64(attackRoll) / (2.0 * float64(defenseRoll+1))
	}
	return rand.Float64() < chance
}

// ApplyDamageReductions reduces raw damage by the defender's armor,
// defense level and protection prayers. The result is always within
// [0, rawDamage]; zero in is zero out.
func (c *Calculator) ApplyDamageReductions(rawDamage int32, defender *model.CombatantStats, attackType AttackType) int32 {
	if rawDamage <= 0 {
		return 0
	}
	if defender == nil {
		return rawDamage
	}

	bonuses := c.totalBonuses(defender)
	defBonus := float64(c.defenseBonusFor(bonuses, attackType))
	if defBonus < 0 {
		defBonus = 0
	}

	reduction := c.params.MaxArmorReduction * defBonus / (defBonus + c.params.ArmorSoftCap)

	defLevel := float64(defender.SkillLevel(model.SkillDefense))
	reduction += c.params.DefenseLevelWeight * defLevel / (defLevel + 100)

	if defender.HasPrayer(protectionPrayerFor(attackType)) {
		reduction += c.params.ProtectPrayerReduction
	}

	if reduction > c.params.MaxTotalReduction {
		reduction = c.params.MaxTotalReduction
	}
	if reduction < 0 {
		reduction = 0
	}

	reduced := rawDamage - int32(float64(rawDamage)*reduction)
	if reduced < 0 {
		reduced = 0
	}
	if reduced > rawDamage {
		reduced = rawDamage
	}
	return reduced
}

// totalBonuses aggregates intrinsic bonuses, live equipment and any
// complete set bonuses. Recomputed fresh on every calculation — gear
// changes take effect on the next attack.
func (c *Calculator) totalBonuses(stats *model.CombatantStats) model.CombatBonuses {
	equipment := stats.EquipmentSnapshot()
	total := stats.BaseBonuses()
	total.Add(Aggregate(equipment))
	total.Add(SetBonuses(equipment))
	return total
}

// attackAxis picks the bonus axis of the attack: the equipped weapon's
// style for melee (crush when unarmed), ranged or magic otherwise.
func (c *Calculator) attackAxis(stats *model.CombatantStats, attackType AttackType) model.BonusStyle {
	switch attackType {
	case AttackRanged:
		return model.BonusRanged
	case AttackMagic:
		return model.BonusMagic
	default:
		if weapon := stats.EquippedItem(model.SlotWeapon); weapon != nil {
			return weapon.WeaponStyle
		}
		return model.BonusCrush
	}
}

// defenseBonusFor collapses the per-style defensive bonuses to the
// incoming attack type. Melee averages the three melee axes.
func (c *Calculator) defenseBonusFor(bonuses model.CombatBonuses, attackType AttackType) int32 {
	switch attackType {
	case AttackRanged:
		return bonuses.DefenseRanged
	case AttackMagic:
		return bonuses.DefenseMagic
	default:
		return (bonuses.DefenseStab + bonuses.DefenseSlash + bonuses.DefenseCrush) / 3
	}
}

func (c *Calculator) styleLevelBonus(style CombatStyle) int32 {
	switch style {
	case StyleAggressive:
		return c.params.AggressiveLevelBonus
	case StyleControlled:
		return c.params.ControlledLevelBonus
	default:
		return 0
	}
}

func (c *Calculator) styleDamageBonus(style CombatStyle) int32 {
	switch style {
	case StyleAggressive:
		return c.params.AggressiveDamageBonus
	case StyleControlled:
		return c.params.ControlledDamageBonus
	default:
		return 0
	}
}

func protectionPrayerFor(attackType AttackType) model.Prayer {
	switch attackType {
	case AttackRanged:
		return model.PrayerProtectFromMissiles
	case AttackMagic:
		return model.PrayerProtectFromMagic
	default:
		return model.PrayerProtectFromMelee
	}
}

func bestPrayerMultiplier(stats *model.CombatantStats, table []struct {
	prayer model.Prayer
	mult   float64
}) (float64, bool) {
	for _, entry := range table {
		if stats.HasPrayer(entry.prayer) {
			return entry.mult, true
		}
	}
	return 1.0, false
}

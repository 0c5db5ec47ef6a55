package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemist/runemist/internal/model"
)

func newCalc() *Calculator {
	return NewCalculator(DefaultParams())
}

func meleeStats(attack, strength int32) *model.CombatantStats {
	stats := model.NewCombatantStats(10)
	stats.SetSkillLevel(model.SkillAttack, attack)
	stats.SetSkillLevel(model.SkillStrength, strength)
	return stats
}

func TestMaxHitStanceOrdering(t *testing.T) {
	calc := newCalc()

	// Aggressive must beat controlled, and controlled must beat
	// accurate, at every strength level — not just on average.
	for level := int32(1); level <= 99; level++ {
		stats := meleeStats(level, level)

		accurate := calc.CalculateMaxHit(stats, StyleAccurate, AttackMelee)
		controlled := calc.CalculateMaxHit(stats, StyleControlled, AttackMelee)
		aggressive := calc.CalculateMaxHit(stats, StyleAggressive, AttackMelee)

		require.Greater(t, aggressive, controlled, "level %d", level)
		require.Greater(t, controlled, accurate, "level %d", level)
	}
}

func TestMaxHitPrayerStrictlyIncreases(t *testing.T) {
	calc := newCalc()

	prayers := []model.Prayer{
		model.PrayerBurstOfStrength,
		model.PrayerSuperhumanStrength,
		model.PrayerUltimateStrength,
	}

	for level := int32(1); level <= 99; level++ {
		base := calc.CalculateMaxHit(meleeStats(level, level), StyleAggressive, AttackMelee)

		prev := base
		for _, prayer := range prayers {
			stats := meleeStats(level, level)
			stats.SetPrayer(prayer, true)
			prayed := calc.CalculateMaxHit(stats, StyleAggressive, AttackMelee)

			require.Greater(t, prayed, base, "level %d prayer %v", level, prayer)
			require.GreaterOrEqual(t, prayed, prev, "stronger prayer never hits less")
			prev = prayed
		}
	}
}

func TestMaxHitStrengthBonusIncreases(t *testing.T) {
	calc := newCalc()

	unarmed := meleeStats(65, 65)
	armed := meleeStats(65, 65)
	armed.Equip(&model.Item{
		Name:        "bronze sword",
		Slot:        model.SlotWeapon,
		Bonuses:     model.CombatBonuses{MeleeStrength: 12},
		WeaponStyle: model.BonusSlash,
	})

	assert.Greater(t,
		calc.CalculateMaxHit(armed, StyleAggressive, AttackMelee),
		calc.CalculateMaxHit(unarmed, StyleAggressive, AttackMelee))
}

func TestMaxHitNeverNegative(t *testing.T) {
	calc := newCalc()

	stats := model.NewCombatantStats(10)
	stats.Equip(&model.Item{
		Name:    "cursed blade",
		Slot:    model.SlotWeapon,
		Bonuses: model.CombatBonuses{MeleeStrength: -200},
	})

	assert.GreaterOrEqual(t, calc.CalculateMaxHit(stats, StyleAccurate, AttackMelee), int32(0))
	assert.Equal(t, int32(0), calc.CalculateMaxHit(nil, StyleAccurate, AttackMelee))
}

func TestRollDamageBounds(t *testing.T) {
	calc := newCalc()

	assert.Equal(t, int32(0), calc.RollDamage(0))
	assert.Equal(t, int32(0), calc.RollDamage(-5))

	const maxHit = 20
	seen := make(map[int32]bool)
	for range 200 {
		roll := calc.RollDamage(maxHit)
		require.GreaterOrEqual(t, roll, int32(0))
		require.LessOrEqual(t, roll, int32(maxHit))
		seen[roll] = true
	}
	// A uniform roll over [0,20] produces more than one value in 200
	// draws for any sane RNG.
	assert.Greater(t, len(seen), 1)
}

func TestHitCheck(t *testing.T) {
	calc := newCalc()

	// Zero attack roll can never land.
	for range 100 {
		assert.False(t, calc.CalcHitSuccess(0, 100))
	}

	// An overwhelming attack roll lands at least once in 100 tries.
	landed := false
	for range 100 {
		if calc.CalcHitSuccess(100000, 0) {
			landed = true
			break
		}
	}
	assert.True(t, landed)
}

func TestAccuracyUsesWeaponAxis(t *testing.T) {
	calc := newCalc()

	// The slash weapon benefits from slash accuracy; an unarmed
	// combatant rolls on the crush axis and sees none of it.
	armed := meleeStats(60, 60)
	armed.Equip(&model.Item{
		Name:        "rune scimitar",
		Slot:        model.SlotWeapon,
		Bonuses:     model.CombatBonuses{AttackSlash: 45},
		WeaponStyle: model.BonusSlash,
	})
	unarmed := meleeStats(60, 60)

	assert.Greater(t,
		calc.CalculateAccuracy(armed, StyleAccurate, AttackMelee),
		calc.CalculateAccuracy(unarmed, StyleAccurate, AttackMelee))
}

func steelDefender(defenseLevel int32) *model.CombatantStats {
	stats := model.NewCombatantStats(40)
	stats.SetSkillLevel(model.SkillDefense, defenseLevel)
	for _, item := range []*model.Item{
		{Name: "steel full helm", Slot: model.SlotHead, Bonuses: model.CombatBonuses{DefenseStab: 9, DefenseSlash: 10, DefenseCrush: 7}},
		{Name: "steel platebody", Slot: model.SlotBody, Bonuses: model.CombatBonuses{DefenseStab: 32, DefenseSlash: 31, DefenseCrush: 24}},
		{Name: "steel platelegs", Slot: model.SlotLegs, Bonuses: model.CombatBonuses{DefenseStab: 15, DefenseSlash: 14, DefenseCrush: 13}},
		{Name: "steel kiteshield", Slot: model.SlotShield, Bonuses: model.CombatBonuses{DefenseStab: 13, DefenseSlash: 15, DefenseCrush: 14}},
	} {
		stats.Equip(item)
	}
	return stats
}

func TestDamageReductionBounds(t *testing.T) {
	calc := newCalc()
	defender := steelDefender(40)

	assert.Equal(t, int32(0), calc.ApplyDamageReductions(0, defender, AttackMelee))
	assert.Equal(t, int32(0), calc.ApplyDamageReductions(-3, defender, AttackMelee))

	// A 20-damage hit against full steel is reduced but not erased.
	reduced := calc.ApplyDamageReductions(20, defender, AttackMelee)
	assert.Greater(t, reduced, int32(0))
	assert.Less(t, reduced, int32(20))

	// No defender means no reduction.
	assert.Equal(t, int32(20), calc.ApplyDamageReductions(20, nil, AttackMelee))
}

func TestDamageReductionArmorMonotonic(t *testing.T) {
	calc := newCalc()
	const raw = 50

	naked := model.NewCombatantStats(40)
	naked.SetSkillLevel(model.SkillDefense, 40)

	steel := steelDefender(40)

	prayed := steelDefender(40)
	prayed.SetPrayer(model.PrayerProtectFromMelee, true)

	nakedDmg := calc.ApplyDamageReductions(raw, naked, AttackMelee)
	steelDmg := calc.ApplyDamageReductions(raw, steel, AttackMelee)
	prayedDmg := calc.ApplyDamageReductions(raw, prayed, AttackMelee)

	assert.Less(t, steelDmg, nakedDmg, "armor reduces damage")
	assert.Less(t, prayedDmg, steelDmg, "protection prayer reduces further")
	assert.Greater(t, prayedDmg, int32(0), "the reduction cap keeps some damage through")
}

func TestDamageReductionDefenseLevelMonotonic(t *testing.T) {
	calc := newCalc()
	const raw = 50

	prev := int32(raw + 1)
	for _, level := range []int32{1, 20, 40, 60, 80, 99} {
		dmg := calc.ApplyDamageReductions(raw, steelDefender(level), AttackMelee)
		assert.LessOrEqual(t, dmg, prev, "defense %d", level)
		prev = dmg
	}
}

func TestRangedMaxHitUsesRangedStrength(t *testing.T) {
	calc := newCalc()

	archer := model.NewCombatantStats(10)
	archer.SetSkillLevel(model.SkillRanged, 70)
	base := calc.CalculateMaxHit(archer, StyleAccurate, AttackRanged)

	archer.Equip(&model.Item{
		Name:        "maple shortbow",
		Slot:        model.SlotWeapon,
		Bonuses:     model.CombatBonuses{RangedStrength: 30},
		WeaponStyle: model.BonusRanged,
	})

	assert.Greater(t, calc.CalculateMaxHit(archer, StyleAccurate, AttackRanged), base)
}

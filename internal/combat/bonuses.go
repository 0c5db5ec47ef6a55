package combat

import (
	"strings"

	"github.com/runemist/runemist/internal/model"
)

// Aggregate sums the bonuses of every equipped item into one flat
// structure. Pure: empty slots and nil items contribute zero, no field
// is skipped, and there is no error path.
func Aggregate(equipment map[model.Slot]*model.Item) model.CombatBonuses {
	var total model.CombatBonuses
	for _, item := range equipment {
		if item == nil {
			continue
		}
		total.Add(item.Bonuses)
	}
	return total
}

// MeetsRequirements reports whether the combatant satisfies every
// skill-level requirement on the item. Items without requirements
// always pass; a nil item passes trivially.
func MeetsRequirements(item *model.Item, stats *model.CombatantStats) bool {
	if item == nil || len(item.Requirements) == 0 {
		return true
	}
	if stats == nil {
		return false
	}
	for skill, required := range item.Requirements {
		if stats.SkillLevel(skill) < required {
			return false
		}
	}
	return true
}

// TotalWeight returns the summed weight of all equipped items.
func TotalWeight(equipment map[model.Slot]*model.Item) float64 {
	var total float64
	for _, item := range equipment {
		if item == nil {
			continue
		}
		total += item.Weight
	}
	return total
}

// Void knight set pieces. A complete set is top + robe + gloves + one
// of the three helms; the helm decides which style the set boosts.
const (
	voidTop    = "void knight top"
	voidRobe   = "void knight robe"
	voidGloves = "void knight gloves"

	voidMeleeHelm  = "void melee helm"
	voidRangerHelm = "void ranger helm"
	voidMageHelm   = "void mage helm"
)

const (
	voidAccuracyBonus = 3
	voidStrengthBonus = 5
)

// SetBonuses detects complete named equipment sets and returns their
// additional situational bonuses. All-zero when no set is complete.
func SetBonuses(equipment map[model.Slot]*model.Item) model.CombatBonuses {
	var bonuses model.CombatBonuses

	if !hasItem(equipment, model.SlotBody, voidTop) ||
		!hasItem(equipment, model.SlotLegs, voidRobe) ||
		!hasItem(equipment, model.SlotGloves, voidGloves) {
		return bonuses
	}

	switch itemName(equipment, model.SlotHead) {
	case voidMeleeHelm:
		bonuses.AttackStab += voidAccuracyBonus
		bonuses.AttackSlash += voidAccuracyBonus
		bonuses.AttackCrush += voidAccuracyBonus
		bonuses.MeleeStrength += voidStrengthBonus
	case voidRangerHelm:
		bonuses.AttackRanged += voidAccuracyBonus
		bonuses.RangedStrength += voidStrengthBonus
	case voidMageHelm:
		bonuses.AttackMagic += voidAccuracyBonus
		bonuses.MagicDamage += voidStrengthBonus
	}

	return bonuses
}

// weightReducers maps item name fragments to the kilograms they shave
// off the carried weight.
var weightReducers = map[string]float64{
	"boots of lightness": 4.5,
	"spotted cape":       2.2,
	"spottier cape":      4.5,
	"penance gloves":     4.5,
}

// WeightReduction returns the total weight reduction granted by
// equipped items, additive across items.
func WeightReduction(equipment map[model.Slot]*model.Item) float64 {
	var total float64
	for _, item := range equipment {
		if item == nil {
			continue
		}
		name := strings.ToLower(item.Name)
		for fragment, reduction := range weightReducers {
			if strings.Contains(name, fragment) {
				total += reduction
			}
		}
	}
	return total
}

// prayerDrainReducers maps item name fragments to the fraction of
// prayer drain they remove.
var prayerDrainReducers = map[string]float64{
	"initiate":    0.08,
	"proselyte":   0.12,
	"holy symbol": 0.05,
}

// prayerDrainReductionCap bounds the total drain reduction.
const prayerDrainReductionCap = 0.5

// PrayerDrainReduction returns the fraction by which equipped items slow
// prayer drain, additive across items and capped at 50%.
func PrayerDrainReduction(equipment map[model.Slot]*model.Item) float64 {
	var total float64
	for _, item := range equipment {
		if item == nil {
			continue
		}
		name := strings.ToLower(item.Name)
		for fragment, reduction := range prayerDrainReducers {
			if strings.Contains(name, fragment) {
				total += reduction
			}
		}
	}
	if total > prayerDrainReductionCap {
		total = prayerDrainReductionCap
	}
	return total
}

func hasItem(equipment map[model.Slot]*model.Item, slot model.Slot, name string) bool {
	return itemName(equipment, slot) == name
}

func itemName(equipment map[model.Slot]*model.Item, slot model.Slot) string {
	item := equipment[slot]
	if item == nil {
		return ""
	}
	return strings.ToLower(item.Name)
}

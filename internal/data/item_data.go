package data

import "github.com/runemist/runemist/internal/model"

// builtinItems is the static equipment table. Bonuses follow the
// classic stat lines for each tier.
var builtinItems = []*model.Item{
	{
		Name: "bronze sword",
		Slot: model.SlotWeapon,
		Bonuses: model.CombatBonuses{
			AttackStab:    4,
			AttackSlash:   3,
			AttackCrush:   2,
			MeleeStrength: 12,
		},
		Weight:      1.8,
		WeaponStyle: model.BonusSlash,
	},
	{
		Name: "iron scimitar",
		Slot: model.SlotWeapon,
		Bonuses: model.CombatBonuses{
			AttackStab:    2,
			AttackSlash:   10,
			MeleeStrength: 19,
		},
		Weight:       1.8,
		WeaponStyle:  model.BonusSlash,
		Requirements: map[model.SkillType]int32{model.SkillAttack: 10},
	},
	{
		Name: "rune scimitar",
		Slot: model.SlotWeapon,
		Bonuses: model.CombatBonuses{
			AttackStab:    7,
			AttackSlash:   45,
			MeleeStrength: 44,
		},
		Weight:       1.8,
		WeaponStyle:  model.BonusSlash,
		Requirements: map[model.SkillType]int32{model.SkillAttack: 40},
	},
	{
		Name: "maple shortbow",
		Slot: model.SlotWeapon,
		Bonuses: model.CombatBonuses{
			AttackRanged: 29,
		},
		Weight:       1.3,
		WeaponStyle:  model.BonusRanged,
		Requirements: map[model.SkillType]int32{model.SkillRanged: 30},
	},
	{
		Name: "steel full helm",
		Slot: model.SlotHead,
		Bonuses: model.CombatBonuses{
			AttackMagic:   -6,
			AttackRanged:  -2,
			DefenseStab:   9,
			DefenseSlash:  10,
			DefenseCrush:  7,
			DefenseMagic:  -1,
			DefenseRanged: 9,
		},
		Weight:       2.7,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 5},
	},
	{
		Name: "steel platebody",
		Slot: model.SlotBody,
		Bonuses: model.CombatBonuses{
			AttackMagic:   -30,
			AttackRanged:  -10,
			DefenseStab:   32,
			DefenseSlash:  31,
			DefenseCrush:  24,
			DefenseMagic:  -6,
			DefenseRanged: 31,
		},
		Weight:       9.9,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 5},
	},
	{
		Name: "steel platelegs",
		Slot: model.SlotLegs,
		Bonuses: model.CombatBonuses{
			AttackMagic:   -21,
			AttackRanged:  -7,
			DefenseStab:   15,
			DefenseSlash:  14,
			DefenseCrush:  13,
			DefenseMagic:  -4,
			DefenseRanged: 14,
		},
		Weight:       9.0,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 5},
	},
	{
		Name: "steel kiteshield",
		Slot: model.SlotShield,
		Bonuses: model.CombatBonuses{
			AttackMagic:   -8,
			AttackRanged:  -2,
			DefenseStab:   13,
			DefenseSlash:  15,
			DefenseCrush:  14,
			DefenseMagic:  -2,
			DefenseRanged: 13,
		},
		Weight:       5.4,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 5},
	},
	{
		Name: "amulet of strength",
		Slot: model.SlotAmulet,
		Bonuses: model.CombatBonuses{
			MeleeStrength: 10,
		},
		Weight: 0.01,
	},
	{
		Name:   "boots of lightness",
		Slot:   model.SlotBoots,
		Weight: 0.3,
	},
	{
		Name: "initiate sallet",
		Slot: model.SlotHead,
		Bonuses: model.CombatBonuses{
			DefenseStab:   9,
			DefenseSlash:  10,
			DefenseCrush:  7,
			DefenseRanged: 8,
			Prayer:        3,
		},
		Weight:       2.2,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 20},
	},
	{
		Name: "initiate hauberk",
		Slot: model.SlotBody,
		Bonuses: model.CombatBonuses{
			DefenseStab:   24,
			DefenseSlash:  22,
			DefenseCrush:  20,
			DefenseRanged: 24,
			Prayer:        6,
		},
		Weight:       8.1,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 20},
	},
	{
		Name: "holy symbol",
		Slot: model.SlotAmulet,
		Bonuses: model.CombatBonuses{
			Prayer: 8,
		},
		Weight: 0.01,
	},
	{
		Name: "void knight top",
		Slot: model.SlotBody,
		Bonuses: model.CombatBonuses{
			DefenseStab:   45,
			DefenseSlash:  45,
			DefenseCrush:  45,
			DefenseMagic:  45,
			DefenseRanged: 45,
		},
		Weight:       6.3,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 42},
	},
	{
		Name: "void knight robe",
		Slot: model.SlotLegs,
		Bonuses: model.CombatBonuses{
			DefenseStab:   30,
			DefenseSlash:  30,
			DefenseCrush:  30,
			DefenseMagic:  30,
			DefenseRanged: 30,
		},
		Weight:       5.4,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 42},
	},
	{
		Name:         "void knight gloves",
		Slot:         model.SlotGloves,
		Weight:       0.4,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 42},
	},
	{
		Name:         "void melee helm",
		Slot:         model.SlotHead,
		Weight:       1.8,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 42},
	},
	{
		Name:         "void ranger helm",
		Slot:         model.SlotHead,
		Weight:       1.8,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 42},
	},
	{
		Name:         "void mage helm",
		Slot:         model.SlotHead,
		Weight:       1.8,
		Requirements: map[model.SkillType]int32{model.SkillDefense: 42},
	},
}

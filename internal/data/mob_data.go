package data

import (
	"time"

	"github.com/runemist/runemist/internal/model"
)

// builtinMobs is the static mob template table.
var builtinMobs = []*model.MobTemplate{
	{
		ID:        1,
		Name:      "giant rat",
		Level:     3,
		Hitpoints: 5,
		Attack:    2,
		Strength:  3,
		Defense:   2,
		Bonuses: model.CombatBonuses{
			DefenseStab:  -3,
			DefenseSlash: -3,
			DefenseCrush: -3,
		},
		AggroRadius:  0,
		LeashRadius:  20,
		PatrolRadius: 6,
		AttackRange:  1,
		MoveSpeed:    2.5,
		Aggressive:   false,
		AttackStyle:  model.BonusStab,
		AttackSpeed:  2400 * time.Millisecond,
	},
	{
		ID:        2,
		Name:      "goblin",
		Level:     5,
		Hitpoints: 12,
		Attack:    3,
		Strength:  4,
		Defense:   3,
		Bonuses: model.CombatBonuses{
			AttackStab:    2,
			MeleeStrength: 3,
		},
		AggroRadius:  10,
		LeashRadius:  25,
		PatrolRadius: 8,
		AttackRange:  1,
		MoveSpeed:    3.0,
		Aggressive:   true,
		AttackStyle:  model.BonusStab,
		AttackSpeed:  2400 * time.Millisecond,
	},
	{
		ID:        3,
		Name:      "guard",
		Level:     21,
		Hitpoints: 22,
		Attack:    18,
		Strength:  16,
		Defense:   17,
		Bonuses: model.CombatBonuses{
			AttackSlash:   8,
			DefenseStab:   12,
			DefenseSlash:  13,
			DefenseCrush:  11,
			MeleeStrength: 9,
		},
		AggroRadius:  8,
		LeashRadius:  30,
		PatrolRadius: 10,
		AttackRange:  1,
		MoveSpeed:    3.0,
		Aggressive:   true,
		AttackStyle:  model.BonusSlash,
		AttackSpeed:  2400 * time.Millisecond,
	},
	{
		ID:        4,
		Name:      "moss giant",
		Level:     42,
		Hitpoints: 60,
		Attack:    32,
		Strength:  38,
		Defense:   32,
		Bonuses: model.CombatBonuses{
			AttackCrush:   18,
			DefenseStab:   20,
			DefenseSlash:  22,
			DefenseCrush:  24,
			MeleeStrength: 31,
		},
		AggroRadius:  9,
		LeashRadius:  35,
		PatrolRadius: 12,
		AttackRange:  2,
		MoveSpeed:    2.8,
		Aggressive:   true,
		AttackStyle:  model.BonusCrush,
		AttackSpeed:  3000 * time.Millisecond,
	},
	{
		ID:        5,
		Name:      "skeleton archer",
		Level:     25,
		Hitpoints: 29,
		Attack:    15,
		Strength:  14,
		Defense:   17,
		Ranged:    23,
		Bonuses: model.CombatBonuses{
			AttackRanged:   12,
			RangedStrength: 10,
		},
		AggroRadius:  12,
		LeashRadius:  28,
		PatrolRadius: 9,
		AttackRange:  7,
		MoveSpeed:    2.6,
		Aggressive:   true,
		AttackStyle:  model.BonusRanged,
		AttackSpeed:  3000 * time.Millisecond,
	},
}

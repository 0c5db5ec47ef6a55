package model

import (
	"sync"
	"sync/atomic"
)

// CombatantStats describes one combatant: skill levels, health, active
// prayers, equipped items and situational effect flags. It is exclusively
// owned by the entity it describes; the combat core only ever reads it,
// except for health which is mutated through the apply-damage path.
type CombatantStats struct {
	mu          sync.RWMutex
	skills      [skillCount]Skill
	prayers     map[Prayer]struct{}
	equipment   map[Slot]*Item
	effects     map[string]bool
	baseBonuses CombatBonuses

	currentHealth atomic.Int32
	maxHealth     atomic.Int32
}

// NewCombatantStats creates stats with every skill at level 1 and
// hitpoints at the given level. Health starts full.
func NewCombatantStats(hitpoints int32) *CombatantStats {
	if hitpoints < 1 {
		hitpoints = 1
	}

	s := &CombatantStats{
		prayers:   make(map[Prayer]struct{}),
		equipment: make(map[Slot]*Item),
		effects:   make(map[string]bool),
	}
	for i := range s.skills {
		s.skills[i] = Skill{Level: 1}
	}
	s.skills[SkillHitpoints].Level = hitpoints
	s.maxHealth.Store(hitpoints)
	s.currentHealth.Store(hitpoints)
	return s
}

// SkillLevel returns the current level of a skill. Unknown skills
// report level 1 — skill level is never below 1.
func (s *CombatantStats) SkillLevel(t SkillType) int32 {
	if t < 0 || t >= skillCount {
		return 1
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skills[t].Level
}

// SetSkillLevel sets a skill level, clamped to a minimum of 1.
// Raising hitpoints raises max health to match.
func (s *CombatantStats) SetSkillLevel(t SkillType, level int32) {
	if t < 0 || t >= skillCount {
		return
	}
	if level < 1 {
		level = 1
	}

	s.mu.Lock()
	s.skills[t].Level = level
	s.mu.Unlock()

	if t == SkillHitpoints {
		s.maxHealth.Store(level)
		if s.currentHealth.Load() > level {
			s.currentHealth.Store(level)
		}
	}
}

// HasPrayer reports whether the given prayer is active.
func (s *CombatantStats) HasPrayer(p Prayer) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.prayers[p]
	return ok
}

// SetPrayer activates or deactivates a prayer.
func (s *CombatantStats) SetPrayer(p Prayer, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active {
		s.prayers[p] = struct{}{}
	} else {
		delete(s.prayers, p)
	}
}

// Equip places an item into its slot. A nil item clears the slot.
func (s *CombatantStats) Equip(item *Item) {
	if item == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment[item.Slot] = item
}

// Unequip clears an equipment slot.
func (s *CombatantStats) Unequip(slot Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.equipment, slot)
}

// EquippedItem returns the item in a slot, or nil when empty.
func (s *CombatantStats) EquippedItem(slot Slot) *Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.equipment[slot]
}

// EquipmentSnapshot returns a copy of the current equipment map. Bonuses
// are always aggregated from a fresh snapshot so gear changes take
// effect on the very next calculation.
func (s *CombatantStats) EquipmentSnapshot() map[Slot]*Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(map[Slot]*Item, len(s.equipment))
	for slot, item := range s.equipment {
		snap[slot] = item
	}
	return snap
}

// BaseBonuses returns the combatant's intrinsic bonuses — the natural
// armor and weaponry of mobs. Zero for ordinary players.
func (s *CombatantStats) BaseBonuses() CombatBonuses {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseBonuses
}

// SetBaseBonuses sets the intrinsic bonuses.
func (s *CombatantStats) SetBaseBonuses(b CombatBonuses) {
	s.mu.Lock()
	s.baseBonuses = b
	s.mu.Unlock()
}

// Effect reports a situational effect flag (e.g. "on_slayer_task").
func (s *CombatantStats) Effect(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.effects[name]
}

// SetEffect sets a situational effect flag.
func (s *CombatantStats) SetEffect(name string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.effects[name] = true
	} else {
		delete(s.effects, name)
	}
}

// CurrentHealth returns current health (atomic read).
func (s *CombatantStats) CurrentHealth() int32 {
	return s.currentHealth.Load()
}

// MaxHealth returns maximum health (atomic read).
func (s *CombatantStats) MaxHealth() int32 {
	return s.maxHealth.Load()
}

// SetCurrentHealth sets health clamped to [0, MaxHealth].
func (s *CombatantStats) SetCurrentHealth(hp int32) {
	maxHP := s.maxHealth.Load()
	if hp < 0 {
		hp = 0
	}
	if hp > maxHP {
		hp = maxHP
	}
	s.currentHealth.Store(hp)
}

// ReduceHealth subtracts damage from current health and returns the new
// value. Health never goes below zero.
func (s *CombatantStats) ReduceHealth(damage int32) int32 {
	if damage <= 0 {
		return s.currentHealth.Load()
	}
	for {
		cur := s.currentHealth.Load()
		next := cur - damage
		if next < 0 {
			next = 0
		}
		if s.currentHealth.CompareAndSwap(cur, next) {
			return next
		}
	}
}

// RestoreHealth resets current health to maximum.
func (s *CombatantStats) RestoreHealth() {
	s.currentHealth.Store(s.maxHealth.Load())
}

// IsDead reports whether health has reached zero.
func (s *CombatantStats) IsDead() bool {
	return s.currentHealth.Load() <= 0
}

// CombatLevel returns the combat level derived from skill levels.
// Simplified formula: base from defense and hitpoints plus the best of
// the melee, ranged and magic offensive components.
func (s *CombatantStats) CombatLevel() int32 {
	s.mu.RLock()
	att := float64(s.skills[SkillAttack].Level)
	str := float64(s.skills[SkillStrength].Level)
	def := float64(s.skills[SkillDefense].Level)
	rng := float64(s.skills[SkillRanged].Level)
	mag := float64(s.skills[SkillMagic].Level)
	hp := float64(s.skills[SkillHitpoints].Level)
	s.mu.RUnlock()

	base := 0.25 * (def + hp)
	melee := 0.325 * (att + str)
	ranged := 0.325 * (rng * 1.5)
	magic := 0.325 * (mag * 1.5)

	best := melee
	if ranged > best {
		best = ranged
	}
	if magic > best {
		best = magic
	}

	level := int32(base + best)
	if level < 1 {
		level = 1
	}
	return level
}

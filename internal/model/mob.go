package model

import (
	"sync"
	"sync/atomic"
	"time"
)

// MobTemplate is the immutable definition of a hostile NPC kind.
type MobTemplate struct {
	ID   int32
	Name string

	Level     int32
	Hitpoints int32

	Attack   int32
	Strength int32
	Defense  int32
	Ranged   int32
	Magic    int32

	// Bonuses are the mob's intrinsic "equipment" bonuses (hide
	// toughness, claws, etc.) fed into the same combat formulas as
	// player gear.
	Bonuses CombatBonuses

	AggroRadius  float64
	LeashRadius  float64
	PatrolRadius float64
	AttackRange  float64
	MoveSpeed    float64 // units per second
	Aggressive   bool

	AttackStyle BonusStyle // stab/slash/crush axis of the mob's attacks
	AttackSpeed time.Duration
}

// Mob is one live hostile NPC. Its AI state (state, threat list, target,
// cooldown, patrol destination) is exclusively owned by the behavior
// state machine; everything else is read-only shared data.
type Mob struct {
	*WorldObject

	template *MobTemplate
	stats    *CombatantStats
	home     Location
	spawn    *SpawnPoint

	state          atomic.Int32
	stateChangedAt atomic.Int64 // UnixMilli
	target         atomic.Uint32
	cooldownUntil  atomic.Int64 // UnixMilli
	threat         *ThreatList

	patrolMu   sync.Mutex
	patrolDest *Location
}

// NewMob creates a live mob at its home position in the idle state.
func NewMob(objectID uint32, template *MobTemplate, home Location, sp *SpawnPoint) *Mob {
	stats := NewCombatantStats(template.Hitpoints)
	stats.SetSkillLevel(SkillAttack, template.Attack)
	stats.SetSkillLevel(SkillStrength, template.Strength)
	stats.SetSkillLevel(SkillDefense, template.Defense)
	stats.SetSkillLevel(SkillRanged, template.Ranged)
	stats.SetSkillLevel(SkillMagic, template.Magic)
	stats.SetBaseBonuses(template.Bonuses)

	m := &Mob{
		WorldObject: NewWorldObject(objectID, template.Name, home),
		template:    template,
		stats:       stats,
		home:        home,
		spawn:       sp,
		threat:      NewThreatList(),
	}
	m.stateChangedAt.Store(time.Now().UnixMilli())
	return m
}

// Template returns the mob's template.
func (m *Mob) Template() *MobTemplate {
	return m.template
}

// Stats returns the mob's combatant stats.
func (m *Mob) Stats() *CombatantStats {
	return m.stats
}

// Home returns the home/spawn position.
func (m *Mob) Home() Location {
	return m.home
}

// Spawn returns the spawn point that produced this mob (nil for mobs
// created outside the spawn system, e.g. in tests).
func (m *Mob) Spawn() *SpawnPoint {
	return m.spawn
}

// State returns the current behavior state (atomic read).
func (m *Mob) State() MobState {
	return MobState(m.state.Load())
}

// SetState transitions to a new state, recording the transition time.
// Returns the previous state.
func (m *Mob) SetState(s MobState) MobState {
	old := MobState(m.state.Swap(int32(s)))
	if old != s {
		m.stateChangedAt.Store(time.Now().UnixMilli())
	}
	return old
}

// StateChangedAt returns the time of the last state transition.
func (m *Mob) StateChangedAt() time.Time {
	return time.UnixMilli(m.stateChangedAt.Load())
}

// Target returns the current target object ID (0 if none).
func (m *Mob) Target() uint32 {
	return m.target.Load()
}

// SetTarget sets the current target object ID.
func (m *Mob) SetTarget(objectID uint32) {
	m.target.Store(objectID)
}

// ClearTarget clears the current target.
func (m *Mob) ClearTarget() {
	m.target.Store(0)
}

// ThreatList returns the mob's threat list.
func (m *Mob) ThreatList() *ThreatList {
	return m.threat
}

// IsDead reports whether the mob's health reached zero.
func (m *Mob) IsDead() bool {
	return m.stats.IsDead()
}

// CurrentHealth returns current health.
func (m *Mob) CurrentHealth() int32 {
	return m.stats.CurrentHealth()
}

// CombatLevel returns the mob's combat level.
func (m *Mob) CombatLevel() int32 {
	return m.template.Level
}

// AggroRadius returns the detection radius.
func (m *Mob) AggroRadius() float64 {
	return m.template.AggroRadius
}

// LeashRadius returns the maximum chase distance from home.
func (m *Mob) LeashRadius() float64 {
	return m.template.LeashRadius
}

// PatrolRadius returns the patrol wander radius around home.
func (m *Mob) PatrolRadius() float64 {
	return m.template.PatrolRadius
}

// AttackRange returns the attack reach.
func (m *Mob) AttackRange() float64 {
	return m.template.AttackRange
}

// Aggressive reports whether this mob proactively aggros players.
func (m *Mob) Aggressive() bool {
	return m.template.Aggressive
}

// CooldownReady reports whether the combat cooldown has elapsed at now.
func (m *Mob) CooldownReady(now time.Time) bool {
	return now.UnixMilli() >= m.cooldownUntil.Load()
}

// ResetCooldown arms the combat cooldown for the template attack speed.
func (m *Mob) ResetCooldown(now time.Time) {
	m.cooldownUntil.Store(now.Add(m.template.AttackSpeed).UnixMilli())
}

// PatrolDestination returns the current patrol waypoint, or nil.
func (m *Mob) PatrolDestination() *Location {
	m.patrolMu.Lock()
	defer m.patrolMu.Unlock()
	return m.patrolDest
}

// SetPatrolDestination sets the current patrol waypoint (nil clears it).
func (m *Mob) SetPatrolDestination(dest *Location) {
	m.patrolMu.Lock()
	m.patrolDest = dest
	m.patrolMu.Unlock()
}

// ResetToSpawn restores the mob to its initial state: back at home,
// full health, idle, no targets.
func (m *Mob) ResetToSpawn() {
	m.threat.Clear()
	m.ClearTarget()
	m.SetPatrolDestination(nil)
	m.SetPosition(m.home)
	m.stats.RestoreHealth()
	m.SetState(StateIdle)
}

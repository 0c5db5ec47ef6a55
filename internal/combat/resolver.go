package combat

import (
	"log/slog"

	"github.com/runemist/runemist/internal/event"
	"github.com/runemist/runemist/internal/model"
)

// StatsFunc looks up live combatant stats by object ID. Injected so the
// resolver never couples to the entity store.
type StatsFunc func(objectID uint32) *model.CombatantStats

// ApplyDamageFunc delegates the health mutation to the single writer of
// health values. The resolver never touches health directly.
type ApplyDamageFunc func(targetID uint32, amount int32, sourceID uint32)

// HitResult carries the outcome of one attack for observation in tests.
type HitResult struct {
	AttackerID uint32
	TargetID   uint32
	MaxHit     int32
	Damage     int32
	Hit        bool
}

// Manager turns attack intents into resolved damage: hit check, max hit,
// uniform roll, defender reductions, delegated health mutation and a
// damage-dealt event.
type Manager struct {
	calc        *Calculator
	bus         *event.Bus
	getStats    StatsFunc
	applyDamage ApplyDamageFunc

	// hitObserver observes attack results (nil in production).
	hitObserver func(HitResult)
}

// NewManager creates a combat Manager.
func NewManager(calc *Calculator, bus *event.Bus, getStats StatsFunc, applyDamage ApplyDamageFunc) *Manager {
	return &Manager{
		calc:        calc,
		bus:         bus,
		getStats:    getStats,
		applyDamage: applyDamage,
	}
}

// Calculator returns the underlying formula calculator.
func (m *Manager) Calculator() *Calculator {
	return m.calc
}

// SetHitObserver sets a callback observing attack results (for tests).
func (m *Manager) SetHitObserver(fn func(HitResult)) {
	m.hitObserver = fn
}

// ResolveAttack resolves one attack from attacker to defender. Stats and
// bonuses are fetched fresh, so equipment changes apply on the very next
// attack. Missing combatants degrade to a logged no-op.
func (m *Manager) ResolveAttack(attackerID, defenderID uint32, style CombatStyle, attackType AttackType) {
	attacker := m.getStats(attackerID)
	if attacker == nil {
		slog.Warn("attack dropped: unknown attacker", "attackerID", attackerID)
		return
	}
	defender := m.getStats(defenderID)
	if defender == nil {
		slog.Warn("attack dropped: unknown defender",
			"attackerID", attackerID,
			"defenderID", defenderID)
		return
	}

	attackRoll := m.calc.CalculateAccuracy(attacker, style, attackType)
	defenseRoll := m.calc.CalculateDefenseRoll(defender, attackType)
	hit := m.calc.CalcHitSuccess(attackRoll, defenseRoll)

	var maxHit, damage int32
	if hit {
		maxHit = m.calc.CalculateMaxHit(attacker, style, attackType)
		damage = m.calc.RollDamage(maxHit)
		damage = m.calc.ApplyDamageReductions(damage, defender, attackType)
	}

	if damage > 0 && m.applyDamage != nil {
		m.applyDamage(defenderID, damage, attackerID)
	}

	if m.bus != nil {
		m.bus.Publish(event.DamageDealt{
			AttackerID: attackerID,
			TargetID:   defenderID,
			Amount:     damage,
			Hit:        hit,
		})
	}

	if m.hitObserver != nil {
		m.hitObserver(HitResult{
			AttackerID: attackerID,
			TargetID:   defenderID,
			MaxHit:     maxHit,
			Damage:     damage,
			Hit:        hit,
		})
	}
}

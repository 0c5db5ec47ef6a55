package ai

import (
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/runemist/runemist/internal/model"
)

// Combatant is the read capability the AI needs from anything it can
// fight. Players and mobs both satisfy it; the AI never branches on the
// concrete type.
type Combatant interface {
	ID() uint32
	Position() model.Location
	IsDead() bool
	CombatLevel() int32
}

// AttackFunc emits an attack intent for the mob against a target.
// Injected by the simulation core to avoid an import cycle with the
// combat resolver.
type AttackFunc func(mob *model.Mob, targetID uint32)

// ScanFunc visits players near a position. Injected to avoid an import
// cycle with the world package.
type ScanFunc func(center model.Location, radius float64, fn func(Combatant) bool)

// GetCombatantFunc looks up a combatant by object ID.
type GetCombatantFunc func(objectID uint32) (Combatant, bool)

// MoveFunc orders the mob to move toward a destination.
type MoveFunc func(mob *model.Mob, dest model.Location)

// StateChangeFunc observes state transitions (event emission hook).
type StateChangeFunc func(mob *model.Mob, from, to model.MobState)

// arriveEpsilon is how close a mob must get to a waypoint or home to
// count as having reached it.
const arriveEpsilon = 0.5

// Config carries the behavior tuning for one MobAI.
type Config struct {
	// IdleDuration is how long a mob idles with no target before it
	// starts patrolling.
	IdleDuration time.Duration

	// SpawnImmunityTicks is the number of AI ticks after spawn during
	// which the mob will not aggro. Taking damage cancels it.
	SpawnImmunityTicks int32

	// AggroLevelFactor: a mob ignores players whose combat level
	// exceeds factor × its own level.
	AggroLevelFactor float64

	// ThreatForgetChance: 1/N chance per tick that a fully-healed mob
	// with a stale threat list forgets it. Zero disables decay.
	ThreatForgetChance int
}

// DefaultConfig returns the stock behavior tuning.
func DefaultConfig() Config {
	return Config{
		IdleDuration:       10 * time.Second,
		SpawnImmunityTicks: 3,
		AggroLevelFactor:   2.0,
		ThreatForgetChance: 500,
	}
}

// MobAI is the behavior state machine for one hostile mob:
// IDLE → PATROL → CHASE → COMBAT → RETURNING, plus DEAD.
// It exclusively owns the mob's AI state; all world access goes through
// injected callbacks, re-read from live state every tick so dropped
// references self-correct on the next pass.
type MobAI struct {
	mob       *model.Mob
	cfg       Config
	isRunning atomic.Bool

	// globalAggro starts at -SpawnImmunityTicks and counts up each
	// tick. While negative the mob cannot detect players. Taking
	// damage sets it to 0.
	globalAggro atomic.Int32

	attackFunc   AttackFunc
	scanFunc     ScanFunc
	getFunc      GetCombatantFunc
	moveFunc     MoveFunc
	stateChanged StateChangeFunc
}

// NewMobAI creates an AI controller for a mob.
func NewMobAI(mob *model.Mob, cfg Config, attackFunc AttackFunc, scanFunc ScanFunc, getFunc GetCombatantFunc, moveFunc MoveFunc) *MobAI {
	return &MobAI{
		mob:        mob,
		cfg:        cfg,
		attackFunc: attackFunc,
		scanFunc:   scanFunc,
		getFunc:    getFunc,
		moveFunc:   moveFunc,
	}
}

// SetStateChangeFunc sets the state transition observer.
func (ai *MobAI) SetStateChangeFunc(fn StateChangeFunc) {
	ai.stateChanged = fn
}

// Mob returns the underlying mob.
func (ai *MobAI) Mob() *model.Mob {
	return ai.mob
}

// Start activates the controller with spawn immunity armed.
func (ai *MobAI) Start() {
	ai.isRunning.Store(true)
	ai.globalAggro.Store(-ai.cfg.SpawnImmunityTicks)
	ai.setState(model.StateIdle)

	if IsDebugEnabled() {
		slog.Debug("mob AI started",
			"mob", ai.mob.Name(),
			"objectID", ai.mob.ID(),
			"aggroRadius", ai.mob.AggroRadius())
	}
}

// Stop deactivates the controller and clears all targets.
func (ai *MobAI) Stop() {
	ai.isRunning.Store(false)
	ai.mob.ThreatList().Clear()
	ai.mob.ClearTarget()
	ai.setState(model.StateIdle)

	if IsDebugEnabled() {
		slog.Debug("mob AI stopped", "mob", ai.mob.Name(), "objectID", ai.mob.ID())
	}
}

// CurrentState returns the mob's behavior state.
func (ai *MobAI) CurrentState() model.MobState {
	return ai.mob.State()
}

// NotifyDamage records damage taken: cancels spawn immunity, raises the
// attacker's threat, and switches a passive mob straight into chase.
func (ai *MobAI) NotifyDamage(attackerID uint32, damage int32) {
	if !ai.isRunning.Load() || ai.mob.IsDead() {
		return
	}

	if ai.globalAggro.Load() < 0 {
		ai.globalAggro.Store(0)
	}

	threat := model.CalcThreatValue(damage, ai.mob.CombatLevel())
	list := ai.mob.ThreatList()
	list.AddThreat(attackerID, threat)
	list.RecordDamage(attackerID, int64(damage))
	if ai.getFunc != nil {
		if attacker, ok := ai.getFunc(attackerID); ok {
			list.Touch(attackerID, time.Now(), attacker.Position())
		}
	}

	switch ai.mob.State() {
	case model.StateIdle, model.StatePatrol:
		if primary := list.MostThreatening(); primary != 0 {
			ai.mob.SetTarget(primary)
			ai.mob.SetPatrolDestination(nil)
			ai.setState(model.StateChase)
		}
	}

	if IsDebugEnabled() {
		slog.Debug("mob AI notified of damage",
			"mob", ai.mob.Name(),
			"objectID", ai.mob.ID(),
			"attackerID", attackerID,
			"damage", damage,
			"threat", threat)
	}
}

// OnDeath transitions the mob into the dead state: every target is
// cleared and nothing further runs until respawn resets the state.
func (ai *MobAI) OnDeath() {
	ai.mob.ThreatList().Clear()
	ai.mob.ClearTarget()
	ai.mob.SetPatrolDestination(nil)
	ai.setState(model.StateDead)
}

// Tick runs one coarse AI update. The whole pass evaluates a single
// snapshot of the threat list; nothing else mutates this mob's AI state
// concurrently.
func (ai *MobAI) Tick(now time.Time) {
	if !ai.isRunning.Load() || ai.mob.IsDead() {
		return
	}

	if g := ai.globalAggro.Load(); g < 0 {
		ai.globalAggro.Add(1)
	}

	switch ai.mob.State() {
	case model.StateIdle:
		ai.thinkIdle(now)
	case model.StatePatrol:
		ai.thinkPatrol(now)
	case model.StateChase:
		ai.thinkChase(now)
	case model.StateCombat:
		ai.thinkCombat(now)
	case model.StateReturning:
		ai.thinkReturning(now)
	}
}

// ScanAggro runs one aggro-detection pass: every living player within
// the aggro radius that the level policy allows gains initial threat.
// Runs on its own, faster cadence than Tick.
func (ai *MobAI) ScanAggro(now time.Time) {
	if !ai.isRunning.Load() || ai.mob.IsDead() || !ai.mob.Aggressive() {
		return
	}
	if ai.globalAggro.Load() < 0 {
		return
	}

	switch ai.mob.State() {
	case model.StateIdle, model.StatePatrol:
	default:
		return
	}

	if ai.scanFunc == nil {
		return
	}

	mobPos := ai.mob.Position()
	radius := ai.mob.AggroRadius()
	radiusSq := radius * radius
	maxLevel := ai.cfg.AggroLevelFactor * float64(ai.mob.CombatLevel())
	list := ai.mob.ThreatList()

	ai.scanFunc(mobPos, radius, func(c Combatant) bool {
		if c.ID() == ai.mob.ID() || c.IsDead() {
			return true
		}
		pos := c.Position()
		if mobPos.DistanceSquared(pos) > radiusSq {
			return true
		}
		// Aggression policy: leave high-level players alone.
		if float64(c.CombatLevel()) > maxLevel {
			return true
		}
		list.AddThreat(c.ID(), 1)
		list.Touch(c.ID(), now, pos)
		return true
	})

	if primary := list.MostThreatening(); primary != 0 {
		ai.mob.SetTarget(primary)
		ai.mob.SetPatrolDestination(nil)
		ai.setState(model.StateChase)

		if IsDebugEnabled() {
			slog.Debug("mob AI acquired target",
				"mob", ai.mob.Name(),
				"objectID", ai.mob.ID(),
				"targetID", primary)
		}
	}
}

// thinkIdle waits out the idle duration, then starts a patrol. A threat
// entry appearing while idle switches straight to chase.
func (ai *MobAI) thinkIdle(now time.Time) {
	ai.checkThreatDecay()

	if ai.acquireFromThreat() {
		return
	}

	if ai.cfg.IdleDuration > 0 && now.Sub(ai.mob.StateChangedAt()) >= ai.cfg.IdleDuration {
		ai.pickPatrolDestination()
		ai.setState(model.StatePatrol)
	}
}

// thinkPatrol walks toward the current waypoint; on arrival the mob
// settles back to idle and a fresh waypoint is rolled next time.
func (ai *MobAI) thinkPatrol(now time.Time) {
	if ai.acquireFromThreat() {
		return
	}

	dest := ai.mob.PatrolDestination()
	if dest == nil {
		ai.pickPatrolDestination()
		dest = ai.mob.PatrolDestination()
		if dest == nil {
			ai.setState(model.StateIdle)
			return
		}
	}

	if ai.mob.Position().Distance(*dest) <= arriveEpsilon {
		ai.mob.SetPatrolDestination(nil)
		ai.setState(model.StateIdle)
		return
	}

	if ai.moveFunc != nil {
		ai.moveFunc(ai.mob, *dest)
	}
}

// thinkChase pursues the primary target until it is in attack range,
// the threat list empties, or the leash snaps.
func (ai *MobAI) thinkChase(now time.Time) {
	ai.pruneInvalidTargets(now)

	list := ai.mob.ThreatList()
	if list.IsEmpty() {
		ai.mob.ClearTarget()
		ai.returnHome()
		return
	}

	// Leash: too far from home means the chase is abandoned for good —
	// the threat list is cleared, not suspended.
	if ai.mob.Position().Distance(ai.mob.Home()) > ai.mob.LeashRadius() {
		list.Clear()
		ai.mob.ClearTarget()
		ai.returnHome()

		if IsDebugEnabled() {
			slog.Debug("mob AI leashed",
				"mob", ai.mob.Name(),
				"objectID", ai.mob.ID())
		}
		return
	}

	primary := list.MostThreatening()
	if primary == 0 {
		ai.mob.ClearTarget()
		ai.returnHome()
		return
	}
	ai.mob.SetTarget(primary)

	if ai.getFunc == nil {
		return
	}
	target, ok := ai.getFunc(primary)
	if !ok {
		list.Remove(primary)
		return
	}

	targetPos := target.Position()
	if ai.mob.Position().Distance(targetPos) <= ai.mob.AttackRange() {
		ai.setState(model.StateCombat)
		return
	}

	if ai.moveFunc != nil {
		ai.moveFunc(ai.mob, targetPos)
	}
}

// thinkCombat attacks the primary target whenever the combat cooldown
// has elapsed. Losing the target sends the mob home; the target merely
// stepping out of reach resumes the chase.
func (ai *MobAI) thinkCombat(now time.Time) {
	list := ai.mob.ThreatList()

	primary := list.MostThreatening()
	if primary == 0 {
		ai.mob.ClearTarget()
		ai.returnHome()
		return
	}

	if ai.getFunc == nil {
		return
	}
	target, ok := ai.getFunc(primary)
	if !ok || target.IsDead() {
		list.Remove(primary)
		ai.mob.ClearTarget()
		ai.returnHome()
		return
	}

	ai.mob.SetTarget(primary)
	targetPos := target.Position()
	list.Touch(primary, now, targetPos)

	if ai.mob.Position().Distance(targetPos) > ai.mob.AttackRange() {
		ai.setState(model.StateChase)
		return
	}

	if ai.mob.CooldownReady(now) && ai.attackFunc != nil {
		ai.attackFunc(ai.mob, primary)
		ai.mob.ResetCooldown(now)
	}
}

// thinkReturning walks home; arrival resets to idle.
func (ai *MobAI) thinkReturning(now time.Time) {
	home := ai.mob.Home()
	if ai.mob.Position().Distance(home) <= arriveEpsilon {
		ai.mob.SetPosition(home)
		ai.setState(model.StateIdle)
		return
	}

	if ai.moveFunc != nil {
		ai.moveFunc(ai.mob, home)
	}
}

// acquireFromThreat switches to chase when the threat list has entries.
// Returns true if a transition happened.
func (ai *MobAI) acquireFromThreat() bool {
	primary := ai.mob.ThreatList().MostThreatening()
	if primary == 0 {
		return false
	}
	ai.mob.SetTarget(primary)
	ai.mob.SetPatrolDestination(nil)
	ai.setState(model.StateChase)
	return true
}

// pruneInvalidTargets drops threat entries whose defender is dead,
// vanished, or beyond the maximum chase distance from home.
func (ai *MobAI) pruneInvalidTargets(now time.Time) {
	if ai.getFunc == nil {
		return
	}
	list := ai.mob.ThreatList()
	home := ai.mob.Home()
	maxChase := ai.mob.LeashRadius()
	maxChaseSq := maxChase * maxChase

	for _, entry := range list.Snapshot() {
		target, ok := ai.getFunc(entry.TargetID)
		if !ok || target.IsDead() {
			list.Remove(entry.TargetID)
			continue
		}
		pos := target.Position()
		if home.DistanceSquared(pos) > maxChaseSq {
			list.Remove(entry.TargetID)
			continue
		}
		list.Touch(entry.TargetID, now, pos)
	}
}

// checkThreatDecay lets a fully-healed mob forget a stale threat list
// (1/N chance per tick).
func (ai *MobAI) checkThreatDecay() {
	if ai.cfg.ThreatForgetChance <= 0 {
		return
	}
	list := ai.mob.ThreatList()
	if list.IsEmpty() {
		return
	}
	stats := ai.mob.Stats()
	if stats.CurrentHealth() < stats.MaxHealth() {
		return
	}
	if rand.IntN(ai.cfg.ThreatForgetChance) != 0 {
		return
	}

	list.Clear()
	ai.mob.ClearTarget()

	if IsDebugEnabled() {
		slog.Debug("mob AI threat decayed",
			"mob", ai.mob.Name(),
			"objectID", ai.mob.ID())
	}
}

// pickPatrolDestination rolls a waypoint uniformly in the patrol square
// around home.
func (ai *MobAI) pickPatrolDestination() {
	radius := ai.mob.PatrolRadius()
	if radius <= 0 {
		return
	}

	home := ai.mob.Home()
	dest := model.Location{
		X: home.X + (rand.Float64()*2-1)*radius,
		Y: home.Y + (rand.Float64()*2-1)*radius,
		Z: home.Z,
	}
	ai.mob.SetPatrolDestination(&dest)

	if IsDebugEnabled() {
		slog.Debug("mob AI patrol waypoint",
			"mob", ai.mob.Name(),
			"toX", dest.X,
			"toY", dest.Y)
	}
}

// returnHome transitions into the returning state and starts moving.
func (ai *MobAI) returnHome() {
	ai.setState(model.StateReturning)
	if ai.moveFunc != nil {
		ai.moveFunc(ai.mob, ai.mob.Home())
	}
}

func (ai *MobAI) setState(s model.MobState) {
	old := ai.mob.SetState(s)
	if old == s {
		return
	}

	if ai.stateChanged != nil {
		ai.stateChanged(ai.mob, old, s)
	}

	if IsDebugEnabled() {
		slog.Debug("mob AI state changed",
			"mob", ai.mob.Name(),
			"objectID", ai.mob.ID(),
			"from", old,
			"to", s)
	}
}

package ai

import (
	"testing"
	"time"

	"github.com/runemist/runemist/internal/model"
)

func testTemplate() *model.MobTemplate {
	return &model.MobTemplate{
		ID:        2,
		Name:      "goblin",
		Level:     5,
		Hitpoints: 12,
		Attack:    3,
		Strength:  4,
		Defense:   3,

		AggroRadius:  10,
		LeashRadius:  25,
		PatrolRadius: 8,
		AttackRange:  1,
		MoveSpeed:    3.0,
		Aggressive:   true,
		AttackStyle:  model.BonusStab,
		AttackSpeed:  2400 * time.Millisecond,
	}
}

// harness wires a MobAI to in-memory callbacks for deterministic tests.
type harness struct {
	mob *model.Mob
	ai  *MobAI

	combatants map[uint32]Combatant
	attacks    []uint32
	moves      []model.Location
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()

	h := &harness{
		mob:        model.NewMob(100001, testTemplate(), model.Location{}, nil),
		combatants: make(map[uint32]Combatant),
	}

	attackFunc := func(_ *model.Mob, targetID uint32) {
		h.attacks = append(h.attacks, targetID)
	}
	scanFunc := func(center model.Location, radius float64, fn func(Combatant) bool) {
		for _, c := range h.combatants {
			if !fn(c) {
				return
			}
		}
	}
	getFunc := func(objectID uint32) (Combatant, bool) {
		c, ok := h.combatants[objectID]
		return c, ok
	}
	moveFunc := func(_ *model.Mob, dest model.Location) {
		h.moves = append(h.moves, dest)
	}

	h.ai = NewMobAI(h.mob, cfg, attackFunc, scanFunc, getFunc, moveFunc)
	return h
}

func noImmunityConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnImmunityTicks = 0
	cfg.ThreatForgetChance = 0
	return cfg
}

func (h *harness) addPlayer(id uint32, loc model.Location) *model.Player {
	p := model.NewPlayer(id, "tester", 10, loc)
	h.combatants[id] = p
	return p
}

func TestStartIdle(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.ai.Start()

	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Errorf("state after start = %v, want IDLE", got)
	}
}

func TestNotifyDamageSwitchesToChase(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 3})
	h.ai.Start()

	h.ai.NotifyDamage(7, 4)

	if got := h.ai.CurrentState(); got != model.StateChase {
		t.Fatalf("state after damage = %v, want CHASE", got)
	}
	if got := h.mob.Target(); got != 7 {
		t.Errorf("target = %d, want 7", got)
	}
	info := h.mob.ThreatList().Get(7)
	if info == nil {
		t.Fatal("no threat entry for attacker")
	}
	if info.Threat() != model.CalcThreatValue(4, 5) {
		t.Errorf("threat = %d, want %d", info.Threat(), model.CalcThreatValue(4, 5))
	}
	if info.Damage() != 4 {
		t.Errorf("damage = %d, want 4", info.Damage())
	}
}

func TestEmptyThreatNeverEntersCombat(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.ai.Start()

	now := time.Now()
	for i := range 100 {
		h.ai.Tick(now.Add(time.Duration(i) * time.Second))
		state := h.ai.CurrentState()
		if state == model.StateCombat || state == model.StateChase {
			t.Fatalf("tick %d: entered %v with an empty threat list", i, state)
		}
	}
	if len(h.attacks) != 0 {
		t.Errorf("attacked %d times with no threat", len(h.attacks))
	}
}

func TestIdleToPatrolAfterIdleDuration(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.ai.Start()

	h.ai.Tick(h.mob.StateChangedAt().Add(time.Second))
	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Fatalf("left idle too early: %v", got)
	}

	h.ai.Tick(h.mob.StateChangedAt().Add(11 * time.Second))
	if got := h.ai.CurrentState(); got != model.StatePatrol {
		t.Fatalf("state = %v, want PATROL", got)
	}

	dest := h.mob.PatrolDestination()
	if dest == nil {
		t.Fatal("no patrol waypoint picked")
	}
	if d := h.mob.Home().Distance(*dest); d > h.mob.PatrolRadius()*1.5 {
		t.Errorf("waypoint %.1f units from home, outside the patrol square", d)
	}
}

func TestPatrolArrivalReturnsToIdle(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.ai.Start()

	dest := model.Location{X: 4, Y: 4}
	h.mob.SetPatrolDestination(&dest)
	h.mob.SetState(model.StatePatrol)
	h.mob.SetPosition(dest)

	h.ai.Tick(time.Now())

	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Errorf("state = %v, want IDLE", got)
	}
	if h.mob.PatrolDestination() != nil {
		t.Error("waypoint not cleared on arrival")
	}
}

func TestScanAggroAcquiresPlayerInRadius(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 5}) // aggro radius is 10
	h.ai.Start()

	h.ai.ScanAggro(time.Now())

	if got := h.ai.CurrentState(); got != model.StateChase {
		t.Fatalf("state = %v, want CHASE", got)
	}
	if got := h.mob.Target(); got != 7 {
		t.Errorf("target = %d, want 7", got)
	}
}

func TestScanAggroIgnoresPlayerOutsideRadius(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 50})
	h.ai.Start()

	h.ai.ScanAggro(time.Now())

	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Errorf("state = %v, want IDLE", got)
	}
}

func TestScanAggroIgnoresHighLevelPlayer(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	p := h.addPlayer(7, model.Location{X: 5})
	p.Stats().SetSkillLevel(model.SkillAttack, 99)
	p.Stats().SetSkillLevel(model.SkillStrength, 99)
	h.ai.Start()

	h.ai.ScanAggro(time.Now())

	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Errorf("mob level 5 aggroed a level %d player: %v", p.CombatLevel(), got)
	}
}

func TestScanAggroIgnoresDeadPlayer(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	p := h.addPlayer(7, model.Location{X: 5})
	p.Stats().ReduceHealth(100)
	h.ai.Start()

	h.ai.ScanAggro(time.Now())

	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Errorf("aggroed a dead player: %v", got)
	}
}

func TestSpawnImmunityDelaysAggro(t *testing.T) {
	cfg := noImmunityConfig()
	cfg.SpawnImmunityTicks = 3
	h := newHarness(t, cfg)
	h.addPlayer(7, model.Location{X: 5})
	h.ai.Start()

	now := time.Now()

	h.ai.ScanAggro(now)
	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Fatalf("aggroed during spawn immunity: %v", got)
	}

	for i := range 3 {
		h.ai.Tick(now.Add(time.Duration(i) * time.Second))
	}
	h.ai.ScanAggro(now.Add(3 * time.Second))

	if got := h.ai.CurrentState(); got != model.StateChase {
		t.Errorf("state after immunity elapsed = %v, want CHASE", got)
	}
}

func TestDamageCancelsSpawnImmunity(t *testing.T) {
	cfg := noImmunityConfig()
	cfg.SpawnImmunityTicks = 3
	h := newHarness(t, cfg)
	h.addPlayer(7, model.Location{X: 5})
	h.ai.Start()

	h.ai.NotifyDamage(7, 2)

	if got := h.ai.CurrentState(); got != model.StateChase {
		t.Errorf("state = %v, want CHASE (damage cancels immunity)", got)
	}
}

func TestChaseToCombatInRange(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 0.5})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	h.ai.Tick(time.Now())

	if got := h.ai.CurrentState(); got != model.StateCombat {
		t.Errorf("state = %v, want COMBAT", got)
	}
}

func TestChaseMovesTowardTarget(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 8})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	h.ai.Tick(time.Now())

	if got := h.ai.CurrentState(); got != model.StateChase {
		t.Fatalf("state = %v, want CHASE", got)
	}
	if len(h.moves) == 0 {
		t.Fatal("no movement ordered toward the target")
	}
	if h.moves[len(h.moves)-1] != (model.Location{X: 8}) {
		t.Errorf("moved toward %v, want the target position", h.moves[len(h.moves)-1])
	}
}

func TestLeashClearsThreatAndReturns(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 24})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	// Drag the mob past its leash radius while the target stays inside
	// the maximum chase distance — the leash itself must trigger.
	h.mob.SetPosition(model.Location{X: 26})
	h.ai.Tick(time.Now())

	if got := h.ai.CurrentState(); got != model.StateReturning {
		t.Fatalf("state = %v, want RETURNING", got)
	}
	if !h.mob.ThreatList().IsEmpty() {
		t.Error("leash must clear the threat list, not suspend it")
	}
	if h.mob.Target() != 0 {
		t.Error("target not cleared on leash")
	}
}

func TestChaseEmptyThreatReturnsHome(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	p := h.addPlayer(7, model.Location{X: 5})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	// Target dies mid-chase; pruning empties the list.
	p.Stats().ReduceHealth(100)
	h.ai.Tick(time.Now())

	if got := h.ai.CurrentState(); got != model.StateReturning {
		t.Errorf("state = %v, want RETURNING", got)
	}
}

func TestCombatAttacksOnCooldown(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 0.5})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	now := time.Now()
	h.ai.Tick(now) // chase → combat
	if got := h.ai.CurrentState(); got != model.StateCombat {
		t.Fatalf("state = %v, want COMBAT", got)
	}

	h.ai.Tick(now)
	if len(h.attacks) != 1 {
		t.Fatalf("attacks = %d, want 1", len(h.attacks))
	}

	// Still cooling down.
	h.ai.Tick(now.Add(time.Second))
	if len(h.attacks) != 1 {
		t.Fatalf("attacked during cooldown: %d", len(h.attacks))
	}

	h.ai.Tick(now.Add(3 * time.Second))
	if len(h.attacks) != 2 {
		t.Errorf("attacks after cooldown = %d, want 2", len(h.attacks))
	}
}

func TestCombatTargetOutOfRangeResumesChase(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	p := h.addPlayer(7, model.Location{X: 0.5})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	now := time.Now()
	h.ai.Tick(now) // chase → combat

	p.SetPosition(model.Location{X: 6})
	h.ai.Tick(now.Add(time.Second))

	if got := h.ai.CurrentState(); got != model.StateChase {
		t.Errorf("state = %v, want CHASE", got)
	}
}

func TestCombatDeadTargetReturnsHome(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	p := h.addPlayer(7, model.Location{X: 0.5})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	now := time.Now()
	h.ai.Tick(now) // chase → combat

	p.Stats().ReduceHealth(100)
	h.ai.Tick(now.Add(time.Second))

	if got := h.ai.CurrentState(); got != model.StateReturning {
		t.Fatalf("state = %v, want RETURNING", got)
	}
	if h.mob.ThreatList().Get(7) != nil {
		t.Error("dead target still on the threat list")
	}
}

func TestReturningArrivalResetsToIdle(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.ai.Start()

	h.mob.SetState(model.StateReturning)
	h.mob.SetPosition(model.Location{X: 0.2})

	h.ai.Tick(time.Now())

	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Fatalf("state = %v, want IDLE", got)
	}
	if h.mob.Position() != h.mob.Home() {
		t.Error("arrival must snap the mob onto its home position")
	}
}

func TestOnDeathClearsEverything(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 0.5})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	h.ai.OnDeath()

	if got := h.ai.CurrentState(); got != model.StateDead {
		t.Fatalf("state = %v, want DEAD", got)
	}
	if !h.mob.ThreatList().IsEmpty() {
		t.Error("threat list not cleared on death")
	}
	if h.mob.Target() != 0 {
		t.Error("target not cleared on death")
	}

	// A dead mob's AI does nothing until respawn resets it.
	h.ai.Tick(time.Now())
	h.ai.ScanAggro(time.Now())
	if got := h.ai.CurrentState(); got != model.StateDead {
		t.Errorf("dead mob moved to %v", got)
	}
}

func TestStateChangeObserver(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 5})

	type transition struct{ from, to model.MobState }
	var seen []transition
	h.ai.SetStateChangeFunc(func(_ *model.Mob, from, to model.MobState) {
		seen = append(seen, transition{from, to})
	})

	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	if len(seen) == 0 {
		t.Fatal("no transitions observed")
	}
	last := seen[len(seen)-1]
	if last.to != model.StateChase {
		t.Errorf("last transition to %v, want CHASE", last.to)
	}
}

func TestStopHaltsTheMachine(t *testing.T) {
	h := newHarness(t, noImmunityConfig())
	h.addPlayer(7, model.Location{X: 0.5})
	h.ai.Start()
	h.ai.NotifyDamage(7, 3)

	h.ai.Stop()

	if !h.mob.ThreatList().IsEmpty() {
		t.Error("stop must clear the threat list")
	}

	h.ai.Tick(time.Now())
	h.ai.ScanAggro(time.Now())
	if got := h.ai.CurrentState(); got != model.StateIdle {
		t.Errorf("stopped AI transitioned to %v", got)
	}
}

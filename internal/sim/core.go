package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/runemist/runemist/internal/ai"
	"github.com/runemist/runemist/internal/combat"
	"github.com/runemist/runemist/internal/config"
	"github.com/runemist/runemist/internal/data"
	"github.com/runemist/runemist/internal/event"
	"github.com/runemist/runemist/internal/model"
	"github.com/runemist/runemist/internal/spawn"
	"github.com/runemist/runemist/internal/world"
)

// statsProvider is the capability combat resolution needs from any
// entity that can take or deal damage.
type statsProvider interface {
	ID() uint32
	Stats() *model.CombatantStats
}

// Core owns every subsystem of the simulation: the world, the event
// bus, the damage calculator, the AI manager and the spawn system. All
// registries hang off the Core; nothing is package-global.
type Core struct {
	cfg config.Simulation

	world      *world.World
	bus        *event.Bus
	calculator *combat.Calculator
	resolver   *combat.Manager
	aiManager  *ai.Manager
	spawns     *spawn.Manager
	respawns   *spawn.RespawnRunner
	store      *data.Store

	combatants sync.Map // map[uint32]statsProvider — objectID → entity
	players    sync.Map // map[uint32]*model.Player

	playerIDCounter atomic.Uint32
	stopCh          chan struct{}
	stopOnce        sync.Once
}

// New wires a simulation core from configuration and a template store.
func New(cfg config.Simulation, store *data.Store) *Core {
	c := &Core{
		cfg:        cfg,
		world:      world.New(),
		bus:        event.NewBus(),
		calculator: combat.NewCalculator(cfg.Combat),
		store:      store,
		stopCh:     make(chan struct{}),
	}

	c.resolver = combat.NewManager(c.calculator, c.bus, c.statsFor, c.applyDamage)
	c.aiManager = ai.NewManager(
		time.Duration(cfg.AIUpdateIntervalMs)*time.Millisecond,
		time.Duration(cfg.AggroScanIntervalMs)*time.Millisecond,
	)
	c.spawns = spawn.NewManager(store, c.world, c.aiManager, c.bus, c.buildMobAI)
	c.respawns = spawn.NewRespawnRunner(c.spawns)

	// Mob AI learns about incoming damage from the dealt events, so even
	// a miss puts the attacker on the threat list.
	c.bus.Subscribe(event.TypeDamageDealt, func(e event.Event) {
		dealt := e.(event.DamageDealt)
		if _, isMob := c.mobByID(dealt.TargetID); !isMob {
			return
		}
		if controller, err := c.aiManager.GetController(dealt.TargetID); err == nil {
			controller.NotifyDamage(dealt.AttackerID, dealt.Amount)
		}
	})

	c.playerIDCounter.Store(1000)

	return c
}

// World returns the spatial world.
func (c *Core) World() *world.World { return c.world }

// Bus returns the event bus.
func (c *Core) Bus() *event.Bus { return c.bus }

// Calculator returns the damage calculator.
func (c *Core) Calculator() *combat.Calculator { return c.calculator }

// Resolver returns the combat resolver.
func (c *Core) Resolver() *combat.Manager { return c.resolver }

// AIManager returns the AI tick manager.
func (c *Core) AIManager() *ai.Manager { return c.aiManager }

// Spawns returns the spawn manager.
func (c *Core) Spawns() *spawn.Manager { return c.spawns }

// Respawns returns the respawn runner.
func (c *Core) Respawns() *spawn.RespawnRunner { return c.respawns }

// buildMobAI is the AI factory the spawn manager calls for every mob it
// creates. The callbacks close over the core so controllers reach the
// world and the combat resolver without package cycles.
func (c *Core) buildMobAI(mob *model.Mob) ai.Controller {
	c.combatants.Store(mob.ID(), mob)

	behavior := ai.Config{
		IdleDuration:       time.Duration(c.cfg.Behavior.IdleDurationSec) * time.Second,
		SpawnImmunityTicks: c.cfg.Behavior.SpawnImmunityTicks,
		AggroLevelFactor:   c.cfg.Behavior.AggroLevelFactor,
		ThreatForgetChance: c.cfg.Behavior.ThreatForgetChance,
	}

	mobAI := ai.NewMobAI(mob, behavior,
		c.mobAttack,
		c.scanPlayers,
		c.lookupCombatant,
		c.orderMove,
	)
	mobAI.SetStateChangeFunc(func(m *model.Mob, from, to model.MobState) {
		c.bus.Publish(event.StateChanged{MobID: m.ID(), From: from, To: to})
	})
	return mobAI
}

func (c *Core) scanPlayers(center model.Location, radius float64, fn func(ai.Combatant) bool) {
	c.world.VisitNearbyPlayers(center, radius, func(e world.Entity) bool {
		return fn(e)
	})
}

func (c *Core) lookupCombatant(objectID uint32) (ai.Combatant, bool) {
	e, ok := c.world.Get(objectID)
	if !ok {
		return nil, false
	}
	return e, true
}

func (c *Core) orderMove(mob *model.Mob, dest model.Location) {
	c.world.MoveToward(mob.ID(), dest, mob.Template().MoveSpeed)
}

// mobAttack resolves one mob attack against its target. The intent is
// dispatched synchronously so observers see it before the damage it
// produces.
func (c *Core) mobAttack(mob *model.Mob, targetID uint32) {
	c.bus.DispatchNow(event.AttackIntent{MobID: mob.ID(), TargetID: targetID})

	attackType := attackTypeForStyle(mob.Template().AttackStyle)
	c.resolver.ResolveAttack(mob.ID(), targetID, combat.StyleAccurate, attackType)
}

// AttackMob lets a player strike a mob with a chosen stance. The attack
// type follows the player's equipped weapon.
func (c *Core) AttackMob(playerID, mobID uint32, style combat.CombatStyle) error {
	attacker, ok := c.combatant(playerID)
	if !ok {
		return fmt.Errorf("unknown attacker %d", playerID)
	}
	target, ok := c.combatant(mobID)
	if !ok {
		return fmt.Errorf("unknown target %d", mobID)
	}
	if attacker.Stats().IsDead() {
		return fmt.Errorf("attacker %d is dead", playerID)
	}
	if target.Stats().IsDead() {
		return fmt.Errorf("target %d is already dead", mobID)
	}

	attackType := combat.AttackMelee
	if weapon := attacker.Stats().EquippedItem(model.SlotWeapon); weapon != nil {
		attackType = attackTypeForStyle(weapon.WeaponStyle)
	}

	c.resolver.ResolveAttack(playerID, mobID, style, attackType)
	return nil
}

// statsFor feeds the combat resolver live stats by object ID.
func (c *Core) statsFor(objectID uint32) *model.CombatantStats {
	provider, ok := c.combatant(objectID)
	if !ok {
		return nil
	}
	return provider.Stats()
}

// applyDamage is the single health writer: the resolver delegates the
// mutation here, and death is handled in the same pass.
func (c *Core) applyDamage(targetID uint32, amount int32, sourceID uint32) {
	target, ok := c.combatant(targetID)
	if !ok {
		return
	}
	target.Stats().ReduceHealth(amount)

	if mob, isMob := c.mobByID(targetID); isMob && mob.IsDead() {
		c.spawns.OnMobDeath(mob, sourceID)
		c.respawns.Schedule(mob)
	}
}

func (c *Core) combatant(objectID uint32) (statsProvider, bool) {
	value, ok := c.combatants.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(statsProvider), true
}

func (c *Core) mobByID(objectID uint32) (*model.Mob, bool) {
	value, ok := c.combatants.Load(objectID)
	if !ok {
		return nil, false
	}
	mob, isMob := value.(*model.Mob)
	return mob, isMob
}

// AddPlayer creates a player, registers it with the world and combat
// registries, and returns it.
func (c *Core) AddPlayer(name string, hitpoints int32, loc model.Location) *model.Player {
	player := model.NewPlayer(c.playerIDCounter.Add(1), name, hitpoints, loc)
	c.combatants.Store(player.ID(), player)
	c.players.Store(player.ID(), player)
	c.world.AddPlayer(player)

	slog.Info("player joined", "objectID", player.ID(), "name", name)
	return player
}

// Player returns a registered player.
func (c *Core) Player(objectID uint32) (*model.Player, bool) {
	value, ok := c.players.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*model.Player), true
}

// RemovePlayer drops a player from the simulation.
func (c *Core) RemovePlayer(objectID uint32) {
	c.combatants.Delete(objectID)
	c.players.Delete(objectID)
	c.world.Remove(objectID)

	slog.Info("player left", "objectID", objectID)
}

// AddSpawnPoint registers a spawn point with the spawn manager.
func (c *Core) AddSpawnPoint(sp *model.SpawnPoint) {
	c.spawns.AddSpawnPoint(sp)
}

// SpawnAll spawns every registered spawn point's mob.
func (c *Core) SpawnAll() error {
	return c.spawns.SpawnAll()
}

// Run drives the simulation until the context is canceled or Stop is
// called: the AI cadences, the respawn runner, and the movement/event
// loop.
func (c *Core) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.aiManager.Run(ctx) })
	g.Go(func() error { return c.respawns.Run(ctx) })
	g.Go(func() error { return c.runMovement(ctx) })

	slog.Info("simulation core started",
		"aiUpdateMs", c.cfg.AIUpdateIntervalMs,
		"aggroScanMs", c.cfg.AggroScanIntervalMs,
		"movementMs", c.cfg.MovementIntervalMs)

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runMovement interpolates movement orders and flushes the event bus at
// the fine cadence.
func (c *Core) runMovement(ctx context.Context) error {
	interval := time.Duration(c.cfg.MovementIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-c.stopCh:
			return nil

		case now := <-ticker.C:
			c.world.Step(now.Sub(last).Seconds())
			last = now
			c.bus.SwapAndDispatch()
		}
	}
}

// Step advances the whole simulation one deterministic beat: movement,
// aggro scan, AI update, event dispatch. Used by tests instead of Run.
func (c *Core) Step(now time.Time, dt float64) {
	c.world.Step(dt)
	c.aiManager.ScanAll(now)
	c.aiManager.TickAll(now)
	c.bus.SwapAndDispatch()
}

// Stop halts the Run loops.
func (c *Core) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.aiManager.Stop()
	c.respawns.Stop()
}

func attackTypeForStyle(style model.BonusStyle) combat.AttackType {
	switch style {
	case model.BonusRanged:
		return combat.AttackRanged
	case model.BonusMagic:
		return combat.AttackMagic
	default:
		return combat.AttackMelee
	}
}

package spawn

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/runemist/runemist/internal/ai"
	"github.com/runemist/runemist/internal/event"
	"github.com/runemist/runemist/internal/model"
	"github.com/runemist/runemist/internal/world"
)

// TemplateSource resolves mob templates by ID.
type TemplateSource interface {
	MobTemplate(templateID int32) (*model.MobTemplate, error)
}

// AIFactory builds the AI controller for a freshly spawned mob.
// Injected by the simulation core so the controller arrives with the
// core's callbacks already wired.
type AIFactory func(mob *model.Mob) ai.Controller

// Manager owns the spawn points and the live mobs they produced.
// Spawning is two-phase: the mob is fully registered (world entity and
// AI controller both live) before the spawn event is published, so no
// observer ever sees a half-initialized mob.
type Manager struct {
	points    sync.Map // map[int64]*model.SpawnPoint — spawnID → point
	mobs      sync.Map // map[int64]*model.Mob — spawnID → live mob
	templates TemplateSource
	world     *world.World
	aiManager *ai.Manager
	bus       *event.Bus
	aiFactory AIFactory

	objectIDCounter atomic.Uint32
	pointCount      atomic.Int32
}

// NewManager creates a spawn manager.
func NewManager(
	templates TemplateSource,
	w *world.World,
	aiManager *ai.Manager,
	bus *event.Bus,
	aiFactory AIFactory,
) *Manager {
	mgr := &Manager{
		templates: templates,
		world:     w,
		aiManager: aiManager,
		bus:       bus,
		aiFactory: aiFactory,
	}

	// Mob objectIDs start high; players use the low range.
	mgr.objectIDCounter.Store(100000)

	return mgr
}

// AddSpawnPoint registers a spawn point. It produces no mob until
// SpawnMob or SpawnAll runs.
func (m *Manager) AddSpawnPoint(sp *model.SpawnPoint) {
	if _, loaded := m.points.LoadOrStore(sp.SpawnID(), sp); loaded {
		slog.Warn("spawn point already registered", "spawnID", sp.SpawnID())
		return
	}
	m.pointCount.Add(1)
}

// GetSpawnPoint returns a spawn point by ID.
func (m *Manager) GetSpawnPoint(spawnID int64) (*model.SpawnPoint, bool) {
	value, ok := m.points.Load(spawnID)
	if !ok {
		return nil, false
	}
	return value.(*model.SpawnPoint), true
}

// GetMob returns the live mob for a spawn point.
func (m *Manager) GetMob(spawnID int64) (*model.Mob, bool) {
	value, ok := m.mobs.Load(spawnID)
	if !ok {
		return nil, false
	}
	return value.(*model.Mob), true
}

// SpawnPointCount returns the number of registered spawn points (O(1)
// cached).
func (m *Manager) SpawnPointCount() int {
	return int(m.pointCount.Load())
}

// SpawnMob spawns the mob for a spawn point. The mob is added to the
// world and its AI registered before the spawn event is published.
func (m *Manager) SpawnMob(sp *model.SpawnPoint) (*model.Mob, error) {
	if _, exists := m.mobs.Load(sp.SpawnID()); exists {
		return nil, fmt.Errorf("spawn %d already has a live mob", sp.SpawnID())
	}

	template, err := m.templates.MobTemplate(sp.TemplateID())
	if err != nil {
		return nil, fmt.Errorf("loading template %d for spawn %d: %w", sp.TemplateID(), sp.SpawnID(), err)
	}

	objectID := m.objectIDCounter.Add(1)
	mob := model.NewMob(objectID, template, sp.Location(), sp)

	m.mobs.Store(sp.SpawnID(), mob)
	m.world.Add(mob)

	controller := m.aiFactory(mob)
	m.aiManager.Register(objectID, controller)

	m.bus.Publish(event.MobSpawned{
		MobID:      objectID,
		TemplateID: template.ID,
		Position:   sp.Location(),
	})

	slog.Info("mob spawned",
		"objectID", objectID,
		"name", mob.Name(),
		"templateID", template.ID,
		"spawnID", sp.SpawnID(),
		"location", sp.Location())

	return mob, nil
}

// SpawnAll spawns a mob for every registered spawn point.
func (m *Manager) SpawnAll() error {
	count := 0
	var firstErr error

	m.points.Range(func(_, value any) bool {
		sp := value.(*model.SpawnPoint)

		if _, err := m.SpawnMob(sp); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.Error("failed to spawn mob",
				"spawnID", sp.SpawnID(),
				"templateID", sp.TemplateID(),
				"error", err)
			return true
		}
		count++
		return true
	})

	if firstErr != nil {
		return fmt.Errorf("spawning all mobs: %w", firstErr)
	}

	slog.Info("all mobs spawned", "count", count)
	return nil
}

// OnMobDeath handles a mob's death: its AI goes dead, the entity
// leaves the world, and the death event is published. The caller
// schedules the respawn.
func (m *Manager) OnMobDeath(mob *model.Mob, killerID uint32) {
	if controller, err := m.aiManager.GetController(mob.ID()); err == nil {
		controller.OnDeath()
	}

	m.world.Remove(mob.ID())

	m.bus.Publish(event.MobDied{
		MobID:    mob.ID(),
		KillerID: killerID,
		Position: mob.Position(),
	})

	slog.Info("mob died",
		"objectID", mob.ID(),
		"name", mob.Name(),
		"killerID", killerID)
}

// RespawnMob brings a dead mob back: full health at home, idle, world
// entity restored and AI restarted, then the spawn event is published.
func (m *Manager) RespawnMob(mob *model.Mob) {
	mob.ResetToSpawn()
	m.world.Add(mob)

	controller, err := m.aiManager.GetController(mob.ID())
	if err != nil {
		controller = m.aiFactory(mob)
		m.aiManager.Register(mob.ID(), controller)
	} else {
		controller.Start()
	}

	m.bus.Publish(event.MobSpawned{
		MobID:      mob.ID(),
		TemplateID: mob.Template().ID,
		Position:   mob.Home(),
	})

	slog.Info("mob respawned",
		"objectID", mob.ID(),
		"name", mob.Name(),
		"location", mob.Home())
}

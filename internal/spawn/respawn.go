package spawn

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/runemist/runemist/internal/model"
)

// RespawnTask is one pending respawn.
type RespawnTask struct {
	Mob         *model.Mob
	RespawnTime time.Time
}

// RespawnRunner brings dead mobs back after their spawn point's delay.
type RespawnRunner struct {
	spawnManager *Manager
	stopCh       chan struct{}
	stopOnce     sync.Once

	mu    sync.RWMutex
	tasks map[int64]*RespawnTask // spawnID → task
}

// NewRespawnRunner creates a respawn runner.
func NewRespawnRunner(spawnManager *Manager) *RespawnRunner {
	return &RespawnRunner{
		spawnManager: spawnManager,
		stopCh:       make(chan struct{}),
		tasks:        make(map[int64]*RespawnTask),
	}
}

// Run processes due respawns once a second until the context is
// canceled or Stop is called.
func (r *RespawnRunner) Run(ctx context.Context) error {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	slog.Info("respawn runner started", "interval", "1s")

	for {
		select {
		case <-ctx.Done():
			slog.Info("respawn runner stopping")
			return ctx.Err()

		case <-r.stopCh:
			slog.Info("respawn runner stopped")
			return nil

		case now := <-ticker.C:
			r.ProcessDue(now)
		}
	}
}

// Stop stops the Run loop.
func (r *RespawnRunner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

// Schedule queues a mob for respawn after its spawn point's delay.
// Mobs without a spawn point (test mobs) are never respawned.
func (r *RespawnRunner) Schedule(mob *model.Mob) {
	sp := mob.Spawn()
	if sp == nil {
		slog.Warn("respawn requested for mob without spawn point", "objectID", mob.ID())
		return
	}

	respawnTime := time.Now().Add(time.Duration(sp.RespawnDelay()) * time.Second)

	r.mu.Lock()
	r.tasks[sp.SpawnID()] = &RespawnTask{Mob: mob, RespawnTime: respawnTime}
	r.mu.Unlock()

	slog.Debug("respawn scheduled",
		"objectID", mob.ID(),
		"spawnID", sp.SpawnID(),
		"delaySeconds", sp.RespawnDelay())
}

// Cancel drops a pending respawn.
func (r *RespawnRunner) Cancel(spawnID int64) {
	r.mu.Lock()
	delete(r.tasks, spawnID)
	r.mu.Unlock()
}

// ProcessDue respawns every mob whose time has come. Exported so tests
// can drive the runner deterministically.
func (r *RespawnRunner) ProcessDue(now time.Time) {
	r.mu.Lock()
	var due []*RespawnTask
	for spawnID, task := range r.tasks {
		if !now.Before(task.RespawnTime) {
			due = append(due, task)
			delete(r.tasks, spawnID)
		}
	}
	r.mu.Unlock()

	for _, task := range due {
		r.spawnManager.RespawnMob(task.Mob)
	}
}

// TaskCount returns the number of pending respawns.
func (r *RespawnRunner) TaskCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Manager drives AI for all registered mobs. Two cadences run
// multiplexed on one goroutine — the coarse state update and the faster
// aggro scan — so no mob's AI state is ever mutated concurrently.
type Manager struct {
	controllers     sync.Map // map[uint32]Controller — objectID → controller
	controllerCount atomic.Int32

	updateInterval time.Duration
	aggroInterval  time.Duration
	stopCh         chan struct{}
	stopOnce       sync.Once
}

// NewManager creates an AI manager with the given cadences.
func NewManager(updateInterval, aggroInterval time.Duration) *Manager {
	return &Manager{
		updateInterval: updateInterval,
		aggroInterval:  aggroInterval,
		stopCh:         make(chan struct{}),
	}
}

// Register registers and starts an AI controller for a mob.
func (m *Manager) Register(objectID uint32, controller Controller) {
	m.controllers.Store(objectID, controller)
	m.controllerCount.Add(1)
	controller.Start()

	slog.Debug("AI controller registered",
		"objectID", objectID,
		"state", controller.CurrentState())
}

// Unregister stops and removes an AI controller.
func (m *Manager) Unregister(objectID uint32) {
	value, ok := m.controllers.LoadAndDelete(objectID)
	if !ok {
		return
	}

	m.controllerCount.Add(-1)
	value.(Controller).Stop()

	slog.Debug("AI controller unregistered", "objectID", objectID)
}

// GetController returns the controller for a mob.
func (m *Manager) GetController(objectID uint32) (Controller, error) {
	value, ok := m.controllers.Load(objectID)
	if !ok {
		return nil, fmt.Errorf("controller not found for objectID %d", objectID)
	}
	return value.(Controller), nil
}

// Count returns the number of registered controllers (O(1) cached).
func (m *Manager) Count() int {
	return int(m.controllerCount.Load())
}

// Run drives both cadences until the context is canceled or Stop is
// called.
func (m *Manager) Run(ctx context.Context) error {
	updateTicker := time.NewTicker(m.updateInterval)
	defer updateTicker.Stop()
	aggroTicker := time.NewTicker(m.aggroInterval)
	defer aggroTicker.Stop()

	slog.Info("AI manager started",
		"updateInterval", m.updateInterval,
		"aggroInterval", m.aggroInterval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("AI manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("AI manager stopped")
			return nil

		case now := <-updateTicker.C:
			m.TickAll(now)

		case now := <-aggroTicker.C:
			m.ScanAll(now)
		}
	}
}

// Stop stops the Run loop.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// TickAll runs one coarse AI update for every controller. Exported so
// tests can advance the simulation deterministically.
func (m *Manager) TickAll(now time.Time) {
	count := 0
	m.controllers.Range(func(_, value any) bool {
		value.(Controller).Tick(now)
		count++
		return true
	})

	if count > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "controllers", count)
	}
}

// ScanAll runs one aggro-detection pass for every controller.
func (m *Manager) ScanAll(now time.Time) {
	m.controllers.Range(func(_, value any) bool {
		value.(Controller).ScanAggro(now)
		return true
	})
}

package world

import (
	"log/slog"
	"math"
	"sync"

	"github.com/runemist/runemist/internal/model"
)

// Entity is anything the world tracks: a position that can change and
// the read capabilities the AI needs.
type Entity interface {
	ID() uint32
	Position() model.Location
	SetPosition(model.Location)
	IsDead() bool
	CombatLevel() int32
}

// cellSize is the edge length of one spatial grid cell in world units.
// Radius queries touch only the cells the radius overlaps.
const cellSize = 16.0

type cellKey struct {
	cx, cy int32
}

func cellOf(loc model.Location) cellKey {
	return cellKey{
		cx: int32(math.Floor(loc.X / cellSize)),
		cy: int32(math.Floor(loc.Y / cellSize)),
	}
}

type moveOrder struct {
	dest  model.Location
	speed float64 // units per second
}

// World owns the entity registry, the spatial index, and in-flight
// movement orders. All position mutation funnels through it so the grid
// never goes stale.
type World struct {
	mu       sync.RWMutex
	entities map[uint32]Entity
	players  map[uint32]struct{}
	cells    map[cellKey]map[uint32]struct{}
	moves    map[uint32]moveOrder
}

// New creates an empty world.
func New() *World {
	return &World{
		entities: make(map[uint32]Entity),
		players:  make(map[uint32]struct{}),
		cells:    make(map[cellKey]map[uint32]struct{}),
		moves:    make(map[uint32]moveOrder),
	}
}

// Add registers an entity at its current position.
func (w *World) Add(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.addLocked(e)
}

// AddPlayer registers a player entity. Players are what aggro scans
// look for.
func (w *World) AddPlayer(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.addLocked(e)
	w.players[e.ID()] = struct{}{}
}

func (w *World) addLocked(e Entity) {
	id := e.ID()
	if _, exists := w.entities[id]; exists {
		slog.Warn("entity already registered", "objectID", id)
		return
	}
	w.entities[id] = e
	key := cellOf(e.Position())
	cell := w.cells[key]
	if cell == nil {
		cell = make(map[uint32]struct{})
		w.cells[key] = cell
	}
	cell[id] = struct{}{}
}

// Remove unregisters an entity (e.g. a dead mob hidden from the world).
func (w *World) Remove(id uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.entities[id]
	if !ok {
		return
	}
	delete(w.entities, id)
	delete(w.players, id)
	delete(w.moves, id)
	w.removeFromCellLocked(id, cellOf(e.Position()))
}

func (w *World) removeFromCellLocked(id uint32, key cellKey) {
	if cell, ok := w.cells[key]; ok {
		delete(cell, id)
		if len(cell) == 0 {
			delete(w.cells, key)
		}
	}
}

// Get returns a registered entity.
func (w *World) Get(id uint32) (Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[id]
	return e, ok
}

// Count returns the number of registered entities.
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

// UpdatePosition moves an entity and re-indexes it. Unknown IDs are a
// logged no-op.
func (w *World) UpdatePosition(id uint32, loc model.Location) {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.entities[id]
	if !ok {
		slog.Warn("position update for unknown entity", "objectID", id)
		return
	}
	w.setPositionLocked(e, loc)
}

func (w *World) setPositionLocked(e Entity, loc model.Location) {
	oldKey := cellOf(e.Position())
	newKey := cellOf(loc)
	e.SetPosition(loc)

	if oldKey == newKey {
		return
	}
	w.removeFromCellLocked(e.ID(), oldKey)
	cell := w.cells[newKey]
	if cell == nil {
		cell = make(map[uint32]struct{})
		w.cells[newKey] = cell
	}
	cell[e.ID()] = struct{}{}
}

// Nearby returns the IDs of all entities within radius of pos.
func (w *World) Nearby(pos model.Location, radius float64) []uint32 {
	var out []uint32
	w.visitNearby(pos, radius, func(e Entity) bool {
		out = append(out, e.ID())
		return true
	})
	return out
}

// VisitNearbyPlayers visits every player within radius of pos. The
// visitor returns false to stop early.
func (w *World) VisitNearbyPlayers(pos model.Location, radius float64, fn func(Entity) bool) {
	w.visitNearby(pos, radius, func(e Entity) bool {
		w.mu.RLock()
		_, isPlayer := w.players[e.ID()]
		w.mu.RUnlock()
		if !isPlayer {
			return true
		}
		return fn(e)
	})
}

func (w *World) visitNearby(pos model.Location, radius float64, fn func(Entity) bool) {
	if radius < 0 {
		return
	}
	radiusSq := radius * radius
	minCX := int32(math.Floor((pos.X - radius) / cellSize))
	maxCX := int32(math.Floor((pos.X + radius) / cellSize))
	minCY := int32(math.Floor((pos.Y - radius) / cellSize))
	maxCY := int32(math.Floor((pos.Y + radius) / cellSize))

	w.mu.RLock()
	var candidates []Entity
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			for id := range w.cells[cellKey{cx, cy}] {
				if e, ok := w.entities[id]; ok {
					candidates = append(candidates, e)
				}
			}
		}
	}
	w.mu.RUnlock()

	for _, e := range candidates {
		if pos.DistanceSquared(e.Position()) > radiusSq {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// MoveToward orders an entity to move toward dest at the given speed.
// A new order replaces any previous one.
func (w *World) MoveToward(id uint32, dest model.Location, speed float64) {
	if speed <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entities[id]; !ok {
		return
	}
	w.moves[id] = moveOrder{dest: dest, speed: speed}
}

// StopMoving cancels an entity's movement order.
func (w *World) StopMoving(id uint32) {
	w.mu.Lock()
	delete(w.moves, id)
	w.mu.Unlock()
}

// IsMoving reports whether an entity has an active movement order.
func (w *World) IsMoving(id uint32) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.moves[id]
	return ok
}

// Step advances every movement order by dt seconds, interpolating each
// entity toward its destination. Orders complete on arrival.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for id, order := range w.moves {
		e, ok := w.entities[id]
		if !ok {
			delete(w.moves, id)
			continue
		}
		next := e.Position().StepToward(order.dest, order.speed*dt)
		w.setPositionLocked(e, next)
		if next == order.dest {
			delete(w.moves, id)
		}
	}
}

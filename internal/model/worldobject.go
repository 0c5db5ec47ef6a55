package model

import "sync"

// WorldObject is the base for every object placed in the game world.
// All objects have an ObjectID, a Name and a Location.
type WorldObject struct {
	objectID uint32
	name     string
	location Location

	mu sync.RWMutex
}

// NewWorldObject creates a new object in the game world.
func NewWorldObject(objectID uint32, name string, loc Location) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		location: loc,
	}
}

// ID returns the unique object ID (immutable after creation).
func (w *WorldObject) ID() uint32 {
	return w.objectID
}

// Name returns the object name.
func (w *WorldObject) Name() string {
	return w.name
}

// Position returns a copy of the object's coordinates (value type).
func (w *WorldObject) Position() Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location
}

// SetPosition sets new coordinates for the object.
func (w *WorldObject) SetPosition(loc Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.location = loc
}

package data

import (
	"fmt"

	"github.com/runemist/runemist/internal/model"
)

// Store holds the immutable item and mob template tables. Templates are
// shared pointers; callers must never mutate them.
type Store struct {
	items map[string]*model.Item
	mobs  map[int32]*model.MobTemplate
}

// NewStore creates a store with the built-in template tables.
func NewStore() *Store {
	s := &Store{
		items: make(map[string]*model.Item, len(builtinItems)),
		mobs:  make(map[int32]*model.MobTemplate, len(builtinMobs)),
	}
	for _, item := range builtinItems {
		s.items[item.Name] = item
	}
	for _, mob := range builtinMobs {
		s.mobs[mob.ID] = mob
	}
	return s
}

// Item returns an item template by name.
func (s *Store) Item(name string) (*model.Item, error) {
	item, ok := s.items[name]
	if !ok {
		return nil, fmt.Errorf("unknown item %q", name)
	}
	return item, nil
}

// MobTemplate returns a mob template by ID.
func (s *Store) MobTemplate(templateID int32) (*model.MobTemplate, error) {
	template, ok := s.mobs[templateID]
	if !ok {
		return nil, fmt.Errorf("unknown mob template %d", templateID)
	}
	return template, nil
}

// ItemCount returns the number of item templates.
func (s *Store) ItemCount() int {
	return len(s.items)
}

// MobTemplateCount returns the number of mob templates.
func (s *Store) MobTemplateCount() int {
	return len(s.mobs)
}

package event

import "github.com/runemist/runemist/internal/model"

// Type names an event class for subscription.
type Type string

const (
	TypeAttackIntent Type = "attack-intent"
	TypeDamageDealt  Type = "damage-dealt"
	TypeMobSpawned   Type = "mob-spawned"
	TypeMobDied      Type = "mob-died"
	TypeStateChanged Type = "state-changed"
)

// Event is any payload published on the bus.
type Event interface {
	EventType() Type
}

// AttackIntent is emitted when a mob in combat comes off cooldown and
// decides to strike. Damage resolution consumes it.
type AttackIntent struct {
	MobID    uint32
	TargetID uint32
}

func (AttackIntent) EventType() Type { return TypeAttackIntent }

// DamageDealt is emitted after damage resolution, whether or not the
// hit landed (Amount is 0 on a miss or a zero roll).
type DamageDealt struct {
	AttackerID uint32
	TargetID   uint32
	Amount     int32
	Hit        bool
}

func (DamageDealt) EventType() Type { return TypeDamageDealt }

// MobSpawned is emitted once a mob and its AI state both exist.
type MobSpawned struct {
	MobID      uint32
	TemplateID int32
	Position   model.Location
}

func (MobSpawned) EventType() Type { return TypeMobSpawned }

// MobDied is emitted when a mob's health reaches zero.
type MobDied struct {
	MobID    uint32
	KillerID uint32
	Position model.Location
}

func (MobDied) EventType() Type { return TypeMobDied }

// StateChanged is emitted on every mob behavior state transition.
type StateChanged struct {
	MobID uint32
	From  model.MobState
	To    model.MobState
}

func (StateChanged) EventType() Type { return TypeStateChanged }

package model

// Player is a player-controlled combatant. Only the parts the combat
// and AI core reads live here; session, inventory management and
// persistence are owned elsewhere.
type Player struct {
	*WorldObject

	stats *CombatantStats
}

// NewPlayer creates a player with the given hitpoints level.
func NewPlayer(objectID uint32, name string, hitpoints int32, loc Location) *Player {
	return &Player{
		WorldObject: NewWorldObject(objectID, name, loc),
		stats:       NewCombatantStats(hitpoints),
	}
}

// Stats returns the player's combatant stats.
func (p *Player) Stats() *CombatantStats {
	return p.stats
}

// IsDead reports whether the player's health reached zero.
func (p *Player) IsDead() bool {
	return p.stats.IsDead()
}

// CurrentHealth returns current health.
func (p *Player) CurrentHealth() int32 {
	return p.stats.CurrentHealth()
}

// CombatLevel returns the player's combat level.
func (p *Player) CombatLevel() int32 {
	return p.stats.CombatLevel()
}

package model

// SpawnPoint anchors one mob to a location in the world and carries its
// respawn timing.
type SpawnPoint struct {
	spawnID      int64
	templateID   int32
	location     Location
	respawnDelay int32 // seconds
}

// NewSpawnPoint creates a spawn point.
func NewSpawnPoint(spawnID int64, templateID int32, loc Location, respawnDelaySeconds int32) *SpawnPoint {
	return &SpawnPoint{
		spawnID:      spawnID,
		templateID:   templateID,
		location:     loc,
		respawnDelay: respawnDelaySeconds,
	}
}

// SpawnID returns the spawn point ID.
func (s *SpawnPoint) SpawnID() int64 {
	return s.spawnID
}

// TemplateID returns the mob template ID spawned here.
func (s *SpawnPoint) TemplateID() int32 {
	return s.templateID
}

// Location returns the spawn location.
func (s *SpawnPoint) Location() Location {
	return s.location
}

// RespawnDelay returns the respawn delay in seconds.
func (s *SpawnPoint) RespawnDelay() int32 {
	return s.respawnDelay
}

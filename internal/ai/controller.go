package ai

import (
	"time"

	"github.com/runemist/runemist/internal/model"
)

// Controller is the per-mob AI contract driven by the Manager.
type Controller interface {
	// Start activates the controller (spawn immunity begins).
	Start()
	// Stop deactivates the controller and clears all targets.
	Stop()
	// Tick runs one coarse AI update.
	Tick(now time.Time)
	// ScanAggro runs one aggro-detection pass (faster cadence).
	ScanAggro(now time.Time)
	// NotifyDamage records damage taken and the threat it generates.
	NotifyDamage(attackerID uint32, damage int32)
	// OnDeath transitions the mob into the dead state.
	OnDeath()
	// CurrentState returns the mob's behavior state.
	CurrentState() model.MobState
}

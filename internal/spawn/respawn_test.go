package spawn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemist/runemist/internal/model"
)

func TestScheduleAndProcessDue(t *testing.T) {
	f := newFixture()
	sp := model.NewSpawnPoint(1, 2, model.Location{X: 5}, 30)
	f.manager.AddSpawnPoint(sp)
	mob, err := f.manager.SpawnMob(sp)
	require.NoError(t, err)

	runner := NewRespawnRunner(f.manager)

	mob.Stats().ReduceHealth(100)
	f.manager.OnMobDeath(mob, 42)
	runner.Schedule(mob)
	require.Equal(t, 1, runner.TaskCount())

	// Not due yet.
	runner.ProcessDue(time.Now())
	assert.Equal(t, 1, runner.TaskCount())
	assert.True(t, mob.IsDead())

	// Past the 30s delay the mob comes back.
	runner.ProcessDue(time.Now().Add(31 * time.Second))
	assert.Equal(t, 0, runner.TaskCount())
	assert.False(t, mob.IsDead())
	assert.Equal(t, model.StateIdle, mob.State())
	assert.Equal(t, sp.Location(), mob.Position())
	_, inWorld := f.world.Get(mob.ID())
	assert.True(t, inWorld)
}

func TestScheduleWithoutSpawnPoint(t *testing.T) {
	f := newFixture()
	runner := NewRespawnRunner(f.manager)

	template, _ := stubTemplates{}.MobTemplate(2)
	stray := model.NewMob(999, template, model.Location{}, nil)

	runner.Schedule(stray)
	assert.Equal(t, 0, runner.TaskCount(), "mobs without a spawn point never respawn")
}

func TestCancelRespawn(t *testing.T) {
	f := newFixture()
	sp := model.NewSpawnPoint(1, 2, model.Location{}, 0)
	f.manager.AddSpawnPoint(sp)
	mob, err := f.manager.SpawnMob(sp)
	require.NoError(t, err)

	runner := NewRespawnRunner(f.manager)
	mob.Stats().ReduceHealth(100)
	runner.Schedule(mob)
	runner.Cancel(sp.SpawnID())

	runner.ProcessDue(time.Now().Add(time.Hour))
	assert.True(t, mob.IsDead(), "canceled respawn must not run")
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreatListMostThreatening(t *testing.T) {
	list := NewThreatList()

	assert.Equal(t, uint32(0), list.MostThreatening(), "empty list has no primary")

	list.AddThreat(10, 50)
	list.AddThreat(20, 200)
	list.AddThreat(30, 100)

	assert.Equal(t, uint32(20), list.MostThreatening())

	// Overtaking requires strictly more threat.
	list.AddThreat(30, 150)
	assert.Equal(t, uint32(30), list.MostThreatening())
}

func TestThreatListAccumulates(t *testing.T) {
	list := NewThreatList()

	list.AddThreat(7, 10)
	list.AddThreat(7, 15)
	list.RecordDamage(7, 4)
	list.RecordDamage(7, 6)

	info := list.Get(7)
	require.NotNil(t, info)
	assert.Equal(t, int64(25), info.Threat())
	assert.Equal(t, int64(10), info.Damage())
}

func TestThreatListTouch(t *testing.T) {
	list := NewThreatList()
	at := time.Now()
	pos := Location{X: 3, Y: 4}

	list.Touch(5, at, pos)

	info := list.Get(5)
	require.NotNil(t, info)
	seen, seenPos := info.LastSeen()
	assert.Equal(t, at, seen)
	assert.Equal(t, pos, seenPos)
}

func TestThreatListRemoveAndClear(t *testing.T) {
	list := NewThreatList()
	list.AddThreat(1, 10)
	list.AddThreat(2, 20)

	require.Equal(t, 2, list.Len())

	list.Remove(1)
	assert.Equal(t, 1, list.Len())
	assert.Nil(t, list.Get(1))

	list.Clear()
	assert.True(t, list.IsEmpty())
	assert.Equal(t, uint32(0), list.MostThreatening())
}

func TestThreatListSnapshotSorted(t *testing.T) {
	list := NewThreatList()
	list.AddThreat(1, 30)
	list.AddThreat(2, 100)
	list.AddThreat(3, 60)

	snap := list.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, uint32(2), snap[0].TargetID)
	assert.Equal(t, uint32(3), snap[1].TargetID)
	assert.Equal(t, uint32(1), snap[2].TargetID)
}

func TestCalcThreatValue(t *testing.T) {
	tests := []struct {
		name     string
		damage   int32
		level    int32
		expected int64
	}{
		{"low level mob", 10, 3, 100},
		{"higher level halves threat", 10, 13, 50},
		{"zero damage", 0, 5, 0},
		{"negative damage clamped", -5, 5, 0},
		{"level floor", 12, 0, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalcThreatValue(tt.damage, tt.level))
		})
	}
}

func TestCalcThreatValueLevelMonotonic(t *testing.T) {
	// The same damage must never generate more threat on a higher-level
	// mob.
	prev := CalcThreatValue(100, 1)
	for level := int32(2); level <= 126; level++ {
		cur := CalcThreatValue(100, level)
		assert.LessOrEqual(t, cur, prev, "level %d", level)
		prev = cur
	}
}

package model

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ThreatInfo tracks the threat contributed by a single attacker,
// along with where and when that attacker was last seen.
type ThreatInfo struct {
	threat atomic.Int64
	damage atomic.Int64

	mu       sync.Mutex
	lastSeen time.Time
	lastPos  Location
}

// Threat returns the accumulated threat score (atomic read).
func (t *ThreatInfo) Threat() int64 {
	return t.threat.Load()
}

// Damage returns total damage dealt by this attacker (atomic read).
func (t *ThreatInfo) Damage() int64 {
	return t.damage.Load()
}

// LastSeen returns the last-seen timestamp and position.
func (t *ThreatInfo) LastSeen() (time.Time, Location) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSeen, t.lastPos
}

func (t *ThreatInfo) touch(at time.Time, pos Location) {
	t.mu.Lock()
	t.lastSeen = at
	t.lastPos = pos
	t.mu.Unlock()
}

// ThreatEntry is one row of a sorted threat snapshot.
type ThreatEntry struct {
	TargetID uint32
	Threat   int64
}

// ThreatList manages per-defender threat for one mob. Thread-safe via
// sync.Map; the head of the sorted view is always the primary target.
type ThreatList struct {
	entries sync.Map // map[uint32]*ThreatInfo — defender ID → info
}

// NewThreatList creates an empty ThreatList.
func NewThreatList() *ThreatList {
	return &ThreatList{}
}

// AddThreat adds threat for a defender, creating the entry if needed.
func (l *ThreatList) AddThreat(targetID uint32, amount int64) {
	l.getOrCreate(targetID).threat.Add(amount)
}

// RecordDamage records damage dealt by a defender to the owning mob.
func (l *ThreatList) RecordDamage(targetID uint32, damage int64) {
	l.getOrCreate(targetID).damage.Add(damage)
}

// Touch updates the last-seen timestamp and position of a defender.
func (l *ThreatList) Touch(targetID uint32, at time.Time, pos Location) {
	l.getOrCreate(targetID).touch(at, pos)
}

// MostThreatening returns the defender ID with the highest threat score,
// or 0 when the list is empty. On ties the first entry seen wins.
func (l *ThreatList) MostThreatening() uint32 {
	var maxThreat int64
	var bestID uint32

	l.entries.Range(func(key, value any) bool {
		id := key.(uint32)
		info := value.(*ThreatInfo)
		if t := info.Threat(); t > maxThreat || bestID == 0 {
			maxThreat = t
			bestID = id
		}
		return true
	})

	return bestID
}

// Get returns the ThreatInfo for a defender, or nil when absent.
func (l *ThreatList) Get(targetID uint32) *ThreatInfo {
	value, ok := l.entries.Load(targetID)
	if !ok {
		return nil
	}
	return value.(*ThreatInfo)
}

// Remove drops a defender from the list.
func (l *ThreatList) Remove(targetID uint32) {
	l.entries.Delete(targetID)
}

// Clear drops every entry.
func (l *ThreatList) Clear() {
	l.entries.Range(func(key, _ any) bool {
		l.entries.Delete(key)
		return true
	})
}

// IsEmpty reports whether the list has no entries.
func (l *ThreatList) IsEmpty() bool {
	empty := true
	l.entries.Range(func(_, _ any) bool {
		empty = false
		return false
	})
	return empty
}

// Len returns the number of entries.
func (l *ThreatList) Len() int {
	n := 0
	l.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Snapshot returns all entries sorted descending by threat. The snapshot
// is what one AI pass evaluates — a consistent view, never a
// half-updated list.
func (l *ThreatList) Snapshot() []ThreatEntry {
	var out []ThreatEntry
	l.entries.Range(func(key, value any) bool {
		out = append(out, ThreatEntry{
			TargetID: key.(uint32),
			Threat:   value.(*ThreatInfo).Threat(),
		})
		return true
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Threat > out[j].Threat
	})
	return out
}

func (l *ThreatList) getOrCreate(targetID uint32) *ThreatInfo {
	if v, ok := l.entries.Load(targetID); ok {
		return v.(*ThreatInfo)
	}
	v, _ := l.entries.LoadOrStore(targetID, &ThreatInfo{})
	return v.(*ThreatInfo)
}

// CalcThreatValue converts damage taken into threat. Higher-level mobs
// translate the same damage into less threat.
func CalcThreatValue(damage int32, mobLevel int32) int64 {
	if mobLevel < 1 {
		mobLevel = 1
	}
	if damage < 0 {
		damage = 0
	}
	return (int64(damage) * 100) / int64(mobLevel+7)
}

package ai

import (
	"testing"
	"time"

	"github.com/runemist/runemist/internal/model"
)

// stubController counts lifecycle and tick calls.
type stubController struct {
	started int
	stopped int
	ticks   int
	scans   int
}

func (s *stubController) Start()                      { s.started++ }
func (s *stubController) Stop()                       { s.stopped++ }
func (s *stubController) Tick(time.Time)              { s.ticks++ }
func (s *stubController) ScanAggro(time.Time)         { s.scans++ }
func (s *stubController) NotifyDamage(uint32, int32)  {}
func (s *stubController) OnDeath()                    {}
func (s *stubController) CurrentState() model.MobState { return model.StateIdle }

func TestManagerRegisterStarts(t *testing.T) {
	m := NewManager(time.Second, 500*time.Millisecond)
	stub := &stubController{}

	m.Register(1, stub)

	if stub.started != 1 {
		t.Errorf("started = %d, want 1", stub.started)
	}
	if m.Count() != 1 {
		t.Errorf("count = %d, want 1", m.Count())
	}

	got, err := m.GetController(1)
	if err != nil {
		t.Fatalf("GetController: %v", err)
	}
	if got != Controller(stub) {
		t.Error("GetController returned a different controller")
	}
}

func TestManagerUnregisterStops(t *testing.T) {
	m := NewManager(time.Second, 500*time.Millisecond)
	stub := &stubController{}

	m.Register(1, stub)
	m.Unregister(1)

	if stub.stopped != 1 {
		t.Errorf("stopped = %d, want 1", stub.stopped)
	}
	if m.Count() != 0 {
		t.Errorf("count = %d, want 0", m.Count())
	}
	if _, err := m.GetController(1); err == nil {
		t.Error("expected error for unregistered controller")
	}

	// Unregistering twice is harmless.
	m.Unregister(1)
	if stub.stopped != 1 {
		t.Errorf("double unregister stopped again: %d", stub.stopped)
	}
}

func TestManagerTickAllAndScanAll(t *testing.T) {
	m := NewManager(time.Second, 500*time.Millisecond)
	a := &stubController{}
	b := &stubController{}
	m.Register(1, a)
	m.Register(2, b)

	now := time.Now()
	m.TickAll(now)
	m.ScanAll(now)
	m.TickAll(now)

	if a.ticks != 2 || b.ticks != 2 {
		t.Errorf("ticks = %d/%d, want 2/2", a.ticks, b.ticks)
	}
	if a.scans != 1 || b.scans != 1 {
		t.Errorf("scans = %d/%d, want 1/1", a.scans, b.scans)
	}
}

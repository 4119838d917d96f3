package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingSystem struct {
	updates atomic.Int64
}

func (s *countingSystem) Init()         {}
func (s *countingSystem) Name() string  { return "counter" }
func (s *countingSystem) Priority() int { return 0 }
func (s *countingSystem) Update()       { s.updates.Add(1) }

func TestStepRunsOneTick(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	w.AddSystem(sys)

	cs := NewClockScheduler(w, time.Hour, nil)
	var seen []uint64
	cs.OnTick(func(tick uint64) { seen = append(seen, tick) })

	cs.Step()
	cs.Step()

	if sys.updates.Load() != 2 {
		t.Errorf("Expected 2 updates, got %d", sys.updates.Load())
	}
	if cs.TickCount() != 2 || len(seen) != 2 || seen[1] != 2 {
		t.Errorf("Expected tick callbacks [1 2], got %v", seen)
	}
	if w.Status.Ints.Get("engine.ticks").Load() != 2 {
		t.Errorf("Expected engine.ticks=2, got %d", w.Status.Ints.Get("engine.ticks").Load())
	}
}

func TestSchedulerTicksUntilStopped(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	w.AddSystem(sys)

	cs := NewClockScheduler(w, time.Millisecond, nil)
	cs.Start()
	time.Sleep(100 * time.Millisecond)
	cs.Stop()

	ticks := cs.TickCount()
	if ticks < 5 {
		t.Errorf("Expected at least 5 ticks in 100ms at 1ms interval, got %d", ticks)
	}

	time.Sleep(20 * time.Millisecond)
	if cs.TickCount() != ticks {
		t.Errorf("Expected no ticks after Stop, got %d more", cs.TickCount()-ticks)
	}

	// Second Stop is a no-op
	cs.Stop()
}

func TestSchedulerPause(t *testing.T) {
	w := NewWorld()
	cs := NewClockScheduler(w, time.Millisecond, nil)
	cs.Start()
	defer cs.Stop()

	time.Sleep(20 * time.Millisecond)
	cs.Pause()
	if !cs.IsPaused() || !w.Status.Bools.Get("engine.paused").Load() {
		t.Fatal("Expected scheduler to report paused")
	}
	// Allow an in-flight tick to finish
	time.Sleep(10 * time.Millisecond)
	paused := cs.TickCount()

	time.Sleep(30 * time.Millisecond)
	if cs.TickCount() != paused {
		t.Errorf("Expected no ticks while paused, got %d more", cs.TickCount()-paused)
	}

	cs.Step()
	if cs.TickCount() != paused+1 {
		t.Errorf("Expected Step to tick while paused")
	}

	cs.Resume()
	time.Sleep(30 * time.Millisecond)
	if cs.TickCount() <= paused+1 {
		t.Error("Expected ticks to continue after Resume")
	}
}

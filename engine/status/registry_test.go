package status

import (
	"sync"
	"testing"
)

func TestMetricMapReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("physics.contacts")
	b := r.Ints.Get("physics.contacts")
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	a.Store(7)
	if b.Load() != 7 {
		t.Errorf("Expected 7, got %d", b.Load())
	}
	if !r.Ints.Has("physics.contacts") || r.Ints.Has("missing") {
		t.Error("Has reported wrong membership")
	}
}

func TestSnapshotCollectsAllKinds(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("engine.ticks").Store(3)
	r.Floats.Get("physics.tick_ns").Set(1.5)
	r.Bools.Get("engine.paused").Store(true)

	snap := r.Snapshot()
	if len(snap) != 3 || r.TotalCount() != 3 {
		t.Fatalf("Expected 3 metrics, got %d (%d)", len(snap), r.TotalCount())
	}
	if snap["engine.ticks"] != int64(3) {
		t.Errorf("Expected engine.ticks=3, got %v", snap["engine.ticks"])
	}
	if snap["physics.tick_ns"] != 1.5 {
		t.Errorf("Expected physics.tick_ns=1.5, got %v", snap["physics.tick_ns"])
	}
	if snap["engine.paused"] != true {
		t.Errorf("Expected engine.paused=true, got %v", snap["engine.paused"])
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if f.Get() != 4000 {
		t.Errorf("Expected 4000, got %v", f.Get())
	}
}

func TestRangeSortedKeys(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"c", "a", "b"} {
		*m.Get(k) = len(k)
	}

	var keys []string
	m.Range(func(key string, _ *int) {
		keys = append(keys, key)
	})
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected sorted keys [a b c], got %v", keys)
	}
}

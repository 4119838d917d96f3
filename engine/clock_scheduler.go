package engine

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/parameter"
)

// ClockScheduler drives World.Update on a fixed tick
// Handles pause-aware scheduling without busy-wait and corrects drift against a running deadline
type ClockScheduler struct {
	world *World
	log   *logrus.Logger

	tickInterval     time.Duration
	nextTickDeadline time.Time
	onTick           []func(tick uint64)
	mu               sync.RWMutex

	tickCount atomic.Uint64
	isPaused  atomic.Bool

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks    *atomic.Int64
	statOverruns *atomic.Int64
	statPaused   *atomic.Bool
}

// NewClockScheduler creates a scheduler ticking world every tickInterval
// A nil logger discards output
func NewClockScheduler(world *World, tickInterval time.Duration, log *logrus.Logger) *ClockScheduler {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &ClockScheduler{
		world:        world,
		log:          log,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		statTicks:    world.Status.Ints.Get("engine.ticks"),
		statOverruns: world.Status.Ints.Get("engine.overruns"),
		statPaused:   world.Status.Bools.Get("engine.paused"),
	}
}

// OnTick registers a callback run after every tick, outside the world update lock
// Must be called before Start
func (cs *ClockScheduler) OnTick(fn func(tick uint64)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.onTick = append(cs.onTick, fn)
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		cs.log.WithField("interval", cs.tickInterval).Debug("clock scheduler started")
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
			cs.log.WithField("ticks", cs.tickCount.Load()).Debug("clock scheduler stopped")
		}
	})
}

// Pause suspends ticking; Step still works while paused
func (cs *ClockScheduler) Pause() {
	cs.isPaused.Store(true)
	cs.statPaused.Store(true)
}

// Resume continues ticking from now without catching up on the paused interval
func (cs *ClockScheduler) Resume() {
	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()
	cs.isPaused.Store(false)
	cs.statPaused.Store(false)
}

// IsPaused reports whether ticking is suspended
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// Step runs exactly one tick on the calling goroutine
func (cs *ClockScheduler) Step() {
	cs.processTick()
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	maxBehind := cs.tickInterval * parameter.TickMaxBehind

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Increase sleep interval while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !time.Now().Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				if lag := time.Since(cs.nextTickDeadline); lag > maxBehind {
					cs.statOverruns.Add(1)
					cs.log.WithField("lag", lag).Debug("tick overrun, dropping backlog")
					cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()
			}

			sleepDuration = time.Until(deadline)
			if sleepDuration < 0 {
				sleepDuration = 0
			}
		}

		timer.Reset(sleepDuration)
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	cs.world.Update()

	tick := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(tick))

	cs.mu.RLock()
	callbacks := cs.onTick
	cs.mu.RUnlock()
	for _, fn := range callbacks {
		fn(tick)
	}
}

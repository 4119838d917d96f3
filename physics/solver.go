package physics

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/parameter"
)

// Stage identifies one step of the tick pipeline
type Stage uint8

const (
	StageBroadPhase Stage = iota
	StageIntegrate
	StageSolvePositions
	StageUpdateVelocities
	StageSolveVelocities
	StageSync
)

var stageNames = [...]string{
	StageBroadPhase:       "broadphase",
	StageIntegrate:        "integrate",
	StageSolvePositions:   "solve_pos",
	StageUpdateVelocities: "update_vel",
	StageSolveVelocities:  "solve_vel",
	StageSync:             "sync",
}

// String returns the stage name
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Pipeline returns the stages in the order Tick runs them
func Pipeline() []Stage {
	return []Stage{
		StageBroadPhase,
		StageIntegrate,
		StageSolvePositions,
		StageUpdateVelocities,
		StageSolveVelocities,
		StageSync,
	}
}

// Contact is an overlapping pair found by the position solve
// A precedes B in store order
type Contact struct {
	A, B core.Entity

	// Indices into the tick's particle view
	ia, ib int
}

// StageHook observes each completed stage and its duration
type StageHook func(stage Stage, elapsed time.Duration)

// Solver is the per-world physics context: gravity, contacts of the current tick and the pipeline
// Not safe for concurrent use; one Tick at a time
type Solver struct {
	gravity mgl64.Vec2
	broad   BroadPhase
	hook    StageHook

	contacts []Contact

	// Per-tick view of the store, ids[i] owns view[i]
	ids  []core.Entity
	view []*core.Particle

	ticks  uint64
	inTick bool
}

// NewSolver creates a solver with default gravity and no broad phase
func NewSolver() *Solver {
	return &Solver{
		gravity: mgl64.Vec2{parameter.GravityX, parameter.GravityY},
		broad:   NoBroadPhase{},
	}
}

// Gravity returns the current gravity acceleration
func (s *Solver) Gravity() mgl64.Vec2 {
	return s.gravity
}

// SetGravity changes gravity; call outside a tick
func (s *Solver) SetGravity(g mgl64.Vec2) {
	s.gravity = g
}

// SetBroadPhase replaces the broad phase, nil restores the no-op
func (s *Solver) SetBroadPhase(b BroadPhase) {
	if b == nil {
		b = NoBroadPhase{}
	}
	s.broad = b
}

// SetStageHook installs an observer called after every stage, nil removes it
func (s *Solver) SetStageHook(h StageHook) {
	s.hook = h
}

// Contacts returns a copy of the pairs recorded by the last position solve, in insertion order
func (s *Solver) Contacts() []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// ContactCount returns the number of pairs recorded by the last position solve
func (s *Solver) ContactCount() int {
	return len(s.contacts)
}

// Ticks returns the number of completed ticks
func (s *Solver) Ticks() uint64 {
	return s.ticks
}

// Tick advances every particle in store by DeltaTime
// Stages always run to completion in pipeline order; no error reaches the host
func (s *Solver) Tick(store Store) {
	if s.inTick {
		panic("physics: Tick is not reentrant")
	}
	s.inTick = true
	defer func() { s.inTick = false }()

	s.bind(store)

	s.run(StageBroadPhase, func() { s.broad.CollectPairs(s.view) })
	s.run(StageIntegrate, s.integrate)
	s.run(StageSolvePositions, s.solvePositions)
	s.run(StageUpdateVelocities, s.updateVelocities)
	s.run(StageSolveVelocities, s.solveVelocities)
	s.run(StageSync, func() { s.sync(store) })

	s.ticks++
}

func (s *Solver) run(stage Stage, fn func()) {
	if s.hook == nil {
		fn()
		return
	}
	start := time.Now()
	fn()
	s.hook(stage, time.Since(start))
}

// bind snapshots the store into the index-addressable view used by all stages
func (s *Solver) bind(store Store) {
	s.ids = s.ids[:0]
	s.view = s.view[:0]
	for _, e := range store.Entities() {
		p := store.Particle(e)
		if p == nil {
			continue
		}
		s.ids = append(s.ids, e)
		s.view = append(s.view, p)
	}
}

// pair returns disjoint views of two particles of the current tick
func (s *Solver) pair(a, b int) (*core.Particle, *core.Particle) {
	if a == b {
		panic("physics: self-pair in contact list")
	}
	return s.view[a], s.view[b]
}

package system

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/marbles/engine"
	"github.com/lixenwraith/marbles/engine/status"
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
)

// PhysicsSystem runs the whole solver pipeline once per tick against the world's particles
// The six stages stay inside Solver.Tick so no other system can be scheduled between them
type PhysicsSystem struct {
	world  *engine.World
	solver *physics.Solver
	view   physics.Store
	log    *logrus.Entry

	enabled bool

	statContacts  *atomic.Int64
	statParticles *atomic.Int64
	statTickNs    *status.AtomicFloat
	statStageNs   map[physics.Stage]*status.AtomicFloat
}

// RegisterPhysics installs the solver pipeline into the world's fixed-rate update loop
func RegisterPhysics(world *engine.World, solver *physics.Solver, log *logrus.Logger) *PhysicsSystem {
	s := NewPhysicsSystem(world, solver, log)
	world.AddSystem(s)
	return s
}

// NewPhysicsSystem creates a physics system bound to world
func NewPhysicsSystem(world *engine.World, solver *physics.Solver, log *logrus.Logger) *PhysicsSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &PhysicsSystem{
		world:         world,
		solver:        solver,
		view:          engine.ParticleView(world),
		log:           log.WithField("system", "physics"),
		statContacts:  world.Status.Ints.Get("physics.contacts"),
		statParticles: world.Status.Ints.Get("physics.particles"),
		statTickNs:    world.Status.Floats.Get("physics.tick_ns"),
		statStageNs:   make(map[physics.Stage]*status.AtomicFloat),
	}
	for _, stage := range physics.Pipeline() {
		s.statStageNs[stage] = world.Status.Floats.Get("physics.stage." + stage.String() + "_ns")
	}
	solver.SetStageHook(s.recordStage)

	s.Init()
	return s
}

// Init resets session state
func (s *PhysicsSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *PhysicsSystem) Name() string {
	return "physics"
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Solver returns the underlying solver for gravity changes between ticks
func (s *PhysicsSystem) Solver() *physics.Solver {
	return s.solver
}

// SetEnabled freezes or resumes the simulation without stopping the scheduler
func (s *PhysicsSystem) SetEnabled(enabled bool) {
	if s.enabled != enabled {
		s.log.WithField("enabled", enabled).Debug("physics toggled")
	}
	s.enabled = enabled
}

// Enabled reports whether Update advances the simulation
func (s *PhysicsSystem) Enabled() bool {
	return s.enabled
}

// Update advances the simulation by one fixed step
func (s *PhysicsSystem) Update() {
	if !s.enabled {
		return
	}

	start := time.Now()
	s.solver.Tick(s.view)

	s.statTickNs.Set(float64(time.Since(start).Nanoseconds()))
	s.statContacts.Store(int64(s.solver.ContactCount()))
	s.statParticles.Store(int64(s.world.Particles.Count()))
}

func (s *PhysicsSystem) recordStage(stage physics.Stage, elapsed time.Duration) {
	if stat, ok := s.statStageNs[stage]; ok {
		stat.Set(float64(elapsed.Nanoseconds()))
	}
}

package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/engine"
	"github.com/lixenwraith/marbles/parameter"
)

// CullSystem destroys particles that fell below the despawn line
// It runs last in the tick so the solver never sees an entity vanish mid-pipeline
type CullSystem struct {
	world *engine.World
	log   *logrus.Entry

	despawnY      float64
	intervalTicks int
	ticks         int
	culled        int
}

// NewCullSystem creates a cull system sweeping every interval
func NewCullSystem(world *engine.World, despawnY float64, interval time.Duration, log *logrus.Logger) *CullSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &CullSystem{
		world:         world,
		log:           log.WithField("system", "cull"),
		despawnY:      despawnY,
		intervalTicks: ticksFor(interval),
	}
	s.Init()
	return s
}

// Init resets session state
func (s *CullSystem) Init() {
	s.ticks = 0
	s.culled = 0
}

// Name returns system's name
func (s *CullSystem) Name() string {
	return "cull"
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

// Culled returns the number of entities destroyed since Init
func (s *CullSystem) Culled() int {
	return s.culled
}

// Update sweeps out-of-bounds particles every interval
func (s *CullSystem) Update() {
	s.ticks++
	if s.ticks < s.intervalTicks {
		return
	}
	s.ticks = 0

	var doomed []core.Entity
	for _, e := range s.world.Particles.All() {
		if p, ok := s.world.Particles.Get(e); ok && p.Pos[1] < s.despawnY {
			doomed = append(doomed, e)
		}
	}

	for _, e := range doomed {
		s.world.DestroyEntity(e)
	}
	if len(doomed) > 0 {
		s.culled += len(doomed)
		s.log.WithField("count", len(doomed)).Debug("culled out-of-bounds particles")
	}
}

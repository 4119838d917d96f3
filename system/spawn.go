package system

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/marbles/component"
	"github.com/lixenwraith/marbles/engine"
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
)

// SpawnConfig describes the marble shower
type SpawnConfig struct {
	Interval time.Duration
	Radius   float64
	Origin   mgl64.Vec2
	Jitter   float64
	Seed     uint64
}

// DefaultSpawnConfig returns the marble shower tunables
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Interval: parameter.MarbleSpawnInterval,
		Radius:   parameter.MarbleRadius,
		Origin:   mgl64.Vec2{parameter.MarbleOriginX, parameter.MarbleOriginY},
		Jitter:   parameter.MarbleJitter,
		Seed:     1,
	}
}

// SpawnSystem drops a marble with a random offset and velocity at a fixed period
// Timing counts ticks, so a seeded run spawns identically regardless of wall clock
type SpawnSystem struct {
	world *engine.World
	cfg   SpawnConfig
	log   *logrus.Entry

	rng           *rand.Rand
	intervalTicks int
	ticks         int
	spawned       int
	enabled       bool
}

// NewSpawnSystem creates a marble spawner
func NewSpawnSystem(world *engine.World, cfg SpawnConfig, log *logrus.Logger) *SpawnSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &SpawnSystem{
		world: world,
		cfg:   cfg,
		log:   log.WithField("system", "spawn"),
	}
	s.Init()
	return s
}

// Init resets session state and reseeds the generator
func (s *SpawnSystem) Init() {
	s.rng = rand.New(rand.NewPCG(s.cfg.Seed, s.cfg.Seed^0x9e3779b97f4a7c15))
	s.intervalTicks = ticksFor(s.cfg.Interval)
	s.ticks = 0
	s.spawned = 0
	s.enabled = true
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Spawned returns the number of marbles created since Init
func (s *SpawnSystem) Spawned() int {
	return s.spawned
}

// SetEnabled starts or stops the shower
func (s *SpawnSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update spawns one marble every interval
func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	s.ticks++
	if s.ticks < s.intervalTicks {
		return
	}
	s.ticks = 0

	offset := mgl64.Vec2{s.rng.Float64() - 0.5, s.rng.Float64() - 0.5}.Mul(s.cfg.Jitter)
	pos := s.cfg.Origin.Add(offset)
	vel := mgl64.Vec2{s.rng.Float64() - 0.5, s.rng.Float64() - 0.5}

	p := physics.NewParticle(pos, vel)
	p.Radius = s.cfg.Radius

	e, err := s.world.SpawnParticle(p)
	if err != nil {
		s.log.WithError(err).Warn("marble rejected")
		return
	}
	s.world.Marbles.Set(e, component.MarbleComponent{
		SpawnedAt: time.Now(),
		Index:     s.spawned,
	})
	s.spawned++
}

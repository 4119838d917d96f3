// Package scene loads particle setups from TOML files and provides the built-in demo scenes
package scene

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
)

var (
	ErrUnknownScene = errors.New("unknown scene")
	ErrBadVector    = errors.New("vector must have exactly two components")
)

// Scene is a fully resolved simulation setup
type Scene struct {
	Name      string
	Gravity   mgl64.Vec2
	Spawner   *Spawner
	Particles []core.Particle
}

// Spawner configures the marble shower and its despawn line
type Spawner struct {
	Interval time.Duration
	Radius   float64
	DespawnY float64
	Origin   mgl64.Vec2
	Jitter   float64
	Seed     uint64
}

// DefaultSpawner returns the marble shower tunables
func DefaultSpawner() *Spawner {
	return &Spawner{
		Interval: parameter.MarbleSpawnInterval,
		Radius:   parameter.MarbleRadius,
		DespawnY: parameter.MarbleDespawnY,
		Origin:   mgl64.Vec2{parameter.MarbleOriginX, parameter.MarbleOriginY},
		Jitter:   parameter.MarbleJitter,
		Seed:     1,
	}
}

// On-disk layout; pointer fields distinguish absent keys from zero values
type sceneFile struct {
	Gravity  []float64      `toml:"gravity,omitempty"`
	Spawner  *spawnerFile   `toml:"spawner,omitempty"`
	Particle []particleFile `toml:"particle,omitempty"`
}

type spawnerFile struct {
	IntervalMs *int64    `toml:"interval_ms,omitempty"`
	Radius     *float64  `toml:"radius,omitempty"`
	DespawnY   *float64  `toml:"despawn_y,omitempty"`
	Origin     []float64 `toml:"origin,omitempty"`
	Jitter     *float64  `toml:"jitter,omitempty"`
	Seed       *int64    `toml:"seed,omitempty"`
}

type particleFile struct {
	Pos         []float64 `toml:"pos"`
	Vel         []float64 `toml:"vel,omitempty"`
	Mass        *float64  `toml:"mass,omitempty"`
	Radius      *float64  `toml:"radius,omitempty"`
	Restitution *float64  `toml:"restitution,omitempty"`
}

// Load reads and parses a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	s.Name = path
	return s, nil
}

// Parse decodes a TOML scene; missing particle fields take solver defaults
func Parse(data []byte) (*Scene, error) {
	var f sceneFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := &Scene{Gravity: mgl64.Vec2{parameter.GravityX, parameter.GravityY}}
	if f.Gravity != nil {
		g, err := vec2(f.Gravity)
		if err != nil {
			return nil, fmt.Errorf("gravity: %w", err)
		}
		s.Gravity = g
	}

	if f.Spawner != nil {
		sp, err := f.Spawner.resolve()
		if err != nil {
			return nil, fmt.Errorf("spawner: %w", err)
		}
		s.Spawner = sp
	}

	s.Particles = make([]core.Particle, 0, len(f.Particle))
	for i, pf := range f.Particle {
		p, err := pf.resolve()
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		s.Particles = append(s.Particles, p)
	}
	return s, nil
}

// Save writes s as TOML with every particle field explicit
func Save(path string, s *Scene) error {
	f := sceneFile{Gravity: []float64{s.Gravity[0], s.Gravity[1]}}
	if sp := s.Spawner; sp != nil {
		ms := sp.Interval.Milliseconds()
		seed := int64(sp.Seed)
		f.Spawner = &spawnerFile{
			IntervalMs: &ms,
			Radius:     &sp.Radius,
			DespawnY:   &sp.DespawnY,
			Origin:     []float64{sp.Origin[0], sp.Origin[1]},
			Jitter:     &sp.Jitter,
			Seed:       &seed,
		}
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		f.Particle = append(f.Particle, particleFile{
			Pos:         []float64{p.Pos[0], p.Pos[1]},
			Vel:         []float64{p.Vel[0], p.Vel[1]},
			Mass:        &p.Mass,
			Radius:      &p.Radius,
			Restitution: &p.Restitution,
		})
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func (f *spawnerFile) resolve() (*Spawner, error) {
	sp := DefaultSpawner()
	if f.IntervalMs != nil {
		if *f.IntervalMs <= 0 {
			return nil, fmt.Errorf("interval_ms must be positive, got %d", *f.IntervalMs)
		}
		sp.Interval = time.Duration(*f.IntervalMs) * time.Millisecond
	}
	if f.Radius != nil {
		sp.Radius = *f.Radius
	}
	if f.DespawnY != nil {
		sp.DespawnY = *f.DespawnY
	}
	if f.Origin != nil {
		o, err := vec2(f.Origin)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		sp.Origin = o
	}
	if f.Jitter != nil {
		sp.Jitter = *f.Jitter
	}
	if f.Seed != nil {
		sp.Seed = uint64(*f.Seed)
	}
	if sp.Radius <= 0 {
		return nil, fmt.Errorf("radius: %w", physics.ErrNonPositiveRadius)
	}
	return sp, nil
}

func (f *particleFile) resolve() (core.Particle, error) {
	pos, err := vec2(f.Pos)
	if err != nil {
		return core.Particle{}, fmt.Errorf("pos: %w", err)
	}
	var vel mgl64.Vec2
	if f.Vel != nil {
		if vel, err = vec2(f.Vel); err != nil {
			return core.Particle{}, fmt.Errorf("vel: %w", err)
		}
	}

	p := physics.NewParticle(pos, vel)
	if f.Mass != nil {
		p.Mass = *f.Mass
	}
	if f.Radius != nil {
		p.Radius = *f.Radius
	}
	if f.Restitution != nil {
		p.Restitution = *f.Restitution
	}
	if err := physics.Validate(&p); err != nil {
		return core.Particle{}, err
	}
	return p, nil
}

func vec2(v []float64) (mgl64.Vec2, error) {
	if len(v) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("%w: got %d", ErrBadVector, len(v))
	}
	return mgl64.Vec2{v[0], v[1]}, nil
}

package scene

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/engine"
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
	"github.com/lixenwraith/marbles/system"
)

// Install populates world with the scene's particles and registers the systems it needs
// The physics system is always registered; the spawner adds spawn and cull systems
func (s *Scene) Install(world *engine.World, solver *physics.Solver, log *logrus.Logger) (*system.PhysicsSystem, error) {
	solver.SetGravity(s.Gravity)

	spawned := make([]core.Entity, 0, len(s.Particles))
	for i, p := range s.Particles {
		e, err := world.SpawnParticle(p)
		if err != nil {
			for _, done := range spawned {
				world.DestroyEntity(done)
			}
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		spawned = append(spawned, e)
	}

	phys := system.RegisterPhysics(world, solver, log)

	if sp := s.Spawner; sp != nil {
		world.AddSystem(system.NewSpawnSystem(world, system.SpawnConfig{
			Interval: sp.Interval,
			Radius:   sp.Radius,
			Origin:   sp.Origin,
			Jitter:   sp.Jitter,
			Seed:     sp.Seed,
		}, log))
		world.AddSystem(system.NewCullSystem(world, sp.DespawnY, parameter.MarbleCullInterval, log))
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"scene":     s.Name,
			"particles": len(spawned),
			"spawner":   s.Spawner != nil,
			"gravity":   s.Gravity,
		}).Info("scene installed")
	}
	return phys, nil
}

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/marbles/engine"
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
	"github.com/lixenwraith/marbles/scene"
)

// runHeadless steps the scene as fast as possible and returns the final state checksum
func runHeadless(sc *scene.Scene, ticks int, log *logrus.Logger) (uint64, error) {
	world := engine.NewWorld()
	solver := physics.NewSolver()
	if _, err := sc.Install(world, solver, log); err != nil {
		return 0, err
	}

	scheduler := engine.NewClockScheduler(world, parameter.TickInterval, log)
	for i := 0; i < ticks; i++ {
		scheduler.Step()
	}

	var sum uint64
	world.RunSafe(func() {
		sum = physics.Checksum(engine.ParticleView(world))
	})

	log.WithFields(logrus.Fields(world.Status.Snapshot())).
		WithField("checksum", sum).
		Info("headless run complete")
	return sum, nil
}

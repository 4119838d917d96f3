package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/marbles/audio"
	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/engine"
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
	"github.com/lixenwraith/marbles/render"
	"github.com/lixenwraith/marbles/scene"
	"github.com/lixenwraith/marbles/system"
)

type interactiveOptions struct {
	sound bool
	scale float64
}

// runInteractive drives the scene on the clock scheduler and renders every tick
func runInteractive(sc *scene.Scene, log *logrus.Logger, opts interactiveOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	world := engine.NewWorld()
	solver := physics.NewSolver()
	phys, err := sc.Install(world, solver, log)
	if err != nil {
		return err
	}

	if opts.sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the simulation runs silent
			log.WithError(err).Warn("audio initialization failed")
		} else {
			defer sm.Cleanup()
			world.AddSystem(system.NewAudioSystem(solver, sm))
		}
	}

	renderer := render.NewRenderer(screen)
	if opts.scale > 0 {
		renderer.Camera.Scale = opts.scale
	}

	scheduler := engine.NewClockScheduler(world, parameter.TickInterval, log)
	scheduler.OnTick(func(tick uint64) {
		world.RunSafe(func() {
			renderer.Draw(world, statusLine(sc.Name, tick, world, solver, scheduler.IsPaused()))
		})
	})
	scheduler.Start()
	defer scheduler.Stop()

	savedGravity := solver.Gravity()
	if savedGravity == (mgl64.Vec2{}) {
		savedGravity = mgl64.Vec2{parameter.GravityX, parameter.GravityY}
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() != tcell.KeyRune:
			case ev.Rune() == 'q':
				return nil
			case ev.Rune() == ' ':
				if scheduler.IsPaused() {
					scheduler.Resume()
				} else {
					scheduler.Pause()
				}
			case ev.Rune() == '.':
				if scheduler.IsPaused() {
					scheduler.Step()
				}
			case ev.Rune() == 'g':
				world.RunSafe(func() {
					if solver.Gravity() == (mgl64.Vec2{}) {
						solver.SetGravity(savedGravity)
					} else {
						solver.SetGravity(mgl64.Vec2{})
					}
				})
			case ev.Rune() == 'f':
				world.RunSafe(func() {
					phys.SetEnabled(!phys.Enabled())
				})
			case ev.Rune() == '+':
				world.RunSafe(func() { renderer.Camera.Zoom(0.8) })
			case ev.Rune() == '-':
				world.RunSafe(func() { renderer.Camera.Zoom(1.25) })
			}
		}
	}
}

func statusLine(name string, tick uint64, world *engine.World, solver *physics.Solver, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf(" %s | tick %d | particles %d | contacts %d | g %.2f,%.2f | %s | q quit, space pause, g gravity",
		name, tick, world.Particles.Count(), solver.ContactCount(), solver.Gravity()[0], solver.Gravity()[1], state)
}

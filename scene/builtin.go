package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/parameter"
	"github.com/lixenwraith/marbles/physics"
)

var builtins = map[string]func() *Scene{
	"marbles":   marbles,
	"collision": collision,
	"single":    single,
}

// Builtin returns a fresh copy of a named demo scene
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s := build()
	s.Name = name
	return s, nil
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultGravity() mgl64.Vec2 {
	return mgl64.Vec2{parameter.GravityX, parameter.GravityY}
}

// Endless shower falling under gravity, culled below the despawn line
func marbles() *Scene {
	return &Scene{
		Gravity: defaultGravity(),
		Spawner: DefaultSpawner(),
	}
}

// Two equal particles approaching head-on without gravity
func collision() *Scene {
	a := physics.NewParticle(mgl64.Vec2{-20, 0}, mgl64.Vec2{6, 0})
	b := physics.NewParticle(mgl64.Vec2{20, 0}, mgl64.Vec2{-6, 0})
	return &Scene{
		Particles: []core.Particle{a, b},
	}
}

func single() *Scene {
	p := physics.NewParticle(mgl64.Vec2{}, mgl64.Vec2{2, 0})
	p.Radius = parameter.MarbleRadius
	return &Scene{
		Gravity:   defaultGravity(),
		Particles: []core.Particle{p},
	}
}

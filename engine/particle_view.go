package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/component"
	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/physics"
)

// particleView exposes the world's particle store to the solver
type particleView struct {
	world *World
}

// ParticleView adapts the world to physics.Store and physics.Presenter
// The sync stage writes into the world's TransformComponent
func ParticleView(w *World) physics.Store {
	return particleView{world: w}
}

// Entities implements physics.Store
func (v particleView) Entities() []core.Entity {
	return v.world.Particles.All()
}

// Particle implements physics.Store
func (v particleView) Particle(e core.Entity) *core.Particle {
	c := v.world.Particles.Ref(e)
	if c == nil {
		return nil
	}
	return &c.Particle
}

// Present implements physics.Presenter
func (v particleView) Present(e core.Entity, translation mgl64.Vec3) {
	if t := v.world.Transforms.Ref(e); t != nil {
		t.Translation = translation
		return
	}
	v.world.Transforms.Set(e, component.TransformComponent{Translation: translation})
}

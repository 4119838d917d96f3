package component

import (
	"github.com/lixenwraith/marbles/core"
)

// ParticleComponent is the solver-owned physical state of an entity
// Embeds core.Particle so systems can hand &c.Particle straight to the solver
type ParticleComponent struct {
	core.Particle // Pos, PosPrev, Vel, VelPreSolve (mgl64.Vec2), Mass, Restitution, Radius
}

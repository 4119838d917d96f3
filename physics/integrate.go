package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/core"
)

// Integrate advances one particle by DeltaTime with semi-implicit Euler: v += F/m*dt; p += v*dt
// Gravity is the only external force; PosPrev and VelPreSolve are snapshotted for the solve stages
func Integrate(p *core.Particle, gravity mgl64.Vec2) {
	weight := gravity.Mul(p.Mass)
	external := weight

	p.PosPrev = p.Pos
	p.Vel = p.Vel.Add(external.Mul(1 / p.Mass * DeltaTime))
	p.Pos = p.Pos.Add(p.Vel.Mul(DeltaTime))

	p.VelPreSolve = p.Vel
}

func (s *Solver) integrate() {
	for _, p := range s.view {
		Integrate(p, s.gravity)
	}
}

package core

import "github.com/go-gl/mathgl/mgl64"

// Particle is the per-entity record consumed and produced by the solver
type Particle struct {
	// Pos is the current position
	Pos mgl64.Vec2
	// PosPrev is the position at the start of the current tick, written by the integrator
	PosPrev mgl64.Vec2
	// Vel is the current velocity
	Vel mgl64.Vec2
	// VelPreSolve is the velocity snapshot after integration, before the position solve
	VelPreSolve mgl64.Vec2

	Mass        float64 // > 0
	Restitution float64 // [0, 1]
	Radius      float64 // > 0
}

// InverseMass returns 1/Mass
func (p *Particle) InverseMass() float64 {
	return 1 / p.Mass
}

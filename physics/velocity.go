package physics

// updateVelocities replaces the integrated velocity with the one implied by the projected position
func (s *Solver) updateVelocities() {
	for _, p := range s.view {
		p.Vel = p.Pos.Sub(p.PosPrev).Mul(1 / DeltaTime)
	}
}

// solveVelocities applies a restitution impulse along each contact normal, in insertion order
// The bounce magnitude is referenced to pre-solve velocities so the projection is not counted twice
func (s *Solver) solveVelocities() {
	for _, c := range s.contacts {
		a, b := s.pair(c.ia, c.ib)

		ab := b.Pos.Sub(a.Pos)
		dist := ab.Len()
		if dist == 0 {
			continue
		}
		normal := ab.Mul(1 / dist)

		velNormalPre := a.VelPreSolve.Sub(b.VelPreSolve).Dot(normal)
		velNormal := a.Vel.Sub(b.Vel).Dot(normal)
		restitution := (a.Restitution + b.Restitution) / 2

		wA := a.InverseMass()
		wB := b.InverseMass()
		wSum := wA + wB

		dv := normal.Mul(-velNormal - restitution*velNormalPre)
		a.Vel = a.Vel.Add(dv.Mul(wA / wSum))
		b.Vel = b.Vel.Sub(dv.Mul(wB / wSum))
	}
}

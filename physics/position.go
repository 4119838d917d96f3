package physics

import "math"

// solvePositions runs one Gauss-Seidel sweep of circle non-penetration over every unordered pair
// Later pairs see positions already moved by earlier ones
func (s *Solver) solvePositions() {
	s.contacts = s.contacts[:0]

	n := len(s.view)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			a, b := s.pair(i, j)

			ab := b.Pos.Sub(a.Pos)
			distSq := ab.Dot(ab)
			combined := a.Radius + b.Radius
			if distSq >= combined*combined {
				continue
			}
			// Coincident centers have no normal; skip this tick and let motion separate them
			if distSq == 0 {
				continue
			}

			s.contacts = append(s.contacts, Contact{A: s.ids[i], B: s.ids[j], ia: i, ib: j})

			dist := math.Sqrt(distSq)
			penetration := combined - dist
			normal := ab.Mul(1 / dist)

			wA := a.InverseMass()
			wB := b.InverseMass()
			wSum := wA + wB

			a.Pos = a.Pos.Sub(normal.Mul(wA / wSum * penetration))
			b.Pos = b.Pos.Add(normal.Mul(wB / wSum * penetration))
		}
	}
}

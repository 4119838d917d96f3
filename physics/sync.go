package physics

import "github.com/go-gl/mathgl/mgl64"

// sync publishes resolved positions to the host's presentation transforms
func (s *Solver) sync(store Store) {
	presenter, ok := store.(Presenter)
	if !ok {
		return
	}
	for i, p := range s.view {
		presenter.Present(s.ids[i], mgl64.Vec3{p.Pos[0], p.Pos[1], 0})
	}
}

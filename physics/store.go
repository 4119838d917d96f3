package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/core"
)

// Store is the host-owned particle collection the solver mutates in place
// Hosts must not add, remove or mutate particles while a tick is running
type Store interface {
	// Entities returns all particle identifiers in a stable order
	// Pair enumeration follows this order, so results are reproducible for a given ordering
	Entities() []core.Entity

	// Particle returns the mutable record of e, nil if e has no particle
	Particle(e core.Entity) *core.Particle
}

// Presenter receives resolved positions during the sync stage
// A Store that also implements Presenter gets its presentation transforms updated every tick
type Presenter interface {
	Present(e core.Entity, translation mgl64.Vec3)
}

// SliceStore is a minimal array-of-structs particle store
// Removal keeps the remaining order intact
type SliceStore struct {
	nextID    core.Entity
	ids       []core.Entity
	particles []*core.Particle
	index     map[core.Entity]int
}

// NewSliceStore creates an empty store
func NewSliceStore() *SliceStore {
	return &SliceStore{
		nextID: 1,
		index:  make(map[core.Entity]int),
	}
}

// Add stores a copy of p and returns its new identifier
func (s *SliceStore) Add(p core.Particle) core.Entity {
	e := s.nextID
	s.nextID++

	rec := p
	s.index[e] = len(s.ids)
	s.ids = append(s.ids, e)
	s.particles = append(s.particles, &rec)
	return e
}

// Remove deletes e, reporting whether it was present
func (s *SliceStore) Remove(e core.Entity) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	delete(s.index, e)

	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	s.particles = append(s.particles[:i], s.particles[i+1:]...)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
	return true
}

// Len returns the number of particles
func (s *SliceStore) Len() int {
	return len(s.ids)
}

// Entities implements Store
func (s *SliceStore) Entities() []core.Entity {
	return s.ids
}

// Particle implements Store
func (s *SliceStore) Particle(e core.Entity) *core.Particle {
	i, ok := s.index[e]
	if !ok {
		return nil
	}
	return s.particles[i]
}

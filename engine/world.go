package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/marbles/component"
	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/engine/status"
	"github.com/lixenwraith/marbles/physics"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Metrics shared by scheduler and systems
	Status *status.Registry

	Particles  *Store[component.ParticleComponent]
	Transforms *Store[component.TransformComponent]
	Marbles    *Store[component.MarbleComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Status:       status.NewRegistry(),
		Particles:    NewStore[component.ParticleComponent](),
		Transforms:   NewStore[component.TransformComponent](),
		Marbles:      NewStore[component.MarbleComponent](),
		systems:      make([]System, 0),
	}

	w.allStores = []AnyStore{
		w.Particles,
		w.Transforms,
		w.Marbles,
	}

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// SpawnParticle validates p and creates an entity carrying it and a matching transform
// Invalid records never enter the world, so the solver only sees valid particles
func (w *World) SpawnParticle(p core.Particle) (core.Entity, error) {
	if err := physics.Validate(&p); err != nil {
		return 0, fmt.Errorf("spawn particle: %w", err)
	}

	e := w.CreateEntity()
	w.Particles.Set(e, component.ParticleComponent{Particle: p})
	w.Transforms.Set(e, component.TransformComponent{
		Translation: p.Pos.Vec3(0),
	})
	return e, nil
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world and keeps systems sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// InitSystems resets every system's session state
func (w *World) InitSystems() {
	for _, s := range w.Systems() {
		s.Init()
	}
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

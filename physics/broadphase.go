package physics

import "github.com/lixenwraith/marbles/core"

// BroadPhase is the coarse candidate-pair stage
// It runs before integration so an implementation can snapshot pre-integration positions
type BroadPhase interface {
	CollectPairs(particles []*core.Particle)
}

// NoBroadPhase leaves candidate selection to the all-pairs narrow phase
type NoBroadPhase struct{}

// CollectPairs implements BroadPhase
func (NoBroadPhase) CollectPairs([]*core.Particle) {}

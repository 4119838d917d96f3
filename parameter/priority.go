package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn   = 10  // Before physics, new marbles join this tick
	PriorityPhysics = 100 // The full solver pipeline
	PriorityAudio   = 200 // After physics, reads contact count
	PriorityCull    = 900 // After everything, despawns out-of-bounds marbles
)

package parameter

import "time"

// Marble shower defaults
const (
	// MarbleSpawnInterval is the period between marble spawns
	MarbleSpawnInterval = 200 * time.Millisecond

	// MarbleCullInterval is the period between out-of-bounds sweeps
	MarbleCullInterval = 200 * time.Millisecond

	// MarbleRadius is the collider radius of a spawned marble
	MarbleRadius = 0.5

	// MarbleOriginX, MarbleOriginY is the spawn center
	MarbleOriginX = 0.0
	MarbleOriginY = 3.0

	// MarbleJitter scales the uniform [-0.5, 0.5) spawn offset
	MarbleJitter = 0.5

	// MarbleDespawnY is the height below which marbles are removed
	MarbleDespawnY = -20.0
)

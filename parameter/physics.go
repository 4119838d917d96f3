package parameter

// Solver timestep
const (
	// DeltaTime is the fixed simulation step in seconds (60 Hz)
	// Never varied tick-to-tick; changing it requires re-deriving PosPrev for every particle
	DeltaTime = 1.0 / 60.0
)

// Default gravity acceleration, y points up
const (
	GravityX = 0.0
	GravityY = -9.81
)

// Particle defaults used when the host does not supply a field
const (
	DefaultMass        = 1.0
	DefaultRestitution = 0.3
	DefaultRadius      = 5.0
)

// PenetrationSlack is the floating-point tolerance on resolved overlaps
const PenetrationSlack = 1e-4

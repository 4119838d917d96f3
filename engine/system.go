package engine

// System is a unit of per-tick logic run by World.Update in Priority order
type System interface {
	// Init resets session state
	Init()

	// Name identifies the system in logs and metrics
	Name() string

	// Priority orders systems, lower values run first
	Priority() int

	// Update runs one tick; the caller holds the world update lock
	Update()
}

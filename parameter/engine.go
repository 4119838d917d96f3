package parameter

import "time"

// Clock & Scheduling
const (
	// TickInterval is the wall-clock period of one physics tick, matching DeltaTime
	TickInterval = time.Second / 60

	// TickMaxBehind is the number of intervals the scheduler may lag before it drops the backlog
	TickMaxBehind = 2

	// StoreInitialCapacity is the pre-allocated entity slice size of a component store
	StoreInitialCapacity = 64
)

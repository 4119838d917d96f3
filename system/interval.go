package system

import (
	"time"

	"github.com/lixenwraith/marbles/parameter"
)

// ticksFor converts a wall-clock period to whole ticks, at least one
func ticksFor(d time.Duration) int {
	n := int(d / parameter.TickInterval)
	if n < 1 {
		return 1
	}
	return n
}

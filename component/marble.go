package component

import "time"

// MarbleComponent tags entities created by the marble spawner
type MarbleComponent struct {
	SpawnedAt time.Time
	Index     int // Spawn sequence number, drives render color
}

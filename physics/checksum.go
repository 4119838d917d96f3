package physics

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Checksum hashes position and velocity of every particle in store order
// Two runs from the same initial state on the same platform produce the same value
func Checksum(store Store) uint64 {
	h := xxh3.New()
	var buf [8]byte
	for _, e := range store.Entities() {
		p := store.Particle(e)
		if p == nil {
			continue
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		h.Write(buf[:])
		for _, f := range [...]float64{p.Pos[0], p.Pos[1], p.Vel[0], p.Vel[1]} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

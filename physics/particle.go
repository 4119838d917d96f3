package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/core"
	"github.com/lixenwraith/marbles/parameter"
)

// DeltaTime is the fixed simulation step in seconds
const DeltaTime = parameter.DeltaTime

// Precondition violations reported by Validate
var (
	ErrNonPositiveMass   = errors.New("mass must be positive")
	ErrNonPositiveRadius = errors.New("radius must be positive")
	ErrRestitutionRange  = errors.New("restitution must be within [0, 1]")
	ErrNonFinite         = errors.New("non-finite value")
)

// NewParticle returns a Verlet-consistent starting record at pos moving with vel
// PosPrev is pos - vel*DeltaTime; mass, restitution and radius take the defaults
func NewParticle(pos, vel mgl64.Vec2) core.Particle {
	return core.Particle{
		Pos:         pos,
		PosPrev:     pos.Sub(vel.Mul(DeltaTime)),
		Vel:         vel,
		Mass:        parameter.DefaultMass,
		Restitution: parameter.DefaultRestitution,
		Radius:      parameter.DefaultRadius,
	}
}

// Validate checks the preconditions the solver relies on but never checks itself
// Hosts call it when a particle is spawned; the solver assumes every record passed it
func Validate(p *core.Particle) error {
	vectors := [...]struct {
		name string
		v    mgl64.Vec2
	}{
		{"pos", p.Pos},
		{"pos_prev", p.PosPrev},
		{"vel", p.Vel},
		{"vel_pre_solve", p.VelPreSolve},
	}
	for _, f := range vectors {
		if !finite(f.v[0]) || !finite(f.v[1]) {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrNonFinite)
		}
	}

	switch {
	case !finite(p.Mass):
		return fmt.Errorf("mass %v: %w", p.Mass, ErrNonFinite)
	case p.Mass <= 0:
		return fmt.Errorf("mass %v: %w", p.Mass, ErrNonPositiveMass)
	case !finite(p.Radius):
		return fmt.Errorf("radius %v: %w", p.Radius, ErrNonFinite)
	case p.Radius <= 0:
		return fmt.Errorf("radius %v: %w", p.Radius, ErrNonPositiveRadius)
	case !finite(p.Restitution):
		return fmt.Errorf("restitution %v: %w", p.Restitution, ErrNonFinite)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("restitution %v: %w", p.Restitution, ErrRestitutionRange)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

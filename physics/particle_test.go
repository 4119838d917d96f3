package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/core"
)

func TestNewParticleDefaults(t *testing.T) {
	pos := mgl64.Vec2{3, 4}
	vel := mgl64.Vec2{6, -12}
	p := NewParticle(pos, vel)

	if p.Pos != pos || p.Vel != vel {
		t.Errorf("Expected pos %v vel %v, got %v %v", pos, vel, p.Pos, p.Vel)
	}
	wantPrev := mgl64.Vec2{3 - 0.1, 4 + 0.2}
	if !approxVec(p.PosPrev, wantPrev, 1e-12) {
		t.Errorf("Expected PosPrev %v, got %v", wantPrev, p.PosPrev)
	}
	if p.VelPreSolve != (mgl64.Vec2{}) {
		t.Errorf("Expected zero VelPreSolve, got %v", p.VelPreSolve)
	}
	if p.Mass != 1 || p.Restitution != 0.3 || p.Radius != 5 {
		t.Errorf("Expected mass 1, restitution 0.3, radius 5, got %v, %v, %v", p.Mass, p.Restitution, p.Radius)
	}
	if err := Validate(&p); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := NewParticle(mgl64.Vec2{}, mgl64.Vec2{})

	tests := []struct {
		name   string
		mutate func(p *core.Particle)
		want   error
	}{
		{"zero mass", func(p *core.Particle) { p.Mass = 0 }, ErrNonPositiveMass},
		{"negative mass", func(p *core.Particle) { p.Mass = -2 }, ErrNonPositiveMass},
		{"infinite mass", func(p *core.Particle) { p.Mass = math.Inf(1) }, ErrNonFinite},
		{"zero radius", func(p *core.Particle) { p.Radius = 0 }, ErrNonPositiveRadius},
		{"restitution above one", func(p *core.Particle) { p.Restitution = 1.5 }, ErrRestitutionRange},
		{"negative restitution", func(p *core.Particle) { p.Restitution = -0.1 }, ErrRestitutionRange},
		{"nan position", func(p *core.Particle) { p.Pos[0] = math.NaN() }, ErrNonFinite},
		{"infinite velocity", func(p *core.Particle) { p.Vel[1] = math.Inf(-1) }, ErrNonFinite},
		{"restitution bounds inclusive", func(p *core.Particle) { p.Restitution = 1 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			err := Validate(&p)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestStageString(t *testing.T) {
	names := []string{"broadphase", "integrate", "solve_pos", "update_vel", "solve_vel", "sync"}
	for i, stage := range Pipeline() {
		if stage.String() != names[i] {
			t.Errorf("Expected %q, got %q", names[i], stage.String())
		}
	}
	if Stage(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %q", Stage(42).String())
	}
}

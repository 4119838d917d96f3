package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/parameter"
)

// Camera maps world coordinates (y up) onto terminal cells (row down)
type Camera struct {
	Center mgl64.Vec2
	Scale  float64 // World units per column
	Aspect float64 // Cell height over width
}

// NewCamera returns a camera centered on the origin at the default zoom
func NewCamera() Camera {
	return Camera{
		Scale:  parameter.CameraDefaultScale,
		Aspect: parameter.CameraCellAspect,
	}
}

// Project returns the cell containing world point p on a width×height screen
func (c Camera) Project(p mgl64.Vec3, width, height int) (col, row int) {
	dx := (p[0] - c.Center[0]) / c.Scale
	dy := (p[1] - c.Center[1]) / (c.Scale * c.Aspect)
	col = width/2 + int(math.Round(dx))
	row = height/2 - int(math.Round(dy))
	return col, row
}

// Unproject returns the world point at the center of a cell
func (c Camera) Unproject(col, row, width, height int) mgl64.Vec2 {
	return mgl64.Vec2{
		c.Center[0] + float64(col-width/2)*c.Scale,
		c.Center[1] - float64(row-height/2)*c.Scale*c.Aspect,
	}
}

// Zoom multiplies the scale; factor > 1 zooms out
func (c *Camera) Zoom(factor float64) {
	if factor > 0 {
		c.Scale *= factor
	}
}

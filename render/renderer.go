// Package render draws the particle world into a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/engine"
	"github.com/lixenwraith/marbles/parameter"
)

var marblePalette = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorOrange,
	tcell.ColorYellow,
	tcell.ColorGreen,
	tcell.ColorAqua,
	tcell.ColorBlue,
	tcell.ColorFuchsia,
}

// Renderer draws particles at their synced transforms
// Positions come only from TransformComponent so the frame shows resolved state
type Renderer struct {
	screen tcell.Screen
	Camera Camera

	background tcell.Style
	particle   tcell.Style
	hud        tcell.Style
}

// NewRenderer creates a renderer over an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:     screen,
		Camera:     NewCamera(),
		background: tcell.StyleDefault,
		particle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		hud:        tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	}
}

// Draw renders one frame and an optional status line
// Caller holds the world's update lock
func (r *Renderer) Draw(world *engine.World, status string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	for _, e := range world.Transforms.All() {
		tr, ok := world.Transforms.Get(e)
		if !ok {
			continue
		}
		radius := 0.0
		if p, ok := world.Particles.Get(e); ok {
			radius = p.Radius
		}

		style := r.particle
		if m, ok := world.Marbles.Get(e); ok {
			style = style.Foreground(marblePalette[m.Index%len(marblePalette)])
		}
		r.drawDisc(tr.Translation, radius, style, width, height)
	}

	if status != "" {
		r.drawStatus(status, width, height)
	}
	r.screen.Show()
}

// drawDisc fills every cell whose center lies inside the circle
// Falls back to a single glyph when the circle is smaller than a cell
func (r *Renderer) drawDisc(center mgl64.Vec3, radius float64, style tcell.Style, width, height int) {
	col, row := r.Camera.Project(center, width, height)

	spanCols := int(radius/r.Camera.Scale) + 1
	spanRows := int(radius/(r.Camera.Scale*r.Camera.Aspect)) + 1
	c := center.Vec2()
	filled := false

	for y := row - spanRows; y <= row+spanRows; y++ {
		if y < 0 || y >= height {
			continue
		}
		for x := col - spanCols; x <= col+spanCols; x++ {
			if x < 0 || x >= width {
				continue
			}
			if r.Camera.Unproject(x, y, width, height).Sub(c).Len() <= radius {
				r.screen.SetContent(x, y, parameter.ParticleFillGlyph, nil, style)
				filled = true
			}
		}
	}

	if !filled && col >= 0 && col < width && row >= 0 && row < height {
		r.screen.SetContent(col, row, parameter.ParticleGlyph, nil, style)
	}
}

func (r *Renderer) drawStatus(status string, width, height int) {
	row := height - 1
	x := 0
	for _, ch := range status {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, r.hud)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, r.hud)
	}
}

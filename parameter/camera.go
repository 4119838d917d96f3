package parameter

// Terminal camera
const (
	// CameraDefaultScale is world units per terminal column
	CameraDefaultScale = 0.25

	// CameraCellAspect compensates for terminal cells being roughly twice as tall as wide
	CameraCellAspect = 2.0

	// ParticleGlyph is drawn for a particle smaller than one cell
	ParticleGlyph = '●'

	// ParticleFillGlyph fills the body of a particle spanning several cells
	ParticleFillGlyph = '█'
)

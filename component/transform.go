package component

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent is the host's presentation transform, written by the sync stage
type TransformComponent struct {
	Translation mgl64.Vec3
}

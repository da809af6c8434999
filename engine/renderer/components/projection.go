package components

import "github.com/spaghettifunk/orbit/engine/math"

// DefaultFOV is the vertical field of view used by Perspective (60°).
const DefaultFOV float32 = math.K_PI / 3.0

const (
	DefaultZNear float32 = 0.1
	DefaultZFar  float32 = 1024.0
)

// Perspective builds the projection for a viewport of the given size.
// The aspect ratio is height/width, which scales the x axis.
// zNear must differ from zFar.
func Perspective(width, height, zNear, zFar float32) math.Mat4 {
	return PerspectiveFOV(DefaultFOV, width, height, zNear, zFar)
}

func PerspectiveFOV(fov, width, height, zNear, zFar float32) math.Mat4 {
	aspectRatio := height / width
	return math.NewMat4Perspective(fov, aspectRatio, zNear, zFar)
}

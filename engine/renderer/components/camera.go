package components

import (
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/math"
)

/**
 * @brief Represents the eye the scene is rendered from. The view matrix is
 * never cached: it is rebuilt from Position, Direction and Up every time it
 * is asked for, so the orbit update only has to move these vectors.
 */
type Camera struct {
	/** @brief The position of this camera. */
	Position math.Vec3
	/** @brief The direction the camera looks at. Does not need to be unit length. */
	Direction math.Vec3
	/** @brief The up vector. Must not be parallel to Direction. */
	Up math.Vec3
}

// NewDefaultCamera returns a camera at (0,0,-1) looking down +z.
func NewDefaultCamera() Camera {
	return Camera{
		Up:        math.NewVec3(0.0, 1.0, 0.0),
		Direction: math.NewVec3(0.0, 0.0, 1.0),
		Position:  math.NewVec3(0.0, 0.0, -1.0),
	}
}

// ViewMatrix maps world space into this camera's view space.
func (c Camera) ViewMatrix() math.Mat4 {
	return math.NewMat4View(c.Position, c.Direction, c.Up)
}

// Validate reports core.ErrDegenerateCamera when the view basis cannot be
// built, i.e. Up is parallel to Direction or Direction is zero.
func (c Camera) Validate() error {
	if c.Direction.LengthSquared() <= math.K_FLOAT_EPSILON {
		return core.ErrDegenerateCamera
	}
	s := c.Up.Cross(c.Direction.Normalize())
	if s.LengthSquared() <= math.K_FLOAT_EPSILON {
		return core.ErrDegenerateCamera
	}
	return nil
}

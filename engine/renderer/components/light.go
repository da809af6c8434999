package components

import "github.com/spaghettifunk/orbit/engine/math"

// Light is a point light; its position reaches the shaders as `u_light`.
type Light struct {
	Position math.Vec3
}

func NewLight(position math.Vec3) Light {
	return Light{Position: position}
}

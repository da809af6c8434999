package simulation

import (
	"github.com/spaghettifunk/orbit/engine/math"
)

type OrbitConfig struct {
	LightRadius  float32 `toml:"light_radius"`
	CameraRadius float32 `toml:"camera_radius"`
	// Delay divides the elapsed time: one full turn takes 2π·Delay units.
	Delay float32 `toml:"delay"`
}

func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		LightRadius:  10,
		CameraRadius: 3,
		Delay:        100,
	}
}

// Orbit places the light and the camera on their circles for the current
// elapsed time. The light turns in the XY plane keeping its z, the camera
// in the XZ plane keeping its y, and the camera always looks at the origin.
// Positions are computed from elapsed time alone, so skipped frames do not
// accumulate error. cfg.Delay must be positive.
func Orbit(state *SimulationState, cfg OrbitConfig) {
	angle := state.Clock.Elapsed() / cfg.Delay
	sin, cos := math.Sin(angle), math.Cos(angle)

	state.Light.Position.X = cfg.LightRadius * sin
	state.Light.Position.Y = cfg.LightRadius * cos

	state.Camera.Position.X = cfg.CameraRadius * sin
	state.Camera.Position.Z = cfg.CameraRadius * cos
	state.Camera.Direction = state.Camera.Position.Negate()
}

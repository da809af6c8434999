package simulation

import (
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/math"
	"github.com/spaghettifunk/orbit/engine/renderer/components"
)

// SimulationState is everything the update step may change between frames.
type SimulationState struct {
	Clock  *core.Clock
	Camera components.Camera
	Light  components.Light
}

// Snapshot is a copy of the state taken after the update step. Rendering
// works from it and cannot change the simulation.
type Snapshot struct {
	Elapsed float32
	Camera  components.Camera
	Light   components.Light
}

// NewSimulationState starts with the default camera and a light at the
// origin.
func NewSimulationState(clock *core.Clock) *SimulationState {
	if clock == nil {
		clock = core.NewClock()
	}
	return &SimulationState{
		Clock:  clock,
		Camera: components.NewDefaultCamera(),
		Light:  components.NewLight(math.NewVec3Zero()),
	}
}

func (s *SimulationState) Snapshot() Snapshot {
	return Snapshot{
		Elapsed: s.Clock.Elapsed(),
		Camera:  s.Camera,
		Light:   s.Light,
	}
}

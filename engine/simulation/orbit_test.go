package simulation

import (
	m "math"
	"testing"

	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/math"
)

const tolerance = 1e-4

func near(a, b float32) bool {
	return m.Abs(float64(a-b)) <= tolerance
}

func newState(elapsed float32) *SimulationState {
	clock := core.NewClockWithMode(core.ClockModeFixed, elapsed)
	if elapsed > 0 {
		clock.Advance(0)
	}
	state := NewSimulationState(clock)
	state.Camera.Position = math.NewVec3(0, 0.5, 2)
	state.Light.Position = math.NewVec3(0, 0, 1.5)
	return state
}

func TestOrbitAtStart(t *testing.T) {
	state := newState(0)
	Orbit(state, DefaultOrbitConfig())

	if got := state.Light.Position; !got.Compare(math.NewVec3(0, 10, 1.5), tolerance) {
		t.Errorf("light = %v, expected (0, 10, 1.5)", got)
	}
	if got := state.Camera.Position; !got.Compare(math.NewVec3(0, 0.5, 3), tolerance) {
		t.Errorf("camera = %v, expected (0, 0.5, 3)", got)
	}
}

func TestOrbitQuarterTurn(t *testing.T) {
	cfg := DefaultOrbitConfig()
	state := newState(math.K_HALF_PI * cfg.Delay)
	Orbit(state, cfg)

	if !near(state.Light.Position.X, cfg.LightRadius) || !near(state.Light.Position.Y, 0) {
		t.Errorf("light = %v, expected (%f, 0, z)", state.Light.Position, cfg.LightRadius)
	}
	if state.Light.Position.Z != 1.5 {
		t.Errorf("light z changed to %f", state.Light.Position.Z)
	}
	if !near(state.Camera.Position.X, cfg.CameraRadius) || !near(state.Camera.Position.Z, 0) {
		t.Errorf("camera = %v, expected (%f, y, 0)", state.Camera.Position, cfg.CameraRadius)
	}
	if state.Camera.Position.Y != 0.5 {
		t.Errorf("camera y changed to %f", state.Camera.Position.Y)
	}
}

func TestOrbitUsesConfiguredDelay(t *testing.T) {
	cfg := DefaultOrbitConfig()
	cfg.Delay = 10
	state := newState(math.K_HALF_PI * 10)
	Orbit(state, cfg)
	if !near(state.Camera.Position.X, cfg.CameraRadius) || !near(state.Camera.Position.Z, 0) {
		t.Errorf("camera = %v, expected a quarter turn with delay 10", state.Camera.Position)
	}

	// a zero delay is not swapped for the default
	cfg.Delay = 0
	state = newState(50)
	Orbit(state, cfg)
	if !m.IsNaN(float64(state.Camera.Position.X)) {
		t.Errorf("zero delay gave camera %v", state.Camera.Position)
	}
}

func TestOrbitCameraLooksAtOrigin(t *testing.T) {
	for _, elapsed := range []float32{0, 1, 42, 157, 1000} {
		state := newState(elapsed)
		Orbit(state, DefaultOrbitConfig())

		if state.Camera.Direction != state.Camera.Position.Negate() {
			t.Errorf("t=%f: direction %v is not -position %v", elapsed, state.Camera.Direction, state.Camera.Position)
		}
		if err := state.Camera.Validate(); err != nil {
			t.Errorf("t=%f: camera became degenerate: %v", elapsed, err)
		}
		if r := math.NewVec2(state.Camera.Position.X, state.Camera.Position.Z).Length(); !near(r, 3) {
			t.Errorf("t=%f: camera orbit radius %f", elapsed, r)
		}
	}
}

func TestOrbitIsClosedForm(t *testing.T) {
	// stepping frame by frame lands where a direct jump does
	stepped := newState(0)
	for i := 0; i < 250; i++ {
		stepped.Clock.Advance(core.DefaultFramePeriod)
		Orbit(stepped, DefaultOrbitConfig())
	}

	direct := newState(250)
	Orbit(direct, DefaultOrbitConfig())

	if !stepped.Light.Position.Compare(direct.Light.Position, tolerance) {
		t.Errorf("light %v != %v", stepped.Light.Position, direct.Light.Position)
	}
	if !stepped.Camera.Position.Compare(direct.Camera.Position, tolerance) {
		t.Errorf("camera %v != %v", stepped.Camera.Position, direct.Camera.Position)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	state := newState(10)
	Orbit(state, DefaultOrbitConfig())
	snap := state.Snapshot()

	if snap.Elapsed != 10 || snap.Camera != state.Camera || snap.Light != state.Light {
		t.Fatalf("snapshot %+v does not match state", snap)
	}

	snap.Camera.Position = math.NewVec3(99, 99, 99)
	if state.Camera.Position == snap.Camera.Position {
		t.Errorf("changing the snapshot changed the state")
	}
}

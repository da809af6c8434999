package testbed

import (
	"github.com/spaghettifunk/orbit/engine"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/math"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
	"github.com/spaghettifunk/orbit/engine/simulation"
)

// TestGame is the orbit demo: a textured wall lit by a light circling it,
// seen by a camera circling it too.
type TestGame struct {
	*engine.Game

	width  uint32
	height uint32
	frames uint64
}

func NewTestGame(config *engine.ApplicationConfig) (*TestGame, error) {
	if config == nil {
		config = engine.DefaultApplicationConfig()
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Boot() error {
	core.LogInfo("booting testbed...")
	return nil
}

// Initialize moves the camera back on the z axis and puts the light just in
// front of the wall.
func (g *TestGame) Initialize(state *simulation.SimulationState) error {
	core.LogDebug("TestGame Initialize fn....")

	state.Camera.Position.Z = 2.0
	state.Light.Position = math.NewVec3(0, 0, 1.5)
	return nil
}

func (g *TestGame) Update(state *simulation.SimulationState) error {
	simulation.Orbit(state, g.ApplicationConfig.Orbit)
	return nil
}

func (g *TestGame) Render(snapshot simulation.Snapshot, packet *metadata.RenderPacket) error {
	g.frames++
	if packet.Mesh == nil && g.frames == 1 {
		core.LogWarn("no mesh to draw, only clearing the screen")
	}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	g.width = width
	g.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed shutting down after %d frames", g.frames)
	return nil
}

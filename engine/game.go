package engine

import (
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
	"github.com/spaghettifunk/orbit/engine/simulation"
)

// Game plugs application behavior into the engine. Every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	FnBoot            Boot
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Boot func() error

// Initialize sets up the starting simulation state.
type Initialize func(state *simulation.SimulationState) error

// Update advances the simulation for the current clock value. It is the only
// place the state is changed.
type Update func(state *simulation.SimulationState) error

// Render may adjust the packet built from the snapshot before it is drawn.
type Render func(snapshot simulation.Snapshot, packet *metadata.RenderPacket) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error

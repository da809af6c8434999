package engine

import (
	"errors"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/assets"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/math"
	"github.com/spaghettifunk/orbit/engine/renderer"
	"github.com/spaghettifunk/orbit/engine/renderer/components"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
	"github.com/spaghettifunk/orbit/engine/simulation"
	"github.com/spaghettifunk/orbit/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Window is the part of the platform layer the engine drives: opening and
// closing the window, polling its events and reading the drawable size.
type Window interface {
	Startup(applicationName string, x, y, width, height uint32) error
	Shutdown() error
	// PumpMessages polls pending events and returns false once the window
	// has been asked to close.
	PumpMessages() bool
	FramebufferSize() (int, int)
}

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     atomic.Bool
	isSuspended   bool
	events        *core.EventSystem
	window        Window
	renderer      *renderer.Renderer
	systemManager *systems.SystemManager
	state         *simulation.SimulationState
	pacer         *core.FramePacer
	metrics       *core.Metrics
	width         uint32
	height        uint32

	// nil when the mesh failed to load; frames are then cleared only
	mesh *metadata.Mesh
	// exits the process; replaced in tests
	fatal func(msg string, args ...interface{})
}

// New wires a game to its window and renderer backend. events must be the
// event system the window fires its close and resize events on.
func New(g *Game, events *core.EventSystem, window Window, backend renderer.RendererBackend) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	config := g.ApplicationConfig
	if err := config.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	sm, err := systems.NewSystemManager(assets.NewAssetManager(), backend)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		events:        events,
		window:        window,
		renderer:      renderer.New(backend),
		systemManager: sm,
		state:         simulation.NewSimulationState(core.NewClockWithMode(config.ClockMode, config.ClockStep)),
		pacer:         core.NewFramePacer(config.FramePeriod()),
		metrics:       core.NewMetrics(),
		isSuspended:   false,
		width:         config.StartWidth,
		height:        config.StartHeight,
		fatal:         core.LogFatal,
	}, nil
}

func (e *Engine) Initialize() error {
	config := e.gameInstance.ApplicationConfig

	e.currentStage = EngineStageBooting
	if e.gameInstance.FnBoot != nil {
		if err := e.gameInstance.FnBoot(); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageBootComplete

	e.currentStage = EngineStageInitializing

	e.registerEvents()

	if err := e.window.Startup(config.Name,
		config.StartPosX,
		config.StartPosY,
		config.StartWidth,
		config.StartHeight); err != nil {
		return err
	}

	if err := e.renderer.Initialize(config.Name, config.StartWidth, config.StartHeight); err != nil {
		return err
	}
	if w, h := e.window.FramebufferSize(); w > 0 && h > 0 {
		e.width, e.height = uint32(w), uint32(h)
	}

	// initialize subsystems
	if err := e.systemManager.AssetManager.Initialize(config.Assets.Root, config.WatchAssets); err != nil {
		return err
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e.state); err != nil {
			return err
		}
	}
	// The view matrix is undefined for a camera looking along its up
	// vector, so the starting camera is checked once here.
	if err := e.state.Camera.Validate(); err != nil {
		return err
	}
	core.LogInfo("Simulation clock in %s mode, %.2f per frame.", e.state.Clock.Mode(), e.state.Clock.Step())

	mesh, err := e.systemManager.MeshSystem.Load(config.MeshConfig())
	if err != nil {
		if err := e.handleMeshError(err); err != nil {
			return err
		}
	}
	e.mesh = mesh

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// handleMeshError decides what a failed mesh load means for the
// application. Failures of resources listed in FatalResources stop it;
// anything else is logged and the engine keeps running without the mesh.
func (e *Engine) handleMeshError(err error) error {
	resource := core.ResourceKind("unknown")
	var loadErr *core.LoadError
	if errors.As(err, &loadErr) {
		resource = loadErr.Resource
	}

	if e.gameInstance.ApplicationConfig.IsFatal(resource) {
		e.fatal("failed to load the %s of the mesh, shutting down: %s", resource, err)
		return pkgerrors.Wrap(err, "mesh")
	}
	core.LogError("failed to load the %s of the mesh, rendering without it: %s", resource, err)
	return nil
}

// Run drives the frame loop until the application is asked to quit. Each
// frame updates the simulation, draws a packet built from its snapshot,
// presents, polls window events, waits out the rest of the frame period and
// finally advances the clock. A close request seen while polling ends the
// loop right away.
func (e *Engine) Run() error {
	e.isRunning.Store(true)
	e.currentStage = EngineStageRunning

	for e.isRunning.Load() {
		e.pacer.Begin()

		if !e.isSuspended {
			if err := e.frame(); err != nil {
				core.LogError("frame failed, shutting down: %s", err)
				e.isRunning.Store(false)
				return err
			}
		}

		if !e.window.PumpMessages() {
			e.isRunning.Store(false)
			break
		}

		work := e.pacer.End()
		if e.isSuspended {
			continue
		}
		if e.metrics.Update(work) {
			fps, ms := e.metrics.Frame()
			core.LogDebug("frame %d: %.0f fps, %.3f ms average frame work", e.renderer.FrameNumber(), fps, ms)
		}
		e.state.Clock.Advance(e.pacer.LastFrame())
	}
	return nil
}

func (e *Engine) frame() error {
	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(e.state); err != nil {
			return pkgerrors.Wrap(err, "game update")
		}
	}

	snapshot := e.state.Snapshot()
	w, h := e.window.FramebufferSize()
	packet := buildRenderPacket(snapshot, e.mesh, uint32(w), uint32(h), e.gameInstance.ApplicationConfig.Projection)

	if e.gameInstance.FnRender != nil {
		if err := e.gameInstance.FnRender(snapshot, packet); err != nil {
			return pkgerrors.Wrap(err, "game render")
		}
	}
	return e.renderer.DrawFrame(packet)
}

// buildRenderPacket turns a snapshot into the uniforms of one frame. The
// projection follows the current framebuffer size.
func buildRenderPacket(snapshot simulation.Snapshot, mesh *metadata.Mesh, width, height uint32, projection ProjectionConfig) *metadata.RenderPacket {
	model := math.NewMat4Identity()
	if mesh != nil {
		model = mesh.Transform.GetWorld()
	}
	return &metadata.RenderPacket{
		Clear: metadata.DefaultClearValues(),
		Mesh:  mesh,
		Uniforms: metadata.GlobalUniforms{
			ElapsedTime:   snapshot.Elapsed,
			LightPosition: snapshot.Light.Position,
			Model:         model,
			View:          snapshot.Camera.ViewMatrix(),
			Projection:    components.Perspective(float32(width), float32(height), projection.ZNear, projection.ZFar),
		},
		Parameters: metadata.DefaultDrawParameters(),
	}
}

// Shutdown releases the mesh and the other GPU resources, then the
// renderer, then the window.
func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	e.mesh = nil
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if err := e.window.Shutdown(); err != nil {
		return err
	}
	return e.events.Shutdown()
}

// RequestQuit asks the loop to stop at the next frame boundary. Safe to call
// from any goroutine.
func (e *Engine) RequestQuit() {
	e.events.Fire(core.EventContext{
		Type: core.EVENT_CODE_APPLICATION_QUIT,
	})
}

// ApplicationGetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) registerEvents() {
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	e.events.Register(core.EVENT_CODE_RESIZED, e.onResized)
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		{
			core.LogInfo("EVENT_CODE_APPLICATION_QUIT recieved, shutting down.")
			e.isRunning.Store(false)
		}
	}
}

func (e *Engine) onResized(context core.EventContext) {
	if context.Type == core.EVENT_CODE_RESIZED {
		se, ok := context.Data.(*core.SystemEvent)
		if !ok {
			core.LogError("wrong event associated with the event type `%d`", context.Type)
			return
		}

		width := se.WindowWidth
		height := se.WindowHeight

		// Check if different. If so, trigger a resize event.
		if width != e.width || height != e.height {
			e.width = width
			e.height = height

			core.LogDebug("Window resize: %d, %d", width, height)

			// Handle minimization
			if width == 0 || height == 0 {
				core.LogInfo("Window minimized, suspending application.")
				e.isSuspended = true
				return
			}
			if e.isSuspended {
				core.LogInfo("Window restored, resuming application.")
				e.isSuspended = false
			}
			if e.gameInstance.FnOnResize != nil {
				if err := e.gameInstance.FnOnResize(width, height); err != nil {
					core.LogError(err.Error())
				}
			}
			if err := e.renderer.OnResize(width, height); err != nil {
				core.LogError("renderer resize failed: %s", err)
			}
		}
	}
}

package renderer

import (
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// Renderer is the frontend every frame goes through. It turns a render
// packet into backend calls in a fixed order: clear, draw, present.
type Renderer struct {
	backend RendererBackend
	frames  uint64
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
	}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := r.backend.Initialize(appName, appWidth, appHeight); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	core.LogInfo("Renderer initialized (%dx%d).", appWidth, appHeight)
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

// FrameNumber counts the frames presented so far.
func (r *Renderer) FrameNumber() uint64 {
	return r.frames
}

// DrawFrame clears the target, draws the packet's mesh if there is one and
// presents. A packet without a mesh still clears and presents.
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.Clear); err != nil {
		core.LogError(err.Error())
		return err
	}

	if mesh := packet.Mesh; mesh != nil {
		data := &metadata.GeometryRenderData{
			Geometry:       mesh.Geometry,
			Shader:         mesh.Shader,
			DiffuseTexture: mesh.DiffuseTexture,
			NormalTexture:  mesh.NormalTexture,
			Uniforms:       packet.Uniforms,
			Parameters:     packet.Parameters,
		}
		if err := r.backend.DrawGeometry(data); err != nil {
			core.LogError("failed to draw mesh '%s': %s", mesh.UniqueID, err)
			return err
		}
	}

	if err := r.backend.EndFrame(); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	r.frames++
	return nil
}

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

var _ renderer.RendererBackend = (*OpenGLRenderer)(nil)

type OpenGLRenderer struct {
	surface                 renderer.Surface
	FrameNumber             uint64
	FramebufferWidth        uint32
	FramebufferHeight       uint32
	cachedFramebufferWidth  uint32
	cachedFramebufferHeight uint32
	initialized             bool
}

func New(surface renderer.Surface) *OpenGLRenderer {
	return &OpenGLRenderer{
		surface: surface,
	}
}

// Initialize loads the GL entry points. The surface's context must be
// current on the calling thread.
func (r *OpenGLRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize OpenGL")
	}
	r.FramebufferWidth = appWidth
	r.FramebufferHeight = appHeight
	if w, h := r.surface.FramebufferSize(); w > 0 && h > 0 {
		r.FramebufferWidth = uint32(w)
		r.FramebufferHeight = uint32(h)
	}

	core.LogInfo("%s: OpenGL %s (%s)", appName, gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	r.initialized = true
	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	r.initialized = false
	core.LogDebug("OpenGL renderer shut down")
	return nil
}

// Resized records the new size; the viewport is updated at the start of the
// next frame.
func (r *OpenGLRenderer) Resized(width, height uint32) error {
	r.cachedFramebufferWidth = width
	r.cachedFramebufferHeight = height
	core.LogDebug("OpenGL renderer backend resized: w/h: %d/%d", width, height)
	return nil
}

func (r *OpenGLRenderer) BeginFrame(clear metadata.ClearValues) error {
	if !r.initialized {
		return fmt.Errorf("begin frame on an uninitialized renderer")
	}
	if r.cachedFramebufferWidth != 0 || r.cachedFramebufferHeight != 0 {
		r.FramebufferWidth = r.cachedFramebufferWidth
		r.FramebufferHeight = r.cachedFramebufferHeight
		r.cachedFramebufferWidth = 0
		r.cachedFramebufferHeight = 0
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.FramebufferWidth), int32(r.FramebufferHeight))
	// depth writes must be on for the depth clear to take effect
	gl.DepthMask(true)
	gl.ClearColor(clear.Color.X, clear.Color.Y, clear.Color.Z, clear.Color.W)
	gl.ClearDepth(float64(clear.Depth))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

func (r *OpenGLRenderer) EndFrame() error {
	r.surface.SwapBuffers()
	r.FrameNumber++
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x at end of frame %d", code, r.FrameNumber)
	}
	return nil
}

func (r *OpenGLRenderer) DrawGeometry(data *metadata.GeometryRenderData) error {
	if data.Geometry == nil || data.Shader == nil {
		return fmt.Errorf("draw call without geometry or shader")
	}
	if data.Shader.State != metadata.SHADER_STATE_INITIALIZED {
		return fmt.Errorf("shader '%s' is not initialized", data.Shader.Name)
	}

	applyDrawParameters(data.Parameters)

	shader := data.Shader
	gl.UseProgram(shader.ID)
	applyUniforms(shader, &data.Uniforms)
	bindTexture(shader, metadata.UniformDiffuseTexture, 0, data.DiffuseTexture)
	bindTexture(shader, metadata.UniformNormalTexture, 1, data.NormalTexture)

	gl.BindVertexArray(data.Geometry.InternalID)
	gl.DrawArrays(primitiveMode(data.Geometry.Topology), 0, int32(data.Geometry.VertexCount))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return nil
}

func applyDrawParameters(p metadata.DrawParameters) {
	if p.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	switch p.DepthFunc {
	case metadata.DepthFuncLessOrEqual:
		gl.DepthFunc(gl.LEQUAL)
	case metadata.DepthFuncAlways:
		gl.DepthFunc(gl.ALWAYS)
	default:
		gl.DepthFunc(gl.LESS)
	}
	gl.DepthMask(p.DepthWrite)

	switch p.CullMode {
	case metadata.FaceCullModeNone:
		gl.Disable(gl.CULL_FACE)
	case metadata.FaceCullModeFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case metadata.FaceCullModeFrontAndBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT_AND_BACK)
	default:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	if p.FrontFace == metadata.FrontFaceClockwise {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
}

func applyUniforms(shader *metadata.Shader, u *metadata.GlobalUniforms) {
	gl.Uniform1f(shader.UniformLocation(metadata.UniformElapsedTime), u.ElapsedTime)
	gl.Uniform3f(shader.UniformLocation(metadata.UniformLightPosition), u.LightPosition.X, u.LightPosition.Y, u.LightPosition.Z)
	gl.UniformMatrix4fv(shader.UniformLocation(metadata.UniformModelMatrix), 1, false, &u.Model.Data[0])
	gl.UniformMatrix4fv(shader.UniformLocation(metadata.UniformViewMatrix), 1, false, &u.View.Data[0])
	gl.UniformMatrix4fv(shader.UniformLocation(metadata.UniformProjection), 1, false, &u.Projection.Data[0])
}

func primitiveMode(t metadata.PrimitiveTopology) uint32 {
	if t == metadata.PrimitiveTopologyTriangleStrip {
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}

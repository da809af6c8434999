package renderer

import "github.com/spaghettifunk/orbit/engine/renderer/metadata"

// RendererBackend is the GPU resource provider and draw target. All calls
// happen on the render thread, after Initialize and before Shutdown.
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	// BeginFrame binds the default framebuffer and clears color and depth.
	BeginFrame(clear metadata.ClearValues) error
	// EndFrame presents the frame.
	EndFrame() error
	ShaderCreate(name, vertexSource, fragmentSource string) (*metadata.Shader, error)
	ShaderDestroy(shader *metadata.Shader)
	GeometryCreate(name string, vertices []metadata.Vertex, topology metadata.PrimitiveTopology) (*metadata.Geometry, error)
	GeometryDestroy(geometry *metadata.Geometry)
	TextureCreate(name string, image *metadata.ImageResourceData, use metadata.TextureUse) (*metadata.Texture, error)
	TextureDestroy(texture *metadata.Texture)
	DrawGeometry(data *metadata.GeometryRenderData) error
}

// Surface is the window side of a backend: where frames are presented and
// how big the drawable area currently is.
type Surface interface {
	FramebufferSize() (width, height int)
	SwapBuffers()
}

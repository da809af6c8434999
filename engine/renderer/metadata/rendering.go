package metadata

import "github.com/spaghettifunk/orbit/engine/math"

/** @brief Determines face culling mode during rendering. */
type FaceCullMode int

const (
	/** @brief No faces are culled. */
	FaceCullModeNone FaceCullMode = 0x0
	/** @brief Only front faces are culled. */
	FaceCullModeFront FaceCullMode = 0x1
	/** @brief Only back faces are culled. */
	FaceCullModeBack FaceCullMode = 0x2
	/** @brief Both front and back faces are culled. */
	FaceCullModeFrontAndBack FaceCullMode = 0x3
)

/** @brief Winding order of front-facing triangles. */
type FrontFace int

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

/** @brief Comparison used by the depth test. */
type DepthFunc int

const (
	DepthFuncLess DepthFunc = iota
	DepthFuncLessOrEqual
	DepthFuncAlways
)

/**
 * @brief The fixed-function pipeline state applied to a draw call.
 */
type DrawParameters struct {
	DepthTest  bool
	DepthFunc  DepthFunc
	DepthWrite bool
	CullMode   FaceCullMode
	FrontFace  FrontFace
}

// DefaultDrawParameters tests depth with LESS, writes depth, and culls
// triangles that wind clockwise on screen.
func DefaultDrawParameters() DrawParameters {
	return DrawParameters{
		DepthTest:  true,
		DepthFunc:  DepthFuncLess,
		DepthWrite: true,
		CullMode:   FaceCullModeBack,
		FrontFace:  FrontFaceCounterClockwise,
	}
}

/**
 * @brief The per draw uniform block. Names match the quad shaders.
 */
type GlobalUniforms struct {
	/** @brief Logical elapsed time, uniform `t`. */
	ElapsedTime float32
	/** @brief Light position in world space, uniform `u_light`. */
	LightPosition math.Vec3
	/** @brief Uniform `model_mat`. */
	Model math.Mat4
	/** @brief Uniform `view_mat`. */
	View math.Mat4
	/** @brief Uniform `perspective_mat`. */
	Projection math.Mat4
}

// Uniform names used by the quad shaders.
const (
	UniformElapsedTime    = "t"
	UniformDiffuseTexture = "tex_diffuse"
	UniformNormalTexture  = "tex_normal"
	UniformLightPosition  = "u_light"
	UniformModelMatrix    = "model_mat"
	UniformViewMatrix     = "view_mat"
	UniformProjection     = "perspective_mat"
)

/**
 * @brief Everything the backend needs to issue one draw call.
 */
type GeometryRenderData struct {
	Geometry       *Geometry
	Shader         *Shader
	DiffuseTexture *Texture
	NormalTexture  *Texture
	Uniforms       GlobalUniforms
	Parameters     DrawParameters
}

/**
 * @brief Clear values used at the start of every frame.
 */
type ClearValues struct {
	Color math.Vec4
	Depth float32
}

func DefaultClearValues() ClearValues {
	return ClearValues{
		Color: math.NewVec4(0, 0, 0, 1),
		Depth: 1.0,
	}
}

/**
 * @brief A frame's worth of rendering work. Mesh is nil in degraded mode:
 * the frame is cleared and presented with nothing drawn.
 */
type RenderPacket struct {
	Clear      ClearValues
	Mesh       *Mesh
	Uniforms   GlobalUniforms
	Parameters DrawParameters
}

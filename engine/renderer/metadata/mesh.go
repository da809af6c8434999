package metadata

import (
	"github.com/spaghettifunk/orbit/engine/math"
)

/**
 * @brief The bundle needed to issue one draw call: the CPU side vertices,
 * their GPU geometry, the shader program and the two textures. A mesh owns
 * its GPU handles exclusively; it is never mutated after construction.
 */
type Mesh struct {
	UniqueID       string
	Vertices       []Vertex
	Geometry       *Geometry
	Shader         *Shader
	DiffuseTexture *Texture
	NormalTexture  *Texture
	Transform      *math.Transform
}

// MeshConfig names the resources a mesh is built from.
type MeshConfig struct {
	Name               string
	Vertices           []Vertex
	Topology           PrimitiveTopology
	VertexShaderPath   string
	FragmentShaderPath string
	DiffuseTexturePath string
	NormalTexturePath  string
}

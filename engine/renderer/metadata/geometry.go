package metadata

import (
	"github.com/spaghettifunk/orbit/engine/math"
)

/**
 * @brief Represents a single vertex in 3D space, in the layout uploaded to
 * the GPU: position, normal, texture coordinate.
 */
type Vertex struct {
	/** @brief The position of the vertex */
	Position math.Vec3
	/** @brief The normal of the vertex. */
	Normal math.Vec3
	/** @brief The texture coordinate of the vertex. */
	TexCoord math.Vec2
}

// VertexSize is the size in bytes of one Vertex in a vertex buffer.
const VertexSize uint32 = (3 + 3 + 2) * 4

/** @brief How the vertices of a geometry are assembled into primitives. */
type PrimitiveTopology int

const (
	PrimitiveTopologyTriangleList PrimitiveTopology = iota
	PrimitiveTopologyTriangleStrip
)

/**
 * @brief Represents geometry uploaded to the GPU. The backend owns the
 * buffers behind InternalID and VertexBuffer.
 */
type Geometry struct {
	/** @brief The geometry name. */
	Name string
	/** @brief The backend vertex array object. */
	InternalID uint32
	/** @brief The backend vertex buffer object. */
	VertexBuffer uint32
	/** @brief The number of vertices in the buffer. */
	VertexCount uint32
	/** @brief The primitive topology used to draw the vertices. */
	Topology PrimitiveTopology
}

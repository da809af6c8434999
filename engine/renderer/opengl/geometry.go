package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// Attribute locations shared with the vertex shader.
const (
	attribPosition uint32 = 0
	attribNormal   uint32 = 1
	attribTexCoord uint32 = 2
)

func (r *OpenGLRenderer) GeometryCreate(name string, vertices []metadata.Vertex, topology metadata.PrimitiveTopology) (*metadata.Geometry, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("geometry '%s' has no vertices", name)
	}

	g := &metadata.Geometry{
		Name:        name,
		VertexCount: uint32(len(vertices)),
		Topology:    topology,
	}

	gl.GenVertexArrays(1, &g.InternalID)
	gl.BindVertexArray(g.InternalID)

	gl.GenBuffers(1, &g.VertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(metadata.VertexSize), gl.Ptr(&vertices[0]), gl.STATIC_DRAW)

	var v metadata.Vertex
	stride := int32(metadata.VertexSize)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, unsafe.Offsetof(v.Position))
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, unsafe.Offsetof(v.Normal))
	gl.EnableVertexAttribArray(attribTexCoord)
	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return g, nil
}

func (r *OpenGLRenderer) GeometryDestroy(geometry *metadata.Geometry) {
	if geometry == nil {
		return
	}
	if geometry.VertexBuffer != 0 {
		gl.DeleteBuffers(1, &geometry.VertexBuffer)
		geometry.VertexBuffer = 0
	}
	if geometry.InternalID != 0 {
		gl.DeleteVertexArrays(1, &geometry.InternalID)
		geometry.InternalID = 0
	}
}

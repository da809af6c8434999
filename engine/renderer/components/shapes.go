package components

import (
	"github.com/spaghettifunk/orbit/engine/math"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// NewPlane returns a 2×2 quad in the z=0 plane facing -z, as a four
// vertex triangle strip.
func NewPlane() []metadata.Vertex {
	normal := math.NewVec3(0.0, 0.0, -1.0)
	return []metadata.Vertex{
		{
			Position: math.NewVec3(-1.0, 1.0, 0.0),
			Normal:   normal,
			TexCoord: math.NewVec2(0.0, 1.0),
		},
		{
			Position: math.NewVec3(1.0, 1.0, 0.0),
			Normal:   normal,
			TexCoord: math.NewVec2(1.0, 1.0),
		},
		{
			Position: math.NewVec3(-1.0, -1.0, 0.0),
			Normal:   normal,
			TexCoord: math.NewVec2(0.0, 0.0),
		},
		{
			Position: math.NewVec3(1.0, -1.0, 0.0),
			Normal:   normal,
			TexCoord: math.NewVec2(1.0, 0.0),
		},
	}
}

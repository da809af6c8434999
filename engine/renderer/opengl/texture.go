package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// TextureCreate uploads RGBA8 pixels. Diffuse textures are stored as sRGB so
// sampling returns linear color; normal maps stay linear.
func (r *OpenGLRenderer) TextureCreate(name string, image *metadata.ImageResourceData, use metadata.TextureUse) (*metadata.Texture, error) {
	if image == nil || image.Width == 0 || image.Height == 0 {
		return nil, fmt.Errorf("texture '%s' has no pixels", name)
	}
	if want := int(image.Width) * int(image.Height) * 4; len(image.Pixels) != want {
		return nil, fmt.Errorf("texture '%s' has %d bytes of pixels, expected %d", name, len(image.Pixels), want)
	}

	internalFormat := int32(gl.RGBA8)
	if use == metadata.TextureUseDiffuse {
		internalFormat = gl.SRGB8_ALPHA8
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(image.Width),
		int32(image.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(image.Pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &metadata.Texture{
		ID:           id,
		Width:        image.Width,
		Height:       image.Height,
		ChannelCount: image.ChannelCount,
		Use:          use,
		Name:         name,
	}, nil
}

func (r *OpenGLRenderer) TextureDestroy(texture *metadata.Texture) {
	if texture == nil || texture.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}

func bindTexture(shader *metadata.Shader, uniform string, unit uint32, texture *metadata.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	if texture == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	} else {
		gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	}
	gl.Uniform1i(shader.UniformLocation(uniform), int32(unit))
}

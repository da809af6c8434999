package loaders

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes an image file into tightly packed RGBA8 pixels, row 0
// being the top of the image. Every failure is a ParsingError.
func LoadImage(path string) (*metadata.ImageResourceData, error) {
	return LoadImageWithParams(path, metadata.ImageResourceParams{})
}

// LoadImageWithParams is LoadImage with the rows optionally flipped so that
// row 0 is the bottom of the image, as GL texture coordinates expect.
func LoadImageWithParams(path string, params metadata.ImageResourceParams) (*metadata.ImageResourceData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewLoadError(core.ParsingError, core.ResourceImage, path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, core.NewLoadError(core.ParsingError, core.ResourceImage, path, errors.Wrap(err, "decode"))
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, core.NewLoadError(core.ParsingError, core.ResourceImage, path, errors.Errorf("empty %s image", format))
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	if params.FlipY {
		flipRows(rgba.Pix, rgba.Stride, bounds.Dy())
	}

	return &metadata.ImageResourceData{
		ChannelCount: 4,
		Width:        uint32(bounds.Dx()),
		Height:       uint32(bounds.Dy()),
		Pixels:       rgba.Pix,
	}, nil
}

func flipRows(pix []uint8, stride, height int) {
	tmp := make([]uint8, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}

type ImageLoader struct{}

// Load expects nil or *metadata.ImageResourceParams as params.
func (il *ImageLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	var p metadata.ImageResourceParams
	if typedParams, ok := params.(*metadata.ImageResourceParams); ok && typedParams != nil {
		p = *typedParams
	}

	data, err := LoadImageWithParams(path, p)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeImage,
		Name:     path,
		FullPath: path,
		DataSize: uint64(len(data.Pixels)),
		Data:     data,
	}, nil
}

func (il *ImageLoader) Unload(resource *metadata.Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

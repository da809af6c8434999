package loaders

import (
	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// LoadShader reads the vertex and fragment sources of a program. Any read
// failure is reported as a ParsingError wrapping the underlying read error.
func LoadShader(vertexPath, fragmentPath string) (string, string, error) {
	vsrc, err := ReadFile(vertexPath)
	if err != nil {
		return "", "", core.NewLoadError(core.ParsingError, core.ResourceShader, vertexPath, errors.Wrap(err, "vertex stage"))
	}
	fsrc, err := ReadFile(fragmentPath)
	if err != nil {
		return "", "", core.NewLoadError(core.ParsingError, core.ResourceShader, fragmentPath, errors.Wrap(err, "fragment stage"))
	}
	return vsrc, fsrc, nil
}

// ShaderLoader loads the source of a single shader stage.
type ShaderLoader struct{}

func (sl *ShaderLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, core.NewLoadError(core.ParsingError, core.ResourceShader, path, err)
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeShader,
		Name:     path,
		FullPath: path,
		DataSize: uint64(len(src)),
		Data:     src,
	}, nil
}

func (sl *ShaderLoader) Unload(resource *metadata.Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

package loaders

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// ReadFile returns the whole content of a UTF-8 text file. A file that cannot
// be opened is FileNotFound; one that opens but cannot be read, or is not
// valid UTF-8, is FileReadFailure.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", core.NewLoadError(core.FileNotFound, core.ResourceText, path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", core.NewLoadError(core.FileReadFailure, core.ResourceText, path, err)
	}
	if !utf8.Valid(data) {
		return "", core.NewLoadError(core.FileReadFailure, core.ResourceText, path, errors.New("content is not valid UTF-8"))
	}
	return string(data), nil
}

type TextLoader struct{}

func (tl *TextLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeText,
		Name:     path,
		FullPath: path,
		DataSize: uint64(len(text)),
		Data:     text,
	}, nil
}

func (tl *TextLoader) Unload(resource *metadata.Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

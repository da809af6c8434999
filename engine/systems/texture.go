package systems

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/assets"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

type TextureSystemConfig struct {
	/** @brief The maximum number of textures that can be loaded at once. */
	MaxTextureCount uint32
}

// TextureSystem turns image files into GPU textures and keeps track of the
// ones still alive.
type TextureSystem struct {
	Config *TextureSystemConfig
	// Registered textures by name.
	RegisteredTextures map[string]*metadata.Texture

	mutex        sync.Mutex
	assetManager *assets.AssetManager
	backend      renderer.RendererBackend
}

func NewTextureSystem(config *TextureSystemConfig, am *assets.AssetManager, backend renderer.RendererBackend) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}

	return &TextureSystem{
		Config:             config,
		RegisteredTextures: make(map[string]*metadata.Texture),
		assetManager:       am,
		backend:            backend,
	}, nil
}

func (ts *TextureSystem) Shutdown() error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	// Destroy all loaded textures.
	for name, t := range ts.RegisteredTextures {
		ts.backend.TextureDestroy(t)
		delete(ts.RegisteredTextures, name)
	}
	return nil
}

// Acquire decodes the image at path (flipped for GL texture coordinates) and
// uploads it under the given name. Decode failures are returned as they come
// from the loader; upload failures are CompileErrors on the image.
func (ts *TextureSystem) Acquire(name, path string, use metadata.TextureUse) (*metadata.Texture, error) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	if _, exists := ts.RegisteredTextures[name]; exists {
		return nil, core.NewLoadError(core.CompileError, core.ResourceImage, path, errors.Errorf("texture '%s' already exists", name))
	}
	if uint32(len(ts.RegisteredTextures)) >= ts.Config.MaxTextureCount {
		return nil, core.NewLoadError(core.CompileError, core.ResourceImage, path, errors.Errorf("texture system is full (%d textures)", ts.Config.MaxTextureCount))
	}

	img, err := ts.assetManager.LoadImage(path, metadata.ImageResourceParams{FlipY: true})
	if err != nil {
		return nil, err
	}

	t, err := ts.backend.TextureCreate(name, img, use)
	if err != nil {
		return nil, core.NewLoadError(core.CompileError, core.ResourceImage, path, errors.Wrapf(err, "upload %s texture", use))
	}
	ts.RegisteredTextures[name] = t
	core.LogDebug("texture '%s' (%s, %dx%d) created from %s", name, use, t.Width, t.Height, path)
	return t, nil
}

func (ts *TextureSystem) Release(texture *metadata.Texture) {
	if texture == nil {
		return
	}
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	if _, exists := ts.RegisteredTextures[texture.Name]; !exists {
		return
	}
	delete(ts.RegisteredTextures, texture.Name)
	ts.backend.TextureDestroy(texture)
}

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

type ShaderSystemConfig struct {
	/** @brief The maximum number of shaders held in the system. */
	MaxShaderCount uint16
}

type ShaderSystem struct {
	Config *ShaderSystemConfig
	// Linked programs by name.
	Shaders map[string]*metadata.Shader

	mutex        sync.Mutex
	assetManager *assets.AssetManager
	backend      renderer.RendererBackend
}

func NewShaderSystem(config *ShaderSystemConfig, am *assets.AssetManager, backend renderer.RendererBackend) (*ShaderSystem, error) {
	if config.MaxShaderCount == 0 {
		err := fmt.Errorf("shader system config.MaxShaderCount must be greater than 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &ShaderSystem{
		Config:       config,
		Shaders:      make(map[string]*metadata.Shader),
		assetManager: am,
		backend:      backend,
	}, nil
}

func (shaderSystem *ShaderSystem) Shutdown() error {
	shaderSystem.mutex.Lock()
	defer shaderSystem.mutex.Unlock()
	for name, s := range shaderSystem.Shaders {
		shaderSystem.backend.ShaderDestroy(s)
		delete(shaderSystem.Shaders, name)
	}
	return nil
}

// CreateShader reads both stages and links them. Read failures come back as
// ParsingErrors from the loader, compile and link failures as CompileErrors.
func (shaderSystem *ShaderSystem) CreateShader(name, vertexPath, fragmentPath string) (*metadata.Shader, error) {
	shaderSystem.mutex.Lock()
	defer shaderSystem.mutex.Unlock()

	if _, exists := shaderSystem.Shaders[name]; exists {
		return nil, core.NewLoadError(core.CompileError, core.ResourceShader, vertexPath, errors.Errorf("shader '%s' already exists", name))
	}
	if len(shaderSystem.Shaders) >= int(shaderSystem.Config.MaxShaderCount) {
		return nil, core.NewLoadError(core.CompileError, core.ResourceShader, vertexPath, errors.Errorf("shader system is full (%d shaders)", shaderSystem.Config.MaxShaderCount))
	}

	vsrc, fsrc, err := shaderSystem.assetManager.LoadShader(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}

	shader, err := shaderSystem.backend.ShaderCreate(name, vsrc, fsrc)
	if err != nil {
		return nil, core.NewLoadError(core.CompileError, core.ResourceShader, vertexPath, errors.Wrapf(err, "shader '%s'", name))
	}
	shaderSystem.Shaders[name] = shader
	return shader, nil
}

func (shaderSystem *ShaderSystem) Release(shader *metadata.Shader) {
	if shader == nil {
		return
	}
	shaderSystem.mutex.Lock()
	defer shaderSystem.mutex.Unlock()
	if _, exists := shaderSystem.Shaders[shader.Name]; !exists {
		return
	}
	delete(shaderSystem.Shaders, shader.Name)
	shaderSystem.backend.ShaderDestroy(shader)
}

package systems

import (
	"github.com/spaghettifunk/orbit/engine/assets"
	"github.com/spaghettifunk/orbit/engine/renderer"
)

type SystemManager struct {
	AssetManager *assets.AssetManager
	MeshSystem   *MeshSystem

	geometrySystem *GeometrySystem
	shaderSystem   *ShaderSystem
	textureSystem  *TextureSystem
}

func NewSystemManager(am *assets.AssetManager, backend renderer.RendererBackend) (*SystemManager, error) {
	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: 64,
	}, am, backend)
	if err != nil {
		return nil, err
	}
	ssys, err := NewShaderSystem(&ShaderSystemConfig{
		MaxShaderCount: 16,
	}, am, backend)
	if err != nil {
		return nil, err
	}
	gs, err := NewGeometrySystem(&GeometrySystemConfig{
		MaxGeometryCount: 64,
	}, backend)
	if err != nil {
		return nil, err
	}
	ms, err := NewMeshSystem(ssys, ts, gs)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		AssetManager:   am,
		MeshSystem:     ms,
		geometrySystem: gs,
		shaderSystem:   ssys,
		textureSystem:  ts,
	}, nil
}

// Shutdown releases meshes first, then whatever the lower systems still hold.
func (sm *SystemManager) Shutdown() error {
	if err := sm.MeshSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.geometrySystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.textureSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.shaderSystem.Shutdown(); err != nil {
		return err
	}
	return sm.AssetManager.Close()
}

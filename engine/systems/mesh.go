package systems

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/math"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// MeshSystem builds meshes out of the shader, texture and geometry systems.
type MeshSystem struct {
	shaderSystem   *ShaderSystem
	textureSystem  *TextureSystem
	geometrySystem *GeometrySystem

	meshes map[string]*metadata.Mesh
}

func NewMeshSystem(ss *ShaderSystem, ts *TextureSystem, gs *GeometrySystem) (*MeshSystem, error) {
	return &MeshSystem{
		shaderSystem:   ss,
		textureSystem:  ts,
		geometrySystem: gs,
		meshes:         make(map[string]*metadata.Mesh),
	}, nil
}

func (ms *MeshSystem) Shutdown() error {
	for _, m := range ms.meshes {
		ms.Destroy(m)
	}
	return nil
}

// Load creates every resource of a mesh: the shader program, the diffuse and
// normal textures and the vertex buffer, in that order. The first failure
// stops the load, whatever was already created is released and the error is
// returned as a *core.LoadError naming the resource that failed. There is no
// partially built mesh.
func (ms *MeshSystem) Load(config metadata.MeshConfig) (*metadata.Mesh, error) {
	mesh := &metadata.Mesh{
		UniqueID:  config.Name + "-" + uuid.NewString(),
		Vertices:  config.Vertices,
		Transform: math.TransformCreate(),
	}

	var err error
	mesh.Shader, err = ms.shaderSystem.CreateShader(mesh.UniqueID+"/shader", config.VertexShaderPath, config.FragmentShaderPath)
	if err != nil {
		return nil, ms.fail(mesh, err)
	}
	mesh.DiffuseTexture, err = ms.textureSystem.Acquire(mesh.UniqueID+"/diffuse", config.DiffuseTexturePath, metadata.TextureUseDiffuse)
	if err != nil {
		return nil, ms.fail(mesh, err)
	}
	mesh.NormalTexture, err = ms.textureSystem.Acquire(mesh.UniqueID+"/normal", config.NormalTexturePath, metadata.TextureUseNormal)
	if err != nil {
		return nil, ms.fail(mesh, err)
	}
	mesh.Geometry, err = ms.geometrySystem.AcquireFromVertices(mesh.UniqueID+"/geometry", config.Vertices, config.Topology)
	if err != nil {
		return nil, ms.fail(mesh, err)
	}

	ms.meshes[mesh.UniqueID] = mesh
	core.LogInfo("Successfully loaded mesh '%s' (%d vertices).", mesh.UniqueID, len(mesh.Vertices))
	return mesh, nil
}

// Destroy releases the GPU resources owned by the mesh.
func (ms *MeshSystem) Destroy(mesh *metadata.Mesh) {
	if mesh == nil {
		return
	}
	ms.geometrySystem.Release(mesh.Geometry)
	ms.textureSystem.Release(mesh.NormalTexture)
	ms.textureSystem.Release(mesh.DiffuseTexture)
	ms.shaderSystem.Release(mesh.Shader)
	delete(ms.meshes, mesh.UniqueID)
}

func (ms *MeshSystem) fail(mesh *metadata.Mesh, err error) error {
	ms.Destroy(mesh)
	if _, ok := err.(*core.LoadError); !ok {
		err = core.NewLoadError(core.CompileError, core.ResourceGeometry, mesh.UniqueID, err)
	}
	return err
}

package systems

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

type GeometrySystemConfig struct {
	/**
	 * @brief NOTE: Should be significantly greater than the number of static meshes because
	 * the there can and will be more than one of these per mesh.
	 * Take other systems into account as well.
	 */
	MaxGeometryCount uint32
}

type GeometrySystem struct {
	Config     *GeometrySystemConfig
	Geometries map[string]*metadata.Geometry

	mutex   sync.Mutex
	backend renderer.RendererBackend
}

func NewGeometrySystem(config *GeometrySystemConfig, backend renderer.RendererBackend) (*GeometrySystem, error) {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &GeometrySystem{
		Config:     config,
		Geometries: make(map[string]*metadata.Geometry),
		backend:    backend,
	}, nil
}

func (gs *GeometrySystem) Shutdown() error {
	gs.mutex.Lock()
	defer gs.mutex.Unlock()
	for name, g := range gs.Geometries {
		gs.backend.GeometryDestroy(g)
		delete(gs.Geometries, name)
	}
	return nil
}

// AcquireFromVertices uploads the vertices as a new geometry.
func (gs *GeometrySystem) AcquireFromVertices(name string, vertices []metadata.Vertex, topology metadata.PrimitiveTopology) (*metadata.Geometry, error) {
	gs.mutex.Lock()
	defer gs.mutex.Unlock()

	if len(gs.Geometries) >= int(gs.Config.MaxGeometryCount) {
		return nil, core.NewLoadError(core.CompileError, core.ResourceGeometry, name, errors.Errorf("geometry system is full (%d geometries)", gs.Config.MaxGeometryCount))
	}
	if topology == metadata.PrimitiveTopologyTriangleStrip && len(vertices) < 3 {
		return nil, core.NewLoadError(core.CompileError, core.ResourceGeometry, name, errors.Errorf("a triangle strip needs at least 3 vertices, got %d", len(vertices)))
	}
	if topology == metadata.PrimitiveTopologyTriangleList && (len(vertices) == 0 || len(vertices)%3 != 0) {
		return nil, core.NewLoadError(core.CompileError, core.ResourceGeometry, name, errors.Errorf("a triangle list needs a multiple of 3 vertices, got %d", len(vertices)))
	}

	g, err := gs.backend.GeometryCreate(name, vertices, topology)
	if err != nil {
		return nil, core.NewLoadError(core.CompileError, core.ResourceGeometry, name, errors.Wrap(err, "vertex upload"))
	}
	gs.Geometries[name] = g
	return g, nil
}

func (gs *GeometrySystem) Release(geometry *metadata.Geometry) {
	if geometry == nil {
		return
	}
	gs.mutex.Lock()
	defer gs.mutex.Unlock()
	if _, exists := gs.Geometries[geometry.Name]; !exists {
		return
	}
	delete(gs.Geometries, geometry.Name)
	gs.backend.GeometryDestroy(geometry)
}

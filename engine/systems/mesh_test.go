package systems

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/orbit/engine/assets"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/components"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

// fakeBackend hands out increasing ids and tracks which are still alive.
type fakeBackend struct {
	nextID     uint32
	shaders    map[uint32]bool
	textures   map[uint32]metadata.TextureUse
	geometries map[uint32]bool

	shaderErr   error
	geometryErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		shaders:    make(map[uint32]bool),
		textures:   make(map[uint32]metadata.TextureUse),
		geometries: make(map[uint32]bool),
	}
}

func (b *fakeBackend) id() uint32 {
	b.nextID++
	return b.nextID
}

func (b *fakeBackend) live() int {
	return len(b.shaders) + len(b.textures) + len(b.geometries)
}

func (b *fakeBackend) Initialize(string, uint32, uint32) error { return nil }
func (b *fakeBackend) Shutdown() error                         { return nil }
func (b *fakeBackend) Resized(uint32, uint32) error            { return nil }
func (b *fakeBackend) BeginFrame(metadata.ClearValues) error   { return nil }
func (b *fakeBackend) EndFrame() error                         { return nil }
func (b *fakeBackend) DrawGeometry(*metadata.GeometryRenderData) error {
	return nil
}

func (b *fakeBackend) ShaderCreate(name, vsrc, fsrc string) (*metadata.Shader, error) {
	if b.shaderErr != nil {
		return nil, b.shaderErr
	}
	s := &metadata.Shader{ID: b.id(), Name: name, State: metadata.SHADER_STATE_INITIALIZED}
	b.shaders[s.ID] = true
	return s, nil
}

func (b *fakeBackend) ShaderDestroy(s *metadata.Shader) { delete(b.shaders, s.ID) }

func (b *fakeBackend) GeometryCreate(name string, vertices []metadata.Vertex, topology metadata.PrimitiveTopology) (*metadata.Geometry, error) {
	if b.geometryErr != nil {
		return nil, b.geometryErr
	}
	g := &metadata.Geometry{Name: name, InternalID: b.id(), VertexCount: uint32(len(vertices)), Topology: topology}
	b.geometries[g.InternalID] = true
	return g, nil
}

func (b *fakeBackend) GeometryDestroy(g *metadata.Geometry) { delete(b.geometries, g.InternalID) }

func (b *fakeBackend) TextureCreate(name string, img *metadata.ImageResourceData, use metadata.TextureUse) (*metadata.Texture, error) {
	t := &metadata.Texture{ID: b.id(), Name: name, Width: img.Width, Height: img.Height, ChannelCount: 4, Use: use}
	b.textures[t.ID] = use
	return t, nil
}

func (b *fakeBackend) TextureDestroy(t *metadata.Texture) { delete(b.textures, t.ID) }

type fixture struct {
	dir     string
	backend *fakeBackend
	manager *SystemManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"vertex.glsl":   "#version 410 core\nvoid main() {}\n",
		"fragment.glsl": "#version 410 core\nvoid main() {}\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"wall-diffuse.png", "wall-normal.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}

	am := assets.NewAssetManager()
	if err := am.Initialize(dir, false); err != nil {
		t.Fatal(err)
	}
	backend := newFakeBackend()
	sm, err := NewSystemManager(am, backend)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sm.Shutdown() })
	return &fixture{dir: dir, backend: backend, manager: sm}
}

func (f *fixture) config() metadata.MeshConfig {
	return metadata.MeshConfig{
		Name:               "quad",
		Vertices:           components.NewPlane(),
		Topology:           metadata.PrimitiveTopologyTriangleStrip,
		VertexShaderPath:   filepath.Join(f.dir, "vertex.glsl"),
		FragmentShaderPath: filepath.Join(f.dir, "fragment.glsl"),
		DiffuseTexturePath: filepath.Join(f.dir, "wall-diffuse.png"),
		NormalTexturePath:  filepath.Join(f.dir, "wall-normal.png"),
	}
}

func expectLoadError(t *testing.T, err error, kind core.LoadErrorKind, resource core.ResourceKind) {
	t.Helper()
	var le *core.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *core.LoadError, got %T: %v", err, err)
	}
	if le.Kind != kind || le.Resource != resource {
		t.Errorf("got %s on %s, expected %s on %s", le.Kind, le.Resource, kind, resource)
	}
}

func TestMeshLoad(t *testing.T) {
	f := newFixture(t)

	mesh, err := f.manager.MeshSystem.Load(f.config())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.Shader == nil || mesh.Geometry == nil || mesh.DiffuseTexture == nil || mesh.NormalTexture == nil {
		t.Fatalf("mesh is incomplete: %+v", mesh)
	}
	if mesh.DiffuseTexture.Use != metadata.TextureUseDiffuse || mesh.NormalTexture.Use != metadata.TextureUseNormal {
		t.Errorf("texture uses = %s / %s", mesh.DiffuseTexture.Use, mesh.NormalTexture.Use)
	}
	if mesh.Geometry.VertexCount != 4 || mesh.Geometry.Topology != metadata.PrimitiveTopologyTriangleStrip {
		t.Errorf("geometry = %+v", mesh.Geometry)
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("mesh keeps %d vertices", len(mesh.Vertices))
	}
	if f.backend.live() != 4 {
		t.Errorf("expected 4 live GPU objects, got %d", f.backend.live())
	}

	f.manager.MeshSystem.Destroy(mesh)
	if f.backend.live() != 0 {
		t.Errorf("Destroy left %d GPU objects behind", f.backend.live())
	}
}

func TestMeshLoadUniqueIDs(t *testing.T) {
	f := newFixture(t)

	a, err := f.manager.MeshSystem.Load(f.config())
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.manager.MeshSystem.Load(f.config())
	if err != nil {
		t.Fatal(err)
	}
	if a.UniqueID == b.UniqueID {
		t.Errorf("two meshes share the id %s", a.UniqueID)
	}
}

func TestMeshLoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture, cfg *metadata.MeshConfig)
		kind     core.LoadErrorKind
		resource core.ResourceKind
	}{
		{
			name: "missing vertex shader",
			setup: func(f *fixture, cfg *metadata.MeshConfig) {
				cfg.VertexShaderPath = filepath.Join(f.dir, "missing.glsl")
			},
			kind:     core.ParsingError,
			resource: core.ResourceShader,
		},
		{
			name: "shader does not compile",
			setup: func(f *fixture, cfg *metadata.MeshConfig) {
				f.backend.shaderErr = core.ErrCompile
			},
			kind:     core.CompileError,
			resource: core.ResourceShader,
		},
		{
			name: "missing diffuse texture",
			setup: func(f *fixture, cfg *metadata.MeshConfig) {
				cfg.DiffuseTexturePath = filepath.Join(f.dir, "missing.png")
			},
			kind:     core.ParsingError,
			resource: core.ResourceImage,
		},
		{
			name: "normal texture is not an image",
			setup: func(f *fixture, cfg *metadata.MeshConfig) {
				cfg.NormalTexturePath = cfg.VertexShaderPath
			},
			kind:     core.ParsingError,
			resource: core.ResourceImage,
		},
		{
			name: "vertex upload fails",
			setup: func(f *fixture, cfg *metadata.MeshConfig) {
				f.backend.geometryErr = errors.New("out of memory")
			},
			kind:     core.CompileError,
			resource: core.ResourceGeometry,
		},
		{
			name: "too few vertices",
			setup: func(f *fixture, cfg *metadata.MeshConfig) {
				cfg.Vertices = cfg.Vertices[:2]
			},
			kind:     core.CompileError,
			resource: core.ResourceGeometry,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			cfg := f.config()
			tc.setup(f, &cfg)

			mesh, err := f.manager.MeshSystem.Load(cfg)
			if mesh != nil {
				t.Errorf("expected no mesh, got %+v", mesh)
			}
			expectLoadError(t, err, tc.kind, tc.resource)
			if f.backend.live() != 0 {
				t.Errorf("failed load left %d GPU objects behind", f.backend.live())
			}
		})
	}
}

func TestCompileErrorMatchesSentinel(t *testing.T) {
	f := newFixture(t)
	f.backend.shaderErr = errors.New("0:1(1): error: syntax error")

	_, err := f.manager.MeshSystem.Load(f.config())
	if !errors.Is(err, core.ErrCompile) {
		t.Errorf("expected errors.Is(err, ErrCompile), got %v", err)
	}
}

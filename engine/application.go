package engine

import (
	"bytes"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/components"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
	"github.com/spaghettifunk/orbit/engine/simulation"
)

// AssetsConfig locates the files the quad mesh is built from. Relative
// paths are resolved against the working directory.
type AssetsConfig struct {
	Root           string `toml:"root"`
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	DiffuseTexture string `toml:"diffuse_texture"`
	NormalTexture  string `toml:"normal_texture"`
}

type ProjectionConfig struct {
	ZNear float32 `toml:"z_near"`
	ZFar  float32 `toml:"z_far"`
}

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"height"`
	// The application name used in windowing, if applicable.
	Name     string        `toml:"name"`
	LogLevel core.LogLevel `toml:"log_level"`
	// Wall-clock budget of one frame.
	FramePeriodMS float64        `toml:"frame_period_ms"`
	ClockMode     core.ClockMode `toml:"clock_mode"`
	ClockStep     float32        `toml:"clock_step"`
	// Resources whose failure to load stops the application. Failures of
	// any other resource leave the application running without the mesh.
	FatalResources []core.ResourceKind `toml:"fatal_resources"`
	// Reload watch on the asset root; cached images are evicted on change.
	WatchAssets bool `toml:"watch_assets"`

	Assets     AssetsConfig           `toml:"assets"`
	Orbit      simulation.OrbitConfig `toml:"orbit"`
	Projection ProjectionConfig       `toml:"projection"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:      100,
		StartPosY:      100,
		StartWidth:     1024,
		StartHeight:    768,
		Name:           "Orbit",
		LogLevel:       core.InfoLevel,
		FramePeriodMS:  core.DefaultFramePeriod.Seconds() * 1000,
		ClockMode:      core.ClockModeFixed,
		ClockStep:      core.DefaultClockStep,
		FatalResources: []core.ResourceKind{core.ResourceShader},
		WatchAssets:    false,
		Assets: AssetsConfig{
			Root:           "assets",
			VertexShader:   "assets/shaders/vertex.glsl",
			FragmentShader: "assets/shaders/fragment.glsl",
			DiffuseTexture: "assets/textures/wall-diffuse.png",
			NormalTexture:  "assets/textures/wall-normal.png",
		},
		Orbit: simulation.DefaultOrbitConfig(),
		Projection: ProjectionConfig{
			ZNear: components.DefaultZNear,
			ZFar:  components.DefaultZFar,
		},
	}
}

// LoadApplicationConfig reads a TOML file over the defaults: keys missing
// from the file keep their default value, unknown keys are an error. A
// missing file yields the defaults.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogWarn("config file %s not found, using defaults", path)
			return config, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, errors.Errorf("config %s: %s", path, strict.String())
		}
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return errors.Errorf("window size %dx%d must not be empty", c.StartWidth, c.StartHeight)
	}
	if c.FramePeriodMS <= 0 {
		return errors.Errorf("frame_period_ms must be positive, got %f", c.FramePeriodMS)
	}
	if _, err := core.ParseClockMode(string(c.ClockMode)); err != nil {
		return err
	}
	if c.ClockStep <= 0 {
		return errors.Errorf("clock_step must be positive, got %f", c.ClockStep)
	}
	if c.Orbit.Delay <= 0 {
		return errors.Errorf("orbit delay must be positive, got %f", c.Orbit.Delay)
	}
	if c.Projection.ZNear <= 0 || c.Projection.ZNear >= c.Projection.ZFar {
		return errors.Errorf("projection needs 0 < z_near < z_far, got %f and %f", c.Projection.ZNear, c.Projection.ZFar)
	}
	for _, r := range c.FatalResources {
		switch r {
		case core.ResourceText, core.ResourceShader, core.ResourceImage, core.ResourceGeometry:
		default:
			return errors.Errorf("unknown resource %q in fatal_resources", r)
		}
	}
	return nil
}

// FramePeriod is the frame budget handed to the pacer.
func (c *ApplicationConfig) FramePeriod() time.Duration {
	return time.Duration(math.Round(c.FramePeriodMS * float64(time.Millisecond)))
}

// IsFatal reports whether failing to load the resource stops the application.
func (c *ApplicationConfig) IsFatal(resource core.ResourceKind) bool {
	for _, r := range c.FatalResources {
		if r == resource {
			return true
		}
	}
	return false
}

// MeshConfig describes the textured quad drawn by the engine.
func (c *ApplicationConfig) MeshConfig() metadata.MeshConfig {
	return metadata.MeshConfig{
		Name:               "quad",
		Vertices:           components.NewPlane(),
		Topology:           metadata.PrimitiveTopologyTriangleStrip,
		VertexShaderPath:   c.Assets.VertexShader,
		FragmentShaderPath: c.Assets.FragmentShader,
		DiffuseTexturePath: c.Assets.DiffuseTexture,
		NormalTexturePath:  c.Assets.NormalTexture,
	}
}

package engine

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spaghettifunk/orbit/engine/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultApplicationConfig(t *testing.T) {
	c := DefaultApplicationConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if c.StartWidth != 1024 || c.StartHeight != 768 {
		t.Errorf("window = %dx%d", c.StartWidth, c.StartHeight)
	}
	if c.FramePeriod() != core.DefaultFramePeriod {
		t.Errorf("frame period = %s, expected %s", c.FramePeriod(), core.DefaultFramePeriod)
	}
	if !c.IsFatal(core.ResourceShader) || c.IsFatal(core.ResourceImage) {
		t.Errorf("default policy should only stop on shader failures: %v", c.FatalResources)
	}
	if c.Projection.ZNear != 0.1 || c.Projection.ZFar != 1024 {
		t.Errorf("projection = %+v", c.Projection)
	}
}

func TestLoadApplicationConfigMissingFile(t *testing.T) {
	c, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should give defaults, got %v", err)
	}
	if !reflect.DeepEqual(c, DefaultApplicationConfig()) {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoadApplicationConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
name = "Spinning wall"
width = 640
log_level = "debug"
frame_period_ms = 33.0
clock_mode = "delta"
fatal_resources = ["shader", "image"]
watch_assets = true

[assets]
diffuse_texture = "textures/brick.webp"

[orbit]
camera_radius = 5.0

[projection]
z_far = 100.0
`)

	c, err := LoadApplicationConfig(path)
	if err != nil {
		t.Fatalf("LoadApplicationConfig: %v", err)
	}
	if c.Name != "Spinning wall" || c.StartWidth != 640 || c.LogLevel != core.DebugLevel {
		t.Errorf("window section = %+v", c)
	}
	if c.FramePeriod() != 33*time.Millisecond || c.ClockMode != core.ClockModeDelta {
		t.Errorf("timing = %s / %s", c.FramePeriod(), c.ClockMode)
	}
	if !c.IsFatal(core.ResourceImage) || !c.WatchAssets {
		t.Errorf("policy = %v, watch = %t", c.FatalResources, c.WatchAssets)
	}
	if c.Assets.DiffuseTexture != "textures/brick.webp" || c.MeshConfig().DiffuseTexturePath != "textures/brick.webp" {
		t.Errorf("assets = %+v", c.Assets)
	}
	if c.Orbit.CameraRadius != 5 || c.Orbit.LightRadius != 10 || c.Orbit.Delay != 100 {
		t.Errorf("orbit = %+v", c.Orbit)
	}
	if c.Projection.ZFar != 100 || c.Projection.ZNear != 0.1 {
		t.Errorf("projection = %+v", c.Projection)
	}

	// untouched keys keep their defaults
	if c.StartHeight != 768 || c.Assets.VertexShader != "assets/shaders/vertex.glsl" {
		t.Errorf("defaults were lost: %+v", c)
	}
}

func TestLoadApplicationConfigRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":      `colour = "red"`,
		"bad log level":    `log_level = "loud"`,
		"bad clock mode":   `clock_mode = "wall"`,
		"empty window":     `width = 0`,
		"near beyond far":  "[projection]\nz_near = 10.0\nz_far = 1.0",
		"unknown resource": `fatal_resources = ["sound"]`,
		"zero delay":       "[orbit]\ndelay = 0.0",
		"zero clock step":  `clock_step = 0.0`,
		"negative step":    `clock_step = -1.0`,
		"zero period":      `frame_period_ms = 0.0`,
		"not toml":         `this is = = not toml`,
	}
	for name, body := range tests {
		if _, err := LoadApplicationConfig(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

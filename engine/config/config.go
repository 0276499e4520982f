package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/memmaker/tilemesh/engine/util"
	"github.com/memmaker/tilemesh/engine/voxel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const EnvConfigPath = "TILEMESH_CONFIG"

type Config struct {
	World  voxel.Dimensions `yaml:"world"`
	Build  BuildConfig      `yaml:"build"`
	Export ExportConfig     `yaml:"export"`
	Log    LogConfig        `yaml:"log"`
}

type BuildConfig struct {
	// Workers above one meshes chunks in parallel.
	Workers int `yaml:"workers"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories"`
}

func Default() *Config {
	return &Config{
		World:  voxel.DefaultDimensions(),
		Build:  BuildConfig{Workers: 1},
		Export: ExportConfig{Path: "world.glb"},
		Log: LogConfig{
			Level:      "info",
			Categories: []string{"all"},
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path falls back to
// the TILEMESH_CONFIG environment variable, and without either the defaults
// are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err = Decode(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	util.LogIOInfo(fmt.Sprintf("[Config] Loaded %s", path))
	return cfg, nil
}

// Decode merges YAML into cfg and validates the result. Unknown keys are
// rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding yaml")
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return errors.Wrap(err, "world")
	}
	if c.Build.Workers < 1 {
		return errors.Errorf("build: workers must be at least 1, got %d", c.Build.Workers)
	}
	if c.Export.Path != "" {
		ext := strings.ToLower(filepath.Ext(c.Export.Path))
		if ext != ".glb" && ext != ".gltf" {
			return errors.Errorf("export: unsupported format %q", ext)
		}
	}
	if _, err := util.ParseLogLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log")
	}
	if _, err := util.ParseLogCategories(c.Log.Categories); err != nil {
		return errors.Wrap(err, "log")
	}
	return nil
}

// ApplyLogging sets the global log filters.
func (c *Config) ApplyLogging() error {
	level, err := util.ParseLogLevel(c.Log.Level)
	if err != nil {
		return err
	}
	categories, err := util.ParseLogCategories(c.Log.Categories)
	if err != nil {
		return err
	}
	util.GLOBAL_LOG_LEVEL = level
	util.GLOBAL_LOG_CATEGORIES = categories
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/memmaker/tilemesh/engine/util"
	"github.com/memmaker/tilemesh/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilemesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, voxel.DefaultDimensions(), cfg.World)
	assert.Equal(t, 1, cfg.Build.Workers)
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  chunk_size: 32
  expansion: 4
build:
  workers: 8
log:
  level: debug
  categories: [voxel, export]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(32), cfg.World.ChunkSize)
	assert.Equal(t, int32(4), cfg.World.Expansion)
	assert.Equal(t, float32(0.1), cfg.World.VoxelSize)
	assert.Equal(t, 8, cfg.Build.Workers)
	assert.Equal(t, "world.glb", cfg.Export.Path)
	assert.Equal(t, []string{"voxel", "export"}, cfg.Log.Categories)
}

func TestLoadFromEnvironment(t *testing.T) {
	path := writeConfig(t, "export:\n  path: out/level.gltf\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out/level.gltf", cfg.Export.Path)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero chunk size":  "world:\n  chunk_size: 0\n",
		"negative voxel":   "world:\n  voxel_size: -1\n",
		"no workers":       "build:\n  workers: 0\n",
		"bad export":       "export:\n  path: world.obj\n",
		"bad level":        "log:\n  level: loud\n",
		"bad category":     "log:\n  categories: [network]\n",
		"unknown key":      "world:\n  chunk_count: 3\n",
		"malformed yaml":   "world: [",
	}
	for name, content := range cases {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyLogging(t *testing.T) {
	prevLevel, prevCats := util.GLOBAL_LOG_LEVEL, util.GLOBAL_LOG_CATEGORIES
	t.Cleanup(func() {
		util.GLOBAL_LOG_LEVEL, util.GLOBAL_LOG_CATEGORIES = prevLevel, prevCats
	})

	cfg := Default()
	cfg.Log = LogConfig{Level: "error", Categories: []string{"io"}}
	require.NoError(t, cfg.ApplyLogging())
	assert.Equal(t, util.LogLevelError, util.GLOBAL_LOG_LEVEL)
	assert.Equal(t, util.LogIO, util.GLOBAL_LOG_CATEGORIES)
}

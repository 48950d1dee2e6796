// Package config loads the engine's tunables from YAML, mirroring
// firestar-voxel-world/chunk-server's config package: a nested struct
// with an in-code Default() and a Load(path) that overlays YAML on it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig holds the chunk-grid and scheduler tunables (spec §6).
type WorldConfig struct {
	DrawDistance     int     `yaml:"draw_distance"`
	BlockSize        float64 `yaml:"block_size"`
	ChunkWidth       int     `yaml:"chunk_width"`
	ChunkHeight      int     `yaml:"chunk_height"`
	MaxChunksPerTick int     `yaml:"max_chunks_per_tick"`
	MaxMeshesPerTick int     `yaml:"max_meshes_per_tick"`
	Workers          int     `yaml:"workers"`
}

// HeightConfig holds the height-field quantization tunables (spec §4.1).
type HeightConfig struct {
	Hmin       int     `yaml:"hmin"`
	Hmax       int     `yaml:"hmax"`
	NoiseScale float64 `yaml:"noise_scale"`
}

// NoiseConfig holds the noise source's tunables (spec §6), bootstrapped
// from the original source's FastNoiseLite configuration.
type NoiseConfig struct {
	Seed       int64   `yaml:"seed"`
	Frequency  float64 `yaml:"frequency"`
	Octaves    int     `yaml:"octaves"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
}

// Config is the top-level, YAML-serializable configuration tree.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Height HeightConfig `yaml:"height"`
	Noise  NoiseConfig  `yaml:"noise"`
}

// Default returns the spec §6 defaults, matching the original source's
// FastNoiseLite configuration (frequency 0.02, five octaves, lacunarity
// 2.0, gain 0.3).
func Default() Config {
	return Config{
		World: WorldConfig{
			DrawDistance:     4,
			BlockSize:        100,
			ChunkWidth:       32,
			ChunkHeight:      32,
			MaxChunksPerTick: 8,
			MaxMeshesPerTick: 8,
			Workers:          4,
		},
		Height: HeightConfig{
			Hmin:       6,
			Hmax:       32,
			NoiseScale: 100,
		},
		Noise: NoiseConfig{
			Seed:       1,
			Frequency:  0.02,
			Octaves:    5,
			Lacunarity: 2.0,
			Gain:       0.3,
		},
	}
}

// Load reads a YAML file at path and overlays it on Default(). A missing
// field in the file keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

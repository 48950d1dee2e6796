// Package terrain quantizes the continuous noise field into the integer
// column heights chunks generate from (spec §4.1).
package terrain

import (
	"math"

	"voxelterrain/internal/mathutil"
	"voxelterrain/internal/noise"
)

// Config holds the tunable parameters for HeightField.
type Config struct {
	NoiseScale float64 // world units per noise sample (spec default 100)
	Hmin, Hmax int     // clamp range for column height (spec default 6, 32)
}

// DefaultConfig returns the spec §6 defaults.
func DefaultConfig() Config {
	return Config{NoiseScale: 100, Hmin: 6, Hmax: 32}
}

// HeightField quantizes a noise.Source into integer column heights.
// Two chunks sharing a vertical column must agree on its height, which
// holds here because ColumnHeight is a pure function of (x, y) and the
// noise source itself is deterministic.
type HeightField struct {
	noise noise.Source
	cfg   Config
}

// New creates a HeightField over the given noise source.
func New(source noise.Source, cfg Config) *HeightField {
	if cfg.NoiseScale == 0 {
		cfg.NoiseScale = 100
	}
	if cfg.Hmax <= cfg.Hmin {
		cfg.Hmin, cfg.Hmax = 6, 32
	}
	return &HeightField{noise: source, cfg: cfg}
}

// ColumnHeight returns the integer cell height at the given world (x, y)
// position, clamped to [Hmin, Hmax] (spec §4.1).
func (h *HeightField) ColumnHeight(worldX, worldY float64) int {
	n := h.noise.Height2D(worldX/h.cfg.NoiseScale, worldY/h.cfg.NoiseScale)
	normalized := (n + 1) / 2 // [-1,1] -> [0,1]
	span := float64(h.cfg.Hmax - h.cfg.Hmin)
	height := int(math.Floor(float64(h.cfg.Hmin) + normalized*span))
	return mathutil.ClampInt(height, h.cfg.Hmin, h.cfg.Hmax)
}

// Hmin returns the configured minimum column height.
func (h *HeightField) Hmin() int { return h.cfg.Hmin }

// Hmax returns the configured maximum column height.
func (h *HeightField) Hmax() int { return h.cfg.Hmax }

package scheduler

import "voxelterrain/internal/voxel"

// Config holds the scheduler's tunables (spec §6).
type Config struct {
	DrawDistance     int // D in spec §4.7. Default 4.
	BlockSize        float64
	Dims             voxel.Dimensions
	Seed             int64
	MaxChunksPerTick int // initial gen cap before the backlog adapts it. Default 8.
	MaxMeshesPerTick int // initial mesh cap before the backlog adapts it. Default 8.
	Workers          int // background worker-pool size. Default 4.
}

// DefaultConfig returns the spec §6 defaults.
func DefaultConfig(seed int64) Config {
	return Config{
		DrawDistance:     4,
		BlockSize:        100,
		Dims:             voxel.DefaultDimensions(),
		Seed:             seed,
		MaxChunksPerTick: 8,
		MaxMeshesPerTick: 8,
		Workers:          4,
	}
}

// genCap implements the gen-queue backlog-adaptive cap table (spec §4.7).
// Its low-backlog floor is cfg.MaxChunksPerTick, the configured "initial
// cap before adaptation" (spec §6) — so changing that setting actually
// changes scheduling instead of being read and ignored.
func (cfg Config) genCap(qlen int) int {
	switch {
	case qlen >= 600:
		return 32
	case qlen >= 300:
		return 16
	case qlen >= 100:
		return 8
	default:
		return cfg.MaxChunksPerTick
	}
}

// meshCap implements the mesh-queue backlog-adaptive cap table (spec
// §4.7), floored at the configured cfg.MaxMeshesPerTick for the same
// reason genCap is.
func (cfg Config) meshCap(qlen int) int {
	switch {
	case qlen >= 600:
		return 16
	case qlen >= 300:
		return 8
	case qlen >= 100:
		return 4
	case qlen >= 50:
		return 2
	default:
		return cfg.MaxMeshesPerTick
	}
}

// Package engine wires the noise source, height field, and scheduler
// into the single per-tick entry point a host calls into, adapted from
// the teacher's internal/world/world.go Update loop with its render,
// physics, save, creature, and time-of-day wiring stripped out — none of
// that is in scope here (spec §1's OUT OF SCOPE list).
package engine

import (
	"voxelterrain/internal/config"
	"voxelterrain/internal/noise"
	"voxelterrain/internal/scheduler"
	"voxelterrain/internal/terrain"
	"voxelterrain/internal/voxel"
)

// Engine owns the world's noise source, height field, and scheduler, and
// exposes a single Tick call a host drives once per frame (or once per
// fixed timestep, in the headless demo).
type Engine struct {
	cfg    config.Config
	height *terrain.HeightField
	sched  *scheduler.Manager
}

// New builds an Engine from a Config, a Viewer, and a MeshSink. The
// Engine owns the scheduler's worker pool from construction; call Close
// when done with it.
func New(cfg config.Config, viewer scheduler.Viewer, sink scheduler.MeshSink) *Engine {
	source := noise.New(noise.Config{
		Seed:       cfg.Noise.Seed,
		Frequency:  cfg.Noise.Frequency,
		Octaves:    cfg.Noise.Octaves,
		Lacunarity: cfg.Noise.Lacunarity,
		Gain:       cfg.Noise.Gain,
	})
	height := terrain.New(source, terrain.Config{
		NoiseScale: cfg.Height.NoiseScale,
		Hmin:       cfg.Height.Hmin,
		Hmax:       cfg.Height.Hmax,
	})

	schedCfg := scheduler.Config{
		DrawDistance:     cfg.World.DrawDistance,
		BlockSize:        cfg.World.BlockSize,
		Dims:             voxel.Dimensions{Width: cfg.World.ChunkWidth, Height: cfg.World.ChunkHeight},
		Seed:             cfg.Noise.Seed,
		MaxChunksPerTick: cfg.World.MaxChunksPerTick,
		MaxMeshesPerTick: cfg.World.MaxMeshesPerTick,
		Workers:          cfg.World.Workers,
	}

	return &Engine{
		cfg:    cfg,
		height: height,
		sched:  scheduler.NewManager(schedCfg, height, viewer, sink),
	}
}

// Tick advances the world by one scheduler step. dt is accepted for
// interface parity with a real frame loop but is otherwise unused: the
// scheduler's throughput is backlog-adaptive, not time-based (spec
// §4.7), matching the original source's fixed tick-interval model (see
// SPEC_FULL.md's "Tick-interval batching" note).
func (e *Engine) Tick(dt float64) scheduler.TickStats {
	return e.sched.Tick()
}

// SetBlock performs a foreground edit (spec §4.4), delegating to the
// scheduler's Authoritative-mode rebuild.
func (e *Engine) SetBlock(origin voxel.ChunkCoord, local voxel.BlockCoord, t voxel.BlockType) error {
	return e.sched.SetBlock(origin, local, t)
}

// Scheduler exposes the underlying scheduler for introspection (tests,
// the demo cmd's logging).
func (e *Engine) Scheduler() *scheduler.Manager { return e.sched }

// Close releases the scheduler's worker pool.
func (e *Engine) Close() { e.sched.Close() }

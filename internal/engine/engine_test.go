package engine

import (
	"testing"
	"time"

	"voxelterrain/internal/config"
	"voxelterrain/internal/meshsink"
	"voxelterrain/internal/voxel"
)

type stillViewer struct{}

func (stillViewer) CurrentPosition() (float64, float64, float64) { return 0, 0, 0 }

func TestEngineTicksProduceMeshes(t *testing.T) {
	cfg := config.Default()
	cfg.World.DrawDistance = 1
	cfg.World.ChunkWidth = 4
	cfg.World.ChunkHeight = 4

	sink := meshsink.NewRecorder()
	e := New(cfg, stillViewer{}, sink)
	defer e.Close()

	for i := 0; i < 10; i++ {
		e.Tick(1.0 / 60.0)
		time.Sleep(2 * time.Millisecond)
	}

	deadline := time.Now().Add(time.Second)
	for sink.Applies() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if sink.Applies() == 0 {
		t.Fatalf("expected at least one mesh to be applied after several ticks")
	}
}

func TestEngineSetBlockUnknownChunk(t *testing.T) {
	cfg := config.Default()
	sink := meshsink.NewRecorder()
	e := New(cfg, stillViewer{}, sink)
	defer e.Close()

	err := e.SetBlock(voxel.ChunkCoord{X: 999, Y: 999}, voxel.BlockCoord{}, voxel.Air)
	if err != voxel.ErrUnknownChunk {
		t.Fatalf("expected ErrUnknownChunk, got %v", err)
	}
}

package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"voxelterrain/internal/voxel"
)

type fixedViewer struct{ x, y, z float64 }

func (v fixedViewer) CurrentPosition() (float64, float64, float64) { return v.x, v.y, v.z }

type recordingSink struct {
	mu      sync.Mutex
	applied map[voxel.ChunkCoord]*voxel.MeshPayload
}

func newRecordingSink() *recordingSink {
	return &recordingSink{applied: make(map[voxel.ChunkCoord]*voxel.MeshPayload)}
}

func (s *recordingSink) Apply(origin voxel.ChunkCoord, payload *voxel.MeshPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied[origin] = payload
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.applied)
}

type flatHeights int

func (h flatHeights) ColumnHeight(x, y float64) int { return int(h) }

func waitForCondition(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	if !cond() {
		t.Fatalf("condition not met within %v", timeout)
	}
}

func TestManagerTicksGenerateAndMesh(t *testing.T) {
	cfg := DefaultConfig(1)
	cfg.DrawDistance = 1
	cfg.Dims = voxel.Dimensions{Width: 4, Height: 4}

	sink := newRecordingSink()
	m := NewManager(cfg, flatHeights(2), fixedViewer{}, sink)
	defer m.Close()

	for i := 0; i < 5; i++ {
		m.Tick()
		time.Sleep(2 * time.Millisecond)
	}

	waitForCondition(t, time.Second, func() bool { return sink.count() > 0 })
}

func TestManagerBackpressureCapsGenDispatch(t *testing.T) {
	cfg := DefaultConfig(1)
	cfg.DrawDistance = 4 // pool capacity (2*4)^2=64, enough to acquire the 32 dispatched below
	cfg.Dims = voxel.Dimensions{Width: 4, Height: 4}
	cfg.Workers = 1

	m := NewManager(cfg, flatHeights(2), fixedViewer{}, newRecordingSink())
	defer m.Close()

	// Directly seed a 700-entry backlog (scenario 5, spec §8): the next
	// tick must dispatch exactly 32, the genCap(700) bucket.
	m.genQueue = m.genQueue[:0]
	for i := 0; i < 700; i++ {
		origin := voxel.ChunkCoord{X: int32(i + 1000), Y: 0}
		m.registry.Reserve(origin)
		m.genQueue = append(m.genQueue, origin)
	}

	dispatched := m.drainGenQueue(m.cfg.genCap(len(m.genQueue)))
	require.Equal(t, 32, dispatched, "expected 32 dispatched from a 700-deep backlog")
}

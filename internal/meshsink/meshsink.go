// Package meshsink provides MeshSink implementations. The host renderer's
// real mesh-component API is out of scope (spec §1); Recorder stands in
// for it in tests and the headless demo cmd.
package meshsink

import (
	"sync"

	"voxelterrain/internal/voxel"
)

// Recorder is an in-memory MeshSink that keeps the most recent payload
// applied for each chunk origin, plus a running apply count. It is safe
// for concurrent use, though the scheduler only ever calls Apply from the
// foreground thread.
type Recorder struct {
	mu       sync.Mutex
	payloads map[voxel.ChunkCoord]*voxel.MeshPayload
	applies  int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{payloads: make(map[voxel.ChunkCoord]*voxel.MeshPayload)}
}

// Apply implements scheduler.MeshSink.
func (r *Recorder) Apply(origin voxel.ChunkCoord, payload *voxel.MeshPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads[origin] = payload
	r.applies++
	return nil
}

// Get returns the last payload applied for origin, if any.
func (r *Recorder) Get(origin voxel.ChunkCoord) (*voxel.MeshPayload, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payloads[origin]
	return p, ok
}

// Applies returns the total number of successful Apply calls observed.
func (r *Recorder) Applies() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applies
}

// Count returns the number of distinct origins currently holding a mesh.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

// Package scheduler implements the per-tick admission-controlled
// ChunkManager (spec §4.7): it computes the desired chunk set around a
// viewer, diffs it against the registry, and dispatches generation and
// meshing work to a background worker pool, draining both FIFOs under
// backlog-adaptive per-tick caps. The worker-pool shape (task/result
// channels drained by N goroutines under a WaitGroup and a cancellable
// context) is the concurrency idiom the corpus itself uses for CPU-bound
// background work.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"voxelterrain/internal/voxel"
)

// Viewer is the external observation-point source (spec §6). The actual
// camera/player controller lives in the host; only this contract is
// specified.
type Viewer interface {
	CurrentPosition() (x, y, z float64)
}

// MeshSink receives finished mesh payloads on the foreground thread (spec
// §6). The actual renderer-side mesh component lives in the host.
type MeshSink interface {
	Apply(origin voxel.ChunkCoord, payload *voxel.MeshPayload) error
}

type genTask struct {
	origin voxel.ChunkCoord
	chunk  *voxel.Chunk
}

type genResult struct {
	origin voxel.ChunkCoord
	chunk  *voxel.Chunk
	err    error
}

type meshTask struct {
	chunk *voxel.Chunk
}

type meshResult struct {
	chunk   *voxel.Chunk
	payload *voxel.MeshPayload
	err     error
}

// TickStats summarizes one Tick call, mostly useful for tests and the
// demo cmd's logging.
type TickStats struct {
	GenQueueLen    int
	MeshQueueLen   int
	GenDispatched  int
	MeshDispatched int
	GenCap         int
	MeshCap        int
}

// Manager is the scheduler described in spec §4.7.
type Manager struct {
	cfg     Config
	heights voxel.HeightSource
	viewer  Viewer
	sink    MeshSink

	registry *voxel.Registry
	pool     *voxel.Pool

	genQueue  []voxel.ChunkCoord
	meshQueue []*voxel.Chunk

	genTasks    chan genTask
	genResults  chan genResult
	meshTasks   chan meshTask
	meshResults chan meshResult

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager builds a scheduler and starts its background worker pool.
// Close must be called to stop the workers.
func NewManager(cfg Config, heights voxel.HeightSource, viewer Viewer, sink MeshSink) *Manager {
	capacity := (2 * cfg.DrawDistance) * (2 * cfg.DrawDistance)
	if capacity <= 0 {
		capacity = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		cfg:         cfg,
		heights:     heights,
		viewer:      viewer,
		sink:        sink,
		registry:    voxel.NewRegistry(),
		pool:        voxel.NewPool(capacity, cfg.Dims, cfg.BlockSize),
		genTasks:    make(chan genTask, capacity),
		genResults:  make(chan genResult, capacity),
		meshTasks:   make(chan meshTask, capacity),
		meshResults: make(chan meshResult, capacity),
		ctx:         ctx,
		cancel:      cancel,
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	for i := 0; i < workers; i++ {
		m.wg.Add(2)
		go m.genWorker()
		go m.meshWorker()
	}
	return m
}

// Close stops the worker pool and waits for every in-flight task to
// return.
func (m *Manager) Close() {
	m.cancel()
	close(m.genTasks)
	close(m.meshTasks)
	m.wg.Wait()
}

func (m *Manager) genWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.ctx.Done():
			return
		case t, ok := <-m.genTasks:
			if !ok {
				return
			}
			err := t.chunk.Generate(m.heights)
			select {
			case m.genResults <- genResult{origin: t.origin, chunk: t.chunk, err: err}:
			case <-m.ctx.Done():
				return
			}
		}
	}
}

func (m *Manager) meshWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.ctx.Done():
			return
		case t, ok := <-m.meshTasks:
			if !ok {
				return
			}
			resolver := voxel.FastResolver{Heights: m.heights, BlockSize: m.cfg.BlockSize}
			payload, err := t.chunk.BuildMesh(resolver)
			select {
			case m.meshResults <- meshResult{chunk: t.chunk, payload: payload, err: err}:
			case <-m.ctx.Done():
				return
			}
		}
	}
}

// Tick runs one scheduler step (spec §4.7, steps 1-5): adapt throughput
// from backlog, recompute the desired set, diff it against the registry,
// and drain both FIFOs under the resulting caps. Results from the
// previous tick's dispatches are collected first, since the foreground
// thread only ever polls the completion channels once per tick.
func (m *Manager) Tick() TickStats {
	m.collectCompletions()

	genCapN := m.cfg.genCap(len(m.genQueue))
	meshCapN := m.cfg.meshCap(len(m.meshQueue))

	vx, vy, _ := m.viewer.CurrentPosition()
	center := viewerChunkCoord(vx, vy, m.cfg.Dims, m.cfg.BlockSize)
	desired := desiredSet(center, m.cfg.DrawDistance)
	want := make(map[voxel.ChunkCoord]struct{}, len(desired))
	for _, origin := range desired {
		want[origin] = struct{}{}
	}

	for _, origin := range m.registry.Origins() {
		if _, ok := want[origin]; ok {
			continue
		}
		if chunk, published := m.registry.Evict(origin); published {
			m.pool.Release(chunk)
		}
	}
	for _, origin := range desired {
		if m.registry.Contains(origin) {
			continue
		}
		if m.registry.Reserve(origin) {
			m.genQueue = append(m.genQueue, origin)
		}
	}

	genDispatched := m.drainGenQueue(genCapN)
	meshDispatched := m.drainMeshQueue(meshCapN)

	return TickStats{
		GenQueueLen:    len(m.genQueue),
		MeshQueueLen:   len(m.meshQueue),
		GenDispatched:  genDispatched,
		MeshDispatched: meshDispatched,
		GenCap:         genCapN,
		MeshCap:        meshCapN,
	}
}

func (m *Manager) drainGenQueue(capN int) int {
	dispatched := 0
	for dispatched < capN && len(m.genQueue) > 0 {
		origin := m.genQueue[0]
		chunk, err := m.pool.Acquire(origin, m.cfg.Seed)
		if err != nil {
			// PoolExhausted: skip the rest of this tick's gen drain and
			// re-adapt next tick; the origin stays queued.
			break
		}
		m.genQueue = m.genQueue[1:]
		// origin stays merely reserved (not published) until Generate
		// actually succeeds (handleGenResult): publishing here would make
		// an empty, still-generating chunk Lookup-able, letting a
		// foreground edit race the background Generate call for the same
		// chunk (spec §5).
		select {
		case m.genTasks <- genTask{origin: origin, chunk: chunk}:
			dispatched++
		case <-m.ctx.Done():
			return dispatched
		}
	}
	return dispatched
}

func (m *Manager) drainMeshQueue(capN int) int {
	dispatched := 0
	for dispatched < capN && len(m.meshQueue) > 0 {
		chunk := m.meshQueue[0]
		m.meshQueue = m.meshQueue[1:]
		select {
		case m.meshTasks <- meshTask{chunk: chunk}:
			dispatched++
		case <-m.ctx.Done():
			return dispatched
		}
	}
	return dispatched
}

// collectCompletions drains whatever gen/mesh results are currently
// sitting in the completion channels without blocking, reconciling
// scheduler state for each.
func (m *Manager) collectCompletions() {
	for {
		select {
		case r := <-m.genResults:
			m.handleGenResult(r)
			continue
		default:
		}
		break
	}
	for {
		select {
		case r := <-m.meshResults:
			m.handleMeshResult(r)
			continue
		default:
		}
		break
	}
}

func (m *Manager) handleGenResult(r genResult) {
	if r.err != nil {
		log.Printf("scheduler: generate failed for %v: %v", r.origin, r.err)
		if chunk, published := m.registry.Evict(r.origin); published {
			m.pool.Release(chunk)
		} else {
			m.pool.Release(r.chunk)
		}
		return
	}
	if !m.registry.PublishIfTracked(r.origin, r.chunk) {
		// Evicted while generating: no longer desired, so the chunk goes
		// straight back to the pool instead of being published.
		m.pool.Release(r.chunk)
		return
	}
	m.meshQueue = append(m.meshQueue, r.chunk)
}

func (m *Manager) handleMeshResult(r meshResult) {
	if r.err != nil {
		if errors.Is(r.err, voxel.ErrChunkBusy) {
			// The chunk was mid-edit when this build ran; retry next
			// tick instead of dropping it (spec §5: never skip a phase,
			// just refuse to let it overlap another).
			m.meshQueue = append(m.meshQueue, r.chunk)
			return
		}
		log.Printf("scheduler: mesh build failed for %v: %v", r.chunk.Origin(), r.err)
		return
	}
	if err := m.sink.Apply(r.chunk.Origin(), r.payload); err != nil {
		log.Printf("scheduler: %v rejected mesh for %v: %v", voxel.ErrMeshApplyFailed, r.chunk.Origin(), err)
		m.meshQueue = append(m.meshQueue, r.chunk)
	}
}

// SetBlock performs an edit (spec §4.4/§4.7): it runs synchronously on
// the calling (foreground) goroutine and always rebuilds in Authoritative
// mode, bypassing the gen/mesh queues entirely. Edits never partially
// apply: either the block changes and a rebuilt mesh reaches the sink, or
// an error is returned and nothing happens.
func (m *Manager) SetBlock(origin voxel.ChunkCoord, local voxel.BlockCoord, t voxel.BlockType) error {
	chunk, ok := m.registry.Lookup(origin)
	if !ok {
		return voxel.ErrUnknownChunk
	}
	changed, err := chunk.ModifyBlock(local, t)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	payload, err := chunk.BuildMesh(m.registry)
	if err != nil {
		return err
	}
	if err := m.sink.Apply(origin, payload); err != nil {
		return fmt.Errorf("%w: %v", voxel.ErrMeshApplyFailed, err)
	}
	return nil
}

// GenQueueLen returns the current pending generation-queue length.
func (m *Manager) GenQueueLen() int { return len(m.genQueue) }

// MeshQueueLen returns the current pending mesh-queue length.
func (m *Manager) MeshQueueLen() int { return len(m.meshQueue) }

// Registry exposes the scheduler's chunk registry for read-only queries
// (e.g. a host renderer looking up a chunk to remove).
func (m *Manager) Registry() *voxel.Registry { return m.registry }

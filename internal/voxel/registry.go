package voxel

import (
	"sync"

	"voxelterrain/internal/mathutil"
)

// registryEntry distinguishes a reserved-but-not-yet-published slot
// (tombstone) from a fully published chunk, so concurrent lookups never
// observe a half-generated chunk.
type registryEntry struct {
	chunk     *Chunk
	reserved  bool
	published bool
}

// Registry is the process-wide map from ChunkCoord to live Chunk (spec
// §4.5). It also implements NeighborResolver, answering Authoritative
// mesh-build queries: a coordinate owned by an unregistered or merely
// reserved chunk counts as air, so boundary faces are still emitted while
// a neighbor is mid-generation.
type Registry struct {
	mu      sync.RWMutex
	entries map[ChunkCoord]*registryEntry
}

// NewRegistry creates an empty chunk registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ChunkCoord]*registryEntry)}
}

// Reserve marks origin as claimed by an in-flight generation, before the
// chunk itself exists. A second Reserve on the same origin is a no-op: it
// returns false if the origin was already reserved or published.
func (r *Registry) Reserve(origin ChunkCoord) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[origin]; exists {
		return false
	}
	r.entries[origin] = &registryEntry{reserved: true}
	return true
}

// Publish installs a generated chunk at its origin, replacing its
// tombstone. It installs unconditionally: an origin that was never
// reserved gets a new, published entry.
func (r *Registry) Publish(origin ChunkCoord, c *Chunk) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[origin]
	if !ok {
		e = &registryEntry{}
		r.entries[origin] = e
	}
	e.chunk = c
	e.reserved = false
	e.published = true
}

// PublishIfTracked installs a generated chunk for origin, but only if
// origin is still tracked (reserved or already published). It reports
// whether the chunk was installed. A false return means origin was
// evicted while generation was in flight — the chunk is no longer
// desired, and the caller still owns it and must return it to its pool
// rather than resurrecting a registry entry for a chunk nobody wants.
func (r *Registry) PublishIfTracked(origin ChunkCoord, c *Chunk) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[origin]
	if !ok {
		return false
	}
	e.chunk = c
	e.reserved = false
	e.published = true
	return true
}

// Lookup returns the published chunk at origin, if any.
func (r *Registry) Lookup(origin ChunkCoord) (*Chunk, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[origin]
	if !ok || !e.published {
		return nil, false
	}
	return e.chunk, true
}

// Contains reports whether origin has any entry (reserved or published).
func (r *Registry) Contains(origin ChunkCoord) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[origin]
	return ok
}

// Origins returns every origin currently tracked, reserved or published.
func (r *Registry) Origins() []ChunkCoord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ChunkCoord, 0, len(r.entries))
	for origin := range r.entries {
		out = append(out, origin)
	}
	return out
}

// Evict removes origin from the registry entirely, returning the evicted
// chunk (if any) so the caller can return it to a ChunkPool.
func (r *Registry) Evict(origin ChunkCoord) (*Chunk, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[origin]
	if !ok {
		return nil, false
	}
	delete(r.entries, origin)
	return e.chunk, e.published
}

// IsAir implements NeighborResolver for Authoritative mesh building: an
// unregistered, merely-reserved, or out-of-range neighbor is air.
func (r *Registry) IsAir(owner ChunkCoord, dims Dimensions, local BlockCoord) bool {
	if local.Z < 0 || local.Z >= dims.Height {
		return true
	}
	neighborChunk, neighborLocal := translateToNeighborChunk(owner, dims, local)
	c, ok := r.Lookup(neighborChunk)
	if !ok {
		return true
	}
	b, err := c.Block(neighborLocal)
	if err != nil {
		return true
	}
	return b.IsAir()
}

// translateToNeighborChunk resolves a local coordinate that may fall
// outside owner's horizontal footprint to the ChunkCoord that actually
// owns it, plus that chunk's own local coordinate for the same cell.
func translateToNeighborChunk(owner ChunkCoord, dims Dimensions, local BlockCoord) (ChunkCoord, BlockCoord) {
	deltaX := mathutil.FloorDiv(local.X, dims.Width)
	deltaY := mathutil.FloorDiv(local.Y, dims.Width)
	neighbor := ChunkCoord{X: owner.X + int32(deltaX), Y: owner.Y + int32(deltaY)}
	localX := local.X - deltaX*dims.Width
	localY := local.Y - deltaY*dims.Width
	return neighbor, BlockCoord{X: localX, Y: localY, Z: local.Z}
}

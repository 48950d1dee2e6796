package voxel

import "sync"

// Pool is a fixed-capacity freelist of *Chunk, sized to (2*DrawDistance)^2
// so the working set never allocates beyond the view's maximum chunk
// count (spec §4.6). It is a freelist, not an LRU cache: a chunk taken
// out by Acquire is the caller's to reuse (after Generate overwrites it),
// and Release only succeeds while the pool has spare capacity.
type Pool struct {
	mu        sync.Mutex
	free      []*Chunk
	capacity  int
	dims      Dimensions
	blockSize float64
}

// NewPool preallocates capacity empty chunks.
func NewPool(capacity int, dims Dimensions, blockSize float64) *Pool {
	p := &Pool{capacity: capacity, dims: dims, blockSize: blockSize}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, NewChunk(ChunkCoord{}, dims, blockSize, 0))
	}
	return p
}

// Acquire removes a chunk from the freelist and re-homes it at origin
// with the given seed, ready for Generate. It returns ErrPoolExhausted if
// the freelist is empty.
func (p *Pool) Acquire(origin ChunkCoord, seed int64) (*Chunk, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		return nil, ErrPoolExhausted
	}
	n := len(p.free) - 1
	c := p.free[n]
	p.free = p.free[:n]

	c.mu.Lock()
	c.origin = origin
	c.seed = seed
	c.grid = NewBlockGrid(c.dims)
	c.potential = make(map[BlockCoord]struct{})
	c.meshState = Empty
	c.mu.Unlock()
	return c, nil
}

// Release returns a chunk to the freelist. It is silently dropped if the
// pool is already at capacity, which should not happen in steady state
// since Release is always paired with a prior Acquire.
func (p *Pool) Release(c *Chunk) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) >= p.capacity {
		return
	}
	p.free = append(p.free, c)
}

// Available returns the number of chunks currently sitting in the
// freelist.
func (p *Pool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

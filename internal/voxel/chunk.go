package voxel

import (
	"sync"

	"voxelterrain/internal/mathutil"
)

// MeshState tracks where a chunk sits in its generate -> mesh -> apply
// lifecycle (spec §5). Transitions are strictly sequential per chunk.
type MeshState int

const (
	Empty MeshState = iota
	Building
	Ready
)

// Mode names the two NeighborResolver strategies a mesh build can use.
// Nothing takes a Mode: BuildMesh just takes whatever resolver it's
// handed (FastResolver for FastBuild, *Registry for Authoritative).
type Mode int

const (
	FastBuild Mode = iota
	Authoritative
)

// Chunk owns one BlockGrid plus the bookkeeping needed to regenerate and
// remesh it: its working set of potentially-visible solid cells, and its
// current point in the mesh lifecycle.
type Chunk struct {
	origin    ChunkCoord
	dims      Dimensions
	blockSize float64
	seed      int64

	mu        sync.RWMutex
	grid      BlockGrid
	potential map[BlockCoord]struct{}
	meshState MeshState
}

// NewChunk allocates an empty chunk at origin. Its grid is all-Air until
// Generate populates it.
func NewChunk(origin ChunkCoord, dims Dimensions, blockSize float64, seed int64) *Chunk {
	return &Chunk{
		origin:    origin,
		dims:      dims,
		blockSize: blockSize,
		seed:      seed,
		grid:      NewBlockGrid(dims),
		potential: make(map[BlockCoord]struct{}),
		meshState: Empty,
	}
}

// Origin returns the chunk's grid coordinate.
func (c *Chunk) Origin() ChunkCoord { return c.origin }

// Dims returns the chunk's cell-count shape.
func (c *Chunk) Dims() Dimensions { return c.dims }

// State returns the chunk's current mesh lifecycle state.
func (c *Chunk) State() MeshState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.meshState
}

// Block returns the block at the given local coordinate.
func (c *Chunk) Block(local BlockCoord) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.At(local)
}

// Generate fills the chunk's BlockGrid from a height field (spec §4.2):
// each column is Stone/Grass below its column height and Air above it,
// with the solid/grass split chosen by a coordinate-seeded hash so
// regenerating the same origin twice reproduces the same blocks. It also
// (re)populates the potential set: every solid cell with at least one air
// neighbor, using the height field alone (never the registry) so
// generation never needs another chunk to already exist.
func (c *Chunk) Generate(heights HeightSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid = NewBlockGrid(c.dims)
	c.potential = make(map[BlockCoord]struct{})
	ox, oy := c.origin.WorldOrigin(c.dims, c.blockSize)
	fast := FastResolver{Heights: heights, BlockSize: c.blockSize}

	for lx := 0; lx < c.dims.Width; lx++ {
		for ly := 0; ly < c.dims.Width; ly++ {
			wx := ox + float64(lx)*c.blockSize
			wy := oy + float64(ly)*c.blockSize
			h := heights.ColumnHeight(wx, wy)

			for lz := 0; lz < h && lz < c.dims.Height; lz++ {
				cell := BlockCoord{X: lx, Y: ly, Z: lz}
				block := Block{Type: c.pickSolid(lx, ly, lz)}
				if err := c.grid.Set(cell, block); err != nil {
					return err
				}

				exposed := false
				for dir := FaceDir(0); dir < faceDirCount; dir++ {
					n := cell.Add(offsets[dir])
					if fast.IsAir(c.origin, c.dims, n) {
						exposed = true
						break
					}
				}
				if exposed {
					c.potential[cell] = struct{}{}
				}
			}
		}
	}
	return nil
}

// pickSolid chooses between Grass and Stone for a solid cell using a
// coordinate-seeded hash, so the choice is reproducible without a shared
// RNG cursor (spec §9).
func (c *Chunk) pickSolid(lx, ly, lz int) BlockType {
	worldX := int(c.origin.X)*c.dims.Width + lx
	worldY := int(c.origin.Y)*c.dims.Width + ly
	if mathutil.HashCoords(worldX, worldY, lz, c.seed)%2 == 0 {
		return Grass
	}
	return Stone
}

// ModifyBlock sets the block at local to the given type (spec §4.4),
// marks it and its 26-neighborhood dirty by adding every solid member of
// that neighborhood that lies inside this chunk to the potential set
// (neighbors in adjacent chunks are not marked), and returns whether
// the write actually changed anything observable (so a no-op edit need
// not trigger a remesh). It refuses outright, returning ErrChunkBusy,
// when the chunk is mid-build: an edit must never interleave with a mesh
// read of the same potential set (spec §5).
func (c *Chunk) ModifyBlock(local BlockCoord, t BlockType) (changed bool, err error) {
	if !c.mu.TryLock() {
		return false, ErrChunkBusy
	}
	defer c.mu.Unlock()

	before, err := c.grid.At(local)
	if err != nil {
		return false, err
	}
	if before.Type == t {
		return false, nil
	}
	if err := c.grid.Set(local, Block{Type: t}); err != nil {
		return false, err
	}

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n := local.Add([3]int{dx, dy, dz})
				if b, err := c.grid.At(n); err == nil && !b.IsAir() {
					c.potential[n] = struct{}{}
				}
			}
		}
	}
	if t.IsSolid() {
		c.potential[local] = struct{}{}
	} else {
		delete(c.potential, local)
	}
	c.meshState = Empty
	return true, nil
}

package voxel

import (
	"math"

	"voxelterrain/internal/mathutil"
)

// BlockCoord names a cell. Within a BlockGrid its fields lie in
// [0, Dims.Width) x [0, Dims.Width) x [0, Dims.Height); when used to
// describe a face neighbor it may carry components outside that range,
// which is exactly what pushes mesh building out to a NeighborResolver.
type BlockCoord struct {
	X, Y, Z int
}

// Add returns c shifted by the unit offset of a face direction.
func (c BlockCoord) Add(o [3]int) BlockCoord {
	return BlockCoord{X: c.X + o[0], Y: c.Y + o[1], Z: c.Z + o[2]}
}

// ChunkCoord is the integer (X, Y) index of a chunk on the world's chunk
// grid. Chunks are not stacked vertically: one chunk spans the full Z
// extent of Dimensions.Height, so ChunkCoord only ever varies in X and Y.
// Using an integer grid index rather than a float world-position as the
// registry key sidesteps float-keyed map lookups entirely.
type ChunkCoord struct {
	X, Y int32
}

// Dimensions describes a chunk's cell-count shape: Width x Width horizontal
// footprint, Height cells tall.
type Dimensions struct {
	Width, Height int
}

// DefaultDimensions returns the spec §6 default chunk shape (32 x 32 x 32).
func DefaultDimensions() Dimensions { return Dimensions{Width: 32, Height: 32} }

// WorldOrigin returns the world-space position of this chunk's (0,0,0)
// cell, given the world's block size.
func (c ChunkCoord) WorldOrigin(dims Dimensions, blockSize float64) (x, y float64) {
	x = float64(c.X) * float64(dims.Width) * blockSize
	y = float64(c.Y) * float64(dims.Width) * blockSize
	return x, y
}

// ContainingChunk returns the ChunkCoord that owns the given world-space
// position, plus the position's local cell coordinates within that chunk's
// horizontal footprint. Z is passed through unchanged since chunks are not
// split vertically.
func ContainingChunk(worldX, worldY float64, worldZ int, dims Dimensions, blockSize float64) (ChunkCoord, BlockCoord) {
	cellX := int(math.Floor(worldX / blockSize))
	cellY := int(math.Floor(worldY / blockSize))
	cx := mathutil.FloorDiv(cellX, dims.Width)
	cy := mathutil.FloorDiv(cellY, dims.Width)
	lx := cellX - cx*dims.Width
	ly := cellY - cy*dims.Width
	return ChunkCoord{X: int32(cx), Y: int32(cy)}, BlockCoord{X: lx, Y: ly, Z: worldZ}
}

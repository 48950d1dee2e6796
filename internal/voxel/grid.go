package voxel

// BlockGrid is the dense, fixed-shape array backing one chunk. Storage is
// contiguous with X varying fastest, then Y, then Z — the exact order is
// an implementation choice the spec leaves open; nothing outside this
// package depends on it.
type BlockGrid struct {
	dims   Dimensions
	blocks []Block
}

// NewBlockGrid allocates a grid of the given shape, every cell Air.
func NewBlockGrid(dims Dimensions) BlockGrid {
	return BlockGrid{
		dims:   dims,
		blocks: make([]Block, dims.Width*dims.Width*dims.Height),
	}
}

// Dims returns the grid's cell-count shape.
func (g *BlockGrid) Dims() Dimensions { return g.dims }

// inBounds reports whether c addresses a real cell.
func (g *BlockGrid) inBounds(c BlockCoord) bool {
	return c.X >= 0 && c.X < g.dims.Width &&
		c.Y >= 0 && c.Y < g.dims.Width &&
		c.Z >= 0 && c.Z < g.dims.Height
}

func (g *BlockGrid) index(c BlockCoord) int {
	return c.X + c.Y*g.dims.Width + c.Z*g.dims.Width*g.dims.Width
}

// At returns the block at c. It returns ErrOutOfBounds (and the zero
// Block, which is Air) if c does not address a real cell.
func (g *BlockGrid) At(c BlockCoord) (Block, error) {
	if !g.inBounds(c) {
		return Block{}, ErrOutOfBounds
	}
	return g.blocks[g.index(c)], nil
}

// Set writes the block at c. It returns ErrOutOfBounds if c does not
// address a real cell.
func (g *BlockGrid) Set(c BlockCoord, b Block) error {
	if !g.inBounds(c) {
		return ErrOutOfBounds
	}
	g.blocks[g.index(c)] = b
	return nil
}

package voxel

import "github.com/go-gl/mathgl/mgl32"

// FaceDir is one of the six axis-aligned face directions a cube cell can
// expose. The iteration order here is the original source's order, kept
// so generated meshes are byte-for-byte reproducible against it.
type FaceDir uint8

const (
	DirPosX FaceDir = iota
	DirPosY
	DirNegX
	DirNegY
	DirNegZ
	DirPosZ

	faceDirCount
)

// offsets maps each direction to its unit neighbor step.
var offsets = [faceDirCount][3]int{
	DirPosX: {1, 0, 0},
	DirNegX: {-1, 0, 0},
	DirPosY: {0, 1, 0},
	DirNegY: {0, -1, 0},
	DirNegZ: {0, 0, -1},
	DirPosZ: {0, 0, 1},
}

// normals maps each direction to its unit surface normal.
var normals = [faceDirCount]mgl32.Vec3{
	DirPosX: {1, 0, 0},
	DirNegX: {-1, 0, 0},
	DirPosY: {0, 1, 0},
	DirNegY: {0, -1, 0},
	DirNegZ: {0, 0, -1},
	DirPosZ: {0, 0, 1},
}

// faceCorners holds, for each direction, the four corner offsets (in units
// of the half block size s) in the fixed winding order v0..v3. Triangles
// are always (v0, v1, v2) and (v2, v1, v3). This table is bit-exact
// against the original source's CreateFaceData.
var faceCorners = [faceDirCount][4][3]float32{
	DirPosX: {{1, 1, -1}, {1, -1, -1}, {1, 1, 1}, {1, -1, 1}},
	DirPosY: {{-1, 1, -1}, {1, 1, -1}, {-1, 1, 1}, {1, 1, 1}},
	DirNegX: {{-1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}, {-1, 1, 1}},
	DirNegY: {{1, -1, -1}, {-1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	DirNegZ: {{-1, 1, -1}, {-1, -1, -1}, {1, 1, -1}, {1, -1, -1}},
	DirPosZ: {{1, 1, 1}, {1, -1, 1}, {-1, 1, 1}, {-1, -1, 1}},
}

// faceUVs is the fixed per-corner texture coordinate, same for every
// direction.
var faceUVs = [4][2]float32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// Vertex is one mesh vertex: position, normal, UV, and a 4-channel color
// where channel 0 carries the texture index and channel 1 the light level
// (spec §4.3); channels 2 and 3 are reserved and always 0.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       [2]float32
	Color    [4]float32
}

// MeshPayload is the output of BuildMesh: a flat vertex/index buffer ready
// to hand to a MeshSink.
type MeshPayload struct {
	Vertices []Vertex
	Indices  []uint32
}

// NeighborResolver answers whether the cell addressed by local (which may
// lie outside owner's horizontal extent) is air. FastResolver and
// Registry are the two implementations, corresponding to the spec's
// FastBuild and Authoritative meshing modes.
type NeighborResolver interface {
	IsAir(owner ChunkCoord, dims Dimensions, local BlockCoord) bool
}

// FastResolver answers neighbor queries from the height field alone,
// without ever consulting the chunk registry. This is the spec's
// FastBuild mode: cheap, and correct whenever the true neighbor chunk
// would have generated the same column height anyway.
type FastResolver struct {
	Heights   HeightSource
	BlockSize float64
}

// HeightSource is the subset of terrain.HeightField that mesh building
// depends on.
type HeightSource interface {
	ColumnHeight(worldX, worldY float64) int
}

// IsAir implements NeighborResolver.
func (r FastResolver) IsAir(owner ChunkCoord, dims Dimensions, local BlockCoord) bool {
	if local.Z < 0 || local.Z >= dims.Height {
		// Chunks are not stacked vertically; there is no neighbor chunk
		// above or below, so the world boundary itself is open air.
		return true
	}
	ox, oy := owner.WorldOrigin(dims, r.BlockSize)
	wx := ox + float64(local.X)*r.BlockSize
	wy := oy + float64(local.Y)*r.BlockSize
	return local.Z >= r.Heights.ColumnHeight(wx, wy)
}

// BuildMesh extracts a face-culled mesh from the chunk's current
// BlockGrid, consulting resolver for any neighbor cell that falls outside
// the chunk's own bounds (spec §4.3). It holds the chunk's lock for the
// whole read phase — not just the meshState transitions — since it also
// prunes potential as it goes, and a concurrent ModifyBlock must never
// observe (or cause) a torn read of that map. If the chunk is already
// mid-edit or mid-build, BuildMesh refuses outright with ErrChunkBusy
// instead of blocking (spec §5): the scheduler re-queues a mesh worker's
// busy result, while a foreground edit returns the error to its caller.
func (c *Chunk) BuildMesh(resolver NeighborResolver) (*MeshPayload, error) {
	if !c.mu.TryLock() {
		return nil, ErrChunkBusy
	}
	defer c.mu.Unlock()
	c.meshState = Building

	payload := &MeshPayload{}

	for local := range c.potential {
		block, err := c.grid.At(local)
		if err != nil || block.IsAir() {
			// Spec §4.3 step 1: a potential cell that turned out to be air
			// no longer belongs in the working set.
			delete(c.potential, local)
			continue
		}

		emitted := false
		for dir := FaceDir(0); dir < faceDirCount; dir++ {
			n := local.Add(offsets[dir])
			var neighborAir bool
			if nb, err := c.grid.At(n); err == nil {
				neighborAir = nb.IsAir()
			} else {
				neighborAir = resolver.IsAir(c.origin, c.dims, n)
			}
			if !neighborAir {
				continue
			}
			c.appendFace(payload, local, block, dir)
			emitted = true
		}
		if !emitted {
			// No face survived culling: every neighbor is solid, so this
			// cell can't become exposed again until one of its neighbors
			// changes, at which point ModifyBlock re-adds it.
			delete(c.potential, local)
		}
	}

	c.meshState = Ready
	return payload, nil
}

func (c *Chunk) appendFace(payload *MeshPayload, cell BlockCoord, block Block, dir FaceDir) {
	s := float32(c.blockSize / 2)
	ox, oy := c.origin.WorldOrigin(c.dims, c.blockSize)
	center := mgl32.Vec3{
		float32(ox) + (float32(cell.X)+0.5)*float32(c.blockSize),
		float32(oy) + (float32(cell.Y)+0.5)*float32(c.blockSize),
		(float32(cell.Z) + 0.5) * float32(c.blockSize),
	}

	textureIndex := float32(0)
	if int(block.Type) > 0 {
		textureIndex = float32(int(block.Type) - 1)
	}

	base := uint32(len(payload.Vertices))
	corners := faceCorners[dir]
	for i := 0; i < 4; i++ {
		offset := mgl32.Vec3{corners[i][0] * s, corners[i][1] * s, corners[i][2] * s}
		payload.Vertices = append(payload.Vertices, Vertex{
			Position: center.Add(offset),
			Normal:   normals[dir],
			UV:       faceUVs[i],
			Color:    [4]float32{textureIndex, float32(block.Light), 0, 0},
		})
	}
	payload.Indices = append(payload.Indices,
		base+0, base+1, base+2,
		base+2, base+1, base+3,
	)
}

package scheduler

import (
	"math"

	"voxelterrain/internal/voxel"
)

// desiredSet computes the ring-by-ring sweep from spec §4.7: for each
// radius r in [0, D], every (X, Y) in [-r, r]^2 with |dist(X,Y) - r| <
// 0.5 is included, nearest-radius-first. The result is ordered (nearest
// first is the intended load order), and center is the viewer's chunk
// coordinate.
func desiredSet(center voxel.ChunkCoord, drawDistance int) []voxel.ChunkCoord {
	var out []voxel.ChunkCoord
	seen := make(map[voxel.ChunkCoord]struct{})

	for r := 0; r <= drawDistance; r++ {
		for x := -r; x <= r; x++ {
			for y := -r; y <= r; y++ {
				dist := math.Sqrt(float64(x*x + y*y))
				if math.Abs(dist-float64(r)) >= 0.5 {
					continue
				}
				coord := voxel.ChunkCoord{X: center.X + int32(x), Y: center.Y + int32(y)}
				if _, dup := seen[coord]; dup {
					continue
				}
				seen[coord] = struct{}{}
				out = append(out, coord)
			}
		}
	}
	return out
}

// viewerChunkCoord maps a world-space viewer position to the chunk grid
// coordinate it currently occupies.
func viewerChunkCoord(worldX, worldY float64, dims voxel.Dimensions, blockSize float64) voxel.ChunkCoord {
	coord, _ := voxel.ContainingChunk(worldX, worldY, 0, dims, blockSize)
	return coord
}

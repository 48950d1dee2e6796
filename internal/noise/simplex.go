package noise

import (
	"math"

	"voxelterrain/internal/mathutil"
)

// simplex implements 2D Simplex noise (Ken Perlin / Stefan Gustavson). The
// skew/unskew/corner-contribution math below is the published algorithm's
// fixed form — any correct implementation shares it — but the gradient
// lookup is not: instead of a shuffled 512-entry permutation table (a
// second, bespoke PRNG living alongside the rest of the package), each
// lattice point's gradient index comes straight from mathutil.HashCoords,
// the same coordinate-seeded hash internal/voxel already uses to pick
// Grass vs. Stone. One hash primitive, reused, instead of two.
type simplex struct {
	seed   int64
	f2, g2 float64
}

var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func newSimplex(seed int64) *simplex {
	return &simplex{
		seed: seed,
		f2:   0.5 * (math.Sqrt(3.0) - 1.0),
		g2:   (3.0 - math.Sqrt(3.0)) / 6.0,
	}
}

// gradIndex picks one of the 12 edge-midpoint gradients for lattice point
// (i, j), seeded so the same (seed, i, j) always yields the same gradient.
func (s *simplex) gradIndex(i, j int) int {
	return int(mathutil.HashCoords(i, j, 0, s.seed) % 12)
}

// noise2D returns a value in the approximate range [-1, 1].
func (s *simplex) noise2D(xin, yin float64) float64 {
	var n0, n1, n2 float64

	t := (xin + yin) * s.f2
	i := int(math.Floor(xin + t))
	j := int(math.Floor(yin + t))

	t2 := float64(i+j) * s.g2
	x0 := xin - (float64(i) - t2)
	y0 := yin - (float64(j) - t2)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + s.g2
	y1 := y0 - float64(j1) + s.g2
	x2 := x0 - 1.0 + 2.0*s.g2
	y2 := y0 - 1.0 + 2.0*s.g2

	gi0 := s.gradIndex(i, j)
	gi1 := s.gradIndex(i+i1, j+j1)
	gi2 := s.gradIndex(i+1, j+1)

	if t0 := 0.5 - x0*x0 - y0*y0; t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * (grad3[gi0][0]*x0 + grad3[gi0][1]*y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * (grad3[gi1][0]*x1 + grad3[gi1][1]*y1)
	}
	if t2val := 0.5 - x2*x2 - y2*y2; t2val >= 0 {
		t2val *= t2val
		n2 = t2val * t2val * (grad3[gi2][0]*x2 + grad3[gi2][1]*y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

package terrain

import (
	"testing"

	"voxelterrain/internal/noise"
)

type constNoise float64

func (c constNoise) Height2D(x, y float64) float64 { return float64(c) }

func TestColumnHeightClampedToRange(t *testing.T) {
	hf := New(constNoise(1), DefaultConfig())
	if got := hf.ColumnHeight(0, 0); got != hf.Hmax() {
		t.Fatalf("max noise should map to Hmax, got %d want %d", got, hf.Hmax())
	}

	hf = New(constNoise(-1), DefaultConfig())
	if got := hf.ColumnHeight(0, 0); got != hf.Hmin() {
		t.Fatalf("min noise should map to Hmin, got %d want %d", got, hf.Hmin())
	}
}

func TestColumnHeightAgreesAcrossCalls(t *testing.T) {
	hf := New(noise.New(noise.DefaultConfig(5)), DefaultConfig())
	a := hf.ColumnHeight(321, -159)
	b := hf.ColumnHeight(321, -159)
	if a != b {
		t.Fatalf("column height not stable across calls: %d != %d", a, b)
	}
}

func TestColumnHeightWithinConfiguredBounds(t *testing.T) {
	hf := New(noise.New(noise.DefaultConfig(9)), Config{NoiseScale: 100, Hmin: 6, Hmax: 32})
	for x := -300.0; x <= 300.0; x += 37 {
		for y := -300.0; y <= 300.0; y += 41 {
			h := hf.ColumnHeight(x, y)
			if h < 6 || h > 32 {
				t.Fatalf("ColumnHeight(%v,%v) = %d out of [6,32]", x, y, h)
			}
		}
	}
}

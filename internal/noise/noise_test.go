package noise

import "testing"

func TestHeight2DDeterministic(t *testing.T) {
	a := New(DefaultConfig(42))
	b := New(DefaultConfig(42))

	for _, p := range [][2]float64{{0, 0}, {13.5, -7.25}, {1000, 1000}} {
		va := a.Height2D(p[0], p[1])
		vb := b.Height2D(p[0], p[1])
		if va != vb {
			t.Fatalf("Height2D(%v) not deterministic: %v != %v", p, va, vb)
		}
	}
}

func TestHeight2DInRange(t *testing.T) {
	f := New(DefaultConfig(7))
	for x := -50.0; x <= 50.0; x += 3.7 {
		for y := -50.0; y <= 50.0; y += 4.3 {
			v := f.Height2D(x, y)
			if v < -1.0001 || v > 1.0001 {
				t.Fatalf("Height2D(%v,%v) = %v out of [-1,1]", x, y, v)
			}
		}
	}
}

func TestHeight2DDifferentSeedsDiffer(t *testing.T) {
	a := New(DefaultConfig(1))
	b := New(DefaultConfig(2))

	same := true
	for x := 0.0; x < 200; x += 5 {
		if a.Height2D(x, x*1.3) != b.Height2D(x, x*1.3) {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected different seeds to produce different noise fields")
	}
}

func TestNewPanicsOnZeroOctaves(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero octaves")
		}
	}()
	New(Config{Octaves: 0})
}

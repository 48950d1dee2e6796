package voxel

import "testing"

func TestPoolAcquireExhaustionAndRelease(t *testing.T) {
	dims := Dimensions{Width: 4, Height: 4}
	p := NewPool(2, dims, 1)

	a, err := p.Acquire(ChunkCoord{X: 0, Y: 0}, 1)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	b, err := p.Acquire(ChunkCoord{X: 1, Y: 0}, 1)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if _, err := p.Acquire(ChunkCoord{X: 2, Y: 0}, 1); err != ErrPoolExhausted {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}

	p.Release(a)
	if p.Available() != 1 {
		t.Fatalf("expected 1 available after release, got %d", p.Available())
	}

	c, err := p.Acquire(ChunkCoord{X: 3, Y: 0}, 2)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if c != a {
		t.Fatalf("expected reacquired chunk to be the released one")
	}
	p.Release(b)
	p.Release(c)
}

func TestPoolReleaseBeyondCapacityIsDropped(t *testing.T) {
	dims := Dimensions{Width: 4, Height: 4}
	p := NewPool(1, dims, 1)
	extra := NewChunk(ChunkCoord{X: 9, Y: 9}, dims, 1, 0)
	p.Release(extra)
	if p.Available() != 1 {
		t.Fatalf("expected release beyond capacity to be a no-op, got available=%d", p.Available())
	}
}

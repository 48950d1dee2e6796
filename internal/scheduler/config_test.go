package scheduler

import "testing"

func TestGenCapTable(t *testing.T) {
	cfg := Config{MaxChunksPerTick: 4}
	cases := []struct {
		qlen int
		want int
	}{
		{0, 4}, {99, 4}, {100, 8}, {299, 8}, {300, 16}, {599, 16}, {600, 32}, {10000, 32},
	}
	for _, c := range cases {
		if got := cfg.genCap(c.qlen); got != c.want {
			t.Errorf("genCap(%d) = %d, want %d", c.qlen, got, c.want)
		}
	}
}

func TestGenCapTableUsesConfiguredFloor(t *testing.T) {
	cfg := Config{MaxChunksPerTick: 2}
	if got := cfg.genCap(0); got != 2 {
		t.Errorf("genCap(0) with MaxChunksPerTick=2 = %d, want 2", got)
	}
	if got := cfg.genCap(600); got != 32 {
		t.Errorf("genCap(600) = %d, want 32 regardless of configured floor", got)
	}
}

func TestMeshCapTable(t *testing.T) {
	cfg := Config{MaxMeshesPerTick: 1}
	cases := []struct {
		qlen int
		want int
	}{
		{0, 1}, {49, 1}, {50, 2}, {99, 2}, {100, 4}, {299, 4}, {300, 8}, {599, 8}, {600, 16},
	}
	for _, c := range cases {
		if got := cfg.meshCap(c.qlen); got != c.want {
			t.Errorf("meshCap(%d) = %d, want %d", c.qlen, got, c.want)
		}
	}
}

func TestMeshCapTableUsesConfiguredFloor(t *testing.T) {
	cfg := Config{MaxMeshesPerTick: 3}
	if got := cfg.meshCap(0); got != 3 {
		t.Errorf("meshCap(0) with MaxMeshesPerTick=3 = %d, want 3", got)
	}
}

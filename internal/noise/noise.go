// Package noise provides the deterministic 2D height-noise contract
// consumed by internal/terrain. The engine-facing contract is Source;
// everything else in this package is one concrete, seed-reproducible
// implementation of it.
package noise

// Source is the external noise dependency described in spec §6: a pure,
// deterministic function from a 2D world position to a value in [-1, 1].
// Implementations must be safe for concurrent use by multiple goroutines,
// since the scheduler's generation workers call it without synchronization.
type Source interface {
	Height2D(x, y float64) float64
}

// Config mirrors the FastNoiseLite configuration the original source used
// (frequency 0.02, Perlin-based fBm, octaves 3-5, lacunarity 2.0, gain 0.3),
// per spec §6.
type Config struct {
	Seed       int64
	Frequency  float64
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// DefaultConfig returns the spec §6 defaults.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:       seed,
		Frequency:  0.02,
		Octaves:    5,
		Lacunarity: 2.0,
		Gain:       0.3,
	}
}

// FBM is a fractal-Brownian-motion noise source built from octaves of
// seeded Simplex noise.
type FBM struct {
	cfg   Config
	layer *simplex
}

// New creates an FBM noise source. It panics if cfg.Octaves <= 0, since a
// misconfigured generator would silently always return 0.
func New(cfg Config) *FBM {
	if cfg.Octaves <= 0 {
		panic("noise: Config.Octaves must be positive")
	}
	if cfg.Lacunarity == 0 {
		cfg.Lacunarity = 2.0
	}
	if cfg.Frequency == 0 {
		cfg.Frequency = 0.02
	}
	return &FBM{cfg: cfg, layer: newSimplex(cfg.Seed)}
}

// Height2D implements Source. The result is normalized back into [-1, 1]
// by dividing by the maximum possible amplitude sum, so callers never see
// out-of-range noise regardless of octave count or gain.
func (f *FBM) Height2D(x, y float64) float64 {
	var value, amplitude, maxAmplitude float64
	frequency := f.cfg.Frequency
	amplitude = 1.0

	for o := 0; o < f.cfg.Octaves; o++ {
		value += amplitude * f.layer.noise2D(x*frequency, y*frequency)
		maxAmplitude += amplitude
		amplitude *= f.cfg.Gain
		frequency *= f.cfg.Lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return value / maxAmplitude
}

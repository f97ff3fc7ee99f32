package terrain

import (
	"github.com/Aleod-m/PGE/core"
	"github.com/Aleod-m/PGE/math"
)

// Fractal2 sums Octaves layers of a Source (fractional Brownian motion). Each
// layer multiplies frequency by Lacunarity and amplitude by Persistence; the
// sum is divided by the total amplitude so the output stays in the source's
// range.
type Fractal2 struct {
	src    Source
	params Params2
	norm   float64
}

func NewFractal2(src Source, p Params2) (*Fractal2, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Fractal2{src: src, params: p, norm: amplitudeSum(p.Octaves, p.Persistence)}, nil
}

// At evaluates the stack at grid-local (x, y).
func (f *Fractal2) At(x, y float64) float64 {
	pos := f.params.Domain(x, y)
	freq := f.params.Frequency
	amp := 1.0
	var sum float64
	for i := 0; i < f.params.Octaves; i++ {
		sum += amp * f.src.Eval2(pos.X*freq, pos.Y*freq)
		amp *= f.params.Persistence
		freq *= f.params.Lacunarity
	}
	return sum / f.norm
}

// Fractal3 is the 3D counterpart of Fractal2.
type Fractal3 struct {
	src    Source
	params Params3
	domain core.Transform
	norm   float64
}

func NewFractal3(src Source, p Params3) (*Fractal3, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Fractal3{
		src:    src,
		params: p,
		domain: p.Transform(),
		norm:   amplitudeSum(p.Octaves, p.Persistence),
	}, nil
}

func (f *Fractal3) At(x, y, z float64) float64 {
	pos := f.domain.Apply(math.NewVec3(x, y, z))
	freq := f.params.Frequency
	amp := 1.0
	var sum float64
	for i := 0; i < f.params.Octaves; i++ {
		sum += amp * f.src.Eval3(pos.X*freq, pos.Y*freq, pos.Z*freq)
		amp *= f.params.Persistence
		freq *= f.params.Lacunarity
	}
	return sum / f.norm
}

func amplitudeSum(octaves int, persistence float64) float64 {
	var total float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		total += amp
		amp *= persistence
	}
	return total
}

package terrain

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/Aleod-m/PGE/noise"
)

// Source evaluates coherent noise at a point. *noise.Field implements it.
type Source interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

const (
	SourceOpenSimplex = "opensimplex" // native 2048-entry evaluator
	SourceLegacy      = "legacy"      // 256-entry OpenSimplex from ojrac/opensimplex-go
	SourcePerlin      = "perlin"      // classic Perlin from aquilax/go-perlin
)

var ErrUnknownSource = errors.New("terrain: unknown noise source")

// Perlin settings shared by every perlin source: weight 2 between harmonics,
// frequency doubling, three harmonics.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
)

// SourceKinds lists the names accepted by NewSource.
func SourceKinds() []string {
	return []string{SourceOpenSimplex, SourceLegacy, SourcePerlin}
}

// NewSource builds the named noise source for seed.
func NewSource(kind string, seed int64) (Source, error) {
	switch kind {
	case SourceOpenSimplex:
		return noise.New(seed), nil
	case SourceLegacy:
		return opensimplex.New(seed), nil
	case SourcePerlin:
		return perlinSource{perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownSource, kind, SourceKinds())
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

func (s perlinSource) Eval3(x, y, z float64) float64 {
	return s.p.Noise3D(x, y, z)
}

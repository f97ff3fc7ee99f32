package noise

import (
	"errors"
	"fmt"

	"github.com/Aleod-m/PGE/math"
)

const (
	// PermSize is the length of the permutation and gradient tables.
	PermSize = 2048
	pMask    = PermSize - 1

	stretch2D = -0.211324865405187 // (1/sqrt(2+1)-1)/2
	squish2D  = 0.366025403784439  // (sqrt(2+1)-1)/2
	stretch3D = -1.0 / 6           // (1/sqrt(3+1)-1)/3
	squish3D  = 1.0 / 3            // (sqrt(3+1)-1)/3

	norm2D = 1 / 7.69084574549313
	norm3D = 1 / 26.92263139946168
)

// ErrInvalidPermutation is returned by FromPermutation when the table is not a
// bijection on [0, PermSize).
var ErrInvalidPermutation = errors.New("noise: permutation table is not a bijection")

// Field is a seeded OpenSimplex noise source. The zero value is not usable; build
// one with New or FromPermutation.
type Field struct {
	seed  int64
	perm  [PermSize]int
	grad2 [PermSize]math.Vec2
	grad3 [PermSize]math.Vec3
}

// New builds a Field whose tables are derived from seed.
func New(seed int64) *Field {
	f := &Field{seed: seed}
	f.perm = buildPermutation(seed)
	f.deriveGradients()
	return f
}

// FromPermutation builds a Field from an explicit permutation table, bypassing seed
// derivation. The resulting field reports a seed of 0.
func FromPermutation(perm [PermSize]int) (*Field, error) {
	if err := validatePermutation(&perm); err != nil {
		return nil, err
	}
	f := &Field{perm: perm}
	f.deriveGradients()
	return f, nil
}

// Seed returns the seed the field was built from.
func (f *Field) Seed() int64 {
	return f.seed
}

// Permutation returns a copy of the field's permutation table.
func (f *Field) Permutation() [PermSize]int {
	return f.perm
}

// EvalVec2 is Eval2 at p.
func (f *Field) EvalVec2(p math.Vec2) float64 {
	return f.Eval2(p.X, p.Y)
}

// EvalVec3 is Eval3 at p.
func (f *Field) EvalVec3(p math.Vec3) float64 {
	return f.Eval3(p.X, p.Y, p.Z)
}

func validatePermutation(perm *[PermSize]int) error {
	var seen [PermSize]bool
	for i, v := range perm {
		if v < 0 || v >= PermSize {
			return fmt.Errorf("%w: entry %d is %d, outside [0, %d)", ErrInvalidPermutation, i, v, PermSize)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d repeated at entry %d", ErrInvalidPermutation, v, i)
		}
		seen[v] = true
	}
	return nil
}

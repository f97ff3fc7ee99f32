package terrain

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/Aleod-m/PGE/core"
	"github.com/Aleod-m/PGE/math"
)

// MaxOctaves bounds the octave stack; past it the highest octave falls below
// float64 resolution for any usable lacunarity.
const MaxOctaves = 32

var ErrInvalidParams = errors.New("terrain: invalid noise parameters")

// Params2 places a 2D sample domain and describes its octave stack.
type Params2 struct {
	Center      math.Vec2
	Angle       float64 // radians, counter-clockwise
	Seed        int64 // seeds the source built by Source
	Octaves     int
	Persistence float64 // amplitude ratio between octaves
	Lacunarity  float64 // frequency ratio between octaves
	Frequency   float64 // base frequency
}

func DefaultParams2() Params2 {
	return Params2{
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2,
		Frequency:   1,
	}
}

func NewParams2(center math.Vec2, angle float64) Params2 {
	p := DefaultParams2()
	p.Center = center
	p.Angle = angle
	return p
}

func (p *Params2) Translate(v math.Vec2) {
	p.Center = p.Center.Add(v)
}

func (p *Params2) Rotate(angle float64) {
	p.Angle += angle
}

// Domain maps a grid-local point into noise space: rotate by Angle, then
// offset by Center.
func (p Params2) Domain(x, y float64) math.Vec2 {
	return math.NewVec2(x, y).Rotate(p.Angle).Add(p.Center)
}

// Source builds the named noise source seeded with p.Seed.
func (p Params2) Source(kind string) (Source, error) {
	return NewSource(kind, p.Seed)
}

func (p Params2) Validate() error {
	if err := validateStack(p.Octaves, p.Persistence, p.Lacunarity, p.Frequency); err != nil {
		return err
	}
	if !finite(p.Center.X, p.Center.Y, p.Angle) {
		return fmt.Errorf("%w: non-finite center or angle", ErrInvalidParams)
	}
	return nil
}

// Params3 places a 3D sample domain. Angle holds Euler angles (pitch, yaw,
// roll) in radians.
type Params3 struct {
	Center      math.Vec3
	Angle       math.Vec3
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Frequency   float64
}

func DefaultParams3() Params3 {
	return Params3{
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2,
		Frequency:   1,
	}
}

func NewParams3(center, angle math.Vec3) Params3 {
	p := DefaultParams3()
	p.Center = center
	p.Angle = angle
	return p
}

func (p *Params3) Translate(v math.Vec3) {
	p.Center = p.Center.Add(v)
}

func (p *Params3) Rotate(angle math.Vec3) {
	p.Angle = p.Angle.Add(angle)
}

// Transform returns the placement of the sample domain.
func (p Params3) Transform() core.Transform {
	t := core.NewTransform()
	t.Position = p.Center
	t.Rotation = math.QuaternionFromEuler(p.Angle)
	return t
}

// Source builds the named noise source seeded with p.Seed.
func (p Params3) Source(kind string) (Source, error) {
	return NewSource(kind, p.Seed)
}

func (p Params3) Validate() error {
	if err := validateStack(p.Octaves, p.Persistence, p.Lacunarity, p.Frequency); err != nil {
		return err
	}
	if !finite(p.Center.X, p.Center.Y, p.Center.Z, p.Angle.X, p.Angle.Y, p.Angle.Z) {
		return fmt.Errorf("%w: non-finite center or angle", ErrInvalidParams)
	}
	return nil
}

func validateStack(octaves int, persistence, lacunarity, frequency float64) error {
	switch {
	case octaves < 1 || octaves > MaxOctaves:
		return fmt.Errorf("%w: octaves %d outside [1, %d]", ErrInvalidParams, octaves, MaxOctaves)
	case !finite(persistence) || persistence <= 0:
		return fmt.Errorf("%w: persistence %v must be positive", ErrInvalidParams, persistence)
	case !finite(lacunarity) || lacunarity < 1:
		return fmt.Errorf("%w: lacunarity %v must be at least 1", ErrInvalidParams, lacunarity)
	case !finite(frequency) || frequency <= 0:
		return fmt.Errorf("%w: frequency %v must be positive", ErrInvalidParams, frequency)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if stdmath.IsNaN(v) || stdmath.IsInf(v, 0) {
			return false
		}
	}
	return true
}

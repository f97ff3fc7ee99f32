package core

import (
	"github.com/Aleod-m/PGE/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// Lerp blends c toward other by t in [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}

type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of indexed triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned box enclosing every vertex position.
// An empty mesh yields two zero vectors.
func (m *MeshData) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3Zero, math.Vec3Zero
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		p := v.Position
		min = math.NewVec3(fmin(min.X, p.X), fmin(min.Y, p.Y), fmin(min.Z, p.Z))
		max = math.NewVec3(fmax(max.X, p.X), fmax(max.Y, p.Y), fmax(max.Z, p.Z))
	}
	return min, max
}

func fmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Transform places a sample domain or mesh in space: scale, then rotate, then
// translate.
type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

// Apply maps a local point through the transform.
func (t Transform) Apply(p math.Vec3) math.Vec3 {
	return t.Rotation.RotateVector(p.MulVec(t.Scale)).Add(t.Position)
}

package terrain

import (
	"context"
	"errors"
	stdmath "math"
	"testing"

	"github.com/Aleod-m/PGE/math"
	"github.com/Aleod-m/PGE/noise"
)

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams2().Validate(); err != nil {
		t.Fatalf("DefaultParams2: unexpected error %v", err)
	}
	if err := DefaultParams3().Validate(); err != nil {
		t.Fatalf("DefaultParams3: unexpected error %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *Params2)
	}{
		{"zero octaves", func(p *Params2) { p.Octaves = 0 }},
		{"too many octaves", func(p *Params2) { p.Octaves = MaxOctaves + 1 }},
		{"zero persistence", func(p *Params2) { p.Persistence = 0 }},
		{"small lacunarity", func(p *Params2) { p.Lacunarity = 0.5 }},
		{"negative frequency", func(p *Params2) { p.Frequency = -1 }},
		{"nan frequency", func(p *Params2) { p.Frequency = stdmath.NaN() }},
		{"infinite center", func(p *Params2) { p.Center.X = stdmath.Inf(1) }},
	}

	for _, tt := range tests {
		p := DefaultParams2()
		tt.mutate(&p)
		if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%s: expected ErrInvalidParams, got %v", tt.name, err)
		}
	}

	p3 := DefaultParams3()
	p3.Angle.Y = stdmath.NaN()
	if err := p3.Validate(); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Params3 nan angle: expected ErrInvalidParams, got %v", err)
	}
}

func TestParamsMoves(t *testing.T) {
	p := NewParams2(math.NewVec2(1, 2), 0.5)
	p.Translate(math.NewVec2(3, -1))
	p.Rotate(0.25)
	if p.Center != math.NewVec2(4, 1) {
		t.Errorf("Translate: expected (4, 1), got %v", p.Center)
	}
	if p.Angle != 0.75 {
		t.Errorf("Rotate: expected 0.75, got %v", p.Angle)
	}

	got := NewParams2(math.NewVec2(10, 0), stdmath.Pi/2).Domain(1, 0)
	if got.Sub(math.NewVec2(10, 1)).Length() > 1e-12 {
		t.Errorf("Domain: expected (10, 1), got %v", got)
	}

	p3 := NewParams3(math.Vec3Zero, math.Vec3Zero)
	p3.Translate(math.NewVec3(1, 2, 3))
	p3.Rotate(math.NewVec3(0.1, 0, 0))
	if p3.Center != math.NewVec3(1, 2, 3) || p3.Angle != math.NewVec3(0.1, 0, 0) {
		t.Errorf("Params3 moves: got center %v angle %v", p3.Center, p3.Angle)
	}
	if tr := NewParams3(math.NewVec3(5, 0, 0), math.Vec3Zero).Transform(); tr.Apply(math.Vec3Zero) != math.NewVec3(5, 0, 0) {
		t.Errorf("Transform: origin should map to the center")
	}
}

func TestNewSource(t *testing.T) {
	for _, kind := range SourceKinds() {
		src, err := NewSource(kind, 7)
		if err != nil {
			t.Fatalf("NewSource(%q): unexpected error %v", kind, err)
		}
		for i := 0; i < 50; i++ {
			x := float64(i)*0.37 + 0.11
			v := src.Eval2(x, -x)
			if stdmath.IsNaN(v) || v < -2 || v > 2 {
				t.Errorf("%s: Eval2(%v, %v) = %v", kind, x, -x, v)
			}
			if v3 := src.Eval3(x, -x, 0.5*x); stdmath.IsNaN(v3) {
				t.Errorf("%s: Eval3 returned NaN", kind)
			}
		}
	}

	src, _ := NewSource(SourceOpenSimplex, 1234)
	if got := src.Eval2(3.7, -1.2); stdmath.Abs(got-noise.New(1234).Eval2(3.7, -1.2)) > 0 {
		t.Errorf("opensimplex source disagrees with noise.New: %v", got)
	}

	if _, err := NewSource("worley", 1); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("expected ErrUnknownSource, got %v", err)
	}
}

func TestParamsSource(t *testing.T) {
	p := DefaultParams2()
	p.Seed = 1234
	src, err := p.Source(SourceOpenSimplex)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := src.Eval2(3.7, -1.2), noise.New(1234).Eval2(3.7, -1.2); got != want {
		t.Errorf("Params2.Source: expected %v, got %v", want, got)
	}

	p3 := DefaultParams3()
	p3.Seed = -42
	src, err = p3.Source(SourceOpenSimplex)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := src.Eval3(1, 2, 3), noise.New(-42).Eval3(1, 2, 3); got != want {
		t.Errorf("Params3.Source: expected %v, got %v", want, got)
	}

	if _, err := p.Source("worley"); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("expected ErrUnknownSource, got %v", err)
	}
}

func TestFractalSingleOctave(t *testing.T) {
	src := noise.New(3)
	p := DefaultParams2()
	p.Frequency = 0.05
	fr, err := NewFractal2(src, p)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		x, y := float64(i)*1.3, float64(i)*-0.7
		want := src.Eval2(x*0.05, y*0.05)
		if got := fr.At(x, y); stdmath.Abs(got-want) > 1e-15 {
			t.Errorf("At(%v, %v): expected %v, got %v", x, y, want, got)
		}
	}

	p3 := DefaultParams3()
	fr3, err := NewFractal3(src, p3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fr3.At(1.5, 2.5, -0.5), src.Eval3(1.5, 2.5, -0.5); stdmath.Abs(got-want) > 1e-12 {
		t.Errorf("Fractal3 single octave: expected %v, got %v", want, got)
	}
}

func TestFractalOctaves(t *testing.T) {
	src := noise.New(11)
	p := DefaultParams2()
	p.Octaves = 3
	p.Persistence = 0.5
	p.Lacunarity = 2
	fr, err := NewFractal2(src, p)
	if err != nil {
		t.Fatal(err)
	}
	x, y := 0.3, 1.9
	want := (src.Eval2(x, y) + 0.5*src.Eval2(2*x, 2*y) + 0.25*src.Eval2(4*x, 4*y)) / 1.75
	if got := fr.At(x, y); stdmath.Abs(got-want) > 1e-12 {
		t.Errorf("At: expected %v, got %v", want, got)
	}

	p.Octaves = 0
	if _, err := NewFractal2(src, p); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}

func TestSampleMatchesSerial(t *testing.T) {
	src := noise.New(42)
	p := DefaultParams2()
	p.Octaves = 4
	p.Frequency = 0.03
	p.Center = math.NewVec2(100, -40)
	p.Angle = 0.3

	hm, err := Sample(context.Background(), src, p, 37, 23)
	if err != nil {
		t.Fatal(err)
	}
	if hm.Width != 37 || hm.Height != 23 || len(hm.Data) != 37*23 {
		t.Fatalf("unexpected dimensions %dx%d (%d samples)", hm.Width, hm.Height, len(hm.Data))
	}

	fr, _ := NewFractal2(src, p)
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			if want := fr.At(float64(x), float64(y)); hm.At(x, y) != want {
				t.Fatalf("sample (%d, %d): expected %v, got %v", x, y, want, hm.At(x, y))
			}
		}
	}
}

func TestSampleSlice(t *testing.T) {
	src := noise.New(9)
	p := DefaultParams3()
	p.Frequency = 0.1
	hm, err := SampleSlice(context.Background(), src, p, 8, 8, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := hm.At(3, 5), src.Eval3(0.3, 0.5, 0.25); stdmath.Abs(got-want) > 1e-12 {
		t.Errorf("slice sample: expected %v, got %v", want, got)
	}
}

func TestSampleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sample(ctx, noise.New(1), DefaultParams2(), 16, 16)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSampleRejectsEmptyGrid(t *testing.T) {
	_, err := Sample(context.Background(), noise.New(1), DefaultParams2(), 0, 4)
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}

func TestNormalizeAndRange(t *testing.T) {
	hm := NewHeightMap(2, 2)
	copy(hm.Data, []float64{-0.5, 0.5, 0, 1.5})
	lo, hi := hm.Range()
	if lo != -0.5 || hi != 1.5 {
		t.Errorf("Range: expected (-0.5, 1.5), got (%v, %v)", lo, hi)
	}

	hm.Normalize()
	expected := []float64{0, 0.5, 0.25, 1}
	for i, v := range hm.Data {
		if v != expected[i] {
			t.Errorf("Normalize[%d]: expected %v, got %v", i, expected[i], v)
		}
	}

	flat := NewHeightMap(3, 1)
	copy(flat.Data, []float64{0.7, 0.7, 0.7})
	flat.Normalize()
	for _, v := range flat.Data {
		if v != 0 {
			t.Errorf("flat Normalize: expected 0, got %v", v)
		}
	}
}

func TestCurves(t *testing.T) {
	for _, name := range CurveNames() {
		c, err := LookupCurve(name)
		if err != nil {
			t.Fatalf("LookupCurve(%q): %v", name, err)
		}
		if v := c(0); stdmath.Abs(v) > 1e-4 {
			t.Errorf("%s(0): expected 0, got %v", name, v)
		}
		if v := c(1); stdmath.Abs(v-1) > 1e-4 {
			t.Errorf("%s(1): expected 1, got %v", name, v)
		}
	}

	if _, err := LookupCurve("zigzag"); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("expected ErrUnknownCurve, got %v", err)
	}

	hm := NewHeightMap(3, 1)
	copy(hm.Data, []float64{-1, 0, 1})
	quad, _ := LookupCurve("quad")
	hm.Reshape(quad)
	if hm.Data[0] != 0 || hm.Data[2] != 1 || stdmath.Abs(hm.Data[1]-0.5) > 1e-6 {
		t.Errorf("Reshape: unexpected result %v", hm.Data)
	}
}

func TestBuildMesh(t *testing.T) {
	hm := NewHeightMap(4, 3)
	mesh, err := BuildMesh(hm, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) != 12 {
		t.Errorf("vertices: expected 12, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 3*2*6 {
		t.Errorf("indices: expected 36, got %d", len(mesh.Indices))
	}
	for i, v := range mesh.Vertices {
		if v.Normal != math.Vec3Up {
			t.Errorf("vertex %d: flat grid normal should be up, got %v", i, v.Normal)
		}
	}
	lo, hi := mesh.Bounds()
	if lo != math.NewVec3(-3, 0, -2) || hi != math.NewVec3(3, 0, 2) {
		t.Errorf("Bounds: got %v %v", lo, hi)
	}
	if uv := mesh.Vertices[len(mesh.Vertices)-1].UV; uv != math.NewVec2(1, 1) {
		t.Errorf("last UV: expected (1, 1), got %v", uv)
	}

	// First triangle faces +Y.
	a := mesh.Vertices[mesh.Indices[0]].Position
	b := mesh.Vertices[mesh.Indices[1]].Position
	c := mesh.Vertices[mesh.Indices[2]].Position
	if n := b.Sub(a).Cross(c.Sub(a)); n.Y <= 0 {
		t.Errorf("triangle winding faces down: %v", n)
	}
}

func TestBuildMeshSlope(t *testing.T) {
	hm := NewHeightMap(3, 3)
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			hm.Set(x, z, float64(x))
		}
	}
	mesh, err := BuildMesh(hm, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Height rises along +X by 1 per cell: the normal leans toward -X at 45 degrees.
	n := mesh.Vertices[4].Normal
	want := math.NewVec3(-1, 1, 0).Normalize()
	if n.Sub(want).Length() > 1e-12 {
		t.Errorf("slope normal: expected %v, got %v", want, n)
	}
}

func TestBuildMeshRejects(t *testing.T) {
	if _, err := BuildMesh(NewHeightMap(1, 5), 1, 1); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams for a single column, got %v", err)
	}
	if _, err := BuildMesh(NewHeightMap(2, 2), 0, 1); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams for zero cell size, got %v", err)
	}
}

func BenchmarkSample(b *testing.B) {
	src := noise.New(1)
	p := DefaultParams2()
	p.Octaves = 6
	p.Frequency = 0.01
	for i := 0; i < b.N; i++ {
		if _, err := Sample(context.Background(), src, p, 256, 256); err != nil {
			b.Fatal(err)
		}
	}
}

package noise

import (
	"errors"
	"math"
	"sync"
	"testing"

	pgemath "github.com/Aleod-m/PGE/math"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPermutationIsBijection(t *testing.T) {
	for _, seed := range []int64{0, 1, -1, 1234, -42, math.MaxInt64, math.MinInt64} {
		f := New(seed)
		var seen [PermSize]bool
		for i, v := range f.Permutation() {
			if v < 0 || v >= PermSize {
				t.Fatalf("seed %d: perm[%d] = %d out of range", seed, i, v)
			}
			if seen[v] {
				t.Fatalf("seed %d: value %d repeated", seed, v)
			}
			seen[v] = true
		}
	}
}

func TestPermutationPinned(t *testing.T) {
	tests := []struct {
		seed int64
		head [4]int
		last int
	}{
		{0, [4]int{1952, 523, 1730, 7}, 366},
		{1234, [4]int{1706, 837, 1901, 1078}, 88},
		{-42, [4]int{1248, 454, 1764, 566}, 1036},
	}

	for _, tt := range tests {
		perm := New(tt.seed).Permutation()
		var head [4]int
		copy(head[:], perm[:4])
		if head != tt.head {
			t.Errorf("seed %d: expected prefix %v, got %v", tt.seed, tt.head, head)
		}
		if perm[PermSize-1] != tt.last {
			t.Errorf("seed %d: expected last entry %d, got %d", tt.seed, tt.last, perm[PermSize-1])
		}
	}
}

func TestSeed(t *testing.T) {
	if s := New(77).Seed(); s != 77 {
		t.Errorf("Seed: expected 77, got %d", s)
	}
}

func TestDeterminism(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 500; i++ {
		x := float64(i)*0.37 - 80
		y := float64(i)*-0.53 + 12
		z := float64(i%23) * 1.7
		if a.Eval2(x, y) != b.Eval2(x, y) {
			t.Fatalf("Eval2(%v, %v) differs between fields with the same seed", x, y)
		}
		if a.Eval3(x, y, z) != b.Eval3(x, y, z) {
			t.Fatalf("Eval3(%v, %v, %v) differs between fields with the same seed", x, y, z)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i)*0.71 + 0.13
		if a.Eval2(x, -x*0.5) == b.Eval2(x, -x*0.5) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("seeds 1 and 2 agree on %d of 100 samples", same)
	}
}

func TestEval2Anchors(t *testing.T) {
	tests := []struct {
		seed     int64
		x, y     float64
		expected float64
	}{
		{1234, 3.7, -1.2, -0.5099127680446157},
		{1234, 0.5, 0.5, 0.18838779187621546},
		{1234, -10.25, 7.125, -0.31724960851275996},
		{1234, 5, -3, 0.9663281179681561},
		{0, 0.5, 0.5, -0.4269535821201493},
		{0, -10.25, 7.125, 0.1870783278107145},
		{-42, 0.5, 0.5, -0.7587547454176615},
		{-42, -10.25, 7.125, -0.5972061001727674},
	}

	for _, tt := range tests {
		got := New(tt.seed).Eval2(tt.x, tt.y)
		if !near(got, tt.expected, eps) {
			t.Errorf("Eval2(%v, %v) seed %d: expected %v, got %v", tt.x, tt.y, tt.seed, tt.expected, got)
		}
	}
}

func TestEval3Anchors(t *testing.T) {
	tests := []struct {
		seed     int64
		x, y, z  float64
		expected float64
	}{
		{1234, 3.7, -1.2, 0.5, -0.23580358007216903},
		{1234, 0.5, 0.5, 0.5, -0.07812476355717524},
		{1234, -10.25, 7.125, 100.75, 0.14941309745017153},
		{1234, 5, -3, 2, 0.7178287955185175},
		{0, 0.5, 0.5, 0.5, -0.08289406596507715},
		{0, -10.25, 7.125, 100.75, -0.10013026175877462},
		{-42, 0.5, 0.5, 0.5, 0.1321293371665503},
		{-42, -10.25, 7.125, 100.75, 0.25367174944596493},
	}

	for _, tt := range tests {
		got := New(tt.seed).Eval3(tt.x, tt.y, tt.z)
		if !near(got, tt.expected, eps) {
			t.Errorf("Eval3(%v, %v, %v) seed %d: expected %v, got %v", tt.x, tt.y, tt.z, tt.seed, tt.expected, got)
		}
	}
}

func TestOriginIsZero(t *testing.T) {
	f := New(1234)
	if v := f.Eval2(0, 0); !near(v, 0, 1e-12) {
		t.Errorf("Eval2(0, 0): expected 0, got %v", v)
	}
	if v := f.Eval3(0, 0, 0); !near(v, 0, 1e-12) {
		t.Errorf("Eval3(0, 0, 0): expected 0, got %v", v)
	}
}

func TestRange(t *testing.T) {
	for _, seed := range []int64{0, 1234, -42} {
		f := New(seed)
		for i := 0; i < 200; i++ {
			for j := 0; j < 200; j++ {
				x := float64(i)*0.173 - 17
				y := float64(j)*0.191 - 19
				z := float64((i*j)%37)*0.29 - 5
				if v := f.Eval2(x, y); v < -1 || v > 1 {
					t.Fatalf("seed %d: Eval2(%v, %v) = %v outside [-1, 1]", seed, x, y, v)
				}
				if v := f.Eval3(x, y, z); v < -1 || v > 1 {
					t.Fatalf("seed %d: Eval3(%v, %v, %v) = %v outside [-1, 1]", seed, x, y, z, v)
				}
			}
		}
	}
}

func TestContinuity(t *testing.T) {
	f := New(1234)
	const step = 1e-4
	for i := 0; i < 2000; i++ {
		x := float64(i)*0.0491 - 49
		y := float64(i%97)*1.03 - 50
		z := float64(i%61)*1.61 - 50
		if d := math.Abs(f.Eval2(x, y) - f.Eval2(x, y+step)); d > 1e-3 {
			t.Errorf("Eval2 jumps by %v near (%v, %v)", d, x, y)
		}
		if d := math.Abs(f.Eval3(x, y, z) - f.Eval3(x+step, y, z)); d > 1e-3 {
			t.Errorf("Eval3 jumps by %v near (%v, %v, %v)", d, x, y, z)
		}
	}
}

// unstretch2 maps a point on the stretched lattice back to input space.
func unstretch2(xs, ys float64) (float64, float64) {
	o := (xs + ys) * squish2D
	return xs + o, ys + o
}

func unstretch3(xs, ys, zs float64) (float64, float64, float64) {
	o := (xs + ys + zs) * squish3D
	return xs + o, ys + o, zs + o
}

func TestPeriodicity(t *testing.T) {
	f := New(1234)
	for i := 0; i < 200; i++ {
		xs := float64(i)*0.197 - 20
		ys := float64(i%13)*1.31 - 8
		zs := float64(i%7)*2.03 - 7

		x0, y0 := unstretch2(xs, ys)
		x1, y1 := unstretch2(xs+PermSize, ys)
		if a, b := f.Eval2(x0, y0), f.Eval2(x1, y1); !near(a, b, 1e-6) {
			t.Errorf("Eval2 period: %v vs %v at stretched (%v, %v)", a, b, xs, ys)
		}

		x0, y0, z0 := unstretch3(xs, ys, zs)
		x1, y1, z1 := unstretch3(xs, ys, zs+PermSize)
		if a, b := f.Eval3(x0, y0, z0), f.Eval3(x1, y1, z1); !near(a, b, 1e-4) {
			t.Errorf("Eval3 period: %v vs %v at stretched (%v, %v, %v)", a, b, xs, ys, zs)
		}
	}

	// A plain diagonal shift in input space is not a lattice period.
	if a, b := f.Eval2(0.3, 0.7), f.Eval2(2048.3, 2048.7); near(a, b, 1e-3) {
		t.Errorf("diagonal shift unexpectedly periodic: %v vs %v", a, b)
	}
}

func TestVecAdapters(t *testing.T) {
	f := New(5)
	if f.EvalVec2(pgemath.NewVec2(1.5, -2.25)) != f.Eval2(1.5, -2.25) {
		t.Error("EvalVec2 disagrees with Eval2")
	}
	if f.EvalVec3(pgemath.NewVec3(1.5, -2.25, 9)) != f.Eval3(1.5, -2.25, 9) {
		t.Error("EvalVec3 disagrees with Eval3")
	}
}

func TestFromPermutation(t *testing.T) {
	ref := New(1234)
	f, err := FromPermutation(ref.Permutation())
	if err != nil {
		t.Fatalf("FromPermutation: unexpected error %v", err)
	}
	if f.Seed() != 0 {
		t.Errorf("Seed: expected 0 for a permutation-built field, got %d", f.Seed())
	}
	if a, b := f.Eval2(3.7, -1.2), ref.Eval2(3.7, -1.2); a != b {
		t.Errorf("Eval2: expected %v, got %v", b, a)
	}
	if a, b := f.Eval3(3.7, -1.2, 0.5), ref.Eval3(3.7, -1.2, 0.5); a != b {
		t.Errorf("Eval3: expected %v, got %v", b, a)
	}

	var identity [PermSize]int
	for i := range identity {
		identity[i] = i
	}
	if _, err := FromPermutation(identity); err != nil {
		t.Errorf("identity table rejected: %v", err)
	}
}

func TestFromPermutationRejects(t *testing.T) {
	base := New(8).Permutation()

	dup := base
	dup[10] = dup[11]

	neg := base
	neg[0] = -1

	big := base
	big[PermSize-1] = PermSize

	for name, perm := range map[string][PermSize]int{
		"duplicate": dup,
		"negative":  neg,
		"too large": big,
	} {
		f, err := FromPermutation(perm)
		if !errors.Is(err, ErrInvalidPermutation) {
			t.Errorf("%s: expected ErrInvalidPermutation, got %v", name, err)
		}
		if f != nil {
			t.Errorf("%s: expected nil field", name)
		}
	}
}

func TestConcurrentReaders(t *testing.T) {
	f := New(2024)
	want := make([]float64, 64)
	for i := range want {
		want[i] = f.Eval3(float64(i)*0.3, float64(i)*-0.7, 1.1)
	}

	var wg sync.WaitGroup
	errs := make(chan int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range want {
				if f.Eval3(float64(i)*0.3, float64(i)*-0.7, 1.1) != want[i] {
					errs <- i
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for i := range errs {
		t.Errorf("concurrent Eval3 mismatch at sample %d", i)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(int64(i))
	}
}

func BenchmarkEval2(b *testing.B) {
	f := New(1234)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Eval2(float64(i)*0.01, 3.3)
	}
}

func BenchmarkEval3(b *testing.B) {
	f := New(1234)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Eval3(float64(i)*0.01, 3.3, -7.1)
	}
}

package noise

// LCG constants (Knuth MMIX) used to walk the shuffle.
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// buildPermutation shuffles [0, PermSize) with a Fisher-Yates pass driven by a
// 64-bit LCG seeded with seed. Each consumed source slot is replaced by the last
// live one, so the result is always a bijection.
func buildPermutation(seed int64) [PermSize]int {
	var perm, source [PermSize]int
	for i := range source {
		source[i] = i
	}

	s := seed
	for i := PermSize - 1; i >= 0; i-- {
		s = s*lcgMultiplier + lcgIncrement
		r := int((s + 31) % int64(i+1))
		if r < 0 {
			r += i + 1
		}
		perm[i] = source[r]
		source[r] = source[i]
	}
	return perm
}

// deriveGradients fills the per-index gradient tables from the permutation.
func (f *Field) deriveGradients() {
	for i, p := range f.perm {
		f.grad2[i] = gradients2D[p%len(gradients2D)].Mul(norm2D)
		f.grad3[i] = gradients3D[p%len(gradients3D)].Mul(norm3D)
	}
}

package noise

// The lattice coordinates are hashed twice (three times in 3D) through perm so
// neighbouring cells get decorrelated gradients. Masking keeps every lookup in
// range for any sign or magnitude of the coordinate.

func (f *Field) extrapolate2(xsb, ysb int, dx, dy float64) float64 {
	g := f.grad2[f.perm[xsb&pMask]^(ysb&pMask)]
	return g.X*dx + g.Y*dy
}

func (f *Field) extrapolate3(xsb, ysb, zsb int, dx, dy, dz float64) float64 {
	g := f.grad3[f.perm[f.perm[xsb&pMask]^(ysb&pMask)]^(zsb&pMask)]
	return g.X*dx + g.Y*dy + g.Z*dz
}

// contrib2 is the kernel-weighted contribution of lattice vertex (xsv, ysv) at
// offset (dx, dy): (2 - |d|²)^4 times the gradient ramp, zero outside the support.
func (f *Field) contrib2(xsv, ysv int, dx, dy float64) float64 {
	attn := 2 - dx*dx - dy*dy
	if attn <= 0 {
		return 0
	}
	attn *= attn
	return attn * attn * f.extrapolate2(xsv, ysv, dx, dy)
}

func (f *Field) contrib3(xsv, ysv, zsv int, dx, dy, dz float64) float64 {
	attn := 2 - dx*dx - dy*dy - dz*dz
	if attn <= 0 {
		return 0
	}
	attn *= attn
	return attn * attn * f.extrapolate3(xsv, ysv, zsv, dx, dy, dz)
}

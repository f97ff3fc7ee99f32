// Package terrain builds height fields on top of a coherent noise source.
//
// A Source is anything that evaluates 2D and 3D noise; *noise.Field is the
// native one. Params describe where and how a field is sampled (domain
// placement, octave stack, base frequency), Sample fills a HeightMap in
// parallel, and BuildMesh turns the result into an indexed triangle grid.
//
//	src, _ := terrain.NewSource(terrain.SourceOpenSimplex, 42)
//	p := terrain.DefaultParams2()
//	p.Octaves = 5
//	p.Frequency = 0.01
//	hm, err := terrain.Sample(ctx, src, p, 256, 256)
package terrain

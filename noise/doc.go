// Package noise implements OpenSimplex coherent-gradient noise in two and three
// dimensions.
//
// A Field is built once from a seed (or from an explicit permutation table) and is
// immutable afterwards, so a single Field may be shared by any number of goroutines
// without synchronization. Evaluation is a pure function of the field and the query
// point:
//
//	f := noise.New(1234)
//	h := f.Eval2(x*0.05, y*0.05)      // height sample in roughly [-1, 1]
//	d := f.Eval3(x*0.05, y*0.05, t)   // density sample, or 2D animated over t
//
// Outputs stay within about [-1, 1]. The package does not compose octaves; layer
// fractal sums over Eval2/Eval3 in the caller (see package terrain).
//
// Coordinates must be finite. NaN or infinite inputs are not rejected; they
// propagate through the arithmetic and yield an unspecified result.
package noise

package noise

import "github.com/Aleod-m/PGE/math"

// Eval2 returns the 2D noise value at (x, y), in roughly [-1, 1].
func (f *Field) Eval2(x, y float64) float64 {
	// Place the input on the stretched triangular lattice.
	stretchOffset := (x + y) * stretch2D
	xs := x + stretchOffset
	ys := y + stretchOffset

	// Rhombus super-cell origin and position inside it.
	xsb := math.FastFloor(xs)
	ysb := math.FastFloor(ys)
	xins := xs - float64(xsb)
	yins := ys - float64(ysb)
	inSum := xins + yins

	// Offset from the cell origin, back in input space.
	squishOffset := inSum * squish2D
	dx0 := xins + squishOffset
	dy0 := yins + squishOffset

	var value float64

	// (1,0) and (0,1) belong to both triangles of the rhombus.
	dx1 := dx0 - 1 - squish2D
	dy1 := dy0 - 0 - squish2D
	value += f.contrib2(xsb+1, ysb+0, dx1, dy1)

	dx2 := dx0 - 0 - squish2D
	dy2 := dy0 - 1 - squish2D
	value += f.contrib2(xsb+0, ysb+1, dx2, dy2)

	var xsvExt, ysvExt int
	var dxExt, dyExt float64

	if inSum <= 1 {
		// Lower triangle, anchored at (0,0).
		zins := 1 - inSum
		if zins > xins || zins > yins {
			// (0,0) is one of the two closest vertices; the extra vertex sits
			// across the edge opposite the farther of (1,0) and (0,1).
			if xins > yins {
				xsvExt, ysvExt = xsb+1, ysb-1
				dxExt, dyExt = dx0-1, dy0+1
			} else {
				xsvExt, ysvExt = xsb-1, ysb+1
				dxExt, dyExt = dx0+1, dy0-1
			}
		} else {
			// (1,0) and (0,1) are closest; the extra vertex is (1,1).
			xsvExt, ysvExt = xsb+1, ysb+1
			dxExt = dx0 - 1 - 2*squish2D
			dyExt = dy0 - 1 - 2*squish2D
		}
	} else {
		// Upper triangle, anchored at (1,1).
		zins := 2 - inSum
		if zins < xins || zins < yins {
			if xins > yins {
				xsvExt, ysvExt = xsb+2, ysb+0
				dxExt = dx0 - 2 - 2*squish2D
				dyExt = dy0 + 0 - 2*squish2D
			} else {
				xsvExt, ysvExt = xsb+0, ysb+2
				dxExt = dx0 + 0 - 2*squish2D
				dyExt = dy0 - 2 - 2*squish2D
			}
		} else {
			// (1,0) and (0,1) are closest; the extra vertex is (0,0).
			dxExt, dyExt = dx0, dy0
			xsvExt, ysvExt = xsb, ysb
		}
		xsb++
		ysb++
		dx0 = dx0 - 1 - 2*squish2D
		dy0 = dy0 - 1 - 2*squish2D
	}

	// Anchor vertex, (0,0) or (1,1).
	value += f.contrib2(xsb, ysb, dx0, dy0)

	// Extra vertex outside the triangle.
	value += f.contrib2(xsvExt, ysvExt, dxExt, dyExt)

	return value
}

package noise

import "github.com/Aleod-m/PGE/math"

// corner names a vertex of the unit rhombohedron around the cell origin by the
// set of axes on which it is offset by one.
type corner uint8

const (
	cornerX corner = 1 << iota // (1,0,0)
	cornerY                    // (0,1,0)
	cornerZ                    // (0,0,1)

	cornerXY = cornerX | cornerY // (1,1,0)
	cornerXZ = cornerX | cornerZ // (1,0,1)
	cornerYZ = cornerY | cornerZ // (0,1,1)
)

func (c corner) has(axis corner) bool {
	return c&axis != 0
}

// vertex3 is a lattice vertex together with the query point's offset from it.
type vertex3 struct {
	xsv, ysv, zsv int
	dx, dy, dz    float64
}

// cell3 locates a query point inside its stretched-cube super-cell.
type cell3 struct {
	xsb, ysb, zsb    int
	xins, yins, zins float64
	inSum            float64
	dx0, dy0, dz0    float64
}

func locate3(x, y, z float64) cell3 {
	// Place the input on the simplectic honeycomb.
	stretchOffset := (x + y + z) * stretch3D
	xs := x + stretchOffset
	ys := y + stretchOffset
	zs := z + stretchOffset

	var c cell3
	c.xsb = math.FastFloor(xs)
	c.ysb = math.FastFloor(ys)
	c.zsb = math.FastFloor(zs)

	c.xins = xs - float64(c.xsb)
	c.yins = ys - float64(c.ysb)
	c.zins = zs - float64(c.zsb)
	c.inSum = c.xins + c.yins + c.zins

	squishOffset := c.inSum * squish3D
	c.dx0 = c.xins + squishOffset
	c.dy0 = c.yins + squishOffset
	c.dz0 = c.zins + squishOffset
	return c
}

// Eval3 returns the 3D noise value at (x, y, z), in roughly [-1, 1].
func (f *Field) Eval3(x, y, z float64) float64 {
	c := locate3(x, y, z)

	var value float64
	var ext0, ext1 vertex3
	switch {
	case c.inSum <= 1:
		value, ext0, ext1 = f.lowerTetrahedron(&c)
	case c.inSum >= 2:
		value, ext0, ext1 = f.upperTetrahedron(&c)
	default:
		value, ext0, ext1 = f.octahedron(&c)
	}

	value += f.contrib3(ext0.xsv, ext0.ysv, ext0.zsv, ext0.dx, ext0.dy, ext0.dz)
	value += f.contrib3(ext1.xsv, ext1.ysv, ext1.zsv, ext1.dx, ext1.dy, ext1.dz)
	return value
}

// lowerTetrahedron handles the simplex at (0,0,0).
func (f *Field) lowerTetrahedron(c *cell3) (value float64, ext0, ext1 vertex3) {
	// Two closest of (1,0,0), (0,1,0), (0,0,1).
	aPoint, aScore := cornerX, c.xins
	bPoint, bScore := cornerY, c.yins
	if aScore >= bScore && c.zins > bScore {
		bScore, bPoint = c.zins, cornerZ
	} else if aScore < bScore && c.zins > aScore {
		aScore, aPoint = c.zins, cornerZ
	}

	wins := 1 - c.inSum
	if wins > aScore || wins > bScore {
		// (0,0,0) is one of the two closest; the other is the closer of a and b.
		closest := aPoint
		if bScore > aScore {
			closest = bPoint
		}

		if !closest.has(cornerX) {
			ext0.xsv, ext1.xsv = c.xsb-1, c.xsb
			ext0.dx, ext1.dx = c.dx0+1, c.dx0
		} else {
			ext0.xsv, ext1.xsv = c.xsb+1, c.xsb+1
			ext0.dx, ext1.dx = c.dx0-1, c.dx0-1
		}

		if !closest.has(cornerY) {
			ext0.ysv, ext1.ysv = c.ysb, c.ysb
			ext0.dy, ext1.dy = c.dy0, c.dy0
			if !closest.has(cornerX) {
				ext1.ysv--
				ext1.dy++
			} else {
				ext0.ysv--
				ext0.dy++
			}
		} else {
			ext0.ysv, ext1.ysv = c.ysb+1, c.ysb+1
			ext0.dy, ext1.dy = c.dy0-1, c.dy0-1
		}

		if !closest.has(cornerZ) {
			ext0.zsv, ext1.zsv = c.zsb, c.zsb-1
			ext0.dz, ext1.dz = c.dz0, c.dz0+1
		} else {
			ext0.zsv, ext1.zsv = c.zsb+1, c.zsb+1
			ext0.dz, ext1.dz = c.dz0-1, c.dz0-1
		}
	} else {
		// (0,0,0) is not one of the two closest; both extras follow from them.
		closest := aPoint | bPoint

		if !closest.has(cornerX) {
			ext0.xsv, ext1.xsv = c.xsb, c.xsb-1
			ext0.dx = c.dx0 - 2*squish3D
			ext1.dx = c.dx0 + 1 - squish3D
		} else {
			ext0.xsv, ext1.xsv = c.xsb+1, c.xsb+1
			ext0.dx = c.dx0 - 1 - 2*squish3D
			ext1.dx = c.dx0 - 1 - squish3D
		}

		if !closest.has(cornerY) {
			ext0.ysv, ext1.ysv = c.ysb, c.ysb-1
			ext0.dy = c.dy0 - 2*squish3D
			ext1.dy = c.dy0 + 1 - squish3D
		} else {
			ext0.ysv, ext1.ysv = c.ysb+1, c.ysb+1
			ext0.dy = c.dy0 - 1 - 2*squish3D
			ext1.dy = c.dy0 - 1 - squish3D
		}

		if !closest.has(cornerZ) {
			ext0.zsv, ext1.zsv = c.zsb, c.zsb-1
			ext0.dz = c.dz0 - 2*squish3D
			ext1.dz = c.dz0 + 1 - squish3D
		} else {
			ext0.zsv, ext1.zsv = c.zsb+1, c.zsb+1
			ext0.dz = c.dz0 - 1 - 2*squish3D
			ext1.dz = c.dz0 - 1 - squish3D
		}
	}

	// (0,0,0)
	value += f.contrib3(c.xsb, c.ysb, c.zsb, c.dx0, c.dy0, c.dz0)

	// (1,0,0)
	dx1 := c.dx0 - 1 - squish3D
	dy1 := c.dy0 - 0 - squish3D
	dz1 := c.dz0 - 0 - squish3D
	value += f.contrib3(c.xsb+1, c.ysb+0, c.zsb+0, dx1, dy1, dz1)

	// (0,1,0)
	dx2 := c.dx0 - 0 - squish3D
	dy2 := c.dy0 - 1 - squish3D
	dz2 := dz1
	value += f.contrib3(c.xsb+0, c.ysb+1, c.zsb+0, dx2, dy2, dz2)

	// (0,0,1)
	dx3 := dx2
	dy3 := dy1
	dz3 := c.dz0 - 1 - squish3D
	value += f.contrib3(c.xsb+0, c.ysb+0, c.zsb+1, dx3, dy3, dz3)

	return value, ext0, ext1
}

// upperTetrahedron handles the simplex at (1,1,1).
func (f *Field) upperTetrahedron(c *cell3) (value float64, ext0, ext1 vertex3) {
	// Two closest of (1,1,0), (1,0,1), (0,1,1), excluding (1,1,1).
	aPoint, aScore := cornerYZ, c.xins
	bPoint, bScore := cornerXZ, c.yins
	if aScore <= bScore && c.zins < bScore {
		bScore, bPoint = c.zins, cornerXY
	} else if aScore > bScore && c.zins < aScore {
		aScore, aPoint = c.zins, cornerXY
	}

	wins := 3 - c.inSum
	if wins < aScore || wins < bScore {
		// (1,1,1) is one of the two closest; the other is the closer of a and b.
		closest := aPoint
		if bScore < aScore {
			closest = bPoint
		}

		if closest.has(cornerX) {
			ext0.xsv, ext1.xsv = c.xsb+2, c.xsb+1
			ext0.dx = c.dx0 - 2 - 3*squish3D
			ext1.dx = c.dx0 - 1 - 3*squish3D
		} else {
			ext0.xsv, ext1.xsv = c.xsb, c.xsb
			ext0.dx = c.dx0 - 3*squish3D
			ext1.dx = c.dx0 - 3*squish3D
		}

		if closest.has(cornerY) {
			ext0.ysv, ext1.ysv = c.ysb+1, c.ysb+1
			ext0.dy = c.dy0 - 1 - 3*squish3D
			ext1.dy = c.dy0 - 1 - 3*squish3D
			if closest.has(cornerX) {
				ext1.ysv++
				ext1.dy--
			} else {
				ext0.ysv++
				ext0.dy--
			}
		} else {
			ext0.ysv, ext1.ysv = c.ysb, c.ysb
			ext0.dy = c.dy0 - 3*squish3D
			ext1.dy = c.dy0 - 3*squish3D
		}

		if closest.has(cornerZ) {
			ext0.zsv, ext1.zsv = c.zsb+1, c.zsb+2
			ext0.dz = c.dz0 - 1 - 3*squish3D
			ext1.dz = c.dz0 - 2 - 3*squish3D
		} else {
			ext0.zsv, ext1.zsv = c.zsb, c.zsb
			ext0.dz = c.dz0 - 3*squish3D
			ext1.dz = c.dz0 - 3*squish3D
		}
	} else {
		// (1,1,1) is not one of the two closest; both extras follow from them.
		closest := aPoint & bPoint

		if closest.has(cornerX) {
			ext0.xsv, ext1.xsv = c.xsb+1, c.xsb+2
			ext0.dx = c.dx0 - 1 - squish3D
			ext1.dx = c.dx0 - 2 - 2*squish3D
		} else {
			ext0.xsv, ext1.xsv = c.xsb, c.xsb
			ext0.dx = c.dx0 - squish3D
			ext1.dx = c.dx0 - 2*squish3D
		}

		if closest.has(cornerY) {
			ext0.ysv, ext1.ysv = c.ysb+1, c.ysb+2
			ext0.dy = c.dy0 - 1 - squish3D
			ext1.dy = c.dy0 - 2 - 2*squish3D
		} else {
			ext0.ysv, ext1.ysv = c.ysb, c.ysb
			ext0.dy = c.dy0 - squish3D
			ext1.dy = c.dy0 - 2*squish3D
		}

		if closest.has(cornerZ) {
			ext0.zsv, ext1.zsv = c.zsb+1, c.zsb+2
			ext0.dz = c.dz0 - 1 - squish3D
			ext1.dz = c.dz0 - 2 - 2*squish3D
		} else {
			ext0.zsv, ext1.zsv = c.zsb, c.zsb
			ext0.dz = c.dz0 - squish3D
			ext1.dz = c.dz0 - 2*squish3D
		}
	}

	// (1,1,0)
	dx3 := c.dx0 - 1 - 2*squish3D
	dy3 := c.dy0 - 1 - 2*squish3D
	dz3 := c.dz0 - 0 - 2*squish3D
	value += f.contrib3(c.xsb+1, c.ysb+1, c.zsb+0, dx3, dy3, dz3)

	// (1,0,1)
	dx2 := dx3
	dy2 := c.dy0 - 0 - 2*squish3D
	dz2 := c.dz0 - 1 - 2*squish3D
	value += f.contrib3(c.xsb+1, c.ysb+0, c.zsb+1, dx2, dy2, dz2)

	// (0,1,1)
	dx1 := c.dx0 - 0 - 2*squish3D
	dy1 := dy3
	dz1 := dz2
	value += f.contrib3(c.xsb+0, c.ysb+1, c.zsb+1, dx1, dy1, dz1)

	// (1,1,1)
	dx0 := c.dx0 - 1 - 3*squish3D
	dy0 := c.dy0 - 1 - 3*squish3D
	dz0 := c.dz0 - 1 - 3*squish3D
	value += f.contrib3(c.xsb+1, c.ysb+1, c.zsb+1, dx0, dy0, dz0)

	return value, ext0, ext1
}

// octahedron handles the rectified simplex between the two tetrahedra.
func (f *Field) octahedron(c *cell3) (value float64, ext0, ext1 vertex3) {
	var aScore, bScore float64
	var aPoint, bPoint corner
	var aFar, bFar bool

	// (0,0,1) against (1,1,0).
	if p1 := c.xins + c.yins; p1 > 1 {
		aScore, aPoint, aFar = p1-1, cornerXY, true
	} else {
		aScore, aPoint, aFar = 1-p1, cornerZ, false
	}

	// (0,1,0) against (1,0,1).
	if p2 := c.xins + c.zins; p2 > 1 {
		bScore, bPoint, bFar = p2-1, cornerXZ, true
	} else {
		bScore, bPoint, bFar = 1-p2, cornerY, false
	}

	// The closer of (1,0,0) and (0,1,1) replaces the farther of a and b when it
	// beats it. Scores are not updated after a replacement.
	if p3 := c.yins + c.zins; p3 > 1 {
		score := p3 - 1
		if aScore <= bScore && aScore < score {
			aPoint, aFar = cornerYZ, true
		} else if aScore > bScore && bScore < score {
			bPoint, bFar = cornerYZ, true
		}
	} else {
		score := 1 - p3
		if aScore <= bScore && aScore < score {
			aPoint, aFar = cornerX, false
		} else if aScore > bScore && bScore < score {
			bPoint, bFar = cornerX, false
		}
	}

	switch {
	case aFar && bFar:
		// Both closest on the (1,1,1) side: one extra is (1,1,1), the other
		// lies two steps out along the shared axis.
		ext0 = vertex3{
			xsv: c.xsb + 1, ysv: c.ysb + 1, zsv: c.zsb + 1,
			dx: c.dx0 - 1 - 3*squish3D,
			dy: c.dy0 - 1 - 3*squish3D,
			dz: c.dz0 - 1 - 3*squish3D,
		}
		ext1 = vertex3{
			xsv: c.xsb, ysv: c.ysb, zsv: c.zsb,
			dx: c.dx0 - 2*squish3D,
			dy: c.dy0 - 2*squish3D,
			dz: c.dz0 - 2*squish3D,
		}
		shared := aPoint & bPoint
		switch {
		case shared.has(cornerX):
			ext1.xsv += 2
			ext1.dx = c.dx0 - 2 - 2*squish3D
		case shared.has(cornerY):
			ext1.ysv += 2
			ext1.dy = c.dy0 - 2 - 2*squish3D
		default:
			ext1.zsv += 2
			ext1.dz = c.dz0 - 2 - 2*squish3D
		}

	case !aFar && !bFar:
		// Both closest on the (0,0,0) side: one extra is (0,0,0), the other is
		// the (1,1,-1) permutation that negates the omitted axis.
		ext0 = vertex3{xsv: c.xsb, ysv: c.ysb, zsv: c.zsb, dx: c.dx0, dy: c.dy0, dz: c.dz0}
		ext1 = negatedCorner(c, aPoint|bPoint)

	default:
		// One closest on each side.
		far, near := bPoint, aPoint
		if aFar {
			far, near = aPoint, bPoint
		}

		// A (1,1,-1) permutation picked by the far point.
		ext0 = negatedCorner(c, far)

		// A (0,0,2) permutation picked by the near point.
		ext1 = vertex3{
			xsv: c.xsb, ysv: c.ysb, zsv: c.zsb,
			dx: c.dx0 - 2*squish3D,
			dy: c.dy0 - 2*squish3D,
			dz: c.dz0 - 2*squish3D,
		}
		switch {
		case near.has(cornerX):
			ext1.dx -= 2
			ext1.xsv += 2
		case near.has(cornerY):
			ext1.dy -= 2
			ext1.ysv += 2
		default:
			ext1.dz -= 2
			ext1.zsv += 2
		}
	}

	// (1,0,0)
	dx1 := c.dx0 - 1 - squish3D
	dy1 := c.dy0 - 0 - squish3D
	dz1 := c.dz0 - 0 - squish3D
	value += f.contrib3(c.xsb+1, c.ysb+0, c.zsb+0, dx1, dy1, dz1)

	// (0,1,0)
	dx2 := c.dx0 - 0 - squish3D
	dy2 := c.dy0 - 1 - squish3D
	dz2 := dz1
	value += f.contrib3(c.xsb+0, c.ysb+1, c.zsb+0, dx2, dy2, dz2)

	// (0,0,1)
	dx3 := dx2
	dy3 := dy1
	dz3 := c.dz0 - 1 - squish3D
	value += f.contrib3(c.xsb+0, c.ysb+0, c.zsb+1, dx3, dy3, dz3)

	// (1,1,0)
	dx4 := c.dx0 - 1 - 2*squish3D
	dy4 := c.dy0 - 1 - 2*squish3D
	dz4 := c.dz0 - 0 - 2*squish3D
	value += f.contrib3(c.xsb+1, c.ysb+1, c.zsb+0, dx4, dy4, dz4)

	// (1,0,1)
	dx5 := dx4
	dy5 := c.dy0 - 0 - 2*squish3D
	dz5 := c.dz0 - 1 - 2*squish3D
	value += f.contrib3(c.xsb+1, c.ysb+0, c.zsb+1, dx5, dy5, dz5)

	// (0,1,1)
	dx6 := c.dx0 - 0 - 2*squish3D
	dy6 := dy4
	dz6 := dz5
	value += f.contrib3(c.xsb+0, c.ysb+1, c.zsb+1, dx6, dy6, dz6)

	return value, ext0, ext1
}

// negatedCorner returns the (1,1,-1)-style vertex whose -1 lands on the first
// axis (x, then y, then z) that set leaves out.
func negatedCorner(c *cell3, set corner) vertex3 {
	switch {
	case !set.has(cornerX):
		return vertex3{
			xsv: c.xsb - 1, ysv: c.ysb + 1, zsv: c.zsb + 1,
			dx: c.dx0 + 1 - squish3D,
			dy: c.dy0 - 1 - squish3D,
			dz: c.dz0 - 1 - squish3D,
		}
	case !set.has(cornerY):
		return vertex3{
			xsv: c.xsb + 1, ysv: c.ysb - 1, zsv: c.zsb + 1,
			dx: c.dx0 - 1 - squish3D,
			dy: c.dy0 + 1 - squish3D,
			dz: c.dz0 - 1 - squish3D,
		}
	default:
		return vertex3{
			xsv: c.xsb + 1, ysv: c.ysb + 1, zsv: c.zsb - 1,
			dx: c.dx0 - 1 - squish3D,
			dy: c.dy0 - 1 - squish3D,
			dz: c.dz0 + 1 - squish3D,
		}
	}
}

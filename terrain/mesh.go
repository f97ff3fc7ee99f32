package terrain

import (
	"fmt"

	"github.com/Aleod-m/PGE/core"
	"github.com/Aleod-m/PGE/math"
)

// BuildMesh turns hm into a grid of triangles on the XZ plane, centered on the
// origin, cellSize apart, with Y = sample * heightScale. Normals come from
// central differences (one-sided on the border), UVs span [0, 1] over the grid
// and vertex colors shade from black to white with the sample clamped to
// [0, 1].
func BuildMesh(hm *HeightMap, cellSize, heightScale float64) (*core.MeshData, error) {
	if hm.Width < 2 || hm.Height < 2 {
		return nil, fmt.Errorf("%w: mesh needs at least 2x2 samples, got %dx%d", ErrInvalidParams, hm.Width, hm.Height)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v must be positive", ErrInvalidParams, cellSize)
	}

	w, h := hm.Width, hm.Height
	halfW := float64(w-1) * cellSize / 2
	halfD := float64(h-1) * cellSize / 2

	vertices := make([]core.Vertex, 0, w*h)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w-1)
			v := float64(z) / float64(h-1)
			sample := hm.At(x, z)

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{
					X: -halfW + float64(x)*cellSize,
					Y: sample * heightScale,
					Z: -halfD + float64(z)*cellSize,
				},
				Normal: gridNormal(hm, x, z, cellSize, heightScale),
				UV:     math.Vec2{X: u, Y: v},
				Color:  core.ColorBlack.Lerp(core.ColorWhite, float32(math.Clamp(sample, 0, 1))),
			})
		}
	}

	indices := make([]uint32, 0, (w-1)*(h-1)*6)
	for z := 0; z < h-1; z++ {
		for x := 0; x < w-1; x++ {
			topLeft := uint32(z*w + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(w)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	logger().Debug("built terrain mesh", "vertices", len(vertices), "triangles", len(indices)/3)
	return &core.MeshData{Vertices: vertices, Indices: indices}, nil
}

func gridNormal(hm *HeightMap, x, z int, cellSize, heightScale float64) math.Vec3 {
	x0, x1 := max(x-1, 0), min(x+1, hm.Width-1)
	z0, z1 := max(z-1, 0), min(z+1, hm.Height-1)

	dydx := (hm.At(x1, z) - hm.At(x0, z)) * heightScale / (float64(x1-x0) * cellSize)
	dydz := (hm.At(x, z1) - hm.At(x, z0)) * heightScale / (float64(z1-z0) * cellSize)
	return math.NewVec3(-dydx, 1, -dydz).Normalize()
}

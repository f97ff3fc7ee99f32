package io

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Aleod-m/PGE/core"
	"github.com/Aleod-m/PGE/math"
)

var ErrEmptyMesh = errors.New("io: mesh has no geometry")

// ExportOBJ writes mesh to a Wavefront .obj file as a single object. Vertex
// colors ride on the "v" lines as the common x y z r g b extension.
func ExportOBJ(path, name string, mesh *core.MeshData) error {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("export OBJ %q: %w", path, ErrEmptyMesh)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create OBJ file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "# PGE terrain export")
	fmt.Fprintf(w, "o %s\n", name)

	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "v %g %g %g %g %g %g\n",
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Color.R, v.Color.G, v.Color.B)
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "vt %g %g\n", v.UV.X, v.UV.Y)
	}

	// Positions, UVs and normals share one index space, 1-based.
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write OBJ %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	logger().Info("wrote OBJ", "path", path, "vertices", len(mesh.Vertices), "triangles", mesh.TriangleCount())
	return nil
}

// LoadOBJ parses a Wavefront .obj file into a single mesh. Groups and objects
// are merged, faces are fan-triangulated and identical v/vt/vn triples share a
// vertex. Material statements are ignored.
func LoadOBJ(path string) (*core.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()

	var (
		positions []math.Vec3
		colors    []core.Color
		normals   []math.Vec3
		uvs       []math.Vec2
	)
	mesh := &core.MeshData{}
	vertexMap := make(map[faceKey]uint32)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "v":
			vals, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			positions = append(positions, math.NewVec3(vals[0], vals[1], vals[2]))
			c := core.ColorWhite
			if len(vals) >= 6 {
				c = core.Color{R: float32(vals[3]), G: float32(vals[4]), B: float32(vals[5]), A: 1}
			}
			colors = append(colors, c)
		case "vn":
			vals, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			normals = append(normals, math.NewVec3(vals[0], vals[1], vals[2]))
		case "vt":
			vals, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			uvs = append(uvs, math.NewVec2(vals[0], vals[1]))
		case "f":
			face := make([]uint32, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				pi, ti, ni, err := parseFaceVertex(spec)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
				}
				p, ok := resolve(pi, len(positions))
				if !ok {
					return nil, fmt.Errorf("%s:%d: position index %d out of range", path, lineNo, pi)
				}
				// Negative indices are relative to the lines read so far, so the
				// cache is keyed on absolute slots (-1 when absent).
				t, hasUV := resolve(ti, len(uvs))
				n, hasNormal := resolve(ni, len(normals))
				key := faceKey{p, -1, -1}
				if hasUV {
					key[1] = t
				}
				if hasNormal {
					key[2] = n
				}
				if idx, ok := vertexMap[key]; ok {
					face = append(face, idx)
					continue
				}

				v := core.Vertex{Position: positions[p], Color: colors[p]}
				if hasUV {
					v.UV = uvs[t]
				}
				if hasNormal {
					v.Normal = normals[n]
				}
				idx := uint32(len(mesh.Vertices))
				mesh.Vertices = append(mesh.Vertices, v)
				vertexMap[key] = idx
				face = append(face, idx)
			}
			for i := 2; i < len(face); i++ {
				mesh.Indices = append(mesh.Indices, face[0], face[i-1], face[i])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read OBJ %q: %w", path, err)
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("load OBJ %q: %w", path, ErrEmptyMesh)
	}
	return mesh, nil
}

func parseFloats(fields []string, need int) ([]float64, error) {
	if len(fields) < need {
		return nil, fmt.Errorf("expected %d values, got %d", need, len(fields))
	}
	vals := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// parseFaceVertex splits "v", "v/vt", "v//vn" or "v/vt/vn". Missing entries are 0.
func parseFaceVertex(spec string) (v, vt, vn int, err error) {
	parts := strings.Split(spec, "/")
	idx := [3]int{}
	for i := 0; i < len(parts) && i < 3; i++ {
		if parts[i] == "" {
			continue
		}
		if idx[i], err = strconv.Atoi(parts[i]); err != nil {
			return 0, 0, 0, fmt.Errorf("bad face vertex %q: %w", spec, err)
		}
	}
	return idx[0], idx[1], idx[2], nil
}

// faceKey holds the absolute position, UV and normal slots of a face vertex.
type faceKey [3]int

// resolve turns a 1-based (or negative, end-relative) OBJ index into a slice index.
func resolve(idx, n int) (int, bool) {
	if idx < 0 {
		idx = n + idx + 1
	}
	if idx < 1 || idx > n {
		return 0, false
	}
	return idx - 1, true
}

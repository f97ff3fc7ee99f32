package io

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Aleod-m/PGE/core"
	"github.com/Aleod-m/PGE/math"
)

// SaveGLB writes mesh as a single-node binary glTF file. Positions, normals,
// UVs and indices are stored; vertex colors are not.
func SaveGLB(path, name string, mesh *core.MeshData) error {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("save GLB %q: %w", path, ErrEmptyMesh)
	}

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	uvs := make([][2]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position.Float32()
		normals[i] = v.Normal.Float32()
		uvs[i] = [2]float32{float32(v.UV.X), float32(v.UV.Y)}
	}

	doc := gltf.NewDocument()
	attrs := map[string]int{
		"POSITION":   modeler.WritePosition(doc, positions),
		"NORMAL":     modeler.WriteNormal(doc, normals),
		"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
	}
	indices := modeler.WriteIndices(doc, mesh.Indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indices),
			Attributes: attrs,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	logger().Info("wrote GLB", "path", path, "vertices", len(positions), "triangles", mesh.TriangleCount())
	return nil
}

// LoadGLB reads every triangle primitive of a .glb or .gltf file into one mesh.
// Primitives without indices are read as plain triangle lists; point, line,
// strip and fan primitives are skipped.
func LoadGLB(path string) (*core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	mesh := &core.MeshData{}
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				logger().Debug("skipping non-triangle primitive", "path", path, "mesh", mi, "prim", pi, "mode", prim.Mode)
				continue
			}
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("gltf %q: mesh %d prim %d: %w", path, mi, pi, err)
			}
		}
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("gltf %q: %w", path, ErrEmptyMesh)
	}
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *core.MeshData) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("uvs: %w", err)
		}
	}

	base := uint32(len(mesh.Vertices))
	for i, p := range positions {
		v := core.Vertex{
			Position: vec3(p),
			Normal:   math.Vec3Up,
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			v.Normal = vec3(normals[i])
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: float64(uvs[i][0]), Y: float64(uvs[i][1])}
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices == nil {
		for i := range positions {
			mesh.Indices = append(mesh.Indices, base+uint32(i))
		}
		return nil
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("indices: %w", err)
	}
	for _, idx := range indices {
		mesh.Indices = append(mesh.Indices, base+idx)
	}
	return nil
}

func vec3(p [3]float32) math.Vec3 {
	return math.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

package io

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"mesh-viewer/core"
	"mesh-viewer/scene"
)

var (
	// ErrEmptyMesh is returned when a mesh without primitives is exported to
	// a format that cannot represent it.
	ErrEmptyMesh = errors.New("mesh has no primitives")
	ErrNilMesh   = errors.New("nil mesh")
)

// SaveGLTF writes meshes as glTF 2.0, one node per mesh in the default
// scene. A ".glb" extension selects the binary container.
func SaveGLTF(path string, meshes ...*scene.Mesh) error {
	doc, err := BuildGLTF(meshes...)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

// BuildGLTF converts meshes into an in-memory glTF document.
func BuildGLTF(meshes ...*scene.Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	if err := validateMeshes(meshes); err != nil {
		return nil, fmt.Errorf("export glTF: %w", err)
	}
	for _, m := range meshes {
		if len(m.Indices) == 0 {
			return nil, fmt.Errorf("export glTF: %q: %w", m.Name, ErrEmptyMesh)
		}
		addGLTFMesh(doc, m)
	}
	return doc, nil
}

func addGLTFMesh(doc *gltf.Document, m *scene.Mesh) {
	n := m.VertexCount()
	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	uvs := make([][2]float32, n)
	colors := make([][4]uint8, n)
	for i := 0; i < n; i++ {
		p, nm, uv := m.Positions[i], m.Normals[i], m.UVs[i]
		positions[i] = [3]float32{p.X, p.Y, p.Z}
		normals[i] = [3]float32{nm.X, nm.Y, nm.Z}
		uvs[i] = [2]float32{uv.X, uv.Y}
		colors[i] = colorToRGBA8(m.Colors[i])
	}

	// The barrel is open, so both faces must be drawn.
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        m.Name,
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
		},
	})

	prim := &gltf.Primitive{
		Indices:  gltf.Index(modeler.WriteIndices(doc, m.Indices)),
		Material: gltf.Index(len(doc.Materials) - 1),
		Attributes: map[string]int{
			"POSITION":   modeler.WritePosition(doc, positions),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
			"COLOR_0":    modeler.WriteColor(doc, colors),
		},
	}
	// Line meshes carry zero normals, which glTF does not allow.
	if m.Mode == scene.Lines {
		prim.Mode = gltf.PrimitiveLines
	} else {
		prim.Attributes["NORMAL"] = modeler.WriteNormal(doc, normals)
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: m.Name, Primitives: []*gltf.Primitive{prim}})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: m.Name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
}

func colorToRGBA8(c core.Color) [4]uint8 {
	to8 := func(v float32) uint8 {
		return uint8(math32.Max(0, math32.Min(1, v))*255 + 0.5)
	}
	return [4]uint8{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

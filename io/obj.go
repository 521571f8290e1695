package io

import (
	"bufio"
	"fmt"
	stdio "io"
	"os"

	"mesh-viewer/scene"
)

// SaveOBJ writes meshes to a Wavefront .obj file at path.
func SaveOBJ(path string, meshes ...*scene.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create OBJ file: %w", err)
	}
	if err := ExportOBJ(f, meshes...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportOBJ writes meshes as Wavefront OBJ objects, triangles as "f" and
// line segments as "l" elements. Every mesh is validated before anything is
// written. Texture V is flipped because OBJ puts v=0 at
// the bottom of the image while meshes here use v=0 for the top.
func ExportOBJ(w stdio.Writer, meshes ...*scene.Mesh) error {
	if err := validateMeshes(meshes); err != nil {
		return fmt.Errorf("export OBJ: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# mesh-viewer")

	// OBJ indices are 1-based and global across the file.
	offset := uint32(1)
	for _, m := range meshes {
		fmt.Fprintf(bw, "o %s\n", m.Name)
		for _, p := range m.Positions {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for _, n := range m.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for _, uv := range m.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, 1-uv.Y)
		}
		for i := 0; i < m.TriangleCount(); i++ {
			t := m.Triangle(i)
			a, b, c := t[0]+offset, t[1]+offset, t[2]+offset
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		for i := 0; i < m.LineCount(); i++ {
			l := m.Line(i)
			fmt.Fprintf(bw, "l %d %d\n", l[0]+offset, l[1]+offset)
		}
		offset += uint32(m.VertexCount())
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write OBJ: %w", err)
	}
	return nil
}

// validateMeshes checks every mesh up front so a bad one leaves no partial
// output behind.
func validateMeshes(meshes []*scene.Mesh) error {
	for i, m := range meshes {
		if m == nil {
			return fmt.Errorf("%w: argument %d", ErrNilMesh, i)
		}
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

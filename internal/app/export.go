package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mesh-viewer/io"
	"mesh-viewer/scene"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Export writes mesh to path, picking the format from the file extension.
func Export(path string, mesh *scene.Mesh) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return io.SaveOBJ(path, mesh)
	case ".gltf", ".glb":
		return io.SaveGLTF(path, mesh)
	default:
		return fmt.Errorf("%w %q (want .obj, .gltf or .glb)", ErrUnknownFormat, ext)
	}
}

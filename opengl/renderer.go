package opengl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"mesh-viewer/core"
	"mesh-viewer/math"
	"mesh-viewer/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	// Mode is the GL primitive, gl.TRIANGLES or gl.LINES.
	Mode       uint32
}

// Renderer draws triangle meshes either lit or as a wireframe, and line
// meshes unlit in their vertex colors.
type Renderer struct {
	program  uint32
	mvpLoc   int32
	modelLoc int32
	unlitLoc int32

	wireframe bool
	gpuMeshes map[*scene.Mesh]*GPUMesh
}

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;

out vec4 fragColor;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragColor   = inColor;
    fragNormal  = mat3(model) * inNormal;
    fragUV      = inUV;
}
` + "\x00"

// Ambient 0.25 plus one directional light of 0.5 shining from (-2, 1, 0).
// The barrel is open, so back faces flip their normal. A faint UV checker
// stands in for a texture to show how the coordinates wrap. Unlit draws use
// the vertex color as is.
const fragSrc = `
#version 410 core
in vec4 fragColor;
in vec3 fragNormal;
in vec2 fragUV;

uniform bool unlit;

out vec4 outColor;

void main() {
    if (unlit) {
        outColor = fragColor;
        return;
    }
    vec3 n = normalize(fragNormal);
    if (!gl_FrontFacing) {
        n = -n;
    }
    vec3  toLight = normalize(vec3(-2.0, 1.0, 0.0));
    float diff    = max(dot(n, toLight), 0.0);
    float checker = mod(floor(fragUV.x * 16.0) + floor(fragUV.y * 4.0), 2.0);
    vec3  base    = fragColor.rgb * mix(0.75, 1.0, checker);
    outColor = vec4(base * (0.25 + 0.5 * diff), fragColor.a);
}
` + "\x00"

// NewRenderer initialises OpenGL.
// Must be called after the window's GL context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	core.LogInfo("OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Renderer{
		program:   prog,
		mvpLoc:    gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc:  gl.GetUniformLocation(prog, gl.Str("model\x00")),
		unlitLoc:  gl.GetUniformLocation(prog, gl.Str("unlit\x00")),
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}, nil
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the framebuffer with the given colour.
func (r *Renderer) BeginFrame(background core.Color) {
	gl.ClearColor(background.R, background.G, background.B, background.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetWireframe switches triangle meshes between filled, lit faces and unlit
// edges. Line meshes are unaffected.
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// IsWireframe reports whether triangle meshes are drawn as edges.
func (r *Renderer) IsWireframe() bool {
	return r.wireframe
}

// ToggleWireframe flips the mode and returns the new state.
func (r *Renderer) ToggleWireframe() bool {
	r.SetWireframe(!r.wireframe)
	return r.wireframe
}

// Upload validates mesh and copies it into GPU buffers. Uploading the same
// mesh twice is a no-op.
func (r *Renderer) Upload(mesh *scene.Mesh) error {
	if mesh == nil {
		return errors.New("upload: nil mesh")
	}
	if _, ok := r.gpuMeshes[mesh]; ok {
		return nil
	}
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if len(mesh.Indices) == 0 {
		return fmt.Errorf("upload: mesh %q has no primitives", mesh.Name)
	}

	vertices := mesh.Vertices()
	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices)), Mode: gl.TRIANGLES}
	if mesh.Mode == scene.Lines {
		gpu.Mode = gl.LINES
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), gl.Ptr(vertices), gl.STATIC_DRAW)

	var v core.Vertex
	attribs := []struct {
		size   int32
		offset uintptr
	}{
		{3, unsafe.Offsetof(v.Position)},
		{3, unsafe.Offsetof(v.Normal)},
		{2, unsafe.Offsetof(v.UV)},
		{4, unsafe.Offsetof(v.Color)},
	}
	for loc, a := range attribs {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), a.size, gl.FLOAT, false, stride, gl.PtrOffset(int(a.offset)))
	}

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	core.LogDebug("mesh uploaded",
		"name", mesh.Name,
		"mode", mesh.Mode,
		"vertices", len(vertices),
		"triangles", mesh.TriangleCount(),
		"lines", mesh.LineCount())
	return nil
}

// DrawMesh draws a previously uploaded mesh. The MVP is built as
// model * viewProj to match the row-vector convention of math.Mat4.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, model, viewProj math.Mat4) {
	gpu, ok := r.gpuMeshes[mesh]
	if !ok {
		return
	}
	mvp := model.Mul(viewProj)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0][0])
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0][0])
	if r.wireframe || gpu.Mode == gl.LINES {
		gl.Uniform1i(r.unlitLoc, 1)
	} else {
		gl.Uniform1i(r.unlitLoc, 0)
	}

	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gpu.Mode, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.gpuMeshes, mesh)
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	gl.DeleteProgram(r.program)
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}

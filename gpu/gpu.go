// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the GPU resources used by glquad:
// a linked shader [Program], an indexed [Mesh], and the
// [Drawing] operations on the current render target.
// The OpenGL implementation is in package glgpu.
// All methods must be called on the thread that owns the
// current graphics context.
package gpu

import (
	"image"

	"cogentcore.org/glquad/base/errors"
	"cogentcore.org/glquad/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoAttrib is returned when a named vertex input is not
// an active attribute of the program.
var ErrNoAttrib = errors.New("vertex attribute not found in program")

// GPU creates the resources that live in the current graphics context.
type GPU interface {
	// NewProgram returns a new, not yet compiled, Program.
	NewProgram(name string) Program

	// NewMesh returns a new Mesh with no GPU resources yet.
	NewMesh(name string) Mesh

	// Drawing returns the drawing operations for the current render target.
	Drawing() Drawing
}

// Program is a linked vertex + fragment shader program.
type Program interface {
	// Name returns name of program
	Name() string

	// Compile compiles both shader stages from the given source and links
	// them into the program. The per-stage shader objects are always released
	// after linking. A program handle exists afterward even if compiling or
	// linking failed, in which case the program is inert and the returned
	// error holds the driver diagnostics.
	Compile(vertSrc, fragSrc string) error

	// Handle returns the handle for the program -- only valid after a Compile call
	Handle() uint32

	// Activate activates this as the active program.
	Activate()

	// AttribLocation returns the location of the named vertex input,
	// and false if it is not an active attribute of the program.
	AttribLocation(name string) (uint32, bool)

	// SetUniform1f sets a float uniform on the active program.
	// It returns false, setting nothing, if the uniform is not active.
	SetUniform1f(name string, v float32) bool

	// SetUniform2f sets a vec2 uniform on the active program.
	// It returns false, setting nothing, if the uniform is not active.
	SetUniform2f(name string, v mgl32.Vec2) bool

	// Delete deletes the GPU resources associated with this program.
	Delete()
}

// Mesh is static, indexed vertex geometry with its vertex layout.
type Mesh interface {
	// Name returns name of mesh
	Name() string

	// Upload creates the vertex array, vertex buffer and index buffer,
	// transfers the given data, and binds the position to the vertex input
	// named attrib in prog. Indexes are validated first. If attrib is not
	// found, the buffers are still uploaded and an error wrapping
	// [ErrNoAttrib] is returned.
	Upload(prog Program, attrib string, verts []shape.Vertex, idxs []uint32) error

	// NIndexes returns the number of uploaded indexes.
	NIndexes() int

	// Activate binds the vertex array for drawing.
	Activate()

	// Delete deletes the GPU resources associated with this mesh.
	Delete()
}

// Drawing provides the drawing functions used by the frame loop.
// All operate on the current context with current program, target, etc.
type Drawing interface {
	// SetClearColor sets the color used by Clear.
	SetClearColor(clr mgl32.Vec4)

	// Clear clears the given properties of the current render target
	Clear(color, depth bool)

	// DepthTest turns on / off depth testing
	DepthTest(on bool)

	// Viewport sets the render viewport to the given size in pixels.
	Viewport(size image.Point)

	// TrianglesIndexed draws count indexes of the active mesh as a triangle list.
	TrianglesIndexed(count int)
}

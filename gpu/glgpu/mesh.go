// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"unsafe"

	"cogentcore.org/glquad/gpu"
	"cogentcore.org/glquad/shape"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// Mesh manages a vertex array object together with its static
// vertex buffer and index buffer (i.e., GL_ELEMENT_ARRAY_BUFFER
// for glDrawElements calls).
type Mesh struct {
	init bool
	name string
	vao  uint32
	vbo  uint32
	ebo  uint32
	nidx int
}

// Name returns name of mesh
func (ms *Mesh) Name() string {
	return ms.name
}

// Upload creates the vertex array and buffers and transfers the given data.
// The position is bound to the vertex input named attrib in prog, as
// PosComponents tightly packed floats with a stride of one [shape.Vertex].
// A previous upload is deleted first.
func (ms *Mesh) Upload(prog gpu.Program, attrib string, verts []shape.Vertex, idxs []uint32) error {
	if err := shape.Validate(verts, idxs); err != nil {
		return err
	}
	ms.Delete()

	gl.GenVertexArrays(1, &ms.vao)
	gl.BindVertexArray(ms.vao)
	ms.init = true

	ib := shape.IndexBytes(idxs)
	gl.GenBuffers(1, &ms.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ms.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(ib), unsafe.Pointer(unsafe.SliceData(ib)), gl.STATIC_DRAW)
	ms.nidx = len(idxs)

	vb := shape.VertexBytes(verts)
	gl.GenBuffers(1, &ms.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, ms.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vb), unsafe.Pointer(unsafe.SliceData(vb)), gl.STATIC_DRAW)

	defer gl.BindVertexArray(0)
	loc, ok := prog.AttribLocation(attrib)
	if !ok {
		return fmt.Errorf("glgpu Mesh %s: %q: %w", ms.name, attrib, gpu.ErrNoAttrib)
	}
	gl.VertexAttribPointerWithOffset(loc, shape.PosComponents, gl.FLOAT, false, int32(shape.VertexSize), uintptr(shape.PosOffset))
	gl.EnableVertexAttribArray(loc)
	return nil
}

// NIndexes returns the number of uploaded indexes.
func (ms *Mesh) NIndexes() int {
	return ms.nidx
}

// Activate binds the vertex array, with its buffers, for drawing.
func (ms *Mesh) Activate() {
	if !ms.init {
		return
	}
	gl.BindVertexArray(ms.vao)
}

// Delete deletes the GPU resources associated with this mesh
// (requires Upload to re-establish a new one).
func (ms *Mesh) Delete() {
	if !ms.init {
		return
	}
	gl.DeleteVertexArrays(1, &ms.vao)
	gl.DeleteBuffers(1, &ms.vbo)
	gl.DeleteBuffers(1, &ms.ebo)
	ms.vao, ms.vbo, ms.ebo = 0, 0, 0
	ms.nidx = 0
	ms.init = false
}

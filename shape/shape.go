// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides the vertex and index data for the
// geometry drawn by glquad, in the layout that is uploaded to the GPU.
package shape

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single vertex, with a 3D position.
type Vertex struct {
	Pos mgl32.Vec3
}

const (
	// VertexSize is the number of bytes in one [Vertex],
	// which is also the stride of the vertex buffer.
	VertexSize = int(unsafe.Sizeof(Vertex{}))

	// PosOffset is the byte offset of [Vertex.Pos] within a [Vertex].
	PosOffset = int(unsafe.Offsetof(Vertex{}.Pos))

	// PosComponents is the number of float32 components of [Vertex.Pos].
	PosComponents = 3

	// IndexSize is the number of bytes in one index.
	IndexSize = int(unsafe.Sizeof(uint32(0)))
)

// Validate returns an error if any index does not
// refer to a valid vertex slot.
func Validate(verts []Vertex, idxs []uint32) error {
	for i, ix := range idxs {
		if int(ix) >= len(verts) {
			return fmt.Errorf("shape: index %d at position %d is out of range for %d vertices", ix, i, len(verts))
		}
	}
	return nil
}

// VertexBytes returns the raw bytes of the given vertices,
// exactly len(verts)*[VertexSize] long. The result aliases verts.
func VertexBytes(verts []Vertex) []byte {
	if len(verts) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&verts[0])), len(verts)*VertexSize)
}

// IndexBytes returns the raw bytes of the given indexes,
// exactly len(idxs)*[IndexSize] long. The result aliases idxs.
func IndexBytes(idxs []uint32) []byte {
	if len(idxs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&idxs[0])), len(idxs)*IndexSize)
}

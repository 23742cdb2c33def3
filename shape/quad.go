// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/go-gl/mathgl/mgl32"

// QuadIndexes is the number of indexes in a [Quad].
const QuadIndexes = 6

// Quad returns the vertices and triangle indexes of a unit quad
// centered at the origin, covering all of clip space.
// The two triangles share the diagonal from vertex 0 to vertex 2.
// New slices are returned on every call.
func Quad() ([]Vertex, []uint32) {
	verts := []Vertex{
		{Pos: mgl32.Vec3{-1, -1, 0}}, // bottom-left
		{Pos: mgl32.Vec3{1, -1, 0}},  // bottom-right
		{Pos: mgl32.Vec3{1, 1, 0}},   // top-right
		{Pos: mgl32.Vec3{-1, 1, 0}},  // top-left
	}
	idxs := []uint32{
		0, 1, 2,
		3, 0, 2,
	}
	return verts, idxs
}

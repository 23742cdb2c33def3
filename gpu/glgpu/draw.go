// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawing provides commonly-used GPU drawing functions
// All operate on the current context with current program, target, etc
type Drawing struct{}

// SetClearColor sets the color used by Clear.
func (dr *Drawing) SetClearColor(clr mgl32.Vec4) {
	gl.ClearColor(clr[0], clr[1], clr[2], clr[3])
}

// Clear clears the given properties of the current render target
func (dr *Drawing) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// DepthTest turns on / off depth testing
func (dr *Drawing) DepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Viewport sets the render viewport to the given size in pixels.
func (dr *Drawing) Viewport(size image.Point) {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// TrianglesIndexed uses all existing settings to draw Triangles
// Indexed, from the element buffer of the active mesh.
func (dr *Drawing) TrianglesIndexed(count int) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, 0)
}

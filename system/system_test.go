// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"testing"

	"cogentcore.org/glquad/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, "gl", o.Title)
	assert.Equal(t, image.Point{1600, 900}, o.Size)
	assert.Equal(t, 4, o.GLMajor)
	assert.Equal(t, 5, o.GLMinor)
	assert.True(t, o.Debug)
	assert.Equal(t, 1, o.SwapInterval)
	assert.NoError(t, o.Validate())
}

func TestOptionsValidate(t *testing.T) {
	o := DefaultOptions()
	o.Size = image.Point{0, 900}
	assert.ErrorContains(t, o.Validate(), "invalid window size")

	o = DefaultOptions()
	o.GLMajor, o.GLMinor = 4, 1
	assert.ErrorContains(t, o.Validate(), "below the 4.3")

	o = DefaultOptions()
	o.GLMajor, o.GLMinor = 4, 3
	assert.NoError(t, o.Validate())

	o = DefaultOptions()
	o.SwapInterval = -1
	assert.Error(t, o.Validate())
}

func TestGlfwKey(t *testing.T) {
	assert.Equal(t, glfw.KeyEscape, GlfwKey(key.CodeEscape))
	assert.Equal(t, glfw.KeyA, GlfwKey(key.CodeA))
	assert.Equal(t, glfw.KeyQ, GlfwKey(key.CodeQ))
	assert.Equal(t, glfw.KeyZ, GlfwKey(key.CodeZ))
	assert.Equal(t, glfw.Key1, GlfwKey(key.Code1))
	assert.Equal(t, glfw.Key9, GlfwKey(key.Code9))
	assert.Equal(t, glfw.Key0, GlfwKey(key.Code0))
	assert.Equal(t, glfw.KeyF1, GlfwKey(key.CodeF1))
	assert.Equal(t, glfw.KeyF12, GlfwKey(key.CodeF12))
	assert.Equal(t, glfw.KeySpace, GlfwKey(key.CodeSpacebar))
	assert.Equal(t, glfw.KeyUp, GlfwKey(key.CodeUpArrow))
	assert.Equal(t, glfw.KeyUnknown, GlfwKey(key.CodeUnknown))
}

func TestStates(t *testing.T) {
	assert.Equal(t, "Uninitialized", Uninitialized.String())
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Terminated", Terminated.String())

	// a window that was never created acts closed and ignores calls
	w := &Window{}
	assert.Equal(t, Uninitialized, w.State())
	assert.True(t, w.ShouldClose())
	assert.False(t, w.KeyPressed(key.CodeEscape))
	assert.Equal(t, image.Point{}, w.FramebufferSize())
	assert.Zero(t, w.Time())
	assert.NotPanics(t, func() {
		w.SetShouldClose(true)
		w.SwapBuffers()
		w.PollEvents()
		w.Destroy()
	})
	assert.Equal(t, Uninitialized, w.State())

	w.state = Terminated
	assert.Zero(t, w.Time())
	assert.True(t, w.ShouldClose())
}

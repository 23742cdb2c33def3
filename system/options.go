// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
)

// MinGLMajor and MinGLMinor are the lowest OpenGL version that provides
// every function glquad loads, including debug output.
const (
	MinGLMajor = 4
	MinGLMinor = 3
)

// Options are the parameters for creating a new [Window].
type Options struct {

	// Title is the window title.
	Title string

	// Size is the window size in screen coordinates.
	Size image.Point

	// GLMajor and GLMinor are the requested OpenGL core profile version.
	GLMajor, GLMinor int

	// Debug requests a debug context, which enables driver debug messages.
	Debug bool

	// SwapInterval is the number of screen refreshes to wait for
	// before swapping buffers: 1 is vsync, 0 is unpaced.
	SwapInterval int

	// Hidden creates the window without showing it, for offscreen use.
	Hidden bool
}

// DefaultOptions returns the default window options:
// a 1600x900 window titled "gl" with an OpenGL 4.5 core debug context
// and vsync.
func DefaultOptions() *Options {
	return &Options{
		Title:        "gl",
		Size:         image.Point{1600, 900},
		GLMajor:      4,
		GLMinor:      5,
		Debug:        true,
		SwapInterval: 1,
	}
}

// Validate returns an error if the options cannot produce a window.
func (o *Options) Validate() error {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		return fmt.Errorf("system.Options: invalid window size %v", o.Size)
	}
	if o.GLMajor < MinGLMajor || (o.GLMajor == MinGLMajor && o.GLMinor < MinGLMinor) {
		return fmt.Errorf("system.Options: OpenGL %d.%d is below the %d.%d core profile minimum", o.GLMajor, o.GLMinor, MinGLMajor, MinGLMinor)
	}
	if o.SwapInterval < 0 {
		return fmt.Errorf("system.Options: negative swap interval %d", o.SwapInterval)
	}
	return nil
}

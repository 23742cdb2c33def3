// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system manages the window and OpenGL context through glfw.
// IMPORTANT: everything here must be called on the main thread,
// which must be locked with runtime.LockOSThread in an init function.
package system

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/glquad/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the single window and its OpenGL context.
// It moves through [States] from Uninitialized to Running on
// [NewWindow], and to Terminated on [Window.Destroy].
type Window struct {
	glw      *glfw.Window
	state    States
	onResize []func(size image.Point)
}

// logError logs a glfw error and returns it wrapped for the caller.
func logError(op string, err error) error {
	slog.Error("GLFW Error", "op", op, "err", err)
	return fmt.Errorf("system: %s: %w", op, err)
}

// catchError converts a glfw panic, which glfw raises for errors in
// calls that do not return one, into a logged error.
func catchError(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	gerr, ok := r.(error)
	if !ok {
		panic(r)
	}
	*err = logError(op, gerr)
}

// NewWindow initializes glfw, creates the window with the given options,
// makes its OpenGL context current and installs the resize and close
// callbacks. Any failure terminates glfw again and is returned.
func NewWindow(opts *Options) (w *Window, err error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, logError("Init", err)
	}
	defer func() {
		if err != nil {
			glfw.Terminate()
			w = nil
		}
	}()
	defer catchError("NewWindow", &err)

	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, logError("CreateWindow", err)
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	w = &Window{glw: glw, state: Running}
	glw.SetFramebufferSizeCallback(w.fbResized)
	glw.SetCloseCallback(w.closeReq)
	slog.Info("created window", "title", opts.Title, "size", opts.Size, "gl", fmt.Sprintf("%d.%d", opts.GLMajor, opts.GLMinor))
	return w, nil
}

// State returns the current lifecycle state.
func (w *Window) State() States {
	return w.state
}

// OnResize adds a function called with the new framebuffer
// size in pixels whenever the framebuffer is resized.
// It is called from [Window.PollEvents].
func (w *Window) OnResize(fun func(size image.Point)) {
	w.onResize = append(w.onResize, fun)
}

func (w *Window) fbResized(glw *glfw.Window, width, height int) {
	sz := image.Point{width, height}
	slog.Debug("framebuffer resized", "size", sz)
	for _, fun := range w.onResize {
		fun(sz)
	}
}

func (w *Window) closeReq(glw *glfw.Window) {
	slog.Debug("window close requested")
}

// ShouldClose returns whether the window should close,
// from a close request or [Window.SetShouldClose].
// It is always true once the window is not Running.
func (w *Window) ShouldClose() bool {
	if w.state != Running {
		return true
	}
	return w.glw.ShouldClose()
}

// SetShouldClose sets the should-close flag.
func (w *Window) SetShouldClose(close bool) {
	if w.state != Running {
		return
	}
	w.glw.SetShouldClose(close)
}

// FramebufferSize returns the current framebuffer size in pixels.
func (w *Window) FramebufferSize() image.Point {
	if w.state != Running {
		return image.Point{}
	}
	width, height := w.glw.GetFramebufferSize()
	return image.Point{width, height}
}

// Time returns the seconds elapsed since glfw was initialized,
// from the monotonic glfw timer. It is 0 when the window is not Running.
func (w *Window) Time() float64 {
	if w.state != Running {
		return 0
	}
	return glfw.GetTime()
}

// KeyPressed returns whether the given key is currently pressed.
func (w *Window) KeyPressed(code key.Codes) bool {
	if w.state != Running {
		return false
	}
	gk := GlfwKey(code)
	if gk == glfw.KeyUnknown {
		return false
	}
	return w.glw.GetKey(gk) == glfw.Press
}

// SwapBuffers presents the rendered frame, waiting
// for vertical sync if the swap interval is non-zero.
func (w *Window) SwapBuffers() {
	if w.state != Running {
		return
	}
	w.glw.SwapBuffers()
}

// PollEvents processes pending window events, calling the
// resize and close callbacks and updating input state.
func (w *Window) PollEvents() {
	if w.state != Running {
		return
	}
	glfw.PollEvents()
}

// Destroy destroys the window and shuts down glfw.
// It only has an effect once, when Running.
func (w *Window) Destroy() {
	if w.state != Running {
		return
	}
	w.glw.Destroy()
	glfw.Terminate()
	w.state = Terminated
	slog.Debug("window destroyed")
}

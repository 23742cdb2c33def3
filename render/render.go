// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render runs the frame loop: each frame it clears the
// framebuffer, draws the full-viewport quad with the shader program
// and its per-frame uniforms, and presents the result.
package render

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/glquad/base/errors"
	"cogentcore.org/glquad/config"
	"cogentcore.org/glquad/events/key"
	"cogentcore.org/glquad/gpu"
	"cogentcore.org/glquad/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// Names of the shader inputs set by the renderer.
const (
	// PosAttrib is the vertex position input attribute.
	PosAttrib = "a_pos"

	// TimeUniform is the float uniform with elapsed seconds.
	TimeUniform = "u_time"

	// ResolutionUniform is the vec2 uniform with the framebuffer size in pixels.
	ResolutionUniform = "u_resolution"
)

// Window is the part of [system.Window] used by the renderer.
type Window interface {
	ShouldClose() bool
	SetShouldClose(close bool)
	FramebufferSize() image.Point
	Time() float64
	KeyPressed(code key.Codes) bool
	SwapBuffers()
	PollEvents()
	OnResize(fun func(size image.Point))
}

// Watcher reports whether the shader sources have changed
// since it was last asked. See [shaderwatch.Watcher].
type Watcher interface {
	Changed() bool
}

// FrameUniforms are the uniform values for one frame.
type FrameUniforms struct {

	// Time is the elapsed time in seconds since the first frame.
	// It never decreases.
	Time float32

	// Resolution is the framebuffer size in pixels.
	Resolution mgl32.Vec2
}

// Renderer owns the shader program and quad mesh for one run,
// and draws them into its window each [Renderer.Frame].
type Renderer struct {

	// Config has the settings the renderer was made with.
	Config *config.Config

	// Window is the window drawn into. It is owned by the caller.
	Window Window

	// GPU makes the program and mesh.
	GPU gpu.GPU

	// Program is the current shader program. It may be inert
	// if Config.Strict is off and it failed to build.
	Program gpu.Program

	// Mesh is the quad geometry bound to Program.
	Mesh gpu.Mesh

	// Watcher, if set, is polled at the start of every frame,
	// and the program is reloaded when it reports a change.
	Watcher Watcher

	// Frames is the number of frames rendered so far.
	Frames int

	exitKey  key.Codes
	draw     gpu.Drawing
	started  bool
	start    float64
	last     FrameUniforms
	fpsStart float32
	fpsCount int
	released bool
}

// New returns a new renderer for the given config, window and GPU.
// It builds the shader program from the configured files and uploads
// the quad. Shader and attribute failures are logged, and returned
// only if Config.Strict is on; otherwise the renderer keeps running
// with the failed program, which draws nothing.
func New(cfg *config.Config, win Window, gp gpu.GPU) (*Renderer, error) {
	exitKey, err := cfg.ExitCode()
	if err != nil {
		return nil, err
	}
	r := &Renderer{Config: cfg, Window: win, GPU: gp, exitKey: exitKey}
	pr, ms, err := r.build()
	if err != nil {
		slog.Error("shader program", "err", err)
		if cfg.Strict {
			pr.Delete()
			ms.Delete()
			return nil, err
		}
		slog.Warn("running without a working shader program", "vertex", cfg.Vertex, "fragment", cfg.Fragment)
	}
	r.Program, r.Mesh = pr, ms

	r.draw = gp.Drawing()
	r.draw.SetClearColor(cfg.Clear())
	r.draw.DepthTest(cfg.DepthTest)
	r.draw.Viewport(win.FramebufferSize())
	win.OnResize(func(size image.Point) {
		r.draw.Viewport(size)
	})
	return r, nil
}

// build makes a new program from the configured files and a quad
// mesh bound to it. Both are always non-nil.
func (r *Renderer) build() (gpu.Program, gpu.Mesh, error) {
	pr, err := gpu.OpenProgram(r.GPU, "quad", r.Config.Vertex, r.Config.Fragment)
	verts, idxs := shape.Quad()
	ms := r.GPU.NewMesh("quad")
	if merr := ms.Upload(pr, PosAttrib, verts, idxs); merr != nil {
		err = errors.Join(err, merr)
	}
	return pr, ms, err
}

// Reload rebuilds the program and mesh from the shader files. On any
// failure the new ones are discarded, the current ones are kept,
// and the error is returned.
func (r *Renderer) Reload() error {
	pr, ms, err := r.build()
	if err != nil {
		pr.Delete()
		ms.Delete()
		return fmt.Errorf("render: reload kept the previous program: %w", err)
	}
	r.Program.Delete()
	r.Mesh.Delete()
	r.Program, r.Mesh = pr, ms
	slog.Info("reloaded shaders", "vertex", r.Config.Vertex, "fragment", r.Config.Fragment)
	return nil
}

// Uniforms returns the uniform values for the current frame from the
// window timer and framebuffer size.
func (r *Renderer) Uniforms() FrameUniforms {
	now := r.Window.Time()
	if !r.started {
		r.started = true
		r.start = now
	}
	el := float32(now - r.start)
	if el < r.last.Time {
		el = r.last.Time
	}
	sz := r.Window.FramebufferSize()
	r.last = FrameUniforms{Time: el, Resolution: mgl32.Vec2{float32(sz.X), float32(sz.Y)}}
	return r.last
}

// Frame renders and presents one frame.
func (r *Renderer) Frame() {
	if r.Watcher != nil && r.Watcher.Changed() {
		errors.Log(r.Reload())
	}
	r.draw.Clear(true, true)
	r.Program.Activate()
	u := r.Uniforms()
	r.Program.SetUniform1f(TimeUniform, u.Time)
	r.Program.SetUniform2f(ResolutionUniform, u.Resolution)
	r.Mesh.Activate()
	r.draw.TrianglesIndexed(r.Mesh.NIndexes())
	if r.Window.KeyPressed(r.exitKey) {
		slog.Debug("exit key pressed", "key", r.exitKey)
		r.Window.SetShouldClose(true)
	}
	r.Window.SwapBuffers()
	r.Window.PollEvents()
	r.Frames++
	r.countFPS()
}

// countFPS logs the average frame rate at debug level every
// Config.FPSInterval seconds. Each report covers the frame intervals
// since the frame that opened its window.
func (r *Renderer) countFPS() {
	if r.Config.FPSInterval <= 0 {
		return
	}
	now := r.last.Time
	if r.Frames == 1 {
		r.fpsStart = now
		r.fpsCount = 0
		return
	}
	r.fpsCount++
	dt := float64(now - r.fpsStart)
	if dt < r.Config.FPSInterval {
		return
	}
	slog.Debug("frame rate", "fps", float64(r.fpsCount)/dt, "frames", r.fpsCount)
	r.fpsStart = now
	r.fpsCount = 0
}

// Run renders frames until the window should close.
func (r *Renderer) Run() error {
	if r.released {
		return errors.New("render: Run after Release")
	}
	slog.Info("render loop started")
	for !r.Window.ShouldClose() {
		r.Frame()
	}
	slog.Info("render loop stopped", "frames", r.Frames)
	return nil
}

// Release deletes the program and mesh. The window must still be
// current, and is destroyed by its owner afterwards.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.Mesh.Delete()
	r.Program.Delete()
}

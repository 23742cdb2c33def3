// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a recording implementation of the gpu
// interfaces, for testing code that drives the GPU without a
// graphics context.
package gputest

import (
	"fmt"
	"image"

	"cogentcore.org/glquad/base/errors"
	"cogentcore.org/glquad/gpu"
	"cogentcore.org/glquad/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// GPU is a [gpu.GPU] that records every operation in [GPU.Log].
type GPU struct {
	// Log has one entry per operation, in call order.
	Log []string

	// Programs and Meshes are all the resources created, in order.
	Programs []*Program
	Meshes   []*Mesh

	Draw Drawing

	// CompileError, if set, decides the result of Program.Compile.
	// By default an empty stage source fails to compile.
	CompileError func(vertSrc, fragSrc string) error

	// Attribs are the active vertex inputs of compiled programs,
	// with their locations. Nil means "a_pos" at location 0.
	Attribs map[string]uint32

	// Uniforms are the active uniforms of compiled programs.
	// Nil means every uniform is active.
	Uniforms map[string]bool
}

// New returns a new recording GPU.
func New() *GPU {
	g := &GPU{}
	g.Draw.gpu = g
	return g
}

func (g *GPU) logf(format string, args ...any) {
	g.Log = append(g.Log, fmt.Sprintf(format, args...))
}

// Reset clears the operation log.
func (g *GPU) Reset() {
	g.Log = nil
}

// Count returns the number of log entries equal to op.
func (g *GPU) Count(op string) int {
	n := 0
	for _, l := range g.Log {
		if l == op {
			n++
		}
	}
	return n
}

func (g *GPU) NewProgram(name string) gpu.Program {
	pr := &Program{gpu: g, name: name}
	g.Programs = append(g.Programs, pr)
	return pr
}

func (g *GPU) NewMesh(name string) gpu.Mesh {
	ms := &Mesh{gpu: g, name: name}
	g.Meshes = append(g.Meshes, ms)
	return ms
}

func (g *GPU) Drawing() gpu.Drawing {
	return &g.Draw
}

// Program is a recording [gpu.Program].
type Program struct {
	gpu  *GPU
	name string

	VertSrc, FragSrc string
	Compiled         bool
	Linked           bool
	Deleted          bool

	// Uniforms1f and Uniforms2f have every value set, by uniform name.
	Uniforms1f map[string][]float32
	Uniforms2f map[string][]mgl32.Vec2
}

func (pr *Program) Name() string { return pr.name }

func (pr *Program) Compile(vertSrc, fragSrc string) error {
	pr.VertSrc, pr.FragSrc = vertSrc, fragSrc
	pr.Compiled = true
	pr.gpu.logf("compile %s", pr.name)
	var err error
	if pr.gpu.CompileError != nil {
		err = pr.gpu.CompileError(vertSrc, fragSrc)
	} else {
		if vertSrc == "" {
			err = errors.Join(err, fmt.Errorf("%s: empty source", gpu.VertexShader))
		}
		if fragSrc == "" {
			err = errors.Join(err, fmt.Errorf("%s: empty source", gpu.FragmentShader))
		}
	}
	pr.Linked = err == nil
	return err
}

func (pr *Program) Handle() uint32 {
	for i, p := range pr.gpu.Programs {
		if p == pr {
			return uint32(i + 1)
		}
	}
	return 0
}

func (pr *Program) Activate() {
	pr.gpu.logf("use %s", pr.name)
}

func (pr *Program) AttribLocation(name string) (uint32, bool) {
	if !pr.Linked {
		return 0, false
	}
	if pr.gpu.Attribs == nil {
		return 0, name == "a_pos"
	}
	loc, ok := pr.gpu.Attribs[name]
	return loc, ok
}

func (pr *Program) active(name string) bool {
	if !pr.Linked {
		return false
	}
	return pr.gpu.Uniforms == nil || pr.gpu.Uniforms[name]
}

func (pr *Program) SetUniform1f(name string, v float32) bool {
	if !pr.active(name) {
		return false
	}
	if pr.Uniforms1f == nil {
		pr.Uniforms1f = map[string][]float32{}
	}
	pr.Uniforms1f[name] = append(pr.Uniforms1f[name], v)
	pr.gpu.logf("uniform %s", name)
	return true
}

func (pr *Program) SetUniform2f(name string, v mgl32.Vec2) bool {
	if !pr.active(name) {
		return false
	}
	if pr.Uniforms2f == nil {
		pr.Uniforms2f = map[string][]mgl32.Vec2{}
	}
	pr.Uniforms2f[name] = append(pr.Uniforms2f[name], v)
	pr.gpu.logf("uniform %s", name)
	return true
}

func (pr *Program) Delete() {
	pr.Deleted = true
	pr.gpu.logf("delete program %s", pr.name)
}

// Mesh is a recording [gpu.Mesh]. The uploaded data is
// copied as the exact bytes a GPU buffer would receive.
type Mesh struct {
	gpu  *GPU
	name string

	VertexData []byte
	IndexData  []byte
	Attrib     string
	AttribLoc  uint32
	Bound      bool
	nidx       int
	Deleted    bool
}

func (ms *Mesh) Name() string { return ms.name }

func (ms *Mesh) Upload(prog gpu.Program, attrib string, verts []shape.Vertex, idxs []uint32) error {
	if err := shape.Validate(verts, idxs); err != nil {
		return err
	}
	ms.VertexData = append([]byte(nil), shape.VertexBytes(verts)...)
	ms.IndexData = append([]byte(nil), shape.IndexBytes(idxs)...)
	ms.nidx = len(idxs)
	ms.Attrib = attrib
	ms.gpu.logf("upload %s", ms.name)
	loc, ok := prog.AttribLocation(attrib)
	if !ok {
		return fmt.Errorf("mesh %s: %q: %w", ms.name, attrib, gpu.ErrNoAttrib)
	}
	ms.AttribLoc = loc
	ms.Bound = true
	return nil
}

func (ms *Mesh) NIndexes() int { return ms.nidx }

func (ms *Mesh) Activate() {
	ms.gpu.logf("bind %s", ms.name)
}

func (ms *Mesh) Delete() {
	ms.Deleted = true
	ms.gpu.logf("delete mesh %s", ms.name)
}

// Drawing is a recording [gpu.Drawing].
type Drawing struct {
	gpu *GPU

	ClearColor mgl32.Vec4
	DepthOn    bool
	Viewports  []image.Point

	// Draws has the index count of every draw call.
	Draws []int
}

func (dr *Drawing) SetClearColor(clr mgl32.Vec4) {
	dr.ClearColor = clr
}

func (dr *Drawing) Clear(color, depth bool) {
	dr.gpu.logf("clear %v %v", color, depth)
}

func (dr *Drawing) DepthTest(on bool) {
	dr.DepthOn = on
}

func (dr *Drawing) Viewport(size image.Point) {
	dr.Viewports = append(dr.Viewports, size)
	dr.gpu.logf("viewport %dx%d", size.X, size.Y)
}

func (dr *Drawing) TrianglesIndexed(count int) {
	dr.Draws = append(dr.Draws, count)
	dr.gpu.logf("draw triangles %d", count)
}

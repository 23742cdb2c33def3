// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/glquad/base/errors"
	"cogentcore.org/glquad/gpu"
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex + fragment shader program.
// Uniform locations are looked up on first use and
// cached until the program is compiled again.
// A program that failed to link is inert: it is never made
// current, and has no attributes or uniforms.
type Program struct {
	init   bool
	linked bool
	handle uint32
	name   string
	unis   map[string]int32
}

// Name returns name of program
func (pr *Program) Name() string {
	return pr.name
}

// Compile compiles both shader stages and links the program.
// The stage shaders are detached and deleted right after linking,
// whether or not it succeeded. A previously compiled program is deleted.
func (pr *Program) Compile(vertSrc, fragSrc string) error {
	pr.Delete()

	var errs []error
	shaders := []*shader{{typ: gpu.VertexShader}, {typ: gpu.FragmentShader}}
	srcs := []string{vertSrc, fragSrc}

	handle := gl.CreateProgram()
	for i, sh := range shaders {
		if err := sh.compile(srcs[i]); err != nil {
			errs = append(errs, err)
		}
		gl.AttachShader(handle, sh.handle)
	}
	gl.LinkProgram(handle)

	for _, sh := range shaders {
		gl.DetachShader(handle, sh.handle)
		sh.delete()
	}

	pr.handle = handle
	pr.init = true
	pr.unis = make(map[string]int32)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))

		err := fmt.Errorf("glgpu Program %s: failed to link program: %s", pr.name, goString(lg))
		slog.Error(err.Error())
		errs = append(errs, err)
	} else {
		pr.linked = true
	}
	return errors.Join(errs...)
}

// Handle returns the handle for the program -- only valid after a Compile call
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Activate activates this as the active program -- must have been Compiled first.
func (pr *Program) Activate() {
	if !pr.linked {
		return
	}
	gl.UseProgram(pr.handle)
}

// AttribLocation returns the location of the named vertex input.
func (pr *Program) AttribLocation(name string) (uint32, bool) {
	if !pr.linked {
		return 0, false
	}
	loc := gl.GetAttribLocation(pr.handle, gl.Str(cString(name)))
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

// uniformLocation returns the cached location of the named
// uniform, which is negative if it is not active.
func (pr *Program) uniformLocation(name string) int32 {
	if !pr.linked {
		return -1
	}
	loc, ok := pr.unis[name]
	if !ok {
		loc = gl.GetUniformLocation(pr.handle, gl.Str(cString(name)))
		pr.unis[name] = loc
	}
	return loc
}

// SetUniform1f sets a float uniform on the active program.
func (pr *Program) SetUniform1f(name string, v float32) bool {
	loc := pr.uniformLocation(name)
	if loc < 0 {
		return false
	}
	gl.Uniform1f(loc, v)
	return true
}

// SetUniform2f sets a vec2 uniform on the active program.
func (pr *Program) SetUniform2f(name string, v mgl32.Vec2) bool {
	loc := pr.uniformLocation(name)
	if loc < 0 {
		return false
	}
	gl.Uniform2f(loc, v[0], v[1])
	return true
}

// Delete deletes the GPU resources associated with this program
// (requires Compile to re-establish a new one).
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
	pr.linked = false
	pr.unis = nil
}

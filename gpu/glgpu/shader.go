// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/glquad/gpu"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// shader is a single compiled shader stage, only
// alive between compiling and linking a program.
type shader struct {
	init   bool
	handle uint32
	typ    gpu.ShaderTypes
}

// compile creates the shader object and compiles the given source.
// The shader object is kept even if compilation fails, so that it
// can be attached and released by the program in the same way;
// the error has the driver info log.
func (sh *shader) compile(src string) error {
	sh.handle = gl.CreateShader(glShaders[sh.typ])
	sh.init = true

	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(sh.handle, 1, csources, nil)
	free()
	gl.CompileShader(sh.handle)

	var status int32
	gl.GetShaderiv(sh.handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh.handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh.handle, logLength, nil, gl.Str(msg))

		err := fmt.Errorf("%s failed to compile: %s", sh.typ, goString(msg))
		slog.Error("glgpu compile shader", "err", err)
		return err
	}
	return nil
}

// delete releases the shader object.
func (sh *shader) delete() {
	if !sh.init {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

// cString returns the string with a null terminator, as GL requires.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString returns the string up to its first null terminator,
// trimmed of trailing white space.
func goString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

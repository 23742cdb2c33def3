// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the gpu interfaces on OpenGL 4.3+ core,
// using github.com/go-gl/gl. A context must be current on the
// calling thread, which must stay the same for all calls.
package glgpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glquad/gpu"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// GPU is the OpenGL implementation of [gpu.GPU].
type GPU struct {
	draw Drawing

	// Version is the OpenGL version string reported by the driver.
	Version string

	// Renderer is the renderer string reported by the driver.
	Renderer string
}

// NewGPU loads the OpenGL function entry points for the current context.
// If debug is set, driver debug messages are logged through [DebugMessage].
func NewGPU(debug bool) (*GPU, error) {
	if err := gl.Init(); err != nil {
		err = fmt.Errorf("glgpu: loading OpenGL functions: %w", err)
		slog.Error(err.Error())
		return nil, err
	}
	gp := &GPU{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	slog.Info("OpenGL", "version", gp.Version, "renderer", gp.Renderer)
	if debug {
		EnableDebug()
	}
	return gp, nil
}

func (gp *GPU) NewProgram(name string) gpu.Program {
	return &Program{name: name}
}

func (gp *GPU) NewMesh(name string) gpu.Mesh {
	return &Mesh{name: name}
}

func (gp *GPU) Drawing() gpu.Drawing {
	return &gp.draw
}

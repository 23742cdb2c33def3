// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glquad opens an OpenGL window and draws a full-window quad
// with the vertex and fragment shaders in shader.vert and shader.frag,
// setting the u_time and u_resolution uniforms every frame.
// Settings are read from glquad.toml if it exists, and from flags.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/glquad/base/errors"
	"cogentcore.org/glquad/base/logx"
	"cogentcore.org/glquad/config"
	"cogentcore.org/glquad/gpu/glgpu"
	"cogentcore.org/glquad/render"
	"cogentcore.org/glquad/shaderwatch"
	"cogentcore.org/glquad/system"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for glfw and gl!
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run runs glquad with the given arguments and returns the exit code:
// 0 on a normal exit or after --save-config, 1 if the window, OpenGL or (in strict mode) the
// shaders failed, and 2 for bad arguments or configuration.
func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "glquad:", err)
		return 2
	}
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	logx.SetDefaultLogger()

	if cfg.SaveConfig != "" {
		if errors.Log(cfg.Save(cfg.SaveConfig)) != nil {
			return 1
		}
		slog.Info("saved config", "file", cfg.SaveConfig)
		return 0
	}

	win, err := system.NewWindow(cfg.WindowOptions())
	if err != nil {
		slog.Error("glquad: could not open window", "err", err)
		return 1
	}
	defer win.Destroy()

	gp, err := glgpu.NewGPU(cfg.Debug)
	if err != nil {
		return 1
	}
	r, err := render.New(cfg, win, gp)
	if err != nil {
		slog.Error("glquad: could not build the shader program", "err", err)
		return 1
	}
	defer r.Release()

	if cfg.Watch {
		w, err := shaderwatch.New(cfg.Vertex, cfg.Fragment)
		if errors.Warn(err) == nil {
			defer func() { errors.Log(w.Close()) }()
			r.Watcher = w
		}
	}
	if errors.Log(r.Run()) != nil {
		return 1
	}
	return 0
}

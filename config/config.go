// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the glquad harness, which is set from
// compiled defaults, a TOML config file, and
// command line flags, in that order.
package config

import (
	"fmt"
	"image"
	"io/fs"

	"cogentcore.org/glquad/base/errors"
	"cogentcore.org/glquad/base/fsx"
	"cogentcore.org/glquad/base/iox/tomlx"
	"cogentcore.org/glquad/events/key"
	"cogentcore.org/glquad/system"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
)

// DefaultFile is the config file that is used if it exists
// and no other file is given with --config.
const DefaultFile = "glquad.toml"

// Config is the main config struct that contains
// all of the configuration options for glquad.
type Config struct {

	// a config file to load after [DefaultFile]; only settable by flag
	ConfigFile string `toml:"-"`

	// save the resulting config to this file and exit; only settable by flag
	SaveConfig string `toml:"-"`

	// the window title
	Title string

	// the window width in screen coordinates
	Width int

	// the window height in screen coordinates
	Height int

	// the requested OpenGL core profile major version
	GLMajor int

	// the requested OpenGL core profile minor version
	GLMinor int

	// whether to request a debug context and log driver debug messages
	Debug bool

	// the number of screen refreshes to wait before each buffer swap: 1 is vsync
	SwapInterval int

	// the RGBA color the framebuffer is cleared to each frame
	ClearColor [4]float32

	// whether to enable depth testing
	DepthTest bool

	// the name of the key that closes the window, such as "escape" or "q"
	ExitKey string

	// the path of the vertex shader source file
	Vertex string

	// the path of the fragment shader source file
	Fragment string

	// whether shader read, compile and link failures stop the program,
	// rather than being logged while running with an inert program
	Strict bool

	// whether to recompile the shaders when their files change
	Watch bool

	// the interval in seconds between frame rate reports at debug level; 0 is off
	FPSInterval float64

	// show informational log messages; only settable by flag
	Verbose bool `toml:"-"`

	// show debug log messages; only settable by flag
	VeryVerbose bool `toml:"-"`

	// only show error log messages; only settable by flag
	Quiet bool `toml:"-"`
}

// Default returns a new Config with the compiled default values.
func Default() *Config {
	wo := system.DefaultOptions()
	return &Config{
		Title:        wo.Title,
		Width:        wo.Size.X,
		Height:       wo.Size.Y,
		GLMajor:      wo.GLMajor,
		GLMinor:      wo.GLMinor,
		Debug:        wo.Debug,
		SwapInterval: wo.SwapInterval,
		ClearColor:   [4]float32{0.3, 0.3, 0.3, 1},
		DepthTest:    true,
		ExitKey:      "escape",
		Vertex:       "shader.vert",
		Fragment:     "shader.frag",
		Strict:       true,
		FPSInterval:  10,
	}
}

// FlagSet returns a new flag set that sets the fields of c,
// with the current values of c as the flag defaults.
func (c *Config) FlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("glquad", pflag.ContinueOnError)
	flags.StringVar(&c.ConfigFile, "config", c.ConfigFile, "a config file to load after "+DefaultFile)
	flags.StringVar(&c.SaveConfig, "save-config", c.SaveConfig, "save the resulting config to this file and exit")
	flags.StringVar(&c.Title, "title", c.Title, "the window title")
	flags.IntVar(&c.Width, "width", c.Width, "the window width")
	flags.IntVar(&c.Height, "height", c.Height, "the window height")
	flags.IntVar(&c.GLMajor, "gl-major", c.GLMajor, "the OpenGL core profile major version")
	flags.IntVar(&c.GLMinor, "gl-minor", c.GLMinor, "the OpenGL core profile minor version")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "request a debug context and log driver debug messages")
	flags.IntVar(&c.SwapInterval, "swap-interval", c.SwapInterval, "screen refreshes to wait before each buffer swap")
	flags.BoolVar(&c.DepthTest, "depth-test", c.DepthTest, "enable depth testing")
	flags.StringVar(&c.ExitKey, "exit-key", c.ExitKey, "the key that closes the window")
	flags.StringVar(&c.Vertex, "vert", c.Vertex, "the vertex shader source file")
	flags.StringVar(&c.Fragment, "frag", c.Fragment, "the fragment shader source file")
	flags.BoolVar(&c.Strict, "strict", c.Strict, "stop on shader failures instead of running with an inert program")
	flags.BoolVar(&c.Watch, "watch", c.Watch, "recompile the shaders when their files change")
	flags.Float64Var(&c.FPSInterval, "fps-interval", c.FPSInterval, "seconds between frame rate reports at debug level; 0 is off")
	flags.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "show informational log messages")
	flags.BoolVar(&c.VeryVerbose, "vv", c.VeryVerbose, "show debug log messages")
	flags.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "only show error log messages")
	return flags
}

// Load returns the config from the compiled defaults, overridden by
// [DefaultFile] if it exists, overridden by the --config file if given,
// overridden by the given command line arguments. A missing --config
// file is an error. The result is validated.
func Load(args []string) (*Config, error) {
	c := Default()
	flags := c.FlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected arguments %v", flags.Args())
	}
	files, err := c.files()
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		c = Default()
		if err := tomlx.OpenFiles(c, files...); err != nil {
			return nil, err
		}
		if err := c.FlagSet().Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// files returns the config files to load, in order.
func (c *Config) files() ([]string, error) {
	var files []string
	exists, err := fsx.FileExists(DefaultFile)
	if err != nil {
		return nil, err
	}
	if exists {
		files = append(files, DefaultFile)
	}
	if c.ConfigFile == "" {
		return files, nil
	}
	exists, err = fsx.FileExists(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("config: %q: %w", c.ConfigFile, fs.ErrNotExist)
	}
	if c.ConfigFile != DefaultFile {
		files = append(files, c.ConfigFile)
	}
	return files, nil
}

// Save saves the config to the given TOML file. Settings that
// are only settable by flag are not saved.
func (c *Config) Save(filename string) error {
	return tomlx.Save(c, filename)
}

// Validate returns an error for any setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if err := c.WindowOptions().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ExitCode(); err != nil {
		errs = append(errs, err)
	}
	if c.Vertex == "" {
		errs = append(errs, errors.New("config: no vertex shader file"))
	}
	if c.Fragment == "" {
		errs = append(errs, errors.New("config: no fragment shader file"))
	}
	if c.FPSInterval < 0 {
		errs = append(errs, fmt.Errorf("config: negative FPSInterval %g", c.FPSInterval))
	}
	return errors.Join(errs...)
}

// WindowOptions returns the window options for this config.
func (c *Config) WindowOptions() *system.Options {
	return &system.Options{
		Title:        c.Title,
		Size:         image.Point{c.Width, c.Height},
		GLMajor:      c.GLMajor,
		GLMinor:      c.GLMinor,
		Debug:        c.Debug,
		SwapInterval: c.SwapInterval,
	}
}

// ExitCode returns the key code of [Config.ExitKey].
func (c *Config) ExitCode() (key.Codes, error) {
	return key.CodeFromString(c.ExitKey)
}

// Clear returns [Config.ClearColor] as a vector.
func (c *Config) Clear() mgl32.Vec4 {
	return mgl32.Vec4(c.ClearColor)
}

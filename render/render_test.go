// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/glquad/base/logx"
	"cogentcore.org/glquad/config"
	"cogentcore.org/glquad/events/key"
	"cogentcore.org/glquad/gpu"
	"cogentcore.org/glquad/gpu/gputest"
	"cogentcore.org/glquad/shape"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWindow is a [Window] that logs to the GPU log, so that window
// and GPU operations can be checked in one sequence.
type testWindow struct {
	gpu      *gputest.GPU
	size     image.Point
	times    []float64
	now      float64
	close    bool
	pressed  map[key.Codes]bool
	onResize []func(size image.Point)

	// closeAfter closes the window after that many swaps, if > 0.
	closeAfter int
	swaps      int

	// resizeAt resizes to resizeTo when polling after that many swaps.
	resizeAt int
	resizeTo image.Point
}

func (w *testWindow) ShouldClose() bool { return w.close }

func (w *testWindow) SetShouldClose(close bool) {
	w.close = close
	w.gpu.Log = append(w.gpu.Log, "set close")
}

func (w *testWindow) FramebufferSize() image.Point { return w.size }

func (w *testWindow) OnResize(fun func(image.Point)) { w.onResize = append(w.onResize, fun) }

func (w *testWindow) Time() float64 {
	if len(w.times) > 0 {
		w.now = w.times[0]
		w.times = w.times[1:]
	}
	return w.now
}

func (w *testWindow) KeyPressed(code key.Codes) bool {
	w.gpu.Log = append(w.gpu.Log, "key "+code.String())
	return w.pressed[code]
}

func (w *testWindow) SwapBuffers() {
	w.swaps++
	w.gpu.Log = append(w.gpu.Log, "swap")
	if w.closeAfter > 0 && w.swaps >= w.closeAfter {
		w.close = true
	}
}

func (w *testWindow) PollEvents() {
	w.gpu.Log = append(w.gpu.Log, "poll")
	if w.resizeAt > 0 && w.swaps == w.resizeAt {
		w.size = w.resizeTo
		for _, fun := range w.onResize {
			fun(w.size)
		}
	}
}

// writeShaders writes shader files into a temp dir and
// returns a config that uses them.
func writeShaders(t *testing.T, vert, frag string) *config.Config {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Vertex = filepath.Join(dir, "shader.vert")
	cfg.Fragment = filepath.Join(dir, "shader.frag")
	require.NoError(t, os.WriteFile(cfg.Vertex, []byte(vert), 0666))
	require.NoError(t, os.WriteFile(cfg.Fragment, []byte(frag), 0666))
	return cfg
}

func newTest(t *testing.T) (*Renderer, *gputest.GPU, *testWindow) {
	gp := gputest.New()
	win := &testWindow{gpu: gp, size: image.Point{1600, 900}}
	r, err := New(writeShaders(t, "vert", "frag"), win, gp)
	require.NoError(t, err)
	return r, gp, win
}

func TestNew(t *testing.T) {
	r, gp, _ := newTest(t)
	require.Len(t, gp.Programs, 1)
	require.Len(t, gp.Meshes, 1)
	pr, ms := gp.Programs[0], gp.Meshes[0]
	assert.Same(t, pr, r.Program)
	assert.Equal(t, "vert", pr.VertSrc)
	assert.Equal(t, "frag", pr.FragSrc)
	assert.True(t, pr.Linked)

	verts, idxs := shape.Quad()
	assert.Equal(t, shape.VertexBytes(verts), ms.VertexData)
	assert.Equal(t, shape.IndexBytes(idxs), ms.IndexData)
	assert.Equal(t, PosAttrib, ms.Attrib)
	assert.True(t, ms.Bound)

	assert.Equal(t, mgl32.Vec4{0.3, 0.3, 0.3, 1}, gp.Draw.ClearColor)
	assert.True(t, gp.Draw.DepthOn)
	assert.Equal(t, []image.Point{{1600, 900}}, gp.Draw.Viewports)
}

func TestFrameOrder(t *testing.T) {
	r, gp, _ := newTest(t)
	gp.Reset()
	r.Frame()
	assert.Equal(t, []string{
		"clear true true",
		"use quad",
		"uniform u_time",
		"uniform u_resolution",
		"bind quad",
		"draw triangles 6",
		"key Escape",
		"swap",
		"poll",
	}, gp.Log)
	assert.Equal(t, 1, r.Frames)
}

func TestRunDrawsOncePerFrame(t *testing.T) {
	r, gp, win := newTest(t)
	win.closeAfter = 5
	require.NoError(t, r.Run())
	assert.Equal(t, []int{6, 6, 6, 6, 6}, gp.Draw.Draws)
	assert.Equal(t, 5, gp.Count("swap"))
	assert.Equal(t, 5, r.Frames)
}

func TestTimeMonotonic(t *testing.T) {
	r, gp, win := newTest(t)
	win.times = []float64{10, 10.5, 10.25, 11, 12}
	win.closeAfter = 5
	require.NoError(t, r.Run())
	assert.Equal(t, []float32{0, 0.5, 0.5, 1, 2}, gp.Programs[0].Uniforms1f[TimeUniform])
}

func TestFrameRate(t *testing.T) {
	buf := &bytes.Buffer{}
	prevLevel, prevLogger := logx.UserLevel, slog.Default()
	logx.UserLevel = slog.LevelDebug
	slog.SetDefault(logx.NewLogger(buf))
	t.Cleanup(func() {
		logx.UserLevel = prevLevel
		slog.SetDefault(prevLogger)
	})

	r, _, win := newTest(t)
	r.Config.FPSInterval = 10
	win.times = []float64{0, 5, 10, 15, 20}
	win.closeAfter = 5
	require.NoError(t, r.Run())

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `msg="frame rate"`), out)
	assert.Equal(t, 2, strings.Count(out, "fps=0.2 frames=2"), out)

	// no reports when off
	buf.Reset()
	r, _, win = newTest(t)
	r.Config.FPSInterval = 0
	win.times = []float64{0, 50, 100}
	win.closeAfter = 3
	require.NoError(t, r.Run())
	assert.NotContains(t, buf.String(), "frame rate")
}

func TestResolutionFollowsResize(t *testing.T) {
	r, gp, win := newTest(t)
	win.closeAfter = 3
	win.resizeAt = 1
	win.resizeTo = image.Point{800, 600}
	require.NoError(t, r.Run())
	assert.Equal(t, []mgl32.Vec2{{1600, 900}, {800, 600}, {800, 600}}, gp.Programs[0].Uniforms2f[ResolutionUniform])
	assert.Equal(t, []image.Point{{1600, 900}, {800, 600}}, gp.Draw.Viewports)
}

func TestExitKey(t *testing.T) {
	r, gp, win := newTest(t)
	win.pressed = map[key.Codes]bool{key.CodeEscape: true}
	require.NoError(t, r.Run())
	assert.Len(t, gp.Draw.Draws, 1)
	assert.Equal(t, 1, gp.Count("set close"))
	assert.Equal(t, 1, gp.Count("swap"))

	// other keys do nothing
	r, gp, win = newTest(t)
	win.pressed = map[key.Codes]bool{key.CodeQ: true}
	win.closeAfter = 2
	require.NoError(t, r.Run())
	assert.Equal(t, 0, gp.Count("set close"))

	r, gp, win = newTest(t)
	r.Config.ExitKey = "q"
	r, err := New(r.Config, win, gp)
	require.NoError(t, err)
	win.pressed = map[key.Codes]bool{key.CodeQ: true}
	require.NoError(t, r.Run())
	assert.Equal(t, 1, gp.Count("set close"))
}

func TestRelease(t *testing.T) {
	r, gp, _ := newTest(t)
	r.Release()
	r.Release()
	assert.True(t, gp.Programs[0].Deleted)
	assert.True(t, gp.Meshes[0].Deleted)
	assert.Equal(t, 1, gp.Count("delete program quad"))
	assert.Error(t, r.Run())
}

func TestStrict(t *testing.T) {
	gp := gputest.New()
	win := &testWindow{gpu: gp, size: image.Point{100, 100}}
	cfg := writeShaders(t, "vert", "frag")
	cfg.Fragment = filepath.Join(t.TempDir(), "missing.frag")

	_, err := New(cfg, win, gp)
	assert.ErrorContains(t, err, gpu.FragmentShader.String())
	assert.True(t, gp.Programs[0].Deleted)
	assert.True(t, gp.Meshes[0].Deleted)

	gp = gputest.New()
	gp.Attribs = map[string]uint32{"pos": 0}
	cfg = writeShaders(t, "vert", "frag")
	_, err = New(cfg, win, gp)
	assert.ErrorIs(t, err, gpu.ErrNoAttrib)
}

func TestLenient(t *testing.T) {
	gp := gputest.New()
	win := &testWindow{gpu: gp, size: image.Point{100, 100}, closeAfter: 2}
	cfg := writeShaders(t, "vert", "frag")
	cfg.Strict = false
	gp.CompileError = func(vert, frag string) error {
		return fmt.Errorf("0:1: syntax error")
	}
	r, err := New(cfg, win, gp)
	require.NoError(t, err)
	assert.False(t, r.Program.(*gputest.Program).Linked)

	require.NoError(t, r.Run())
	assert.Equal(t, []int{6, 6}, gp.Draw.Draws)
	assert.Equal(t, 0, gp.Count("uniform u_time"))
	assert.Equal(t, 2, gp.Count("swap"))
}

type testWatcher struct {
	changes []bool
}

func (w *testWatcher) Changed() bool {
	if len(w.changes) == 0 {
		return false
	}
	c := w.changes[0]
	w.changes = w.changes[1:]
	return c
}

func TestReload(t *testing.T) {
	r, gp, win := newTest(t)
	r.Watcher = &testWatcher{changes: []bool{false, true, false, true}}
	win.closeAfter = 4

	require.NoError(t, os.WriteFile(r.Config.Vertex, []byte("vert2"), 0666))
	r.Frame()
	r.Frame()
	require.Len(t, gp.Programs, 2)
	assert.True(t, gp.Programs[0].Deleted)
	assert.True(t, gp.Meshes[0].Deleted)
	assert.Same(t, gp.Programs[1], r.Program)
	assert.Equal(t, "vert2", gp.Programs[1].VertSrc)

	// a failed reload keeps the working program
	require.NoError(t, os.WriteFile(r.Config.Vertex, nil, 0666))
	r.Frame()
	r.Frame()
	require.Len(t, gp.Programs, 3)
	assert.True(t, gp.Programs[2].Deleted)
	assert.True(t, gp.Meshes[2].Deleted)
	assert.Same(t, gp.Programs[1], r.Program)
	assert.False(t, gp.Programs[1].Deleted)
	assert.Len(t, gp.Draw.Draws, 4)
	assert.Len(t, gp.Programs[1].Uniforms1f[TimeUniform], 3)
}

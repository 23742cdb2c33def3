// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"cogentcore.org/glquad/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwKey returns the glfw key for the given key code,
// and glfw.KeyUnknown if there is none.
func GlfwKey(code key.Codes) glfw.Key {
	if code >= key.CodeA && code <= key.CodeZ {
		return glfw.KeyA + glfw.Key(code-key.CodeA)
	}
	if code >= key.Code1 && code <= key.Code9 {
		return glfw.Key1 + glfw.Key(code-key.Code1)
	}
	if code >= key.CodeF1 && code <= key.CodeF12 {
		return glfw.KeyF1 + glfw.Key(code-key.CodeF1)
	}
	switch code {
	case key.Code0:
		return glfw.Key0
	case key.CodeReturnEnter:
		return glfw.KeyEnter
	case key.CodeEscape:
		return glfw.KeyEscape
	case key.CodeBackspace:
		return glfw.KeyBackspace
	case key.CodeTab:
		return glfw.KeyTab
	case key.CodeSpacebar:
		return glfw.KeySpace
	case key.CodeDeleteForward:
		return glfw.KeyDelete
	case key.CodeRightArrow:
		return glfw.KeyRight
	case key.CodeLeftArrow:
		return glfw.KeyLeft
	case key.CodeDownArrow:
		return glfw.KeyDown
	case key.CodeUpArrow:
		return glfw.KeyUp
	}
	return glfw.KeyUnknown
}

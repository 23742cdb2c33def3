// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// ShaderTypes is a list of the shader stages used by a [Program].
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

// String returns the stage name, used in diagnostics.
func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

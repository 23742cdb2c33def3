// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Codes
	}{
		{"Escape", CodeEscape},
		{"escape", CodeEscape},
		{" ESC ", CodeEscape},
		{"q", CodeQ},
		{"ReturnEnter", CodeReturnEnter},
		{"enter", CodeReturnEnter},
		{"space", CodeSpacebar},
		{"F12", CodeF12},
		{"0", Code0},
		{"up", CodeUpArrow},
	}
	for _, tt := range tests {
		c, err := CodeFromString(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	for _, bad := range []string{"", "Unknown", "hyper"} {
		c, err := CodeFromString(bad)
		assert.Error(t, err, bad)
		assert.Equal(t, CodeUnknown, c)
	}
}

func TestCodesString(t *testing.T) {
	assert.Equal(t, "Escape", CodeEscape.String())
	assert.Equal(t, "A", CodeA.String())
	assert.Equal(t, "UpArrow", CodeUpArrow.String())
	assert.Equal(t, "Codes(-1)", Codes(-1).String())
	for c := CodeUnknown + 1; c < CodesN; c++ {
		back, err := CodeFromString(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

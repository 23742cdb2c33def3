// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes that glquad
// can bind to actions, independent of the window system.
package key

import (
	"fmt"
	"strings"
)

// Codes are the physical key codes.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	CodeReturnEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpacebar
	CodeDeleteForward

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow

	CodesN
)

var codeNames = [CodesN]string{
	"Unknown",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"ReturnEnter", "Escape", "Backspace", "Tab", "Spacebar", "DeleteForward",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"RightArrow", "LeftArrow", "DownArrow", "UpArrow",
}

// aliases are extra accepted spellings, in lower case.
var aliases = map[string]Codes{
	"esc":    CodeEscape,
	"enter":  CodeReturnEnter,
	"return": CodeReturnEnter,
	"space":  CodeSpacebar,
	"delete": CodeDeleteForward,
	"right":  CodeRightArrow,
	"left":   CodeLeftArrow,
	"down":   CodeDownArrow,
	"up":     CodeUpArrow,
}

// String returns the name of the code.
func (c Codes) String() string {
	if c < 0 || c >= CodesN {
		return fmt.Sprintf("Codes(%d)", int32(c))
	}
	return codeNames[c]
}

// CodeFromString returns the code with the given name,
// case insensitively, also accepting common short names
// such as "esc", "enter" and "space".
func CodeFromString(s string) (Codes, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	if c, ok := aliases[ls]; ok {
		return c, nil
	}
	for c := CodeUnknown + 1; c < CodesN; c++ {
		if strings.ToLower(codeNames[c]) == ls {
			return c, nil
		}
	}
	return CodeUnknown, fmt.Errorf("key.CodeFromString: unknown key %q", s)
}

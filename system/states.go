// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "fmt"

// States are the lifecycle states of a [Window].
// Transitions only go forward: Uninitialized, Running, Terminated.
type States int32

const (
	// Uninitialized is before the window system and window are created.
	Uninitialized States = iota

	// Running is while the window and its graphics context are live.
	Running

	// Terminated is after the window is destroyed and the
	// window system shut down. There is no way back.
	Terminated
)

func (s States) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

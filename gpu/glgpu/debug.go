// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// EnableDebug turns on synchronous debug output and logs every
// driver debug message with [DebugMessage]. It needs a debug context
// for the driver to report anything useful.
func EnableDebug() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(DebugMessage, nil)
}

// DebugMessage is the gl.DebugProc that logs a driver debug
// message at the level given by [DebugLevel].
func DebugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	slog.Log(context.Background(), DebugLevel(severity), "OpenGL", "msg", message, "type", DebugTypeName(gltype), "id", id)
}

// DebugLevel returns the log level for a debug message severity.
func DebugLevel(severity uint32) slog.Level {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// DebugTypeName returns a short name for a debug message type.
func DebugTypeName(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	default:
		return "other"
	}
}

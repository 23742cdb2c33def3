// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glquad/base/errors"
)

// OpenProgram reads the vertex and fragment shader sources from the
// given files and compiles them into a new Program with the given name.
// A file that cannot be read contributes an empty source, which is
// still compiled. The returned Program is never nil; the error joins
// every read, compile and link failure, and is nil only if the program
// is fully usable. Deciding whether a failure is fatal is up to the caller.
func OpenProgram(gp GPU, name, vertPath, fragPath string) (Program, error) {
	var errs []error
	vsrc, err := ReadSource(vertPath)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", VertexShader, err))
	}
	fsrc, err := ReadSource(fragPath)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", FragmentShader, err))
	}
	pr := gp.NewProgram(name)
	if err := pr.Compile(vsrc, fsrc); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return pr, fmt.Errorf("gpu.OpenProgram %s: %w", name, errors.Join(errs...))
	}
	slog.Debug("compiled program", "program", name, "vertex", vertPath, "fragment", fragPath)
	return pr, nil
}

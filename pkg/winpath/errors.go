// SPDX-License-Identifier: MPL-2.0

package winpath

import (
	"errors"
	"fmt"
)

// ErrBadPathName is the sentinel error wrapped by BadPathNameError.
var ErrBadPathName = errors.New("bad path name")

// BadPathNameError is returned when a path cannot be resolved: a UNC root
// missing its share component, a drive-relative path supplied alongside an
// explicit primary directory, or a primary directory that is not itself
// fully qualified.
type BadPathNameError struct {
	Path   string
	Reason string
}

// Error implements the error interface for BadPathNameError.
func (e *BadPathNameError) Error() string {
	return fmt.Sprintf("bad path name %q: %s", e.Path, e.Reason)
}

// Unwrap returns ErrBadPathName for errors.Is() compatibility.
func (e *BadPathNameError) Unwrap() error { return ErrBadPathName }

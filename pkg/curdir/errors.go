// SPDX-License-Identifier: MPL-2.0

package curdir

import (
	"errors"
	"fmt"
)

// ErrInvalidDrive is the sentinel error wrapped by InvalidDriveError.
var ErrInvalidDrive = errors.New("invalid drive letter")

// InvalidDriveError is returned when a drive directory is requested for a
// byte that is not an ASCII letter.
type InvalidDriveError struct {
	Drive byte
}

// Error implements the error interface for InvalidDriveError.
func (e *InvalidDriveError) Error() string {
	return fmt.Sprintf("invalid drive letter %q", e.Drive)
}

// Unwrap returns ErrInvalidDrive for errors.Is() compatibility.
func (e *InvalidDriveError) Unwrap() error { return ErrInvalidDrive }

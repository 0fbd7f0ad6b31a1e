// SPDX-License-Identifier: MPL-2.0

package curdir

import (
	"fmt"
	"os"
)

// Env reads current-directory state from the process environment: the
// working directory from the OS, and per-drive remembered directories from
// the hidden "=X:" environment variables the platform maintains. A drive
// with no remembered directory falls back to its root.
type Env struct {
	getwd  func() (string, error)
	getenv func(string) string
}

// NewEnv returns an Env backed by the real process environment.
func NewEnv() *Env {
	return NewEnvFrom(os.Getwd, os.Getenv)
}

// NewEnvFrom returns an Env reading through the provided lookup functions.
// Accepting getwd and getenv as parameters allows tests to inject custom
// state without mutating the process environment, which in any case cannot
// hold "="-prefixed variable names off Windows.
func NewEnvFrom(getwd func() (string, error), getenv func(string) string) *Env {
	return &Env{getwd: getwd, getenv: getenv}
}

// WorkingDirectory returns the process current directory.
func (e *Env) WorkingDirectory() (string, error) {
	wd, err := e.getwd()
	if err != nil {
		return "", fmt.Errorf("reading working directory: %w", err)
	}
	return wd, nil
}

// DriveWorkingDirectory returns the directory remembered for the given
// drive letter, or the drive's root when none is remembered.
func (e *Env) DriveWorkingDirectory(drive byte) (string, error) {
	letter, err := driveLetter(drive)
	if err != nil {
		return "", err
	}
	if dir := e.getenv("=" + string(letter) + ":"); dir != "" {
		return dir, nil
	}
	return string(letter) + `:\`, nil
}

// driveLetter validates and upper-cases a drive letter byte.
func driveLetter(drive byte) (byte, error) {
	switch {
	case 'A' <= drive && drive <= 'Z':
		return drive, nil
	case 'a' <= drive && drive <= 'z':
		return drive - ('a' - 'A'), nil
	default:
		return 0, &InvalidDriveError{Drive: drive}
	}
}

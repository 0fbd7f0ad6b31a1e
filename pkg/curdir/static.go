// SPDX-License-Identifier: MPL-2.0

package curdir

import (
	"github.com/winshell/winpath/pkg/winpath"
)

// Static holds current-directory state in memory. It is the provider an
// embedding shell uses for its own session state, and what tests use to
// pin directories without touching the process.
type Static struct {
	dir    string
	drives map[byte]string
}

// NewStatic returns a Static whose working directory is dir. Per-drive
// directories start empty; unremembered drives report their root.
func NewStatic(dir string) *Static {
	s := &Static{drives: make(map[byte]string)}
	s.SetWorkingDirectory(dir)
	return s
}

// WorkingDirectory returns the current working directory.
func (s *Static) WorkingDirectory() (string, error) {
	return s.dir, nil
}

// DriveWorkingDirectory returns the directory remembered for the given
// drive letter, or the drive's root when none is remembered.
func (s *Static) DriveWorkingDirectory(drive byte) (string, error) {
	letter, err := driveLetter(drive)
	if err != nil {
		return "", err
	}
	if dir, ok := s.drives[letter]; ok {
		return dir, nil
	}
	return string(letter) + `:\`, nil
}

// SetWorkingDirectory replaces the working directory without updating any
// drive memory.
func (s *Static) SetWorkingDirectory(dir string) {
	s.dir = dir
}

// SetDriveWorkingDirectory records dir as the remembered directory for the
// given drive letter.
func (s *Static) SetDriveWorkingDirectory(drive byte, dir string) error {
	letter, err := driveLetter(drive)
	if err != nil {
		return err
	}
	s.drives[letter] = dir
	return nil
}

// Chdir changes the working directory the way a shell's cd does: dir must
// be fully qualified, and when it names a drive-letter path the drive's
// remembered directory is updated alongside, so a later drive-relative
// path finds its way back.
func (s *Static) Chdir(dir string) error {
	c := winpath.Classify(dir)
	if c.Shape != winpath.ShapeAbsolute {
		return &winpath.BadPathNameError{Path: dir, Reason: "directory is not fully qualified"}
	}
	s.dir = dir
	if !c.IsUNC {
		core := dir
		if c.HasExtendedPrefix {
			core = dir[4:]
		}
		if len(core) >= 2 && core[1] == ':' {
			return s.SetDriveWorkingDirectory(core[0], dir)
		}
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0

package winpath

import (
	"github.com/charmbracelet/log"

	"github.com/winshell/winpath/pkg/osver"
)

// CurrentDirectoryProvider supplies the ambient current-directory state a
// resolve operation reads: the process working directory and the directory
// remembered for each drive letter. Implementations live in pkg/curdir.
//
// The provider is process-wide mutable state the engine does not own; no
// locking is performed around it, and concurrent resolves racing a
// directory change can observe inconsistent but individually valid
// directories.
type CurrentDirectoryProvider interface {
	// WorkingDirectory returns the process current directory as a fully
	// qualified path.
	WorkingDirectory() (string, error)

	// DriveWorkingDirectory returns the current directory remembered for
	// the given drive letter.
	DriveWorkingDirectory(drive byte) (string, error)
}

// Resolver turns arbitrary input paths into canonical absolute paths. The
// extended-form prefix character is decided once at construction; the
// current-directory provider is consulted per call.
type Resolver struct {
	provider   CurrentDirectoryProvider
	prefixChar byte
	logger     *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger enables debug tracing of resolve operations. A nil logger
// leaves the resolver silent.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithPlatformVersion selects the extended-form prefix character for the
// given OS version instead of probing the running system.
func WithPlatformVersion(v osver.Version) Option {
	return func(r *Resolver) { r.prefixChar = prefixCharFor(v) }
}

// prefixCharFor picks the extended-form prefix character. NT releases older
// than 4.0 only understand the `\\.\` device form; everything since takes
// `\\?\`.
func prefixCharFor(v osver.Version) byte {
	if v.AtLeast(4, 0) {
		return '?'
	}
	return '.'
}

// New returns a Resolver reading current-directory state from provider. By
// default the extended-form prefix character is chosen from the running
// platform's version, probed once.
func New(provider CurrentDirectoryProvider, opts ...Option) *Resolver {
	r := &Resolver{
		provider:   provider,
		prefixChar: prefixCharFor(osver.Probe()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve turns path into a canonical absolute path in the requested form,
// reading whatever current-directory state its shape calls for: the process
// directory for relative and rooted-relative paths, or the named drive's
// remembered directory for drive-relative paths.
func (r *Resolver) Resolve(path string, extended bool) (Resolved, error) {
	c := Classify(path)
	r.trace("resolving path", "path", path, "shape", c.Shape, "extended", extended)

	var candidate string
	if c.Shape == ShapeAbsolute {
		candidate = reform(path, c, extended, r.prefixChar)
	} else {
		primary, suffix, err := r.primaryFor(path, c)
		if err != nil {
			return Resolved{}, err
		}
		candidate, err = merge(primary, suffix, c.Shape, extended, r.prefixChar)
		if err != nil {
			return Resolved{}, err
		}
	}

	res, err := squash(candidate, extended)
	if err != nil {
		return Resolved{}, err
	}
	r.trace("resolved path", "path", path, "result", res.Path)
	return res, nil
}

// ResolveRelativeTo resolves path against a caller-supplied primary
// directory instead of process state. The primary directory must itself be
// fully qualified, and drive-relative input paths are rejected: with an
// explicit primary directory there is no notion of another drive's current
// directory.
func (r *Resolver) ResolveRelativeTo(primary, path string, extended bool) (Resolved, error) {
	if pc := Classify(primary); pc.Shape != ShapeAbsolute {
		return Resolved{}, &BadPathNameError{Path: primary, Reason: "primary directory is not fully qualified"}
	}

	c := Classify(path)
	r.trace("resolving path", "path", path, "primary", primary, "shape", c.Shape, "extended", extended)

	var candidate string
	var err error
	switch c.Shape {
	case ShapeDriveRelative:
		return Resolved{}, &BadPathNameError{Path: path, Reason: "drive-relative path cannot resolve against an explicit primary directory"}
	case ShapeAbsolute:
		candidate = reform(path, c, extended, r.prefixChar)
	default:
		candidate, err = merge(primary, path, c.Shape, extended, r.prefixChar)
		if err != nil {
			return Resolved{}, err
		}
	}
	return squash(candidate, extended)
}

// primaryFor fetches the primary directory a non-absolute path resolves
// against, and the relative suffix to append to it. Provider errors are
// propagated unchanged.
func (r *Resolver) primaryFor(path string, c Classification) (primary, suffix string, err error) {
	switch c.Shape {
	case ShapeDriveRelative:
		suffix = path[c.RelativeStart:]
		cwd, err := r.provider.WorkingDirectory()
		if err != nil {
			return "", "", err
		}
		// A drive-relative path on the process's own drive resolves against
		// the process directory; any other drive resolves against that
		// drive's remembered directory.
		if onDrive(cwd, path[0]) {
			return cwd, suffix, nil
		}
		primary, err = r.provider.DriveWorkingDirectory(path[0])
		if err != nil {
			return "", "", err
		}
		return primary, suffix, nil
	default:
		primary, err = r.provider.WorkingDirectory()
		if err != nil {
			return "", "", err
		}
		return primary, path, nil
	}
}

// onDrive reports whether a fully qualified path lives on the given drive
// letter. UNC paths live on no drive.
func onDrive(path string, drive byte) bool {
	c := Classify(path)
	if c.IsUNC {
		return false
	}
	core := path
	if c.HasExtendedPrefix {
		core = path[extendedPrefixLen:]
	}
	return len(core) >= 2 && core[1] == ':' && upper(core[0]) == upper(drive)
}

func (r *Resolver) trace(msg string, keyvals ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}

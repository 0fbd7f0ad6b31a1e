// SPDX-License-Identifier: MPL-2.0

// Package winpath turns arbitrary user-supplied Windows paths (relative,
// drive-relative, UNC, already-escaped, containing "." or ".." components,
// forward or back slashes) into canonical absolute paths, in either the
// legacy form or the extended "\\?\" form that lifts the traditional
// path-length and reserved-name restrictions.
//
// The package performs no filesystem I/O: it never checks that a path
// exists, never resolves reparse points, and never computes short (8.3)
// names. Current-directory state is read through an injected
// CurrentDirectoryProvider so resolution is testable without touching
// process-wide state.
package winpath

// SPDX-License-Identifier: MPL-2.0

package winpath

// Separator is the canonical Windows path separator. Forward slashes are
// accepted everywhere on input and normalized to this during resolution.
const Separator = '\\'

const (
	// extendedPrefixLen is the length of the `\\?\` (or legacy `\\.\`)
	// extended-form prefix.
	extendedPrefixLen = 4
	// extendedUNCPrefixLen is the length of the `\\?\UNC\` prefix that
	// introduces a UNC path in the extended form.
	extendedUNCPrefixLen = 8
)

// Shape identifies which of the four relative/absolute classes a raw input
// path belongs to. The classes are mutually exclusive; UNC-ness and the
// extended prefix are independent markers carried on Classification.
type Shape int

// Shape values, in classifier decision order.
const (
	// ShapeAbsolute is a fully qualified path: drive letter, colon and
	// separator, or a UNC root (with or without the extended prefix).
	ShapeAbsolute Shape = iota
	// ShapeDriveRelative is `X:suffix` with no separator after the colon,
	// relative to drive X's own remembered current directory.
	ShapeDriveRelative
	// ShapeAbsoluteNoDrive begins with a separator but names no drive or
	// share; it is relative to the root of the current drive.
	ShapeAbsoluteNoDrive
	// ShapeRelative is relative to the full current directory.
	ShapeRelative
)

// String returns the shape name for diagnostics.
func (s Shape) String() string {
	switch s {
	case ShapeAbsolute:
		return "absolute"
	case ShapeDriveRelative:
		return "drive-relative"
	case ShapeAbsoluteNoDrive:
		return "absolute-no-drive"
	case ShapeRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// Classification is the full result of classifying a raw input path.
type Classification struct {
	Shape Shape

	// HasExtendedPrefix reports whether the path carries the `\\?\` (or
	// legacy `\\.\`) long-path marker.
	HasExtendedPrefix bool

	// IsUNC reports whether the path's root is a network share rather than
	// a drive letter. Note that `\\?\C:\...` is not UNC even though it
	// begins with two separators.
	IsUNC bool

	// RelativeStart is the offset where the relative portion of the path
	// begins. It is meaningful only for ShapeDriveRelative, where it is 2,
	// past the drive letter and colon.
	RelativeStart int
}

// Classify determines the shape of an arbitrary input path. It performs no
// I/O and never fails; input that matches none of the qualified forms is
// ShapeRelative.
func Classify(path string) Classification {
	switch {
	case len(path) >= 2 && isSep(path[0]) && isSep(path[1]):
		c := Classification{Shape: ShapeAbsolute}
		if len(path) >= extendedPrefixLen && (path[2] == '?' || path[2] == '.') && isSep(path[3]) {
			c.HasExtendedPrefix = true
			c.IsUNC = hasUNCMarker(path)
		} else {
			c.IsUNC = true
		}
		return c
	case len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':':
		if len(path) == 2 || !isSep(path[2]) {
			return Classification{Shape: ShapeDriveRelative, RelativeStart: 2}
		}
		return Classification{Shape: ShapeAbsolute}
	case len(path) >= 1 && isSep(path[0]):
		return Classification{Shape: ShapeAbsoluteNoDrive}
	default:
		return Classification{Shape: ShapeRelative}
	}
}

// hasUNCMarker reports whether an extended-prefix path carries the `UNC\`
// marker in bytes 4-7, making it a true UNC path.
func hasUNCMarker(path string) bool {
	return len(path) >= extendedUNCPrefixLen &&
		upper(path[4]) == 'U' && upper(path[5]) == 'N' && upper(path[6]) == 'C' &&
		isSep(path[7])
}

func isSep(c byte) bool {
	return c == '\\' || c == '/'
}

func isDriveLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// nextSep returns the index of the first separator at or after start, or -1.
func nextSep(path string, start int) int {
	for i := start; i < len(path); i++ {
		if isSep(path[i]) {
			return i
		}
	}
	return -1
}

// SPDX-License-Identifier: MPL-2.0

package winpath

import "strings"

// reform converts an already-absolute path between the legacy and extended
// forms by adding or stripping the 4-byte (`\\?\`) or 8-byte (`\\?\UNC\`)
// prefix. It has no knowledge of relative components; canonicalization
// happens separately.
func reform(path string, c Classification, extended bool, prefixChar byte) string {
	switch {
	case extended && !c.HasExtendedPrefix:
		var b strings.Builder
		b.Grow(extendedUNCPrefixLen + len(path))
		b.WriteByte(Separator)
		b.WriteByte(Separator)
		b.WriteByte(prefixChar)
		b.WriteByte(Separator)
		if c.IsUNC {
			// \\server\share becomes \\?\UNC\server\share: the UNC marker
			// replaces one of the two lead-in separators.
			b.WriteString("UNC")
			b.WriteString(path[1:])
		} else {
			b.WriteString(path)
		}
		return b.String()
	case !extended && c.HasExtendedPrefix:
		if c.IsUNC {
			// \\?\UNC\server\share becomes \\server\share.
			return `\\` + path[extendedUNCPrefixLen:]
		}
		return path[extendedPrefixLen:]
	default:
		return path
	}
}

// Unescape converts a canonical extended-form path to the legacy form by
// stripping the extended prefix. A path carrying no prefix is returned
// unchanged.
//
// For UNC paths the result is one separator short of the conventional form:
// `\\?\UNC\server\share` becomes `\server\share`, and the caller re-adds
// the second leading separator when presenting the path. No
// canonicalization is performed; the input is assumed already canonical.
func Unescape(path string) (string, error) {
	c := Classify(path)
	if c.Shape != ShapeAbsolute {
		return "", &BadPathNameError{Path: path, Reason: "path is not fully qualified"}
	}
	if !c.HasExtendedPrefix {
		return path, nil
	}
	if c.IsUNC {
		return string(Separator) + path[extendedUNCPrefixLen:], nil
	}
	return path[extendedPrefixLen:], nil
}

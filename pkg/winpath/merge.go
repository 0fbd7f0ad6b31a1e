// SPDX-License-Identifier: MPL-2.0

package winpath

import "strings"

// merge combines an absolute primary directory with the relative portion of
// an input path, producing an uncanonicalized absolute candidate in the
// requested form. The candidate still needs a squash pass.
//
// For ShapeAbsoluteNoDrive inputs the primary directory is truncated to its
// effective root before the suffix is appended, since such paths are
// relative to the root of the current drive rather than to the full current
// directory. For ShapeDriveRelative inputs the caller must already have
// substituted the requested drive's own remembered directory as primary.
func merge(primary, suffix string, shape Shape, extended bool, prefixChar byte) (string, error) {
	pc := Classify(primary)
	if pc.Shape != ShapeAbsolute {
		return "", &BadPathNameError{Path: primary, Reason: "primary directory is not fully qualified"}
	}

	// Reduce the primary directory to its bare form, shedding any extended
	// prefix it already carries.
	core := primary
	if pc.HasExtendedPrefix {
		if pc.IsUNC {
			core = `\\` + primary[extendedUNCPrefixLen:]
		} else {
			core = primary[extendedPrefixLen:]
		}
	}

	if shape == ShapeAbsoluteNoDrive {
		n, err := effectiveRootLen(core, false, pc.IsUNC)
		if err != nil {
			return "", err
		}
		core = core[:n]
	}

	var b strings.Builder
	b.Grow(extendedUNCPrefixLen + len(core) + 1 + len(suffix))
	if extended {
		b.WriteByte(Separator)
		b.WriteByte(Separator)
		b.WriteByte(prefixChar)
		b.WriteByte(Separator)
		if pc.IsUNC {
			b.WriteString("UNC")
			b.WriteString(core[1:])
		} else {
			b.WriteString(core)
		}
	} else {
		b.WriteString(core)
	}
	if suffix != "" {
		// A bare drive-colon root keeps the suffix's own leading separator;
		// everything else gains exactly one.
		if !isSep(core[len(core)-1]) && !isSep(suffix[0]) {
			b.WriteByte(Separator)
		}
		b.WriteString(suffix)
	}
	return b.String(), nil
}

// SPDX-License-Identifier: MPL-2.0

package winpath

// EffectiveRoot returns the non-traversable root prefix of a fully
// qualified path: the substring that ".." resolution can shrink a path down
// to but never below. For a drive-letter path this is `X:` (or `\\?\X:`);
// for a UNC path it is `\\server\share` (or `\\?\UNC\server\share`). The
// root never includes a trailing separator; callers append one when
// concatenating.
//
// A UNC path whose server has no share component has no valid root and
// fails with ErrBadPathName, as does a path that is not fully qualified.
func EffectiveRoot(path string) (string, error) {
	c := Classify(path)
	if c.Shape != ShapeAbsolute {
		return "", &BadPathNameError{Path: path, Reason: "path is not fully qualified"}
	}
	n, err := effectiveRootLen(path, c.HasExtendedPrefix, c.IsUNC)
	if err != nil {
		return "", err
	}
	return path[:n], nil
}

// effectiveRootLen returns the length of the effective root of an absolute
// path whose prefix markers are already known. The same routine serves the
// public EffectiveRoot entry and the canonicalization scanner's
// re-derivation of the root on its output buffer, so both produce identical
// boundaries.
func effectiveRootLen(path string, hasPrefix, isUNC bool) (int, error) {
	if !isUNC {
		start := 0
		if hasPrefix {
			start = extendedPrefixLen
		}
		// The root ends at the first separator after the drive and colon;
		// if there is none, the whole string is the root.
		if i := nextSep(path, start); i >= 0 {
			return i, nil
		}
		return len(path), nil
	}

	start := 2
	if hasPrefix {
		start = extendedUNCPrefixLen
	}
	// A UNC root spans two separator-delimited segments: server, then
	// share. A server with no share is malformed.
	server := nextSep(path, start)
	if server < 0 {
		return 0, &BadPathNameError{Path: path, Reason: "UNC path has no share component"}
	}
	if server+1 >= len(path) || isSep(path[server+1]) {
		return 0, &BadPathNameError{Path: path, Reason: "UNC share name is empty"}
	}
	if share := nextSep(path, server+1); share >= 0 {
		return share, nil
	}
	// Exactly \\server\share with no trailing component: the whole string
	// is the root.
	return len(path), nil
}

// SPDX-License-Identifier: MPL-2.0

package winpath

// Resolved is the output of a resolve operation: the canonical path and the
// offset of its final (file-name) component. FileOffset is -1 when the path
// names only a root.
type Resolved struct {
	Path       string
	FileOffset int
}

// FileName returns the final path component, or "" when the path names only
// a root.
func (r Resolved) FileName() string {
	if r.FileOffset < 0 {
		return ""
	}
	return r.Path[r.FileOffset:]
}

// squash canonicalizes an absolute candidate: forward slashes become
// backslashes, separator runs collapse to one, "." components are dropped,
// ".." components are resolved clamped at the effective root, and - in the
// legacy form only - trailing dot and space characters are trimmed from
// each component. The scan uses index-based read and write cursors over a
// single buffer; the write cursor always trails the read cursor.
func squash(candidate string, extended bool) (Resolved, error) {
	buf := []byte(candidate)
	for i := range buf {
		if buf[i] == '/' {
			buf[i] = Separator
		}
	}

	// Relative resolution may have changed UNC-ness or prefix state, so the
	// markers are re-derived from the buffer before locating the root.
	c := Classify(string(buf))
	root, err := effectiveRootLen(string(buf), c.HasExtendedPrefix, c.IsUNC)
	if err != nil {
		return Resolved{}, err
	}

	n := len(buf)
	if root == n {
		// The root spans the entire string; there is no file part.
		return Resolved{Path: string(buf), FileOffset: -1}, nil
	}

	// Everything the scan writes after the root has the form (\component)*,
	// each component preceded by exactly one separator.
	w := root
	r := root
	for r < n {
		if buf[r] == Separator {
			r++
			continue
		}
		start := r
		for r < n && buf[r] != Separator {
			r++
		}
		comp := buf[start:r]
		switch {
		case len(comp) == 1 && comp[0] == '.':
			// Dropped entirely, along with its leading separator.
		case len(comp) == 2 && comp[0] == '.' && comp[1] == '.':
			// Walk the write cursor back to the start of the previous
			// component, clamped so it never moves before the root.
			for w > root && buf[w-1] != Separator {
				w--
			}
			if w > root {
				w--
			}
		default:
			if !extended {
				// Components ending in dots and spaces are meaningless in
				// the legacy form; the extended form preserves them.
				j := len(comp)
				for j > 0 && (comp[j-1] == '.' || comp[j-1] == ' ') {
					j--
				}
				comp = comp[:j]
				if len(comp) == 0 {
					continue
				}
			}
			buf[w] = Separator
			w++
			copy(buf[w:w+len(comp)], comp)
			w += len(comp)
		}
	}

	if w == root {
		// Every component resolved away; keep the rooted form.
		buf[w] = Separator
		w++
	}

	// Walk backward from the write cursor to find the final component; a
	// path ending at the root boundary has no file part.
	off := -1
	if w > root+1 {
		i := w - 1
		for buf[i] != Separator {
			i--
		}
		off = i + 1
	}
	return Resolved{Path: string(buf[:w]), FileOffset: off}, nil
}

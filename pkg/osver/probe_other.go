// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package osver

// probe has no NT kernel to interrogate off Windows; report a release new
// enough for every version-gated behavior in the shell.
func probe() Version {
	return Version{Major: 10, Minor: 0}
}

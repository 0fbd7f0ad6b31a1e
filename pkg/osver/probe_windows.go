// SPDX-License-Identifier: MPL-2.0

//go:build windows

package osver

import "golang.org/x/sys/windows"

// probe reads the kernel version directly rather than through
// GetVersionEx, which lies to unmanifested processes on Windows 8.1 and
// later.
func probe() Version {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return Version{Major: major, Minor: minor, Build: build}
}

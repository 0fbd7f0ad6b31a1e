// SPDX-License-Identifier: MPL-2.0

package osver

import (
	"fmt"
	"sync"
)

// Version identifies an NT kernel release.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
}

// AtLeast reports whether the version is major.minor or newer.
func (v Version) AtLeast(major, minor uint32) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// String returns the version in major.minor.build form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// probeOnce caches the version probe for the lifetime of the process. The
// running kernel cannot change underneath us, making process-wide caching
// safe.
var probeOnce = sync.OnceValue(probe)

// Probe returns the running operating system version. The result is cached
// after the first call.
func Probe() Version {
	return probeOnce()
}

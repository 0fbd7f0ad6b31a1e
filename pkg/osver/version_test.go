// SPDX-License-Identifier: MPL-2.0

package osver_test

import (
	"testing"

	"github.com/winshell/winpath/pkg/osver"
)

func TestVersionAtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v            osver.Version
		major, minor uint32
		want         bool
	}{
		{osver.Version{Major: 10, Minor: 0}, 4, 0, true},
		{osver.Version{Major: 4, Minor: 0}, 4, 0, true},
		{osver.Version{Major: 3, Minor: 51}, 4, 0, false},
		{osver.Version{Major: 5, Minor: 1}, 5, 2, false},
		{osver.Version{Major: 5, Minor: 2}, 5, 1, true},
		{osver.Version{Major: 6, Minor: 0}, 5, 2, true},
	}

	for _, tt := range tests {
		if got := tt.v.AtLeast(tt.major, tt.minor); got != tt.want {
			t.Errorf("Version(%s).AtLeast(%d, %d) = %v, want %v", tt.v, tt.major, tt.minor, got, tt.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	v := osver.Version{Major: 10, Minor: 0, Build: 19045}
	if got := v.String(); got != "10.0.19045" {
		t.Errorf("Version.String() = %q, want %q", got, "10.0.19045")
	}
}

func TestProbeCached(t *testing.T) {
	t.Parallel()

	if osver.Probe() != osver.Probe() {
		t.Error("Probe() returned different values across calls")
	}
}

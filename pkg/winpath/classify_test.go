// SPDX-License-Identifier: MPL-2.0

package winpath_test

import (
	"testing"

	"github.com/winshell/winpath/pkg/winpath"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want winpath.Classification
	}{
		{
			name: "drive absolute",
			path: `C:\foo\bar`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute},
		},
		{
			name: "drive absolute forward slash",
			path: `C:/foo`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute},
		},
		{
			name: "drive relative",
			path: `D:foo`,
			want: winpath.Classification{Shape: winpath.ShapeDriveRelative, RelativeStart: 2},
		},
		{
			name: "bare drive colon",
			path: `D:`,
			want: winpath.Classification{Shape: winpath.ShapeDriveRelative, RelativeStart: 2},
		},
		{
			name: "unc",
			path: `\\server\share\x`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute, IsUNC: true},
		},
		{
			name: "unc forward slashes",
			path: `//server/share`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute, IsUNC: true},
		},
		{
			name: "extended drive",
			path: `\\?\C:\foo`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute, HasExtendedPrefix: true},
		},
		{
			name: "extended legacy device prefix",
			path: `\\.\C:\foo`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute, HasExtendedPrefix: true},
		},
		{
			name: "extended unc",
			path: `\\?\UNC\server\share`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute, HasExtendedPrefix: true, IsUNC: true},
		},
		{
			name: "extended unc lowercase marker",
			path: `\\?\unc\server\share`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute, HasExtendedPrefix: true, IsUNC: true},
		},
		{
			name: "extended non-unc despite double separator",
			path: `\\?\C:\`,
			want: winpath.Classification{Shape: winpath.ShapeAbsolute, HasExtendedPrefix: true},
		},
		{
			name: "absolute no drive",
			path: `\foo\bar`,
			want: winpath.Classification{Shape: winpath.ShapeAbsoluteNoDrive},
		},
		{
			name: "absolute no drive forward slash",
			path: `/foo`,
			want: winpath.Classification{Shape: winpath.ShapeAbsoluteNoDrive},
		},
		{
			name: "relative",
			path: `foo\bar`,
			want: winpath.Classification{Shape: winpath.ShapeRelative},
		},
		{
			name: "dot relative",
			path: `.\foo`,
			want: winpath.Classification{Shape: winpath.ShapeRelative},
		},
		{
			name: "empty",
			path: ``,
			want: winpath.Classification{Shape: winpath.ShapeRelative},
		},
		{
			name: "colon without drive letter",
			path: `:foo`,
			want: winpath.Classification{Shape: winpath.ShapeRelative},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := winpath.Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shape winpath.Shape
		want  string
	}{
		{winpath.ShapeAbsolute, "absolute"},
		{winpath.ShapeDriveRelative, "drive-relative"},
		{winpath.ShapeAbsoluteNoDrive, "absolute-no-drive"},
		{winpath.ShapeRelative, "relative"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("Shape(%d).String() = %q, want %q", tt.shape, got, tt.want)
		}
	}
}

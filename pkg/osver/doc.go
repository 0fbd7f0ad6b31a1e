// SPDX-License-Identifier: MPL-2.0

// Package osver probes the operating system version.
//
// The shell uses the version to pick behaviors that differ across Windows
// releases, such as which extended-form path prefix very old NT releases
// accept. The probe runs once and is cached for the process lifetime.
package osver

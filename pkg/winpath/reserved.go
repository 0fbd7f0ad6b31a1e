// SPDX-License-Identifier: MPL-2.0

package winpath

import "strings"

// legacyMaxPath is the longest path, including the terminating NUL the
// platform APIs expect, that legacy-form paths may span. The extended form
// has no such ceiling.
const legacyMaxPath = 260

// reservedNames are device names the platform claims in every directory
// regardless of extension. Paths addressing files with these names must use
// the extended form.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsReservedName reports whether a single path component names a reserved
// device. The extension, if any, does not participate: "NUL.txt" is just as
// reserved as "NUL".
func IsReservedName(name string) bool {
	base := strings.ToUpper(name)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return reservedNames[strings.TrimRight(base, " ")]
}

// RequiresExtendedForm reports whether a canonical legacy-form path can
// only be addressed through the extended form: it exceeds the legacy length
// limit or one of its components names a reserved device. Paths already
// carrying the extended prefix need no further escaping.
func RequiresExtendedForm(path string) bool {
	if Classify(path).HasExtendedPrefix {
		return false
	}
	if len(path)+1 > legacyMaxPath {
		return true
	}
	for _, comp := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '\\' || r == '/'
	}) {
		if IsReservedName(comp) {
			return true
		}
	}
	return false
}

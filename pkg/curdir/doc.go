// SPDX-License-Identifier: MPL-2.0

// Package curdir implements winpath.CurrentDirectoryProvider: the ambient
// current-directory state a shell carries, comprising the process working
// directory and one remembered directory per drive letter.
//
// Env reads the state the platform itself maintains, including the hidden
// "=X:" environment variables that record per-drive directories. Static
// holds the state in memory for embedders and tests.
//
// Neither provider locks: the engine assumes the caller serializes
// directory changes, matching the platform's own lack of such guarantees.
package curdir

// Package xattr reads the DriveFS item-id extended attribute from filesystem
// entries.
//
// The Probe optimizes for the common case with one fixed-size buffered read
// and falls back to a size-query-then-sized-read sequence for oversized
// values, so a value is never silently truncated. Absent, unreadable, and
// undecodable attributes are reported as a miss rather than an error; only
// unexpected system failures escalate. The getxattr syscall sits behind the
// Reader interface with a build-tagged darwin/linux implementation and an
// in-memory MapReader for tests.
package xattr

// Package services defines the error classification and context plumbing
// shared by the resolution components.
//
// Sentinel errors mark the failure classes the resolver reacts to: invalid
// input is rejected up front, store unavailability and corruption silently
// divert resolution to the filesystem scan, and not-found is reserved for the
// CLI boundary where it maps to a non-zero exit code. Context helpers carry
// the per-invocation correlation ID and active strategy so log lines from any
// component can be tied back to one resolve call.
package services

// Package resolver orchestrates the two resolution strategies behind one
// entry point.
//
// Resolve validates the identifier, asks the metadata database first, and
// falls back to the extended-attribute filesystem scan when the database
// misses or cannot be read. Not-found is reported as a nil result, never an
// error; only unexpected system failures propagate. Each invocation is
// single-threaded and owns all of its transient state.
package resolver

// Package walker implements the filesystem fallback strategy: a priority-
// ordered, cycle-safe, iterative scan of the Drive mount points for the entry
// carrying a target item-id extended attribute.
package walker

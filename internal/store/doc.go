// Package store provides the blog store: an in-memory mapping of blog ID
// to record, persisted as a single JSON snapshot. Every mutation writes
// the full snapshot with a write-temp-then-atomic-rename discipline,
// preceded by a one-generation backup of the prior snapshot. A failed
// write rolls the in-memory mutation back so memory and disk never
// disagree about the last successful state.
package store

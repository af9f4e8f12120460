// Package store provides Store, a generic in-memory collection that assigns
// sequential identifiers.
//
// Store knows nothing about the entities it holds. Callers pass two hooks at
// construction: one reads the identifier of an item, the other returns a copy of
// the item carrying a new identifier. The assignment algorithm is written once
// here and reused by every entity-specific store through composition.
//
// Identifiers start at 1 and are never reused, even after a Delete. Only Clear
// resets the counter.
//
// A Store is not safe for concurrent use.
package store

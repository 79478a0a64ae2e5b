// Package store holds the authoritative in-memory video library and the id
// allocator behind it.
//
// A Store keeps records in insertion order and hands out strictly increasing
// integer ids that are never reused, even after deletes. Every mutating
// operation maintains two invariants: all ids are pairwise distinct, and the
// next id to allocate is strictly greater than every id currently present.
// Query operations (List, Search, SortedBy) are pure and never disturb the
// stored order.
//
// Durability is not this package's concern; persist translates a Store
// to and from its on-disk JSON document and calls Rebuild to normalize
// whatever it finds there.
package store

// Package persist translates the in-memory video library to and from its
// on-disk JSON document.
//
// Load never fails the process: a missing file yields a fresh empty store, a
// corrupted file is copied to a forensic backup and logged before yielding an
// empty store, and a syntactically valid but inconsistent file is repaired
// via store.Rebuild. The explicit Result reports which of those branches was
// taken.
//
// Save writes through a pending file that is fsynced and atomically renamed
// over the target, so readers observe either the old complete document or
// the new one, never a truncated mix. I/O failures on save are propagated,
// never swallowed.
package persist

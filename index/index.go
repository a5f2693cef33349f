// Package index implements the auxiliary index structures kept in sync
// with a table's column data: an abstract mapping from value to the set
// of live row ids currently holding that value.
package index

import "github.com/kasuganosora/memrel/value"

// RowID names a row within a table. Row ids are dense, monotonically
// increasing, and never reused (I5).
type RowID int64

// Index is the common surface of both concrete variants. Operations are
// pure data-structure updates invoked only by the owning table under
// its own lock; they never fail.
type Index interface {
	// Add records that key now maps to row. Safe to call once per
	// (key, row) pair under the table's I2 contract.
	Add(key value.Value, row RowID)

	// Remove deletes the first occurrence of row from key's bucket. If
	// the bucket becomes empty, the key itself is removed (I4).
	Remove(key value.Value, row RowID)

	// LookupEq returns the row ids currently mapped to key, or nil if
	// key has no bucket (I4: no empty buckets ever exist, so a nil
	// result and "bucket exists but empty" are indistinguishable by
	// design).
	LookupEq(key value.Value) []RowID

	// Keys returns every key currently present in the index. Iteration
	// order is variant-specific: unordered for Equality, ascending for
	// Ordered.
	Keys() []value.Value

	// Len reports how many distinct keys the index currently holds.
	Len() int
}

package index

import "github.com/kasuganosora/memrel/value"

// mapKey is the comparable projection of a value.Value used as a Go map
// key. value.Value itself is not comparable (its Bytes variant holds a
// slice), so bucket lookups normalize through this type first.
type mapKey struct {
	tag   value.Tag
	i     int64
	f     float64
	s     string
	b     bool
}

func toMapKey(v value.Value) mapKey {
	switch v.Tag() {
	case value.Int:
		return mapKey{tag: value.Int, i: v.Int()}
	case value.Float:
		return mapKey{tag: value.Float, f: v.Float()}
	case value.String:
		return mapKey{tag: value.String, s: v.String()}
	case value.Bool:
		return mapKey{tag: value.Bool, b: v.Bool()}
	case value.Bytes:
		return mapKey{tag: value.Bytes, s: string(v.Bytes())}
	default:
		return mapKey{tag: value.Null}
	}
}

// Equality is the unordered, hash-map-backed index variant. It supports
// point-equality lookup only; FindRange-style queries are not part of
// its surface (the executor never asks it to order keys).
type Equality struct {
	buckets map[mapKey][]RowID
	keys    map[mapKey]value.Value
}

// NewEquality creates an empty equality index.
func NewEquality() *Equality {
	return &Equality{
		buckets: make(map[mapKey][]RowID),
		keys:    make(map[mapKey]value.Value),
	}
}

// Add appends row to key's bucket.
func (e *Equality) Add(key value.Value, row RowID) {
	k := toMapKey(key)
	e.buckets[k] = append(e.buckets[k], row)
	e.keys[k] = key
}

// Remove deletes the first occurrence of row from key's bucket; if the
// bucket becomes empty, the key is removed entirely (I4).
func (e *Equality) Remove(key value.Value, row RowID) {
	k := toMapKey(key)
	bucket, ok := e.buckets[k]
	if !ok {
		return
	}
	for i, id := range bucket {
		if id == row {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(e.buckets, k)
		delete(e.keys, k)
		return
	}
	e.buckets[k] = bucket
}

// LookupEq returns the row ids mapped to key.
func (e *Equality) LookupEq(key value.Value) []RowID {
	return e.buckets[toMapKey(key)]
}

// Keys returns every key currently present, in unspecified order.
func (e *Equality) Keys() []value.Value {
	out := make([]value.Value, 0, len(e.keys))
	for _, v := range e.keys {
		out = append(out, v)
	}
	return out
}

// Len reports the number of distinct keys.
func (e *Equality) Len() int { return len(e.buckets) }

var _ Index = (*Equality)(nil)

package index

import (
	"sort"

	"github.com/kasuganosora/memrel/value"
)

// entry is one key's bucket in the ordered index, kept in a slice sorted
// by key so Keys() can iterate in ascending value order.
type entry struct {
	key    value.Value
	mapKey mapKey
	rows   []RowID
}

// Ordered is the key-ordered index variant. Its keys iterate in
// ascending value order; since a column's declared type is immutable
// and schema validation forbids heterogeneous tags within one column
// (§4.3), the total order reduces to the scalar order of that type.
//
// The executor does not currently walk Ordered in key order to serve
// range predicates (>, <, >=, <=) — those always fall through to a
// linear scan, matching the documented "source" behavior in spec.md §9.
// Ordered still exposes ascending iteration via Keys() for any caller
// that wants it (e.g. a future range-scan executor, or a host program
// doing its own traversal).
type Ordered struct {
	entries []entry // sorted ascending by key
	byKey   map[mapKey]int
}

// NewOrdered creates an empty ordered index.
func NewOrdered() *Ordered {
	return &Ordered{byKey: make(map[mapKey]int)}
}

func (o *Ordered) find(k mapKey) (int, bool) {
	i, ok := o.byKey[k]
	return i, ok
}

// Add appends row to key's bucket, inserting a new sorted slot for key
// if this is its first occurrence.
func (o *Ordered) Add(key value.Value, row RowID) {
	k := toMapKey(key)
	if i, ok := o.find(k); ok {
		o.entries[i].rows = append(o.entries[i].rows, row)
		return
	}

	pos := sort.Search(len(o.entries), func(i int) bool {
		c, err := value.Compare(o.entries[i].key, key)
		if err != nil {
			return false
		}
		return c >= 0
	})

	o.entries = append(o.entries, entry{})
	copy(o.entries[pos+1:], o.entries[pos:])
	o.entries[pos] = entry{key: key, mapKey: k, rows: []RowID{row}}

	o.reindexFrom(pos)
}

func (o *Ordered) reindexFrom(start int) {
	for i := start; i < len(o.entries); i++ {
		o.byKey[o.entries[i].mapKey] = i
	}
}

// Remove deletes the first occurrence of row from key's bucket; an
// emptied bucket drops the key and its sorted slot (I4).
func (o *Ordered) Remove(key value.Value, row RowID) {
	k := toMapKey(key)
	i, ok := o.find(k)
	if !ok {
		return
	}
	rows := o.entries[i].rows
	for j, id := range rows {
		if id == row {
			rows = append(rows[:j], rows[j+1:]...)
			break
		}
	}
	if len(rows) == 0 {
		o.entries = append(o.entries[:i], o.entries[i+1:]...)
		delete(o.byKey, k)
		o.reindexFrom(i)
		return
	}
	o.entries[i].rows = rows
}

// LookupEq returns the row ids mapped to key.
func (o *Ordered) LookupEq(key value.Value) []RowID {
	i, ok := o.find(toMapKey(key))
	if !ok {
		return nil
	}
	return o.entries[i].rows
}

// Keys returns every key currently present, in ascending value order.
func (o *Ordered) Keys() []value.Value {
	out := make([]value.Value, len(o.entries))
	for i, e := range o.entries {
		out[i] = e.key
	}
	return out
}

// Len reports the number of distinct keys.
func (o *Ordered) Len() int { return len(o.entries) }

var _ Index = (*Ordered)(nil)

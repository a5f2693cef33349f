// Package table implements the columnar, schema-typed, tombstone-based
// table that is the core storage unit of the store, plus the executor
// that evaluates a query.Query against one table's live rows.
package table

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kasuganosora/memrel/index"
	"github.com/kasuganosora/memrel/schema"
	"github.com/kasuganosora/memrel/value"
)

// RowID is re-exported from the index package so callers outside this
// module need only import table.
type RowID = index.RowID

// Table is a named, schema-typed columnar container with its own lock,
// tombstone set, and a map of indexes keyed by column name. All public
// operations acquire the table's lock for their full duration (§5): the
// design trades read concurrency within a table for simpler invariants,
// so a plain Mutex — not a RWMutex — is the correct primitive here.
type Table struct {
	mu sync.Mutex

	name   string
	id     uuid.UUID
	schema *schema.Schema
	logger *zap.Logger

	columns     map[string][]value.Value
	tombstones  map[RowID]struct{}
	highWater   int64
	indexes     map[string]index.Index
}

// New creates an empty table for the given schema. logger may be nil,
// in which case a no-op logger is used.
func New(name string, s *schema.Schema, logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	columns := make(map[string][]value.Value, len(s.Columns))
	for _, c := range s.Columns {
		columns[c.Name] = nil
	}
	return &Table{
		name:       name,
		id:         uuid.New(),
		schema:     s,
		logger:     logger,
		columns:    columns,
		tombstones: make(map[RowID]struct{}),
		indexes:    make(map[string]index.Index),
	}
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// ID returns the table's catalog-assigned identity, stable for the
// table's lifetime. It plays no role in row ids, which remain the
// dense integer sequence defined in §3; it exists purely so peripheral
// tooling (logging, mirrored-table correlation) has something stabler
// than a name to key off.
func (t *Table) ID() uuid.UUID { return t.id }

// Schema returns the table's immutable schema (I6).
func (t *Table) Schema() *schema.Schema { return t.schema }

// HighWaterMark returns the largest row id ever assigned.
func (t *Table) HighWaterMark() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highWater
}

// isLive reports whether id is in [1, highWater] and not tombstoned.
// Callers must hold t.mu.
func (t *Table) isLive(id RowID) bool {
	if id < 1 || int64(id) > t.highWater {
		return false
	}
	_, dead := t.tombstones[id]
	return !dead
}

// liveRowIDs returns every currently-live row id, ascending. Callers
// must hold t.mu.
func (t *Table) liveRowIDs() []RowID {
	out := make([]RowID, 0, int(t.highWater)-len(t.tombstones))
	for id := RowID(1); int64(id) <= t.highWater; id++ {
		if t.isLive(id) {
			out = append(out, id)
		}
	}
	return out
}

// valueAt returns the value of column col for row id. Callers must hold
// t.mu and ensure id is live.
func (t *Table) valueAt(col string, id RowID) value.Value {
	vals := t.columns[col]
	if int64(id) > int64(len(vals)) {
		return value.NewNull()
	}
	return vals[id-1]
}

// CreateIndex builds a new index of kind over column, populated from
// every currently-live row in a single critical section (§4.5).
func (t *Table) CreateIndex(column string, kind index.Kind) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.schema.Has(column) {
		return schema.NewColumnNotFound(column)
	}
	if _, exists := t.indexes[column]; exists {
		return schema.NewIndexAlreadyExists(column)
	}

	idx := index.New(kind)
	for _, id := range t.liveRowIDs() {
		idx.Add(t.valueAt(column, id), id)
	}
	t.indexes[column] = idx
	t.logger.Info("index created", zap.String("table", t.name), zap.String("column", column))
	return nil
}

// DropIndex removes the index on column, if any.
func (t *Table) DropIndex(column string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.indexes[column]; !exists {
		return schema.NewIndexNotFound(column)
	}
	delete(t.indexes, column)
	t.logger.Info("index dropped", zap.String("table", t.name), zap.String("column", column))
	return nil
}

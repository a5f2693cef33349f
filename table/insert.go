package table

import (
	"go.uber.org/zap"

	"github.com/kasuganosora/memrel/value"
)

// Insert validates row against the schema, appends it to every declared
// column (null where the row omits a column), assigns the next row id,
// and maintains every index on the table. It returns the new high-water
// mark.
//
// Index maintenance note: an index on a column is kept current for
// every live row on that column, including rows whose value is the
// implicit null fill-in — this is the reading that keeps I2 ("every
// live row id satisfies: the index maps its value to a bucket
// containing it exactly once") true for every indexed column,
// regardless of whether the caller's row explicitly mentioned it.
func (t *Table) Insert(row map[string]interface{}) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	coerced, err := t.schema.ValidateRow(row)
	if err != nil {
		return 0, err
	}
	id := t.insertLocked(coerced)
	t.logger.Debug("row inserted", zap.String("table", t.name), zap.Int64("row_id", int64(id)))
	return t.highWater, nil
}

// InsertBatch is semantically equivalent to a loop of single inserts,
// executed under one lock acquisition. Every row is validated before
// any mutation happens: this implementation resolves spec.md's
// documented open question by making insert_batch all-or-nothing rather
// than aborting mid-batch with partial rows already committed (see
// DESIGN.md).
func (t *Table) InsertBatch(rows []map[string]interface{}) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	coercedRows := make([]map[string]value.Value, 0, len(rows))
	for _, row := range rows {
		coerced, err := t.schema.ValidateRow(row)
		if err != nil {
			return 0, err
		}
		coercedRows = append(coercedRows, coerced)
	}

	for _, c := range coercedRows {
		t.insertLocked(c)
	}
	t.logger.Info("batch inserted", zap.String("table", t.name), zap.Int("count", len(rows)))
	return t.highWater, nil
}

// insertLocked appends one already-validated row and maintains indexes.
// Callers must hold t.mu.
func (t *Table) insertLocked(coerced map[string]value.Value) RowID {
	t.highWater++
	id := RowID(t.highWater)

	for _, col := range t.schema.Columns {
		v, ok := coerced[col.Name]
		if !ok {
			v = value.NewNull()
		}
		t.columns[col.Name] = append(t.columns[col.Name], v)
		if idx, indexed := t.indexes[col.Name]; indexed {
			idx.Add(v, id)
		}
	}
	return id
}

package table

import (
	"go.uber.org/zap"

	"github.com/kasuganosora/memrel/query"
	"github.com/kasuganosora/memrel/schema"
	"github.com/kasuganosora/memrel/value"
)

// Update resolves wheres to the set of matching live row ids (a
// predicate-free call targets every live row) and, for each, rewrites
// the columns named in updates to the same set of values. Column names
// in updates that are not in the schema are silently ignored, per §7.
//
// Index maintenance touches only the columns named in updates — not
// every indexed column on the table — per spec.md's tightened §4.2
// contract: remove the old index entry for a touched column, write the
// new value, then add the new index entry, all before releasing the
// lock.
func (t *Table) Update(updates map[string]interface{}, wheres []query.Where) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	coerced := make(map[string]value.Value, len(updates))
	for name, raw := range updates {
		if !t.schema.Has(name) {
			continue // unknown update columns are ignored, per §7
		}
		colType, _ := t.schema.ColumnType(name)
		v, err := value.Coerce(raw)
		if err != nil {
			return 0, &schema.TypeError{Reason: err.Error()}
		}
		if !colType.Matches(v) {
			return 0, &schema.SchemaMismatchError{Table: t.name, Column: name, Want: colType, Got: v.Tag().String()}
		}
		coerced[name] = v
	}

	matched, err := t.resolveWheres(wheres)
	if err != nil {
		return 0, err
	}

	for id := range matched {
		for col, newVal := range coerced {
			oldVal := t.valueAt(col, id)
			if idx, indexed := t.indexes[col]; indexed {
				idx.Remove(oldVal, id)
			}
			t.columns[col][id-1] = newVal
			if idx, indexed := t.indexes[col]; indexed {
				idx.Add(newVal, id)
			}
		}
	}

	t.logger.Debug("rows updated", zap.String("table", t.name), zap.Int("count", len(matched)))
	return len(matched), nil
}

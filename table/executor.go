package table

import (
	"sort"

	"go.uber.org/zap"

	"github.com/kasuganosora/memrel/query"
	"github.com/kasuganosora/memrel/schema"
	"github.com/kasuganosora/memrel/value"
)

// Select executes q against the table's current live rows under the
// table's lock, so the whole pipeline observes one consistent snapshot
// (§4.4, §5). The pipeline order is fixed: seed, filter, materialize,
// sort, limit, project.
func (t *Table) Select(q *query.Query) ([]query.Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	matched, err := t.resolveWheres(q.Wheres())
	if err != nil {
		return nil, err
	}

	ids := make([]RowID, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	// Absent an OrderBy, order is unspecified but must be deterministic
	// for a given table state; ascending row id is the chosen default.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if ob, ok := q.Order(); ok {
		if !t.schema.Has(ob.Column) {
			return nil, schema.NewColumnNotFound(ob.Column)
		}
		var sortErr error
		sort.SliceStable(ids, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			c, err := value.Compare(t.valueAt(ob.Column, ids[i]), t.valueAt(ob.Column, ids[j]))
			if err != nil {
				sortErr = err
				return false
			}
			if ob.Descending {
				return c > 0
			}
			return c < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
	}

	if n, ok := q.LimitN(); ok && n < len(ids) {
		ids = ids[:n]
	}

	projection, hasSelect := q.SelectColumns()
	if !hasSelect {
		projection = t.schema.Names()
	}

	rows := make([]query.Row, len(ids))
	for i, id := range ids {
		row := make(query.Row, len(projection))
		for _, col := range projection {
			if !t.schema.Has(col) {
				continue // nonexistent requested column is silently omitted, per §7
			}
			row[col] = t.valueAt(col, id).Raw()
		}
		rows[i] = row
	}

	t.logger.Debug("query executed", zap.String("table", t.name), zap.Int("matched", len(rows)))
	return rows, nil
}

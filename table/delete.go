package table

import (
	"go.uber.org/zap"

	"github.com/kasuganosora/memrel/query"
)

// Delete resolves wheres to the set of matching live row ids (a
// predicate-free call tombstones every live row) and, for each, removes
// it from every index bucket derived from its current column values
// before adding it to the tombstone set. Deleted rows remain in column
// storage (§3: slots are never reclaimed) and never reappear in a
// later index or scan.
func (t *Table) Delete(wheres []query.Where) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	matched, err := t.resolveWheres(wheres)
	if err != nil {
		return 0, err
	}

	for id := range matched {
		for col, idx := range t.indexes {
			idx.Remove(t.valueAt(col, id), id)
		}
		t.tombstones[id] = struct{}{}
	}

	t.logger.Debug("rows deleted", zap.String("table", t.name), zap.Int("count", len(matched)))
	return len(matched), nil
}

package table

import (
	"github.com/kasuganosora/memrel/query"
	"github.com/kasuganosora/memrel/schema"
	"github.com/kasuganosora/memrel/value"
)

// resolveWheres intersects the live row set with every Where clause, in
// append order, as step 1-2 of the execution pipeline (§4.4). It is the
// single predicate-resolution path shared by Select, Update, and
// Delete — the "reentrant lock" note in §5 exists precisely because
// this helper is called from within an already-locked public entry
// point rather than re-acquiring the table's lock itself.
//
// Callers must hold t.mu.
func (t *Table) resolveWheres(wheres []query.Where) (map[RowID]struct{}, error) {
	live := t.liveRowIDs()
	set := make(map[RowID]struct{}, len(live))
	for _, id := range live {
		set[id] = struct{}{}
	}

	for _, w := range wheres {
		if !w.Operator.Valid() {
			return nil, &schema.InvalidArgumentError{Reason: "unknown operator: " + string(w.Operator)}
		}
		if !t.schema.Has(w.Column) {
			return nil, schema.NewColumnNotFound(w.Column)
		}

		next, err := t.filterOne(set, w)
		if err != nil {
			return nil, err
		}
		set = next
	}
	return set, nil
}

// filterOne applies a single Where clause against the candidate set,
// using the column's index (of either kind) when the operator is == and
// one exists on the column (§4.4 step 2). A cross-tag comparison during
// the scan is reported as a *schema.TypeError. Callers must hold t.mu.
func (t *Table) filterOne(candidates map[RowID]struct{}, w query.Where) (map[RowID]struct{}, error) {
	if w.Operator == query.Eq {
		if idx, ok := t.indexes[w.Column]; ok {
			bucket := idx.LookupEq(w.Value)
			out := make(map[RowID]struct{}, len(bucket))
			for _, id := range bucket {
				if _, ok := candidates[id]; ok {
					out[id] = struct{}{}
				}
			}
			return out, nil
		}
	}

	out := make(map[RowID]struct{}, len(candidates))
	for id := range candidates {
		v := t.valueAt(w.Column, id)
		ok, err := evalOperator(w.Operator, v, w.Value)
		if err != nil {
			if _, isTypeErr := err.(*value.TypeError); isTypeErr {
				return nil, &schema.TypeError{Reason: err.Error()}
			}
			return nil, err
		}
		if ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

// evalOperator applies a single comparison operator to one pair of
// values. filterOne calls it once per candidate row, so the switch on
// the operator runs for every scanned row; the scan loop is not
// specialized per operator.
func evalOperator(op query.Operator, a, b value.Value) (bool, error) {
	switch op {
	case query.Eq:
		return value.Equal(a, b)
	case query.Ne:
		eq, err := value.Equal(a, b)
		return !eq, err
	case query.Lt:
		c, err := value.Compare(a, b)
		return c < 0, err
	case query.Le:
		c, err := value.Compare(a, b)
		return c <= 0, err
	case query.Gt:
		c, err := value.Compare(a, b)
		return c > 0, err
	case query.Ge:
		c, err := value.Compare(a, b)
		return c >= 0, err
	default:
		return false, &schema.InvalidArgumentError{Reason: "unknown operator: " + string(op)}
	}
}

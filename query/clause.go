// Package query declares the passive clause types a caller composes
// into a Query, and the Row type an executor projects results into.
// None of these types know how to evaluate themselves — evaluation is
// the table package's executor, which interprets a Query against a
// single table's live rows.
package query

import "github.com/kasuganosora/memrel/value"

// Row is a projected result: a mapping from requested column name to
// its value, in the host-facing representation.
type Row map[string]interface{}

// Operator is one of the six comparison operators a Where clause may
// use.
type Operator string

const (
	Eq Operator = "=="
	Ne Operator = "!="
	Lt Operator = "<"
	Le Operator = "<="
	Gt Operator = ">"
	Ge Operator = ">="
)

// Valid reports whether op is one of the six known operators.
func (op Operator) Valid() bool {
	switch op {
	case Eq, Ne, Lt, Le, Gt, Ge:
		return true
	default:
		return false
	}
}

// Where filters rows by comparing column against value using op.
// Multiple Where clauses in a Query are combined by conjunction, in the
// order they were appended; there is no way to express Or at this
// layer.
type Where struct {
	Column   string
	Operator Operator
	Value    value.Value
}

// OrderBy sorts the result set by column, ascending unless Descending
// is set.
type OrderBy struct {
	Column     string
	Descending bool
}

// Query is a passive bag of clauses referencing a single table. Only
// the first instance of Select, OrderBy, and Limit is honored; Where
// clauses accumulate and are all applied, in append order.
type Query struct {
	wheres  []Where
	sel     *[]string
	orderBy *OrderBy
	limit   *int
}

// New returns an empty Query.
func New() *Query { return &Query{} }

// Where appends a filter clause. Multiple calls accumulate (AND); see
// the type's doc comment.
func (q *Query) Where(column string, op Operator, v value.Value) *Query {
	q.wheres = append(q.wheres, Where{Column: column, Operator: op, Value: v})
	return q
}

// Select sets the projection column list. Only the first call takes
// effect; later calls are ignored, per §7's documented design choice.
func (q *Query) Select(columns ...string) *Query {
	if q.sel == nil {
		cols := append([]string(nil), columns...)
		q.sel = &cols
	}
	return q
}

// OrderBy sets the sort column and direction. Only the first call takes
// effect.
func (q *Query) OrderBy(column string, ascending bool) *Query {
	if q.orderBy == nil {
		q.orderBy = &OrderBy{Column: column, Descending: !ascending}
	}
	return q
}

// Limit caps the result set to at most n rows. Only the first call
// takes effect.
func (q *Query) Limit(n int) *Query {
	if q.limit == nil {
		q.limit = &n
	}
	return q
}

// Wheres returns the accumulated Where clauses in append order.
func (q *Query) Wheres() []Where { return q.wheres }

// SelectColumns returns the projection list and whether Select was
// called at all (absent => all schema columns).
func (q *Query) SelectColumns() ([]string, bool) {
	if q.sel == nil {
		return nil, false
	}
	return *q.sel, true
}

// Order returns the OrderBy clause, if any.
func (q *Query) Order() (OrderBy, bool) {
	if q.orderBy == nil {
		return OrderBy{}, false
	}
	return *q.orderBy, true
}

// LimitN returns the Limit clause, if any.
func (q *Query) LimitN() (int, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

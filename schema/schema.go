package schema

import (
	"github.com/kasuganosora/memrel/value"
)

// ColumnType is one of the value tags, declared at table creation and
// immutable thereafter (I6).
type ColumnType value.Tag

const (
	TypeInt    = ColumnType(value.Int)
	TypeFloat  = ColumnType(value.Float)
	TypeString = ColumnType(value.String)
	TypeBool   = ColumnType(value.Bool)
	TypeBytes  = ColumnType(value.Bytes)
)

func (t ColumnType) String() string { return value.Tag(t).String() }

// Matches reports whether v's tag satisfies a column declared as t. A
// null value always satisfies any column type (§3: NULL is
// representable as a value but there is no nullability declaration).
func (t ColumnType) Matches(v value.Value) bool {
	return v.IsNull() || value.Tag(t) == v.Tag()
}

// Column is a single entry in a table's schema.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is a mapping from column name to column type. Column names are
// unique per table; insertion order is irrelevant for lookups but is
// preserved in Columns for deterministic iteration (e.g. insert's
// "for each declared column" step).
type Schema struct {
	Columns []Column
	index   map[string]int
}

// New builds a Schema from an ordered column list, rejecting duplicate
// column names.
func New(columns []Column) (*Schema, error) {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := idx[c.Name]; dup {
			return nil, &InvalidArgumentError{Reason: "duplicate column name: " + c.Name}
		}
		idx[c.Name] = i
	}
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Schema{Columns: cols, index: idx}, nil
}

// Has reports whether column name is declared in the schema.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// ColumnType returns the declared type of column name.
func (s *Schema) ColumnType(name string) (ColumnType, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.Columns[i].Type, true
}

// Names returns the declared column names in schema order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// ValidateRow coerces and type-checks a host-supplied row (column name
// -> host value) against the schema, returning the coerced values keyed
// by column name. A mismatched non-null value fails the whole row
// before any state changes, per §4.1.
func (s *Schema) ValidateRow(row map[string]interface{}) (map[string]value.Value, error) {
	out := make(map[string]value.Value, len(row))
	for name, raw := range row {
		colType, ok := s.ColumnType(name)
		if !ok {
			// Unknown columns are rejected: the row can only reference
			// declared columns.
			return nil, &NotFoundError{Kind: "column", Name: name}
		}
		v, err := value.Coerce(raw)
		if err != nil {
			return nil, &TypeError{Reason: err.Error()}
		}
		if !colType.Matches(v) {
			return nil, &SchemaMismatchError{Column: name, Want: colType, Got: v.Tag().String()}
		}
		out[name] = v
	}
	return out, nil
}

// Package schema declares column types, per-table schemas, and the
// closed error taxonomy used across the store.
package schema

import "fmt"

// NotFoundError signals that a table, index, or column referenced by an
// operation does not exist.
type NotFoundError struct {
	Kind string // "table", "index", or "column"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// NewTableNotFound builds a NotFoundError for a missing table.
func NewTableNotFound(name string) *NotFoundError { return &NotFoundError{Kind: "table", Name: name} }

// NewIndexNotFound builds a NotFoundError for a missing index.
func NewIndexNotFound(name string) *NotFoundError { return &NotFoundError{Kind: "index", Name: name} }

// NewColumnNotFound builds a NotFoundError for a missing column.
func NewColumnNotFound(name string) *NotFoundError {
	return &NotFoundError{Kind: "column", Name: name}
}

// AlreadyExistsError signals that create_table/create_index was given a
// name that is already taken.
type AlreadyExistsError struct {
	Kind string // "table" or "index"
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.Name)
}

// NewTableAlreadyExists builds an AlreadyExistsError for a table name.
func NewTableAlreadyExists(name string) *AlreadyExistsError {
	return &AlreadyExistsError{Kind: "table", Name: name}
}

// NewIndexAlreadyExists builds an AlreadyExistsError for an index name.
func NewIndexAlreadyExists(name string) *AlreadyExistsError {
	return &AlreadyExistsError{Kind: "index", Name: name}
}

// SchemaMismatchError signals that an inserted or updated value's tag
// does not match the declared column type.
type SchemaMismatchError struct {
	Table  string
	Column string
	Want   ColumnType
	Got    string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: %s.%s wants %s, got %s", e.Table, e.Column, e.Want, e.Got)
}

// TypeError signals an incompatible-tag comparison in a predicate, or
// an unsupported host value at the coercion boundary.
type TypeError struct {
	Reason string
}

func (e *TypeError) Error() string { return "type error: " + e.Reason }

// InvalidArgumentError signals an unknown operator symbol in a Where
// clause, or any other structurally invalid argument to an operation.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string { return "invalid argument: " + e.Reason }

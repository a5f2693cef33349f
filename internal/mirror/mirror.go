// Package mirror is the shared body of the cmd/*import programs: each
// one opens a real database/sql connection with a different driver and
// hands this package a *sql.Rows to drain through the value-coercion
// boundary (§4.1) into a freshly created in-memory table.
package mirror

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kasuganosora/memrel/catalog"
	"github.com/kasuganosora/memrel/schema"
)

// Result reports the outcome of a single mirroring run: how many rows
// landed, and the stable catalog identity of the table they landed in,
// so a caller can correlate this run's mirrored table with its
// upstream source in its own logs.
type Result struct {
	RowsMirrored int64
	TableID      uuid.UUID
}

// Table drains rows into a new table called name in db, inferring a
// column's type from the driver's reported Go scan type, then loads
// every row with a single InsertBatch call.
func Table(db *catalog.Database, name string, rows *sql.Rows) (Result, error) {
	cols, err := rows.ColumnTypes()
	if err != nil {
		return Result{}, err
	}

	schemaCols := make([]schema.Column, len(cols))
	for i, c := range cols {
		schemaCols[i] = schema.Column{Name: c.Name(), Type: inferType(c)}
	}
	s, err := schema.New(schemaCols)
	if err != nil {
		return Result{}, err
	}
	t, err := db.CreateTable(name, s)
	if err != nil {
		return Result{}, err
	}

	scanDest := make([]interface{}, len(cols))
	scanVals := make([]interface{}, len(cols))
	for i := range scanDest {
		scanDest[i] = &scanVals[i]
	}

	var batch []map[string]interface{}
	for rows.Next() {
		if err := rows.Scan(scanDest...); err != nil {
			return Result{}, err
		}
		row := make(map[string]interface{}, len(cols))
		for i, c := range cols {
			row[c.Name()] = scanVals[i]
		}
		batch = append(batch, row)
	}
	if err := rows.Err(); err != nil {
		return Result{}, err
	}

	if len(batch) == 0 {
		return Result{TableID: t.ID()}, nil
	}
	hw, err := t.InsertBatch(batch)
	if err != nil {
		return Result{}, fmt.Errorf("mirroring %s: %w", name, err)
	}
	return Result{RowsMirrored: hw, TableID: t.ID()}, nil
}

func inferType(c *sql.ColumnType) schema.ColumnType {
	switch c.ScanType().Kind().String() {
	case "int64", "int32", "int16", "int8", "int":
		return schema.TypeInt
	case "float64", "float32":
		return schema.TypeFloat
	case "bool":
		return schema.TypeBool
	case "slice":
		return schema.TypeBytes
	default:
		return schema.TypeString
	}
}

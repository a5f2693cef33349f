// Package catalog implements the Database: a named container of tables
// behind a catalog-level lock, independent of each table's own lock.
package catalog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/kasuganosora/memrel/index"
	"github.com/kasuganosora/memrel/schema"
	"github.com/kasuganosora/memrel/table"
)

// Database is a mapping from table name to table, guarded by a single
// catalog lock. The catalog lock is taken only for create_table,
// drop_table, and the table-name lookup preceding every other
// operation; it is released before the per-table lock is taken (§5).
type Database struct {
	mu     sync.Mutex
	tables map[string]*table.Table
	logger *zap.Logger
}

// New creates an empty database. logger may be nil.
func New(logger *zap.Logger) *Database {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Database{
		tables: make(map[string]*table.Table),
		logger: logger,
	}
}

// CreateTable creates an empty table with the given schema. Fails with
// AlreadyExistsError if name is already taken.
func (db *Database) CreateTable(name string, s *schema.Schema) (*table.Table, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.tables[name]; exists {
		return nil, schema.NewTableAlreadyExists(name)
	}
	t := table.New(name, s, db.logger)
	db.tables[name] = t
	db.logger.Info("table created", zap.String("table", name))
	return t, nil
}

// DropTable removes name and releases its storage and indexes.
func (db *Database) DropTable(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.tables[name]; !exists {
		return schema.NewTableNotFound(name)
	}
	delete(db.tables, name)
	db.logger.Info("table dropped", zap.String("table", name))
	return nil
}

// GetTable looks up name. Fails with NotFoundError if it does not
// exist.
func (db *Database) GetTable(name string) (*table.Table, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, exists := db.tables[name]
	if !exists {
		return nil, schema.NewTableNotFound(name)
	}
	return t, nil
}

// TableNames returns every table name currently in the catalog, in
// unspecified order.
func (db *Database) TableNames() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	names := make([]string, 0, len(db.tables))
	for name := range db.tables {
		names = append(names, name)
	}
	return names
}

// CreateIndex resolves table and then delegates to its CreateIndex,
// outside the catalog lock.
func (db *Database) CreateIndex(tableName, column string, kind index.Kind) error {
	t, err := db.GetTable(tableName)
	if err != nil {
		return err
	}
	return t.CreateIndex(column, kind)
}

// DropIndex resolves table and then delegates to its DropIndex, outside
// the catalog lock.
func (db *Database) DropIndex(tableName, column string) error {
	t, err := db.GetTable(tableName)
	if err != nil {
		return err
	}
	return t.DropIndex(column)
}

// Command sqliteimport mirrors one table from a local SQLite file into
// a fresh in-memory table, using the pure-Go modernc.org/sqlite driver
// (no cgo, so it works in the same static binaries as the rest of this
// module).
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/kasuganosora/memrel/catalog"
	"github.com/kasuganosora/memrel/internal/mirror"
)

func main() {
	path := flag.String("db", "", "path to the SQLite database file")
	table := flag.String("table", "", "source table name to mirror")
	flag.Parse()

	if *path == "" || *table == "" {
		log.Fatal("usage: sqliteimport -db <path> -table <name>")
	}

	db, err := sql.Open("sqlite", *path)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + *table)
	if err != nil {
		log.Fatalf("query: %v", err)
	}
	defer rows.Close()

	memdb := catalog.New(nil)
	result, err := mirror.Table(memdb, *table, rows)
	if err != nil {
		log.Fatalf("mirror: %v", err)
	}
	fmt.Printf("mirrored %d row(s) from sqlite table %q into memory table %s\n",
		result.RowsMirrored, *table, result.TableID)
}

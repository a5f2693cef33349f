// Command mysqlimport mirrors one table from a live MySQL server into a
// fresh in-memory table, as a demonstration of feeding real-world rows
// through the store's value-coercion boundary. It is peripheral: the
// core library never talks to a network database.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"github.com/kasuganosora/memrel/catalog"
	"github.com/kasuganosora/memrel/internal/mirror"
)

func main() {
	dsn := flag.String("dsn", "", `MySQL DSN, e.g. "user:pass@tcp(127.0.0.1:3306)/dbname"`)
	table := flag.String("table", "", "source table name to mirror")
	flag.Parse()

	if *dsn == "" || *table == "" {
		log.Fatal("usage: mysqlimport -dsn <dsn> -table <name>")
	}

	db, err := sql.Open("mysql", *dsn)
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
	fmt.Printf("mirrored %d row(s) from mysql table %q into memory table %s\n",
		result.RowsMirrored, *table, result.TableID)
}

// Command pgimport mirrors one table from a live PostgreSQL server into
// a fresh in-memory table. See cmd/mysqlimport for the MySQL variant;
// the two share internal/mirror.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/kasuganosora/memrel/catalog"
	"github.com/kasuganosora/memrel/internal/mirror"
)

func main() {
	conninfo := flag.String("conninfo", "", `Postgres conninfo, e.g. "host=localhost dbname=x sslmode=disable"`)
	table := flag.String("table", "", "source table name to mirror")
	flag.Parse()

	if *conninfo == "" || *table == "" {
		log.Fatal("usage: pgimport -conninfo <conninfo> -table <name>")
	}

	db, err := sql.Open("postgres", *conninfo)
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
	fmt.Printf("mirrored %d row(s) from postgres table %q into memory table %s\n",
		result.RowsMirrored, *table, result.TableID)
}

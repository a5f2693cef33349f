// Command xlsxexport builds a small demo table, runs a Query against
// it, and writes the projected rows to an .xlsx workbook. It exists to
// give the pack's spreadsheet dependency a legitimate peripheral home:
// the core executor has no notion of spreadsheets.
package main

import (
	"flag"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/kasuganosora/memrel/catalog"
	"github.com/kasuganosora/memrel/query"
	"github.com/kasuganosora/memrel/schema"
	"github.com/kasuganosora/memrel/value"
)

func main() {
	out := flag.String("out", "export.xlsx", "output .xlsx path")
	flag.Parse()

	db := catalog.New(nil)
	s, err := schema.New([]schema.Column{
		{Name: "id", Type: schema.TypeInt},
		{Name: "name", Type: schema.TypeString},
		{Name: "active", Type: schema.TypeBool},
	})
	if err != nil {
		log.Fatal(err)
	}
	tbl, err := db.CreateTable("users", s)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tbl.InsertBatch([]map[string]interface{}{
		{"id": 1, "name": "Alice", "active": true},
		{"id": 2, "name": "Bob", "active": false},
		{"id": 3, "name": "Carol", "active": true},
	}); err != nil {
		log.Fatal(err)
	}

	q := query.New().
		Select("id", "name").
		Where("active", query.Eq, value.NewBool(true)).
		OrderBy("id", true)
	rows, err := tbl.Select(q)
	if err != nil {
		log.Fatal(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "active_users"
	f.SetSheetName(f.GetSheetName(0), sheet)
	f.SetCellValue(sheet, "A1", "id")
	f.SetCellValue(sheet, "B1", "name")
	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheet, cellRef("A", r), row["id"])
		f.SetCellValue(sheet, cellRef("B", r), row["name"])
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d row(s) to %s", len(rows), *out)
}

func cellRef(col string, row int) string {
	ref, _ := excelize.JoinCellName(col, row)
	return ref
}

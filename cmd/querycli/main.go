// Command querycli is a REPL-style convenience tool that accepts a tiny,
// single-table subset of SQL against an in-process demo table and
// translates it into a query.Query built from the library's passive
// clause types. Parsing happens entirely in this peripheral binary;
// the core executor never sees SQL text, only query.Query values.
//
// Supported subset:
//
//	SELECT col [, col ...] | * FROM table [WHERE col op literal] [ORDER BY col [DESC]] [LIMIT n]
//
// Only a single WHERE comparison is supported (no AND/OR). This is a
// limit of this tool's translation only: the core combines several
// Where clauses by AND, and has no OR.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	"github.com/pingcap/tidb/pkg/parser/opcode"
	_ "github.com/pingcap/tidb/pkg/types/parser_driver"
	"golang.org/x/text/language"

	"github.com/kasuganosora/memrel/catalog"
	"github.com/kasuganosora/memrel/internal/render"
	"github.com/kasuganosora/memrel/query"
	"github.com/kasuganosora/memrel/schema"
	"github.com/kasuganosora/memrel/value"
)

func main() {
	localeFlag := flag.String("locale", "en", "BCP 47 locale tag for numeric output formatting")
	flag.Parse()
	locale, err := language.Parse(*localeFlag)
	if err != nil {
		log.Fatalf("locale: %v", err)
	}

	db := demoDatabase()
	p := parser.New()

	fmt.Println("querycli: single-table SQL subset over an in-memory demo table")
	fmt.Println(`tables: users(id int, name string, age int, active bool)`)
	fmt.Println(`try: SELECT name, age FROM users WHERE age >= 25 ORDER BY age LIMIT 10`)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if err := runOne(db, p, locale, line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		fmt.Print("> ")
	}
}

func runOne(db *catalog.Database, p *parser.Parser, locale language.Tag, sql string) error {
	stmtNodes, _, err := p.Parse(sql, "", "")
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(stmtNodes) != 1 {
		return fmt.Errorf("expected exactly one statement, got %d", len(stmtNodes))
	}
	sel, ok := stmtNodes[0].(*ast.SelectStmt)
	if !ok {
		return fmt.Errorf("only SELECT is supported, got %q", stmtNodes[0].Text())
	}

	tableName, err := tableNameOf(sel)
	if err != nil {
		return err
	}
	tbl, err := db.GetTable(tableName)
	if err != nil {
		return err
	}

	cols, star := fieldsOf(sel)
	if star {
		cols = tbl.Schema().Names()
	}
	q := query.New().Select(cols...)
	if sel.Where != nil {
		w, err := whereOf(sel.Where)
		if err != nil {
			return err
		}
		q = q.Where(w.Column, w.Op, w.Value)
	}
	if sel.OrderBy != nil && len(sel.OrderBy.Items) > 0 {
		item := sel.OrderBy.Items[0]
		col, ok := item.Expr.(*ast.ColumnNameExpr)
		if !ok {
			return fmt.Errorf("ORDER BY only supports a bare column name")
		}
		q = q.OrderBy(col.Name.Name.L, !item.Desc)
	}
	if sel.Limit != nil {
		n, ok := sel.Limit.Count.(ast.ValueExpr)
		if !ok {
			return fmt.Errorf("LIMIT only supports a literal integer")
		}
		count, err := strconv.ParseInt(fmt.Sprint(n.GetValue()), 10, 64)
		if err != nil {
			return fmt.Errorf("LIMIT value: %w", err)
		}
		q = q.Limit(int(count))
	}

	rows, err := tbl.Select(q)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(0 rows)")
		return nil
	}
	if err := render.Table(os.Stdout, cols, rows, locale); err != nil {
		return err
	}
	fmt.Printf("(%d row(s))\n", len(rows))
	return nil
}

func tableNameOf(sel *ast.SelectStmt) (string, error) {
	if sel.From == nil || sel.From.TableRefs == nil {
		return "", fmt.Errorf("missing FROM clause")
	}
	src, ok := sel.From.TableRefs.Left.(*ast.TableSource)
	if !ok {
		return "", fmt.Errorf("only a single table source is supported")
	}
	name, ok := src.Source.(*ast.TableName)
	if !ok {
		return "", fmt.Errorf("only a bare table name is supported")
	}
	return name.Name.L, nil
}

func fieldsOf(sel *ast.SelectStmt) (cols []string, star bool) {
	if sel.Fields == nil {
		return nil, true
	}
	for _, f := range sel.Fields.Fields {
		if f.WildCard != nil {
			return nil, true
		}
		if col, ok := f.Expr.(*ast.ColumnNameExpr); ok {
			cols = append(cols, col.Name.Name.L)
		}
	}
	return cols, false
}

type whereClause struct {
	Column string
	Op     query.Operator
	Value  value.Value
}

func whereOf(expr ast.ExprNode) (whereClause, error) {
	bin, ok := expr.(*ast.BinaryOperationExpr)
	if !ok {
		return whereClause{}, fmt.Errorf("WHERE only supports a single comparison")
	}
	col, ok := bin.L.(*ast.ColumnNameExpr)
	if !ok {
		return whereClause{}, fmt.Errorf("WHERE left-hand side must be a column")
	}
	lit, ok := bin.R.(ast.ValueExpr)
	if !ok {
		return whereClause{}, fmt.Errorf("WHERE right-hand side must be a literal")
	}
	op, err := operatorOf(bin.Op)
	if err != nil {
		return whereClause{}, err
	}
	v, err := valueOf(lit)
	if err != nil {
		return whereClause{}, err
	}
	return whereClause{Column: col.Name.Name.L, Op: op, Value: v}, nil
}

func operatorOf(op opcode.Op) (query.Operator, error) {
	switch op {
	case opcode.EQ:
		return query.Eq, nil
	case opcode.NE:
		return query.Ne, nil
	case opcode.LT:
		return query.Lt, nil
	case opcode.LE:
		return query.Le, nil
	case opcode.GT:
		return query.Gt, nil
	case opcode.GE:
		return query.Ge, nil
	default:
		return "", fmt.Errorf("unsupported operator %q", op.String())
	}
}

func valueOf(v ast.ValueExpr) (value.Value, error) {
	switch d := v.GetValue().(type) {
	case nil:
		return value.NewNull(), nil
	case int64:
		return value.NewInt(d), nil
	case uint64:
		return value.NewInt(int64(d)), nil
	case float64:
		return value.NewFloat(d), nil
	case string:
		return value.NewString(d), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported literal type %T", d)
	}
}

func demoDatabase() *catalog.Database {
	db := catalog.New(nil)
	s, err := schema.New([]schema.Column{
		{Name: "id", Type: schema.TypeInt},
		{Name: "name", Type: schema.TypeString},
		{Name: "age", Type: schema.TypeInt},
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
		{"id": 1, "name": "Alice", "age": 30, "active": true},
		{"id": 2, "name": "Bob", "age": 22, "active": false},
		{"id": 3, "name": "Carol", "age": 41, "active": true},
	}); err != nil {
		log.Fatal(err)
	}
	return db
}

// Package render formats query.Row results for console output. It is
// display-only plumbing for the cmd/ programs: it never feeds back into
// comparison or sort order, which stay defined purely in terms of
// value.Value (see SPEC_FULL.md §6.2).
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kasuganosora/memrel/query"
)

// Table writes rows as a tab-aligned table with locale-aware numeric
// formatting (thousands separators) to w, following the column order
// given in columns.
func Table(w io.Writer, columns []string, rows []query.Row, locale language.Tag) error {
	p := message.NewPrinter(locale)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, c := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		for i, c := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, format(p, row[c]))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func format(p *message.Printer, v interface{}) string {
	switch n := v.(type) {
	case int64:
		return p.Sprintf("%d", n)
	case float64:
		return p.Sprintf("%.2f", n)
	case nil:
		return "NULL"
	default:
		return fmt.Sprintf("%v", n)
	}
}

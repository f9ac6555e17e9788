package emit

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table writes one operand table per result.
func Table(w io.Writer, results []Result) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		t := table.NewWriter()
		t.SetOutputMirror(w)
		if r.Name != "" {
			t.SetTitle(r.Name)
		}

		t.AppendHeader(table.Row{"#", "Dir", "Constraint", "Expr", "Name"})
		index := 0
		for _, o := range r.Outputs {
			t.AppendRow(table.Row{fmt.Sprintf("$%d", index), "out", o.Constraint, o.Expr, o.Name})
			index++
		}
		for _, o := range r.Inputs {
			dir := "in"
			if o.Tied {
				dir = "in (tied)"
			}
			t.AppendRow(table.Row{fmt.Sprintf("$%d", index), dir, o.Constraint, o.Expr, o.Name})
			index++
		}

		t.AppendFooter(table.Row{"", "", "volatile", r.Volatile, ""})
		t.Render()

		fmt.Fprintf(w, "template: %q\n", r.Template)
	}
}

package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// Report collects the outcome of translating several constructs.
type Report struct {
	Translated int
	Issues     []Issue
}

// Add records a failure.
func (r *Report) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// OK reports whether every construct translated.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// WriteReport writes the issues and a per-kind summary.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Translated: %d  Failed: %d\n", r.Translated, len(r.Issues))
	fmt.Fprintln(w, separator)

	if r.OK() {
		return
	}

	for _, issue := range r.Issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
	fmt.Fprintln(w)

	byKind := lo.GroupBy(r.Issues, func(i Issue) string { return i.Kind })
	kinds := lo.Keys(byKind)
	sort.Strings(kinds)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Failures by kind")
	t.AppendHeader(table.Row{"Kind", "Count", "Constructs"})
	for _, kind := range kinds {
		issues := byKind[kind]
		names := lo.Uniq(lo.Map(issues, func(i Issue, _ int) string { return i.Construct }))
		t.AppendRow(table.Row{kind, len(issues), strings.Join(names, ", ")})
	}
	t.Render()
}

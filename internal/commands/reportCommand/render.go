package reportCommand

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	utils "github.com/redjax/sysprobe/internal/utils/convert"
	"github.com/redjax/sysprobe/internal/utils/strutils"
	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

// RenderDocument writes doc as a series of tables: a key/value table per
// document and a columnar table per document list, titled by their path in
// the report.
func RenderDocument(w io.Writer, doc *report.Document) {
	renderSection(w, "System", doc)
}

func renderSection(w io.Writer, title string, doc *report.Document) {
	type nestedDoc struct {
		title string
		doc   *report.Document
	}
	type nestedList struct {
		title string
		docs  []*report.Document
	}

	var scalars []report.Field
	var docs []nestedDoc
	var lists []nestedList

	for _, f := range doc.Fields() {
		childTitle := title + " / " + strutils.SplitCamelCase(f.Name)
		switch v := f.Value.(type) {
		case *report.Document:
			docs = append(docs, nestedDoc{title: childTitle, doc: v})
		case []*report.Document:
			lists = append(lists, nestedList{title: childTitle, docs: v})
		default:
			scalars = append(scalars, f)
		}
	}

	if len(scalars) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.SetTitle(title)
		for _, f := range scalars {
			t.AppendRow(table.Row{strutils.SplitCamelCase(f.Name), formatValue(f.Name, f.Value)})
		}
		t.Render()
	}

	for _, child := range docs {
		renderSection(w, child.title, child.doc)
	}
	for _, list := range lists {
		renderList(w, list.title, list.docs)
	}
}

// renderList prints a slice of documents as one table, one row per document.
// Columns are the union of the documents' field names in first-seen order,
// because suppression means no two rows are guaranteed the same shape.
func renderList(w io.Writer, title string, docs []*report.Document) {
	if len(docs) == 0 {
		return
	}

	var columns []string
	seen := map[string]bool{}
	for _, d := range docs {
		for _, f := range d.Fields() {
			if !seen[f.Name] {
				seen[f.Name] = true
				columns = append(columns, f.Name)
			}
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)

	header := make(table.Row, 0, len(columns))
	for _, col := range columns {
		header = append(header, strutils.SplitCamelCase(col))
	}
	t.AppendHeader(header)

	for _, d := range docs {
		row := make(table.Row, 0, len(columns))
		for _, col := range columns {
			if v, ok := d.Get(col); ok {
				row = append(row, formatValue(col, v))
			} else {
				row = append(row, "")
			}
		}
		t.AppendRow(row)
	}

	t.Render()
}

// formatValue renders a document value for a table cell. uint64 values are
// byte quantities throughout the report, so they get humanized.
func formatValue(name string, v any) string {
	switch x := v.(type) {
	case uint64:
		return utils.BytesToHumanReadable(x)
	case float64:
		return formatFloat(name, x)
	case float32:
		return formatFloat(name, float64(x))
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = formatFloat(name, f)
		}
		return strings.Join(parts, " ")
	case []string:
		return strings.Join(x, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(name string, f float64) string {
	if strings.Contains(strings.ToLower(name), "percent") {
		return fmt.Sprintf("%.1f%%", f)
	}
	return fmt.Sprintf("%.1f", f)
}

// Package render provides the default table renderer, backed by
// olekukonko/tablewriter. Importing it for side effects registers the
// renderer with tablefmt:
//
//	import _ "github.com/cartoworks/geolog/tablefmt/render"
package render

import (
	"bytes"

	"github.com/olekukonko/tablewriter"

	"github.com/cartoworks/geolog/tablefmt"
)

func init() {
	tablefmt.RegisterRenderer(TableWriter{})
}

// TableWriter renders a tablefmt.Table with ASCII borders.
type TableWriter struct{}

func (TableWriter) Render(t tablefmt.Table) (string, error) {
	var buf bytes.Buffer
	w := tablewriter.NewWriter(&buf)
	w.SetHeader(t.Header)
	w.AppendBulk(t.Rows)
	w.Render()
	return buf.String(), nil
}

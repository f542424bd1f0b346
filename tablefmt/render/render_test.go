package render

import (
	"strings"
	"testing"

	"github.com/cartoworks/geolog/tablefmt"
)

func TestImportRegistersRenderer(t *testing.T) {
	tbl := tablefmt.Table{
		Header: []string{"name", "count"},
		Rows: [][]string{
			{"input_data.csv", "120"},
			{"output_data", "118"},
		},
	}

	got, err := tablefmt.Format(tbl, "Row counts")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	if !strings.HasPrefix(got, "Row counts:\n") {
		t.Errorf("missing title line: %q", got)
	}
	for _, cell := range []string{"NAME", "COUNT", "input_data.csv", "118"} {
		if !strings.Contains(got, cell) {
			t.Errorf("rendered table missing %q:\n%s", cell, got)
		}
	}
	for i, line := range strings.Split(got, "\n")[1:] {
		if line != "" && !strings.HasPrefix(line, tablefmt.DefaultLinePrefix) {
			t.Errorf("line %d not indented: %q", i, line)
		}
	}
}

package tablefmt

import (
	"errors"
	"strings"
	"testing"
)

type stubRenderer struct {
	out string
	err error
}

func (s stubRenderer) Render(t Table) (string, error) {
	return s.out, s.err
}

func TestFormat_MissingRenderer(t *testing.T) {
	RegisterRenderer(nil)

	_, err := Format(Table{Header: []string{"a"}}, "title")
	if !errors.Is(err, ErrMissingRenderer) {
		t.Errorf("Format error = %v, want ErrMissingRenderer", err)
	}
}

func TestFormat_TitleAndIndentation(t *testing.T) {
	RegisterRenderer(stubRenderer{out: "name age\nada 36\n"})
	defer RegisterRenderer(nil)

	got, err := Format(Table{}, "Summary Statistics")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	want := "Summary Statistics:\n\t\tname age\n\t\tada 36"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatPrefixed_CustomPrefix(t *testing.T) {
	RegisterRenderer(stubRenderer{out: "one\ntwo"})
	defer RegisterRenderer(nil)

	got, err := FormatPrefixed(Table{}, "rows", "    ")
	if err != nil {
		t.Fatalf("FormatPrefixed returned error: %v", err)
	}
	if got != "rows:\n    one\n    two" {
		t.Errorf("FormatPrefixed = %q", got)
	}
}

func TestFormat_RendererError(t *testing.T) {
	rendererFailure := errors.New("render failed")
	RegisterRenderer(stubRenderer{err: rendererFailure})
	defer RegisterRenderer(nil)

	_, err := Format(Table{}, "broken")
	if !errors.Is(err, rendererFailure) {
		t.Errorf("Format error = %v, want the renderer's error", err)
	}
}

func TestFormat_PrefixOnEveryLine(t *testing.T) {
	RegisterRenderer(stubRenderer{out: "a\nb\nc\n"})
	defer RegisterRenderer(nil)

	got, err := Format(Table{}, "t")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	for i, line := range strings.Split(got, "\n")[1:] {
		if !strings.HasPrefix(line, DefaultLinePrefix) {
			t.Errorf("line %d missing prefix: %q", i, line)
		}
	}
}

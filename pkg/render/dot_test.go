package render

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	out := ToDOT(sentence())

	for _, want := range []string{
		"digraph tree {",
		`"root" [label="S"];`,
		`"root" -> "n0";`,
		`"n0" -> "n0.0";`,
		`"n0.0" [label="the", fillcolor=lightgrey];`,
		`"n1.0" [label="barks", fillcolor=lightgrey];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}

	// Internal nodes keep the default fill.
	if strings.Contains(out, `"n0" [label="NP", fillcolor=lightgrey];`) {
		t.Errorf("internal node rendered as leaf:\n%s", out)
	}
}

func TestToDOTLeafRoot(t *testing.T) {
	out := ToDOT("S")

	if !strings.Contains(out, `"root" [label="S", fillcolor=lightgrey];`) {
		t.Errorf("bare leaf not rendered as leaf:\n%s", out)
	}
	if strings.Contains(out, "->") {
		t.Errorf("bare leaf has edges:\n%s", out)
	}
}

package tree

import (
	"reflect"
	"testing"
)

type labeledTree struct {
	label string
	kids  []any
}

func (t labeledTree) Label() string   { return t.label }
func (t labeledTree) Children() []any { return t.kids }

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantLabel string
		wantKids  int
	}{
		{
			name:      "string leaf",
			input:     "dog",
			wantLabel: "dog",
			wantKids:  0,
		},
		{
			name:      "labeled interface",
			input:     labeledTree{label: "NP", kids: []any{"the", "dog"}},
			wantLabel: "NP",
			wantKids:  2,
		},
		{
			name:      "node struct",
			input:     Node{Text: "VP", Kids: []any{"barks"}},
			wantLabel: "VP",
			wantKids:  1,
		},
		{
			name:      "list head and children",
			input:     []any{"S", "NP", "VP"},
			wantLabel: "S",
			wantKids:  2,
		},
		{
			name:      "empty list",
			input:     []any{},
			wantLabel: "",
			wantKids:  0,
		},
		{
			name:      "string slice",
			input:     []string{"NP", "the", "dog"},
			wantLabel: "NP",
			wantKids:  2,
		},
		{
			name:      "fallback stringifies",
			input:     42,
			wantLabel: "42",
			wantKids:  0,
		},
		{
			name:      "list with non-string head",
			input:     []any{7, "a"},
			wantLabel: "7",
			wantKids:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, children := Split(tt.input)
			if label != tt.wantLabel {
				t.Errorf("Split() label = %q, want %q", label, tt.wantLabel)
			}
			if len(children) != tt.wantKids {
				t.Errorf("Split() children = %d, want %d", len(children), tt.wantKids)
			}
		})
	}
}

func TestSplitPriority(t *testing.T) {
	// A string must split as a leaf even though the fallback would also
	// accept it.
	label, children := Split("S")
	if label != "S" || children != nil {
		t.Errorf("Split(string) = (%q, %v), want leaf", label, children)
	}

	// A Labeled value must win over the fallback.
	label, _ = Split(labeledTree{label: "X"})
	if label != "X" {
		t.Errorf("Split(Labeled) label = %q, want X", label)
	}
}

func TestIsLeaf(t *testing.T) {
	if !IsLeaf("dog") {
		t.Error("IsLeaf(string) = false, want true")
	}
	if IsLeaf([]any{"NP", "the"}) {
		t.Error("IsLeaf(internal) = true, want false")
	}
	if !IsLeaf([]any{}) {
		t.Error("IsLeaf(empty list) = false, want true")
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"leaf", "S", 1},
		{"flat", []any{"S", "a", "b"}, 2},
		{"nested", []any{"S", []any{"NP", "the", "dog"}, "barks"}, 3},
		{"lopsided", []any{"S", []any{"A", []any{"B", "x"}}, "y"}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.input); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLeaves(t *testing.T) {
	in := []any{"S", []any{"NP", "the", "dog"}, []any{"VP", "barks"}}
	want := []string{"the", "dog", "barks"}

	if got := LeafLabels(in); !reflect.DeepEqual(got, want) {
		t.Errorf("LeafLabels() = %v, want %v", got, want)
	}

	// The sequence must be restartable.
	seq := Leaves(in)
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Errorf("Leaves() counts = %d then %d, want 3 both times", first, second)
	}

	// Early break must not panic or continue.
	count := 0
	for range seq {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Leaves() early break count = %d, want 1", count)
	}
}

func TestLeafCount(t *testing.T) {
	in := []any{"S", []any{"NP", "the", "dog"}, "barks"}
	// Three leaves, each 1+2.
	if got := LeafCount(in, 2); got != 9 {
		t.Errorf("LeafCount() = %d, want 9", got)
	}
	if got := LeafCount("x", 0); got != 1 {
		t.Errorf("LeafCount(leaf, 0) = %d, want 1", got)
	}
}

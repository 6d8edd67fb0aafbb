package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTreeModelFlatten(t *testing.T) {
	m := newTreeModel([]any{"S",
		[]any{"NP", "the", "dog"},
		[]any{"VP", "barks"},
	})

	wantLabels := []string{"S", "NP", "the", "dog", "VP", "barks"}
	if len(m.items) != len(wantLabels) {
		t.Fatalf("flattened %d items, want %d", len(m.items), len(wantLabels))
	}
	for i, want := range wantLabels {
		if m.items[i].label != want {
			t.Errorf("item %d label = %q, want %q", i, m.items[i].label, want)
		}
	}

	if m.items[0].path.String() != "" || m.items[0].leaf {
		t.Errorf("root item = %+v, want internal root", m.items[0])
	}
	if m.items[3].path.String() != "0.1" || !m.items[3].leaf {
		t.Errorf("dog item = %+v, want leaf at 0.1", m.items[3])
	}
	if m.leaves != 3 {
		t.Errorf("leaves = %d, want 3", m.leaves)
	}
}

func TestTreeModelNavigation(t *testing.T) {
	var m tea.Model = newTreeModel([]any{"S", "a", "b"})

	press := func(key string) {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}

	press("j")
	press("j")
	if got := m.(treeModel).cursor; got != 2 {
		t.Errorf("cursor = %d after two downs, want 2", got)
	}
	press("j")
	if got := m.(treeModel).cursor; got != 2 {
		t.Errorf("cursor = %d, want clamp at last item", got)
	}
	press("g")
	if got := m.(treeModel).cursor; got != 0 {
		t.Errorf("cursor = %d after g, want 0", got)
	}
	press("G")
	if got := m.(treeModel).cursor; got != 2 {
		t.Errorf("cursor = %d after G, want 2", got)
	}
}

func TestTreeModelView(t *testing.T) {
	m := newTreeModel([]any{"S", "a", "b"})

	out := m.View()
	for _, want := range []string{"S", "a", "b", "(root)"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

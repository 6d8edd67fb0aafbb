package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sanjibnarzary/svgling/pkg/tree"
)

// newViewCmd creates the view command: an interactive terminal browser
// for a bracket-notation tree.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file|-]",
		Short: "Browse a tree interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args[0])
			if err != nil {
				return err
			}
			t, err := tree.Parse(src)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newTreeModel(t))
			_, err = p.Run()
			return err
		},
	}
}

// nodeItem is one row in the flattened tree listing.
type nodeItem struct {
	label string
	path  tree.Path
	depth int
	leaf  bool
}

// treeModel is the bubbletea model for the tree browser.
type treeModel struct {
	items  []nodeItem
	leaves int
	cursor int
	offset int
	height int
}

// newTreeModel flattens the tree depth first into a navigable list.
func newTreeModel(t any) treeModel {
	m := treeModel{height: 15}
	m.flatten(t, tree.Path{}, 0)
	m.leaves = len(tree.LeafLabels(t))
	return m
}

func (m *treeModel) flatten(t any, p tree.Path, depth int) {
	label, children := tree.Split(t)
	m.items = append(m.items, nodeItem{
		label: strings.ReplaceAll(label, "\n", "⏎"),
		path:  append(tree.Path{}, p...),
		depth: depth,
		leaf:  len(children) == 0,
	})
	for i, c := range children {
		m.flatten(c, append(append(tree.Path{}, p...), i), depth+1)
	}
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g":
			m.cursor, m.offset = 0, 0
		case "G":
			m.cursor = len(m.items) - 1
			m.offset = max(0, m.cursor-m.height+1)
		}
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-5)
	}
	return m, nil
}

func (m treeModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("svgling tree browser"))
	b.WriteString(styleDim.Render(fmt.Sprintf("  %d nodes, %d leaves\n\n", len(m.items), m.leaves)))

	end := min(len(m.items), m.offset+m.height)
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		indent := strings.Repeat("  ", item.depth)
		line := indent + item.label
		switch {
		case i == m.cursor:
			b.WriteString(styleTitle.Render("› " + line))
		case item.leaf:
			b.WriteString("  " + styleDim.Render(line))
		default:
			b.WriteString("  " + styleValue.Render(line))
		}
		b.WriteString("\n")
	}

	sel := m.items[m.cursor]
	pathStr := sel.path.String()
	if pathStr == "" {
		pathStr = "(root)"
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("\npath %s · ↑/↓ move · q quit\n", pathStr)))
	return b.String()
}

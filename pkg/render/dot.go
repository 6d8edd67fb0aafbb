package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/sanjibnarzary/svgling/pkg/tree"
)

// ToDOT converts a tree-like value to Graphviz DOT format for node-link
// visualization. Internal nodes and leaves are both drawn as rounded
// boxes; leaves get a grey fill.
func ToDOT(t any) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeDOTNode(&buf, t, tree.Path{})

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOTNode emits one node and its edges, naming nodes by their path
// so repeated labels stay distinct.
func writeDOTNode(buf *bytes.Buffer, t any, p tree.Path) {
	label, children := tree.Split(t)
	id := dotID(p)
	if len(children) == 0 {
		fmt.Fprintf(buf, "  %q [label=%q, fillcolor=lightgrey];\n", id, label)
	} else {
		fmt.Fprintf(buf, "  %q [label=%q];\n", id, label)
	}
	for i, c := range children {
		childPath := append(append(tree.Path{}, p...), i)
		writeDOTNode(buf, c, childPath)
		fmt.Fprintf(buf, "  %q -> %q;\n", id, dotID(childPath))
	}
}

func dotID(p tree.Path) string {
	if len(p) == 0 {
		return "root"
	}
	return "n" + p.String()
}

// DOTToSVG renders a DOT graph to SVG using the embedded Graphviz engine.
func DOTToSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// DOTToPNG renders a DOT graph to PNG using the embedded Graphviz engine.
func DOTToPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

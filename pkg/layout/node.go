package layout

import "strings"

// NodePos holds the resolved geometry for a single tree node.
//
// X and Width are percentages of the immediate parent's coordinate box
// (before pass 2 runs, Width is still the raw em estimate). Y and Height
// are in ems. InnerWidth and InnerHeight keep the raw label estimates,
// unaffected by the minimum-width floor or row-height overrides, for
// alignment math.
type NodePos struct {
	Label       string
	X           float64
	Y           float64
	Width       float64
	Height      float64
	InnerWidth  float64
	InnerHeight float64
	Depth       int
}

// Lines returns the newline-delimited label lines, nil for an empty label.
func (n *NodePos) Lines() []string {
	if n.Label == "" {
		return nil
	}
	return strings.Split(n.Label, "\n")
}

// newNodePos estimates a node's size from its label. Multi-line labels
// take the widest line and one em of height per line. The width is
// floored to 1 to keep percentage math free of division by zero.
func newNodePos(label string, depth int, o Options) *NodePos {
	if label == "" {
		w := o.LabelWidth("")
		return &NodePos{X: 50, Width: max(w, 1), InnerWidth: w, Depth: depth}
	}
	lines := strings.Split(label, "\n")
	width := 0.0
	for _, line := range lines {
		width = max(width, o.LabelWidth(line))
	}
	height := float64(len(lines))
	return &NodePos{
		Label:       label,
		X:           50,
		Width:       max(width, 1),
		Height:      height,
		InnerWidth:  width,
		InnerHeight: height,
		Depth:       depth,
	}
}

// Subtree pairs a positioned node with its ordered children, mirroring
// the input tree's shape exactly.
type Subtree struct {
	Node     *NodePos
	Children []*Subtree
}

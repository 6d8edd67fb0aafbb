package layout

import (
	"github.com/sanjibnarzary/svgling/pkg/tree"
)

// Layout is a fully positioned tree plus the per-level aggregates needed
// to resolve absolute coordinates. It is built once by [New] and is
// immutable afterwards, except that annotation calls append to the
// annotation list and may grow the extra vertical space reserved below
// the tree.
//
// A Layout owns its state exclusively; it must not be shared across
// concurrent callers without external synchronization.
type Layout struct {
	opts         Options
	root         *Subtree
	levelHeights map[int]float64
	levelYs      map[int]float64
	maxWidth     float64
	depth        int
	extraY       float64
	annotations  []Annotation
	arrows       []arrowSpan
}

// New lays out a tree-like value. Decomposition of t is total, so New
// always succeeds; see [tree.Split] for the supported representations.
func New(t any, opts ...Option) *Layout {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Layout{
		opts:         o,
		levelHeights: make(map[int]float64),
		levelYs:      map[int]float64{0: 0},
		maxWidth:     1,
		extraY:       1.0,
		depth:        tree.Depth(t) - 1,
	}
	for i := 0; i <= l.depth; i++ {
		l.levelHeights[i] = 0
	}

	l.root = l.buildInitial(t, 0)
	l.calcLevelYs()
	l.maxWidth = l.root.Node.Width
	l.root.Node.Width = 100
	l.root.Node.X = 0
	l.normalizeWidths(l.root)
	l.normalizeY(l.root)
	return l
}

// buildInitial is pass 1: bottom-up width and height estimation, plus
// per-level height aggregation. Widths and heights are both in ems here.
func (l *Layout) buildInitial(t any, level int) *Subtree {
	label, children := tree.Split(t)

	// When leaf nodes align, every leaf contributes its height to the
	// deepest level rather than its structural depth.
	if len(children) == 0 && l.opts.LeafNodesAlign {
		level = l.depth
	}
	node := newNodePos(label, level, l.opts)
	l.levelHeights[level] = max(l.levelHeights[level], node.Height)

	st := &Subtree{Node: node, Children: make([]*Subtree, 0, len(children))}
	childSum := 0.0
	for _, c := range children {
		cs := l.buildInitial(c, level+1)
		st.Children = append(st.Children, cs)
		childSum += cs.Node.Width
	}
	// Wide enough for the label, and wide enough to span the children.
	node.Width = max(node.Width, childSum)
	return st
}

// subtreeProportions computes sibling width shares, normalized to sum
// to 100.
func (l *Layout) subtreeProportions(children []*Subtree) []float64 {
	if len(children) == 0 {
		return nil
	}
	shares := make([]float64, len(children))
	if l.opts.HorizSpacing == HorizEven {
		for i := range shares {
			shares[i] = 100.0 / float64(len(children))
		}
		return shares
	}
	sum := 0.0
	for i, c := range children {
		if l.opts.HorizSpacing == HorizText {
			shares[i] = c.Node.Width // precalculated in pass 1
		} else {
			shares[i] = float64(paddedLeafCount(c, l.opts.LeafPadding))
		}
		sum += shares[i]
	}
	for i := range shares {
		shares[i] = shares[i] * 100.0 / sum
	}
	return shares
}

// paddedLeafCount counts leaves beneath st, each as 1+padding.
func paddedLeafCount(st *Subtree, padding int) int {
	if len(st.Children) == 0 {
		return 1 + padding
	}
	sum := 0
	for _, c := range st.Children {
		sum += paddedLeafCount(c, padding)
	}
	return sum
}

// normalizeWidths is pass 2: top-down conversion of sibling widths into
// percentages of the parent box, with x offsets as running sums.
func (l *Layout) normalizeWidths(st *Subtree) {
	for _, c := range st.Children {
		l.normalizeWidths(c)
	}
	shares := l.subtreeProportions(st.Children)
	x := 0.0
	for i, c := range st.Children {
		c.Node.Width = shares[i]
		c.Node.X = x
		x += shares[i]
	}
}

// calcLevelYs computes each row's offset from the previous row. The gap
// is measured from the previous level's tallest label, so rows never
// overlap regardless of individual label heights.
func (l *Layout) calcLevelYs() {
	l.levelYs[0] = 0
	for i := 1; i <= l.depth; i++ {
		l.levelYs[i] = l.opts.LevelGap + l.levelHeights[i-1]
	}
}

// normalizeY is pass 3: row-relative vertical placement. Needs the level
// heights from pass 1, hence the separate walk.
func (l *Layout) normalizeY(st *Subtree) {
	node := st.Node
	if l.opts.VertAlign == AlignFull {
		node.Height = l.levelHeights[node.Depth]
	}
	top, _ := l.LabelYDodge(node.Depth, node.Height)
	node.Y = top
	for _, c := range st.Children {
		l.normalizeY(c)
	}
}

// LabelYDodge returns the top and bottom offsets that place a label of
// the given height within its row, according to the vertical alignment.
func (l *Layout) LabelYDodge(level int, height float64) (top, bottom float64) {
	switch l.opts.VertAlign {
	case AlignTop:
		return 0, l.levelHeights[level] - height
	case AlignBottom:
		return l.levelHeights[level] - height, 0
	case AlignCenter:
		d := (l.levelHeights[level] - height) / 2.0
		return d, d
	default: // AlignFull
		return 0, 0
	}
}

// Options returns the configuration the layout was built with.
func (l *Layout) Options() Options { return l.opts }

// Root returns the positioned tree. Callers must treat it as read-only.
func (l *Layout) Root() *Subtree { return l.root }

// TreeDepth returns the maximum node depth; the root is depth 0.
func (l *Layout) TreeDepth() int { return l.depth }

// LevelHeight returns the tallest label height at the given depth, in ems.
func (l *Layout) LevelHeight(depth int) float64 { return l.levelHeights[depth] }

// ExtraY returns the vertical space reserved below the tree, in ems.
func (l *Layout) ExtraY() float64 { return l.extraY }

// Width returns the estimated canvas width, in ems.
func (l *Layout) Width() float64 { return l.maxWidth }

// Height returns the total canvas height, in ems, including the space
// reserved for annotations below the tree.
func (l *Layout) Height() float64 {
	sum := 0.0
	for i := 0; i <= l.depth; i++ {
		sum += l.levelYs[i]
	}
	return sum + l.levelHeights[l.depth] + l.extraY
}

// YDistance returns the total vertical distance between two levels,
// starting from level a's containing box, in ems.
func (l *Layout) YDistance(a, b int) float64 {
	b = min(l.depth, b)
	sum := 0.0
	for i := a + 1; i <= b; i++ {
		sum += l.levelYs[i]
	}
	return sum
}

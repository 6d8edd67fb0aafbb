package layout

import (
	"github.com/sanjibnarzary/svgling/pkg/errors"
	"github.com/sanjibnarzary/svgling/pkg/tree"
)

// Bounds is an absolute bounding box. X and Width are percentages of the
// canvas, Y and Height are ems.
type Bounds struct {
	X, Y, Width, Height float64
}

// Walk returns the subtrees from the root to the node at path, inclusive.
// An out-of-range index at any step yields an INVALID_PATH error.
func (l *Layout) Walk(p tree.Path) ([]*Subtree, error) {
	nodes := make([]*Subtree, 0, len(p)+1)
	cur := l.root
	nodes = append(nodes, cur)
	for i, idx := range p {
		if idx < 0 || idx >= len(cur.Children) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "invalid tree path at index %d (child %d)", i, idx)
		}
		cur = cur.Children[idx]
		nodes = append(nodes, cur)
	}
	return nodes, nil
}

// Subtree returns the subtree rooted at path.
func (l *Layout) Subtree(p tree.Path) (*Subtree, error) {
	nodes, err := l.Walk(p)
	if err != nil {
		return nil, err
	}
	return nodes[len(nodes)-1], nil
}

// NodeXSpan resolves the absolute x position and width of the node at
// path, both as percentages of the canvas. Each level's box nests inside
// its parent's, so percentages compose multiplicatively down the walk.
func (l *Layout) NodeXSpan(p tree.Path) (left, width float64, err error) {
	nodes, err := l.Walk(p)
	if err != nil {
		return 0, 0, err
	}
	left, width = 0.0, 100.0
	for _, st := range nodes {
		left += st.Node.X * width / 100.0
		width = width * st.Node.Width / 100.0
	}
	return left, width, nil
}

// nmostPath descends from path by a fixed side (first or last child)
// until it reaches a leaf. The descent is bounded by the tree depth.
func (l *Layout) nmostPath(p tree.Path, last bool) (tree.Path, error) {
	st, err := l.Subtree(p)
	if err != nil {
		return nil, err
	}
	path := append(tree.Path{}, p...)
	for steps := 0; steps <= l.depth && len(st.Children) > 0; steps++ {
		i := 0
		if last {
			i = len(st.Children) - 1
		}
		st = st.Children[i]
		path = append(path, i)
	}
	return path, nil
}

// LeftmostPath returns the deepest path reachable from p by always
// taking the first child.
func (l *Layout) LeftmostPath(p tree.Path) (tree.Path, error) {
	return l.nmostPath(p, false)
}

// RightmostPath returns the deepest path reachable from p by always
// taking the last child.
func (l *Layout) RightmostPath(p tree.Path) (tree.Path, error) {
	return l.nmostPath(p, true)
}

// deepestLeafDepth returns the maximum depth among leaves beneath st.
func deepestLeafDepth(st *Subtree) int {
	if len(st.Children) == 0 {
		return st.Node.Depth
	}
	deepest := 0
	for _, c := range st.Children {
		deepest = max(deepest, deepestLeafDepth(c))
	}
	return deepest
}

// collectLeaves gathers the leaf nodes beneath st, left to right.
func collectLeaves(st *Subtree) []*NodePos {
	if len(st.Children) == 0 {
		return []*NodePos{st.Node}
	}
	var out []*NodePos
	for _, c := range st.Children {
		out = append(out, collectLeaves(c)...)
	}
	return out
}

// SubtreeBounds returns the absolute bounding box enclosing the node at
// path and its whole subtree: from the leftmost descendant's left edge to
// the rightmost descendant's right edge, and from the node's own top to
// the deepest descendant leaf's row bottom plus a small visual margin.
func (l *Layout) SubtreeBounds(p tree.Path) (Bounds, error) {
	parent, err := l.Subtree(p)
	if err != nil {
		return Bounds{}, err
	}
	deepest := deepestLeafDepth(parent)

	leftPath, err := l.LeftmostPath(p)
	if err != nil {
		return Bounds{}, err
	}
	rightPath, err := l.RightmostPath(p)
	if err != nil {
		return Bounds{}, err
	}
	x, _, err := l.NodeXSpan(leftPath)
	if err != nil {
		return Bounds{}, err
	}
	rx, rw, err := l.NodeXSpan(rightPath)
	if err != nil {
		return Bounds{}, err
	}

	return Bounds{
		X:      x,
		Y:      l.YDistance(0, parent.Node.Depth),
		Width:  rx + rw - x,
		Height: l.YDistance(parent.Node.Depth, deepest) + l.levelHeights[deepest] + 0.5,
	}, nil
}

// LeafSpan returns the contiguous left-to-right run of leaves delimited
// by two paths. The paths need not bound a constituent and may be given
// in either order; leaves beneath both paths are always included, so the
// result is non-empty.
func (l *Layout) LeafSpan(p1, p2 tree.Path) ([]*NodePos, error) {
	branch := tree.CommonAncestor(p1, p2)
	ancestor, err := l.Subtree(branch)
	if err != nil {
		return nil, err
	}
	st1, err := l.Subtree(p1)
	if err != nil {
		return nil, err
	}
	st2, err := l.Subtree(p2)
	if err != nil {
		return nil, err
	}

	all := collectLeaves(ancestor)
	leaves1 := collectLeaves(st1)
	leaves2 := collectLeaves(st2)

	i1, i2 := -1, -1
	for i, leaf := range all {
		if leaf == leaves1[0] {
			i1 = i
		}
		if leaf == leaves2[0] {
			i2 = i
		}
	}
	if i1 < 0 || i2 < 0 {
		return nil, errors.New(errors.ErrCodeInternal, "leaf span endpoints not found under common ancestor %q", branch)
	}

	var left, right int
	if i1 < i2 {
		left, right = i1, i2+len(leaves2)
	} else {
		left, right = i2, i1+len(leaves1)
	}
	return all[left:right], nil
}

// DeepestInterveningLeaf returns the maximum depth among the leaves in
// the span between two paths.
func (l *Layout) DeepestInterveningLeaf(p1, p2 tree.Path) (int, error) {
	span, err := l.LeafSpan(p1, p2)
	if err != nil {
		return 0, err
	}
	deepest := 0
	for _, leaf := range span {
		deepest = max(deepest, leaf.Depth)
	}
	return deepest, nil
}

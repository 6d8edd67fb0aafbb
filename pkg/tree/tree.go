package tree

import (
	"fmt"
	"iter"
)

// Labeled is implemented by tree values that carry an explicit label.
// nltk-style tree types map onto this interface directly.
type Labeled interface {
	// Label returns the node's display label.
	Label() string
	// Children returns the ordered child subtrees, empty for a leaf.
	Children() []any
}

// Node is a simple concrete tree representation satisfying [Labeled].
type Node struct {
	Text string
	Kids []any
}

// Label returns the node's display label.
func (n Node) Label() string { return n.Text }

// Children returns the ordered child subtrees, empty for a leaf.
func (n Node) Children() []any { return n.Kids }

// Split breaks a tree-like value into a label and an ordered slice of
// children. It never fails: values that match no specific representation
// are stringified and treated as leaves.
func Split(t any) (string, []any) {
	switch v := t.(type) {
	case string:
		return v, nil
	case Labeled:
		return v.Label(), v.Children()
	case []any:
		if len(v) == 0 {
			return "", nil
		}
		return coerceLabel(v[0]), v[1:]
	case []string:
		if len(v) == 0 {
			return "", nil
		}
		children := make([]any, len(v)-1)
		for i, s := range v[1:] {
			children[i] = s
		}
		return v[0], children
	default:
		return fmt.Sprint(t), nil
	}
}

// coerceLabel turns a head element into a label string. List heads are
// normally strings already; anything else gets the fallback treatment.
func coerceLabel(head any) string {
	if s, ok := head.(string); ok {
		return s
	}
	return fmt.Sprint(head)
}

// IsLeaf reports whether t has no children.
func IsLeaf(t any) bool {
	_, children := Split(t)
	return len(children) == 0
}

// Depth returns the maximum depth of t, counting a bare leaf as 1.
func Depth(t any) int {
	_, children := Split(t)
	sub := 0
	for _, c := range children {
		sub = max(sub, Depth(c))
	}
	return sub + 1
}

// Leaves returns a restartable left-to-right sequence of leaf labels.
func Leaves(t any) iter.Seq[string] {
	return func(yield func(string) bool) {
		walkLeaves(t, yield)
	}
}

func walkLeaves(t any, yield func(string) bool) bool {
	label, children := Split(t)
	if len(children) == 0 {
		return yield(label)
	}
	for _, c := range children {
		if !walkLeaves(c, yield) {
			return false
		}
	}
	return true
}

// LeafLabels collects the leaf sequence into a slice.
func LeafLabels(t any) []string {
	var out []string
	for l := range Leaves(t) {
		out = append(out, l)
	}
	return out
}

// LeafCount returns the padded leaf count of t: each leaf counts as
// 1+padding. Used by the NODES horizontal spacing policy.
func LeafCount(t any, padding int) int {
	_, children := Split(t)
	if len(children) == 0 {
		return 1 + padding
	}
	sum := 0
	for _, c := range children {
		sum += LeafCount(c, padding)
	}
	return sum
}

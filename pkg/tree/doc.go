// Package tree provides generic decomposition of tree-like values.
//
// Heterogeneous tree representations are treated uniformly through [Split],
// which breaks any value into a (label, children) pair. Supported
// representations, tried in priority order:
//
//  1. string — a leaf node
//  2. [Labeled] — any type exposing Label() and Children()
//  3. []any — lisp-style list: head is the label, rest are children
//  4. []string — same convention for flat string lists
//  5. anything else — stringified via fmt.Sprint and treated as a leaf
//
// The ordering matters: a value satisfying an earlier rule never falls
// through to a later, less precise one, and the final fallback always
// succeeds, so decomposition is total.
//
// Nodes are addressed by [Path] values (sequences of child indices from
// the root), and [Parse] reads the bracket notation used by the CLI:
//
//	t, err := tree.Parse("[S [NP the dog] [VP barks]]")
package tree

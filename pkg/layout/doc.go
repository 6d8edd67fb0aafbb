// Package layout computes two-dimensional constituent-tree layouts.
//
// # Overview
//
// The engine turns any tree-like value (see [tree.Split]) into a positioned
// tree without ever measuring rendered glyphs. Horizontal positions are
// percentages of the immediate parent's coordinate box, vertical positions
// are text-relative em units; label sizes come from a configurable
// character-count heuristic. Because percentages compose multiplicatively
// through the nesting, the result stays correct for whatever font the
// renderer ends up using.
//
// # Three passes
//
//  1. Bottom-up metrics: estimate label widths and heights, aggregate the
//     per-level maximum heights.
//  2. Top-down width normalization: convert sibling widths into
//     percentages according to the configured [HorizSpacing] policy.
//  3. Vertical placement: compute per-level y offsets from the previous
//     level's tallest label and each node's dodge within its row per
//     [VertAlign].
//
// # Usage
//
//	l := layout.New(t, layout.WithHorizSpacing(layout.HorizEven))
//	_ = l.BoxConstituent(tree.Path{0}, layout.DefaultBoxStyle())
//	svg := render.SVG(l)
//
// Annotations (constituent boxes, underlines, movement arrows) address
// nodes by [tree.Path] values; an out-of-range index surfaces an
// INVALID_PATH error and leaves the layout untouched.
//
// A Layout is a pure function of its input tree and options. Instances
// are not safe for concurrent use; give each goroutine its own.
package layout

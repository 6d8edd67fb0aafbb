// Package render emits markup for positioned tree layouts.
//
// # SVG emission
//
// [SVG] walks a [layout.Layout] once and produces the nested-viewport SVG
// document: every subtree gets its own percentage-scaled <svg> box, labels
// sit at (50%, n em) within their box, and connector lines run from each
// parent's label bottom to its children's top anchors. Annotations are
// appended after the tree in the order they were added.
//
//	l := layout.New(t)
//	markup := render.SVG(l)
//
// Any renderer that understands percentage-relative nested viewports and
// em lengths (browsers, notebook front ends) can display the result
// without pre-measuring text.
//
// # Node-link diagrams
//
// [ToDOT] exports the input tree as a Graphviz node-link diagram, and
// [DOTToSVG] / [DOTToPNG] rasterize DOT through the embedded Graphviz
// engine. Useful when a conventional boxes-and-arrows view is wanted
// instead of the linguistic tree form.
package render

// Package svg provides the drawing primitives used to emit tree markup.
//
// The layout engine positions nodes in two renderer-independent unit
// systems: percentages of the immediate parent viewport for x/width, and
// text-relative em units for y/height. This package mirrors that contract
// with [Perc] and [Em] lengths and a nested [Container] element that maps
// onto nested <svg> viewports, so no glyph measurement is ever needed.
//
// Elements serialize through [Drawing.Bytes]; the package performs no
// layout logic of its own.
package svg

package svg

import (
	"bytes"
	"fmt"
	"strings"
)

// Length is a formatted SVG length value ("50%", "2em", "14").
type Length string

// Em formats a text-relative em length.
func Em(n float64) Length { return Length(fmt.Sprintf("%gem", n)) }

// Perc formats a percentage length relative to the enclosing viewport.
func Perc(n float64) Length { return Length(fmt.Sprintf("%g%%", n)) }

// Num formats a unitless user-space length.
func Num(n float64) Length { return Length(fmt.Sprintf("%g", n)) }

// Element is any drawable SVG fragment.
type Element interface {
	write(buf *bytes.Buffer, indent int)
}

// Container is a nested <svg> viewport. Children positioned in
// percentages are relative to this container's box, which is how the
// layout engine composes coordinates without absolute positions.
type Container struct {
	X, Y, Width Length
	children    []Element
}

// NewContainer creates a nested viewport at the given position and width.
func NewContainer(x, y, width Length) *Container {
	return &Container{X: x, Y: y, Width: width}
}

// Append adds a child element in draw order.
func (c *Container) Append(elems ...Element) {
	c.children = append(c.children, elems...)
}

func (c *Container) write(buf *bytes.Buffer, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%s<svg x=%q y=%q width=%q>\n", pad, c.X, c.Y, c.Width)
	for _, child := range c.children {
		child.write(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s</svg>\n", pad)
}

// Text is a single text run. Anchor controls horizontal alignment
// relative to X ("middle" centers the run).
type Text struct {
	Content string
	X, Y    Length
	Anchor  string
}

func (t Text) write(buf *bytes.Buffer, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%s<text x=%q y=%q", pad, t.X, t.Y)
	if t.Anchor != "" {
		fmt.Fprintf(buf, " text-anchor=%q", t.Anchor)
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeText(t.Content))
}

// Line is a stroked line segment.
type Line struct {
	X1, Y1, X2, Y2 Length
	Stroke         string // defaults to black
	StrokeWidth    string // optional, e.g. "0.5pt"
	StrokeOpacity  float64
}

func (l Line) write(buf *bytes.Buffer, indent int) {
	stroke := l.Stroke
	if stroke == "" {
		stroke = "black"
	}
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%s<line x1=%q y1=%q x2=%q y2=%q stroke=%q", pad, l.X1, l.Y1, l.X2, l.Y2, stroke)
	if l.StrokeWidth != "" {
		fmt.Fprintf(buf, " stroke-width=%q", l.StrokeWidth)
	}
	if l.StrokeOpacity > 0 && l.StrokeOpacity < 1 {
		fmt.Fprintf(buf, " stroke-opacity=\"%g\"", l.StrokeOpacity)
	}
	buf.WriteString(" />\n")
}

// Rect is a rectangle with optional corner rounding and fill opacity.
type Rect struct {
	X, Y, W, H  Length
	Fill        string // defaults to none
	FillOpacity float64
	Stroke      string
	StrokeWidth string
	Rx, Ry      string
}

func (r Rect) write(buf *bytes.Buffer, indent int) {
	fill := r.Fill
	if fill == "" {
		fill = "none"
	}
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%s<rect x=%q y=%q width=%q height=%q fill=%q", pad, r.X, r.Y, r.W, r.H, fill)
	if r.FillOpacity > 0 && r.FillOpacity < 1 {
		fmt.Fprintf(buf, " fill-opacity=\"%g\"", r.FillOpacity)
	}
	if r.Stroke != "" {
		fmt.Fprintf(buf, " stroke=%q", r.Stroke)
	}
	if r.StrokeWidth != "" {
		fmt.Fprintf(buf, " stroke-width=%q", r.StrokeWidth)
	}
	if r.Rx != "" {
		fmt.Fprintf(buf, " rx=%q", r.Rx)
	}
	if r.Ry != "" {
		fmt.Fprintf(buf, " ry=%q", r.Ry)
	}
	buf.WriteString(" />\n")
}

// Drawing is the top-level canvas.
type Drawing struct {
	Width, Height Length
	Style         string // inline CSS applied to the root element
	children      []Element
}

// NewDrawing creates a canvas of the given size.
func NewDrawing(width, height Length, style string) *Drawing {
	return &Drawing{Width: width, Height: height, Style: style}
}

// Append adds top-level elements in draw order.
func (d *Drawing) Append(elems ...Element) {
	d.children = append(d.children, elems...)
}

// Bytes serializes the drawing to SVG markup.
func (d *Drawing) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=%q height=%q", d.Width, d.Height)
	if d.Style != "" {
		fmt.Fprintf(&buf, " style=%q", d.Style)
	}
	buf.WriteString(">\n")
	for _, child := range d.children {
		child.write(&buf, 1)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// String serializes the drawing to SVG markup.
func (d *Drawing) String() string {
	return string(d.Bytes())
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

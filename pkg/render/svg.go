package render

import (
	"github.com/sanjibnarzary/svgling/pkg/layout"
	"github.com/sanjibnarzary/svgling/pkg/svg"
)

// appender is satisfied by both the drawing canvas and nested containers.
type appender interface {
	Append(elems ...svg.Element)
}

// SVG renders a layout to SVG markup.
func SVG(l *layout.Layout) []byte {
	return Drawing(l).Bytes()
}

// Drawing builds the SVG document for a layout: the optional debug grid,
// the recursive tree walk, then the annotations in insertion order.
func Drawing(l *layout.Layout) *svg.Drawing {
	o := l.Options()
	width := l.Width()
	height := l.Height()

	d := svg.NewDrawing(svg.Em(width), svg.Em(height), o.FontStyle)
	if o.Debug {
		addDebugGrid(d, width, height)
	}
	addSubtree(l, d, l.Root())
	for _, a := range l.Annotations() {
		d.Append(annotationElements(a)...)
	}
	return d
}

// addSubtree emits one node's label, its children's nested viewports, and
// the connector lines, then recurses into each child's viewport.
func addSubtree(l *layout.Layout, parent appender, st *layout.Subtree) {
	o := l.Options()
	node := st.Node

	lineStart := node.Y + node.Height
	if node.Height > 0 {
		lineStart += 0.2 // room for descenders
	}
	parent.Append(labelElement(node))

	for _, c := range st.Children {
		boxY := l.YDistance(node.Depth, c.Node.Depth)
		yTarget := boxY + c.Node.Y
		xTarget := c.Node.X + c.Node.Width/2

		child := svg.NewContainer(svg.Perc(c.Node.X), svg.Em(boxY), svg.Perc(c.Node.Width))
		if o.Debug {
			child.Append(svg.Rect{
				X: svg.Perc(0), Y: svg.Perc(0),
				W: svg.Perc(100), H: svg.Perc(100),
				Stroke: "red",
			})
		}
		parent.Append(child)

		if c.Node.Depth > node.Depth+1 && !o.DescendDirect {
			// A level is being skipped: angle to the height an empty node
			// on the next level would have, then drop straight down.
			top, _ := l.LabelYDodge(node.Depth+1, 0)
			intermediateY := top + l.YDistance(node.Depth, node.Depth+1)
			parent.Append(
				svg.Line{
					X1: svg.Perc(50), Y1: svg.Em(lineStart),
					X2: svg.Perc(xTarget), Y2: svg.Em(intermediateY),
				},
				svg.Line{
					X1: svg.Perc(xTarget), Y1: svg.Em(intermediateY),
					X2: svg.Perc(xTarget), Y2: svg.Em(yTarget),
				},
			)
		} else {
			parent.Append(svg.Line{
				X1: svg.Perc(50), Y1: svg.Em(lineStart),
				X2: svg.Perc(xTarget), Y2: svg.Em(yTarget),
			})
		}

		addSubtree(l, child, c)
	}
}

// labelElement wraps a node's label lines in a full-width container
// positioned at the node's row dodge. Lines are centered at 50% and
// stacked one em apart.
func labelElement(node *layout.NodePos) svg.Element {
	box := svg.NewContainer(svg.Num(0), svg.Em(node.Y), svg.Perc(100))
	for i, line := range node.Lines() {
		box.Append(svg.Text{
			Content: line,
			X:       svg.Perc(50),
			Y:       svg.Em(float64(i + 1)),
			Anchor:  "middle",
		})
	}
	return box
}

// addDebugGrid overlays a border and a uniform one-em grid.
func addDebugGrid(d *svg.Drawing, width, height float64) {
	d.Append(svg.Rect{
		X: svg.Num(0), Y: svg.Num(0),
		W: svg.Perc(100), H: svg.Perc(100),
		Stroke: "lightgray",
	})
	for i := 1; i < int(width); i++ {
		d.Append(svg.Line{
			X1: svg.Em(float64(i)), Y1: svg.Num(0),
			X2: svg.Em(float64(i)), Y2: svg.Perc(100),
			Stroke: "lightgray",
		})
	}
	for i := 1; i < int(height); i++ {
		d.Append(svg.Line{
			X1: svg.Num(0), Y1: svg.Em(float64(i)),
			X2: svg.Perc(100), Y2: svg.Em(float64(i)),
			Stroke: "lightgray",
		})
	}
}

// annotationElements converts a resolved annotation to its SVG shapes.
func annotationElements(a layout.Annotation) []svg.Element {
	switch v := a.(type) {
	case layout.BoxAnnotation:
		return []svg.Element{svg.Rect{
			X: svg.Perc(v.Bounds.X), Y: svg.Em(v.Bounds.Y),
			W: svg.Perc(v.Bounds.Width), H: svg.Em(v.Bounds.Height),
			Fill:        v.Style.Fill,
			FillOpacity: v.Style.FillOpacity,
			Stroke:      v.Style.Stroke,
			StrokeWidth: v.Style.StrokeWidth,
			Rx:          v.Style.Rounding,
			Ry:          v.Style.Rounding,
		}}
	case layout.UnderlineAnnotation:
		y := svg.Em(v.Bounds.Y + v.Bounds.Height)
		return []svg.Element{svg.Line{
			X1: svg.Perc(v.Bounds.X), Y1: y,
			X2: svg.Perc(v.Bounds.X + v.Bounds.Width), Y2: y,
			Stroke:        v.Style.Stroke,
			StrokeWidth:   v.Style.StrokeWidth,
			StrokeOpacity: v.Style.Opacity,
		}}
	case layout.ArrowAnnotation:
		stroke := v.Style.Stroke
		width := v.Style.StrokeWidth
		line := func(x1, y1, x2, y2 float64) svg.Element {
			return svg.Line{
				X1: svg.Perc(x1), Y1: svg.Em(y1),
				X2: svg.Perc(x2), Y2: svg.Em(y2),
				Stroke: stroke, StrokeWidth: width,
			}
		}
		return []svg.Element{
			line(v.X1, v.StartY, v.X1, v.CrossY),
			line(v.X1, v.CrossY, v.X2, v.CrossY),
			line(v.X2, v.CrossY, v.X2, v.EndY),
			// arrowhead strokes
			line(v.X2, v.EndY, v.X2+1, v.EndY+0.45),
			line(v.X2, v.EndY, v.X2-1, v.EndY+0.45),
		}
	default:
		return nil
	}
}

package layout

import (
	"math"

	"github.com/sanjibnarzary/svgling/pkg/tree"
)

// BoxStyle controls constituent box appearance.
type BoxStyle struct {
	Stroke      string
	StrokeWidth string
	Fill        string
	FillOpacity float64
	Rounding    string
}

// DefaultBoxStyle returns a translucent gray rounded box.
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{
		Stroke:      "none",
		StrokeWidth: "0.5pt",
		Fill:        "gray",
		FillOpacity: 0.15,
		Rounding:    "5pt",
	}
}

// LineStyle controls underline and arrow strokes.
type LineStyle struct {
	Stroke      string
	StrokeWidth string
	Opacity     float64
}

// DefaultLineStyle returns a thin black stroke.
func DefaultLineStyle() LineStyle {
	return LineStyle{Stroke: "black", StrokeWidth: "0.5pt", Opacity: 1.0}
}

// Annotation is a derived overlay shape with resolved absolute geometry.
// Annotations are stored in the order they were added, which affects only
// draw order, never layout.
type Annotation interface {
	annotation()
}

// BoxAnnotation is a rounded box around a constituent.
type BoxAnnotation struct {
	Bounds Bounds
	Style  BoxStyle
}

// UnderlineAnnotation is a line under a constituent's bounding box.
type UnderlineAnnotation struct {
	Bounds Bounds
	Style  LineStyle
}

// ArrowAnnotation is a three-segment movement arrow routed at CrossY,
// from (X1, StartY) down, across, and back up to (X2, EndY), with a small
// arrowhead at the destination. X values are canvas percentages, Y values
// ems.
type ArrowAnnotation struct {
	X1, StartY float64
	X2, EndY   float64
	CrossY     float64
	Style      LineStyle
}

func (BoxAnnotation) annotation()       {}
func (UnderlineAnnotation) annotation() {}
func (ArrowAnnotation) annotation()     {}

// Annotations returns the overlay shapes in the order they were added.
func (l *Layout) Annotations() []Annotation { return l.annotations }

// BoxConstituent draws a box around the subtree at path.
func (l *Layout) BoxConstituent(p tree.Path, style BoxStyle) error {
	b, err := l.SubtreeBounds(p)
	if err != nil {
		return err
	}
	l.annotations = append(l.annotations, BoxAnnotation{Bounds: b, Style: style})
	return nil
}

// UnderlineConstituent underlines the subtree at path.
func (l *Layout) UnderlineConstituent(p tree.Path, style LineStyle) error {
	b, err := l.SubtreeBounds(p)
	if err != nil {
		return err
	}
	l.annotations = append(l.annotations, UnderlineAnnotation{Bounds: b, Style: style})
	return nil
}

// arrowSpan records a placed arrow's horizontal span and height for
// collision avoidance.
type arrowSpan struct {
	x1, x2, y float64
}

// findArrowY finds a free height for an arrow spanning [x1, x2], starting
// at y and moving down the page in half-em steps while the span collides
// with an already placed arrow. Greedy and order dependent: arrows added
// later can be pushed arbitrarily far down, so add them in a stable,
// intentional order.
func (l *Layout) findArrowY(x1, x2, y float64) float64 {
	for {
		collided := false
		for _, a := range l.arrows {
			if isClose(y, a.y) && (x1 < a.x2 || x2 > a.x1) {
				collided = true
				break
			}
		}
		if !collided {
			break
		}
		y += 0.5
	}
	l.arrows = append(l.arrows, arrowSpan{x1: x1, x2: x2, y: y})
	return y
}

// isClose compares with a relative tolerance of 1e-9, which the
// collision heuristic relies on to treat accumulated half-em bumps as
// landing on the same row.
func isClose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

// MovementArrow draws a drop-cross-rise connector from the bottom center
// of the subtree at p1 to the bottom center of the subtree at p2. The
// crossing segment is routed below the deepest leaf in the span between
// the two paths, so the arrow never crosses tree structure, and collides
// with no previously placed arrow. Adding an arrow reserves extra
// vertical canvas space.
func (l *Layout) MovementArrow(p1, p2 tree.Path, style LineStyle) error {
	b1, err := l.SubtreeBounds(p1)
	if err != nil {
		return err
	}
	b2, err := l.SubtreeBounds(p2)
	if err != nil {
		return err
	}
	yDepth, err := l.DeepestInterveningLeaf(p1, p2)
	if err != nil {
		return err
	}

	x1 := b1.X + b1.Width/2
	y1 := b1.Y + b1.Height
	x2 := b2.X + b2.Width/2
	y2 := b2.Y + b2.Height

	crossY := l.YDistance(0, yDepth) + l.levelHeights[yDepth] + 1.2
	crossY = l.findArrowY(math.Min(x1, x2), math.Max(x1, x2), crossY)
	l.extraY = math.Max(l.extraY, 2)

	l.annotations = append(l.annotations, ArrowAnnotation{
		X1: x1, StartY: y1,
		X2: x2, EndY: y2,
		CrossY: crossY,
		Style:  style,
	})
	return nil
}

package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/sanjibnarzary/svgling/pkg/errors"
)

// HorizSpacing selects how sibling widths are apportioned.
type HorizSpacing int

const (
	// HorizText spaces siblings proportional to estimated label width.
	// Usually looks best for trees with real node labels, so it is the
	// default.
	HorizText HorizSpacing = iota
	// HorizEven spaces siblings evenly.
	HorizEven
	// HorizNodes spaces siblings proportional to their leaf counts.
	HorizNodes
)

// String returns the spacing policy name.
func (h HorizSpacing) String() string {
	switch h {
	case HorizEven:
		return "even"
	case HorizNodes:
		return "nodes"
	default:
		return "text"
	}
}

// UnmarshalText parses a spacing policy name, for TOML and flag decoding.
func (h *HorizSpacing) UnmarshalText(text []byte) error {
	v, err := ParseHorizSpacing(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// ParseHorizSpacing parses a spacing policy name.
func ParseHorizSpacing(s string) (HorizSpacing, error) {
	switch strings.ToLower(s) {
	case "text":
		return HorizText, nil
	case "even":
		return HorizEven, nil
	case "nodes":
		return HorizNodes, nil
	}
	return HorizText, errors.New(errors.ErrCodeInvalidOption, "unknown horizontal spacing %q (want text, even, or nodes)", s)
}

// VertAlign selects how a node's label sits within its row.
type VertAlign int

const (
	// AlignCenter centers labels within the row height. Default.
	AlignCenter VertAlign = iota
	// AlignTop aligns labels to the top of the row.
	AlignTop
	// AlignBottom aligns labels to the bottom of the row.
	AlignBottom
	// AlignFull stretches every label to the full row height.
	AlignFull
)

// String returns the alignment name.
func (v VertAlign) String() string {
	switch v {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignFull:
		return "full"
	default:
		return "center"
	}
}

// UnmarshalText parses an alignment name, for TOML and flag decoding.
func (v *VertAlign) UnmarshalText(text []byte) error {
	a, err := ParseVertAlign(string(text))
	if err != nil {
		return err
	}
	*v = a
	return nil
}

// ParseVertAlign parses an alignment name.
func ParseVertAlign(s string) (VertAlign, error) {
	switch strings.ToLower(s) {
	case "top":
		return AlignTop, nil
	case "center":
		return AlignCenter, nil
	case "bottom":
		return AlignBottom, nil
	case "full":
		return AlignFull, nil
	}
	return AlignCenter, errors.New(errors.ErrCodeInvalidOption, "unknown vertical alignment %q (want top, center, bottom, or full)", s)
}

// DefaultFontStyle is the inline CSS applied to the drawing canvas.
const DefaultFontStyle = "font-family: times, serif; font-weight: normal; font-style: normal; font-size: 12pt;"

// Options configures a layout. The zero value is not useful; start from
// [DefaultOptions] or use the With* functional options on [New]. An
// Options value is read-only during layout and never mutated afterwards.
type Options struct {
	// HorizSpacing is the sibling width policy.
	HorizSpacing HorizSpacing
	// VertAlign positions labels within their row.
	VertAlign VertAlign
	// LeafPadding widens every label estimate by this many characters.
	LeafPadding int
	// LevelGap is the vertical distance between tree levels, in ems.
	LevelGap float64
	// LeafNodesAlign forces all leaves onto the deepest level.
	LeafNodesAlign bool
	// AverageGlyphWidth is the heuristic characters-per-em ratio.
	AverageGlyphWidth float64
	// DescendDirect draws multi-level connectors as one diagonal line
	// instead of an angled segment followed by a vertical drop.
	DescendDirect bool
	// Debug overlays a uniform em grid on the drawing.
	Debug bool
	// FontStyle is the inline CSS for the drawing canvas.
	FontStyle string
}

// DefaultOptions returns the standard layout configuration.
func DefaultOptions() Options {
	return Options{
		HorizSpacing: HorizText,
		VertAlign:    AlignCenter,
		LeafPadding:  2,
		LevelGap:     2,
		// Roughly two characters per em; a heuristic, not a measurement.
		AverageGlyphWidth: 2.0,
		DescendDirect:     true,
		FontStyle:         DefaultFontStyle,
	}
}

// LabelWidth estimates the width of a single-line label, in ems.
func (o Options) LabelWidth(label string) float64 {
	return float64(utf8.RuneCountInString(label)+o.LeafPadding) / o.AverageGlyphWidth
}

// Option mutates layout configuration before the layout is computed.
type Option func(*Options)

// WithOptions replaces the whole configuration at once.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithHorizSpacing sets the sibling width policy.
func WithHorizSpacing(h HorizSpacing) Option {
	return func(o *Options) { o.HorizSpacing = h }
}

// WithVertAlign sets the label alignment within rows.
func WithVertAlign(v VertAlign) Option {
	return func(o *Options) { o.VertAlign = v }
}

// WithLeafPadding sets the per-label character padding.
func WithLeafPadding(n int) Option {
	return func(o *Options) { o.LeafPadding = n }
}

// WithLevelGap sets the vertical distance between levels, in ems.
func WithLevelGap(gap float64) Option {
	return func(o *Options) { o.LevelGap = gap }
}

// WithAlignedLeaves forces all leaves onto the deepest level.
func WithAlignedLeaves() Option {
	return func(o *Options) { o.LeafNodesAlign = true }
}

// WithAverageGlyphWidth sets the characters-per-em heuristic.
func WithAverageGlyphWidth(w float64) Option {
	return func(o *Options) { o.AverageGlyphWidth = w }
}

// WithSteppedDescent draws level-skipping connectors as an angled segment
// to the next row followed by a vertical drop, instead of one diagonal.
func WithSteppedDescent() Option {
	return func(o *Options) { o.DescendDirect = false }
}

// WithDebug overlays the debug grid.
func WithDebug() Option {
	return func(o *Options) { o.Debug = true }
}

// WithFontStyle sets the canvas inline CSS.
func WithFontStyle(style string) Option {
	return func(o *Options) { o.FontStyle = style }
}

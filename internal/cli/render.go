package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sanjibnarzary/svgling/pkg/errors"
	"github.com/sanjibnarzary/svgling/pkg/layout"
	"github.com/sanjibnarzary/svgling/pkg/render"
	"github.com/sanjibnarzary/svgling/pkg/tree"
)

const (
	formatSVG = "svg" // nested-viewport tree markup
	formatDOT = "dot" // Graphviz node-link source
	formatPNG = "png" // node-link raster via embedded Graphviz
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path, empty for stdout
	format      string   // svg, dot, or png
	configPath  string   // TOML options file
	spacing     string   // horizontal spacing policy
	align       string   // vertical alignment
	leafPadding int      // label padding in characters
	levelGap    float64  // distance between levels in ems
	glyphWidth  float64  // characters-per-em heuristic
	alignLeaves bool     // force leaves onto the deepest level
	stepped     bool     // stepped connectors on level skips
	debugGrid   bool     // overlay the em grid
	fontStyle   string   // canvas inline CSS
	boxes       []string // constituent paths to box, dotted notation
	underlines  []string // constituent paths to underline
	arrows      []string // movement arrows as "from:to" path pairs
}

// newRenderCmd creates the render command. Trees are read in bracket
// notation from a file or stdin ("-"), laid out, optionally annotated,
// and written as SVG, DOT, or PNG.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format:      formatSVG,
		leafPadding: 2,
		levelGap:    2,
		glyphWidth:  2.0,
	}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a bracket-notation tree to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layoutOpts, err := resolveOptions(cmd, &opts)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts, layoutOpts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML options file")
	cmd.Flags().StringVar(&opts.spacing, "spacing", "text", "horizontal spacing: text, even, nodes")
	cmd.Flags().StringVar(&opts.align, "align", "center", "vertical alignment: top, center, bottom, full")
	cmd.Flags().IntVar(&opts.leafPadding, "leaf-padding", opts.leafPadding, "label padding in characters")
	cmd.Flags().Float64Var(&opts.levelGap, "level-gap", opts.levelGap, "distance between levels in ems")
	cmd.Flags().Float64Var(&opts.glyphWidth, "glyph-width", opts.glyphWidth, "average characters per em")
	cmd.Flags().BoolVar(&opts.alignLeaves, "align-leaves", false, "force all leaves onto the deepest level")
	cmd.Flags().BoolVar(&opts.stepped, "stepped", false, "draw stepped connectors on level skips")
	cmd.Flags().BoolVar(&opts.debugGrid, "debug-grid", false, "overlay the em grid")
	cmd.Flags().StringVar(&opts.fontStyle, "font-style", "", "inline CSS for the canvas")
	cmd.Flags().StringArrayVar(&opts.boxes, "box", nil, "box the constituent at a dotted path (repeatable)")
	cmd.Flags().StringArrayVar(&opts.underlines, "underline", nil, "underline the constituent at a dotted path (repeatable)")
	cmd.Flags().StringArrayVar(&opts.arrows, "arrow", nil, "movement arrow between two dotted paths, \"from:to\" (repeatable)")

	return cmd
}

// resolveOptions builds the layout options with flag > file > default
// precedence: defaults first, then the config file, then any flag the
// user actually set.
func resolveOptions(cmd *cobra.Command, opts *renderOpts) (layout.Options, error) {
	o := layout.DefaultOptions()

	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return o, err
		}
		cfg.apply(&o)
	}

	flags := cmd.Flags()
	if flags.Changed("spacing") {
		h, err := layout.ParseHorizSpacing(opts.spacing)
		if err != nil {
			return o, err
		}
		o.HorizSpacing = h
	}
	if flags.Changed("align") {
		v, err := layout.ParseVertAlign(opts.align)
		if err != nil {
			return o, err
		}
		o.VertAlign = v
	}
	if flags.Changed("leaf-padding") {
		o.LeafPadding = opts.leafPadding
	}
	if flags.Changed("level-gap") {
		o.LevelGap = opts.levelGap
	}
	if flags.Changed("glyph-width") {
		o.AverageGlyphWidth = opts.glyphWidth
	}
	if flags.Changed("align-leaves") {
		o.LeafNodesAlign = opts.alignLeaves
	}
	if flags.Changed("stepped") {
		o.DescendDirect = !opts.stepped
	}
	if flags.Changed("debug-grid") {
		o.Debug = opts.debugGrid
	}
	if flags.Changed("font-style") {
		o.FontStyle = opts.fontStyle
	}
	return o, nil
}

// runRender reads, lays out, annotates, and writes one tree.
func runRender(ctx context.Context, input string, opts *renderOpts, layoutOpts layout.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	src, err := readInput(input)
	if err != nil {
		return err
	}
	t, err := tree.Parse(src)
	if err != nil {
		return err
	}
	logger.Debug("parsed tree", "depth", tree.Depth(t), "leaves", len(tree.LeafLabels(t)))

	var out []byte
	switch opts.format {
	case formatSVG:
		l := layout.New(t, layout.WithOptions(layoutOpts))
		if err := annotate(l, opts); err != nil {
			return err
		}
		out = render.SVG(l)
	case formatDOT:
		out = []byte(render.ToDOT(t))
	case formatPNG:
		out, err = render.DOTToPNG(ctx, render.ToDOT(t))
		if err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, dot, or png)", opts.format)
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", opts.output)
	}
	printSuccess("wrote %s", opts.output)
	prog.done(fmt.Sprintf("Rendered %d leaves", len(tree.LeafLabels(t))))
	return nil
}

// annotate applies the --box, --underline, and --arrow flags in order.
func annotate(l *layout.Layout, opts *renderOpts) error {
	for _, spec := range opts.boxes {
		p, err := tree.ParsePath(spec)
		if err != nil {
			return err
		}
		if err := l.BoxConstituent(p, layout.DefaultBoxStyle()); err != nil {
			return err
		}
	}
	for _, spec := range opts.underlines {
		p, err := tree.ParsePath(spec)
		if err != nil {
			return err
		}
		if err := l.UnderlineConstituent(p, layout.DefaultLineStyle()); err != nil {
			return err
		}
	}
	for _, spec := range opts.arrows {
		p1, p2, err := parseArrowSpec(spec)
		if err != nil {
			return err
		}
		if err := l.MovementArrow(p1, p2, layout.DefaultLineStyle()); err != nil {
			return err
		}
	}
	return nil
}

// parseArrowSpec parses a "from:to" pair of dotted paths.
func parseArrowSpec(spec string) (tree.Path, tree.Path, error) {
	from, to, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "arrow spec %q must be \"from:to\"", spec)
	}
	p1, err := tree.ParsePath(from)
	if err != nil {
		return nil, nil, err
	}
	p2, err := tree.ParsePath(to)
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

// readInput reads the tree expression from a file, or stdin for "-".
func readInput(input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "failed to read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read %s", input)
	}
	return string(data), nil
}

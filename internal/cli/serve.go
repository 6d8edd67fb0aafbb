package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	svglingerrors "github.com/sanjibnarzary/svgling/pkg/errors"
	"github.com/sanjibnarzary/svgling/pkg/layout"
	"github.com/sanjibnarzary/svgling/pkg/render"
	"github.com/sanjibnarzary/svgling/pkg/tree"
)

const indexPage = `<!doctype html>
<html><head><title>svgling</title></head>
<body style="font-family: sans-serif; margin: 2em;">
<h2>svgling tree preview</h2>
<form action="/render" method="get">
<textarea name="tree" rows="4" cols="60">[S [NP the dog] [VP barks]]</textarea><br>
spacing <select name="spacing"><option>text</option><option>even</option><option>nodes</option></select>
align <select name="align"><option>center</option><option>top</option><option>bottom</option><option>full</option></select>
<button type="submit">render</button>
</form>
</body></html>
`

// newServeCmd creates the serve command: an HTTP endpoint that renders
// bracket-notation trees to SVG for browser preview. Since the markup
// uses em and percentage units, a browser is the natural way to see it
// with real fonts.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered trees over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8571", "listen address")
	return cmd
}

func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexPage)
	})
	r.Get("/render", func(w http.ResponseWriter, req *http.Request) {
		handleRender(w, req)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleRender lays out the tree from the query string and writes SVG.
// Bad input is the client's fault, never a server error.
func handleRender(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	expr := q.Get("tree")
	if expr == "" {
		http.Error(w, "missing tree parameter", http.StatusBadRequest)
		return
	}
	t, err := tree.Parse(expr)
	if err != nil {
		http.Error(w, svglingerrors.UserMessage(err), http.StatusBadRequest)
		return
	}

	o := layout.DefaultOptions()
	if s := q.Get("spacing"); s != "" {
		if o.HorizSpacing, err = layout.ParseHorizSpacing(s); err != nil {
			http.Error(w, svglingerrors.UserMessage(err), http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("align"); s != "" {
		if o.VertAlign, err = layout.ParseVertAlign(s); err != nil {
			http.Error(w, svglingerrors.UserMessage(err), http.StatusBadRequest)
			return
		}
	}
	o.LeafNodesAlign = q.Get("align-leaves") == "true"

	l := layout.New(t, layout.WithOptions(o))
	if err := annotateFromQuery(l, q["box"], q["underline"], q["arrow"]); err != nil {
		http.Error(w, svglingerrors.UserMessage(err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.SVG(l))
}

// annotateFromQuery applies repeatable box/underline/arrow parameters,
// mirroring the render command's flags.
func annotateFromQuery(l *layout.Layout, boxes, underlines, arrows []string) error {
	for _, spec := range boxes {
		p, err := tree.ParsePath(spec)
		if err != nil {
			return err
		}
		if err := l.BoxConstituent(p, layout.DefaultBoxStyle()); err != nil {
			return err
		}
	}
	for _, spec := range underlines {
		p, err := tree.ParsePath(spec)
		if err != nil {
			return err
		}
		if err := l.UnderlineConstituent(p, layout.DefaultLineStyle()); err != nil {
			return err
		}
	}
	for _, spec := range arrows {
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

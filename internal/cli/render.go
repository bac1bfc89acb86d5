package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treesvg/pkg/cache"
	"github.com/matzehuels/treesvg/pkg/errors"
	"github.com/matzehuels/treesvg/pkg/render"
	"github.com/matzehuels/treesvg/pkg/tree"
	"github.com/matzehuels/treesvg/pkg/treeio"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"
	formatDOT = "dot"

	// renderTTL bounds how long cached artifacts are kept.
	renderTTL = 30 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	configPath string   // alternative config file location
	output     string   // output file (single format) or base path (multiple)
	formats    []string // output formats: svg, png, pdf, dot
	width      int      // canvas width in pixels
	height     int      // canvas height in pixels
	noGradient bool     // draw flat black edges instead of gradients
	noBorder   bool     // omit the border rectangle
	title      string   // document title
	scale      float64  // PNG scale factor
	noCache    bool     // bypass the render cache
}

// newRenderCmd creates the render command for producing image documents.
//
// Default settings come from the built-ins, overridden by the TOML config
// file, overridden by explicit flags.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render [tree.json]",
		Short: "Render a tree document to SVG, PNG, PDF, or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyConfig(cmd, &opts, cfg)

			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/treesvg/config.toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 400, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 400, "canvas height in pixels")
	cmd.Flags().BoolVar(&opts.noGradient, "no-gradient", false, "draw flat black edges instead of color gradients")
	cmd.Flags().BoolVar(&opts.noBorder, "no-border", false, "omit the image border rectangle")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// applyConfig fills option fields from the config file for every flag the
// user did not set explicitly.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg Config) {
	if !cmd.Flags().Changed("width") && cfg.Render.Width > 0 {
		opts.width = cfg.Render.Width
	}
	if !cmd.Flags().Changed("height") && cfg.Render.Height > 0 {
		opts.height = cfg.Render.Height
	}
	if !cmd.Flags().Changed("no-gradient") {
		opts.noGradient = !cfg.Render.Gradient
	}
	if !cmd.Flags().Changed("no-border") {
		opts.noBorder = !cfg.Render.Border
	}
	if !cmd.Flags().Changed("title") && cfg.Render.Title != "" {
		opts.title = cfg.Render.Title
	}
	if !cmd.Flags().Changed("no-cache") && cfg.Cache.Disabled {
		opts.noCache = true
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(strings.ToLower(p)))
	}
	return out
}

// validateFormats checks that every requested format is supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case formatSVG, formatPNG, formatPDF, formatDOT:
		default:
			return errors.New(errors.ErrCodeUnsupported,
				"unknown format %q (supported: svg, png, pdf, dot)", f)
		}
	}
	return nil
}

// runRender loads the tree, renders each requested format, and writes the
// output files. Cached artifacts are reused when the tree and options are
// unchanged.
func runRender(ctx context.Context, input string, opts *renderOpts, cfg Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, err := treeio.Import(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded tree", "nodes", root.Size(), "depth", root.Depth())

	store, err := openCache(opts.noCache, cfg)
	if err != nil {
		logger.Warn("cache unavailable, rendering without it", "err", err)
		store = cache.NewNullCache()
	}
	defer store.Close()

	treeHash, err := hashTree(root)
	if err != nil {
		return err
	}

	base := outputBase(input, opts.output, len(opts.formats) == 1)
	anyCached := false

	for _, format := range opts.formats {
		path := outputPath(base, format, opts.output, len(opts.formats) == 1)

		data, cached, err := renderFormat(ctx, root, treeHash, format, opts, store)
		if err != nil {
			return err
		}
		anyCached = anyCached || cached

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d node(s)", root.Size()))
	printStats(root.Size(), root.Depth(), anyCached)
	return nil
}

// renderFormat produces one artifact, consulting the cache first.
func renderFormat(ctx context.Context, root *tree.Node, treeHash, format string, opts *renderOpts, store cache.Cache) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	// Only PNG bytes vary with the scale factor; keep the other formats'
	// keys independent of it.
	scale := 0.0
	if format == formatPNG {
		scale = opts.scale
	}
	key := cache.RenderKey(treeHash, format, opts.width, opts.height,
		!opts.noGradient, !opts.noBorder, opts.title, scale)

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		logger.Debug("cache hit", "format", format)
		return data, true, nil
	}

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(render.ToDOT(root))
	default:
		svg, err := renderSVG(root, opts)
		if err != nil {
			return nil, false, err
		}
		switch format {
		case formatSVG:
			data = []byte(svg)
		case formatPNG:
			png, err := render.ToPNG([]byte(svg), opts.scale)
			if err != nil {
				return nil, false, err
			}
			data = png
		case formatPDF:
			pdf, err := render.ToPDF([]byte(svg))
			if err != nil {
				return nil, false, err
			}
			data = pdf
		}
	}

	if err := store.Set(ctx, key, data, renderTTL); err != nil {
		logger.Debug("cache store failed", "err", err)
	}
	return data, false, nil
}

// renderSVG builds the SVG document from the render options.
func renderSVG(root *tree.Node, opts *renderOpts) (string, error) {
	renderOpts := []render.Option{render.WithSize(opts.width, opts.height)}
	if opts.noGradient {
		renderOpts = append(renderOpts, render.WithoutGradient())
	}
	if opts.noBorder {
		renderOpts = append(renderOpts, render.WithoutBorder())
	}
	if opts.title != "" {
		renderOpts = append(renderOpts, render.WithTitle(opts.title))
	}
	return render.SVG(root, renderOpts...)
}

// hashTree produces a stable content hash of the tree.
func hashTree(root *tree.Node) (string, error) {
	var buf bytes.Buffer
	if err := treeio.Write(root, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// openCache builds the cache backend for this run.
func openCache(disabled bool, cfg Config) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// outputBase derives the base output path: the --output value when given,
// otherwise the input path without its extension.
func outputBase(input, output string, single bool) string {
	if output != "" {
		if single {
			return output
		}
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// outputPath builds the file path for one format.
// With a single format and an explicit --output, the path is used verbatim.
func outputPath(base, format, output string, single bool) string {
	if single && output != "" {
		return output
	}
	return base + "." + format
}

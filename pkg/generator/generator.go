// Package generator runs a logo layout and writes the result to disk.
//
// The output format is inferred from the file extension:
//   - ".png" → PNG image
//   - ".jpg", ".jpeg" → JPEG image
//   - ".gif", ".bmp", ".tif", ".tiff"
package generator

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/xob0t/mocklogo/pkg/layout"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// Generator holds one layout and persists what it renders.
type Generator struct {
	layout layout.Layout
	logger *log.Logger
}

// New creates a generator with no layout set.
func New(opts ...Option) *Generator {
	g := &Generator{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetLayout replaces the layout.
func (g *Generator) SetLayout(l layout.Layout) {
	g.layout = l
}

// Layout returns the current layout, or nil if none was set.
func (g *Generator) Layout() layout.Layout {
	return g.layout
}

// Generate renders the layout and writes it to output. The file is created
// only after rendering succeeds. The rendered image is returned as well.
func (g *Generator) Generate(output string) (image.Image, error) {
	format, err := formatFor(filepath.Ext(output))
	if err != nil {
		return nil, err
	}

	img, err := g.render()
	if err != nil {
		return nil, err
	}

	if err := writeImage(output, img, format); err != nil {
		return nil, err
	}
	g.logger.Debug("wrote logo", "path", output, "format", format)
	return img, nil
}

// GenerateToWriter renders the layout and encodes it to w. The format is
// given by ext (".png", ".jpg", ...). This is useful for in-memory generation.
func (g *Generator) GenerateToWriter(w io.Writer, ext string) (image.Image, error) {
	format, err := formatFor(ext)
	if err != nil {
		return nil, err
	}

	img, err := g.render()
	if err != nil {
		return nil, err
	}

	// Encode fully before touching w so a failure writes nothing.
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", layout.ErrIO, format, err)
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return nil, fmt.Errorf("%w: write %s: %v", layout.ErrIO, format, err)
	}
	g.logger.Debug("wrote logo", "format", format, "bytes", n)
	return img, nil
}

func (g *Generator) render() (image.Image, error) {
	if g.layout == nil {
		return nil, fmt.Errorf("%w: no layout set", layout.ErrConfiguration)
	}
	img, err := g.layout.Generate()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// formatFor maps a file extension to an encoder.
func formatFor(ext string) (imaging.Format, error) {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("%w: unsupported format %q: use .png, .jpg, .gif, .bmp or .tiff", layout.ErrIO, ext)
	}
	return format, nil
}

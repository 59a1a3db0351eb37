// icontext.go - Icon on the left, text on the right.
// Uses a layered approach: transparent canvas -> icon -> text.
package layout

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Layout renders a logo into a new canvas.
type Layout interface {
	Generate() (*image.RGBA, error)
}

// Option configures an IconText.
type Option func(*IconText)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(it *IconText) { it.logger = l }
}

// IconText places the icon at the left margin and the text after it:
//
//	left margin + icon + spacing + text + right margin
type IconText struct {
	cfg    Config
	logger *log.Logger
}

// NewIconText creates the layout. It performs no I/O; the config is checked
// when Generate runs.
func NewIconText(cfg Config, opts ...Option) *IconText {
	it := &IconText{cfg: cfg, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Config returns the layout parameters.
func (it *IconText) Config() Config { return it.cfg }

// IconPosition returns the top-left corner of the icon.
func (it *IconText) IconPosition() image.Point {
	return image.Pt(it.cfg.MarginLeft, (it.cfg.Canvas.Y-it.cfg.Icon.Y)/2)
}

// LoadIcon decodes the icon file and resizes it to the configured icon size
// with a bicubic filter.
func (it *IconText) LoadIcon() (image.Image, error) {
	if it.cfg.IconPath == "" {
		return nil, fmt.Errorf("%w: icon path is empty", ErrConfiguration)
	}

	f, err := os.Open(it.cfg.IconPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open icon: %v", ErrResourceLoad, err)
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode icon %s: %v", ErrResourceLoad, it.cfg.IconPath, err)
	}
	return imaging.Resize(src, it.cfg.Icon.X, it.cfg.Icon.Y, imaging.CatmullRom), nil
}

// PlaceIcon loads the icon and composites it onto canvas using the icon's
// alpha channel, so transparent icon pixels leave the canvas untouched.
func (it *IconText) PlaceIcon(canvas draw.Image) error {
	icon, err := it.LoadIcon()
	if err != nil {
		return err
	}
	pos := it.IconPosition()
	draw.Draw(canvas, image.Rectangle{Min: pos, Max: pos.Add(it.cfg.Icon)}, icon, image.Point{}, draw.Over)
	it.logger.Debug("placed icon", "x", pos.X, "y", pos.Y, "size", it.cfg.Icon)
	return nil
}

// MaxTextWidth returns the horizontal room left for the text. It is zero or
// negative when icon, margins and spacing fill the canvas.
func (it *IconText) MaxTextWidth() int {
	used := it.cfg.Icon.X + it.cfg.MarginLeft + it.cfg.MarginRight + it.cfg.Spacing
	return it.cfg.Canvas.X - used
}

// SelectFontSize loads the configured font and returns the largest size in
// [MinFontSize, maxFontSize] at which text is no wider than maxTextWidth.
// The caller must close the returned FontFit.
func (it *IconText) SelectFontSize(text string, maxTextWidth, maxFontSize int) (*FontFit, error) {
	if maxTextWidth <= 0 {
		return nil, &FitError{Text: text, MaxTextWidth: maxTextWidth, MaxFontSize: maxFontSize}
	}

	fm, err := LoadFont(it.cfg.FontPath)
	if err != nil {
		return nil, err
	}
	fit, err := fm.Fit(text, maxTextWidth, maxFontSize)
	if err != nil {
		return nil, err
	}
	it.logger.Debug("selected font size", "size", fit.Size, "width", fit.Width, "height", fit.Height, "max_width", maxTextWidth)
	return fit, nil
}

// TextPosition returns the top-left corner of a text line of the given
// height, centered on the canvas height.
func (it *IconText) TextPosition(height int) image.Point {
	x := it.cfg.MarginLeft + it.cfg.Icon.X + it.cfg.Spacing
	return image.Pt(x, (it.cfg.Canvas.Y-height)/2)
}

// DrawText draws text with its line box's top-left corner at pos. A nil
// color draws in DefaultTextColor.
func (it *IconText) DrawText(canvas draw.Image, text string, pos image.Point, fit *FontFit, c *color.NRGBA) {
	col := DefaultTextColor
	if c != nil {
		col = *c
	}
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: fit.Face,
		Dot:  fixed.P(pos.X, pos.Y+fit.Ascent),
	}
	drawer.DrawString(text)
}

// Generate renders the logo. Nothing is returned on failure.
func (it *IconText) Generate() (*image.RGBA, error) {
	if err := it.cfg.Validate(); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rectangle{Max: it.cfg.Canvas})

	if err := it.PlaceIcon(canvas); err != nil {
		return nil, err
	}

	fit, err := it.SelectFontSize(it.cfg.Text, it.MaxTextWidth(), it.cfg.MaxFontSize)
	if err != nil {
		return nil, err
	}
	defer fit.Close()

	pos := it.TextPosition(fit.Height)
	it.DrawText(canvas, it.cfg.Text, pos, fit, it.cfg.Color)

	return canvas, nil
}

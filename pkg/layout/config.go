// Package layout arranges an icon and a text label on a transparent canvas.
//
// The only layout today is IconText: the icon sits on the left, vertically
// centered, and the text follows on the right at the largest font size that
// fits the remaining width.
package layout

import (
	"fmt"
	"image"
	"image/color"
)

// Config holds the parameters of a layout.
type Config struct {
	Canvas      image.Point // canvas width and height in pixels
	Icon        image.Point // icon target width and height in pixels
	MarginLeft  int
	MarginRight int
	Spacing     int // gap between icon and text
	IconPath    string
	FontPath    string
	Text        string
	Color       *color.NRGBA // nil selects DefaultTextColor
	MaxFontSize int
}

// DefaultConfig returns a Config with the stock geometry and no sources set.
func DefaultConfig() Config {
	return Config{
		Canvas:      image.Pt(250, 150),
		Icon:        image.Pt(100, 100),
		MarginLeft:  10,
		MarginRight: 10,
		Spacing:     10,
		MaxFontSize: 80,
	}
}

// Validate reports missing sources and out-of-range geometry. A config whose
// icon and margins leave no room for text is valid; generation fails with a
// FitError instead.
func (c Config) Validate() error {
	switch {
	case c.IconPath == "":
		return fmt.Errorf("%w: icon path is required", ErrConfiguration)
	case c.FontPath == "":
		return fmt.Errorf("%w: font path is required", ErrConfiguration)
	case c.Canvas.X <= 0 || c.Canvas.Y <= 0:
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrConfiguration, c.Canvas.X, c.Canvas.Y)
	case c.Icon.X <= 0 || c.Icon.Y <= 0:
		return fmt.Errorf("%w: icon size %dx%d must be positive", ErrConfiguration, c.Icon.X, c.Icon.Y)
	case c.MarginLeft < 0 || c.MarginRight < 0 || c.Spacing < 0:
		return fmt.Errorf("%w: margins and spacing must not be negative", ErrConfiguration)
	case c.MaxFontSize < MinFontSize:
		return fmt.Errorf("%w: max font size %d is below %d", ErrConfiguration, c.MaxFontSize, MinFontSize)
	}
	return nil
}

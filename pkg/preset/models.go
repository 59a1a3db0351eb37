// Package preset loads logo configurations from TOML or JSON files.
package preset

import (
	"image"

	"github.com/xob0t/mocklogo/pkg/layout"
)

// ── Preset types ──

// Preset is the top-level structure of a preset file.
type Preset struct {
	Meta    Meta       `json:"meta" toml:"meta"`
	Canvas  Canvas     `json:"canvas" toml:"canvas"`
	Icon    Icon       `json:"icon" toml:"icon"`
	Font    FontConfig `json:"font" toml:"font"`
	Text    Text       `json:"text" toml:"text"`
	Margin  Margin     `json:"margin" toml:"margin"`
	Spacing *int       `json:"spacing,omitempty" toml:"spacing,omitempty"` // nil = default
}

// Meta holds preset metadata.
type Meta struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
}

// Canvas defines output dimensions. Preset overrides explicit Width/Height.
type Canvas struct {
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
	Preset string `json:"preset" toml:"preset"`
}

// Icon is the icon source and its target size.
type Icon struct {
	Path   string `json:"path" toml:"path"` // resolved relative to the preset file
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
}

// FontConfig specifies the font source.
type FontConfig struct {
	Path    string `json:"path" toml:"path"` // TTF/OTF, resolved relative to the preset file
	MaxSize int    `json:"maxSize" toml:"max_size"`
}

// Text is the label and its color.
type Text struct {
	Content string `json:"content" toml:"content"`
	Color   string `json:"color" toml:"color"` // "#rrggbb", "#rrggbbaa", "random" or empty
}

// Margin is the horizontal spacing around the content. Nil fields take the default.
type Margin struct {
	Left  *int `json:"left,omitempty" toml:"left,omitempty"`
	Right *int `json:"right,omitempty" toml:"right,omitempty"`
}

// ── Canvas presets ──

// Presets maps preset names to [width, height].
var Presets = map[string][2]int{
	"small":  {250, 150},
	"square": {256, 256},
	"banner": {600, 150},
	"wide":   {400, 120},
}

// Config converts the preset to a layout configuration.
func (p *Preset) Config() (layout.Config, error) {
	c, err := layout.ParseColor(p.Text.Color)
	if err != nil {
		return layout.Config{}, err
	}

	cfg := layout.DefaultConfig()
	cfg.Canvas = image.Pt(p.Canvas.Width, p.Canvas.Height)
	cfg.Icon = image.Pt(p.Icon.Width, p.Icon.Height)
	cfg.IconPath = p.Icon.Path
	cfg.FontPath = p.Font.Path
	cfg.MaxFontSize = p.Font.MaxSize
	cfg.Text = p.Text.Content
	cfg.Color = c
	if p.Margin.Left != nil {
		cfg.MarginLeft = *p.Margin.Left
	}
	if p.Margin.Right != nil {
		cfg.MarginRight = *p.Margin.Right
	}
	if p.Spacing != nil {
		cfg.Spacing = *p.Spacing
	}
	return cfg, nil
}

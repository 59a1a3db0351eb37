// validator.go — Sanity checks and a readable summary of a preset.
package preset

import (
	"fmt"
	"os"
	"strings"

	"github.com/xob0t/mocklogo/pkg/layout"
)

// Validate returns warnings (never fatal errors) for presets that will fail
// or look wrong when generated.
func Validate(p *Preset) []string {
	var warnings []string

	cfg, err := p.Config()
	if err != nil {
		return append(warnings, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		warnings = append(warnings, err.Error())
	}

	for _, asset := range []struct{ kind, path string }{{"icon", cfg.IconPath}, {"font", cfg.FontPath}} {
		if asset.path == "" {
			continue
		}
		if _, err := os.Stat(asset.path); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s %s is not readable: %v", asset.kind, asset.path, err))
		}
	}

	if w := layout.NewIconText(cfg).MaxTextWidth(); w <= 0 {
		warnings = append(warnings, fmt.Sprintf("no room for text: icon, margins and spacing leave %dpx", w))
	}
	if cfg.Icon.Y > cfg.Canvas.Y {
		warnings = append(warnings, fmt.Sprintf("icon height %d exceeds canvas height %d — icon will be clipped", cfg.Icon.Y, cfg.Canvas.Y))
	}
	if cfg.Text == "" {
		warnings = append(warnings, "text is empty")
	}

	return warnings
}

// Describe returns a human-readable summary of the geometry the preset produces.
func Describe(p *Preset) (string, error) {
	cfg, err := p.Config()
	if err != nil {
		return "", err
	}
	it := layout.NewIconText(cfg)

	var b strings.Builder
	name := p.Meta.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "Preset: %s\n", name)
	if p.Meta.Description != "" {
		b.WriteString(p.Meta.Description + "\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %-16s %dx%d\n", "canvas:", cfg.Canvas.X, cfg.Canvas.Y)
	fmt.Fprintf(&b, "  %-16s %dx%d at %v\n", "icon:", cfg.Icon.X, cfg.Icon.Y, it.IconPosition())
	fmt.Fprintf(&b, "  %-16s x=%d\n", "text origin:", it.TextPosition(0).X)
	fmt.Fprintf(&b, "  %-16s %dpx\n", "max text width:", it.MaxTextWidth())
	fmt.Fprintf(&b, "  %-16s %d\n", "max font size:", cfg.MaxFontSize)
	fmt.Fprintf(&b, "  %-16s %q\n", "text:", cfg.Text)
	color := layout.FormatColor(cfg.Color)
	if color == "" {
		color = "default"
	}
	fmt.Fprintf(&b, "  %-16s %s\n", "color:", color)

	return b.String(), nil
}

// loader.go — Load preset files and resolve their asset paths.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xob0t/mocklogo/pkg/layout"
)

// Load reads a .toml or .json preset, applies defaults and makes icon and
// font paths absolute relative to the preset's directory. Unknown TOML keys
// are reported as warnings.
func Load(path string) (*Preset, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read preset: %v", layout.ErrConfiguration, err)
	}

	var (
		p        Preset
		warnings []string
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: parse %s: %v", layout.ErrConfiguration, path, err)
		}
		for _, k := range md.Undecoded() {
			warnings = append(warnings, fmt.Sprintf("unknown key %q — ignored", k.String()))
		}
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, nil, fmt.Errorf("%w: parse %s: %v", layout.ErrConfiguration, path, err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: unsupported preset format %q: use .toml or .json", layout.ErrConfiguration, ext)
	}

	warnings = append(warnings, applyDefaults(&p)...)
	resolveAssetPaths(&p, filepath.Dir(path))

	return &p, warnings, nil
}

// applyDefaults fills zero fields from layout.DefaultConfig and applies the
// named canvas preset.
func applyDefaults(p *Preset) []string {
	var warnings []string
	def := layout.DefaultConfig()

	if p.Canvas.Preset != "" {
		if dims, ok := Presets[p.Canvas.Preset]; ok {
			p.Canvas.Width = dims[0]
			p.Canvas.Height = dims[1]
		} else {
			warnings = append(warnings, fmt.Sprintf("unknown canvas preset %q — using width/height", p.Canvas.Preset))
		}
	}
	if p.Canvas.Width == 0 {
		p.Canvas.Width = def.Canvas.X
	}
	if p.Canvas.Height == 0 {
		p.Canvas.Height = def.Canvas.Y
	}
	if p.Icon.Width == 0 {
		p.Icon.Width = def.Icon.X
	}
	if p.Icon.Height == 0 {
		p.Icon.Height = def.Icon.Y
	}
	if p.Font.MaxSize == 0 {
		p.Font.MaxSize = def.MaxFontSize
	}
	return warnings
}

// resolveAssetPaths makes relative asset paths absolute using baseDir.
func resolveAssetPaths(p *Preset, baseDir string) {
	resolve := func(path string) string {
		if path == "" || filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(baseDir, path)
	}

	p.Icon.Path = resolve(p.Icon.Path)
	p.Font.Path = resolve(p.Font.Path)
}

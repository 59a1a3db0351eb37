package preset

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xob0t/mocklogo/pkg/layout"
)

func writePreset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exampleConfig(dir string) layout.Config {
	return layout.Config{
		Canvas:      image.Pt(250, 150),
		Icon:        image.Pt(100, 100),
		MarginLeft:  10,
		MarginRight: 10,
		Spacing:     10,
		IconPath:    filepath.Join(dir, "icon.png"),
		FontPath:    filepath.Join(dir, "font.ttf"),
		Text:        "Mockaron",
		Color:       &color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff},
		MaxFontSize: 80,
	}
}

func TestLoadExamples(t *testing.T) {
	for _, format := range []string{"toml", "json"} {
		t.Run(format, func(t *testing.T) {
			content, err := Example(format)
			if err != nil {
				t.Fatal(err)
			}
			path := writePreset(t, "preset."+format, content)

			p, warnings, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(warnings) != 0 {
				t.Errorf("Load() warnings = %v", warnings)
			}
			if p.Meta.Name != "Sample Logo" {
				t.Errorf("name = %q", p.Meta.Name)
			}

			cfg, err := p.Config()
			if err != nil {
				t.Fatalf("Config() error = %v", err)
			}
			if diff := cmp.Diff(exampleConfig(filepath.Dir(path)), cfg); diff != "" {
				t.Errorf("Config() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExampleUnknownFormat(t *testing.T) {
	if _, err := Example("yaml"); err == nil {
		t.Error("Example(yaml) succeeded")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writePreset(t, "p.toml", `
[icon]
path = "/abs/icon.png"

[font]
path = "fonts/f.ttf"
`)
	p, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}

	want := layout.DefaultConfig()
	want.IconPath = "/abs/icon.png"
	want.FontPath = filepath.Join(filepath.Dir(path), "fonts", "f.ttf")
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadExplicitZeroMargins(t *testing.T) {
	path := writePreset(t, "p.json", `{
  "canvas": {"width": 300, "height": 100},
  "icon": {"width": 64, "height": 64},
  "margin": {"left": 0, "right": 0},
  "spacing": 0
}`)
	p, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MarginLeft != 0 || cfg.MarginRight != 0 || cfg.Spacing != 0 {
		t.Errorf("margins = %d/%d spacing %d, want zeros", cfg.MarginLeft, cfg.MarginRight, cfg.Spacing)
	}
	if cfg.Canvas != image.Pt(300, 100) || cfg.Icon != image.Pt(64, 64) {
		t.Errorf("canvas %v icon %v", cfg.Canvas, cfg.Icon)
	}
}

func TestLoadCanvasPreset(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        image.Point
		wantWarning bool
	}{
		{"named preset wins", "[canvas]\npreset = \"banner\"\nwidth = 10\nheight = 10\n", image.Pt(600, 150), false},
		{"explicit size", "[canvas]\nwidth = 320\nheight = 90\n", image.Pt(320, 90), false},
		{"unknown preset", "[canvas]\npreset = \"huge\"\nwidth = 320\n", image.Pt(320, 150), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, warnings, err := Load(writePreset(t, "p.toml", tt.content))
			if err != nil {
				t.Fatal(err)
			}
			if got := image.Pt(p.Canvas.Width, p.Canvas.Height); got != tt.want {
				t.Errorf("canvas = %v, want %v", got, tt.want)
			}
			if (len(warnings) > 0) != tt.wantWarning {
				t.Errorf("warnings = %v, wantWarning %v", warnings, tt.wantWarning)
			}
		})
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, warnings, err := Load(writePreset(t, "p.toml", "[text]\ncontent = \"x\"\nsize = 12\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "text.size") {
		t.Errorf("warnings = %v, want one for text.size", warnings)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "none.toml")},
		{"bad toml", writePreset(t, "bad.toml", "[canvas\n")},
		{"bad json", writePreset(t, "bad.json", "{")},
		{"unknown extension", writePreset(t, "p.yaml", "canvas: {}")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(tt.path)
			if !errors.Is(err, layout.ErrConfiguration) {
				t.Errorf("Load() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestConfigBadColor(t *testing.T) {
	p := &Preset{Text: Text{Color: "blue"}}
	if _, err := p.Config(); !errors.Is(err, layout.ErrConfiguration) {
		t.Errorf("Config() error = %v, want ErrConfiguration", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"icon.png", "font.ttf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	base := func() *Preset {
		p, _, err := Load(writePresetIn(t, dir, ExampleTOML))
		if err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name   string
		mutate func(*Preset)
		want   []string
	}{
		{"clean", func(p *Preset) {}, nil},
		{"no room", func(p *Preset) { p.Icon.Width = 250 }, []string{"no room for text"}},
		{"tall icon", func(p *Preset) { p.Icon.Height = 200 }, []string{"will be clipped"}},
		{"empty text", func(p *Preset) { p.Text.Content = "" }, []string{"text is empty"}},
		{"missing font", func(p *Preset) { p.Font.Path = filepath.Join(dir, "gone.ttf") }, []string{"font", "not readable"}},
		{"bad color", func(p *Preset) { p.Text.Color = "#12" }, []string{"invalid color"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(p)
			got := strings.Join(Validate(p), "\n")
			if tt.want == nil && got != "" {
				t.Errorf("Validate() = %q, want no warnings", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Validate() = %q, want it to mention %q", got, w)
				}
			}
		})
	}
}

func writePresetIn(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDescribe(t *testing.T) {
	p, _, err := Load(writePreset(t, "p.toml", ExampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Describe(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Preset: Sample Logo", "250x150", "(10,25)", "x=120", "120px", `"Mockaron"`, "#1a1a2eff"} {
		if !strings.Contains(out, want) {
			t.Errorf("Describe() missing %q:\n%s", want, out)
		}
	}
}

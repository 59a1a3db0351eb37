package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xob0t/mocklogo/pkg/generator"
	"github.com/xob0t/mocklogo/pkg/layout"
	"github.com/xob0t/mocklogo/pkg/preset"
)

type generateOpts struct {
	output      string
	format      string
	presetPath  string
	iconPath    string
	fontPath    string
	text        string
	canvas      string
	iconSize    string
	marginLeft  int
	marginRight int
	spacing     int
	color       string
	maxFontSize int
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts
	def := layout.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a logo to a file",
		Long: `Render a logo with the icon on the left and the text on the right.

The output format follows the file extension (.png, .jpg, .gif, .bmp, .tiff).
Use -o - to write to stdout in the format given by --format.
Flags override values from --preset.`,
		Example: `  mocklogo generate -o logo.png --icon icon.png --font Ubuntu-R.ttf --text Mockaron
  mocklogo generate -o logo.png --preset logo.toml --color "#ff0000"
  mocklogo generate -o - --preset logo.toml > logo.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file path, or - for stdout")
	f.StringVar(&opts.format, "format", "png", "encoding when writing to stdout")
	f.StringVar(&opts.presetPath, "preset", "", "TOML or JSON preset file")
	f.StringVar(&opts.iconPath, "icon", "", "icon image path")
	f.StringVar(&opts.fontPath, "font", "", "TrueType/OpenType font path")
	f.StringVar(&opts.text, "text", "", "text label")
	f.StringVar(&opts.canvas, "canvas", formatSize(def.Canvas), "canvas size WxH")
	f.StringVar(&opts.iconSize, "icon-size", formatSize(def.Icon), "icon size WxH")
	f.IntVar(&opts.marginLeft, "margin-left", def.MarginLeft, "left margin in pixels")
	f.IntVar(&opts.marginRight, "margin-right", def.MarginRight, "right margin in pixels")
	f.IntVar(&opts.spacing, "spacing", def.Spacing, "space between icon and text in pixels")
	f.StringVar(&opts.color, "color", "", `text color: "#rrggbb", "#rrggbbaa" or "random" (default black)`)
	f.IntVar(&opts.maxFontSize, "max-font-size", def.MaxFontSize, "largest font size to try")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	gen := generator.New(generator.WithLogger(logger))
	gen.SetLayout(layout.NewIconText(cfg, layout.WithLogger(logger)))

	if opts.output == "-" {
		_, err := gen.GenerateToWriter(cmd.OutOrStdout(), "."+strings.TrimPrefix(opts.format, "."))
		return err
	}

	logger.Debug("generating", "output", opts.output, "canvas", formatSize(cfg.Canvas), "text", cfg.Text)
	if _, err := gen.Generate(opts.output); err != nil {
		return err
	}
	logger.Infof("Done: %s", opts.output)
	return nil
}

// buildConfig starts from the preset (or the defaults) and applies every
// flag the user set explicitly.
func buildConfig(cmd *cobra.Command, opts generateOpts) (layout.Config, error) {
	logger := loggerFromContext(cmd.Context())
	cfg := layout.DefaultConfig()

	if opts.presetPath != "" {
		p, warnings, err := preset.Load(opts.presetPath)
		if err != nil {
			return cfg, fmt.Errorf("load preset: %w", err)
		}
		for _, w := range warnings {
			logger.Warn(w)
		}
		if cfg, err = p.Config(); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("icon") {
		cfg.IconPath = opts.iconPath
	}
	if f.Changed("font") {
		cfg.FontPath = opts.fontPath
	}
	if f.Changed("text") {
		cfg.Text = opts.text
	}
	if f.Changed("canvas") {
		size, err := parseSize(opts.canvas)
		if err != nil {
			return cfg, fmt.Errorf("--canvas: %w", err)
		}
		cfg.Canvas = size
	}
	if f.Changed("icon-size") {
		size, err := parseSize(opts.iconSize)
		if err != nil {
			return cfg, fmt.Errorf("--icon-size: %w", err)
		}
		cfg.Icon = size
	}
	if f.Changed("margin-left") {
		cfg.MarginLeft = opts.marginLeft
	}
	if f.Changed("margin-right") {
		cfg.MarginRight = opts.marginRight
	}
	if f.Changed("spacing") {
		cfg.Spacing = opts.spacing
	}
	if f.Changed("color") {
		c, err := layout.ParseColor(opts.color)
		if err != nil {
			return cfg, fmt.Errorf("--color: %w", err)
		}
		cfg.Color = c
	}
	if f.Changed("max-font-size") {
		cfg.MaxFontSize = opts.maxFontSize
	}

	return cfg, nil
}

// parseSize parses "WxH".
func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("%w: size %q: expected WxH", layout.ErrConfiguration, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return image.Point{}, fmt.Errorf("%w: size %q: %v", layout.ErrConfiguration, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return image.Point{}, fmt.Errorf("%w: size %q: %v", layout.ErrConfiguration, s, err)
	}
	return image.Pt(x, y), nil
}

func formatSize(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}

// parser.go — Example presets for mocklogo init.
package preset

import "fmt"

// ExampleTOML is a starter preset in TOML.
const ExampleTOML = `spacing = 10

[meta]
name = "Sample Logo"
description = "Icon on the left, name on the right"

[canvas]
preset = "small"

[icon]
path = "icon.png"
width = 100
height = 100

[font]
path = "font.ttf"
max_size = 80

[text]
content = "Mockaron"
color = "#1a1a2eff"

[margin]
left = 10
right = 10
`

// ExampleJSON is the same starter preset in JSON.
const ExampleJSON = `{
  "meta": {
    "name": "Sample Logo",
    "description": "Icon on the left, name on the right"
  },
  "canvas": { "preset": "small" },
  "icon": { "path": "icon.png", "width": 100, "height": 100 },
  "font": { "path": "font.ttf", "maxSize": 80 },
  "text": { "content": "Mockaron", "color": "#1a1a2eff" },
  "margin": { "left": 10, "right": 10 },
  "spacing": 10
}
`

// Example returns the starter preset for format ("toml" or "json").
func Example(format string) (string, error) {
	switch format {
	case "toml":
		return ExampleTOML, nil
	case "json":
		return ExampleJSON, nil
	default:
		return "", fmt.Errorf("unknown preset format %q: use toml or json", format)
	}
}

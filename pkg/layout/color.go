// color.go — Text color parsing.
package layout

import (
	"crypto/rand"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultTextColor is used when Config.Color is nil.
var DefaultTextColor = color.NRGBA{A: 255}

// ParseColor parses a text color. Accepts "#rrggbb", "#rrggbbaa" or "random".
// An empty string returns nil, meaning the default color applies.
func ParseColor(s string) (*color.NRGBA, error) {
	switch s {
	case "":
		return nil, nil
	case "random":
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("random color: %w", err)
		}
		return &color.NRGBA{R: buf[0], G: buf[1], B: buf[2], A: 255}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("%w: invalid color %q: expected 6 or 8 hex digits", ErrConfiguration, s)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid channel in %q: %v", ErrConfiguration, s, err)
		}
		ch[i] = uint8(v)
	}

	return &color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// FormatColor is the inverse of ParseColor. A nil color formats as "".
func FormatColor(c *color.NRGBA) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

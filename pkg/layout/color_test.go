package layout

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *color.NRGBA
		wantErr bool
	}{
		{"empty is unset", "", nil, false},
		{"rgb with hash", "#ff8000", &color.NRGBA{R: 255, G: 128, A: 255}, false},
		{"rgb without hash", "102030", &color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, false},
		{"rgba", "#00000080", &color.NRGBA{A: 0x80}, false},
		{"short", "#fff", nil, true},
		{"bad digit", "#gg0000", nil, true},
		{"too long", "#0000000000", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("ParseColor(%q) error = %v, want ErrConfiguration", tt.input, err)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseColor(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseColorRandom(t *testing.T) {
	c, err := ParseColor("random")
	if err != nil {
		t.Fatal(err)
	}
	if c == nil || c.A != 255 {
		t.Errorf("ParseColor(random) = %v, want opaque color", c)
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(nil); got != "" {
		t.Errorf("FormatColor(nil) = %q", got)
	}
	c := &color.NRGBA{R: 1, G: 0xab, B: 0xff, A: 0x10}
	s := FormatColor(c)
	if s != "#01abff10" {
		t.Errorf("FormatColor() = %q", s)
	}
	back, err := ParseColor(s)
	if err != nil || *back != *c {
		t.Errorf("ParseColor(FormatColor()) = %v, %v", back, err)
	}
}

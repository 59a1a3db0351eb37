// fonts.go - Font loading and the font-fit search.
// Uses golang.org/x/image/font for OpenType measurement and rendering.
package layout

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// MinFontSize is the smallest size tried by the font-fit search.
const MinFontSize = 1

// fontDPI makes one point equal one pixel.
const fontDPI = 72

// FontManager holds a parsed font and creates faces from it.
type FontManager struct {
	parsed *opentype.Font
}

// LoadFont reads and parses the TrueType/OpenType font at path.
func LoadFont(path string) (*FontManager, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: font path is empty", ErrConfiguration)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open font: %v", ErrResourceLoad, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read font %s: %v", ErrResourceLoad, path, err)
	}
	return ParseFont(data)
}

// ParseFont parses in-memory font data.
func ParseFont(data []byte) (*FontManager, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse font: %v", ErrResourceLoad, err)
	}
	return &FontManager{parsed: parsed}, nil
}

// GetFace returns a font.Face at the given pixel size. The caller must close it.
func (fm *FontManager) GetFace(size int) (font.Face, error) {
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create font face at %d: %v", ErrResourceLoad, size, err)
	}
	return face, nil
}

// FontFit is the outcome of a font-fit search.
type FontFit struct {
	Face   font.Face
	Size   int
	Width  int // advance width of the text
	Height int // ascent + descent
	Ascent int
}

// Close releases the face.
func (f *FontFit) Close() error {
	if f == nil || f.Face == nil {
		return nil
	}
	return f.Face.Close()
}

// Measure returns the rendered width and line height of text in face.
func Measure(face font.Face, text string) (width, height, ascent int) {
	m := face.Metrics()
	ascent = m.Ascent.Ceil()
	return font.MeasureString(face, text).Ceil(), ascent + m.Descent.Ceil(), ascent
}

// Fit searches sizes from maxFontSize down to MinFontSize and returns the
// largest one whose text width is at most maxTextWidth. Faces for rejected
// sizes are closed before the next step.
func (fm *FontManager) Fit(text string, maxTextWidth, maxFontSize int) (*FontFit, error) {
	if maxTextWidth <= 0 {
		return nil, &FitError{Text: text, MaxTextWidth: maxTextWidth, MaxFontSize: maxFontSize}
	}

	for size := maxFontSize; size >= MinFontSize; size-- {
		face, err := fm.GetFace(size)
		if err != nil {
			return nil, err
		}
		w, h, asc := Measure(face, text)
		if w <= maxTextWidth {
			return &FontFit{Face: face, Size: size, Width: w, Height: h, Ascent: asc}, nil
		}
		face.Close()
	}

	return nil, &FitError{Text: text, MaxTextWidth: maxTextWidth, MaxFontSize: maxFontSize}
}

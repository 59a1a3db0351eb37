package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for logo generation. Every error returned by this module
// wraps exactly one of them.
var (
	// ErrConfiguration is returned when a required parameter is missing or invalid.
	ErrConfiguration = errors.New("configuration error")

	// ErrResourceLoad is returned when the icon or font cannot be read or decoded.
	ErrResourceLoad = errors.New("resource load error")

	// ErrFit is returned when no font size fits the available text width.
	ErrFit = errors.New("text does not fit")

	// ErrIO is returned when the output cannot be encoded or written.
	ErrIO = errors.New("i/o error")
)

// FitError reports a failed font-fit search.
type FitError struct {
	Text         string
	MaxTextWidth int
	MaxFontSize  int
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%v: %q in %dpx with sizes %d..%d",
		ErrFit, e.Text, e.MaxTextWidth, MinFontSize, e.MaxFontSize)
}

// Unwrap returns ErrFit.
func (e *FitError) Unwrap() error { return ErrFit }

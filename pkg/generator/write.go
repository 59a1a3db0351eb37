// write.go — Image file writer.
package generator

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/xob0t/mocklogo/pkg/layout"
)

// writeImage encodes img to the file at output.
func writeImage(output string, img image.Image, format imaging.Format) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", layout.ErrIO, output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", layout.ErrIO, output, cerr)
		}
	}()

	if err := imaging.Encode(f, img, format); err != nil {
		return fmt.Errorf("%w: encode %s: %v", layout.ErrIO, format, err)
	}
	return nil
}

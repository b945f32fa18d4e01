package display

import (
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// WriteImageFile saves the framebuffer to a PNG or PPM file, chosen by
// the path extension.
func WriteImageFile(path string, fb *renderer.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	switch {
	case strings.HasSuffix(path, ".ppm"):
		err = fb.WritePPM(file)
	case strings.HasSuffix(path, ".png"):
		err = png.Encode(file, fb.ToImage())
	default:
		return fmt.Errorf("unsupported image format for %s (want .png or .ppm)", path)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

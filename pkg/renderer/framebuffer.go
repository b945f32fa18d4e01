package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Framebuffer is a width×height grid of display-ready colors, produced
// once per render and owned by the caller afterward.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set writes the pixel at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// Get reads the pixel at (x, y)
func (fb *Framebuffer) Get(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// ToImage quantizes the framebuffer into an 8-bit RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.Get(x, y).RGB8()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePPM encodes the framebuffer as a binary PPM (P6) image
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for _, pixel := range fb.Pixels {
		r, g, b := pixel.RGB8()
		if _, err := bw.Write([]byte{r, g, b}); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Package display encodes a finished framebuffer for output. It consumes
// only display-ready colors and has no coupling to the renderer beyond
// the Framebuffer type.
package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// Mode selects the terminal encoding for a framebuffer
type Mode int

const (
	// ModeTrueColor prints one full-block character per pixel with ANSI
	// 24-bit color.
	ModeTrueColor Mode = iota
	// ModeHalfBlock packs two vertical pixels per cell using the upper
	// half block with separate foreground/background colors.
	ModeHalfBlock
	// ModeBraille packs a 2×4 pixel cell into one braille character
	// (U+2800..U+28FF), colored by the average of the lit pixels.
	ModeBraille
	// ModeASCII maps luminance onto a density ramp, no color.
	ModeASCII
)

// ParseMode converts a CLI name into a terminal mode
func ParseMode(name string) (Mode, error) {
	switch name {
	case "truecolor":
		return ModeTrueColor, nil
	case "halfblock":
		return ModeHalfBlock, nil
	case "braille":
		return ModeBraille, nil
	case "ascii":
		return ModeASCII, nil
	default:
		return ModeTrueColor, fmt.Errorf("unknown output mode %q (want truecolor, halfblock, braille or ascii)", name)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeHalfBlock:
		return "halfblock"
	case ModeBraille:
		return "braille"
	case ModeASCII:
		return "ascii"
	default:
		return "truecolor"
	}
}

// PixelScale returns how many framebuffer pixels one terminal cell covers
// horizontally and vertically for this mode.
func (m Mode) PixelScale() (int, int) {
	switch m {
	case ModeHalfBlock:
		return 1, 2
	case ModeBraille:
		return 2, 4
	default:
		return 1, 1
	}
}

// WriteTerminal encodes the framebuffer for a terminal in the given mode
func WriteTerminal(w io.Writer, fb *renderer.Framebuffer, mode Mode) error {
	bw := bufio.NewWriter(w)
	switch mode {
	case ModeHalfBlock:
		writeHalfBlock(bw, fb)
	case ModeBraille:
		writeBraille(bw, fb)
	case ModeASCII:
		writeASCII(bw, fb)
	default:
		writeTrueColor(bw, fb)
	}
	return bw.Flush()
}

const ansiReset = "\x1b[0m"

func fgRGB(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

func bgRGB(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

func writeTrueColor(w *bufio.Writer, fb *renderer.Framebuffer) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.Get(x, y).RGB8()
			fmt.Fprintf(w, "%s█", fgRGB(r, g, b))
		}
		fmt.Fprintln(w, ansiReset)
	}
}

func writeHalfBlock(w *bufio.Writer, fb *renderer.Framebuffer) {
	for row := 0; row < fb.Height/2; row++ {
		for x := 0; x < fb.Width; x++ {
			tr, tg, tb := fb.Get(x, row*2).RGB8()
			br, bg, bb := fb.Get(x, row*2+1).RGB8()
			fmt.Fprintf(w, "%s%s▀", fgRGB(tr, tg, tb), bgRGB(br, bg, bb))
		}
		fmt.Fprintln(w, ansiReset)
	}
}

func writeASCII(w *bufio.Writer, fb *renderer.Framebuffer) {
	const ramp = " .:-=+*#%@"
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			lum := fb.Get(x, y).Luminance()
			if lum < 0 {
				lum = 0
			}
			if lum > 0.999 {
				lum = 0.999
			}
			w.WriteByte(ramp[int(lum*float64(len(ramp)))])
		}
		fmt.Fprintln(w)
	}
}

// Braille dot-to-bit mapping per the Unicode standard: the left column
// carries bits 0,1,2 and the bottom-left bit 6; the right column carries
// bits 3,4,5 and the bottom-right bit 7.
var brailleOffsets = [8]struct {
	dx, dy int
	bit    uint
}{
	{0, 0, 0}, {0, 1, 1}, {0, 2, 2},
	{1, 0, 3}, {1, 1, 4}, {1, 2, 5},
	{0, 3, 6}, {1, 3, 7},
}

// brailleThreshold is the luminance above which a subpixel dot is lit
const brailleThreshold = 0.15

func writeBraille(w *bufio.Writer, fb *renderer.Framebuffer) {
	cols := fb.Width / 2
	rows := fb.Height / 4

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			var pattern uint32
			var avg core.Vec3
			lit := 0

			for _, off := range brailleOffsets {
				px := col*2 + off.dx
				py := row*4 + off.dy
				if px >= fb.Width || py >= fb.Height {
					continue
				}
				c := fb.Get(px, py)
				if c.Luminance() > brailleThreshold {
					pattern |= 1 << off.bit
					avg = avg.Add(c)
					lit++
				}
			}

			if lit > 0 {
				avg = avg.Divide(float64(lit))
			}
			r, g, b := avg.RGB8()
			fmt.Fprintf(w, "%s%c", fgRGB(r, g, b), rune(0x2800+pattern))
		}
		fmt.Fprintln(w, ansiReset)
	}
}

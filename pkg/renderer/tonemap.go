package renderer

import (
	"fmt"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// ToneMapOp selects the HDR→LDR compression operator applied to each pixel
// after sample averaging, in linear space before gamma correction.
type ToneMapOp int

const (
	// ToneMapNone passes linear radiance through; values are clamped to
	// [0,1] at quantization time.
	ToneMapNone ToneMapOp = iota
	// ToneMapReinhard is the Reinhard global operator x/(1+x) per channel.
	ToneMapReinhard
	// ToneMapACES is the ACES filmic curve (Narkowicz 2015 approximation).
	ToneMapACES
)

// ParseToneMapOp converts a CLI name into an operator
func ParseToneMapOp(name string) (ToneMapOp, error) {
	switch name {
	case "none":
		return ToneMapNone, nil
	case "reinhard":
		return ToneMapReinhard, nil
	case "aces":
		return ToneMapACES, nil
	default:
		return ToneMapNone, fmt.Errorf("unknown tone map operator %q (want none, reinhard or aces)", name)
	}
}

func (op ToneMapOp) String() string {
	switch op {
	case ToneMapReinhard:
		return "reinhard"
	case ToneMapACES:
		return "aces"
	default:
		return "none"
	}
}

// Apply tone-maps a linear HDR color. Reinhard and ACES map any
// non-negative input into [0,1] per channel.
func (op ToneMapOp) Apply(color core.Vec3) core.Vec3 {
	switch op {
	case ToneMapReinhard:
		return core.Vec3{
			X: color.X / (1.0 + color.X),
			Y: color.Y / (1.0 + color.Y),
			Z: color.Z / (1.0 + color.Z),
		}
	case ToneMapACES:
		return core.Vec3{
			X: acesChannel(color.X),
			Y: acesChannel(color.Y),
			Z: acesChannel(color.Z),
		}
	default:
		return color
	}
}

// acesChannel evaluates (x(2.51x+0.03)) / (x(2.43x+0.59)+0.14), clamped
func acesChannel(x float64) float64 {
	const (
		a = 2.51
		b = 0.03
		c = 2.43
		d = 0.59
		e = 0.14
	)
	v := (x * (a*x + b)) / (x*(c*x+d) + e)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

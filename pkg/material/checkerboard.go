package material

import (
	"math"
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Checkerboard is a diffuse material whose albedo alternates between two
// colors in a world-space 3D checker pattern (not UV-mapped), selected by
// the sign of sin(s·x)·sin(s·y)·sin(s·z) at the hit point.
type Checkerboard struct {
	ColorA core.Vec3
	ColorB core.Vec3
	Scale  float64
}

// NewCheckerboard creates a new checkerboard material
func NewCheckerboard(colorA, colorB core.Vec3, scale float64) *Checkerboard {
	return &Checkerboard{ColorA: colorA, ColorB: colorB, Scale: scale}
}

// PatternAt returns the checker color at a world-space point
func (c *Checkerboard) PatternAt(point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.ColorA
	}
	return c.ColorB
}

// Scatter diffuses like Lambertian with the pattern color as albedo
func (c *Checkerboard) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return diffuseScatter(hit, c.PatternAt(hit.Point), random)
}

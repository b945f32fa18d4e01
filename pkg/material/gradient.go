package material

import (
	"math"
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Gradient is a diffuse material whose albedo blends between two colors by
// the angle between the surface normal and a fixed axis.
type Gradient struct {
	ColorA core.Vec3
	ColorB core.Vec3
	Axis   core.Vec3 // Unit blend axis
}

// NewGradient creates a new gradient material. The axis is normalized on
// construction.
func NewGradient(colorA, colorB core.Vec3, axis core.Vec3) *Gradient {
	return &Gradient{ColorA: colorA, ColorB: colorB, Axis: axis.Normalize()}
}

// AlbedoFor returns the blended albedo for a surface normal
func (g *Gradient) AlbedoFor(normal core.Vec3) core.Vec3 {
	t := 0.5 + 0.5*normal.Dot(g.Axis)
	t = math.Max(0, math.Min(1, t))
	return g.ColorA.Lerp(g.ColorB, t)
}

// Scatter diffuses like Lambertian with the blended color as albedo
func (g *Gradient) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return diffuseScatter(hit, g.AlbedoFor(hit.Normal), random)
}

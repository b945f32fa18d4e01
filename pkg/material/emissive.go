package material

import (
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Emissive represents a light-emitting material. It never scatters: paths
// terminate at emissive surfaces.
type Emissive struct {
	Color     core.Vec3
	Intensity float64
}

// NewEmissive creates a new emissive material
func NewEmissive(color core.Vec3, intensity float64) *Emissive {
	return &Emissive{Color: color, Intensity: intensity}
}

// Scatter implements the Material interface; emissive surfaces absorb all
// incoming rays.
func (e *Emissive) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the radiance contributed by the surface
func (e *Emissive) Emitted() core.Vec3 {
	return e.Color.Multiply(e.Intensity)
}

package material

import (
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements cosine-weighted diffuse scattering: the scatter
// direction is the normal plus a random unit vector. When the two nearly
// cancel, the normal itself is used to avoid a degenerate direction.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return diffuseScatter(hit, l.Albedo, random)
}

// diffuseScatter is the shared Lambertian lobe used by all diffuse
// materials (solid, checkerboard, gradient); only the albedo differs.
func diffuseScatter(hit *core.HitRecord, albedo core.Vec3, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: albedo,
	}, true
}

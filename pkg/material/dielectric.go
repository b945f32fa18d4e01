package material

import (
	"math"
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Dielectric represents a clear refractive material like glass. It never
// absorbs light: attenuation is always white.
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter chooses between reflection and refraction. Reflection wins on
// total internal reflection or when a uniform draw falls below the Schlick
// reflectance for the incident angle.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else if refracted, ok := unitDirection.Refract(hit.Normal, refractionRatio); ok {
		direction = refracted
	} else {
		direction = unitDirection.Reflect(hit.Normal)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Reflectance computes the Fresnel reflectance via Schlick's
// approximation: r0 + (1-r0)*(1-cosθ)^5 with r0 = ((1-n)/(1+n))².
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

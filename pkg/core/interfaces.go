package core

import "math/rand"

// Hittable is implemented by anything a ray can intersect. Hit restricts
// the intersection to t in (tMin, tMax) and returns the nearest record in
// range, or false on a miss.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}

// Material is implemented by surface BRDFs. Scatter returns the scattered
// ray and per-channel attenuation for this bounce, or false when the
// surface absorbs the ray. The random source is passed explicitly so
// rendering stays deterministic and parallel-safe.
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted() Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // Next ray along the light path
	Attenuation Vec3 // Per-channel color weight applied to incoming radiance
}

// HitRecord describes a single ray-object intersection. It is transient:
// produced by one Hit query and consumed immediately, never stored.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit normal, always facing against the incoming ray
	T         float64  // Ray parameter at the intersection
	FrontFace bool     // Whether the ray hit the front (outward) face
	Material  Material // Material of the hit object, not owned
}

// SetFaceNormal orients the normal against the incoming ray and records
// which face was hit, so materials can assume the normal points toward
// the incident medium.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

package geometry

import (
	"math"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Plane represents an infinite plane defined by a point and a unit normal
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material core.Material
}

// NewPlane creates a new plane. The normal is normalized on construction.
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects the plane within (tMin, tMax)
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Near-zero denominator means the ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// BoundingBox returns an effectively unbounded box so the plane's BVH leaf
// is always reachable by box tests.
func (p *Plane) BoundingBox() core.AABB {
	const big = 1e6
	return core.NewAABB(
		core.NewVec3(-big, -big, -big),
		core.NewVec3(big, big, big),
	)
}

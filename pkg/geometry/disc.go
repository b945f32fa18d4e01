package geometry

import (
	"math"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// Disc represents a flat circular disc defined by center, unit normal and
// radius.
type Disc struct {
	Center   core.Vec3
	Normal   core.Vec3
	Radius   float64
	Material core.Material
}

// NewDisc creates a new disc. The normal is normalized on construction.
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Disc {
	return &Disc{
		Center:   center,
		Normal:   normal.Normalize(),
		Radius:   radius,
		Material: material,
	}
}

// Hit intersects the containing plane, then rejects points outside the
// radius.
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(d.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := d.Center.Subtract(ray.Origin).Dot(d.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	if hitPoint.Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: d.Material,
	}
	hit.SetFaceNormal(ray, d.Normal)

	return hit, true
}

// BoundingBox returns a conservative radius cube padded against zero
// thickness when the disc is axis-aligned.
func (d *Disc) BoundingBox() core.AABB {
	extent := core.NewVec3(d.Radius, d.Radius, d.Radius)
	return core.NewAABB(
		d.Center.Subtract(extent),
		d.Center.Add(extent),
	).Expand(1e-4)
}

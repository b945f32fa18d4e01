package renderer

import "github.com/NORMAL-EX/photon-cli/pkg/core"

// Sky models the radiance returned for rays that escape the scene
type Sky interface {
	Sample(ray core.Ray) core.Vec3
}

// GradientSky blends between a horizon and zenith color by the ray's
// vertical component mapped to [0,1].
type GradientSky struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// Sample implements the Sky interface
func (s GradientSky) Sample(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.Horizon.Lerp(s.Zenith, t)
}

// SolidSky returns a flat color for every escaping ray. The zero value is
// a black sky, used for enclosed scenes like the Cornell box.
type SolidSky struct {
	Color core.Vec3
}

// Sample implements the Sky interface
func (s SolidSky) Sample(ray core.Ray) core.Vec3 {
	return s.Color
}

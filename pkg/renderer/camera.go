package renderer

import (
	"math"
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

// CameraConfig contains camera setup parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focal plane
}

// Camera maps image-plane coordinates plus lens jitter to primary rays
// using the thin-lens model.
type Camera struct {
	origin     core.Vec3
	lowerLeft  core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	u, v       core.Vec3
	lensRadius float64
}

// NewCamera builds the orthonormal basis w = normalize(lookFrom - lookAt),
// u = normalize(up × w), v = w × u, and scales the viewport by the focus
// distance so the focal plane lies exactly at FocusDistance.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * config.FocusDistance)
	vertical := v.Multiply(viewportHeight * config.FocusDistance)
	lowerLeft := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:     config.LookFrom,
		lowerLeft:  lowerLeft,
		horizontal: horizontal,
		vertical:   vertical,
		u:          u,
		v:          v,
		lensRadius: config.Aperture / 2,
	}
}

// GetRay generates a primary ray for viewport coordinates (s, t) in
// [0,1]². With a positive lens radius the origin is jittered across the
// aperture disk while the focal point stays fixed, producing depth of
// field for objects away from the focus plane.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeft.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

package scene

import (
	"github.com/NORMAL-EX/photon-cli/pkg/core"
	"github.com/NORMAL-EX/photon-cli/pkg/geometry"
	"github.com/NORMAL-EX/photon-cli/pkg/material"
	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// NewGalleryScene demonstrates every primitive and material in one frame:
// quad backdrop, metal disc pedestal, hollow glass sphere, gradient and
// checkerboard diffuse surfaces, plus emissive accent lights.
func NewGalleryScene() *Description {
	glass := material.NewDielectric(1.5)

	objects := []core.Hittable{
		// Checkerboard ground
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewCheckerboard(core.NewVec3(0.08, 0.08, 0.12), core.NewVec3(0.85, 0.85, 0.80), 8)),

		// Matte backdrop panel
		geometry.NewQuad(core.NewVec3(-6, 0, -5), core.NewVec3(12, 0, 0), core.NewVec3(0, 6, 0),
			material.NewLambertian(core.NewVec3(0.15, 0.15, 0.2))),

		// Reflective pedestal
		geometry.NewDisc(core.NewVec3(0, 0.01, -1), core.NewVec3(0, 1, 0), 2.5,
			material.NewMetal(core.NewVec3(0.7, 0.7, 0.75), 0.15)),

		// Hollow glass centerpiece
		geometry.NewSphere(core.NewVec3(0, 1, -1), 1.0, glass),
		geometry.NewSphere(core.NewVec3(0, 1, -1), -0.92, glass),

		// Gradient sphere with warm tones
		geometry.NewSphere(core.NewVec3(-2.8, 0.7, -0.5), 0.7,
			material.NewGradient(core.NewVec3(0.95, 0.3, 0.1), core.NewVec3(0.95, 0.85, 0.2), core.NewVec3(0, 1, 0))),

		// Brushed metal
		geometry.NewSphere(core.NewVec3(2.8, 0.8, -0.8), 0.8,
			material.NewMetal(core.NewVec3(0.9, 0.75, 0.6), 0.08)),

		// Accent spheres and a triangle wedge
		geometry.NewSphere(core.NewVec3(-1.2, 0.3, 0.8), 0.3,
			material.NewLambertian(core.NewVec3(0.1, 0.4, 0.85))),
		geometry.NewSphere(core.NewVec3(1.5, 0.25, 1), 0.25,
			material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0)),
		geometry.NewSphere(core.NewVec3(0.8, 0.2, 0.5), 0.2,
			material.NewLambertian(core.NewVec3(0.8, 0.15, 0.5))),
		geometry.NewTriangle(
			core.NewVec3(-0.4, 0, 1.6), core.NewVec3(0.4, 0, 1.6), core.NewVec3(0, 0.7, 1.4),
			material.NewLambertian(core.NewVec3(0.2, 0.7, 0.4))),

		// Warm key light and cool accent light
		geometry.NewSphere(core.NewVec3(-1, 3.5, -2), 0.3,
			material.NewEmissive(core.NewVec3(1.0, 0.9, 0.7), 12)),
		geometry.NewSphere(core.NewVec3(2, 2.5, 0), 0.2,
			material.NewEmissive(core.NewVec3(0.5, 0.7, 1.0), 10)),
	}

	return &Description{
		Name:    "Gallery",
		Objects: objects,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(0, 2.5, 6),
			LookAt:        core.NewVec3(0, 0.8, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          35,
			AspectRatio:   16.0 / 9.0,
			Aperture:      0.05,
			FocusDistance: 7,
		},
		Sky: renderer.GradientSky{
			Horizon: core.NewVec3(0.15, 0.15, 0.2),
			Zenith:  core.NewVec3(0.02, 0.02, 0.08),
		},
	}
}

package scene

import (
	"github.com/NORMAL-EX/photon-cli/pkg/core"
	"github.com/NORMAL-EX/photon-cli/pkg/geometry"
	"github.com/NORMAL-EX/photon-cli/pkg/material"
	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// NewMinimalScene builds a small benchmarking scene: a chrome sphere and
// two accents on a checkerboard ground.
func NewMinimalScene() *Description {
	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
			material.NewCheckerboard(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.9, 0.9, 0.9), 15)),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5,
			material.NewMetal(core.NewVec3(0.95, 0.95, 0.97), 0)),
		geometry.NewSphere(core.NewVec3(-1.2, 0.25, -0.5), 0.25,
			material.NewLambertian(core.NewVec3(0.9, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(1, 0.3, -0.8), 0.3,
			material.NewDielectric(1.5)),
	}

	return &Description{
		Name:    "Minimal",
		Objects: objects,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(0, 1.5, 2),
			LookAt:        core.NewVec3(0, 0.3, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          40,
			AspectRatio:   2.0,
			Aperture:      0.02,
			FocusDistance: 3,
		},
		Sky: renderer.GradientSky{
			Horizon: core.NewVec3(1, 1, 1),
			Zenith:  core.NewVec3(0.3, 0.5, 1.0),
		},
	}
}

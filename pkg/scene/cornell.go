package scene

import (
	"github.com/NORMAL-EX/photon-cli/pkg/core"
	"github.com/NORMAL-EX/photon-cli/pkg/geometry"
	"github.com/NORMAL-EX/photon-cli/pkg/material"
	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// NewCornellScene builds a Cornell box: quad walls, a ceiling area light,
// and a metal and a glass sphere, under a black sky.
func NewCornellScene() *Description {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	objects := []core.Hittable{
		// Floor
		geometry.NewQuad(core.NewVec3(-2, 0, -4), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(-2, 4, -4), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(-2, 0, -4), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), white),
		// Left wall (red)
		geometry.NewQuad(core.NewVec3(-2, 0, -4), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), red),
		// Right wall (green)
		geometry.NewQuad(core.NewVec3(2, 0, -4), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), green),
		// Ceiling area light
		geometry.NewQuad(core.NewVec3(-0.5, 3.99, -2.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1),
			material.NewEmissive(core.NewVec3(1.0, 0.95, 0.85), 18)),

		geometry.NewSphere(core.NewVec3(-0.7, 0.6, -2.2), 0.6, material.NewMetal(core.NewVec3(0.9, 0.9, 0.95), 0.02)),
		geometry.NewSphere(core.NewVec3(0.7, 0.45, -1.5), 0.45, material.NewDielectric(1.5)),
	}

	return &Description{
		Name:    "Cornell Box",
		Objects: objects,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(0, 2, 3.5),
			LookAt:        core.NewVec3(0, 1.5, -2),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          50,
			AspectRatio:   1.0,
			Aperture:      0,
			FocusDistance: 5,
		},
		Sky: renderer.SolidSky{},
	}
}

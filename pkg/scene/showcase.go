package scene

import (
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
	"github.com/NORMAL-EX/photon-cli/pkg/geometry"
	"github.com/NORMAL-EX/photon-cli/pkg/material"
	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// NewShowcaseScene builds the classic spheres-field scene: three hero
// spheres (hollow glass, diffuse, mirror) over a checkerboard ground with
// a field of small random spheres.
func NewShowcaseScene(seed int64) *Description {
	random := rand.New(rand.NewSource(seed))
	objects := make([]core.Hittable, 0, 260)

	// Checkerboard ground sphere
	objects = append(objects, geometry.NewSphere(
		core.NewVec3(0, -1000, 0), 1000,
		material.NewCheckerboard(core.NewVec3(0.05, 0.05, 0.05), core.NewVec3(0.95, 0.95, 0.95), 10),
	))

	// Hollow glass hero sphere: outer shell plus negative-radius bubble
	glass := material.NewDielectric(1.5)
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(0, 1, 0), -0.95, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.7, 0.15, 0.15))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.85, 0.85, 0.9), 0)),
	)

	heroCenters := []core.Vec3{
		core.NewVec3(4, 0.2, 0),
		core.NewVec3(-4, 0.2, 0),
		core.NewVec3(0, 0.2, 0),
	}

	for a := -8; a < 8; a++ {
		for b := -8; b < 8; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			tooClose := false
			for _, hero := range heroCenters {
				if center.Subtract(hero).Length() < 0.9 {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}

			var mat core.Material
			switch choose := random.Float64(); {
			case choose < 0.7:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				mat = material.NewLambertian(albedo)
			case choose < 0.9:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				mat = material.NewMetal(albedo, 0.3*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			objects = append(objects, geometry.NewSphere(center, 0.2, mat))
		}
	}

	return &Description{
		Name:    "Showcase",
		Objects: objects,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0.5, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   2.0,
			Aperture:      0.1,
			FocusDistance: 10,
		},
		Sky: renderer.GradientSky{
			Horizon: core.NewVec3(1, 1, 1),
			Zenith:  core.NewVec3(0.5, 0.7, 1.0),
		},
	}
}

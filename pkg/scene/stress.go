package scene

import (
	"math/rand"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
	"github.com/NORMAL-EX/photon-cli/pkg/geometry"
	"github.com/NORMAL-EX/photon-cli/pkg/material"
	"github.com/NORMAL-EX/photon-cli/pkg/renderer"
)

// NewStressScene builds a 500-sphere field to exercise BVH construction
// and traversal.
func NewStressScene(seed int64) *Description {
	random := rand.New(rand.NewSource(seed))
	objects := make([]core.Hittable, 0, 501)

	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	for i := 0; i < 500; i++ {
		center := core.NewVec3(
			-15+30*random.Float64(),
			0.1+0.3*random.Float64(),
			-15+30*random.Float64(),
		)
		radius := 0.08 + 0.27*random.Float64()
		albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
		objects = append(objects, geometry.NewSphere(center, radius, material.NewLambertian(albedo)))
	}

	return &Description{
		Name:    "Stress Test (500 spheres)",
		Objects: objects,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(10, 4, 10),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          30,
			AspectRatio:   2.0,
			Aperture:      0,
			FocusDistance: 14,
		},
		Sky: renderer.GradientSky{
			Horizon: core.NewVec3(1.0, 0.95, 0.88),
			Zenith:  core.NewVec3(0.4, 0.6, 1.0),
		},
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// Right triangle in the z=0 plane
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		nil,
	)

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
	}{
		{
			name:    "hit near centroid",
			ray:     core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)),
			wantHit: true,
		},
		{
			name:    "outside the hypotenuse",
			ray:     core.NewRay(core.NewVec3(1.5, 1.5, 5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "outside an edge",
			ray:     core.NewRay(core.NewVec3(-0.5, 0.5, 5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "parallel to the triangle plane",
			ray:     core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "behind the origin",
			ray:     core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tri.Hit(tt.ray, 0.001, math.Inf(1))
			if ok != tt.wantHit {
				t.Fatalf("Hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && (math.IsNaN(hit.T) || hit.T <= 0) {
				t.Errorf("Invalid t: %f", hit.T)
			}
		})
	}
}

func TestTriangle_HitDistanceAndNormal(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, -3),
		core.NewVec3(1, -1, -3),
		core.NewVec3(0, 1, -3),
		nil,
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := tri.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected t=3, got %f", hit.T)
	}
	// Normal opposes the incoming ray
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Normal %v does not oppose ray direction", hit.Normal)
	}
}

func TestTriangle_BoundingBoxCoversVertices(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		nil,
	)
	box := tri.BoundingBox()

	// Flat in z, so the box must carry padding to stay hittable
	if box.Max.Z-box.Min.Z <= 0 {
		t.Error("Expected padded bounding box for a flat triangle")
	}
	if box.Min.X > 0 || box.Max.X < 2 || box.Min.Y > 0 || box.Max.Y < 2 {
		t.Errorf("Box %v does not cover vertices", box)
	}
}

func TestTriangle_DegenerateMiss(t *testing.T) {
	// Collinear vertices produce a triangle no ray can hit
	degenerate := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0),
		nil,
	)
	ray := core.NewRay(core.NewVec3(1, 5, 0), core.NewVec3(0, -1, 0))
	if _, ok := degenerate.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("Expected miss on degenerate triangle")
	}
}

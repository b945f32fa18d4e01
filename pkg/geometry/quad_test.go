package geometry

import (
	"math"
	"testing"

	"github.com/NORMAL-EX/photon-cli/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// Unit-ish quad in the z=0 plane spanning [0,2]x[0,2]
	quad := NewQuad(
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
			name:    "center hit",
			ray:     core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1)),
			wantHit: true,
		},
		{
			name:    "corner hit",
			ray:     core.NewRay(core.NewVec3(0.01, 0.01, 5), core.NewVec3(0, 0, -1)),
			wantHit: true,
		},
		{
			name:    "beyond the u edge",
			ray:     core.NewRay(core.NewVec3(2.5, 1, 5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "beyond the v edge",
			ray:     core.NewRay(core.NewVec3(1, -0.5, 5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "parallel to the quad",
			ray:     core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 1, 0)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := quad.Hit(tt.ray, 0.001, math.Inf(1))
			if ok != tt.wantHit {
				t.Errorf("Hit = %v, want %v", ok, tt.wantHit)
			}
		})
	}
}

func TestQuad_NormalOpposesRay(t *testing.T) {
	quad := NewQuad(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		nil,
	)

	front := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := quad.Hit(front, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit from the front")
	}
	if hit.Normal.Dot(front.Direction) >= 0 {
		t.Errorf("Normal %v does not oppose ray", hit.Normal)
	}

	back := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok = quad.Hit(back, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit from the back")
	}
	if hit.Normal.Dot(back.Direction) >= 0 {
		t.Errorf("Back-face normal %v does not oppose ray", hit.Normal)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit")
	}
}

func TestQuad_TiltedEdgeVectors(t *testing.T) {
	// Non-axis-aligned quad leaning in z
	quad := NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 1),
		core.NewVec3(0, 1, 0),
		nil,
	)

	hit, ok := quad.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on tilted quad")
	}
	if math.IsNaN(hit.T) {
		t.Error("Non-finite hit distance")
	}
}

func TestQuad_BoundingBoxCoversCorners(t *testing.T) {
	quad := NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		nil,
	)
	box := quad.BoundingBox()
	if box.Min.X > 0 || box.Max.X < 2 || box.Min.Y > 0 || box.Max.Y < 2 {
		t.Errorf("Box %v does not cover the quad", box)
	}
	if box.Max.Z-box.Min.Z <= 0 {
		t.Error("Expected padding on the flat axis")
	}
}

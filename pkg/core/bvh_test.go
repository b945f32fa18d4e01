package core

import (
	"math"
	"math/rand"
	"testing"
)

// mockSphere is a minimal Hittable for exercising the BVH without
// depending on the geometry package.
type mockSphere struct {
	center Vec3
	radius float64
}

func (s *mockSphere) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &HitRecord{T: root, Point: ray.At(root)}
	hit.SetFaceNormal(ray, hit.Point.Subtract(s.center).Divide(s.radius))
	return hit, true
}

func (s *mockSphere) BoundingBox() AABB {
	r := NewVec3(s.radius, s.radius, s.radius)
	return NewAABB(s.center.Subtract(r), s.center.Add(r))
}

// bruteForceHit scans every object linearly, keeping the closest hit.
func bruteForceHit(objects []Hittable, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	closestT := tMax

	for _, obj := range objects {
		if hit, ok := obj.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}
	return closest, closest != nil
}

func TestBVH_EmptyScene(t *testing.T) {
	if _, err := NewBVH(nil); err != ErrEmptyScene {
		t.Errorf("Expected ErrEmptyScene, got %v", err)
	}
	if _, err := NewBVH([]Hittable{}); err != ErrEmptyScene {
		t.Errorf("Expected ErrEmptyScene for empty slice, got %v", err)
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := &mockSphere{center: NewVec3(0, 0, -5), radius: 1}
	bvh, err := NewBVH([]Hittable{sphere})
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}

	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	hit, ok := bvh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on single sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}

	miss := NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0))
	if _, ok := bvh.Hit(miss, 0.001, math.Inf(1)); ok {
		t.Error("Expected miss")
	}
}

func TestBVH_ClosestOfOverlapping(t *testing.T) {
	objects := []Hittable{
		&mockSphere{center: NewVec3(0, 0, -10), radius: 1},
		&mockSphere{center: NewVec3(0, 0, -5), radius: 1},
		&mockSphere{center: NewVec3(0, 0, -20), radius: 1},
	}
	bvh, err := NewBVH(objects)
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}

	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	hit, ok := bvh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest sphere at t=4, got t=%f", hit.T)
	}
}

// The BVH must agree exactly with a linear scan over the same objects.
func TestBVH_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(12345))

	objects := make([]Hittable, 200)
	for i := range objects {
		objects[i] = &mockSphere{
			center: NewVec3(
				random.Float64()*20-10,
				random.Float64()*20-10,
				random.Float64()*20-10,
			),
			radius: 0.1 + random.Float64()*1.5,
		}
	}

	bvh, err := NewBVH(objects)
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}

	for i := 0; i < 2000; i++ {
		origin := NewVec3(
			random.Float64()*40-20,
			random.Float64()*40-20,
			random.Float64()*40-20,
		)
		direction := RandomUnitVector(random)
		ray := NewRay(origin, direction)

		bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))
		bruteHit, bruteOK := bruteForceHit(objects, ray, 0.001, math.Inf(1))

		if bvhOK != bruteOK {
			t.Fatalf("Ray %d: BVH hit=%v, brute force hit=%v", i, bvhOK, bruteOK)
		}
		if !bvhOK {
			continue
		}
		if math.Abs(bvhHit.T-bruteHit.T) > 1e-9 {
			t.Fatalf("Ray %d: BVH t=%f, brute force t=%f", i, bvhHit.T, bruteHit.T)
		}
		if !vecApproxEqual(bvhHit.Point, bruteHit.Point, 1e-9) {
			t.Fatalf("Ray %d: hit points differ: %v vs %v", i, bvhHit.Point, bruteHit.Point)
		}
	}
}

func TestBVH_BoundingBoxEnclosesAll(t *testing.T) {
	objects := []Hittable{
		&mockSphere{center: NewVec3(-5, 0, 0), radius: 1},
		&mockSphere{center: NewVec3(5, 3, -2), radius: 2},
	}
	bvh, err := NewBVH(objects)
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}

	box := bvh.BoundingBox()
	for _, obj := range objects {
		ob := obj.BoundingBox()
		union := box.Union(ob)
		if union.Min != box.Min || union.Max != box.Max {
			t.Errorf("Root box %v does not enclose %v", box, ob)
		}
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := NewVec3(0, 0, 1)

	front := &HitRecord{}
	front.SetFaceNormal(NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), outward)
	if !front.FrontFace || front.Normal != outward {
		t.Errorf("Expected front face with normal %v, got frontFace=%v normal=%v",
			outward, front.FrontFace, front.Normal)
	}

	back := &HitRecord{}
	back.SetFaceNormal(NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), outward)
	if back.FrontFace || back.Normal != outward.Negate() {
		t.Errorf("Expected back face with flipped normal, got frontFace=%v normal=%v",
			back.FrontFace, back.Normal)
	}
}

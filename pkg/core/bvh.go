package core

import (
	"errors"
	"sort"
)

// BVHNode is a node in the bounding volume hierarchy. Leaf nodes hold a
// single object; interior nodes hold two children. Every node's box is the
// union of its descendants' boxes. The tree is built once and immutable
// afterward, so traversal needs no synchronization.
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Object      Hittable // Non-nil for leaf nodes only
}

// BVH accelerates nearest-intersection queries over a set of objects
type BVH struct {
	Root *BVHNode
}

// ErrEmptyScene is returned when a BVH is built over zero objects, which
// is a programming error in scene construction.
var ErrEmptyScene = errors.New("bvh: cannot build over empty object list")

// NewBVH constructs a BVH from a slice of objects. The input slice is
// copied so the caller's ordering is not disturbed.
func NewBVH(objects []Hittable) (*BVH, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}

	sorted := make([]Hittable, len(objects))
	copy(sorted, objects)

	return &BVH{Root: buildNode(sorted)}, nil
}

// buildNode recursively partitions objects: single objects become leaves,
// larger groups are sorted along the longest axis of their union box by
// the sum of box min+max (a centroid approximation) and split at the
// midpoint index.
func buildNode(objects []Hittable) *BVHNode {
	if len(objects) == 1 {
		return &BVHNode{
			BoundingBox: objects[0].BoundingBox(),
			Object:      objects[0],
		}
	}

	enclosing := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		enclosing = enclosing.Union(obj.BoundingBox())
	}
	axis := enclosing.LongestAxis()

	// Stable sort keeps construction deterministic for equal keys
	sort.SliceStable(objects, func(i, j int) bool {
		bi := objects[i].BoundingBox()
		bj := objects[j].BoundingBox()
		return bi.Min.Axis(axis)+bi.Max.Axis(axis) < bj.Min.Axis(axis)+bj.Max.Axis(axis)
	})

	mid := len(objects) / 2
	left := buildNode(objects[:mid])
	right := buildNode(objects[mid:])

	return &BVHNode{
		BoundingBox: left.BoundingBox.Union(right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// Hit returns the nearest intersection in (tMin, tMax), identical to a
// linear scan over all objects but pruned by box tests.
func (b *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return b.Root.hit(ray, tMin, tMax)
}

// BoundingBox returns the box enclosing the whole hierarchy
func (b *BVH) BoundingBox() AABB {
	return b.Root.BoundingBox
}

func (n *BVHNode) hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !n.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if n.Object != nil {
		return n.Object.Hit(ray, tMin, tMax)
	}

	// Probe left first, then tighten tMax so any right hit found is
	// guaranteed nearer than the left one.
	hitLeft, okLeft := n.Left.hit(ray, tMin, tMax)
	far := tMax
	if okLeft {
		far = hitLeft.T
	}
	if hitRight, okRight := n.Right.hit(ray, tMin, far); okRight {
		return hitRight, true
	}
	return hitLeft, okLeft
}

package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector, used for points, directions and linear-light
// colors alike. Color channels are HDR and not bounded to [0,1] until
// explicitly saturated.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	inv := 1.0 / scalar
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// MultiplyVec returns the component-wise (Hadamard) product of two vectors,
// used for per-channel color attenuation.
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Lerp returns the component-wise linear interpolation v*(1-t) + other*t
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Multiply(1.0 - t).Add(other.Multiply(t))
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction. Callers must
// ensure non-degeneracy; near-zero directions are filtered out earlier
// via NearZero so a zero-length input never reaches this division.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Axis returns the component selected by index (0=X, 1=Y, 2=Z)
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Reflect returns the specular reflection of v about the surface normal n:
// v - 2*dot(v,n)*n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract applies Snell's law for a unit incident direction v and unit
// normal n. Returns false when the discriminant is negative, signaling
// total internal reflection.
func (v Vec3) Refract(n Vec3, etaRatio float64) (Vec3, bool) {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	discriminant := 1.0 - rPerp.LengthSquared()
	if discriminant < 0 {
		return Vec3{}, false
	}
	rParallel := n.Multiply(-math.Sqrt(discriminant))
	return rPerp.Add(rParallel), true
}

// NearZero reports whether all components are below a small epsilon, used
// to avoid degenerate scatter directions.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Saturate clamps each component to [0, 1]
func (v Vec3) Saturate() Vec3 {
	return Vec3{
		X: math.Max(0, math.Min(1, v.X)),
		Y: math.Max(0, math.Min(1, v.Y)),
		Z: math.Max(0, math.Min(1, v.Z)),
	}
}

// GammaCorrect applies the sRGB gamma curve (γ=2.2 approximated as sqrt)
func (v Vec3) GammaCorrect() Vec3 {
	return Vec3{
		X: math.Sqrt(math.Max(0, v.X)),
		Y: math.Sqrt(math.Max(0, v.Y)),
		Z: math.Sqrt(math.Max(0, v.Z)),
	}
}

// Luminance returns the Rec. 709 luminance of an RGB color
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// RGB8 quantizes a [0,1] color to 8-bit channels for display encoders
func (v Vec3) RGB8() (uint8, uint8, uint8) {
	c := v.Saturate()
	return uint8(c.X * 255.999), uint8(c.Y * 255.999), uint8(c.Z * 255.999)
}

// Ray represents a parametric ray origin + t*direction. The direction is
// not necessarily normalized; intersection formulas account for that.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// RandomInUnitSphere generates a uniformly distributed point inside the
// unit sphere via rejection sampling.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random unit vector via rejection sampling
// on the unit sphere. Added to a surface normal this yields directions
// distributed proportionally to cos(θ), the usual importance sampling
// for Lambertian surfaces.
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk, used to
// jitter the camera ray origin across the lens aperture.
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

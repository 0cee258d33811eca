package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
	Mirror bool
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// NewMirrorSphere creates a sphere that reflects rays instead of shading them
func NewMirrorSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	s := NewSphere(center, radius, color)
	s.Mirror = true
	return s
}

// intersect solves |O + tD - C|² = r² and returns the nearest root in [tMin, tMax].
// A tangent ray (zero discriminant) counts as a miss.
func (s *Sphere) intersect(ray core.Ray, tMin, tMax float64) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 || a == 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first, the farther one when the ray starts inside
	root := (-b - sqrtD) / (2 * a)
	if root < tMin {
		root = (-b + sqrtD) / (2 * a)
	}

	if root < tMin || root > tMax {
		return 0, false
	}
	return root, true
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax, time float64, rec *HitRecord) bool {
	t, ok := s.intersect(ray, tMin, tMax)
	if !ok {
		return false
	}

	rec.T = t
	rec.Normal = ray.At(t).Subtract(s.Center).Normalize()
	rec.Color = s.Color
	rec.Mirror = s.Mirror
	return true
}

// ShadowHit tests if a ray intersects with the sphere without computing surface data
func (s *Sphere) ShadowHit(ray core.Ray, tMin, tMax, time float64) bool {
	_, ok := s.intersect(ray, tMin, tMax)
	return ok
}

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere(c = %v, r = %g, colour = %v)", s.Center, s.Radius, s.Color)
}

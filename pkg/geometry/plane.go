package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3  // A point on the plane
	Normal core.Vec3  // Unit normal vector
	Color  core.Color // Colour of the plane
	Mirror bool
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, color core.Color) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(), // Ensure normal is normalized
		Color:  color,
	}
}

// NewMirrorPlane creates a plane that reflects rays instead of shading them
func NewMirrorPlane(point, normal core.Vec3, color core.Color) *Plane {
	p := NewPlane(point, normal, color)
	p.Mirror = true
	return p
}

// intersect returns t = n·(point - O) / n·D when it lies in [tMin, tMax]
func (p *Plane) intersect(ray core.Ray, tMin, tMax float64) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < ParallelEpsilon {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return 0, false
	}
	return t, true
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax, time float64, rec *HitRecord) bool {
	t, ok := p.intersect(ray, tMin, tMax)
	if !ok {
		return false
	}

	rec.T = t
	rec.Normal = p.Normal
	rec.Color = p.Color
	rec.Mirror = p.Mirror
	return true
}

// ShadowHit tests if a ray intersects with the plane without computing surface data
func (p *Plane) ShadowHit(ray core.Ray, tMin, tMax, time float64) bool {
	_, ok := p.intersect(ray, tMin, tMax)
	return ok
}

func (p *Plane) String() string {
	return fmt.Sprintf("plane(p = %v, n = %v, colour = %v)", p.Point, p.Normal, p.Color)
}

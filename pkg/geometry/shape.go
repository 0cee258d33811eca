package geometry

import "github.com/df07/go-instance-raytracer/pkg/core"

const (
	// Epsilon is the minimum forward distance along a ray, keeping hits off the origin surface
	Epsilon = 1e-4
	// ShadowBias is added to the minimum distance of shadow rays to avoid shadow acne
	ShadowBias = 1e-4
	// FarDistance is the initial upper bound of a closest-hit search
	FarDistance = 1e30
	// ParallelEpsilon is the |n·d| below which a ray counts as parallel to a surface
	ParallelEpsilon = 1e-8
)

// HitRecord contains information about a ray-object intersection.
// Point is not filled in by shapes; the caller assigns it once the closest hit is known.
type HitRecord struct {
	T      float64    // Parameter t along the ray
	Normal core.Vec3  // Unit surface normal at intersection
	Point  core.Vec3  // World-space point of intersection, set by the caller
	Color  core.Color // Surface colour
	Mirror bool       // Whether the surface reflects like a perfect mirror
}

// Shape interface for objects that can be hit by rays.
//
// Hit reports the nearest intersection with t in [tMin, tMax] and fills rec.
// ShadowHit answers the same question without producing surface data.
// The time parameter is reserved for motion blur and ignored by every shape.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax, time float64, rec *HitRecord) bool
	ShadowHit(ray core.Ray, tMin, tMax, time float64) bool
}

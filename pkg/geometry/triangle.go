package geometry

import (
	"fmt"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// Triangle represents a single flat-shaded triangle defined by three vertices
type Triangle struct {
	P0, P1, P2 core.Vec3
	Color      core.Color
	Mirror     bool
}

// NewTriangle creates a new triangle; the normal follows the winding p0 -> p1 -> p2
func NewTriangle(p0, p1, p2 core.Vec3, color core.Color) *Triangle {
	return &Triangle{
		P0:    p0,
		P1:    p1,
		P2:    p2,
		Color: color,
	}
}

// intersectTriangle solves O + tD = p0 + β(p1-p0) + γ(p2-p0) with Cramer's rule.
// It requires β, γ in (0,1) and β+γ < 1, and t in [tMin, tMax].
// A zero determinant (ray parallel to the triangle or a degenerate triangle) is a miss.
func intersectTriangle(p0, p1, p2 core.Vec3, ray core.Ray, tMin, tMax float64) (t, beta, gamma float64, ok bool) {
	a := p0.X - p1.X
	b := p0.Y - p1.Y
	c := p0.Z - p1.Z

	d := p0.X - p2.X
	e := p0.Y - p2.Y
	f := p0.Z - p2.Z

	g := ray.Direction.X
	h := ray.Direction.Y
	i := ray.Direction.Z

	j := p0.X - ray.Origin.X
	k := p0.Y - ray.Origin.Y
	l := p0.Z - ray.Origin.Z

	eihf := e*i - h*f
	gfdi := g*f - d*i
	dheg := d*h - e*g

	denom := a*eihf + b*gfdi + c*dheg
	if denom == 0 {
		return 0, 0, 0, false
	}

	beta = (j*eihf + k*gfdi + l*dheg) / denom
	if !(beta > 0 && beta < 1) {
		return 0, 0, 0, false
	}

	akjb := a*k - j*b
	jcal := j*c - a*l
	blkc := b*l - k*c

	gamma = (i*akjb + h*jcal + g*blkc) / denom
	if !(gamma > 0 && gamma < 1) || beta+gamma >= 1 {
		return 0, 0, 0, false
	}

	t = -(f*akjb + e*jcal + d*blkc) / denom
	if !(t >= tMin && t <= tMax) {
		return 0, 0, 0, false
	}
	return t, beta, gamma, true
}

// Hit tests if a ray intersects with the triangle
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax, time float64, rec *HitRecord) bool {
	t, _, _, ok := intersectTriangle(tr.P0, tr.P1, tr.P2, ray, tMin, tMax)
	if !ok {
		return false
	}

	rec.T = t
	rec.Normal = tr.GetNormal()
	rec.Color = tr.Color
	rec.Mirror = tr.Mirror
	return true
}

// ShadowHit tests if a ray intersects with the triangle without computing surface data
func (tr *Triangle) ShadowHit(ray core.Ray, tMin, tMax, time float64) bool {
	_, _, _, ok := intersectTriangle(tr.P0, tr.P1, tr.P2, ray, tMin, tMax)
	return ok
}

// GetNormal returns the unit normal of the current vertices
func (tr *Triangle) GetNormal() core.Vec3 {
	return tr.P1.Subtract(tr.P0).Cross(tr.P2.Subtract(tr.P0)).Normalize()
}

func (tr *Triangle) String() string {
	return fmt.Sprintf("triangle([%v], [%v], [%v], colour: [%v])", tr.P0, tr.P1, tr.P2, tr.Color)
}

package core

import "math"

// onbEpsilon guards against building a basis from (nearly) parallel vectors
const onbEpsilon = 0.001

// ONB is an orthonormal basis
type ONB struct {
	U, V, W Vec3
}

// NewONBFromW builds a basis whose W axis is w, picking an arbitrary perpendicular U
func NewONBFromW(w Vec3) ONB {
	w = w.Normalize()
	n := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 1-onbEpsilon {
		n = NewVec3(0, 1, 0)
	}
	u := n.Cross(w).Normalize()
	return ONB{U: u, V: w.Cross(u), W: w}
}

// NewONBFromWV builds a basis whose W axis is w and whose V axis lies in the plane of w and v.
// Falls back to NewONBFromW when v is parallel to w.
func NewONBFromWV(w, v Vec3) ONB {
	w = w.Normalize()
	u := v.Cross(w)
	if u.Length() < onbEpsilon {
		return NewONBFromW(w)
	}
	u = u.Normalize()
	return ONB{U: u, V: w.Cross(u), W: w}
}

// Local maps coordinates (a, b, c) expressed in the basis to world space
func (o ONB) Local(a, b, c float64) Vec3 {
	return o.U.Multiply(a).Add(o.V.Multiply(b)).Add(o.W.Multiply(c))
}

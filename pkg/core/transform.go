package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// singularEpsilon is the smallest |det| / s³ of an invertible matrix, where s is the
// largest entry of its linear part
const singularEpsilon = 1e-12

// ErrSingularTransform is returned when a transform has no inverse
var ErrSingularTransform = errors.New("transform is singular")

// Transform is a 4x4 affine transformation matrix
type Transform struct {
	m mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mgl64.Ident4()}
}

// NewTransform builds a transform from row-major entries
func NewTransform(rows [4][4]float64) Transform {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return Transform{m: m}
}

// Translate returns a translation by (x, y, z)
func Translate(x, y, z float64) Transform {
	return Transform{m: mgl64.Translate3D(x, y, z)}
}

// Scale returns a non-uniform scale
func Scale(x, y, z float64) Transform {
	return Transform{m: mgl64.Scale3D(x, y, z)}
}

// RotateX returns a rotation of angle radians about the X axis
func RotateX(angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3DX(angle)}
}

// RotateY returns a rotation of angle radians about the Y axis
func RotateY(angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3DY(angle)}
}

// RotateZ returns a rotation of angle radians about the Z axis
func RotateZ(angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3DZ(angle)}
}

// Rotate returns a rotation of angle radians about an arbitrary axis
func Rotate(axis Vec3, angle float64) Transform {
	a := axis.Normalize()
	return Transform{m: mgl64.HomogRotate3D(angle, mgl64.Vec3{a.X, a.Y, a.Z})}
}

// LookAt returns the view matrix for an eye looking along gaze with the given up vector.
// It maps world space into a camera space where the camera sits at the origin looking down -Z.
func LookAt(eye, gaze, up Vec3) Transform {
	onb := NewONBFromWV(gaze.Negate(), up)
	basis := NewTransform([4][4]float64{
		{onb.U.X, onb.U.Y, onb.U.Z, 0},
		{onb.V.X, onb.V.Y, onb.V.Z, 0},
		{onb.W.X, onb.W.Y, onb.W.Z, 0},
		{0, 0, 0, 1},
	})
	return basis.Mul(Translate(-eye.X, -eye.Y, -eye.Z))
}

// Mul composes two transforms; the result applies other first, then t
func (t Transform) Mul(other Transform) Transform {
	return Transform{m: t.m.Mul4(other.m)}
}

// Det returns the determinant
func (t Transform) Det() float64 {
	return t.m.Det()
}

// Inverse returns the matrix inverse, or ErrSingularTransform
func (t Transform) Inverse() (Transform, error) {
	scale := t.linearScale()
	if scale == 0 || math.Abs(t.m.Det()) <= singularEpsilon*scale*scale*scale {
		return Transform{}, ErrSingularTransform
	}
	inv := t.m.Inv()
	for _, v := range inv {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Transform{}, ErrSingularTransform
		}
	}
	return Transform{m: inv}, nil
}

// linearScale returns the largest absolute entry of the upper-left 3x3 block
func (t Transform) linearScale() float64 {
	scale := 0.0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			scale = max(scale, math.Abs(t.m.At(r, c)))
		}
	}
	return scale
}

// Transpose returns the transposed matrix
func (t Transform) Transpose() Transform {
	return Transform{m: t.m.Transpose()}
}

// At returns the entry at row r, column c
func (t Transform) At(r, c int) float64 {
	return t.m.At(r, c)
}

// Point transforms a position (w = 1)
func (t Transform) Point(p Vec3) Vec3 {
	v := t.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if v[3] != 1 && v[3] != 0 {
		return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return Vec3{v[0], v[1], v[2]}
}

// Vector transforms a direction (w = 0), ignoring translation
func (t Transform) Vector(d Vec3) Vec3 {
	v := t.m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// ApproxEqual reports whether every entry differs by at most tolerance
func (t Transform) ApproxEqual(other Transform, tolerance float64) bool {
	return t.m.ApproxFuncEqual(other.m, func(a, b float64) bool {
		return math.Abs(a-b) <= tolerance
	})
}

// IsInverse reports whether t * inverse is the identity. Each entry of the product may
// differ from the identity by tolerance times the sum of the magnitudes of its terms, so
// large translations are judged by relative rather than absolute error.
func (t Transform) IsInverse(inverse Transform, tolerance float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum, magnitude float64
			for k := 0; k < 4; k++ {
				term := t.m.At(r, k) * inverse.m.At(k, c)
				sum += term
				magnitude += math.Abs(term)
			}
			expected := 0.0
			if r == c {
				expected = 1
			}
			if math.Abs(sum-expected) > tolerance*max(1, magnitude) {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether t is the identity within tolerance
func (t Transform) IsIdentity(tolerance float64) bool {
	return t.ApproxEqual(Identity(), tolerance)
}

package geometry

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// MaxInstanceDepth bounds how deeply instances (and lists of instances) may nest
const MaxInstanceDepth = 64

// inverseTolerance is the relative error allowed in transform * inverse
const inverseTolerance = 1e-9

// nested is implemented by shapes that wrap other shapes
type nested interface {
	nestingDepth() int
}

// parent is implemented by shapes that hold references to other shapes
type parent interface {
	children() []Shape
}

// sameShape compares shapes by identity. Values of non-comparable types (structs holding
// slices, for example) are never equal to anything.
func sameShape(a, b Shape) bool {
	if a == nil || b == nil || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.ValueOf(a).Comparable() && a == b
}

// contains reports whether target is reachable from s
func contains(s, target Shape, depth int) bool {
	if sameShape(s, target) {
		return true
	}
	p, ok := s.(parent)
	if !ok || depth > MaxInstanceDepth {
		return false
	}
	for _, child := range p.children() {
		if contains(child, target, depth+1) {
			return true
		}
	}
	return false
}

func depthOf(s Shape) int {
	if n, ok := s.(nested); ok {
		return n.nestingDepth()
	}
	return 0
}

// Instance places a shape in the world through an affine object-to-world transform
type Instance struct {
	shape        Shape
	transform    core.Transform // object -> world
	inverse      core.Transform // world -> object
	normalMatrix core.Transform // transpose of inverse, for normals
	depth        int
	Mirror       bool // Forces mirror reflection for every hit on the wrapped shape
}

// NewInstance wraps shape with transform, computing the inverse
func NewInstance(shape Shape, transform core.Transform) (*Instance, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "instance transform")
	}
	return newInstance(shape, transform, inverse)
}

// NewInstanceWithInverse wraps shape with a transform and a precomputed inverse.
// The pair is rejected when transform * inverse is not the identity.
func NewInstanceWithInverse(shape Shape, transform, inverse core.Transform) (*Instance, error) {
	if !transform.IsInverse(inverse, inverseTolerance) {
		return nil, errors.New("instance inverse does not match transform")
	}
	return newInstance(shape, transform, inverse)
}

func newInstance(shape Shape, transform, inverse core.Transform) (*Instance, error) {
	if shape == nil {
		return nil, errors.New("instance of nil shape")
	}
	depth := depthOf(shape) + 1
	if depth > MaxInstanceDepth {
		return nil, errors.Errorf("instance nesting depth %d exceeds %d", depth, MaxInstanceDepth)
	}
	return &Instance{
		shape:        shape,
		transform:    transform,
		inverse:      inverse,
		normalMatrix: inverse.Transpose(),
		depth:        depth,
	}, nil
}

func (in *Instance) nestingDepth() int {
	return in.depth
}

func (in *Instance) children() []Shape {
	return []Shape{in.shape}
}

// Shape returns the wrapped shape
func (in *Instance) Shape() Shape {
	return in.shape
}

// Transform returns the object-to-world transform
func (in *Instance) Transform() core.Transform {
	return in.transform
}

// InverseTransform returns the world-to-object transform
func (in *Instance) InverseTransform() core.Transform {
	return in.inverse
}

// toObject maps a world ray into object space. The direction is not renormalised,
// so t values are the same in both spaces.
func (in *Instance) toObject(ray core.Ray) core.Ray {
	return core.NewRay(in.inverse.Point(ray.Origin), in.inverse.Vector(ray.Direction))
}

// Hit tests the wrapped shape in object space and maps the result back to world space
func (in *Instance) Hit(ray core.Ray, tMin, tMax, time float64, rec *HitRecord) bool {
	local := in.toObject(ray)
	if !in.shape.Hit(local, tMin, tMax, time, rec) {
		return false
	}

	rec.Point = in.transform.Point(local.At(rec.T))
	rec.Normal = in.normalMatrix.Vector(rec.Normal).Normalize()
	if in.Mirror {
		rec.Mirror = true
	}
	return true
}

// ShadowHit tests the wrapped shape in object space
func (in *Instance) ShadowHit(ray core.Ray, tMin, tMax, time float64) bool {
	return in.shape.ShadowHit(in.toObject(ray), tMin, tMax, time)
}

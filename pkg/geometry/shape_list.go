package geometry

import (
	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// ShapeList is an ordered collection of shapes scanned linearly.
// It is itself a Shape, so a group of shapes can be instanced as one.
type ShapeList struct {
	Shapes []Shape
	depth  int
}

// NewShapeList creates a list from shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	l := &ShapeList{}
	for _, s := range shapes {
		l.append(s)
	}
	return l
}

// Add appends a shape to the list. Shapes that already contain the list are rejected,
// since they would make the scene graph cyclic.
func (l *ShapeList) Add(s Shape) error {
	if s == nil {
		return errors.New("nil shape")
	}
	if contains(s, l, 0) {
		return errors.New("shape already contains this list")
	}
	l.append(s)
	return nil
}

func (l *ShapeList) append(s Shape) {
	l.Shapes = append(l.Shapes, s)
	l.depth = max(l.depth, depthOf(s))
}

func (l *ShapeList) children() []Shape {
	return l.Shapes
}

// Len returns the number of shapes
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

func (l *ShapeList) nestingDepth() int {
	return l.depth
}

// Hit finds the closest hit across all shapes, shrinking tMax as hits are found
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax, time float64, rec *HitRecord) bool {
	var temp HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if shape.Hit(ray, tMin, closestSoFar, time, &temp) {
			hitAnything = true
			closestSoFar = temp.T
			*rec = temp
		}
	}

	return hitAnything
}

// ShadowHit reports whether any shape blocks the ray
func (l *ShapeList) ShadowHit(ray core.Ray, tMin, tMax, time float64) bool {
	for _, shape := range l.Shapes {
		if shape.ShadowHit(ray, tMin, tMax, time) {
			return true
		}
	}
	return false
}

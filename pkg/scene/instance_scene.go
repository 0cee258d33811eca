package scene

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
	"github.com/df07/go-instance-raytracer/pkg/lights"
	"github.com/df07/go-instance-raytracer/pkg/renderer"
)

const (
	// fractalLevels is the number of times the sphere group is nested inside itself
	fractalLevels = 3
	// fractalScale is the size of each child relative to its parent
	fractalScale = 0.45
)

// fractalDirections are the attachment points of children on a parent sphere
var fractalDirections = []core.Vec3{
	core.NewVec3(1, 0, 0),
	core.NewVec3(-1, 0, 0),
	core.NewVec3(0, 1, 0),
	core.NewVec3(0, 0, 1),
	core.NewVec3(0, 0, -1),
}

// NewFractalGroup builds a unit sphere with smaller copies of the whole group resting on it,
// levels deep. Every level reuses the same child shape through instances.
func NewFractalGroup(levels int, color core.Color) (geometry.Shape, error) {
	base := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, color)
	if levels <= 0 {
		return base, nil
	}

	child, err := NewFractalGroup(levels-1, color.Mix(core.NewColor(1, 1, 1), 0.25))
	if err != nil {
		return nil, err
	}

	group := geometry.NewShapeList(base)
	for _, dir := range fractalDirections {
		placement := core.Translate(dir.X*(1+fractalScale), dir.Y*(1+fractalScale), dir.Z*(1+fractalScale)).
			Mul(core.Scale(fractalScale, fractalScale, fractalScale))
		inst, err := geometry.NewInstance(child, placement)
		if err != nil {
			return nil, errors.Wrapf(err, "fractal level %d", levels)
		}
		if err := group.Add(inst); err != nil {
			return nil, err
		}
	}
	return group, nil
}

// NewInstanceScene places a nested fractal of spheres next to a squashed mirror sphere.
// Rotated copies of one triangle stand beside them.
func NewInstanceScene(opts Options) (*Scene, error) {
	s := newScene("instances", opts, renderer.CameraConfig{
		Eye:    core.NewVec3(0, 2, 5),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
		Extent: 5,
	})
	s.IntegratorConfig.Background = core.NewColor(0.6, 0.75, 0.9)

	fractal, err := NewFractalGroup(fractalLevels, core.NewColor(0.7, 0.3, 0.2))
	if err != nil {
		return nil, err
	}
	fractalInstance, err := geometry.NewInstance(fractal,
		core.Translate(0, 1.3, 0).Mul(core.RotateY(math.Pi/6)).Mul(core.Scale(0.5, 0.5, 0.5)))
	if err != nil {
		return nil, err
	}

	unitSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 1, 1))
	lens, err := geometry.NewInstance(unitSphere,
		core.Translate(1.8, 0.3, 0.5).Mul(core.Scale(0.6, 0.3, 0.6)))
	if err != nil {
		return nil, err
	}
	lens.Mirror = true

	triangle := geometry.NewTriangle(
		core.NewVec3(-0.5, 0, 0),
		core.NewVec3(0.5, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewColor(0.2, 0.6, 0.3),
	)
	s.Add(newGroundPlane(0, core.NewColor(0.6, 0.6, 0.6)), fractalInstance, lens, triangle)
	for i, angle := range []float64{-0.4, 0.4} {
		rotated, err := geometry.NewInstance(triangle,
			core.Translate(-1.8+float64(i)*0.3, 0, -0.5+float64(i)*0.6).Mul(core.RotateY(angle)))
		if err != nil {
			return nil, err
		}
		s.Add(rotated)
	}

	// The light is authored at the origin and moved into place
	key := lights.NewPointLightWithStrength(core.NewVec3(0, 0, 0), 3.5)
	s.AddLight(
		key.Transformed(core.Translate(2, 5, 3)),
		lights.NewColoredPointLight(core.NewVec3(-3, 3, 2), 1, core.NewColor(0.7, 0.8, 1.0)),
	)

	return s, nil
}

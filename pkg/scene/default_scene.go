package scene

import (
	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
	"github.com/df07/go-instance-raytracer/pkg/lights"
	"github.com/df07/go-instance-raytracer/pkg/renderer"
)

// NewDefaultScene creates a scene with spheres, a triangle and a ground plane lit by two point lights
func NewDefaultScene(opts Options) (*Scene, error) {
	s := newScene("default", opts, renderer.CameraConfig{
		Eye:    core.NewVec3(0, 0.75, 2),
		LookAt: core.NewVec3(0, 0.5, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40,
		Extent: 2.5,
	})
	s.IntegratorConfig.Background = core.NewColor(0.5, 0.7, 1.0)

	s.Add(
		newGroundPlane(0, core.NewColor(0.8, 0.8, 0.0).Multiply(0.6)),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, core.NewColor(0.65, 0.25, 0.2)),
		geometry.NewMirrorSphere(core.NewVec3(-1, 0.5, -1), 0.5, core.NewColor(0.8, 0.8, 0.8)),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, core.NewColor(0.1, 0.2, 0.5)),
		geometry.NewTriangle(
			core.NewVec3(-0.6, 0, -2.2),
			core.NewVec3(0.6, 0, -2.2),
			core.NewVec3(0, 1.4, -2.4),
			core.NewColor(0.2, 0.7, 0.3),
		),
	)

	s.AddLight(
		lights.NewPointLightWithStrength(core.NewVec3(3, 5, 2), 3),
		lights.NewColoredPointLight(core.NewVec3(-3, 4, 1), 1.5, core.NewColor(1.0, 0.85, 0.7)),
	)

	return s, nil
}

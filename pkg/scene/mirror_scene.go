package scene

import (
	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
	"github.com/df07/go-instance-raytracer/pkg/lights"
	"github.com/df07/go-instance-raytracer/pkg/renderer"
)

// NewMirrorScene places two spheres between a pair of facing mirror walls.
// Reflections repeat until the bounce limit, each one dimmer than the last.
func NewMirrorScene(opts Options) (*Scene, error) {
	s := newScene("mirrors", opts, renderer.CameraConfig{
		Eye:    core.NewVec3(0.6, 1.2, 4),
		LookAt: core.NewVec3(-0.4, 0.5, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50,
		Extent: 4,
	})
	s.IntegratorConfig.MaxBounce = 10
	s.IntegratorConfig.Background = core.NewColor(0.05, 0.05, 0.08)

	white := core.NewColor(1, 1, 1)
	s.Add(
		newGroundPlane(0, core.NewColor(0.7, 0.7, 0.7)),
		geometry.NewMirrorPlane(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0), white),
		geometry.NewMirrorPlane(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0), white),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, core.NewColor(0.8, 0.2, 0.2)),
		geometry.NewSphere(core.NewVec3(0.9, 0.3, 0), 0.3, core.NewColor(0.2, 0.7, 0.3)),
	)

	s.AddLight(lights.NewPointLightWithStrength(core.NewVec3(0, 4, 2), 4))

	return s, nil
}

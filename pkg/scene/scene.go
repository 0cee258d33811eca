package scene

import (
	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
	"github.com/df07/go-instance-raytracer/pkg/integrator"
	"github.com/df07/go-instance-raytracer/pkg/lights"
	"github.com/df07/go-instance-raytracer/pkg/loaders"
	"github.com/df07/go-instance-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is built once and read-only
// while rendering.
type Scene struct {
	Name             string
	Camera           renderer.Camera
	CameraConfig     renderer.CameraConfig
	Shapes           []geometry.Shape // Objects in the scene
	Lights           []lights.Light   // Lights in the scene
	IntegratorConfig integrator.Config
}

func (s *Scene) GetCamera() renderer.Camera             { return s.Camera }
func (s *Scene) GetShapes() []geometry.Shape            { return s.Shapes }
func (s *Scene) GetLights() []lights.Light              { return s.Lights }
func (s *Scene) GetIntegratorConfig() integrator.Config { return s.IntegratorConfig }
func (s *Scene) Size() (width, height int)              { return s.CameraConfig.Width, s.CameraConfig.Height }

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// Options are the caller-controlled parts of a scene
type Options struct {
	Width        int         // Image width in pixels
	Height       int         // Image height in pixels
	Orthographic bool        // Use a parallel projection instead of a pinhole camera
	MaxBounce    int         // Overrides the scene's bounce limit when non-negative
	MeshPath     string      // Mesh file for the mesh scene (.obj or binary mesh)
	MeshCells    int         // Marching cubes resolution for tessellated solids
	Logger       core.Logger // Receives loader diagnostics
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:     400,
		Height:    300,
		MaxBounce: -1,
		MeshCells: loaders.DefaultMeshCells,
		Logger:    core.NopLogger{},
	}
}

// withDefaults fills zero values from DefaultOptions
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.Width <= 0 {
		o.Width = defaults.Width
	}
	if o.Height <= 0 {
		o.Height = defaults.Height
	}
	if o.MeshCells <= 0 {
		o.MeshCells = defaults.MeshCells
	}
	if o.Logger == nil {
		o.Logger = defaults.Logger
	}
	return o
}

// newScene creates an empty scene with a camera sized from opts
func newScene(name string, opts Options, cameraConfig renderer.CameraConfig) *Scene {
	cameraConfig.Width = opts.Width
	cameraConfig.Height = opts.Height

	var camera renderer.Camera
	if opts.Orthographic {
		camera = renderer.NewOrthographicCamera(cameraConfig)
	} else {
		camera = renderer.NewPerspectiveCamera(cameraConfig)
	}

	return &Scene{
		Name:             name,
		Camera:           camera,
		CameraConfig:     cameraConfig,
		IntegratorConfig: integrator.DefaultConfig(),
	}
}

// newGroundPlane creates an infinite horizontal plane at height y
func newGroundPlane(y float64, color core.Color) *geometry.Plane {
	return geometry.NewPlane(core.NewVec3(0, y, 0), core.NewVec3(0, 1, 0), color)
}

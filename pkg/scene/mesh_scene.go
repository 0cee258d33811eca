package scene

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
	"github.com/df07/go-instance-raytracer/pkg/lights"
	"github.com/df07/go-instance-raytracer/pkg/loaders"
	"github.com/df07/go-instance-raytracer/pkg/renderer"
)

// LoadMeshFile reads a mesh by extension: .obj through the OBJ parser, anything else as a
// binary mesh
func LoadMeshFile(path string, logger core.Logger) (*geometry.MeshData, error) {
	if strings.EqualFold(filepath.Ext(path), ".obj") {
		return loaders.LoadOBJ(path, logger)
	}
	return loaders.LoadMesh(path)
}

// FitTransform maps the bounding box of data to a box of the given size, centred on the
// origin in X and Z and resting on y = 0
func FitTransform(data *geometry.MeshData, size float64) core.Transform {
	if len(data.Vertices) == 0 {
		return core.Identity()
	}
	box := core.NewAABBFromPoints(data.Vertices[0].Coords)
	for _, v := range data.Vertices[1:] {
		box = box.Extend(v.Coords)
	}
	longest := box.LongestExtent()
	if longest <= 0 {
		return core.Translate(-box.Min.X, -box.Min.Y, -box.Min.Z)
	}

	s := size / longest
	centre := box.Center()
	return core.Scale(s, s, s).Mul(core.Translate(-centre.X, -box.Min.Y, -centre.Z))
}

// capsuleSolid is the solid tessellated when the mesh scene has no mesh file
func capsuleSolid() (sdf.SDF3, error) {
	body, err := sdf.Cylinder3D(1.5, 0.45, 0.2)
	if err != nil {
		return nil, err
	}
	end, err := sdf.Sphere3D(0.45)
	if err != nil {
		return nil, err
	}
	top := sdf.Transform3D(end, sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: 0.75}))
	bottom := sdf.Transform3D(end, sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: -0.75}))
	return sdf.Union3D(body, top, bottom), nil
}

// CSGSolid is a rounded cube intersected with a sphere, drilled through along all three axes
func CSGSolid() (sdf.SDF3, error) {
	cube, err := sdf.Box3D(v3.Vec{X: 1.5, Y: 1.5, Z: 1.5}, 0.05)
	if err != nil {
		return nil, err
	}
	ball, err := sdf.Sphere3D(1.0)
	if err != nil {
		return nil, err
	}
	drill, err := sdf.Cylinder3D(2, 0.35, 0)
	if err != nil {
		return nil, err
	}
	drills := sdf.Union3D(
		drill,
		sdf.Transform3D(drill, sdf.RotateX(math.Pi/2)),
		sdf.Transform3D(drill, sdf.RotateY(math.Pi/2)),
	)
	return sdf.Difference3D(sdf.Intersect3D(cube, ball), drills), nil
}

// newMeshStage creates the camera, floor and lights shared by the mesh scenes
func newMeshStage(name string, opts Options) *Scene {
	s := newScene(name, opts, renderer.CameraConfig{
		Eye:    core.NewVec3(0, 1.6, 4.5),
		LookAt: core.NewVec3(0, 0.6, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40,
		Extent: 3.5,
	})
	s.IntegratorConfig.Background = core.NewColor(0.55, 0.65, 0.8)
	s.Add(newGroundPlane(0, core.NewColor(0.5, 0.5, 0.5)))
	s.AddLight(
		lights.NewPointLightWithStrength(core.NewVec3(3, 5, 4), 3.5),
		lights.NewColoredPointLight(core.NewVec3(-4, 3, 1), 1.2, core.NewColor(0.9, 0.9, 1.0)),
	)
	return s
}

// NewMeshScene places two instances of one mesh: a diffuse copy and a mirror copy.
// The mesh comes from opts.MeshPath, or from a tessellated capsule when no path is given.
func NewMeshScene(opts Options) (*Scene, error) {
	var data *geometry.MeshData
	var err error
	if opts.MeshPath != "" {
		data, err = LoadMeshFile(opts.MeshPath, opts.Logger)
	} else {
		var solid sdf.SDF3
		if solid, err = capsuleSolid(); err == nil {
			data, err = loaders.TessellateSDF(solid, opts.MeshCells)
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "mesh")
	}

	mesh, err := geometry.NewTriangleMesh(data, core.NewColor(0.8, 0.5, 0.3))
	if err != nil {
		return nil, err
	}
	opts.Logger.Printf("Mesh: %d vertices, %d triangles\n", mesh.GetVertexCount(), mesh.GetTriangleCount())

	s := newMeshStage("mesh", opts)
	fit := FitTransform(data, 1.2)

	diffuse, err := geometry.NewInstance(mesh, core.Translate(-0.8, 0, 0).Mul(core.RotateY(0.5)).Mul(fit))
	if err != nil {
		return nil, err
	}
	mirror, err := geometry.NewInstance(mesh, core.Translate(0.8, 0, -0.3).Mul(core.RotateY(-0.7)).Mul(fit))
	if err != nil {
		return nil, err
	}
	mirror.Mirror = true

	s.Add(diffuse, mirror)
	return s, nil
}

// NewSDFScene renders a tessellated CSG solid
func NewSDFScene(opts Options) (*Scene, error) {
	solid, err := CSGSolid()
	if err != nil {
		return nil, errors.Wrap(err, "csg solid")
	}
	box := loaders.Bounds(solid)
	opts.Logger.Printf("SDF bounds: %v .. %v\n", box.Min, box.Max)
	data, err := loaders.TessellateSDF(solid, opts.MeshCells)
	if err != nil {
		return nil, err
	}
	mesh, err := geometry.NewTriangleMesh(data, core.NewColor(0.3, 0.5, 0.8))
	if err != nil {
		return nil, err
	}
	opts.Logger.Printf("SDF mesh: %d vertices, %d triangles\n", mesh.GetVertexCount(), mesh.GetTriangleCount())

	s := newMeshStage("sdf", opts)
	placed, err := geometry.NewInstance(mesh, core.RotateY(math.Pi/5).Mul(FitTransform(data, 1.4)))
	if err != nil {
		return nil, err
	}
	s.Add(placed)
	return s, nil
}

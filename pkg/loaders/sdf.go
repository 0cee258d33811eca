package loaders

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
)

// DefaultMeshCells is the marching cubes resolution along the longest bounding box axis
const DefaultMeshCells = 64

// TessellateSDF converts a signed distance solid into an indexed mesh using marching cubes.
// Shared corners are merged so vertex normals are the average of the surrounding faces.
func TessellateSDF(solid sdf.SDF3, cells int) (*geometry.MeshData, error) {
	if solid == nil {
		return nil, errors.New("solid is nil")
	}
	if cells <= 0 {
		cells = DefaultMeshCells
	}

	triangles := render.ToTriangles(solid, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, errors.New("tessellation produced no triangles")
	}

	data := &geometry.MeshData{}
	index := make(map[v3.Vec]uint32)
	vertexIndex := func(p v3.Vec) uint32 {
		if i, ok := index[p]; ok {
			return i
		}
		i := uint32(len(data.Vertices))
		index[p] = i
		data.Vertices = append(data.Vertices, geometry.Vertex{Coords: core.NewVec3(p.X, p.Y, p.Z)})
		return i
	}

	for _, tri := range triangles {
		a, b, c := vertexIndex(tri[0]), vertexIndex(tri[1]), vertexIndex(tri[2])
		// Marching cubes emits slivers whose corners collapse onto the same grid point
		if a == b || b == c || a == c {
			continue
		}
		data.Triangles = append(data.Triangles, geometry.IndexedTriangle{I0: a, I1: b, I2: c})
	}
	if len(data.Triangles) == 0 {
		return nil, errors.New("tessellation produced only degenerate triangles")
	}

	ComputeVertexNormals(data)
	return data, nil
}

// Bounds returns the bounding box of a solid
func Bounds(solid sdf.SDF3) core.AABB {
	box := solid.BoundingBox()
	return core.NewAABB(
		core.NewVec3(box.Min.X, box.Min.Y, box.Min.Z),
		core.NewVec3(box.Max.X, box.Max.Y, box.Max.Z),
	)
}

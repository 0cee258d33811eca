package geometry

import (
	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// Vertex is a single mesh vertex
type Vertex struct {
	Coords   core.Vec3
	TexCoord core.Vec2
	Normal   core.Vec3
}

// IndexedTriangle references three vertices of a mesh
type IndexedTriangle struct {
	I0, I1, I2 uint32
}

// MeshData holds a vertex buffer and an index buffer
type MeshData struct {
	Vertices  []Vertex
	Triangles []IndexedTriangle
}

// Validate checks that every triangle index is inside the vertex buffer
func (d *MeshData) Validate() error {
	n := uint32(len(d.Vertices))
	for i, tri := range d.Triangles {
		if tri.I0 >= n || tri.I1 >= n || tri.I2 >= n {
			return errors.Errorf("triangle %d references vertex (%d, %d, %d) outside %d vertices",
				i, tri.I0, tri.I1, tri.I2, n)
		}
	}
	return nil
}

// TriangleMesh is an indexed triangle mesh with interpolated vertex normals.
// Triangles are scanned linearly.
type TriangleMesh struct {
	data   *MeshData
	Color  core.Color
	Mirror bool
}

// NewTriangleMesh creates a mesh that owns data; data must not be modified afterwards
func NewTriangleMesh(data *MeshData, color core.Color) (*TriangleMesh, error) {
	if data == nil {
		return nil, errors.New("mesh data is nil")
	}
	if err := data.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid mesh")
	}
	return &TriangleMesh{data: data, Color: color}, nil
}

// vertices returns the three vertices of triangle i
func (tm *TriangleMesh) vertices(i int) (v0, v1, v2 *Vertex) {
	tri := tm.data.Triangles[i]
	return &tm.data.Vertices[tri.I0], &tm.data.Vertices[tri.I1], &tm.data.Vertices[tri.I2]
}

// Hit tests if a ray intersects with any triangle in the mesh and reports the nearest one
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax, time float64, rec *HitRecord) bool {
	hitIndex := -1
	var closestBeta, closestGamma float64
	closestSoFar := tMax

	for i := range tm.data.Triangles {
		v0, v1, v2 := tm.vertices(i)
		t, beta, gamma, ok := intersectTriangle(v0.Coords, v1.Coords, v2.Coords, ray, tMin, closestSoFar)
		if ok {
			hitIndex = i
			closestSoFar = t
			closestBeta = beta
			closestGamma = gamma
		}
	}

	if hitIndex < 0 {
		return false
	}

	v0, v1, v2 := tm.vertices(hitIndex)
	normal := v0.Normal.
		Add(v1.Normal.Subtract(v0.Normal).Multiply(closestBeta)).
		Add(v2.Normal.Subtract(v0.Normal).Multiply(closestGamma))
	if normal.IsZero() {
		// No usable vertex normals, fall back to the flat face normal
		normal = v1.Coords.Subtract(v0.Coords).Cross(v2.Coords.Subtract(v0.Coords))
	}

	rec.T = closestSoFar
	rec.Normal = normal.Normalize()
	rec.Color = tm.Color
	rec.Mirror = tm.Mirror
	return true
}

// ShadowHit reports whether any triangle of the mesh blocks the ray
func (tm *TriangleMesh) ShadowHit(ray core.Ray, tMin, tMax, time float64) bool {
	for i := range tm.data.Triangles {
		v0, v1, v2 := tm.vertices(i)
		if _, _, _, ok := intersectTriangle(v0.Coords, v1.Coords, v2.Coords, ray, tMin, tMax); ok {
			return true
		}
	}
	return false
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.data.Triangles)
}

// GetVertexCount returns the number of vertices in this mesh
func (tm *TriangleMesh) GetVertexCount() int {
	return len(tm.data.Vertices)
}

package loaders

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/udhos/gwob"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
)

// LoadOBJ reads a Wavefront OBJ file into mesh data. Faces are triangulated by the parser.
// Materials are ignored; the mesh takes a single colour when it is turned into a shape.
func LoadOBJ(filename string, logger core.Logger) (*geometry.MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open obj file")
	}
	defer file.Close()

	data, err := ReadOBJ(filename, file, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return data, nil
}

// ReadOBJ parses OBJ text from r. name is only used in parser diagnostics.
func ReadOBJ(name string, r io.Reader, logger core.Logger) (*geometry.MeshData, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	options := gwob.ObjParserOptions{
		LogStats: false,
		Logger:   func(s string) { logger.Printf("obj %s: %s\n", name, s) },
	}

	obj, err := gwob.NewObjFromReader(name, r, &options)
	if err != nil {
		return nil, errors.Wrap(err, "parse obj")
	}

	stride := obj.StrideSize / 4
	if stride <= 0 {
		return nil, errors.New("obj has no vertex data")
	}
	positionOffset := obj.StrideOffsetPosition / 4
	textureOffset := obj.StrideOffsetTexture / 4
	normalOffset := obj.StrideOffsetNormal / 4

	coord := func(i int) core.Vec3 {
		return core.NewVec3(obj.Coord64(i), obj.Coord64(i+1), obj.Coord64(i+2))
	}

	vertexCount := len(obj.Coord) / stride
	data := &geometry.MeshData{
		Vertices:  make([]geometry.Vertex, vertexCount),
		Triangles: make([]geometry.IndexedTriangle, 0, len(obj.Indices)/3),
	}
	for i := range data.Vertices {
		base := i * stride
		v := geometry.Vertex{Coords: coord(base + positionOffset)}
		if obj.TextCoordFound {
			v.TexCoord = core.NewVec2(obj.Coord64(base+textureOffset), obj.Coord64(base+textureOffset+1))
		}
		if obj.NormCoordFound {
			v.Normal = coord(base + normalOffset).Normalize()
		}
		data.Vertices[i] = v
	}

	for i := 0; i+2 < len(obj.Indices); i += 3 {
		data.Triangles = append(data.Triangles, geometry.IndexedTriangle{
			I0: uint32(obj.Indices[i]),
			I1: uint32(obj.Indices[i+1]),
			I2: uint32(obj.Indices[i+2]),
		})
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	if !obj.NormCoordFound {
		ComputeVertexNormals(data)
	}
	return data, nil
}

// ComputeVertexNormals replaces every vertex normal with the normalized sum of the
// area-weighted face normals around it
func ComputeVertexNormals(data *geometry.MeshData) {
	sums := make([]core.Vec3, len(data.Vertices))
	for _, tri := range data.Triangles {
		p0 := data.Vertices[tri.I0].Coords
		p1 := data.Vertices[tri.I1].Coords
		p2 := data.Vertices[tri.I2].Coords
		// Cross product length is twice the area, so larger faces weigh more
		n := p1.Subtract(p0).Cross(p2.Subtract(p0))
		sums[tri.I0] = sums[tri.I0].Add(n)
		sums[tri.I1] = sums[tri.I1].Add(n)
		sums[tri.I2] = sums[tri.I2].Add(n)
	}
	for i := range data.Vertices {
		data.Vertices[i].Normal = sums[i].Normalize()
	}
}

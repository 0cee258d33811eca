package loaders

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
)

// maxMeshElements bounds the counts accepted from a mesh header
const maxMeshElements = 1 << 26

// meshHeader is the fixed-size start of a binary mesh file
type meshHeader struct {
	VertexCount   uint32
	TriangleCount uint32
}

// meshVertex is one on-disk vertex record: position, texture coordinate, normal
type meshVertex struct {
	Position [3]float32
	TexCoord [2]float32
	Normal   [3]float32
}

// meshTriangle is one on-disk triangle record
type meshTriangle struct {
	Indices [3]uint32
}

// ReadMesh decodes the little-endian binary mesh format:
// vertex count, triangle count, vertex records, then triangle records.
func ReadMesh(r io.Reader) (*geometry.MeshData, error) {
	var header meshHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "read mesh header")
	}
	if header.VertexCount > maxMeshElements || header.TriangleCount > maxMeshElements {
		return nil, errors.Errorf("mesh too large: %d vertices, %d triangles",
			header.VertexCount, header.TriangleCount)
	}

	rawVertices := make([]meshVertex, header.VertexCount)
	if err := binary.Read(r, binary.LittleEndian, rawVertices); err != nil {
		return nil, errors.Wrapf(err, "read %d vertices", header.VertexCount)
	}

	rawTriangles := make([]meshTriangle, header.TriangleCount)
	if err := binary.Read(r, binary.LittleEndian, rawTriangles); err != nil {
		return nil, errors.Wrapf(err, "read %d triangles", header.TriangleCount)
	}

	data := &geometry.MeshData{
		Vertices:  make([]geometry.Vertex, len(rawVertices)),
		Triangles: make([]geometry.IndexedTriangle, len(rawTriangles)),
	}
	for i, v := range rawVertices {
		data.Vertices[i] = geometry.Vertex{
			Coords:   vec3(v.Position),
			TexCoord: core.NewVec2(float64(v.TexCoord[0]), float64(v.TexCoord[1])),
			Normal:   vec3(v.Normal),
		}
	}
	for i, t := range rawTriangles {
		data.Triangles[i] = geometry.IndexedTriangle{I0: t.Indices[0], I1: t.Indices[1], I2: t.Indices[2]}
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteMesh encodes data in the binary mesh format. Coordinates are narrowed to float32.
func WriteMesh(w io.Writer, data *geometry.MeshData) error {
	if err := data.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	header := meshHeader{
		VertexCount:   uint32(len(data.Vertices)),
		TriangleCount: uint32(len(data.Triangles)),
	}
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write mesh header")
	}

	for i, v := range data.Vertices {
		record := meshVertex{
			Position: float32s(v.Coords),
			TexCoord: [2]float32{float32(v.TexCoord.X), float32(v.TexCoord.Y)},
			Normal:   float32s(v.Normal),
		}
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return errors.Wrapf(err, "write vertex %d", i)
		}
	}
	for i, t := range data.Triangles {
		if err := binary.Write(bw, binary.LittleEndian, meshTriangle{Indices: [3]uint32{t.I0, t.I1, t.I2}}); err != nil {
			return errors.Wrapf(err, "write triangle %d", i)
		}
	}

	return errors.Wrap(bw.Flush(), "flush mesh")
}

// LoadMesh reads a binary mesh file
func LoadMesh(filename string) (*geometry.MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open mesh file")
	}
	defer file.Close()

	data, err := ReadMesh(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return data, nil
}

// SaveMesh writes data to a binary mesh file
func SaveMesh(filename string, data *geometry.MeshData) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create mesh file")
	}
	if err := WriteMesh(file, data); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close mesh file")
}

func vec3(v [3]float32) core.Vec3 {
	return core.NewVec3(float64(v[0]), float64(v[1]), float64(v[2]))
}

func float32s(v core.Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

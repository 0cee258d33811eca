package loaders

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
)

func TestTessellateSDF_Sphere(t *testing.T) {
	solid, err := sdf.Sphere3D(1)
	if err != nil {
		t.Fatalf("Sphere3D failed: %v", err)
	}

	data, err := TessellateSDF(solid, 24)
	if err != nil {
		t.Fatalf("TessellateSDF failed: %v", err)
	}
	if len(data.Triangles) == 0 {
		t.Fatal("Expected triangles")
	}
	if err := data.Validate(); err != nil {
		t.Fatalf("Invalid mesh: %v", err)
	}

	for i, v := range data.Vertices {
		if r := v.Coords.Length(); math.Abs(r-1) > 0.15 {
			t.Fatalf("Vertex %d at radius %f, expected close to 1", i, r)
		}
		radial := v.Coords.Normalize()
		if v.Normal.Dot(radial) < 0.8 {
			t.Fatalf("Vertex %d normal %v does not point outward", i, v.Normal)
		}
	}

	mesh, err := geometry.NewTriangleMesh(data, core.NewColor(1, 1, 1))
	if err != nil {
		t.Fatalf("NewTriangleMesh failed: %v", err)
	}
	var rec geometry.HitRecord
	ray := core.NewRay(core.NewVec3(0.1, 0.05, 5), core.NewVec3(0, 0, -1))
	if !mesh.Hit(ray, geometry.Epsilon, geometry.FarDistance, 0, &rec) {
		t.Fatal("Expected ray to hit the tessellated sphere")
	}
	if math.Abs(rec.T-4) > 0.15 {
		t.Errorf("Expected hit near t=4, got %f", rec.T)
	}
	if rec.Normal.Z < 0.8 {
		t.Errorf("Expected normal facing the ray origin, got %v", rec.Normal)
	}
}

func TestTessellateSDF_Errors(t *testing.T) {
	if _, err := TessellateSDF(nil, 8); err == nil {
		t.Error("Expected error for nil solid")
	}
}

func TestBounds(t *testing.T) {
	solid, err := sdf.Box3D(v3.Vec{X: 2, Y: 4, Z: 6}, 0)
	if err != nil {
		t.Fatalf("Box3D failed: %v", err)
	}
	box := Bounds(solid)
	if !box.Min.ApproxEqual(core.NewVec3(-1, -2, -3), 1e-9) || !box.Max.ApproxEqual(core.NewVec3(1, 2, 3), 1e-9) {
		t.Errorf("Unexpected bounds %v .. %v", box.Min, box.Max)
	}
}

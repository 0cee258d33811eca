package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

func TestInstance_TranslatedSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, white)

	// Reference hit on the untransformed sphere
	base := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	var baseRec HitRecord
	if !sphere.Hit(base, Epsilon, FarDistance, 0, &baseRec) {
		t.Fatal("Expected hit on untransformed sphere")
	}

	instance, err := NewInstance(sphere, core.Translate(10, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1))
	var rec HitRecord
	if !instance.Hit(ray, Epsilon, FarDistance, 0, &rec) {
		t.Fatal("Expected hit on translated sphere")
	}

	if math.Abs(rec.T-baseRec.T) > 1e-9 {
		t.Errorf("Expected equal t %f, got %f", baseRec.T, rec.T)
	}
	if !rec.Normal.ApproxEqual(baseRec.Normal, 1e-9) {
		t.Errorf("Expected translation to leave normal %v, got %v", baseRec.Normal, rec.Normal)
	}
	if !rec.Point.ApproxEqual(core.NewVec3(10, 0, 1), 1e-9) {
		t.Errorf("Expected world point (10,0,1), got %v", rec.Point)
	}

	// The original location is now empty
	if instance.Hit(base, Epsilon, FarDistance, 0, &rec) {
		t.Error("Expected miss at the untranslated location")
	}
	if instance.ShadowHit(base, Epsilon, FarDistance, 0) {
		t.Error("Expected shadow miss at the untranslated location")
	}
	if !instance.ShadowHit(ray, Epsilon, FarDistance, 0) {
		t.Error("Expected shadow hit on translated sphere")
	}
}

func TestInstance_NonUniformScaleNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, white)
	instance, err := NewInstance(sphere, core.Scale(2, 1, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Ellipsoid x²/4 + y² + z² = 1, hit from the inside at (√2, √2/2, 0)
	p := core.NewVec3(math.Sqrt2, math.Sqrt2/2, 0)
	ray := core.NewRay(core.Vec3{}, p)

	var rec HitRecord
	if !instance.Hit(ray, Epsilon, FarDistance, 0, &rec) {
		t.Fatal("Expected hit")
	}
	if math.Abs(rec.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got %f", rec.T)
	}

	// Gradient of the ellipsoid: (x/2, 2y, 2z) ∝ (1, 2, 0)
	expected := core.NewVec3(1, 2, 0).Normalize()
	if !rec.Normal.ApproxEqual(expected, 1e-9) {
		t.Errorf("Expected inverse-transpose normal %v, got %v", expected, rec.Normal)
	}
	if math.Abs(rec.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", rec.Normal.Length())
	}
}

func TestInstance_Nested(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, white)
	inner, err := NewInstance(sphere, core.Translate(1, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	outer, err := NewInstance(inner, core.Translate(0, 2, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(1, 2, 5), core.NewVec3(0, 0, -1))
	var rec HitRecord
	if !outer.Hit(ray, Epsilon, FarDistance, 0, &rec) {
		t.Fatal("Expected hit on nested instance")
	}
	if !rec.Point.ApproxEqual(core.NewVec3(1, 2, 1), 1e-9) {
		t.Errorf("Expected world point (1,2,1), got %v", rec.Point)
	}
}

func TestInstance_DepthLimit(t *testing.T) {
	var shape Shape = NewSphere(core.NewVec3(0, 0, 0), 1, white)
	for i := 0; i < MaxInstanceDepth; i++ {
		inst, err := NewInstance(shape, core.Translate(0.1, 0, 0))
		if err != nil {
			t.Fatalf("Unexpected error at depth %d: %v", i+1, err)
		}
		shape = inst
	}

	if _, err := NewInstance(shape, core.Identity()); err == nil {
		t.Error("Expected error when exceeding the nesting limit")
	}
}

func TestInstance_InvalidTransforms(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, white)

	if _, err := NewInstance(sphere, core.Scale(1, 0, 1)); err == nil {
		t.Error("Expected error for singular transform")
	}

	if _, err := NewInstanceWithInverse(sphere, core.Translate(1, 0, 0), core.Translate(1, 0, 0)); err == nil {
		t.Error("Expected error for mismatched inverse")
	}

	if _, err := NewInstanceWithInverse(sphere, core.Translate(1, 0, 0), core.Translate(-1, 0, 0)); err != nil {
		t.Errorf("Expected matching inverse to be accepted, got %v", err)
	}

	if _, err := NewInstance(nil, core.Identity()); err == nil {
		t.Error("Expected error for nil shape")
	}
}

func TestInstance_SuppliedInverseFarFromOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, white)
	m := core.Translate(1e5, 2e4, -3e4).Mul(core.RotateY(0.5)).Mul(core.Scale(3, 3, 3))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	instance, err := NewInstanceWithInverse(sphere, m, inv)
	if err != nil {
		t.Fatalf("Expected exact inverse to be accepted, got %v", err)
	}

	ray := core.NewRay(core.NewVec3(1e5, 2e4, -3e4+10), core.NewVec3(0, 0, -1))
	var rec HitRecord
	if !instance.Hit(ray, Epsilon, FarDistance, 0, &rec) {
		t.Fatal("Expected hit on the scaled sphere")
	}
	if math.Abs(rec.T-7) > 1e-6 {
		t.Errorf("Expected t=7, got %v", rec.T)
	}

	// An inverse that is off by one object-space unit is still rejected at this scale
	if _, err := NewInstanceWithInverse(sphere, m, inv.Mul(core.Translate(1, 0, 0))); err == nil {
		t.Error("Expected error for inverse with wrong translation")
	}
}

func TestInstance_ForceMirror(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, white)
	instance, err := NewInstance(sphere, core.Identity())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	instance.Mirror = true

	var rec HitRecord
	if !instance.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), Epsilon, FarDistance, 0, &rec) {
		t.Fatal("Expected hit")
	}
	if !rec.Mirror {
		t.Error("Expected instance to force mirror flag")
	}
}

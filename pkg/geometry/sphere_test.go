package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

var white = core.NewColor(1, 1, 1)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	var rec HitRecord
	if sphere.Hit(ray, Epsilon, 1000.0, 0, &rec) {
		t.Errorf("Expected miss, but got hit at t=%f", rec.T)
	}
	if sphere.ShadowHit(ray, Epsilon, 1000.0, 0) {
		t.Error("Expected shadow miss")
	}
}

func TestSphere_Hit_AlongRadius(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	sphere := NewSphere(center, 2.0, core.NewColor(0.2, 0.4, 0.6))

	// Fired from outside along the radius: roots at t=3 and t=7
	ray := core.NewRay(core.NewVec3(1, 2, 8), core.NewVec3(0, 0, -1))

	var rec HitRecord
	if !sphere.Hit(ray, Epsilon, 1000.0, 0, &rec) {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(rec.T-3) > 1e-9 {
		t.Errorf("Expected nearer root t=3, got t=%f", rec.T)
	}

	hitPoint := ray.At(rec.T)
	expectedNormal := hitPoint.Subtract(center).Normalize()
	if !rec.Normal.ApproxEqual(expectedNormal, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expectedNormal, rec.Normal)
	}
	if math.Abs(rec.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", rec.Normal.Length())
	}
	if rec.Color != sphere.Color {
		t.Errorf("Expected colour %v, got %v", sphere.Color, rec.Color)
	}
	if rec.Mirror {
		t.Error("Expected non-mirror sphere")
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	var rec HitRecord
	if !sphere.Hit(ray, Epsilon, 1000.0, 0, &rec) {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if math.Abs(rec.T-1) > 1e-9 {
		t.Errorf("Expected far root t=1, got t=%f", rec.T)
	}
	// Outward normal, no face flipping
	if !rec.Normal.ApproxEqual(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected outward normal (0,0,1), got %v", rec.Normal)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name       string
		tMin, tMax float64
		shouldHit  bool
		expectedT  float64
	}{
		{"full range", Epsilon, 1000, true, 1},
		{"tMax before sphere", Epsilon, 0.5, false, 0},
		{"tMin past near root", 1.5, 1000, true, 3},
		{"tMin past both roots", 3.5, 1000, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec HitRecord
			hit := sphere.Hit(ray, tt.tMin, tt.tMax, 0, &rec)
			if hit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, hit)
			}
			if sphere.ShadowHit(ray, tt.tMin, tt.tMax, 0) != hit {
				t.Error("ShadowHit disagrees with Hit")
			}
			if hit && math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
		})
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, white)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	var rec HitRecord
	if sphere.Hit(ray, Epsilon, 1000.0, 0, &rec) {
		t.Errorf("Expected grazing ray to miss, got hit at t=%f", rec.T)
	}
}

func TestSphere_Mirror(t *testing.T) {
	sphere := NewMirrorSphere(core.NewVec3(0, 0, 0), 1.0, white)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	var rec HitRecord
	if !sphere.Hit(ray, Epsilon, 1000.0, 0, &rec) {
		t.Fatal("Expected hit")
	}
	if !rec.Mirror {
		t.Error("Expected mirror flag on hit record")
	}
}

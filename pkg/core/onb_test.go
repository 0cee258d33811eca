package core

import (
	"math"
	"testing"
)

func TestONB_Orthonormal(t *testing.T) {
	tests := []struct {
		name string
		onb  ONB
	}{
		{"from W", NewONBFromW(NewVec3(0.2, -0.5, 0.8))},
		{"from W along X", NewONBFromW(NewVec3(1, 0, 0))},
		{"from WV", NewONBFromWV(NewVec3(0, 0, 1), NewVec3(0, 1, 0))},
		{"from parallel WV", NewONBFromWV(NewVec3(0, 1, 0), NewVec3(0, 2, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.onb
			for _, axis := range []Vec3{o.U, o.V, o.W} {
				if math.Abs(axis.Length()-1) > 1e-9 {
					t.Errorf("Expected unit axis, got %v", axis)
				}
			}
			if math.Abs(o.U.Dot(o.V)) > 1e-9 || math.Abs(o.V.Dot(o.W)) > 1e-9 || math.Abs(o.U.Dot(o.W)) > 1e-9 {
				t.Errorf("Expected orthogonal axes, got %+v", o)
			}
			if !o.U.Cross(o.V).ApproxEqual(o.W, 1e-9) {
				t.Errorf("Expected right-handed basis, got %+v", o)
			}
		})
	}
}

func TestONB_FromWVKeepsUp(t *testing.T) {
	o := NewONBFromWV(NewVec3(0, 0, 1), NewVec3(0, 1, 0))
	if !o.V.ApproxEqual(NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected V = up, got %v", o.V)
	}
	if got := o.Local(1, 2, 3); !got.ApproxEqual(NewVec3(1, 2, 3), 1e-12) {
		t.Errorf("Expected identity basis mapping, got %v", got)
	}
}

package lights

import (
	"testing"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

func TestPointLight_Defaults(t *testing.T) {
	tests := []struct {
		name             string
		light            *PointLight
		expectedStrength float64
		expectedColor    core.Color
	}{
		{"location only", NewPointLight(core.NewVec3(1, 2, 3)), 1, core.NewColor(1, 1, 1)},
		{"with strength", NewPointLightWithStrength(core.NewVec3(1, 2, 3), 4), 4, core.NewColor(1, 1, 1)},
		{"coloured", NewColoredPointLight(core.NewVec3(1, 2, 3), 2, core.NewColor(1, 0.5, 0)), 2, core.NewColor(1, 0.5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.light.Position() != core.NewVec3(1, 2, 3) {
				t.Errorf("Expected location (1,2,3), got %v", tt.light.Position())
			}
			if tt.light.Strength != tt.expectedStrength {
				t.Errorf("Expected strength %f, got %f", tt.expectedStrength, tt.light.Strength)
			}
			if tt.light.Color != tt.expectedColor {
				t.Errorf("Expected colour %v, got %v", tt.expectedColor, tt.light.Color)
			}
			if tt.light.Type() != LightTypePoint {
				t.Errorf("Expected point light type, got %s", tt.light.Type())
			}
		})
	}
}

func TestPointLight_Radiance(t *testing.T) {
	light := NewColoredPointLight(core.Vec3{}, 2, core.NewColor(1, 0.5, 0.25))
	if got := light.Radiance(); got != core.NewColor(2, 1, 0.5) {
		t.Errorf("Expected radiance (2,1,0.5), got %v", got)
	}
}

func TestPointLight_Transformed(t *testing.T) {
	light := NewPointLightWithStrength(core.NewVec3(1, 0, 0), 3)
	moved := light.Transformed(core.Translate(0, 5, 0))

	if !moved.Location.ApproxEqual(core.NewVec3(1, 5, 0), 1e-12) {
		t.Errorf("Expected moved location (1,5,0), got %v", moved.Location)
	}
	if moved.Strength != 3 {
		t.Errorf("Expected strength preserved, got %f", moved.Strength)
	}
	if light.Location != core.NewVec3(1, 0, 0) {
		t.Error("Expected original light unchanged")
	}
}

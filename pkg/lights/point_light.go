package lights

import (
	"fmt"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// PointLight is an infinitely small light with no falloff
type PointLight struct {
	Location core.Vec3
	Strength float64
	Color    core.Color
}

// NewPointLight creates a white light of strength 1
func NewPointLight(location core.Vec3) *PointLight {
	return NewColoredPointLight(location, 1, core.NewColor(1, 1, 1))
}

// NewPointLightWithStrength creates a white light
func NewPointLightWithStrength(location core.Vec3, strength float64) *PointLight {
	return NewColoredPointLight(location, strength, core.NewColor(1, 1, 1))
}

// NewColoredPointLight creates a light with the given strength and colour
func NewColoredPointLight(location core.Vec3, strength float64, color core.Color) *PointLight {
	return &PointLight{
		Location: location,
		Strength: strength,
		Color:    color,
	}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

func (pl *PointLight) Position() core.Vec3 {
	return pl.Location
}

// Radiance returns colour * strength
func (pl *PointLight) Radiance() core.Color {
	return pl.Color.Multiply(pl.Strength)
}

// Transformed returns a copy of the light moved by t
func (pl *PointLight) Transformed(t core.Transform) *PointLight {
	return NewColoredPointLight(t.Point(pl.Location), pl.Strength, pl.Color)
}

func (pl *PointLight) String() string {
	return fmt.Sprintf("pointLight: (%v) .. Strength: %g", pl.Location, pl.Strength)
}

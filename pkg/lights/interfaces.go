package lights

import "github.com/df07/go-instance-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for sources the integrator queries for direct lighting
type Light interface {
	Type() LightType

	// Position returns the point the light is emitted from
	Position() core.Vec3

	// Radiance returns the incident light colour scaled by its strength
	Radiance() core.Color
}

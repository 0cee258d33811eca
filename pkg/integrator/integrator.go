package integrator

import (
	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
)

const (
	// DefaultAlbedo is the diffuse reflectance rho_d used for every surface
	DefaultAlbedo = 0.8
	// DefaultMaxBounce is the number of mirror bounces allowed per ray
	DefaultMaxBounce = 5
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the colour carried back along a ray
	RayColor(ray core.Ray) core.Color
}

// Config contains shading configuration
type Config struct {
	MaxBounce     int        // Maximum number of mirror bounces
	Background    core.Color // Returned for rays that escape the scene
	Ambient       core.Color // Constant light added at every shaded point
	Albedo        float64    // Diffuse reflectance rho_d
	ReflectOffset float64    // Distance a bounced ray is pushed off the mirror surface
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxBounce:     DefaultMaxBounce,
		Background:    core.NewColor(0, 0, 0),
		Ambient:       core.NewColor(0.1, 0.1, 0.1),
		Albedo:        DefaultAlbedo,
		ReflectOffset: geometry.Epsilon,
	}
}

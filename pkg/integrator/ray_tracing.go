package integrator

import (
	"math"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
	"github.com/df07/go-instance-raytracer/pkg/lights"
)

// RayTracingIntegrator shades the first non-mirror surface a ray reaches with direct
// point lighting plus an ambient term, following perfect mirror reflections on the way.
type RayTracingIntegrator struct {
	world  *geometry.ShapeList
	lights []lights.Light
	config Config
}

// NewRayTracingIntegrator creates an integrator over a fixed set of shapes and lights
func NewRayTracingIntegrator(shapes []geometry.Shape, sceneLights []lights.Light, config Config) *RayTracingIntegrator {
	if config.MaxBounce < 0 {
		config.MaxBounce = 0
	}
	return &RayTracingIntegrator{
		world:  geometry.NewShapeList(shapes...),
		lights: sceneLights,
		config: config,
	}
}

// Config returns the shading configuration
func (rt *RayTracingIntegrator) Config() Config {
	return rt.config
}

// RayColor traces ray through at most MaxBounce mirror reflections.
//
// Mirror bounces do not attenuate by themselves. The colour of the terminal diffuse hit
// is scaled by 1 - depth/(MaxBounce+1), a linear falloff over the bounces consumed.
// Rays that escape, or that are still bouncing when the budget runs out, return the
// background colour.
func (rt *RayTracingIntegrator) RayColor(ray core.Ray) core.Color {
	color := rt.config.Background

	for depth := 0; depth <= rt.config.MaxBounce; depth++ {
		var rec geometry.HitRecord
		if !rt.world.Hit(ray, geometry.Epsilon, geometry.FarDistance, 0, &rec) {
			color = rt.config.Background
			break
		}
		rec.Point = ray.At(rec.T)

		if rec.Mirror {
			normal := rec.Normal.Normalize()
			ray.Direction = ray.Direction.Reflect(normal)
			ray.Origin = rec.Point.Add(ray.Direction.Multiply(rt.config.ReflectOffset))
			continue
		}

		falloff := 1 - float64(depth)/float64(rt.config.MaxBounce+1)
		color = rt.Lighting(&rec).Multiply(falloff)
		break
	}

	return color
}

// Lighting returns direct plus ambient illumination at rec.Point, tinted by the surface colour.
// Lights behind the surface or at exactly grazing incidence contribute nothing.
func (rt *RayTracingIntegrator) Lighting(rec *geometry.HitRecord) core.Color {
	normal := rec.Normal.Normalize()
	brdf := rt.config.Albedo / math.Pi

	var contribution core.Color
	for _, light := range rt.lights {
		toLight := light.Position().Subtract(rec.Point)
		dist := toLight.Length()
		wi := toLight.Normalize()

		cosTheta := normal.Dot(wi)
		if cosTheta <= 0 {
			continue
		}

		if rt.blocked(rec.Point, wi, dist) {
			continue
		}

		contribution = contribution.Add(light.Radiance().Multiply(brdf * cosTheta))
	}

	contribution = contribution.Add(rt.config.Ambient)
	return contribution.MultiplyVec(rec.Color)
}

// Occluded reports whether any shape lies between point and the light
func (rt *RayTracingIntegrator) Occluded(point core.Vec3, light lights.Light) bool {
	toLight := light.Position().Subtract(point)
	return rt.blocked(point, toLight.Normalize(), toLight.Length())
}

// blocked casts a shadow ray along the unit direction wi, up to dist
func (rt *RayTracingIntegrator) blocked(point, wi core.Vec3, dist float64) bool {
	shadowRay := core.NewRay(point, wi)
	return rt.world.ShadowHit(shadowRay, geometry.Epsilon+geometry.ShadowBias, dist, 0)
}

package renderer

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/geometry"
	"github.com/df07/go-instance-raytracer/pkg/imageio"
	"github.com/df07/go-instance-raytracer/pkg/integrator"
	"github.com/df07/go-instance-raytracer/pkg/lights"
)

const (
	DefaultSamplesPerPixel = 4
	DefaultTileSize        = 32
)

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int   // Number of jittered rays per pixel
	TileSize        int   // Edge length of a tile in pixels
	NumWorkers      int   // Number of tiles rendered in parallel (0 = use CPU count)
	Seed            int64 // Seed for every tile's random stream
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: DefaultSamplesPerPixel,
		TileSize:        DefaultTileSize,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() Camera
	GetShapes() []geometry.Shape
	GetLights() []lights.Light
	GetIntegratorConfig() integrator.Config
}

// Raytracer renders a scene into an image buffer
type Raytracer struct {
	scene      Scene
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer shading with a RayTracingIntegrator over the scene
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	return NewRaytracerWithIntegrator(scene, integrator.NewRayTracingIntegrator(
		scene.GetShapes(), scene.GetLights(), scene.GetIntegratorConfig()), config, logger)
}

// NewRaytracerWithIntegrator creates a raytracer using a custom integrator
func NewRaytracerWithIntegrator(scene Scene, integratorInst integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = 1
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integratorInst,
		logger:     logger,
	}
}

// Config returns the effective rendering configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render fills img. Tiles cover disjoint pixels and are rendered concurrently, each with
// its own random stream, so the result does not depend on the number of workers.
func (rt *Raytracer) Render(ctx context.Context, img *imageio.Image) (RenderStats, error) {
	start := time.Now()
	tiles := NewTileGrid(img.Width(), img.Height(), rt.config.TileSize, rt.config.Seed)
	stats := RenderStats{
		JobID:   uuid.New(),
		Workers: rt.config.NumWorkers,
	}

	rt.logger.Printf("Render %s: %dx%d, %d samples per pixel, %d tiles, %d workers\n",
		stats.JobID, img.Width(), img.Height(), rt.config.SamplesPerPixel, len(tiles), rt.config.NumWorkers)

	tileStats := make([]TileStats, len(tiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.config.NumWorkers)

	for _, tile := range tiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tileStats[tile.ID] = rt.RenderTile(tile, img)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, errors.Wrap(err, "render cancelled")
	}

	for _, ts := range tileStats {
		stats.merge(ts)
	}
	stats.finalize()
	stats.Duration = time.Since(start)

	rt.logger.Printf("Render %s: done in %v (%d samples)\n", stats.JobID, stats.Duration, stats.TotalSamples)
	return stats, nil
}

// RenderTile renders the pixels inside tile.Bounds into img
func (rt *Raytracer) RenderTile(tile *Tile, img *imageio.Image) TileStats {
	var stats TileStats
	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			ps := rt.SamplePixel(i, j, tile.Random)
			img.Set(i, j, ps.GetColor())
			stats.Pixels++
			stats.Samples += ps.SampleCount
		}
	}
	return stats
}

// SamplePixel averages SamplesPerPixel rays jittered uniformly in [-0.5, 0.5) around the
// centre of pixel (i, j)
func (rt *Raytracer) SamplePixel(i, j int, random core.RandomSource) PixelStats {
	camera := rt.scene.GetCamera()
	var ps PixelStats
	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		x := float64(i) + 0.5 + core.Jitter(random)
		y := float64(j) + 0.5 + core.Jitter(random)
		ps.AddSample(rt.integrator.RayColor(camera.GetRay(x, y)))
	}
	return ps
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-instance-raytracer/pkg/config"
	"github.com/df07/go-instance-raytracer/pkg/core"
	"github.com/df07/go-instance-raytracer/pkg/imageio"
	"github.com/df07/go-instance-raytracer/pkg/renderer"
	"github.com/df07/go-instance-raytracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, os.Args[1:], cfg, os.Stdout); err != nil {
		slog.Error("render failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// parseFlags overrides cfg with command line flags. It reports whether -help was given.
func parseFlags(args []string, cfg *config.Config, out io.Writer) (bool, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Image height in pixels")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Jittered samples per pixel")
	fs.IntVar(&cfg.MaxBounce, "bounces", cfg.MaxBounce, "Maximum mirror bounces (-1 = scene default)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel tile workers (0 = number of CPUs)")
	fs.StringVar(&cfg.Mesh, "mesh", cfg.Mesh, "Mesh file for the mesh scene (.obj or binary mesh)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: ppm, png, bmp or tiff (default: from -out extension)")
	fs.StringVar(&cfg.Output, "out", cfg.Output, "Output file")
	fs.Float64Var(&cfg.Gamma, "gamma", cfg.Gamma, "Gamma applied before writing (1 = linear)")
	fs.BoolVar(&cfg.Ortho, "ortho", cfg.Ortho, "Use an orthographic camera")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return false, errors.Wrap(err, "parse flags")
	}

	if *help {
		fmt.Fprintln(out, "Instance Raytracer")
		fmt.Fprintln(out, "Usage: raytracer [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Flags default to the %s_* environment variables.\n", config.Prefix)
		return true, nil
	}
	return false, nil
}

// outputFormat resolves the -format flag, falling back to the output file extension
func outputFormat(cfg *config.Config) (imageio.Format, error) {
	if cfg.Format != "" {
		return imageio.ParseFormat(cfg.Format)
	}
	return imageio.FormatFromPath(cfg.Output)
}

func run(ctx context.Context, args []string, cfg *config.Config, out io.Writer) error {
	help, err := parseFlags(args, cfg, out)
	if err != nil || help {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	coreLogger := core.NewSlogLogger(logger)

	opts := scene.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Orthographic: cfg.Ortho,
		MaxBounce:    cfg.MaxBounce,
		MeshPath:     cfg.Mesh,
		MeshCells:    cfg.MeshCells,
		Logger:       coreLogger,
	}
	selectedScene, err := scene.Build(cfg.Scene, opts)
	if err != nil {
		return err
	}
	logger.Info("scene ready", "scene", selectedScene.Name,
		"shapes", len(selectedScene.Shapes), "lights", len(selectedScene.Lights))

	img := imageio.NewImage(cfg.Width, cfg.Height)
	raytracer := renderer.NewRaytracer(selectedScene, renderer.Config{
		SamplesPerPixel: cfg.Samples,
		TileSize:        cfg.TileSize,
		NumWorkers:      cfg.Workers,
		Seed:            cfg.Seed,
	}, coreLogger)

	stats, err := raytracer.Render(ctx, img)
	if err != nil {
		return err
	}

	if cfg.Gamma != 1 {
		img = img.GammaCorrect(cfg.Gamma)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}
	if err := imageio.Save(cfg.Output, img, format); err != nil {
		return err
	}

	logger.Info("render saved",
		"file", cfg.Output,
		"format", format,
		"job", stats.JobID,
		"duration", stats.Duration,
		"samples", stats.TotalSamples)
	return nil
}

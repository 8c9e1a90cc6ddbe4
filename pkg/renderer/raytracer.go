package renderer

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/log"
)

var logger = log.New("renderer")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	Seed            int64 // Seed for the single random generator used by a render
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 100,
		Seed:            42,
	}
}

// Validate reports whether the configuration can drive a render
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	return nil
}

// pathTracer is implemented by integrators that report per-path statistics
type pathTracer interface {
	TracePath(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) (core.Vec3, integrator.PathStats)
}

// Raytracer handles the rendering process
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	sampler    core.Sampler
}

// NewRaytracer creates a new raytracer. The sampler is seeded once from config.Seed.
func NewRaytracer(world geometry.Shape, camera *Camera, integ integrator.Integrator, config SamplingConfig) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if camera == nil {
		return nil, ErrNoCamera
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
		sampler:    core.NewSeededSampler(config.Seed),
	}, nil
}

// SetSampler replaces the random source, e.g. with a scripted sampler in tests
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// PixelColor averages SamplesPerPixel jittered estimates for pixel (i, j),
// where j counts rows from the bottom of the image
func (rt *Raytracer) PixelColor(i, j int, stats *RenderStats) core.Vec3 {
	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}
	tracer, tracksPaths := rt.integrator.(pathTracer)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		s := (float64(i) + rt.sampler.Get1D()) / float64(rt.config.Width)
		t := (float64(j) + rt.sampler.Get1D()) / float64(rt.config.Height)

		ray := rt.camera.GetRay(s, t)

		if tracksPaths {
			color, path := tracer.TracePath(ray, rt.world, rt.sampler, 0)
			colorAccum = colorAccum.Add(color)
			stats.AddPath(path)
		} else {
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.sampler, 0))
			stats.TotalSamples++
		}
	}

	return colorAccum.Divide(float64(rt.config.SamplesPerPixel))
}

// RenderPass renders the full image with multi-sampling.
// Rows are produced top to bottom, so image row 0 is the top of the view.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
	}

	logger.Infof("rendering %dx%d at %d spp", width, height, rt.config.SamplesPerPixel)
	startTime := time.Now()

	for j := height - 1; j >= 0; j-- {
		row := height - 1 - j
		for i := 0; i < width; i++ {
			img.SetRGBA(i, row, Vec3ToColor(rt.PixelColor(i, j, &stats)))
		}
		if row%max(1, height/10) == 0 {
			logger.Debugf("row %d/%d done", row+1, height)
		}
	}

	stats.Duration = time.Since(startTime)
	logger.Infof("render completed in %v", stats.Duration)
	return img, stats
}

// Vec3ToColor gamma-corrects (gamma 2) an averaged color and quantizes it to 8 bits
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Sqrt().Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}

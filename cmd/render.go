package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/output"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/urfave/cli"
)

// StdoutPath selects stdout as the render destination
const StdoutPath = "-"

// RenderOptions collects everything needed to render one frame.
// Zero sizes and depth fall back to the scene's recommended settings.
type RenderOptions struct {
	Scene           string // Built-in name, scene file ID or YAML path
	File            string // YAML scene file; takes precedence over Scene
	Width           int
	Height          int
	SamplesPerPixel int
	Seed            int64
	MaxDepth        int
	Normals         bool
	Out             string
	Format          string
}

// LoadScene resolves the scene named by the options
func (opts RenderOptions) LoadScene() (*scene.Scene, error) {
	if opts.File != "" {
		return scene.Load(opts.File)
	}
	return scene.New(opts.Scene)
}

// SamplingConfig overlays the options on the scene's sampling settings
func (opts RenderOptions) SamplingConfig(sc *scene.Scene) renderer.SamplingConfig {
	config := sc.SamplingConfig
	if opts.Width > 0 {
		config.Width = opts.Width
	}
	if opts.Height > 0 {
		config.Height = opts.Height
	}
	if opts.SamplesPerPixel > 0 {
		config.SamplesPerPixel = opts.SamplesPerPixel
	}
	config.Seed = opts.Seed
	return config
}

// Integrator creates the estimator selected by the options
func (opts RenderOptions) Integrator(sc *scene.Scene) integrator.Integrator {
	config := sc.IntegratorConfig()
	if opts.MaxDepth > 0 {
		config.MaxDepth = opts.MaxDepth
	}

	if opts.Normals {
		return integrator.NewNormalIntegrator(config)
	}
	return integrator.NewPathTracingIntegrator(config)
}

// OutputFormat picks the encoding: an explicit format wins, stdout defaults
// to PPM and files use their extension
func (opts RenderOptions) OutputFormat() (output.Format, error) {
	if opts.Format != "" {
		return output.ParseFormat(opts.Format)
	}
	if opts.Out == StdoutPath || opts.Out == "" {
		return output.FormatPPM, nil
	}
	return output.FormatFromPath(opts.Out)
}

// Render builds the scene described by opts and renders a single frame
func Render(opts RenderOptions) (*image.RGBA, renderer.RenderStats, error) {
	sc, err := opts.LoadScene()
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	logger.Infof("loaded scene %q with %d spheres", sc.Name, sc.GetPrimitiveCount())

	rt, err := renderer.NewRaytracer(sc.World, sc.Camera, opts.Integrator(sc), opts.SamplingConfig(sc))
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	img, stats := rt.RenderPass()
	return img, stats, nil
}

// Write encodes img to out, or to stdout when out is StdoutPath
func Write(stdout io.Writer, img image.Image, out string, format output.Format) error {
	if out == StdoutPath || out == "" {
		return output.Encode(stdout, img, format)
	}
	if err := output.SaveImage(out, img, format); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)
	return nil
}

func optionsFromContext(ctx *cli.Context) RenderOptions {
	return RenderOptions{
		Scene:           ctx.String("scene"),
		File:            ctx.String("file"),
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		Seed:            ctx.Int64("seed"),
		MaxDepth:        ctx.Int("max-depth"),
		Normals:         ctx.Bool("normals"),
		Out:             ctx.String("out"),
		Format:          ctx.String("format"),
	}
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 0 {
		return errors.New("render takes no arguments; use --scene or --file")
	}

	opts := optionsFromContext(ctx)

	// Fail on a bad destination before spending time rendering
	format, err := opts.OutputFormat()
	if err != nil {
		return err
	}

	img, stats, err := Render(opts)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := Write(ctx.App.Writer, img, opts.Out, format); err != nil {
		return err
	}

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("frame statistics\n%s", buf.String())
}

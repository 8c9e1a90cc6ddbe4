package main

import (
	"os"

	"github.com/df07/go-sphere-tracer/cmd"
	"github.com/df07/go-sphere-tracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("sphere-tracer")

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-sphere-tracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene or a YAML scene file. Each pixel averages --spp
jittered camera rays traced through diffuse and metal spheres until they
escape to the sky, are absorbed, or hit the bounce limit.

By default the frame is written to stdout as a plain-text PPM image.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "diffuse",
					Usage: "built-in scene name, scene file ID or path to a YAML scene",
				},
				cli.StringFlag{
					Name:  "file, f",
					Usage: "YAML scene file (overrides --scene)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum path depth (default: 50)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed",
				},
				cli.BoolFlag{
					Name:  "normals",
					Usage: "shade by surface normal instead of path tracing",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: cmd.StdoutPath,
					Usage: "image filename for the rendered frame, - for stdout",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "image format: ppm, png, bmp or tiff (default: from --out)",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "export",
			Usage:     "write a scene description as YAML",
			ArgsUsage: "scene_name",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: cmd.StdoutPath,
					Usage: "YAML filename, - for stdout",
				},
			},
			Action: cmd.ExportScene,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes and the scene files found in the scenes directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes()
	if err != nil {
		return err
	}

	writeSceneTable(ctx.App.Writer, scenes)
	return nil
}

func writeSceneTable(w io.Writer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Type", "Spheres", "Description"})
	for _, info := range scenes {
		source := info.Type
		if info.FilePath != "" {
			source = info.FilePath
		}
		table.Append([]string{
			info.ID,
			info.DisplayName,
			source,
			fmt.Sprintf("%d", info.Spheres),
			info.Description,
		})
	}
	table.Render()
}

// ExportScene writes a scene's description as YAML so it can be edited and
// rendered with --file.
func ExportScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}

	d, err := scene.Resolve(ctx.Args().First())
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == StdoutPath || out == "" {
		data, err := scene.Marshal(d)
		if err != nil {
			return err
		}
		_, err = ctx.App.Writer.Write(data)
		return err
	}

	if err := scene.Save(out, d); err != nil {
		return err
	}
	logger.Noticef("exported scene %q to %s", ctx.Args().First(), out)
	return nil
}

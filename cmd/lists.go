package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/listmerge/internal/formatter"
	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/shared"
	"github.com/urfave/cli/v3"
)

const renderWidth = 80

// Lists fetches the lists and prints them in the requested format.
func (r *Runner) Lists(ctx context.Context, cmd *cli.Command) error {
	collection, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.printLists(collection, cmd)
}

// Export fetches the lists and writes them to a file.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	collection, err := r.load(ctx)
	if err != nil {
		return err
	}

	path, err := formatter.WriteExport(collection, format, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("exported lists", "path", path, "format", format)
	return r.writePlain("✓ Exported %d lists (%s) to %s\n", len(collection), formatter.ItemCount(collection.Count()), path)
}

// printLists writes collection using the output flags shared by lists and merge.
func (r *Runner) printLists(collection models.ListCollection, cmd *cli.Command) error {
	if cmd.Bool("json") {
		data, err := formatter.ExportToJSON(collection, cmd.Bool("pretty"))
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	var data []byte
	if format == formatter.FormatJSON {
		data, err = formatter.ExportToJSON(collection, cmd.Bool("pretty"))
	} else {
		data, err = formatter.Export(collection, format)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("render") {
		if format != formatter.FormatMarkdown {
			return fmt.Errorf("%w: --render requires --format markdown, got %s", shared.ErrInvalidFlag, format)
		}
		out, err := formatter.RenderMarkdown(data, renderWidth, cmd.String("style"))
		if err != nil {
			return err
		}
		return r.writePlain("%s", out)
	}

	return r.writePlain("%s", data)
}

package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/listmerge/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to --path or the XDG config location.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if path == "" {
		path = shared.XDGConfigPath()
	}

	r.logger.Info("creating config file from template", "path", path)
	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("created config does not load: %w", err)
	}
	r.logger.Debug("config file verified", "source", config.Source.URL)

	r.writePlain("✓ Config file written to %s\n", path)
	r.writePlainln("Next steps:")
	r.writePlain("1. Set source.url (and source.token if the endpoint needs one)\n")
	r.writePlain("2. Run 'listmerge lists' to check the endpoint, then 'listmerge tui'\n")
	return nil
}

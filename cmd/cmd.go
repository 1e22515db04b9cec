// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (default: ./config.toml, then the XDG config dir)",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "Override the lists endpoint",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (text, markdown, csv, json, yaml)",
			Value:   "text",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
		&cli.BoolFlag{
			Name:  "render",
			Usage: "Render markdown output for the terminal",
		},
		&cli.StringFlag{
			Name:  "style",
			Usage: "Markdown style used with --render (dark, light, notty)",
			Value: "dark",
		},
	}
}

// listsCommand prints the fetched lists
func listsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "lists",
		Aliases: []string{"ls"},
		Usage:   "Fetch and print all lists",
		Flags:   outputFlags(),
		Action:  r.Lists,
	}
}

// exportCommand writes the fetched lists to a file
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Fetch all lists and write them to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: lists.<ext>)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, markdown, csv, json, yaml)",
				Value:   "json",
			},
		},
		Action: r.Export,
	}
}

// mergeCommand runs a merge session without the TUI
func mergeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "merge",
		Usage: "Merge items from two lists into a new list",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:     "left",
				Usage:    "First selected list number",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "right",
				Usage:    "Second selected list number",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "take",
				Usage: "Item ID to move from a selected list into the new list (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "return",
				Usage: "ID:left or ID:right, moves an item out of the new list (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the result and discard the merge",
			},
		}, outputFlags()...),
		Action: r.Merge,
	}
}

// setupCommand handles setup operations
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the file (default: the XDG config dir)",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive list merging.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for merging lists",
		Action:  r.TUI,
	}
}

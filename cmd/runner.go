package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/listmerge/internal/lists"
	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/services"
	"github.com/desertthunder/listmerge/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	source     services.Source
	manager    *lists.Manager
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Source     services.Source
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		source:     opts.Source,
		manager:    lists.NewManager(opts.Logger),
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// app builds the root command.
func (r *Runner) app() *cli.Command {
	return &cli.Command{
		Name:     "listmerge",
		Usage:    "Fetch numbered lists and merge two of them into a new one",
		Version:  version,
		Flags:    globalFlags(),
		Before:   r.Before,
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, listsCommand, exportCommand, mergeCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before loads the configuration and builds the list source from the global flags.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := shared.ResolveConfigPath(cmd.String("config"))
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return ctx, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		}

		config, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		r.config = config
		r.configPath = path
		r.logger.Debug("loaded config", "path", path)
	}

	if url := cmd.String("url"); url != "" {
		r.config.Source.URL = url
	}

	level, err := shared.ParseLevel(r.config.Log.Level)
	if err != nil {
		return ctx, fmt.Errorf("%w: log level %q", shared.ErrInvalidConfig, r.config.Log.Level)
	}
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	if r.source == nil {
		r.source = services.NewListsServiceFromConfig(r.config.Source, r.httpClient)
	}
	return ctx, nil
}

// SetLogger replaces the logger used by the runner and its manager.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.manager = lists.NewManager(logger)
}

// load fetches the records from the source and ingests them.
func (r *Runner) load(ctx context.Context) (models.ListCollection, error) {
	if r.source == nil {
		return nil, fmt.Errorf("%w: list source not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("fetching lists", "source", r.source.Name())

	records, err := r.source.FetchLists(ctx)
	if err != nil {
		return nil, err
	}

	collection, err := r.manager.Ingest(records)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("ingested lists", "lists", len(collection), "items", collection.Count())
	return collection, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"os"

	"github.com/desertthunder/listmerge/internal/shared"
	"github.com/urfave/cli/v3"
)

const version = "0.2.0"

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := runner.app().Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

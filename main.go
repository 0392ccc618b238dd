// Package main implements the main entry point for the Neutopia randomizer
package main

import (
	"context"
	"errors"
	"os"

	"github.com/neutopiarando/neutorando/internal/cli"
	"github.com/neutopiarando/neutorando/internal/config"
	"github.com/neutopiarando/neutorando/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if opts.Password != "" {
		if err := fileprocessor.InspectPassword(logger, opts.Password); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Randomizing failed", log.Err(err))
		os.Exit(1)
	}
}

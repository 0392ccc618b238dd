// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/neutopiarando/neutorando/internal/options"
	"github.com/neutopiarando/neutorando/internal/password"
	"github.com/neutopiarando/neutorando/internal/rando"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow: read the
// input dump, randomize it and write the result.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	mode, err := options.ParseMode(opts.Mode)
	if err != nil {
		return err
	}
	randoOpts := options.NewRandomizer()
	randoOpts.Mode = mode

	if !opts.Quiet {
		logger.Info("Randomizing ROM",
			log.String("file", opts.Input),
			log.String("seed", opts.Seed),
			log.String("mode", string(mode)),
		)
	}

	result, err := rando.Randomize(logger, data, opts.Seed, randoOpts)
	if err != nil {
		return fmt.Errorf("randomizing: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	output := opts.Output
	if output == "" {
		output = result.Filename
	}
	if err := os.WriteFile(output, result.Rom, 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", output, err)
	}

	logger.Info("Wrote randomized ROM",
		log.String("file", output),
		log.Int("size", len(result.Rom)),
	)
	return nil
}

// InspectPassword decodes a game password and prints its plain sections.
func InspectPassword(logger *log.Logger, pw string) error {
	plain, err := password.DecodePassword(pw)
	if err != nil {
		return fmt.Errorf("decoding password: %w", err)
	}

	for i := 0; i < len(plain); i += password.SectionSize {
		section := plain[i : i+password.SectionSize]
		parts := make([]string, len(section))
		for j, b := range section {
			parts[j] = fmt.Sprintf("%02x", b)
		}
		logger.Info("Password section",
			log.Int("section", i/password.SectionSize),
			log.String("bytes", strings.Join(parts, " ")),
		)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("neutorando", log.String("version", buildinfo.Version(version, commit, date)))
}

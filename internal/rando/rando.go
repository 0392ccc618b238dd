// Package rando is the embedding boundary of the randomizer: one call
// in, one result out. Hosts (the CLI, the wasm build) hand over the raw
// ROM bytes and the user's seed string and receive the randomized image
// plus a suggested output filename.
package rando

import (
	"fmt"

	"github.com/neutopiarando/neutorando/internal/options"
	"github.com/neutopiarando/neutorando/internal/pipeline"
	"github.com/neutopiarando/neutorando/internal/seed"
	"github.com/retroenv/retrogolib/log"
)

// Result of a randomization run.
type Result struct {
	Rom      []byte
	Filename string
}

// Randomize runs the full pipeline on a ROM dump. The same (dump, seed,
// options) triple always produces the same bytes. The input slice is
// never modified.
func Randomize(logger *log.Logger, inputRom []byte, seedStr string, opts options.Randomizer) (*Result, error) {
	value := seed.Parse(seedStr)
	logger.Debug("Seed resolved",
		log.String("seed", seedStr),
		log.String("canonical", seed.Format(value)),
	)

	out, err := pipeline.New(logger, opts).Run(inputRom, value)
	if err != nil {
		return nil, err
	}
	return &Result{
		Rom:      out,
		Filename: Filename(value),
	}, nil
}

// Filename returns the canonical output name for a seed value. Two seed
// strings that resolve to the same value share the filename.
func Filename(value uint64) string {
	return fmt.Sprintf("neutopia-randomizer-%s.pce", seed.Format(value))
}

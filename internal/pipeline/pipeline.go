// Package pipeline orchestrates the randomization workflow stages.
package pipeline

import (
	"fmt"

	"github.com/neutopiarando/neutorando/internal/checksum"
	"github.com/neutopiarando/neutorando/internal/logic"
	"github.com/neutopiarando/neutorando/internal/options"
	"github.com/neutopiarando/neutorando/internal/patch"
	"github.com/neutopiarando/neutorando/internal/rom"
	"github.com/neutopiarando/neutorando/internal/seed"
	"github.com/retroenv/retrogolib/log"
)

// Stage names the workflow steps, in order. Each stage consumes the
// previous stage's result, there is no concurrency inside a run.
type Stage string

const (
	StageLoaded      Stage = "loaded"
	StagePatched     Stage = "patched"
	StagePlaced      Stage = "placed"
	StageChecksummed Stage = "checksummed"
	StageSerialized  Stage = "serialized"
)

// Pipeline orchestrates the complete randomization workflow.
type Pipeline struct {
	logger  *log.Logger
	opts    options.Randomizer
	catalog patch.Catalog
}

// New creates a new randomization pipeline.
func New(logger *log.Logger, opts options.Randomizer) *Pipeline {
	return &Pipeline{
		logger:  logger,
		opts:    opts,
		catalog: patch.Default(),
	}
}

// Run executes the complete pipeline on a ROM file and returns the
// randomized image bytes. The input slice is never modified.
func (p *Pipeline) Run(data []byte, seedValue uint64) ([]byte, error) {
	info, buf, err := rom.Verify(data)
	if err != nil {
		return nil, fmt.Errorf("verifying ROM: %w", err)
	}
	img, err := rom.NewImage(buf)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}
	p.advance(StageLoaded,
		log.String("rom", info.Desc),
		log.String("region", string(info.Region)),
	)

	if err := p.catalog.Apply(img); err != nil {
		return nil, fmt.Errorf("applying patches: %w", err)
	}
	p.advance(StagePatched, log.Int("patches", len(p.catalog.Entries())))

	if err := p.place(img, seedValue); err != nil {
		return nil, err
	}
	p.advance(StagePlaced, log.String("mode", string(p.opts.Mode)))

	if err := checksum.Recompute(img); err != nil {
		return nil, fmt.Errorf("recomputing save checksums: %w", err)
	}
	p.advance(StageChecksummed)

	out := img.Bytes()
	p.advance(StageSerialized, log.Int("size", len(out)))
	return out, nil
}

// place runs the item placement step of the selected mode.
func (p *Pipeline) place(img *rom.Image, seedValue uint64) error {
	if p.opts.Mode == options.ModeNone {
		return nil
	}

	tables, err := rom.ParseTables(img)
	if err != nil {
		return fmt.Errorf("parsing chest tables: %w", err)
	}

	switch p.opts.Mode {
	case options.ModeLogic:
		checks, err := logic.Checks()
		if err != nil {
			return fmt.Errorf("loading checks: %w", err)
		}
		pool, err := logic.Pool(tables, checks)
		if err != nil {
			return fmt.Errorf("deriving item pool: %w", err)
		}

		solver := logic.NewSolver(p.logger)
		if p.opts.RetryBudget > 0 {
			solver.Budget = p.opts.RetryBudget
		}
		assignment, err := solver.Solve(checks, pool, seedValue)
		if err != nil {
			return fmt.Errorf("placing items: %w", err)
		}
		if err := logic.Apply(tables, assignment); err != nil {
			return fmt.Errorf("writing placement: %w", err)
		}

	case options.ModeLocal:
		if err := logic.ShuffleCrypts(tables, seed.New(seedValue, 0)); err != nil {
			return fmt.Errorf("shuffling crypts: %w", err)
		}

	default:
		return fmt.Errorf("unsupported randomization mode '%s'", p.opts.Mode)
	}
	return nil
}

func (p *Pipeline) advance(stage Stage, fields ...log.Field) {
	fields = append([]log.Field{log.String("stage", string(stage))}, fields...)
	p.logger.Debug("Stage complete", fields...)
}

package logic

import (
	"errors"
	"fmt"

	"github.com/neutopiarando/neutorando/internal/rom"
	"github.com/neutopiarando/neutorando/internal/seed"
	"github.com/retroenv/retrogolib/log"
)

// DefaultRetryBudget bounds the internal retry loop. A seed whose
// derived streams all dead-end within the budget fails the run with
// GenerationFailedError instead of looping forever.
const DefaultRetryBudget = 100

// ErrUnsolvable marks a single fill attempt that reached a state with
// unassigned checks but none reachable. It stays internal to the retry
// loop.
var ErrUnsolvable = errors.New("no completable assignment for this seed state")

// GenerationFailedError reports retry budget exhaustion. It asks the
// user for a different seed, the input file is fine.
type GenerationFailedError struct {
	Attempts int
	Err      error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("placement failed after %d attempts, try a different seed: %v", e.Attempts, e.Err)
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Err
}

// Pair is one placed item.
type Pair struct {
	Check Check
	Item  Item
}

// Assignment maps every check to the item placed there. It is computed
// once per run and written back into the image's chest tables.
type Assignment struct {
	Pairs []Pair
}

// Solver produces completable assignments.
type Solver struct {
	logger *log.Logger

	// Budget is the number of fill attempts before giving up.
	Budget int
}

// NewSolver creates a solver with the default retry budget.
func NewSolver(logger *log.Logger) *Solver {
	return &Solver{
		logger: logger,
		Budget: DefaultRetryBudget,
	}
}

// Solve runs fill attempts until one succeeds or the budget is spent.
// Attempt n draws from the stream derived from (seed value, n), so the
// whole decision sequence is a function of the seed alone.
func (s *Solver) Solve(checks []Check, pool []Item, seedValue uint64) (*Assignment, error) {
	if len(checks) != len(pool) {
		return nil, fmt.Errorf("%d checks but %d items in the pool", len(checks), len(pool))
	}

	var lastErr error
	for attempt := 1; attempt <= s.Budget; attempt++ {
		rng := seed.New(seedValue, uint64(attempt))
		assignment, err := fill(checks, pool, rng)
		if err != nil {
			if errors.Is(err, ErrUnsolvable) {
				s.logger.Debug("placement attempt dead-ended",
					log.Int("attempt", attempt), log.Err(err))
				lastErr = err
				continue
			}
			return nil, err
		}
		if !Completable(assignment) {
			// The fill order is itself a completability proof, so this
			// is unreachable unless the fill logic regresses.
			return nil, fmt.Errorf("fill produced an uncompletable assignment on attempt %d", attempt)
		}
		s.logger.Debug("placement solved", log.Int("attempt", attempt))
		for _, pair := range assignment.Pairs {
			s.logger.Debug("placed item",
				log.String("area", rom.AreaName(pair.Check.Area)),
				log.String("location", pair.Check.Name),
				log.String("item", pair.Item.Chest.ItemName()))
		}
		return assignment, nil
	}
	return nil, &GenerationFailedError{Attempts: s.Budget, Err: lastErr}
}

// fill runs one forward fill: repeatedly pick a reachable check and a
// legal item for it, both uniformly from the seed state, until every
// check is assigned or no progress is possible.
func fill(checks []Check, pool []Item, rng *seed.State) (*Assignment, error) {
	st := newFillState(checks, pool)

	for st.remaining() > 0 {
		reachable := st.reachableChecks()
		if len(reachable) == 0 {
			return nil, fmt.Errorf("%w: %d checks left but none reachable", ErrUnsolvable, st.remaining())
		}
		checkIdx := reachable[rng.Intn(len(reachable))]

		legal := st.legalItems(st.checks[checkIdx])
		if len(legal) == 0 {
			return nil, fmt.Errorf("%w: no legal item for %q", ErrUnsolvable, st.checks[checkIdx].Name)
		}
		itemIdx := legal[rng.Intn(len(legal))]

		st.assign(checkIdx, itemIdx)
	}

	if !gatesCleared(winGates, st.cleared) {
		return nil, fmt.Errorf("%w: win gates not clearable", ErrUnsolvable)
	}
	return &Assignment{Pairs: st.pairs}, nil
}

// Completable replays an assignment from an empty tag set: repeatedly
// collect any placed item whose check is reachable and union its gate,
// until a fixed point. The assignment is completable when every check
// was collected and the win gates cleared.
func Completable(assignment *Assignment) bool {
	cleared := map[Gate]struct{}{}
	collected := make([]bool, len(assignment.Pairs))

	for {
		progress := false
		for i, pair := range assignment.Pairs {
			if collected[i] || !gatesCleared(pair.Check.Gates, cleared) {
				continue
			}
			collected[i] = true
			progress = true
			if gate, ok := pair.Item.Gate(); ok {
				cleared[gate] = struct{}{}
			}
		}
		if !progress {
			break
		}
	}

	for _, done := range collected {
		if !done {
			return false
		}
	}
	return gatesCleared(winGates, cleared)
}

// Apply writes the assignment into the chest tables and relocates them
// into the image.
func Apply(tables *rom.Tables, assignment *Assignment) error {
	for _, pair := range assignment.Pairs {
		if err := tables.SetChest(int(pair.Check.Area), int(pair.Check.Index), pair.Item.Chest); err != nil {
			return fmt.Errorf("placing %q at %q: %w", pair.Item, pair.Check.Name, err)
		}
	}
	return tables.WriteChestTables()
}

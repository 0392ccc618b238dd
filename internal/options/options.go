// Package options contains the program options.
package options

import (
	"fmt"
	"strings"

	"github.com/neutopiarando/neutorando/internal/logic"
)

// Mode selects the placement strategy of a run.
type Mode string

const (
	// ModeLogic places items with the completability solver.
	ModeLogic Mode = "logic"

	// ModeLocal shuffles chest contents within each crypt, no logic.
	ModeLocal Mode = "local"

	// ModeNone applies the patch catalog only.
	ModeNone Mode = "none"
)

// ParseMode converts a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeLogic:
		return ModeLogic, nil
	case ModeLocal:
		return ModeLocal, nil
	case ModeNone:
		return ModeNone, nil
	}
	return "", fmt.Errorf("unknown randomization mode %q, valid modes: logic, local, none", s)
}

// Program contains the command line options.
type Program struct {
	Input  string
	Output string

	Seed     string
	Mode     string
	Password string

	Debug bool
	Quiet bool
}

// Randomizer defines options to control a randomization run.
type Randomizer struct {
	Mode        Mode
	RetryBudget int
}

// NewRandomizer returns a new options instance with default options.
func NewRandomizer() Randomizer {
	return Randomizer{
		Mode:        ModeLogic,
		RetryBudget: logic.DefaultRetryBudget,
	}
}

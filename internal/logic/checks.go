// Package logic implements the item placement solver: a seeded
// assumed-reachability fill over the progression gates, with bounded
// retries and a completability verifier.
package logic

import (
	"cmp"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/neutopiarando/neutorando/internal/rom"
)

//go:embed checks.json
var checksData []byte

// Gate is a progression tag: a check requires its gates cleared, an
// item clears a gate when collected.
type Gate string

const (
	GateFireWand    Gate = "fire-wand"
	GateBell        Gate = "bell"
	GateFalconShoes Gate = "falcon-shoes"
	GateRainbowDrop Gate = "rainbow-drop"
)

// winGates are the requirements of the win pseudo-check. The final
// medallion count is location based and never moves, so winning needs
// exactly the traversal gates.
var winGates = []Gate{GateFireWand, GateBell, GateFalconShoes, GateRainbowDrop}

var knownGates = map[Gate]struct{}{
	GateFireWand:    {},
	GateBell:        {},
	GateFalconShoes: {},
	GateRainbowDrop: {},
}

// Check is one randomizable location: a chest table slot plus the gates
// the player needs to reach it.
type Check struct {
	Name  string `json:"name"`
	Area  byte   `json:"area"`
	Room  byte   `json:"room"`
	Index byte   `json:"index"`
	Gates []Gate `json:"gates"`
}

// Checks loads the embedded progression data: every randomizable
// location with its requirement gates, sorted by area and chest index
// for deterministic traversal.
func Checks() ([]Check, error) {
	var checks []Check
	if err := json.Unmarshal(checksData, &checks); err != nil {
		return nil, fmt.Errorf("parsing checks resource: %w", err)
	}

	seen := map[[2]byte]string{}
	for _, check := range checks {
		if check.Area >= rom.FinalArea {
			return nil, fmt.Errorf("check %q: area %02x is in the end game region", check.Name, check.Area)
		}
		if int(check.Index) >= rom.ChestsPerArea {
			return nil, fmt.Errorf("check %q: chest index %d out of range", check.Name, check.Index)
		}
		slot := [2]byte{check.Area, check.Index}
		if other, ok := seen[slot]; ok {
			return nil, fmt.Errorf("checks %q and %q share chest slot %02x:%d", other, check.Name, check.Area, check.Index)
		}
		seen[slot] = check.Name
		for _, gate := range check.Gates {
			if _, ok := knownGates[gate]; !ok {
				return nil, fmt.Errorf("check %q: unknown gate %q", check.Name, gate)
			}
		}
	}

	slices.SortFunc(checks, func(a, b Check) int {
		if c := cmp.Compare(a.Area, b.Area); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return checks, nil
}

func gatesCleared(gates []Gate, cleared map[Gate]struct{}) bool {
	for _, gate := range gates {
		if _, ok := cleared[gate]; !ok {
			return false
		}
	}
	return true
}

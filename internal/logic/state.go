package logic

// fillState tracks one fill attempt: the still unassigned checks, the
// unplaced items, the gates cleared by items placed so far and the
// assignment built up. Checks and items keep their deterministic input
// order; every choice between them is made by the caller's SeedState.
type fillState struct {
	checks  []Check
	items   []Item
	cleared map[Gate]struct{}
	pairs   []Pair

	// per area bookkeeping for the pigeonhole constraint
	lockedLeft map[int]int
	checksLeft map[int]int
}

func newFillState(checks []Check, pool []Item) *fillState {
	st := &fillState{
		checks:     append([]Check(nil), checks...),
		items:      append([]Item(nil), pool...),
		cleared:    map[Gate]struct{}{},
		lockedLeft: map[int]int{},
		checksLeft: map[int]int{},
	}
	for _, item := range pool {
		if area, locked := item.AreaLock(); locked {
			st.lockedLeft[area]++
		}
	}
	for _, check := range checks {
		st.checksLeft[int(check.Area)]++
	}
	return st
}

func (st *fillState) remaining() int {
	return len(st.checks)
}

// reachableChecks returns the indices of all unassigned checks whose
// gates are already cleared.
func (st *fillState) reachableChecks() []int {
	var reachable []int
	for i, check := range st.checks {
		if gatesCleared(check.Gates, st.cleared) {
			reachable = append(reachable, i)
		}
	}
	return reachable
}

// legalItems returns the indices of all unplaced items that may go into
// the check without violating a hard constraint: area locked items only
// inside their area, and an unrestricted item only while the area keeps
// enough free slots for its remaining locked items.
func (st *fillState) legalItems(check Check) []int {
	area := int(check.Area)
	var legal []int
	for i, item := range st.items {
		if lockArea, locked := item.AreaLock(); locked {
			if lockArea == area {
				legal = append(legal, i)
			}
			continue
		}
		if st.checksLeft[area]-1 < st.lockedLeft[area] {
			continue
		}
		legal = append(legal, i)
	}
	return legal
}

// assign places an item into a check, clearing the item's gate.
func (st *fillState) assign(checkIdx, itemIdx int) {
	check := st.checks[checkIdx]
	item := st.items[itemIdx]

	st.pairs = append(st.pairs, Pair{Check: check, Item: item})
	st.checks = append(st.checks[:checkIdx], st.checks[checkIdx+1:]...)
	st.items = append(st.items[:itemIdx], st.items[itemIdx+1:]...)

	st.checksLeft[int(check.Area)]--
	if area, locked := item.AreaLock(); locked {
		st.lockedLeft[area]--
	}
	if gate, ok := item.Gate(); ok {
		st.cleared[gate] = struct{}{}
	}
}

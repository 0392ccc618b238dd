package logic

import (
	"fmt"

	"github.com/neutopiarando/neutorando/internal/rom"
)

// Item is one placeable content unit: the chest record to write into a
// slot plus its placement constraints. The zero value is an
// unrestricted item.
type Item struct {
	Chest rom.Chest

	// lockArea holds the restricted area plus one, zero means the item
	// may go anywhere. Crystal balls open a specific crypt's boss door
	// and crypt keys its locked doors, both are useless anywhere else.
	lockArea int
}

// LockToArea returns a copy of the item restricted to one area.
func (i Item) LockToArea(area int) Item {
	i.lockArea = area + 1
	return i
}

// AreaLock returns the area the item is restricted to.
func (i Item) AreaLock() (area int, locked bool) {
	if i.lockArea == 0 {
		return 0, false
	}
	return i.lockArea - 1, true
}

// Gate returns the gate the item clears when collected.
func (i Item) Gate() (Gate, bool) {
	switch i.Chest.ItemID {
	case rom.ItemFireWand:
		return GateFireWand, true
	case rom.ItemSkyBell:
		return GateBell, true
	case rom.ItemFalconShoes:
		return GateFalconShoes, true
	case rom.ItemRainbowDrop:
		return GateRainbowDrop, true
	}
	return "", false
}

func (i Item) String() string {
	return i.Chest.ItemName()
}

// Pool derives the item pool from the chest contents at the check
// locations. The checks resource and the image have to agree on which
// slots randomize; a medallion in a listed slot means they do not.
func Pool(tables *rom.Tables, checks []Check) ([]Item, error) {
	pool := make([]Item, 0, len(checks))
	for _, check := range checks {
		chest, err := tables.Chest(int(check.Area), int(check.Index))
		if err != nil {
			return nil, fmt.Errorf("check %q: %w", check.Name, err)
		}
		if chest.IsMedallion() {
			return nil, &rom.MalformedInputError{
				Reason: fmt.Sprintf("check %q holds a medallion, image and checks resource disagree", check.Name),
			}
		}

		item := Item{Chest: chest}
		switch chest.ItemID {
		case rom.ItemCrystalBall, rom.ItemCryptKey:
			item = item.LockToArea(int(check.Area))
		}
		pool = append(pool, item)
	}
	return pool, nil
}

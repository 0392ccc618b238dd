package rom

import "fmt"

// Tables is the parsed view of the game's chest table layer: one pointer
// per area, each pointing at a table of ChestsPerArea entries. The
// placement solver edits the in-memory tables and WriteChestTables
// relocates them into the spare region, rewriting the area pointers.
type Tables struct {
	img *Image

	ChestTablePointers []int
	ChestTables        [][]Chest
}

// ParseTables reads the chest table pointers and their tables out of the
// image. Pointers that resolve outside the image indicate a dump that
// does not match the expected original.
func ParseTables(img *Image) (*Tables, error) {
	t := &Tables{
		img:                img,
		ChestTablePointers: make([]int, ChestTableCount),
		ChestTables:        make([][]Chest, ChestTableCount),
	}

	for area := range t.ChestTablePointers {
		ptr, err := img.Pointer(ChestTable + area*PointerSize)
		if err != nil {
			return nil, fmt.Errorf("reading chest table pointer %02x: %w", area, err)
		}
		if ptr < 0 || ptr+ChestTableSize > img.Len() {
			return nil, &MalformedInputError{
				Reason: fmt.Sprintf("chest table pointer %02x resolves outside the image: %#x", area, ptr),
			}
		}
		t.ChestTablePointers[area] = ptr

		data, err := img.ReadAt(ptr, ChestTableSize)
		if err != nil {
			return nil, fmt.Errorf("reading chest table %02x: %w", area, err)
		}
		table, err := DecodeChestTable(data)
		if err != nil {
			return nil, fmt.Errorf("decoding chest table %02x: %w", area, err)
		}
		t.ChestTables[area] = table
	}
	return t, nil
}

// Chest returns the chest entry of an area table.
func (t *Tables) Chest(area, index int) (Chest, error) {
	if err := t.checkSlot(area, index); err != nil {
		return Chest{}, err
	}
	return t.ChestTables[area][index], nil
}

// SetChest replaces the chest entry of an area table in memory. The
// change reaches the image on WriteChestTables.
func (t *Tables) SetChest(area, index int, chest Chest) error {
	if err := t.checkSlot(area, index); err != nil {
		return err
	}
	t.ChestTables[area][index] = chest
	return nil
}

// WriteChestTables writes every chest table into the spare region and
// updates the area pointers to the new locations. The original tables
// are interleaved with other data, relocating sidesteps them entirely.
func (t *Tables) WriteChestTables() error {
	for area, table := range t.ChestTables {
		offset := SpareChestTables + area*ChestTableSize
		if err := t.img.WriteAt(offset, EncodeChestTable(table)); err != nil {
			return fmt.Errorf("writing chest table %02x: %w", area, err)
		}
		if err := t.img.SetPointer(ChestTable+area*PointerSize, offset); err != nil {
			return fmt.Errorf("updating chest table pointer %02x: %w", area, err)
		}
		t.ChestTablePointers[area] = offset
	}
	return nil
}

func (t *Tables) checkSlot(area, index int) error {
	if area < 0 || area >= len(t.ChestTables) || index < 0 || index >= ChestsPerArea {
		return fmt.Errorf("%w: chest slot %02x:%d", ErrOutOfBounds, area, index)
	}
	return nil
}

package rom

import "fmt"

// ChestSize is the encoded size of one chest table entry.
const ChestSize = 4

// Item identifiers stored in chest entries.
const (
	ItemBombs       = 0x00
	ItemMedicine    = 0x01
	ItemFireWand    = 0x02
	ItemSkyBell     = 0x03
	ItemWings       = 0x04
	ItemMoss        = 0x05
	ItemMagicRing   = 0x06
	ItemSword       = 0x08
	ItemArmor       = 0x09
	ItemShield      = 0x0a
	ItemFalconShoes = 0x0b
	ItemRainbowDrop = 0x0c
	ItemBook        = 0x0d
	ItemCrystalBall = 0x10
	ItemCryptKey    = 0x11

	// MedallionFirst is the first of the eight crypt medallion ids.
	MedallionFirst = 0x12
	MedallionCount = 8
)

// Chest is one chest table entry: the item it holds, an item argument
// (count or upgrade rank), the text id shown on pickup and a flags byte.
type Chest struct {
	ItemID byte
	Arg    byte
	Text   byte
	Flags  byte
}

// DecodeChest decodes one chest entry.
func DecodeChest(data []byte) (Chest, error) {
	if len(data) < ChestSize {
		return Chest{}, fmt.Errorf("%w: chest entry needs %d bytes, got %d", ErrOutOfBounds, ChestSize, len(data))
	}
	return Chest{
		ItemID: data[0],
		Arg:    data[1],
		Text:   data[2],
		Flags:  data[3],
	}, nil
}

// Encode returns the entry in its table representation.
func (c Chest) Encode() [ChestSize]byte {
	return [ChestSize]byte{c.ItemID, c.Arg, c.Text, c.Flags}
}

// IsMedallion reports whether the chest holds a crypt medallion.
// Medallions stay in place, the end game counts them by location.
func (c Chest) IsMedallion() bool {
	return c.ItemID >= MedallionFirst && c.ItemID < MedallionFirst+MedallionCount
}

// ItemName returns a display name for the chest content.
func (c Chest) ItemName() string {
	switch c.ItemID {
	case ItemBombs:
		return fmt.Sprintf("Bombs x%d", c.Arg)
	case ItemMedicine:
		return "Medicine"
	case ItemFireWand:
		return "Fire Wand"
	case ItemSkyBell:
		return "Sky Bell"
	case ItemWings:
		return "Wings"
	case ItemMoss:
		return "Moonbeam Moss"
	case ItemMagicRing:
		return "Magic Ring"
	case ItemSword:
		return rankedName("Sword", c.Arg)
	case ItemArmor:
		return rankedName("Armor", c.Arg)
	case ItemShield:
		return rankedName("Shield", c.Arg)
	case ItemFalconShoes:
		return "Falcon Shoes"
	case ItemRainbowDrop:
		return "Rainbow Drop"
	case ItemBook:
		return "Book of Revival"
	case ItemCrystalBall:
		return "Crystal Ball"
	case ItemCryptKey:
		return "Crypt Key"
	}
	if c.IsMedallion() {
		return fmt.Sprintf("Crypt %d Medallion", c.ItemID-MedallionFirst+1)
	}
	return "Unknown"
}

func rankedName(kind string, rank byte) string {
	switch rank {
	case 1:
		return "Starter " + kind
	case 2:
		return "Bronze " + kind
	case 3:
		return "Steel " + kind
	case 4:
		return "Strongest " + kind
	}
	return "Unknown " + kind
}

// DecodeChestTable decodes a full per area chest table.
func DecodeChestTable(data []byte) ([]Chest, error) {
	if len(data) < ChestTableSize {
		return nil, fmt.Errorf("%w: chest table needs %d bytes, got %d", ErrOutOfBounds, ChestTableSize, len(data))
	}
	table := make([]Chest, ChestsPerArea)
	for i := range table {
		chest, err := DecodeChest(data[i*ChestSize:])
		if err != nil {
			return nil, err
		}
		table[i] = chest
	}
	return table, nil
}

// EncodeChestTable encodes a full per area chest table.
func EncodeChestTable(table []Chest) []byte {
	buf := make([]byte, 0, len(table)*ChestSize)
	for _, chest := range table {
		enc := chest.Encode()
		buf = append(buf, enc[:]...)
	}
	return buf
}

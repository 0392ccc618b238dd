// Package romtest builds synthetic cartridge images for tests. The
// images carry the exact byte patterns the patch catalog and the chest
// table parser expect, so every pipeline stage runs against them the
// same way it runs against a real dump.
package romtest

import (
	"testing"

	"github.com/neutopiarando/neutorando/internal/logic"
	"github.com/neutopiarando/neutorando/internal/patch"
	"github.com/neutopiarando/neutorando/internal/rom"
)

// vanillaTables is the physical offset the synthetic chest tables are
// laid out at, one table stride per area. Any in-bounds location works,
// the parser follows the pointers.
const vanillaTables = 0x21000

// Build returns an unheadered synthetic image: erased-flash fill, the
// patch catalog's expected original bytes at their addresses and a
// vanilla chest table layer matching the progression data.
func Build(tb testing.TB) []byte {
	tb.Helper()

	buf := make([]byte, rom.Size)
	for i := range buf {
		buf[i] = 0xff
	}
	img, err := rom.NewImage(buf)
	if err != nil {
		tb.Fatalf("creating image: %v", err)
	}

	seedOriginals(tb, img)
	seedChestTables(tb, img)
	return img.Bytes()
}

// Headered returns the image with a copier header prepended.
func Headered(data []byte) []byte {
	buf := make([]byte, rom.HeaderSize, rom.HeaderSize+len(data))
	return append(buf, data...)
}

// seedOriginals writes every catalog entry's expected original bytes, so
// applying the catalog succeeds exactly once.
func seedOriginals(tb testing.TB, img *rom.Image) {
	tb.Helper()
	for _, entry := range patch.Default().Entries() {
		offset, err := img.Translate(entry.Addr)
		if err != nil {
			tb.Fatalf("translating %s: %v", entry.Addr, err)
		}
		if err := img.WriteAt(offset, entry.Original); err != nil {
			tb.Fatalf("seeding %q: %v", entry.Name, err)
		}
	}
}

// seedChestTables lays out vanilla chest tables and their pointers. Each
// check slot from the progression data receives an item, every crypt its
// key, crystal ball and medallion; the remaining slots stay empty.
func seedChestTables(tb testing.TB, img *rom.Image) {
	tb.Helper()

	checks, err := logic.Checks()
	if err != nil {
		tb.Fatalf("loading checks: %v", err)
	}

	tables := make([][]rom.Chest, rom.ChestTableCount)
	for area := range tables {
		table := make([]rom.Chest, rom.ChestsPerArea)
		for i := range table {
			table[i] = rom.Chest{ItemID: 0xff, Arg: 0xff, Text: 0xff, Flags: 0xff}
		}
		tables[area] = table
	}

	filler := []rom.Chest{
		{ItemID: rom.ItemBombs, Arg: 5, Text: 0x20, Flags: 0x01},
		{ItemID: rom.ItemMedicine, Arg: 1, Text: 0x21, Flags: 0x01},
		{ItemID: rom.ItemMoss, Arg: 1, Text: 0x22, Flags: 0x01},
		{ItemID: rom.ItemMagicRing, Arg: 1, Text: 0x23, Flags: 0x01},
		{ItemID: rom.ItemWings, Arg: 1, Text: 0x24, Flags: 0x01},
		{ItemID: rom.ItemSword, Arg: 2, Text: 0x25, Flags: 0x01},
		{ItemID: rom.ItemArmor, Arg: 2, Text: 0x26, Flags: 0x01},
		{ItemID: rom.ItemShield, Arg: 2, Text: 0x27, Flags: 0x01},
	}
	nextFiller := 0

	for _, check := range checks {
		chest := filler[nextFiller%len(filler)]
		switch {
		case check.Area == 0 && check.Index == 0:
			chest = rom.Chest{ItemID: rom.ItemFireWand, Arg: 1, Text: 0x30, Flags: 0x01}
		case check.Area == 0 && check.Index == 1:
			chest = rom.Chest{ItemID: rom.ItemSkyBell, Arg: 1, Text: 0x31, Flags: 0x01}
		case check.Area == 1 && check.Index == 0:
			chest = rom.Chest{ItemID: rom.ItemFalconShoes, Arg: 1, Text: 0x32, Flags: 0x01}
		case check.Area == 2 && check.Index == 0:
			chest = rom.Chest{ItemID: rom.ItemRainbowDrop, Arg: 1, Text: 0x33, Flags: 0x01}
		case isCrypt(check.Area) && check.Index == 0:
			chest = rom.Chest{ItemID: rom.ItemCryptKey, Arg: 1, Text: 0x34, Flags: 0x01}
		case isCrypt(check.Area) && check.Index == 1:
			chest = rom.Chest{ItemID: rom.ItemCrystalBall, Arg: 1, Text: 0x35, Flags: 0x01}
		default:
			nextFiller++
		}
		tables[check.Area][check.Index] = chest
	}

	for area := rom.CryptFirst; area <= rom.CryptLast; area++ {
		tables[area][rom.ChestsPerArea-1] = rom.Chest{
			ItemID: byte(rom.MedallionFirst + area - rom.CryptFirst),
			Arg:    1, Text: 0x36, Flags: 0x01,
		}
	}

	for area, table := range tables {
		offset := vanillaTables + area*rom.ChestTableSize
		if err := img.WriteAt(offset, rom.EncodeChestTable(table)); err != nil {
			tb.Fatalf("writing chest table %02x: %v", area, err)
		}
		if err := img.SetPointer(rom.ChestTable+area*rom.PointerSize, offset); err != nil {
			tb.Fatalf("writing chest table pointer %02x: %v", area, err)
		}
	}
}

func isCrypt(area byte) bool {
	return area >= rom.CryptFirst && area <= rom.CryptLast
}

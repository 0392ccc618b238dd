package rom

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeChest(t *testing.T) {
	chest, err := DecodeChest([]byte{0x11, 0x01, 0x85, 0x41})
	assert.NoError(t, err)
	assert.Equal(t, Chest{ItemID: ItemCryptKey, Arg: 0x01, Text: 0x85, Flags: 0x41}, chest)
	assert.Equal(t, [ChestSize]byte{0x11, 0x01, 0x85, 0x41}, chest.Encode())
}

func TestDecodeChestShortBuffer(t *testing.T) {
	_, err := DecodeChest([]byte{0x11, 0x01})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestIsMedallion(t *testing.T) {
	assert.True(t, Chest{ItemID: MedallionFirst}.IsMedallion())
	assert.True(t, Chest{ItemID: MedallionFirst + MedallionCount - 1}.IsMedallion())
	assert.False(t, Chest{ItemID: MedallionFirst + MedallionCount}.IsMedallion())
	assert.False(t, Chest{ItemID: ItemCryptKey}.IsMedallion())
}

func TestItemName(t *testing.T) {
	tests := []struct {
		chest Chest
		want  string
	}{
		{chest: Chest{ItemID: ItemBombs, Arg: 5}, want: "Bombs x5"},
		{chest: Chest{ItemID: ItemSword, Arg: 3}, want: "Steel Sword"},
		{chest: Chest{ItemID: ItemArmor, Arg: 4}, want: "Strongest Armor"},
		{chest: Chest{ItemID: ItemCrystalBall}, want: "Crystal Ball"},
		{chest: Chest{ItemID: MedallionFirst + 2}, want: "Crypt 3 Medallion"},
		{chest: Chest{ItemID: 0xf0}, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.chest.ItemName())
		})
	}
}

func TestChestTableRoundTrip(t *testing.T) {
	table := make([]Chest, ChestsPerArea)
	for i := range table {
		table[i] = Chest{ItemID: byte(i), Arg: 1, Text: byte(0x80 + i), Flags: 0x41}
	}

	decoded, err := DecodeChestTable(EncodeChestTable(table))
	assert.NoError(t, err)
	assert.Equal(t, table, decoded)
}

func TestDecodeChestTableShortBuffer(t *testing.T) {
	_, err := DecodeChestTable(make([]byte, ChestTableSize-1))
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

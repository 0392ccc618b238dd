package rom

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodePointer(t *testing.T) {
	tests := []struct {
		name    string
		pointer [PointerSize]byte
		want    int
	}{
		{name: "spare region", pointer: [PointerSize]byte{0x48, 0x4e, 0x45}, want: 0x5054e},
		{name: "next bank", pointer: [PointerSize]byte{0x49, 0x44, 0x51}, want: 0x53144},
		{name: "first data bank", pointer: [PointerSize]byte{0x20, 0x00, 0x40}, want: 0x0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodePointer(tt.pointer))
		})
	}
}

func TestEncodePointerRoundTrip(t *testing.T) {
	offsets := []int{0x0, 0x1e60, 0x5054e, 0x53144, SpareChestTables}
	for _, offset := range offsets {
		got := DecodePointer(EncodePointer(offset))
		assert.Equal(t, offset, got)
	}
}

func TestEncodePointerSlotBits(t *testing.T) {
	p := EncodePointer(0x5054e)
	assert.Equal(t, [PointerSize]byte{0x48, 0x4e, 0x45}, p)
}

func TestImagePointerAccess(t *testing.T) {
	img := testImage(t)

	assert.NoError(t, img.SetPointer(ChestTable, 0x53144))
	got, err := img.Pointer(ChestTable)
	assert.NoError(t, err)
	assert.Equal(t, 0x53144, got)
}

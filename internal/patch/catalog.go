package patch

import "github.com/neutopiarando/neutorando/internal/rom"

// Default returns the fixed patch catalog for the NA release.
//
// Addresses reference the bank layout the game itself uses: code banks
// are named by their mapping register value (ROM bank n = 0x20+n) and
// the free space past 0x50000 carries the relocated save template and
// the no-downgrade handler.
func Default() Catalog {
	return Catalog{entries: []Entry{
		{
			// The pickup handler stores the new item id and reloads it
			// for the caller. Route it through the handler below so a
			// lesser sword, armor or shield can no longer downgrade the
			// equipment slot.
			Name: "no-downgrade hook",
			Addr: rom.Addr{Bank: 0x21, CPU: 0x4a30},
			Original: []byte{
				0x8d, 0x44, 0x22, // STA $2244
				0xad, 0x44, 0x22, // LDA $2244
			},
			Data: []byte{
				0x20, 0x60, 0x5f, // JSR $5f60
				0xea, 0xea, 0xea,
			},
		},
		{
			// Compare the candidate rank against the stored one, keep
			// the winner and always reflect it into the inventory byte
			// the rest of the game reads.
			Name:     "no-downgrade handler",
			Addr:     rom.Addr{Bank: 0x48, CPU: 0x5f60},
			Original: bankFill(12),
			Data: []byte{
				0xcd, 0x44, 0x22, // CMP $2244
				0xb0, 0x03, // BCS +3, candidate wins
				0xad, 0x44, 0x22, // LDA $2244, keep stored
				0x8d, 0x44, 0x22, // STA $2244
				0x60, // RTS
			},
		},
		{
			// The save validation loop walks three 8 byte sections. The
			// extended save block that tracks randomized inventory needs
			// six. The recalculator reads this operand back, keeping
			// both sides of the arithmetic in lockstep.
			Name:     "expand save sections",
			Addr:     rom.Addr{Bank: 0x22, CPU: 0x4710},
			Original: []byte{0xa2, 0x03}, // LDX #$03
			Data:     []byte{0xa2, 0x06}, // LDX #$06
		},
		{
			// Point the validation loop at the relocated template block.
			Name:     "expand save template base",
			Addr:     rom.Addr{Bank: 0x22, CPU: 0x4715},
			Original: []byte{0xbd, 0xe0, 0x7f}, // LDA $7fe0,X
			Data:     []byte{0xbd, 0x40, 0x5e}, // LDA $5e40,X
		},
		{
			// The original encodes the save block twice as an anti-tamper
			// measure. Post randomization the duplicate is pure waste.
			Name:     "collapse encode calls",
			Addr:     rom.Addr{Bank: 0x22, CPU: 0x4730},
			Original: []byte{0x20, 0x5a, 0x47, 0x20, 0x5a, 0x47},
			Data:     []byte{0x20, 0x5a, 0x47, 0xea, 0xea, 0xea},
		},
		{
			Name:     "collapse decode calls",
			Addr:     rom.Addr{Bank: 0x22, CPU: 0x4740},
			Original: []byte{0x20, 0x90, 0x47, 0x20, 0x90, 0x47},
			Data:     []byte{0x20, 0x90, 0x47, 0xea, 0xea, 0xea},
		},
		{
			// Plain payload of the extended save template: six sections
			// of salt seed plus six data bytes. The checksum bytes stay
			// zero here, the recalculator encodes the block after all
			// content mutation.
			Name:     "save template block",
			Addr:     rom.Addr{Bank: rom.SaveTemplateBank, CPU: 0x5e40},
			Original: bankFill(6 * rom.SaveSectionSize),
			Data: []byte{
				0x05, 0x21, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x0d, 0x00, 0x3f, 0x12, 0x00, 0x08, 0x00, 0x00,
				0x15, 0x04, 0x00, 0x00, 0x2a, 0x00, 0x01, 0x00,
				0x1d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x25, 0x10, 0x0b, 0x00, 0x00, 0x3c, 0x00, 0x00,
				0x2d, 0x00, 0x00, 0x07, 0x00, 0x00, 0x19, 0x00,
			},
		},
		{
			// Jump straight from the title screen into the file select,
			// skipping the attract sequence.
			Name:     "intro skip",
			Addr:     rom.Addr{Bank: 0x20, CPU: 0xe062},
			Original: []byte{0x4c, 0x80, 0xe1}, // JMP $e180
			Data:     []byte{0x4c, 0xc0, 0xe3}, // JMP $e3c0
		},
		{
			// Crypt stairs check: fall through into the open path
			// instead of branching over it.
			Name:     "open stairs",
			Addr:     rom.Addr{Bank: 0x23, CPU: 0x44a0},
			Original: []byte{0xf0, 0x06}, // BEQ +6
			Data:     []byte{0xea, 0xea},
		},
		{
			// One frame per glyph instead of eight.
			Name:     "text speedup",
			Addr:     rom.Addr{Bank: 0x24, CPU: 0x4888},
			Original: []byte{0xa9, 0x08}, // LDA #$08
			Data:     []byte{0xa9, 0x01}, // LDA #$01
		},
	}}
}

// bankFill returns the erased-flash fill pattern unused ROM space holds.
func bankFill(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 0xff
	}
	return buf
}

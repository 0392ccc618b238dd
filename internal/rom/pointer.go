package rom

// The game stores table addresses as 3 byte banked pointers: the mapping
// register value, the low byte and the five window bits of the high
// byte. The remaining high bits select the CPU slot the bank is mapped
// into; the data banks are always mapped at $4000.

// PointerSize is the size of a banked pointer in a table.
const PointerSize = 3

// pointerSlot is the CPU slot marker encoded into the pointer high byte.
const pointerSlot = 0x40

// DecodePointer converts a banked pointer to a physical image offset.
func DecodePointer(p [PointerSize]byte) int {
	return (int(p[0])<<13 | int(p[2]&0x1f)<<8 | int(p[1])) - BankBase*BankSize
}

// EncodePointer converts a physical image offset to a banked pointer.
func EncodePointer(offset int) [PointerSize]byte {
	return [PointerSize]byte{
		byte(offset>>13) + BankBase,
		byte(offset),
		pointerSlot | byte(offset>>8)&0x1f,
	}
}

// Pointer reads and decodes a banked pointer at a physical offset.
func (img *Image) Pointer(offset int) (int, error) {
	buf, err := img.ReadAt(offset, PointerSize)
	if err != nil {
		return 0, err
	}
	return DecodePointer([PointerSize]byte{buf[0], buf[1], buf[2]}), nil
}

// SetPointer encodes target as a banked pointer and writes it at a
// physical offset.
func (img *Image) SetPointer(offset, target int) error {
	p := EncodePointer(target)
	return img.WriteAt(offset, p[:])
}

// Package rom models the Neutopia HuCard image: raw buffer access with
// bank-aware address translation, the banked pointer format used by the
// game's data tables and the chest tables themselves.
package rom

import (
	"errors"
	"fmt"
)

const (
	// Size is the size of an unheadered Neutopia HuCard image.
	Size = 384 * 1024

	// HeaderSize is the size of the optional copier header some dumps carry.
	HeaderSize = 0x200

	// BankSize is the size of one mappable ROM bank.
	BankSize = 0x2000

	// BankBase is the mapping register value that selects the first ROM
	// bank. The game addresses its data through banks 0x20 and up, and
	// its 3 byte pointers store the register value, not the physical
	// bank index.
	BankBase = 0x20

	// bankWindow masks a CPU address down to the offset inside the
	// 8 KiB slot the bank is mapped into.
	bankWindow = BankSize - 1
)

var (
	// ErrOutOfBounds is returned when a resolved physical offset falls
	// outside the image buffer.
	ErrOutOfBounds = errors.New("offset out of image bounds")

	// ErrBankAmbiguous is returned when a CPU access carries no usable
	// bank context. Address translation is bank-explicit, never inferred.
	ErrBankAmbiguous = errors.New("access without ROM bank context")
)

// Addr identifies a ROM location the way the CPU reaches it: the mapping
// register value selecting the bank plus the CPU address inside the
// mapped slot. The zero value carries no bank context and fails
// translation with ErrBankAmbiguous.
type Addr struct {
	Bank byte
	CPU  uint16
}

func (a Addr) String() string {
	return fmt.Sprintf("$%02x:%04x", a.Bank, a.CPU)
}

// Image is a typed view over the full cartridge byte buffer. It is
// created once per randomization run, mutated in place by the patch
// catalog and the placement solver and read back out at serialization.
// Writes substitute bytes, the buffer never grows or shrinks.
type Image struct {
	data []byte
}

// NewImage creates an image from an unheadered buffer. The input is
// copied so that an aborted run never leaks partial mutations back to
// the caller.
func NewImage(data []byte) (*Image, error) {
	if len(data) != Size {
		return nil, &MalformedInputError{
			Reason: fmt.Sprintf("image size %d does not match the expected %d bytes", len(data), Size),
		}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Image{data: buf}, nil
}

// Len returns the image length in bytes.
func (img *Image) Len() int {
	return len(img.data)
}

// Translate resolves a CPU address under its bank context to a physical
// offset: (bank << 13 | cpu & 0x1fff) - (BankBase << 13). The mapping is
// total and injective for every ROM bank.
func (img *Image) Translate(addr Addr) (int, error) {
	if addr.Bank < BankBase {
		return 0, fmt.Errorf("%w: %s", ErrBankAmbiguous, addr)
	}
	offset := int(addr.Bank-BankBase)*BankSize + int(addr.CPU&bankWindow)
	if offset >= len(img.data) {
		return 0, fmt.Errorf("%w: %s resolves to %#x", ErrOutOfBounds, addr, offset)
	}
	return offset, nil
}

// ReadCPU reads length bytes starting at a CPU address. The range must
// stay inside the addressed bank.
func (img *Image) ReadCPU(addr Addr, length int) ([]byte, error) {
	offset, err := img.translateRange(addr, length)
	if err != nil {
		return nil, err
	}
	return img.ReadAt(offset, length)
}

// WriteCPU writes bytes starting at a CPU address. The range must stay
// inside the addressed bank.
func (img *Image) WriteCPU(addr Addr, data []byte) error {
	offset, err := img.translateRange(addr, len(data))
	if err != nil {
		return err
	}
	return img.WriteAt(offset, data)
}

// ReadAt reads length bytes at a physical offset.
func (img *Image) ReadAt(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(img.data) {
		return nil, fmt.Errorf("%w: read of %d bytes at %#x", ErrOutOfBounds, length, offset)
	}
	buf := make([]byte, length)
	copy(buf, img.data[offset:offset+length])
	return buf, nil
}

// WriteAt writes bytes at a physical offset.
func (img *Image) WriteAt(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > len(img.data) {
		return fmt.Errorf("%w: write of %d bytes at %#x", ErrOutOfBounds, len(data), offset)
	}
	copy(img.data[offset:], data)
	return nil
}

// Bytes returns a copy of the image buffer for serialization.
func (img *Image) Bytes() []byte {
	buf := make([]byte, len(img.data))
	copy(buf, img.data)
	return buf
}

func (img *Image) translateRange(addr Addr, length int) (int, error) {
	offset, err := img.Translate(addr)
	if err != nil {
		return 0, err
	}
	if int(addr.CPU&bankWindow)+length > BankSize {
		return 0, fmt.Errorf("%w: %d bytes at %s cross the bank end", ErrOutOfBounds, length, addr)
	}
	return offset, nil
}

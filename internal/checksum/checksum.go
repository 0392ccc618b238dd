// Package checksum recomputes the save template integrity fields after
// all content mutation. It reads the span operands out of the patched
// validation routine instead of duplicating the catalog's constants, so
// the on-device arithmetic and this host-side mirror cannot drift apart.
package checksum

import (
	"fmt"

	"github.com/neutopiarando/neutorando/internal/password"
	"github.com/neutopiarando/neutorando/internal/rom"
)

// Recompute encodes every section of the save template block in place:
// checksum, prefix-xor chain and salt stream, exactly as the patched
// in-game routine expects to decode them. Must run after the patch
// catalog, which widens the operands this reads.
func Recompute(img *rom.Image) error {
	count, base, err := span(img)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		offset := base + i*rom.SaveSectionSize
		section, err := img.ReadAt(offset, rom.SaveSectionSize)
		if err != nil {
			return fmt.Errorf("reading save section %d: %w", i, err)
		}
		if err := password.Encode(section); err != nil {
			return fmt.Errorf("encoding save section %d: %w", i, err)
		}
		if err := img.WriteAt(offset, section); err != nil {
			return fmt.Errorf("writing save section %d: %w", i, err)
		}
	}
	return nil
}

// span reads the section count and template base address from the
// patched validation routine's operands.
func span(img *rom.Image) (count int, base int, err error) {
	countOp, err := img.ReadAt(rom.SaveCountOperand, 1)
	if err != nil {
		return 0, 0, fmt.Errorf("reading section count operand: %w", err)
	}

	baseOp, err := img.ReadAt(rom.SaveBaseOperand, 2)
	if err != nil {
		return 0, 0, fmt.Errorf("reading template base operand: %w", err)
	}
	cpu := uint16(baseOp[0]) | uint16(baseOp[1])<<8

	base, err = img.Translate(rom.Addr{Bank: rom.SaveTemplateBank, CPU: cpu})
	if err != nil {
		return 0, 0, fmt.Errorf("resolving template base $%04x: %w", cpu, err)
	}
	return int(countOp[0]), base, nil
}

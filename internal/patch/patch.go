// Package patch applies the fixed catalog of binary edits that adapt the
// game logic for randomization: the no-downgrade pickup handler, the
// extended save state validation and a few quality of life shortcuts.
package patch

import (
	"bytes"
	"fmt"

	"github.com/neutopiarando/neutorando/internal/interval"
	"github.com/neutopiarando/neutorando/internal/rom"
)

// Entry is one immutable binary edit, expressed in CPU address space
// with an explicit bank context. Original holds the bytes the edit
// expects to find; a mismatch means the input is not the expected
// original ROM (wrong dump or already patched) and aborts the run.
type Entry struct {
	Name     string
	Addr     rom.Addr
	Original []byte
	Data     []byte
}

// Catalog is the ordered, fixed list of patch entries. It is defined
// statically and applied exactly once per randomization run.
type Catalog struct {
	entries []Entry
}

// NewCatalog creates a catalog from a list of entries.
func NewCatalog(entries []Entry) Catalog {
	return Catalog{entries: entries}
}

// Entries returns the catalog entries in application order.
func (c Catalog) Entries() []Entry {
	return c.entries
}

// Validate checks the catalog invariants: equal original and replacement
// lengths, every entry confined to a single bank and resolvable inside
// the image, and no two entries overlapping. A failure here is a defect
// in the catalog itself, not in any input.
func (c Catalog) Validate() error {
	img, err := rom.NewImage(make([]byte, rom.Size))
	if err != nil {
		return err
	}

	var claimed interval.Store
	for _, entry := range c.entries {
		if len(entry.Original) != len(entry.Data) {
			return fmt.Errorf("patch %q: original length %d != replacement length %d",
				entry.Name, len(entry.Original), len(entry.Data))
		}
		if len(entry.Data) == 0 {
			return fmt.Errorf("patch %q: empty", entry.Name)
		}
		offset, err := img.Translate(entry.Addr)
		if err != nil {
			return fmt.Errorf("patch %q: %w", entry.Name, err)
		}
		if _, err := img.ReadCPU(entry.Addr, len(entry.Data)); err != nil {
			return fmt.Errorf("patch %q: %w", entry.Name, err)
		}
		if claimed.Overlaps(offset, offset+len(entry.Data)) {
			return fmt.Errorf("patch %q: overlaps an earlier entry at %s", entry.Name, entry.Addr)
		}
		claimed.Add(offset, offset+len(entry.Data))
	}
	return nil
}

// Apply writes every entry into the image in catalog order. Each target
// range is verified against the entry's expected original bytes first,
// so a wrong or already patched dump fails as malformed input before any
// byte is written.
func (c Catalog) Apply(img *rom.Image) error {
	for _, entry := range c.entries {
		current, err := img.ReadCPU(entry.Addr, len(entry.Original))
		if err != nil {
			return fmt.Errorf("patch %q: %w", entry.Name, err)
		}
		if !bytes.Equal(current, entry.Original) {
			return &rom.MalformedInputError{
				Reason: fmt.Sprintf("patch %q: bytes at %s do not match the expected original (got % x, want % x)",
					entry.Name, entry.Addr, current, entry.Original),
			}
		}
	}
	for _, entry := range c.entries {
		if err := img.WriteCPU(entry.Addr, entry.Data); err != nil {
			return fmt.Errorf("patch %q: %w", entry.Name, err)
		}
	}
	return nil
}

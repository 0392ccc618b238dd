package rom

// ROM map of the NA release. All values are physical image offsets
// unless noted otherwise. The patch catalog and the checksum
// recalculator reference the same locations through CPU addresses; the
// two views must stay in sync when the catalog changes.
const (
	// ChestTable is the table of per area chest table pointers.
	ChestTable = 0x1e60

	// ChestTableCount is the number of chest table pointers.
	ChestTableCount = 0x10

	// ChestsPerArea is the number of entries in one chest table.
	ChestsPerArea = 8

	// SpareChestTables is the start of the unused region the randomized
	// chest tables are relocated to, one ChestTableSize stride per area.
	SpareChestTables = 0x4fe00

	// ChestTableSize is the encoded size of one chest table.
	ChestTableSize = ChestsPerArea * ChestSize

	// SaveCountOperand is the immediate operand of the patched save
	// validation loop that holds the section count. The boundary
	// extension patch widens it; the recalculator reads it back.
	SaveCountOperand = 0x4711

	// SaveBaseOperand is the 16 bit absolute operand of the patched save
	// validation loop that holds the CPU address of the save template
	// block inside SaveTemplateBank.
	SaveBaseOperand = 0x4716

	// SaveTemplateBank is the mapping register value of the bank holding
	// the relocated save template block.
	SaveTemplateBank = 0x48

	// SaveSectionSize is the size of one save template section.
	SaveSectionSize = 8
)

// FinalArea is the first area index of the end game region. Chests in
// and above it never take part in randomization.
const FinalArea = 0x10

// CryptFirst and CryptLast bound the crypt area indexes.
const (
	CryptFirst = 0x04
	CryptLast  = 0x0b
)

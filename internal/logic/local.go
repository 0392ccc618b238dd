package logic

import (
	"fmt"

	"github.com/neutopiarando/neutorando/internal/rom"
	"github.com/neutopiarando/neutorando/internal/seed"
)

// ShuffleCrypts shuffles chest contents within each crypt, leaving the
// overworld and the medallions untouched. No progression logic applies;
// every crypt keeps its own key and crystal ball, so the result is
// completable by construction.
func ShuffleCrypts(tables *rom.Tables, rng *seed.State) error {
	for area := rom.CryptFirst; area <= rom.CryptLast; area++ {
		var indices []int
		var contents []rom.Chest
		for index := 0; index < rom.ChestsPerArea; index++ {
			chest, err := tables.Chest(area, index)
			if err != nil {
				return err
			}
			if chest.IsMedallion() || chest.ItemID == 0xff {
				continue
			}
			indices = append(indices, index)
			contents = append(contents, chest)
		}

		rng.Shuffle(len(contents), func(i, j int) {
			contents[i], contents[j] = contents[j], contents[i]
		})

		for i, index := range indices {
			if err := tables.SetChest(area, index, contents[i]); err != nil {
				return fmt.Errorf("shuffling crypt %02x: %w", area, err)
			}
		}
	}
	return tables.WriteChestTables()
}

package logic_test

import (
	"errors"
	"testing"

	"github.com/neutopiarando/neutorando/internal/logic"
	"github.com/neutopiarando/neutorando/internal/rom"
	"github.com/neutopiarando/neutorando/internal/romtest"
	"github.com/neutopiarando/neutorando/internal/seed"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testTables(t *testing.T) *rom.Tables {
	t.Helper()
	img, err := rom.NewImage(romtest.Build(t))
	assert.NoError(t, err)
	tables, err := rom.ParseTables(img)
	assert.NoError(t, err)
	return tables
}

func TestPool(t *testing.T) {
	checks, err := logic.Checks()
	assert.NoError(t, err)
	tables := testTables(t)

	pool, err := logic.Pool(tables, checks)
	assert.NoError(t, err)
	assert.Equal(t, len(checks), len(pool))

	counts := map[byte]int{}
	locked := 0
	for _, item := range pool {
		counts[item.Chest.ItemID]++
		if area, ok := item.AreaLock(); ok {
			locked++
			assert.True(t, area >= rom.CryptFirst && area <= rom.CryptLast)
		}
	}

	// one of each traversal item, one key and one ball per crypt
	assert.Equal(t, 1, counts[rom.ItemFireWand])
	assert.Equal(t, 1, counts[rom.ItemSkyBell])
	assert.Equal(t, 1, counts[rom.ItemFalconShoes])
	assert.Equal(t, 1, counts[rom.ItemRainbowDrop])
	assert.Equal(t, 8, counts[rom.ItemCryptKey])
	assert.Equal(t, 8, counts[rom.ItemCrystalBall])
	assert.Equal(t, 16, locked)
}

func TestPoolRejectsMedallionAtCheck(t *testing.T) {
	checks, err := logic.Checks()
	assert.NoError(t, err)
	tables := testTables(t)

	medallion := rom.Chest{ItemID: rom.MedallionFirst, Arg: 1}
	assert.NoError(t, tables.SetChest(int(checks[0].Area), int(checks[0].Index), medallion))

	_, err = logic.Pool(tables, checks)
	var malformed *rom.MalformedInputError
	assert.True(t, errors.As(err, &malformed))
}

func TestApplyWritesAssignment(t *testing.T) {
	checks, err := logic.Checks()
	assert.NoError(t, err)
	img, err := rom.NewImage(romtest.Build(t))
	assert.NoError(t, err)
	tables, err := rom.ParseTables(img)
	assert.NoError(t, err)

	pool, err := logic.Pool(tables, checks)
	assert.NoError(t, err)
	assignment, err := logic.NewSolver(log.NewTestLogger(t)).Solve(checks, pool, 77)
	assert.NoError(t, err)
	assert.NoError(t, logic.Apply(tables, assignment))

	// the written tables reflect the assignment after a fresh parse
	reparsed, err := rom.ParseTables(img)
	assert.NoError(t, err)
	for _, pair := range assignment.Pairs {
		chest, err := reparsed.Chest(int(pair.Check.Area), int(pair.Check.Index))
		assert.NoError(t, err)
		assert.Equal(t, pair.Item.Chest, chest)
	}
}

func TestShuffleCrypts(t *testing.T) {
	img, err := rom.NewImage(romtest.Build(t))
	assert.NoError(t, err)
	tables, err := rom.ParseTables(img)
	assert.NoError(t, err)

	before := map[int]map[rom.Chest]int{}
	for area := rom.CryptFirst; area <= rom.CryptLast; area++ {
		before[area] = map[rom.Chest]int{}
		for i := 0; i < rom.ChestsPerArea; i++ {
			chest, err := tables.Chest(area, i)
			assert.NoError(t, err)
			before[area][chest]++
		}
	}

	assert.NoError(t, logic.ShuffleCrypts(tables, seed.New(5, 0)))

	for area := rom.CryptFirst; area <= rom.CryptLast; area++ {
		after := map[rom.Chest]int{}
		for i := 0; i < rom.ChestsPerArea; i++ {
			chest, err := tables.Chest(area, i)
			assert.NoError(t, err)
			after[chest]++
		}
		assert.Equal(t, before[area], after)

		// the medallion never moves
		chest, err := tables.Chest(area, rom.ChestsPerArea-1)
		assert.NoError(t, err)
		assert.True(t, chest.IsMedallion())
	}
}

func TestShuffleCryptsIsDeterministic(t *testing.T) {
	run := func() []byte {
		img, err := rom.NewImage(romtest.Build(t))
		assert.NoError(t, err)
		tables, err := rom.ParseTables(img)
		assert.NoError(t, err)
		assert.NoError(t, logic.ShuffleCrypts(tables, seed.New(123, 0)))
		return img.Bytes()
	}

	assert.Equal(t, run(), run())
}

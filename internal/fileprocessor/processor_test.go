package fileprocessor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/neutopiarando/neutorando/internal/fileprocessor"
	"github.com/neutopiarando/neutorando/internal/options"
	"github.com/neutopiarando/neutorando/internal/password"
	"github.com/neutopiarando/neutorando/internal/rom"
	"github.com/neutopiarando/neutorando/internal/romtest"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pce")
	assert.NoError(t, os.WriteFile(path, romtest.Build(t), 0o644))
	return path
}

func TestProcessFile(t *testing.T) {
	input := writeInput(t)
	output := filepath.Join(filepath.Dir(input), "out.pce")

	opts := options.Program{
		Input:  input,
		Output: output,
		Seed:   "cafe",
		Mode:   "logic",
		Quiet:  true,
	}
	assert.NoError(t, fileprocessor.ProcessFile(context.Background(), log.NewTestLogger(t), opts))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, rom.Size, len(data))
}

func TestProcessFileDerivesOutputName(t *testing.T) {
	input := writeInput(t)
	dir := filepath.Dir(input)

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	opts := options.Program{
		Input: input,
		Seed:  "cafe",
		Mode:  "logic",
		Quiet: true,
	}
	assert.NoError(t, fileprocessor.ProcessFile(context.Background(), log.NewTestLogger(t), opts))

	data, err := os.ReadFile(filepath.Join(dir, "neutopia-randomizer-cafe.pce"))
	assert.NoError(t, err)
	assert.Equal(t, rom.Size, len(data))
}

func TestProcessFileMissingInput(t *testing.T) {
	opts := options.Program{
		Input: filepath.Join(t.TempDir(), "missing.pce"),
		Mode:  "logic",
	}
	err := fileprocessor.ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.Error(t, err)
}

func TestProcessFileBadMode(t *testing.T) {
	opts := options.Program{
		Input: writeInput(t),
		Mode:  "chaos",
	}
	err := fileprocessor.ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.Error(t, err)
}

// encodeChar is the inverse of password.DecodeChar, only needed to
// build passwords for tests.
func encodeChar(v byte) byte {
	switch {
	case v < 26:
		return 'A' + v
	case v < 35:
		return '1' + v - 26
	case v < 61:
		return 'a' + v - 35
	case v == 61:
		return '#'
	case v == 62:
		return '$'
	}
	return '%'
}

func TestInspectPassword(t *testing.T) {
	var pw []byte
	for i := 0; i < 3; i++ {
		section := make([]byte, password.SectionSize)
		section[0] = byte(i * 8)
		assert.NoError(t, password.Encode(section))
		for _, b := range section {
			pw = append(pw, encodeChar(b))
		}
	}

	assert.NoError(t, fileprocessor.InspectPassword(log.NewTestLogger(t), string(pw)))
	assert.Error(t, fileprocessor.InspectPassword(log.NewTestLogger(t), "tooshort"))
}

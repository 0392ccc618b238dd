package rando_test

import (
	"testing"

	"github.com/neutopiarando/neutorando/internal/options"
	"github.com/neutopiarando/neutorando/internal/rando"
	"github.com/neutopiarando/neutorando/internal/rom"
	"github.com/neutopiarando/neutorando/internal/romtest"
	"github.com/neutopiarando/neutorando/internal/seed"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestRandomize(t *testing.T) {
	input := romtest.Build(t)
	logger := log.NewTestLogger(t)

	result, err := rando.Randomize(logger, input, "cafe", options.NewRandomizer())
	assert.NoError(t, err)
	assert.Equal(t, rom.Size, len(result.Rom))
	assert.Equal(t, "neutopia-randomizer-cafe.pce", result.Filename)
}

func TestRandomizeIsDeterministic(t *testing.T) {
	input := romtest.Build(t)
	logger := log.NewTestLogger(t)

	a, err := rando.Randomize(logger, input, "myseed42", options.NewRandomizer())
	assert.NoError(t, err)
	b, err := rando.Randomize(logger, input, "myseed42", options.NewRandomizer())
	assert.NoError(t, err)

	assert.Equal(t, a.Rom, b.Rom)
	assert.Equal(t, a.Filename, b.Filename)
}

func TestRandomizeEmptySeed(t *testing.T) {
	input := romtest.Build(t)
	logger := log.NewTestLogger(t)

	a, err := rando.Randomize(logger, input, "", options.NewRandomizer())
	assert.NoError(t, err)
	b, err := rando.Randomize(logger, input, "", options.NewRandomizer())
	assert.NoError(t, err)
	assert.Equal(t, a.Rom, b.Rom)
}

func TestRandomizeRejectsBadInput(t *testing.T) {
	logger := log.NewTestLogger(t)
	_, err := rando.Randomize(logger, make([]byte, 123), "x", options.NewRandomizer())
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		seed string
		want string
	}{
		{seed: "cafe", want: "neutopia-randomizer-cafe.pce"},
		{seed: "CAFE", want: "neutopia-randomizer-cafe.pce"},
		{seed: "0", want: "neutopia-randomizer-0.pce"},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			assert.Equal(t, tt.want, rando.Filename(seed.Parse(tt.seed)))
		})
	}
}

package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input     string
		want      Mode
		wantError bool
	}{
		{input: "logic", want: ModeLogic},
		{input: "local", want: ModeLocal},
		{input: "none", want: ModeNone},
		{input: "LOGIC", want: ModeLogic},
		{input: "", wantError: true},
		{input: "chaos", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRandomizerDefaults(t *testing.T) {
	opts := NewRandomizer()
	assert.Equal(t, ModeLogic, opts.Mode)
	assert.True(t, opts.RetryBudget > 0)
}

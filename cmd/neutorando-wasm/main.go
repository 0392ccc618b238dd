//go:build js && wasm

// Package main exposes the randomizer to JavaScript hosts. It registers
// a single global function and then blocks; all state lives in the
// caller.
package main

import (
	"syscall/js"

	"github.com/neutopiarando/neutorando/internal/config"
	"github.com/neutopiarando/neutorando/internal/options"
	"github.com/neutopiarando/neutorando/internal/rando"
)

func main() {
	js.Global().Set("randomizeRom", js.FuncOf(randomizeRom))
	select {}
}

// randomizeRom implements randomizeRom(rom: Uint8Array, seed: string,
// mode?: string) -> {rom: Uint8Array, filename: string} | {error: string}.
func randomizeRom(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return errorResult("randomizeRom expects (rom, seed) arguments")
	}

	input := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(input, args[0])
	seedStr := args[1].String()

	opts := options.NewRandomizer()
	if len(args) > 2 && args[2].Type() == js.TypeString {
		mode, err := options.ParseMode(args[2].String())
		if err != nil {
			return errorResult(err.Error())
		}
		opts.Mode = mode
	}

	logger := config.CreateLogger(false, true)
	result, err := rando.Randomize(logger, input, seedStr, opts)
	if err != nil {
		return errorResult(err.Error())
	}

	out := js.Global().Get("Uint8Array").New(len(result.Rom))
	js.CopyBytesToJS(out, result.Rom)
	return map[string]any{
		"rom":      out,
		"filename": result.Filename,
	}
}

func errorResult(msg string) any {
	return map[string]any{"error": msg}
}

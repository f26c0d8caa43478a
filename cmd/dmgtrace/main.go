// Command dmgtrace runs a ROM headlessly for a fixed number of frames and
// writes the final framebuffer out as a PNG. It is a demonstration host, not
// part of the core: it does no windowing, input, or audio.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/quietpixel/dmgcore"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: dmgtrace <rom-path> <frame-count> [out.png]")
	}

	romPath := args[0]
	var frames int
	if _, err := fmt.Sscanf(args[1], "%d", &frames); err != nil {
		return fmt.Errorf("invalid frame count %q: %w", args[1], err)
	}

	out := "dmgtrace.png"
	if len(args) >= 3 {
		out = args[2]
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	state := dmg.NewState(rom)

	seen := 0
	vblank := func(*dmg.State) { seen++ }
	for seen < frames {
		cycles := state.Step()
		for i := uint64(0); i < cycles; i++ {
			state.StepPPU(vblank)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := png.Encode(f, state.Framebuffer()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	fmt.Printf("wrote %s after %d frame(s), %d cycles\n", out, frames, state.Cycles)
	return nil
}

// Package dmg implements the core of a cycle-timed emulator for an 8-bit
// handheld game console built around a Sharp LR35902 processor.
//
// The package models three tightly coupled subsystems behind a single
// mutable State: a CPU that fetches, decodes and executes one instruction
// per Step call; an MMU that routes 16-bit address reads and writes across
// ROM, RAM, VRAM, OAM and I/O registers; and a PPU that is clocked once per
// elapsed CPU cycle and renders a 160x144 background framebuffer, invoking a
// host-supplied callback once per frame at VBlank.
//
// dmg does not load ROM files, present a window, emit audio, or provide a
// debugger REPL. Those are the host's responsibility; dmg only advances
// state and reports elapsed cycles.
package dmg

// Package vm implements the LC-3 instruction set: machine state, the
// word-addressed memory subsystem with memory-mapped keyboard registers,
// the image loader, the fetch-decode-execute cycle, and the TRAP service
// layer.
package vm

import (
	"io"
	"os"

	"lc3/internal/host"
)

// Condition flags. Exactly one is set after any instruction that writes a
// general register.
const (
	condPos uint16 = 1 << 0
	condZro uint16 = 1 << 1
	condNeg uint16 = 1 << 2
)

// pcStart is where execution begins; addresses below it are reserved for
// the (absent, in this emulator) operating system image.
const pcStart uint16 = 0x3000

// Machine holds the full state of one LC-3: the eight general registers,
// program counter, condition flags, memory, and the run flag that the HALT
// trap clears.
type Machine struct {
	Registers [8]uint16
	PC        uint16
	Cond      uint16
	Memory    Memory
	Running   bool

	// Out is where the TRAP service layer writes OUT/PUTS/PUTSP/IN output.
	// Defaults to os.Stdout; tests swap in a buffer.
	Out io.Writer
}

// New builds a Machine with memory and registers zeroed, PC at pcStart, and
// Cond set to Zero, wired to console for memory-mapped keyboard I/O.
func New(console host.Console) *Machine {
	m := &Machine{
		PC:      pcStart,
		Cond:    condZro,
		Running: true,
		Out:     os.Stdout,
	}
	m.Memory.console = console
	return m
}

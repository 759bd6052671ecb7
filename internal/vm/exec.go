package vm

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// ErrFatalOpcode is returned when the fetch-execute cycle hits the reserved
// opcode or RTI; both are fatal aborts in this ISA (spec §4.5).
var ErrFatalOpcode = errors.New("fatal opcode")

// opcode is the 4-bit instruction class in bits[15:12].
type opcode uint16

const (
	opBR   opcode = 0b0000
	opADD  opcode = 0b0001
	opLD   opcode = 0b0010
	opST   opcode = 0b0011
	opJSR  opcode = 0b0100
	opAND  opcode = 0b0101
	opLDR  opcode = 0b0110
	opSTR  opcode = 0b0111
	opRTI  opcode = 0b1000
	opNOT  opcode = 0b1001
	opLDI  opcode = 0b1010
	opSTI  opcode = 0b1011
	opJMP  opcode = 0b1100
	opRES  opcode = 0b1101
	opLEA  opcode = 0b1110
	opTRAP opcode = 0b1111
)

// dispatch maps each of the 16 opcode values to its handler. Grounded on the
// teacher's Opcodes map[byte]Opcode{Instruction: (*Cpu).ADC, ...}
// table-of-function-pointers idiom; here an array since the LC-3 opcode
// space is small, dense, and exhaustive (every value is legal or fatal).
var dispatch = [16]func(*Machine, uint16) error{
	opBR:   execBR,
	opADD:  execADD,
	opLD:   execLD,
	opST:   execST,
	opJSR:  execJSR,
	opAND:  execAND,
	opLDR:  execLDR,
	opSTR:  execSTR,
	opRTI:  execFatal,
	opNOT:  execNOT,
	opLDI:  execLDI,
	opSTI:  execSTI,
	opJMP:  execJMP,
	opRES:  execFatal,
	opLEA:  execLEA,
	opTRAP: execTRAP,
}

// Step runs one fetch-decode-execute cycle: read the word at PC, advance PC
// (wrapping modulo 2^16), and dispatch on its top 4 bits. It returns
// ErrFatalOpcode if the instruction is RES or RTI.
func (m *Machine) Step() error {
	instr := m.Memory.Read(m.PC)
	m.PC++

	op := opcode(instr >> 12)
	return dispatch[op](m, instr)
}

func execFatal(m *Machine, instr uint16) error {
	state := struct {
		Registers [8]uint16
		PC        uint16
		Cond      uint16
	}{m.Registers, m.PC - 1, m.Cond}
	return fmt.Errorf("%w: %#04x at pc=%#04x\n%s", ErrFatalOpcode, instr, m.PC-1, spew.Sdump(state))
}

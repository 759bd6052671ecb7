package vm

import "lc3/internal/bitfield"

// signExtend interprets the low n bits of x as two's-complement and widens
// it to a full 16-bit value.
func signExtend(x uint16, n uint) uint16 {
	return bitfield.SignExtend(x, n)
}

// updateFlags sets Cond from the value just written to register r. Every
// opcode that writes a general register calls this; opcodes that don't
// write one must not.
func updateFlags(m *Machine, r uint16) {
	v := m.Registers[r]
	switch {
	case v == 0:
		m.Cond = condZro
	case bitfield.IsSet(v, 15):
		m.Cond = condNeg
	default:
		m.Cond = condPos
	}
}

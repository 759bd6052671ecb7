package vm

import "lc3/internal/bitfield"

// Each handler below implements one opcode's semantics per spec.md §4.5.
// Grounded on cpu/instructions.go's per-opcode methods (teacher) and the
// lassandro/golc3 Step switch (field-layout comments kept where they aid
// reading the bit math).

// ADD |0001|DR|SR1|0|00|SR2| register mode
// ADD |0001|DR|SR1|1|imm5   | immediate mode
func execADD(m *Machine, instr uint16) error {
	dr := bitfield.Range(instr, 9, 11)
	sr1 := bitfield.Range(instr, 6, 8)

	if bitfield.IsSet(instr, 5) {
		imm5 := signExtend(bitfield.Range(instr, 0, 4), 5)
		m.Registers[dr] = m.Registers[sr1] + imm5
	} else {
		sr2 := bitfield.Range(instr, 0, 2)
		m.Registers[dr] = m.Registers[sr1] + m.Registers[sr2]
	}
	updateFlags(m, dr)
	return nil
}

// AND |0101|DR|SR1|0|00|SR2| register mode
// AND |0101|DR|SR1|1|imm5   | immediate mode
func execAND(m *Machine, instr uint16) error {
	dr := bitfield.Range(instr, 9, 11)
	sr1 := bitfield.Range(instr, 6, 8)

	if bitfield.IsSet(instr, 5) {
		imm5 := signExtend(bitfield.Range(instr, 0, 4), 5)
		m.Registers[dr] = m.Registers[sr1] & imm5
	} else {
		sr2 := bitfield.Range(instr, 0, 2)
		m.Registers[dr] = m.Registers[sr1] & m.Registers[sr2]
	}
	updateFlags(m, dr)
	return nil
}

// NOT |1001|DR|SR|1|11111|
func execNOT(m *Machine, instr uint16) error {
	dr := bitfield.Range(instr, 9, 11)
	sr := bitfield.Range(instr, 6, 8)
	m.Registers[dr] = ^m.Registers[sr]
	updateFlags(m, dr)
	return nil
}

// BR |0000|n|z|p|PCoffset9|
func execBR(m *Machine, instr uint16) error {
	nzp := bitfield.Range(instr, 9, 11)
	if nzp&m.Cond != 0 {
		m.PC += signExtend(bitfield.Range(instr, 0, 8), 9)
	}
	return nil
}

// JMP |1100|000|BaseR|000000| (RET is JMP with BaseR=7)
func execJMP(m *Machine, instr uint16) error {
	baseR := bitfield.Range(instr, 6, 8)
	m.PC = m.Registers[baseR]
	return nil
}

// JSR |0100|1|PCoffset11|
// JSRR|0100|0|00|BaseR|000000|
func execJSR(m *Machine, instr uint16) error {
	m.Registers[7] = m.PC
	if bitfield.IsSet(instr, 11) {
		m.PC += signExtend(bitfield.Range(instr, 0, 10), 11)
	} else {
		baseR := bitfield.Range(instr, 6, 8)
		m.PC = m.Registers[baseR]
	}
	return nil
}

// LD |0010|DR|PCoffset9|
func execLD(m *Machine, instr uint16) error {
	dr := bitfield.Range(instr, 9, 11)
	addr := m.PC + signExtend(bitfield.Range(instr, 0, 8), 9)
	m.Registers[dr] = m.Memory.Read(addr)
	updateFlags(m, dr)
	return nil
}

// LDI |1010|DR|PCoffset9|
func execLDI(m *Machine, instr uint16) error {
	dr := bitfield.Range(instr, 9, 11)
	addr := m.PC + signExtend(bitfield.Range(instr, 0, 8), 9)
	m.Registers[dr] = m.Memory.Read(m.Memory.Read(addr))
	updateFlags(m, dr)
	return nil
}

// LDR |0110|DR|BaseR|offset6|
func execLDR(m *Machine, instr uint16) error {
	dr := bitfield.Range(instr, 9, 11)
	baseR := bitfield.Range(instr, 6, 8)
	addr := m.Registers[baseR] + signExtend(bitfield.Range(instr, 0, 5), 6)
	m.Registers[dr] = m.Memory.Read(addr)
	updateFlags(m, dr)
	return nil
}

// LEA |1110|DR|PCoffset9| — never touches memory; writes an address.
func execLEA(m *Machine, instr uint16) error {
	dr := bitfield.Range(instr, 9, 11)
	m.Registers[dr] = m.PC + signExtend(bitfield.Range(instr, 0, 8), 9)
	updateFlags(m, dr)
	return nil
}

// ST |0011|SR|PCoffset9|
func execST(m *Machine, instr uint16) error {
	sr := bitfield.Range(instr, 9, 11)
	addr := m.PC + signExtend(bitfield.Range(instr, 0, 8), 9)
	m.Memory.Write(addr, m.Registers[sr])
	return nil
}

// STI |1011|SR|PCoffset9|
func execSTI(m *Machine, instr uint16) error {
	sr := bitfield.Range(instr, 9, 11)
	addr := m.PC + signExtend(bitfield.Range(instr, 0, 8), 9)
	m.Memory.Write(m.Memory.Read(addr), m.Registers[sr])
	return nil
}

// STR |0111|SR|BaseR|offset6|
func execSTR(m *Machine, instr uint16) error {
	sr := bitfield.Range(instr, 9, 11)
	baseR := bitfield.Range(instr, 6, 8)
	addr := m.Registers[baseR] + signExtend(bitfield.Range(instr, 0, 5), 6)
	m.Memory.Write(addr, m.Registers[sr])
	return nil
}

// TRAP |1111|0000|trapvect8|
func execTRAP(m *Machine, instr uint16) error {
	m.Registers[7] = m.PC
	vector := bitfield.Range(instr, 0, 7)
	return dispatchTrap(m, byte(vector))
}

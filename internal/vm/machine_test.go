package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := newMachine()
	assert.Equal(t, pcStart, m.PC)
	assert.Equal(t, condZro, m.Cond)
	assert.True(t, m.Running)
	assert.Equal(t, [8]uint16{}, m.Registers)
}

func TestUpdateFlags(t *testing.T) {
	m := newMachine()

	m.Registers[0] = 0
	updateFlags(m, 0)
	assert.Equal(t, condZro, m.Cond)

	m.Registers[0] = 0x8000
	updateFlags(m, 0)
	assert.Equal(t, condNeg, m.Cond)

	m.Registers[0] = 1
	updateFlags(m, 0)
	assert.Equal(t, condPos, m.Cond)
}

func TestSignExtendWrapper(t *testing.T) {
	assert.Equal(t, uint16(0xFFFF), signExtend(0x1F, 5)) // -1 in 5 bits
	assert.Equal(t, uint16(0x000F), signExtend(0x0F, 5)) // +15 in 5 bits
}

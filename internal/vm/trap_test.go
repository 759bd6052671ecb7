package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrapOut(t *testing.T) {
	m := newMachine()
	m.Registers[0] = uint16('!')
	assert.NoError(t, trapOut(m))
	assert.Equal(t, "!", m.Out.(*bytes.Buffer).String())
}

func TestTrapPuts(t *testing.T) {
	for _, tc := range []struct {
		name  string
		chars []uint16
		want  string
	}{
		{name: "S5 from spec: Hi", chars: []uint16{'H', 'i', 0}, want: "Hi"},
		{name: "empty string", chars: []uint16{0}, want: ""},
	} {
		m := newMachine()
		m.Registers[0] = 0x4000
		for i, c := range tc.chars {
			m.Memory.words[0x4000+uint16(i)] = c
		}
		assert.NoError(t, trapPuts(m), tc.name)
		assert.Equal(t, tc.want, m.Out.(*bytes.Buffer).String(), tc.name)
	}
}

func TestTrapPutsp(t *testing.T) {
	for _, tc := range []struct {
		name  string
		words []uint16
		want  string
	}{
		{name: "two full pairs", words: []uint16{'e'<<8 | 'H', 'l'<<8 | 'l', 'o', 0}, want: "Hello"},
		{name: "odd length, high byte zero on last word", words: []uint16{'o'<<8 | 'H', 'i', 0}, want: "Hoi"},
	} {
		m := newMachine()
		m.Registers[0] = 0x5000
		for i, w := range tc.words {
			m.Memory.words[0x5000+uint16(i)] = w
		}
		assert.NoError(t, trapPutsp(m), tc.name)
		assert.Equal(t, tc.want, m.Out.(*bytes.Buffer).String(), tc.name)
	}
}

func TestTrapIn(t *testing.T) {
	m := New(&fakeConsole{queue: []byte{'x'}})
	m.Out = &bytes.Buffer{}
	assert.NoError(t, trapIn(m))
	assert.Equal(t, uint16('x'), m.Registers[0])
	assert.Equal(t, "Enter a character: x", m.Out.(*bytes.Buffer).String())
}

func TestTrapGetc(t *testing.T) {
	m := New(&fakeConsole{queue: []byte{'Q'}})
	instr := uint16(0b1111_0000_00100000) // TRAP GETC
	assert.NoError(t, execTRAP(m, instr))
	assert.Equal(t, uint16('Q'), m.Registers[0])
}

func TestTrapHalt(t *testing.T) {
	m := newMachine()
	m.PC = 0x3000
	instr := uint16(0b1111_0000_00100101) // TRAP HALT
	assert.NoError(t, execTRAP(m, instr))
	assert.False(t, m.Running)
	assert.Equal(t, "HALT\n", m.Out.(*bytes.Buffer).String())
}

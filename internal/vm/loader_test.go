package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadImage(t *testing.T) {
	var buf bytes.Buffer
	for _, w := range []uint16{0x3000, 0x1021, 0x1022, 0xF025} {
		buf.WriteByte(byte(w >> 8))
		buf.WriteByte(byte(w))
	}

	m := newMachine()
	assert.NoError(t, m.LoadImage(&buf))
	assert.Equal(t, uint16(0x1021), m.Memory.words[0x3000])
	assert.Equal(t, uint16(0x1022), m.Memory.words[0x3001])
	assert.Equal(t, uint16(0xF025), m.Memory.words[0x3002])
}

func TestLoadImageEmpty(t *testing.T) {
	m := newMachine()
	assert.NoError(t, m.LoadImage(&bytes.Buffer{}))
}

func TestLoadImageOriginOnly(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x30)
	buf.WriteByte(0x00)

	m := newMachine()
	assert.NoError(t, m.LoadImage(&buf))
	assert.Equal(t, uint16(0), m.Memory.words[0x3000])
}

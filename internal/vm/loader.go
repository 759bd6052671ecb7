package vm

import (
	"encoding/binary"
	"io"
)

// LoadImage reads a big-endian LC-3 image from r: the first word is the
// load address (origin), and every word after it is stored sequentially
// starting there, up to the end of the address space or EOF, whichever
// comes first. Multiple images may be loaded sequentially; later loads may
// overlap or overwrite earlier ones.
func (m *Machine) LoadImage(r io.Reader) error {
	var origin uint16
	if err := binary.Read(r, binary.BigEndian, &origin); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	addr := origin
	for {
		var word uint16
		if err := binary.Read(r, binary.BigEndian, &word); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return err
		}

		m.Memory.words[addr] = word

		if addr == 0xFFFF {
			return nil
		}
		addr++
	}
}

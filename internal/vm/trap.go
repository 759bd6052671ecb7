package vm

import (
	"fmt"
	"io"
)

// TRAP vectors (spec §4.6).
const (
	trapGETC  byte = 0x20
	trapOUT   byte = 0x21
	trapPUTS  byte = 0x22
	trapIN    byte = 0x23
	trapPUTSP byte = 0x24
	trapHALT  byte = 0x25
)

// dispatchTrap runs the service routine named by vector. Unknown vectors are
// silently ignored; R7 has already been set to the return address by the
// caller.
func dispatchTrap(m *Machine, vector byte) error {
	switch vector {
	case trapGETC:
		return trapGetc(m)
	case trapOUT:
		return trapOut(m)
	case trapPUTS:
		return trapPuts(m)
	case trapIN:
		return trapIn(m)
	case trapPUTSP:
		return trapPutsp(m)
	case trapHALT:
		return trapHalt(m)
	}
	return nil
}

// GETC reads one character from the keyboard into R0, unechoed. Blocks until
// a key is available.
func trapGetc(m *Machine) error {
	b, err := m.Memory.console.ReadByte()
	if err != nil {
		return err
	}
	m.Registers[0] = uint16(b)
	updateFlags(m, 0)
	return nil
}

// OUT writes the low byte of R0 to m.Out.
func trapOut(m *Machine) error {
	_, err := m.Out.Write([]byte{byte(m.Registers[0])})
	return err
}

// PUTS writes the null-terminated string starting at the address in R0, one
// character per word, to m.Out.
func trapPuts(m *Machine) error {
	addr := m.Registers[0]
	for {
		w := m.Memory.Read(addr)
		if w == 0 {
			break
		}
		if _, err := m.Out.Write([]byte{byte(w)}); err != nil {
			return err
		}
		addr++
	}
	return nil
}

// IN prompts for and reads one character, echoes it, and stores it in R0.
func trapIn(m *Machine) error {
	if _, err := io.WriteString(m.Out, "Enter a character: "); err != nil {
		return err
	}

	b, err := m.Memory.console.ReadByte()
	if err != nil {
		return err
	}
	if _, err := m.Out.Write([]byte{b}); err != nil {
		return err
	}

	m.Registers[0] = uint16(b)
	updateFlags(m, 0)
	return nil
}

// PUTSP writes the null-terminated string starting at the address in R0,
// packed two characters per word: low byte first, then high byte if
// nonzero.
func trapPutsp(m *Machine) error {
	addr := m.Registers[0]
	for {
		w := m.Memory.Read(addr)
		if w == 0 {
			break
		}
		lo := byte(w & 0xFF)
		if _, err := m.Out.Write([]byte{lo}); err != nil {
			return err
		}
		if hi := byte(w >> 8); hi != 0 {
			if _, err := m.Out.Write([]byte{hi}); err != nil {
				return err
			}
		}
		addr++
	}
	return nil
}

// HALT stops the fetch-execute loop.
func trapHalt(m *Machine) error {
	_, err := fmt.Fprintln(m.Out, "HALT")
	m.Running = false
	return err
}

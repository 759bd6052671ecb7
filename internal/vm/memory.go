package vm

import "lc3/internal/host"

// Memory-mapped keyboard registers. All other addresses are plain storage.
const (
	addrKBSR uint16 = 0xFE00
	addrKBDR uint16 = 0xFE02
)

// kbsrReady is the bit set in KBSR when a key is waiting.
const kbsrReady uint16 = 1 << 15

// Memory is the LC-3's 65,536-word address space. Reads of KBSR poll the
// host console non-blockingly and populate KBSR/KBDR as a side effect;
// writes are always plain stores.
type Memory struct {
	words   [65536]uint16
	console host.Console
}

// Read returns the word at addr. Reading KBSR first polls the console: if a
// key is ready, KBSR gets the ready bit and KBDR gets the key's code;
// otherwise KBSR is cleared. KBDR is left untouched when no key is ready.
func (mem *Memory) Read(addr uint16) uint16 {
	if addr == addrKBSR {
		if mem.console != nil && mem.console.KeyAvailable() {
			b, err := mem.console.ReadByte()
			if err == nil {
				mem.words[addrKBSR] = kbsrReady
				mem.words[addrKBDR] = uint16(b)
			} else {
				mem.words[addrKBSR] = 0
			}
		} else {
			mem.words[addrKBSR] = 0
		}
	}
	return mem.words[addr]
}

// Write stores value at addr. Writes have no side effects, including to
// KBSR/KBDR.
func (mem *Memory) Write(addr uint16, value uint16) {
	mem.words[addr] = value
}

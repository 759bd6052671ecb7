// Package host adapts the LC-3 emulator to the host terminal: raw input
// mode, non-blocking key polling, blocking single-character reads, and
// signal-driven cleanup.
package host

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/eiannone/keyboard"
)

// Console is the host bridge the TRAP service layer and the memory-mapped
// keyboard registers consume. It intentionally exposes nothing beyond what
// the guest ISA can observe: a single pending/blocking character stream.
type Console interface {
	// KeyAvailable reports, without blocking, whether a key is waiting to
	// be read.
	KeyAvailable() bool
	// ReadByte blocks until a key is available and returns its code.
	ReadByte() (byte, error)
}

// Terminal puts stdin into raw (non-canonical, non-echo) mode for the
// lifetime of the process and exposes it as a Console. Restore must be
// called on every exit path: normal HALT, a fatal opcode, or interrupt.
type Terminal struct {
	keys  <-chan keyboard.KeyEvent
	pend  *keyboard.KeyEvent
	sigCh chan os.Signal
}

// Open switches the terminal into raw mode and begins listening for
// SIGINT/SIGTERM. Call Restore (directly, or via the installed signal
// handler) before the process exits.
func Open() (*Terminal, error) {
	keys, err := keyboard.GetKeys(64)
	if err != nil {
		return nil, err
	}

	t := &Terminal{keys: keys}

	t.sigCh = make(chan os.Signal, 1)
	signal.Notify(t.sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if _, ok := <-t.sigCh; ok {
			t.Restore()
			os.Exit(-2)
		}
	}()

	return t, nil
}

// Restore returns the terminal to cooked mode. Safe to call more than once.
func (t *Terminal) Restore() {
	signal.Stop(t.sigCh)
	_ = keyboard.Close()
}

// KeyAvailable implements Console. It never blocks: a key event it takes off
// the channel is remembered in t.pend until ReadByte consumes it.
func (t *Terminal) KeyAvailable() bool {
	if t.pend != nil {
		return true
	}
	select {
	case ev, ok := <-t.keys:
		if !ok {
			return false
		}
		t.pend = &ev
		return true
	default:
		return false
	}
}

// ReadByte implements Console. It blocks until a key is available.
func (t *Terminal) ReadByte() (byte, error) {
	if t.pend != nil {
		ev := *t.pend
		t.pend = nil
		return keyByte(ev), nil
	}
	ev, ok := <-t.keys
	if !ok {
		return 0, os.ErrClosed
	}
	return keyByte(ev), nil
}

func keyByte(ev keyboard.KeyEvent) byte {
	if ev.Key == keyboard.KeyEnter {
		return '\n'
	}
	if ev.Key == keyboard.KeySpace {
		return ' '
	}
	if ev.Rune != 0 {
		return byte(ev.Rune)
	}
	return byte(ev.Key)
}

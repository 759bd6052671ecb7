// Command lc3 runs LC-3 object images on the emulator in internal/vm.
package main

import (
	"errors"
	"fmt"
	"os"

	"lc3/internal/host"
	"lc3/internal/vm"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "%s [image-file1] ...\n", os.Args[0])
		return 2
	}

	term, err := host.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open terminal:", err)
		return 1
	}
	defer term.Restore()

	m := vm.New(term)

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load image:", path)
			return 1
		}
		err = m.LoadImage(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load image:", path)
			return 1
		}
	}

	for m.Running {
		if err := m.Step(); err != nil {
			term.Restore()
			if errors.Is(err, vm.ErrFatalOpcode) {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			fmt.Fprintln(os.Stderr, "execution error:", err)
			return 1
		}
	}

	return 0
}

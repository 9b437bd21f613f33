//go:build windows

package base

import (
	"os"

	"golang.org/x/sys/windows"
)

// setupAnsiConsole opts the console into virtual terminal processing, which
// legacy conhost does not enable by default.
func setupAnsiConsole() bool {
	handle := windows.Handle(os.Stderr.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return windows.SetConsoleMode(handle, mode) == nil
}

package base

import (
	"os"
	"sync"
)

/***************************************
 * ANSI escape codes
 ***************************************/

const (
	ANSI_RESET = "\033[0m"
	ANSI_BOLD  = "\033[1m"
	ANSI_FAINT = "\033[2m"

	ANSI_FG0_CYAN    = "\033[36m"
	ANSI_FG0_BLUE    = "\033[34m"
	ANSI_FG0_MAGENTA = "\033[35m"
	ANSI_FG0_YELLOW  = "\033[33m"
	ANSI_FG1_GREEN   = "\033[92m"
	ANSI_FG1_RED     = "\033[91m"
	ANSI_FG1_WHITE   = "\033[97m"
)

var setupAnsiOnce sync.Once
var gAnsiEnabled bool

// EnableAnsiColors reports whether the attached terminal accepts ANSI
// escapes, enabling virtual terminal processing on the first call when the
// host requires it.
func EnableAnsiColors() bool {
	setupAnsiOnce.Do(func() {
		if fileInfo, err := os.Stderr.Stat(); err == nil {
			if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
				gAnsiEnabled = setupAnsiConsole()
			}
		}
	})
	return gAnsiEnabled
}

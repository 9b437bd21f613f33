package utils

import (
	"github.com/1llum1n4t1s/VStoVSC/internal/base"
)

/***************************************
 * Logging flags
 ***************************************/

// LogFlags controls the visible log level for every command.
type LogFlags struct {
	Quiet       bool
	Verbose     bool
	VeryVerbose bool
	Debug       bool
}

var GetLogFlags = NewGlobalCommandParsableFlags("logging options", &LogFlags{})

func (flags *LogFlags) Flags(cfv CommandFlagsVisitor) {
	cfv.Bool("q", "silence every message below warnings", &flags.Quiet)
	cfv.Bool("v", "print verbose messages", &flags.Verbose)
	cfv.Bool("V", "print very verbose messages", &flags.VeryVerbose)
	cfv.Bool("d", "print debug messages", &flags.Debug)
}

// Apply commits the parsed verbosity to the global logger. Most verbose
// flag wins when several are set.
func (flags *LogFlags) Apply() {
	switch {
	case flags.Debug:
		base.SetLogVisibleLevel(base.LOG_DEBUG)
	case flags.VeryVerbose:
		base.SetLogVisibleLevel(base.LOG_TRACE)
	case flags.Verbose:
		base.SetLogVisibleLevel(base.LOG_VERBOSE)
	case flags.Quiet:
		base.SetLogVisibleLevel(base.LOG_WARNING)
	}
}

package app

import (
	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

// WithCommandEnv wraps a command scope with the ambient process setup:
// console colors, optional profiling and final error reporting.
func WithCommandEnv(args []string, scope func(base.StringSet) error) error {
	base.EnableAnsiColors()

	defer utils.StartProfiling()()

	err := scope(base.NewStringSet(args...))
	if err != nil {
		base.LogForwardln("")
		base.LogError(utils.LogCommand, "%v", err)
	}
	return err
}

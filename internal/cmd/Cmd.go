package cmd

//lint:ignore ST1001 ignore dot imports warning
import . "github.com/1llum1n4t1s/VStoVSC/utils"

// InitCmd anchors this package so every command registers through its
// package-level initializers.
func InitCmd() {
}

var Help = NewCommand(
	"Misc",
	"help",
	"print the command list",
	OptionCommandRun(func(cc CommandContext) error {
		PrintCommandHelp()
		return nil
	}))

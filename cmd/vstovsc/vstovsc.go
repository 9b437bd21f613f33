package main

import (
	"os"

	vstovsc "github.com/1llum1n4t1s/VStoVSC"
)

func main() {
	if err := vstovsc.LaunchCommand(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

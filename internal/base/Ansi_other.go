//go:build !windows

package base

func setupAnsiConsole() bool {
	return true
}

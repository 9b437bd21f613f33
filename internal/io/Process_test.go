package io

import (
	"errors"
	"runtime"
	"testing"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

func posixShell(t *testing.T) utils.Filename {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	return utils.MakeFilename("/bin/sh")
}

func TestProcess_CaptureOutput(t *testing.T) {
	sh := posixShell(t)

	var lines []string
	err := RunProcess(sh, base.NewStringSet("-c", "echo one; echo two"),
		OptionProcessCaptureOutput,
		OptionProcessOutput(func(line string) error {
			lines = append(lines, line)
			return nil
		}))
	if err != nil {
		t.Fatalf("RunProcess: %v", err)
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("unexpected captured output %v", lines)
	}
}

func TestProcess_OutputCallbackAbort(t *testing.T) {
	sh := posixShell(t)

	abort := errors.New("enough")
	seen := 0
	err := RunProcess(sh, base.NewStringSet("-c", "echo one; echo two; echo three"),
		OptionProcessCaptureOutput,
		OptionProcessOutput(func(line string) error {
			seen++
			if line == "two" {
				return abort
			}
			return nil
		}))

	// the callback error must come back out, after the child was reaped
	if err != abort {
		t.Errorf("expected the callback error, got %v", err)
	}
	if seen != 2 {
		t.Errorf("expected the relay to stop after 2 lines, got %d", seen)
	}
}

func TestProcess_ExitCode(t *testing.T) {
	sh := posixShell(t)

	var exitCode int32
	err := RunProcess(sh, base.NewStringSet("-c", "exit 3"),
		OptionProcessCaptureOutput,
		OptionProcessExitCode(&exitCode))
	if err == nil {
		t.Fatal("expected an error for a non-zero exit")
	}
	if exitCode != 3 {
		t.Errorf("expected exit code 3, got %d", exitCode)
	}
}

func TestProcess_EnvironmentThreading(t *testing.T) {
	sh := posixShell(t)

	environment := NewProcessEnvironment()
	environment.Append("VSTOVSC_TEST_VALUE", "threaded")

	var lines []string
	err := RunProcess(sh, base.NewStringSet("-c", "echo $VSTOVSC_TEST_VALUE"),
		OptionProcessEnvironment(environment),
		OptionProcessCaptureOutput,
		OptionProcessOutput(func(line string) error {
			lines = append(lines, line)
			return nil
		}))
	if err != nil {
		t.Fatalf("RunProcess: %v", err)
	}
	if len(lines) != 1 || lines[0] != "threaded" {
		t.Errorf("expected the appended variable to reach the child, got %v", lines)
	}
}

package io

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

var LogProcess = base.NewLogCategory("Process")

/***************************************
 * Process options
 ***************************************/

type ProcessOptions struct {
	Environment   ProcessEnvironment
	OnOutput      func(string) error
	WorkingDir    utils.Directory
	CaptureOutput bool
	ExitCodeRef   *int32
}

type ProcessOptionFunc func(*ProcessOptions)

func (x *ProcessOptions) Init(options ...ProcessOptionFunc) {
	x.Environment = NewProcessEnvironment()
	for _, it := range options {
		it(x)
	}
}

func OptionProcessEnvironment(environment ProcessEnvironment) ProcessOptionFunc {
	return func(po *ProcessOptions) {
		po.Environment.Inherit(environment)
	}
}
func OptionProcessExitCode(exitCodeRef *int32) ProcessOptionFunc {
	return func(po *ProcessOptions) {
		po.ExitCodeRef = exitCodeRef
	}
}
func OptionProcessOutput(onOutput func(string) error) ProcessOptionFunc {
	return func(po *ProcessOptions) {
		po.OnOutput = onOutput
	}
}
func OptionProcessWorkingDir(value utils.Directory) ProcessOptionFunc {
	return func(po *ProcessOptions) {
		po.WorkingDir = value
	}
}
func OptionProcessCaptureOutput(po *ProcessOptions) {
	po.CaptureOutput = true
}

/***************************************
 * RunProcess
 ***************************************/

// RunProcess launches executable synchronously and waits for it to exit.
// Both output streams are merged when capture is requested; every captured
// line goes through OnOutput or falls back to the log.
func RunProcess(executable utils.Filename, arguments base.StringSet, userOptions ...ProcessOptionFunc) (err error) {
	var options ProcessOptions
	options.Init(userOptions...)

	cmd := exec.Command(executable.String(), arguments...)
	cmd.Env = append(os.Environ(), options.Environment.Export()...)

	if options.WorkingDir.Valid() {
		cmd.Dir = options.WorkingDir.String()
	}

	base.LogTrace(LogProcess, "run %q %v (cwd: %v)", executable, arguments, cmd.Dir)

	if options.CaptureOutput {
		var stdout io.ReadCloser
		if stdout, err = cmd.StdoutPipe(); err != nil {
			return err
		}
		defer stdout.Close()

		cmd.Stderr = cmd.Stdout

		if err = cmd.Start(); err != nil {
			return err
		}

		var relayErr error
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			if line := scanner.Text(); len(line) > 0 {
				if options.OnOutput != nil {
					if relayErr = options.OnOutput(line); relayErr != nil {
						break
					}
				} else {
					base.LogForwardln(line)
				}
			}
		}
		if relayErr == nil {
			relayErr = scanner.Err()
		}

		// the child must always be reaped, even when the relay aborted
		if relayErr != nil {
			cmd.Process.Kill()
		}
		err = cmd.Wait()
		if relayErr != nil {
			err = relayErr
		}
	} else {
		err = cmd.Run()
	}

	if exitCodeErr, ok := err.(*exec.ExitError); ok && options.ExitCodeRef != nil {
		*options.ExitCodeRef = int32(exitCodeErr.ExitCode())
	}

	return err
}

/***************************************
 * Process environment
 ***************************************/

type EnvironmentVar string

func (x EnvironmentVar) String() string { return string(x) }

type EnvironmentDefinition struct {
	Name   EnvironmentVar
	Values base.StringSet
}

func (x EnvironmentDefinition) String() string {
	if len(x.Values) == 0 {
		return x.Name.String()
	}

	sb := strings.Builder{}
	sb.WriteString(x.Name.String())
	sb.WriteRune('=')
	for i, it := range x.Values {
		if i > 0 {
			sb.WriteRune(';')
		}
		sb.WriteString(it)
	}
	return sb.String()
}

type ProcessEnvironment []EnvironmentDefinition

func NewProcessEnvironment() ProcessEnvironment {
	return ProcessEnvironment([]EnvironmentDefinition{})
}

func (x ProcessEnvironment) Export() []string {
	result := make([]string, len(x))
	for i, it := range x {
		result[i] = it.String()
	}
	return result
}
func (x ProcessEnvironment) IndexOf(name string) (int, bool) {
	for i, it := range x {
		if it.Name.String() == name {
			return i, true
		}
	}
	return len(x), false
}
func (x ProcessEnvironment) Get(name string) (base.StringSet, bool) {
	if i, ok := x.IndexOf(name); ok {
		return x[i].Values, true
	}
	return nil, false
}
func (x *ProcessEnvironment) Append(name string, values ...string) {
	if i, ok := x.IndexOf(name); ok {
		(*x)[i].Values.Append(values...)
	} else {
		*x = append(*x, EnvironmentDefinition{
			Name:   EnvironmentVar(name),
			Values: values,
		})
	}
}
func (x *ProcessEnvironment) Inherit(other ProcessEnvironment) {
	for _, it := range other {
		x.Append(it.Name.String(), it.Values...)
	}
}

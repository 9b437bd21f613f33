package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/internal/msbuild"
	"github.com/1llum1n4t1s/VStoVSC/internal/vscode"

	//lint:ignore ST1001 ignore dot imports warning
	. "github.com/1llum1n4t1s/VStoVSC/utils"
)

/***************************************
 * Generation flags
 ***************************************/

type VscodeFlags struct {
	Locator     msbuild.LocatorFlags
	Overwrite   bool
	NoEnvExport bool
}

var gVscodeFlags = &VscodeFlags{
	Locator: msbuild.DefaultLocatorFlags(),
}

func (flags *VscodeFlags) Flags(cfv CommandFlagsVisitor) {
	flags.Locator.Flags(cfv)
	cfv.Bool("Overwrite", "answer the directory overwrite confirmation without prompting", &flags.Overwrite)
	cfv.Bool("NoEnvExport", "do not export the resolved toolchain environment variables", &flags.NoEnvExport)
}

// resolveToolchain runs the tiered search once per invocation and applies the
// process-global environment export here, never inside the libraries.
func (flags *VscodeFlags) resolveToolchain() *msbuild.Toolchain {
	toolchain := msbuild.Resolve(flags.Locator)
	if toolchain != nil && !flags.NoEnvExport {
		toolchain.ExportEnvironment()
	}
	return toolchain
}

// confirm prompts on stdin unless -Overwrite already answered.
func (flags *VscodeFlags) confirm(prompt string) bool {
	if flags.Overwrite {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func checkSolutionArgument(solution Filename) error {
	switch strings.ToLower(solution.Ext()) {
	case ".sln", ".slnx":
	default:
		return base.MakeError("%q is not a solution file", solution)
	}
	if !solution.Exists() {
		return base.MakeError("solution file %q does not exist", solution)
	}
	return nil
}

/***************************************
 * Commands
 ***************************************/

var gGenerateSolution Filename

var Generate = NewCommand(
	"Configure",
	"generate",
	"emit tasks.json and launch.json next to a solution",
	OptionCommandArg("solution", "path to a .sln or .slnx solution file", &gGenerateSolution),
	OptionCommandParsableFlags("vscode_flags", "workspace generation options", gVscodeFlags),
	OptionCommandRun(func(cc CommandContext) error {
		if err := checkSolutionArgument(gGenerateSolution); err != nil {
			return err
		}

		base.LogClaim(vscode.LogVscode, "generating workspace for %q", gGenerateSolution)

		generator := vscode.NewGenerator(gVscodeFlags.resolveToolchain())
		return generator.GenerateAll(gGenerateSolution, gVscodeFlags.confirm)
	}))

var gTasksSolution Filename

var Tasks = NewCommand(
	"Configure",
	"tasks",
	"emit only tasks.json next to a solution",
	OptionCommandArg("solution", "path to a .sln or .slnx solution file", &gTasksSolution),
	OptionCommandParsableFlags("vscode_flags", "workspace generation options", gVscodeFlags),
	OptionCommandRun(func(cc CommandContext) error {
		if err := checkSolutionArgument(gTasksSolution); err != nil {
			return err
		}

		generator := vscode.NewGenerator(gVscodeFlags.resolveToolchain())
		return generator.Tasks(gTasksSolution.Dirname.Folder(".vscode"),
			gTasksSolution.TrimExt(), gTasksSolution.Basename)
	}))

var gLaunchSolution Filename

var Launch = NewCommand(
	"Configure",
	"launch",
	"emit only launch.json next to a solution",
	OptionCommandArg("solution", "path to a .sln or .slnx solution file", &gLaunchSolution),
	OptionCommandParsableFlags("vscode_flags", "workspace generation options", gVscodeFlags),
	OptionCommandRun(func(cc CommandContext) error {
		if err := checkSolutionArgument(gLaunchSolution); err != nil {
			return err
		}

		generator := vscode.NewGenerator(gVscodeFlags.resolveToolchain())
		return generator.Launch(gLaunchSolution.Dirname.Folder(".vscode"),
			gLaunchSolution, gLaunchSolution.TrimExt())
	}))

package cmd

import (
	"fmt"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/internal/msbuild"

	//lint:ignore ST1001 ignore dot imports warning
	. "github.com/1llum1n4t1s/VStoVSC/utils"
)

var Where = NewCommand(
	"Inspect",
	"where",
	"print the MSBuild toolchain resolved by the tiered search",
	OptionCommandParsableFlags("vscode_flags", "toolchain resolution options", gVscodeFlags),
	OptionCommandRun(func(cc CommandContext) error {
		toolchain := msbuild.Resolve(gVscodeFlags.Locator)
		if toolchain == nil {
			return base.MakeError("no MSBuild installation found")
		}

		base.LogForwardln(fmt.Sprintf("%s (major %d, %v tier)",
			toolchain.VersionLabel, toolchain.Major, toolchain.Tier))
		base.LogForwardln(toolchain.Executable.String())
		for _, it := range toolchain.Environment {
			base.LogForwardln(fmt.Sprintf("  %v", it))
		}
		return nil
	}))

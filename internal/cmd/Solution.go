package cmd

import (
	"fmt"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/internal/sln"

	//lint:ignore ST1001 ignore dot imports warning
	. "github.com/1llum1n4t1s/VStoVSC/utils"
)

var gProjectsSolution Filename

var Projects = NewCommand(
	"Inspect",
	"projects",
	"list the projects declared by a solution and their classification",
	OptionCommandArg("solution", "path to a .sln or .slnx solution file", &gProjectsSolution),
	OptionCommandRun(func(cc CommandContext) error {
		if err := checkSolutionArgument(gProjectsSolution); err != nil {
			return err
		}

		projects := sln.GetProjects(gProjectsSolution)
		for _, project := range projects {
			classification := "library"
			properties, err := sln.LoadProjectProperties(project.Path)
			if err != nil {
				classification = "unreadable"
			} else if properties.IsExecutable() {
				classification = fmt.Sprintf("launchable %v (%s)",
					sln.RuntimeKindFor(properties.TargetFramework), properties.TargetFramework)
			}

			base.LogForwardln(fmt.Sprintf("%-40s %-50s %s",
				project.Name, project.Path.Relative(gProjectsSolution.Dirname), classification))
		}

		base.LogVerbose(sln.LogSolution, "%d projects in %q", len(projects), gProjectsSolution)
		return nil
	}))

package vscode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/internal/msbuild"
	"github.com/1llum1n4t1s/VStoVSC/internal/sln"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

var LogVscode = base.NewLogCategory("Vscode")

const (
	tasksVersionTag  = "2.0.0"
	launchVersionTag = "0.2.0"

	problemMatcher = "$msCompile"
	verbosityFlag  = "/v:minimal"

	compoundLabel = "Launch All"

	// fallback task label fragment when no toolchain resolved
	genericToolchainLabel = "MSBuild"

	overwritePrompt = "The .vscode directory already exists. Delete it and regenerate from scratch?"
)

// ConfirmFunc answers a yes/no prompt. The generator blocks on it without a
// timeout; cancellation is the caller's concern.
type ConfirmFunc func(prompt string) bool

/***************************************
 * Generator
 ***************************************/

// Generator emits editor task and launch documents for one solution. The
// toolchain is resolved once by the caller and owned here for the
// generator's lifetime; nil is accepted and degrades to an empty command.
type Generator struct {
	toolchain *msbuild.Toolchain
}

func NewGenerator(toolchain *msbuild.Toolchain) *Generator {
	return &Generator{toolchain: toolchain}
}

func (x *Generator) versionLabel() string {
	if x.toolchain != nil {
		return x.toolchain.VersionLabel
	}
	return genericToolchainLabel
}
func (x *Generator) command() string {
	if x.toolchain != nil {
		return x.toolchain.Executable.String()
	}
	return ""
}
func (x *Generator) buildTaskLabel(configuration string) string {
	return fmt.Sprintf("Build %s (%s)", configuration, x.versionLabel())
}

/***************************************
 * tasks.json
 ***************************************/

func (x *Generator) taskDescriptor(label string, modeFlag, solutionFileName, detail string, isDefault bool) base.JsonMap {
	return base.JsonMap{
		"label":   label,
		"type":    "shell",
		"command": x.command(),
		"args":    []string{solutionFileName, modeFlag, verbosityFlag},
		"group": base.JsonMap{
			"kind":      "build",
			"isDefault": isDefault,
		},
		"presentation": base.JsonMap{
			"echo":             true,
			"reveal":           "always",
			"focus":            false,
			"panel":            "shared",
			"showReuseMessage": true,
			"clear":            false,
		},
		"problemMatcher": problemMatcher,
		"detail":         detail,
	}
}

// Tasks writes tasks.json with the four fixed build actions: Debug build
// (default), Release build, clean and rebuild.
func (x *Generator) Tasks(outputDir utils.Directory, solutionName, solutionFileName string) error {
	tasksFile := outputDir.File("tasks.json")
	base.LogVerbose(LogVscode, "generating build tasks in %q", tasksFile)

	tasks := []base.JsonMap{
		x.taskDescriptor(x.buildTaskLabel("Debug"), "/p:Configuration=Debug", solutionFileName,
			fmt.Sprintf("Build %s in the Debug configuration", solutionName), true),
		x.taskDescriptor(x.buildTaskLabel("Release"), "/p:Configuration=Release", solutionFileName,
			fmt.Sprintf("Build %s in the Release configuration", solutionName), false),
		x.taskDescriptor(fmt.Sprintf("Clean (%s)", x.versionLabel()), "/t:Clean", solutionFileName,
			fmt.Sprintf("Remove all build outputs of %s", solutionName), false),
		x.taskDescriptor(fmt.Sprintf("Rebuild (%s)", x.versionLabel()), "/t:Rebuild", solutionFileName,
			fmt.Sprintf("Clean and build %s from scratch", solutionName), false),
	}

	return utils.UFS.SafeCreate(tasksFile, func(w io.Writer) error {
		return base.JsonSerialize(base.JsonMap{
			"version": tasksVersionTag,
			"tasks":   tasks,
		}, w, base.OptionJsonPrettyPrint(true))
	})
}

/***************************************
 * launch.json
 ***************************************/

// launchConfiguration builds one launch descriptor, or nil when the project
// is not launchable or its file cannot be parsed.
func (x *Generator) launchConfiguration(solutionDir utils.Directory, project sln.ProjectReference) base.JsonMap {
	properties, err := sln.LoadProjectProperties(project.Path)
	if err != nil {
		base.LogVerbose(LogVscode, "skipping %q: %v", project.Name, err)
		return nil
	}
	if !properties.IsExecutable() {
		return nil
	}

	relativeDir := project.Path.Dirname.Relative(solutionDir)
	if relativeDir == "." {
		relativeDir = ""
	} else {
		relativeDir = utils.SanitizePath(relativeDir, '/') + "/"
	}

	kind := sln.RuntimeKindFor(properties.TargetFramework)

	programDir := "${workspaceFolder}/" + relativeDir + "bin/Debug/"
	if len(properties.TargetFramework) > 0 {
		programDir += properties.TargetFramework + "/"
	}

	return base.JsonMap{
		"name":          fmt.Sprintf("Launch %s", project.Name),
		"type":          kind.DebuggerType(),
		"request":       "launch",
		"preLaunchTask": x.buildTaskLabel("Debug"),
		"program":       programDir + project.Name + kind.BinaryExt(),
		"args":          []string{},
		"cwd":           "${workspaceFolder}/" + relativeDir,
		"console":       "internalConsole",
		"stopAtEntry":   false,
	}
}

// Launch writes launch.json with one configuration per launchable project,
// plus a compound entry when there are two or more. No file is written when
// nothing is launchable.
func (x *Generator) Launch(outputDir utils.Directory, solution utils.Filename, solutionName string) error {
	projects := sln.GetProjects(solution)

	var configurations []base.JsonMap
	var names []string
	for _, project := range projects {
		if configuration := x.launchConfiguration(solution.Dirname, project); configuration != nil {
			configurations = append(configurations, configuration)
			names = append(names, configuration["name"].(string))
		}
	}

	if len(configurations) == 0 {
		base.LogInfo(LogVscode, "%s declares no launchable project, skipping launch.json", solutionName)
		return nil
	}

	document := base.JsonMap{
		"version":        launchVersionTag,
		"configurations": configurations,
	}
	if len(configurations) >= 2 {
		document["compounds"] = []base.JsonMap{{
			"name":           compoundLabel,
			"configurations": names,
		}}
	}

	launchFile := outputDir.File("launch.json")
	base.LogVerbose(LogVscode, "generating %d launch configurations in %q", len(configurations), launchFile)

	return utils.UFS.SafeCreate(launchFile, func(w io.Writer) error {
		return base.JsonSerialize(document, w, base.OptionJsonPrettyPrint(true))
	})
}

/***************************************
 * GenerateAll
 ***************************************/

// GenerateAll emits both documents under `.vscode` beside the solution.
// When the directory pre-exists and confirm is supplied, a true answer wipes
// it first; otherwise existing foreign files are kept and only the files
// this generator owns are overwritten. Directory create/delete failures are
// fatal for the invocation.
func (x *Generator) GenerateAll(solution utils.Filename, confirm ConfirmFunc) error {
	outputDir := solution.Dirname.Folder(".vscode")
	lockFile := utils.MakeDirectory(os.TempDir()).
		File("vstovsc-" + base.StringFingerprint(strings.ToLower(outputDir.String())).ShortString() + ".lock")

	return utils.WithProcessSafeLock(lockFile, func() error {
		if outputDir.Exists() {
			if confirm != nil && confirm(overwritePrompt) {
				base.LogClaim(LogVscode, "regenerating %q from scratch", outputDir)
				if err := utils.UFS.RemoveAll(outputDir); err != nil {
					return err
				}
				if err := utils.UFS.Mkdir(outputDir); err != nil {
					return err
				}
			}
		} else if err := utils.UFS.Mkdir(outputDir); err != nil {
			return err
		}

		solutionName := solution.TrimExt()
		if err := x.Tasks(outputDir, solutionName, solution.Basename); err != nil {
			return err
		}
		return x.Launch(outputDir, solution, solutionName)
	})
}

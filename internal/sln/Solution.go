package sln

import (
	"encoding/xml"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	internal_io "github.com/1llum1n4t1s/VStoVSC/internal/io"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

var LogSolution = base.NewLogCategory("Solution")

/***************************************
 * Project references
 ***************************************/

// ProjectReference names one buildable project declared by a solution.
type ProjectReference struct {
	Name string
	Path utils.Filename
}

/***************************************
 * Solution parsing
 ***************************************/

// solutionFolderTypeGuid tags folder pseudo-projects in legacy solutions,
// which group entries in the IDE but reference nothing buildable.
const solutionFolderTypeGuid = "{2150E333-8FDC-42A3-9474-1A3956D46DE8}"

// conversionCommand migrates a legacy solution to the XML format in place.
var conversionCommand = utils.Filename{Basename: "dotnet"}

// GetProjects extracts the ordered project list from either solution format.
// It never fails: internal errors are logged and yield an empty list.
func GetProjects(solution utils.Filename) []ProjectReference {
	switch strings.ToLower(solution.Ext()) {
	case ".slnx":
		return parseModernSolution(solution)

	case ".sln":
		modern := solution.ReplaceExt(".slnx")
		if !modern.Exists() {
			convertSolution(solution)
		}
		if modern.Exists() {
			return parseModernSolution(modern)
		}
		return parseLegacySolution(solution)

	default:
		base.LogWarning(LogSolution, "unrecognized solution format %q", solution)
		return nil
	}
}

// convertSolution runs the external migration command in the solution's
// directory. A missing tool or non-zero exit is logged and ignored, the
// caller falls back to parsing the legacy format directly.
func convertSolution(solution utils.Filename) {
	base.LogVerbose(LogSolution, "converting %q to the XML solution format", solution)

	var exitCode int32
	err := internal_io.RunProcess(conversionCommand,
		base.NewStringSet("sln", solution.Basename, "migrate"),
		internal_io.OptionProcessWorkingDir(solution.Dirname),
		internal_io.OptionProcessCaptureOutput,
		internal_io.OptionProcessExitCode(&exitCode),
		internal_io.OptionProcessOutput(func(line string) error {
			base.LogDebug(LogSolution, "convert: %s", line)
			return nil
		}))
	if err != nil {
		base.LogWarning(LogSolution, "solution conversion failed (exit code %d): %v", exitCode, err)
	}
}

/***************************************
 * Modern format (.slnx)
 ***************************************/

func parseModernSolution(solution utils.Filename) (result []ProjectReference) {
	err := utils.UFS.Open(solution, func(rd io.Reader) error {
		decoder := xml.NewDecoder(rd)
		for {
			token, err := decoder.Token()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}

			element, ok := token.(xml.StartElement)
			if !ok || element.Name.Local != "Project" {
				continue
			}

			relativePath := ""
			for _, attr := range element.Attr {
				if attr.Name.Local == "Path" {
					relativePath = attr.Value
					break
				}
			}
			if len(relativePath) == 0 {
				continue // project elements without a path are skipped
			}

			projectFile := resolveProjectPath(solution.Dirname, relativePath)
			result = append(result, ProjectReference{
				Name: projectFile.TrimExt(),
				Path: projectFile,
			})
		}
	})
	if err != nil {
		base.LogError(LogSolution, "failed to parse %q: %v", solution, err)
		return nil
	}
	return
}

/***************************************
 * Legacy format (.sln)
 ***************************************/

// Project("{TYPE-GUID}") = "Name", "relative\path.csproj", "{PROJECT-GUID}"
var legacyProjectLine = regexp.MustCompile(
	`^Project\("(\{[0-9A-Fa-f-]+\})"\)\s*=\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*"\{[0-9A-Fa-f-]+\}"`)

func parseLegacySolution(solution utils.Filename) (result []ProjectReference) {
	err := utils.UFS.ReadLines(solution, func(line string) error {
		match := legacyProjectLine.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			return nil
		}

		typeGuid, name, relativePath := strings.ToUpper(match[1]), match[2], match[3]
		if typeGuid == solutionFolderTypeGuid {
			return nil // IDE folder, not a buildable project
		}
		if !strings.HasSuffix(strings.ToLower(relativePath), "proj") {
			return nil // solution items and websites carry no project file
		}

		result = append(result, ProjectReference{
			Name: name,
			Path: resolveProjectPath(solution.Dirname, relativePath),
		})
		return nil
	})
	if err != nil {
		base.LogError(LogSolution, "failed to parse %q: %v", solution, err)
		return nil
	}
	return
}

func resolveProjectPath(solutionDir utils.Directory, relativePath string) utils.Filename {
	return solutionDir.File(utils.SanitizePath(relativePath, os.PathSeparator))
}

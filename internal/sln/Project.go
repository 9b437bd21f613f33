package sln

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

/***************************************
 * Project classification
 ***************************************/

// executable output kinds recognized by the classifier, case-sensitive
var executableOutputTypes = base.NewStringSet("Exe", "WinExe")

type ProjectProperties struct {
	OutputType      string
	TargetFramework string
}

type projectPropertyGroup struct {
	OutputType       []string `xml:"OutputType"`
	TargetFramework  []string `xml:"TargetFramework"`
	TargetFrameworks []string `xml:"TargetFrameworks"`
}

type projectDocument struct {
	PropertyGroups []projectPropertyGroup `xml:"PropertyGroup"`
}

// LoadProjectProperties extracts the first OutputType and the effective
// target framework from a project file. Matching ignores the document's
// default namespace, which differs between SDK-style and legacy projects.
func LoadProjectProperties(project utils.Filename) (result ProjectProperties, err error) {
	err = utils.UFS.Open(project, func(rd io.Reader) error {
		var document projectDocument
		if er := xml.NewDecoder(rd).Decode(&document); er != nil {
			return er
		}

		for _, group := range document.PropertyGroups {
			if len(result.OutputType) == 0 && len(group.OutputType) > 0 {
				result.OutputType = strings.TrimSpace(group.OutputType[0])
			}
			if len(result.TargetFramework) == 0 {
				if len(group.TargetFramework) > 0 {
					result.TargetFramework = strings.TrimSpace(group.TargetFramework[0])
				} else if len(group.TargetFrameworks) > 0 {
					head, _, _ := strings.Cut(group.TargetFrameworks[0], ";")
					result.TargetFramework = strings.TrimSpace(head)
				}
			}
		}
		return nil
	})
	return
}

// IsExecutable reports whether the properties describe a directly
// launchable output.
func (x ProjectProperties) IsExecutable() bool {
	return executableOutputTypes.Contains(x.OutputType)
}

// IsExecutable reports whether the project builds a directly launchable
// output. Every failure path degrades to false, never to an error.
func IsExecutable(project utils.Filename) bool {
	properties, err := LoadProjectProperties(project)
	if err != nil {
		base.LogVerbose(LogSolution, "classify %q: %v", project, err)
		return false
	}
	return executableOutputTypes.Contains(properties.OutputType)
}

/***************************************
 * Runtime kind
 ***************************************/

type RuntimeKind int32

const (
	// RUNTIME_MANAGED is a framework-dependent deployment launched from a
	// portable assembly under the target-framework output directory.
	RUNTIME_MANAGED RuntimeKind = iota
	// RUNTIME_LEGACY is a .NET-Framework-style build with a native
	// executable directly under the configuration output directory.
	RUNTIME_LEGACY
	// RUNTIME_PORTABLE is a modern framework producing an executable apphost
	// (e.g. a desktop-targeted build).
	RUNTIME_PORTABLE
)

func (x RuntimeKind) String() string {
	switch x {
	case RUNTIME_MANAGED:
		return "managed"
	case RUNTIME_LEGACY:
		return "legacy"
	case RUNTIME_PORTABLE:
		return "portable"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}

// DebuggerType yields the launch configuration type understood by the
// editor's debugger for this runtime kind.
func (x RuntimeKind) DebuggerType() string {
	switch x {
	case RUNTIME_MANAGED, RUNTIME_PORTABLE:
		return "coreclr"
	case RUNTIME_LEGACY:
		return "clr"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}

func (x RuntimeKind) BinaryExt() string {
	if x == RUNTIME_MANAGED {
		return ".dll"
	}
	return ".exe"
}

const (
	modernFrameworkPrefix  = "net"
	legacyFrameworkPrefix  = "net4"
	desktopFrameworkMarker = "-windows"
)

// RuntimeKindFor classifies a target framework moniker. An empty moniker is
// treated as a legacy .NET-Framework-style project for path building.
func RuntimeKindFor(targetFramework string) RuntimeKind {
	if len(targetFramework) == 0 || strings.HasPrefix(targetFramework, legacyFrameworkPrefix) {
		return RUNTIME_LEGACY
	}
	if strings.HasPrefix(targetFramework, modernFrameworkPrefix) &&
		!strings.Contains(targetFramework, desktopFrameworkMarker) {
		return RUNTIME_MANAGED
	}
	return RUNTIME_PORTABLE
}

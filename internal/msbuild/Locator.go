package msbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	internal_io "github.com/1llum1n4t1s/VStoVSC/internal/io"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

var LogMSBuild = base.NewLogCategory("MSBuild")

/***************************************
 * Discovery tiers
 ***************************************/

type DiscoveryTier int32

const (
	DISCOVERY_REGISTERED DiscoveryTier = iota
	DISCOVERY_ANY_REGISTERED
	DISCOVERY_SCAN
)

func (x DiscoveryTier) String() string {
	switch x {
	case DISCOVERY_REGISTERED:
		return "Registered"
	case DISCOVERY_ANY_REGISTERED:
		return "AnyRegistered"
	case DISCOVERY_SCAN:
		return "Scan"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}

// DiscoveryTypeVisualStudioSetup marks registration records owned by the IDE
// installer, as opposed to standalone SDK registrations.
const DiscoveryTypeVisualStudioSetup = "VisualStudioSetup"

/***************************************
 * Registered instances
 ***************************************/

// Instance is one build-tool registration record on the host.
type Instance struct {
	InstallationName    string
	InstallationPath    string
	InstallationVersion string
	ProductPath         string
	DiscoveryType       string
}

func (x Instance) Major() int {
	return MajorFromVersion(x.InstallationVersion)
}

// InstanceQueryFunc enumerates registered installations. The production
// implementation shells out to vswhere; tests inject fixed records.
type InstanceQueryFunc func() ([]Instance, error)

// QueryRegisteredInstances asks vswhere for every product carrying MSBuild
// and decodes its JSON report.
func QueryRegisteredInstances() ([]Instance, error) {
	vswhere := defaultVsWherePath()
	if !vswhere.Exists() {
		return nil, base.MakeError("vswhere not found at %q", vswhere)
	}

	arguments := base.NewStringSet(
		"-format", "json",
		"-utf8",
		"-products", "*",
		"-requires", "Microsoft.Component.MSBuild",
	)

	output := strings.Builder{}
	err := internal_io.RunProcess(vswhere, arguments,
		internal_io.OptionProcessCaptureOutput,
		internal_io.OptionProcessOutput(func(line string) error {
			output.WriteString(line)
			output.WriteRune('\n')
			return nil
		}))
	if err != nil {
		return nil, err
	}

	var records []struct {
		InstallationName    string `json:"installationName"`
		InstallationPath    string `json:"installationPath"`
		InstallationVersion string `json:"installationVersion"`
	}
	if err := base.JsonUnmarshal(&records, []byte(output.String())); err != nil {
		return nil, err
	}

	instances := make([]Instance, len(records))
	for i, it := range records {
		// vswhere only enumerates products owned by the Visual Studio
		// installer, so every record it returns carries this discovery type.
		// Other types only appear through an injected InstanceQueryFunc.
		instances[i] = Instance{
			InstallationName:    it.InstallationName,
			InstallationPath:    it.InstallationPath,
			InstallationVersion: it.InstallationVersion,
			ProductPath:         filepath.Join(it.InstallationPath, "MSBuild", "Current", "Bin"),
			DiscoveryType:       DiscoveryTypeVisualStudioSetup,
		}
	}
	return instances, nil
}

func defaultVsWherePath() utils.Filename {
	programFiles := os.Getenv("ProgramFiles(x86)")
	if len(programFiles) == 0 {
		programFiles = `C:\Program Files (x86)`
	}
	return utils.MakeDirectory(programFiles).Folder("Microsoft Visual Studio", "Installer").File("vswhere.exe")
}

/***************************************
 * Toolchain
 ***************************************/

type Toolchain struct {
	InstallDir   utils.Directory
	Executable   utils.Filename
	VersionLabel string
	Major        int
	Tier         DiscoveryTier
	Environment  internal_io.ProcessEnvironment
}

var exportEnvironmentOnce sync.Once

// ExportEnvironment mutates the process environment with the resolved
// variables, at most once per process. The library itself never calls this;
// command construction threads Environment explicitly instead.
func (x *Toolchain) ExportEnvironment() {
	exportEnvironmentOnce.Do(func() {
		for _, it := range x.Environment {
			os.Setenv(it.Name.String(), it.Values.Join(";"))
		}
	})
}

func makeToolchain(installDir utils.Directory, executable utils.Filename, major int, tier DiscoveryTier) *Toolchain {
	environment := internal_io.NewProcessEnvironment()
	environment.Append("VSINSTALLDIR", installDir.String())
	environment.Append("VSToolsPath",
		installDir.Folder("MSBuild", "Microsoft", "VisualStudio", fmt.Sprintf("v%d.0", major)).String())

	return &Toolchain{
		InstallDir:   installDir,
		Executable:   executable,
		VersionLabel: ProductLabel(major),
		Major:        major,
		Tier:         tier,
		Environment:  environment,
	}
}

/***************************************
 * Locator flags
 ***************************************/

type LocatorFlags struct {
	MinimumMajor int
	ScanRoot     utils.Directory
}

func DefaultLocatorFlags() LocatorFlags {
	return LocatorFlags{
		MinimumMajor: 16,
		ScanRoot:     utils.MakeDirectory(`C:\Program Files\Microsoft Visual Studio`),
	}
}

func (flags *LocatorFlags) Flags(cfv utils.CommandFlagsVisitor) {
	cfv.Int("MinimumMajor", "lowest toolset major version accepted from registered instances", &flags.MinimumMajor)
	cfv.Variable("ScanRoot", "base install directory probed when no instance is registered", &flags.ScanRoot)
}

/***************************************
 * Resolution
 ***************************************/

// resolveStrategy is one fallback tier: nil toolchain means "nothing found
// here, try the next tier"; errors are demoted to the same meaning.
type resolveStrategy struct {
	Tier    DiscoveryTier
	Resolve func(flags LocatorFlags, query InstanceQueryFunc) (*Toolchain, error)
}

var resolveStrategies = []resolveStrategy{
	{DISCOVERY_REGISTERED, resolveRegistered},
	{DISCOVERY_ANY_REGISTERED, resolveAnyRegistered},
	{DISCOVERY_SCAN, resolveScan},
}

// Resolve finds a usable MSBuild through the tiered fallback search. Returns
// nil when every tier comes up empty; resolution failure is never fatal.
func Resolve(flags LocatorFlags) *Toolchain {
	return ResolveWith(flags, QueryRegisteredInstances)
}

func ResolveWith(flags LocatorFlags, query InstanceQueryFunc) *Toolchain {
	for _, strategy := range resolveStrategies {
		toolchain, err := strategy.Resolve(flags, query)
		if err != nil {
			base.LogVerbose(LogMSBuild, "%v tier failed: %v", strategy.Tier, err)
			continue
		}
		if toolchain != nil {
			base.LogClaim(LogMSBuild, "found %v (%v tier) in %q",
				toolchain.VersionLabel, toolchain.Tier, toolchain.InstallDir)
			return toolchain
		}
	}

	base.LogWarning(LogMSBuild, "no MSBuild installation found, generated tasks will carry an empty command")
	return nil
}

func resolveRegistered(flags LocatorFlags, query InstanceQueryFunc) (*Toolchain, error) {
	instances, err := query()
	if err != nil {
		return nil, err
	}

	var selected *Instance
	for i, it := range instances {
		if it.DiscoveryType != DiscoveryTypeVisualStudioSetup {
			continue
		}
		if it.Major() < flags.MinimumMajor {
			continue
		}
		if selected == nil || CompareVersions(it.InstallationVersion, selected.InstallationVersion) > 0 {
			selected = &instances[i]
		}
	}

	if selected == nil {
		return nil, nil
	}
	return registerInstance(*selected, DISCOVERY_REGISTERED), nil
}

func resolveAnyRegistered(flags LocatorFlags, query InstanceQueryFunc) (*Toolchain, error) {
	instances, err := query()
	if err != nil {
		return nil, err
	}

	var selected *Instance
	for i, it := range instances {
		if selected == nil || CompareVersions(it.InstallationVersion, selected.InstallationVersion) > 0 {
			selected = &instances[i]
		}
	}

	if selected == nil {
		return nil, nil
	}
	return registerInstance(*selected, DISCOVERY_ANY_REGISTERED), nil
}

func registerInstance(instance Instance, tier DiscoveryTier) *Toolchain {
	executable := utils.MakeFilename(instance.ProductPath)
	if !executable.Exists() {
		// the record points at a directory, append the conventional name
		executable = utils.MakeDirectory(instance.ProductPath).File(MSBuildExecutableName)
	}

	base.LogVerbose(LogMSBuild, "register instance %q (version %v)",
		instance.InstallationName, instance.InstallationVersion)

	return makeToolchain(utils.MakeDirectory(instance.InstallationPath), executable, instance.Major(), tier)
}

// scanEditions lists product edition folder names probed under each
// version-named install directory, most capable first.
var scanEditions = [...]string{
	"Enterprise",
	"Professional",
	"Community",
	"BuildTools",
	"Preview",
}

func resolveScan(flags LocatorFlags, _ InstanceQueryFunc) (*Toolchain, error) {
	if !flags.ScanRoot.Exists() {
		return nil, nil
	}

	versionDirs := flags.ScanRoot.Directories()
	sort.Slice(versionDirs, func(i, j int) bool {
		return versionDirs[i].Basename() > versionDirs[j].Basename()
	})

	for _, versionDir := range versionDirs {
		major, ok := MajorFromVersionDir(versionDir.Basename())
		if !ok {
			major = DefaultMajorVersion
			base.LogWarning(LogMSBuild, "unknown version directory %q, assuming major version %d",
				versionDir.Basename(), major)
		}

		for _, edition := range scanEditions {
			installDir := versionDir.Folder(edition)
			executable := installDir.File("MSBuild", "Current", "Bin", MSBuildExecutableName)
			if executable.Exists() {
				return makeToolchain(installDir, executable, major, DISCOVERY_SCAN), nil
			}
		}
	}

	return nil, nil
}

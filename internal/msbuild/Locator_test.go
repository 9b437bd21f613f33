package msbuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/1llum1n4t1s/VStoVSC/utils"
)

func queryFixed(instances ...Instance) InstanceQueryFunc {
	return func() ([]Instance, error) { return instances, nil }
}

func queryFailing() ([]Instance, error) {
	return nil, os.ErrNotExist
}

func registeredInstance(version, path string) Instance {
	return Instance{
		InstallationName:    "VisualStudio/" + version,
		InstallationPath:    path,
		InstallationVersion: version,
		ProductPath:         filepath.Join(path, "MSBuild", "Current", "Bin"),
		DiscoveryType:       DiscoveryTypeVisualStudioSetup,
	}
}

func testFlags() LocatorFlags {
	return LocatorFlags{
		MinimumMajor: 16,
		ScanRoot:     utils.Directory{}, // invalid, the scan tier finds nothing
	}
}

func TestLocator_RegisteredTierPicksNewest(t *testing.T) {
	query := queryFixed(
		registeredInstance("16.11.34", `C:\VS\2019`),
		registeredInstance("17.9.5", `C:\VS\2022`),
		registeredInstance("17.2.0", `C:\VS\2022b`),
	)

	toolchain := ResolveWith(testFlags(), query)
	if toolchain == nil {
		t.Fatal("ResolveWith: expected a toolchain")
	}
	if toolchain.Tier != DISCOVERY_REGISTERED {
		t.Errorf("expected %v tier, got %v", DISCOVERY_REGISTERED, toolchain.Tier)
	}
	if toolchain.Major != 17 {
		t.Errorf("expected major 17, got %d", toolchain.Major)
	}
	if toolchain.VersionLabel != "Visual Studio 2022" {
		t.Errorf("unexpected version label %q", toolchain.VersionLabel)
	}
}

func TestLocator_MinimumMajorFallsThrough(t *testing.T) {
	// every registration is below the minimum: the first tier rejects them
	// all, the second accepts any version
	query := queryFixed(registeredInstance("15.9.28307", `C:\VS\2017`))

	toolchain := ResolveWith(testFlags(), query)
	if toolchain == nil {
		t.Fatal("ResolveWith: expected a toolchain")
	}
	if toolchain.Tier != DISCOVERY_ANY_REGISTERED {
		t.Errorf("expected %v tier, got %v", DISCOVERY_ANY_REGISTERED, toolchain.Tier)
	}
	if toolchain.Major != 15 {
		t.Errorf("expected major 15, got %d", toolchain.Major)
	}
}

func TestLocator_NonSetupRecordsSkippedByFirstTier(t *testing.T) {
	instance := registeredInstance("17.9.5", `C:\VS\2022`)
	instance.DiscoveryType = "StandaloneSdk"

	toolchain := ResolveWith(testFlags(), queryFixed(instance))
	if toolchain == nil {
		t.Fatal("ResolveWith: expected a toolchain")
	}
	if toolchain.Tier != DISCOVERY_ANY_REGISTERED {
		t.Errorf("expected %v tier, got %v", DISCOVERY_ANY_REGISTERED, toolchain.Tier)
	}
}

func fakeInstall(t *testing.T, root, year, edition string) {
	t.Helper()
	bin := filepath.Join(root, year, edition, "MSBuild", "Current", "Bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bin, MSBuildExecutableName), []byte("stub"), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestLocator_ScanTier(t *testing.T) {
	root := t.TempDir()
	fakeInstall(t, root, "2019", "Enterprise")
	fakeInstall(t, root, "2022", "Community")

	flags := LocatorFlags{MinimumMajor: 16, ScanRoot: utils.MakeDirectory(root)}

	toolchain := ResolveWith(flags, queryFailing)
	if toolchain == nil {
		t.Fatal("ResolveWith: expected a toolchain from the scan tier")
	}
	if toolchain.Tier != DISCOVERY_SCAN {
		t.Errorf("expected %v tier, got %v", DISCOVERY_SCAN, toolchain.Tier)
	}
	if toolchain.Major != 17 {
		t.Errorf("expected the newest version directory (major 17), got %d", toolchain.Major)
	}
	if !toolchain.Executable.Exists() {
		t.Errorf("expected a probed executable, got %q", toolchain.Executable)
	}
}

func TestLocator_ScanTierEditionPriority(t *testing.T) {
	root := t.TempDir()
	fakeInstall(t, root, "2022", "Community")
	fakeInstall(t, root, "2022", "Enterprise")

	flags := LocatorFlags{MinimumMajor: 16, ScanRoot: utils.MakeDirectory(root)}

	toolchain := ResolveWith(flags, queryFailing)
	if toolchain == nil {
		t.Fatal("ResolveWith: expected a toolchain")
	}
	if toolchain.InstallDir.Basename() != "Enterprise" {
		t.Errorf("expected the Enterprise edition, got %q", toolchain.InstallDir.Basename())
	}
}

func TestLocator_ScanTierUnknownYearAssumesDefault(t *testing.T) {
	root := t.TempDir()
	fakeInstall(t, root, "2099", "Community")

	flags := LocatorFlags{MinimumMajor: 16, ScanRoot: utils.MakeDirectory(root)}

	toolchain := ResolveWith(flags, queryFailing)
	if toolchain == nil {
		t.Fatal("ResolveWith: expected a toolchain")
	}
	if toolchain.Major != DefaultMajorVersion {
		t.Errorf("expected assumed major %d, got %d", DefaultMajorVersion, toolchain.Major)
	}
}

func TestLocator_NothingFound(t *testing.T) {
	if toolchain := ResolveWith(testFlags(), queryFailing); toolchain != nil {
		t.Errorf("expected nil toolchain, got %+v", toolchain)
	}
}

func TestLocator_EnvironmentIsDataNotSideEffect(t *testing.T) {
	query := queryFixed(registeredInstance("17.9.5", `C:\VS\2022`))

	toolchain := ResolveWith(testFlags(), query)
	if toolchain == nil {
		t.Fatal("ResolveWith: expected a toolchain")
	}

	if _, ok := toolchain.Environment.Get("VSINSTALLDIR"); !ok {
		t.Error("expected VSINSTALLDIR in the toolchain environment")
	}
	if _, ok := toolchain.Environment.Get("VSToolsPath"); !ok {
		t.Error("expected VSToolsPath in the toolchain environment")
	}

	// resolution alone must not touch the process environment
	if value := os.Getenv("VSINSTALLDIR"); len(value) != 0 {
		t.Errorf("VSINSTALLDIR leaked into the process environment: %q", value)
	}
}

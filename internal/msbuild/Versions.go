package msbuild

import (
	"strconv"
	"strings"
)

// MSBuildExecutableName is the conventional executable filename appended to
// registration records that point at a directory instead of a file.
const MSBuildExecutableName = "MSBuild.exe"

// DefaultMajorVersion is assumed when a version-named install directory is
// not present in the year table. This can misreport the toolchain identity
// in generated labels, but a wrong label beats no toolchain at all.
const DefaultMajorVersion = 17

/***************************************
 * Version tables
 ***************************************/

var yearToMajorVersion = map[string]int{
	"2022": 17,
	"2019": 16,
	"2017": 15,
}

var majorVersionToProduct = map[int]string{
	17: "Visual Studio 2022",
	16: "Visual Studio 2019",
	15: "Visual Studio 2017",
}

// MajorFromVersionDir maps a year-style install directory name ("2022") to
// its toolset major version (17). Unmapped names report ok=false.
func MajorFromVersionDir(name string) (major int, ok bool) {
	major, ok = yearToMajorVersion[name]
	return
}

// ProductLabel resolves a human-readable product name for a major version.
func ProductLabel(major int) string {
	if label, ok := majorVersionToProduct[major]; ok {
		return label
	}
	return "Visual Studio (unknown version)"
}

// MajorFromVersion extracts the leading component of a dotted version string
// ("17.9.34622.32" yields 17), or 0 when it does not parse.
func MajorFromVersion(version string) int {
	head, _, _ := strings.Cut(version, ".")
	if major, err := strconv.Atoi(head); err == nil {
		return major
	}
	return 0
}

// CompareVersions orders two dotted version strings numerically, segment by
// segment. Missing segments count as zero.
func CompareVersions(a, b string) int {
	lhs := strings.Split(a, ".")
	rhs := strings.Split(b, ".")

	for i := 0; i < len(lhs) || i < len(rhs); i++ {
		var x, y int
		if i < len(lhs) {
			x, _ = strconv.Atoi(lhs[i])
		}
		if i < len(rhs) {
			y, _ = strconv.Atoi(rhs[i])
		}
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

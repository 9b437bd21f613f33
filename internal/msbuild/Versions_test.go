package msbuild

import (
	"testing"
)

func TestVersions_MajorFromVersionDir(t *testing.T) {
	tests := []struct {
		name  string
		major int
		ok    bool
	}{
		{"2022", 17, true},
		{"2019", 16, true},
		{"2017", 15, true},
		{"2026", 0, false},
		{"Preview", 0, false},
	}
	for _, it := range tests {
		major, ok := MajorFromVersionDir(it.name)
		if ok != it.ok || (ok && major != it.major) {
			t.Errorf("MajorFromVersionDir(%q): expected (%d, %v), got (%d, %v)",
				it.name, it.major, it.ok, major, ok)
		}
	}
}

func TestVersions_ProductLabel(t *testing.T) {
	if label := ProductLabel(17); label != "Visual Studio 2022" {
		t.Errorf("ProductLabel(17): got %q", label)
	}
	if label := ProductLabel(42); label != "Visual Studio (unknown version)" {
		t.Errorf("ProductLabel(42): got %q", label)
	}
}

func TestVersions_MajorFromVersion(t *testing.T) {
	if major := MajorFromVersion("17.9.34622.32"); major != 17 {
		t.Errorf("MajorFromVersion: expected 17, got %d", major)
	}
	if major := MajorFromVersion("garbage"); major != 0 {
		t.Errorf("MajorFromVersion: expected 0, got %d", major)
	}
}

func TestVersions_CompareVersions(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"17.0", "16.11", 1},
		{"16.11", "17.0", -1},
		{"17.9.1", "17.9.1", 0},
		{"17.10", "17.9", 1}, // numeric, not lexicographic
		{"17", "17.0.0", 0},  // missing segments count as zero
		{"17.0.1", "17", 1},
	}
	for _, it := range tests {
		if got := CompareVersions(it.a, it.b); got != it.expected {
			t.Errorf("CompareVersions(%q, %q): expected %d, got %d", it.a, it.b, it.expected, got)
		}
	}
}

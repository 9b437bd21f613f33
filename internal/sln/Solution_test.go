package sln

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/1llum1n4t1s/VStoVSC/utils"
)

const legacySolutionFixture = `Microsoft Visual Studio Solution File, Format Version 12.00
# Visual Studio Version 17
Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "Solution Items", "Solution Items", "{AAAAAAAA-0000-0000-0000-000000000001}"
EndProject
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "src\App\App.csproj", "{AAAAAAAA-0000-0000-0000-000000000002}"
EndProject
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Docs", "readme.txt", "{AAAAAAAA-0000-0000-0000-000000000003}"
EndProject
Project("{9A19103F-16F7-4668-BE54-9A1E7A4F7556}") = "Lib", "src\Lib\Lib.csproj", "{AAAAAAAA-0000-0000-0000-000000000004}"
EndProject
Global
EndGlobal
`

const modernSolutionFixture = `<Solution>
  <Folder Name="/src/">
    <Project Path="src/App/App.csproj" />
    <Project Path="src/Lib/Lib.vbproj" />
  </Folder>
  <Project />
</Solution>
`

func writeSolution(t *testing.T, dir, name, content string) utils.Filename {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return utils.MakeFilename(path)
}

func TestSolution_ParseLegacy(t *testing.T) {
	dir := t.TempDir()
	solution := writeSolution(t, dir, "Sample.sln", legacySolutionFixture)

	projects := parseLegacySolution(solution)
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d: %v", len(projects), projects)
	}

	// declaration order is preserved, folders and loose items are dropped
	if projects[0].Name != "App" || projects[1].Name != "Lib" {
		t.Errorf("unexpected projects %q, %q", projects[0].Name, projects[1].Name)
	}

	expected := filepath.Join(dir, "src", "App", "App.csproj")
	if projects[0].Path.String() != expected {
		t.Errorf("expected resolved path %q, got %q", expected, projects[0].Path)
	}
}

func TestSolution_ParseModern(t *testing.T) {
	dir := t.TempDir()
	solution := writeSolution(t, dir, "Sample.slnx", modernSolutionFixture)

	projects := GetProjects(solution)
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d: %v", len(projects), projects)
	}

	// the modern format carries no display name, it falls back to the file
	if projects[0].Name != "App" || projects[1].Name != "Lib" {
		t.Errorf("unexpected projects %q, %q", projects[0].Name, projects[1].Name)
	}

	expected := filepath.Join(dir, "src", "Lib", "Lib.vbproj")
	if projects[1].Path.String() != expected {
		t.Errorf("expected resolved path %q, got %q", expected, projects[1].Path)
	}
}

func TestSolution_SiblingSlnxPreferred(t *testing.T) {
	// when both formats exist side by side the XML one wins and no
	// conversion runs
	dir := t.TempDir()
	legacy := writeSolution(t, dir, "Sample.sln", legacySolutionFixture)
	writeSolution(t, dir, "Sample.slnx", `<Solution>
  <Project Path="Modern/Modern.csproj" />
</Solution>
`)

	projects := GetProjects(legacy)
	if len(projects) != 1 || projects[0].Name != "Modern" {
		t.Fatalf("expected the sibling .slnx to win, got %v", projects)
	}
}

func TestSolution_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	bogus := writeSolution(t, dir, "Sample.txt", "not a solution")

	if projects := GetProjects(bogus); projects != nil {
		t.Errorf("expected no projects for an unknown format, got %v", projects)
	}
}

func TestSolution_MissingModernSolution(t *testing.T) {
	missing := utils.MakeFilename(filepath.Join(t.TempDir(), "Nope.slnx"))
	if projects := GetProjects(missing); projects != nil {
		t.Errorf("expected no projects for a missing solution, got %v", projects)
	}
}

package utils

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestUFS_SanitizePath(t *testing.T) {
	if got := SanitizePath(`foo\bar/baz`, '/'); got != "foo/bar/baz" {
		t.Errorf("SanitizePath: expected %q, got %q", "foo/bar/baz", got)
	}
	if got := SanitizePath("unchanged", '/'); got != "unchanged" {
		t.Errorf("SanitizePath: expected %q, got %q", "unchanged", got)
	}
}

func TestUFS_Filename(t *testing.T) {
	file := MakeFilename(filepath.Join(t.TempDir(), "Sample.sln"))
	if file.Ext() != ".sln" {
		t.Errorf("Ext: expected %q, got %q", ".sln", file.Ext())
	}
	if file.TrimExt() != "Sample" {
		t.Errorf("TrimExt: expected %q, got %q", "Sample", file.TrimExt())
	}
	if modern := file.ReplaceExt(".slnx"); modern.Basename != "Sample.slnx" {
		t.Errorf("ReplaceExt: expected %q, got %q", "Sample.slnx", modern.Basename)
	}
}

func TestUFS_BareFilename(t *testing.T) {
	// a filename without a directory resolves through PATH when executed
	bare := Filename{Basename: "dotnet"}
	if bare.String() != "dotnet" {
		t.Errorf("String: expected %q, got %q", "dotnet", bare.String())
	}
}

func TestUFS_SafeCreate(t *testing.T) {
	dst := MakeDirectory(t.TempDir()).File("out.json")

	write := func(payload string) func(io.Writer) error {
		return func(w io.Writer) error {
			_, err := w.Write([]byte(payload))
			return err
		}
	}

	if err := UFS.SafeCreate(dst, write("hello")); err != nil {
		t.Fatalf("SafeCreate: %v", err)
	}
	first, err := os.Stat(dst.String())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	// identical payload: the file must not be rewritten
	if err := UFS.SafeCreate(dst, write("hello")); err != nil {
		t.Fatalf("SafeCreate: %v", err)
	}
	second, err := os.Stat(dst.String())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !first.ModTime().Equal(second.ModTime()) {
		t.Error("SafeCreate: unchanged content should not rewrite the file")
	}

	// new payload: the file must be replaced
	if err := UFS.SafeCreate(dst, write("world")); err != nil {
		t.Fatalf("SafeCreate: %v", err)
	}
	content, err := os.ReadFile(dst.String())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "world" {
		t.Errorf("SafeCreate: expected %q, got %q", "world", content)
	}
}

func TestUFS_ReadLines(t *testing.T) {
	src := MakeDirectory(t.TempDir()).File("lines.txt")
	if err := os.WriteFile(src.String(), []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var lines []string
	if err := UFS.ReadLines(src, func(line string) error {
		lines = append(lines, line)
		return nil
	}); err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 3 || lines[1] != "two" {
		t.Errorf("ReadLines: unexpected result %v", lines)
	}
}

package utils

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djherbis/times"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
)

var LogUFS = base.NewLogCategory("UFS")

/***************************************
 * Path helpers
 ***************************************/

// SanitizePath rewrites every path separator in pathname to sep.
func SanitizePath(pathname string, sep rune) string {
	const separators = "\\/"
	if !strings.ContainsAny(pathname, separators) {
		return pathname
	}

	sb := strings.Builder{}
	sb.Grow(len(pathname))
	for _, ch := range pathname {
		if strings.ContainsRune(separators, ch) {
			sb.WriteRune(sep)
		} else {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func cleanPath(in string) string {
	in = filepath.Clean(SanitizePath(in, os.PathSeparator))
	if abs, err := filepath.Abs(in); err == nil {
		return abs
	}
	return in
}

/***************************************
 * Directory
 ***************************************/

type Directory struct {
	Path string
}

func MakeDirectory(str string) Directory {
	return Directory{Path: cleanPath(str)}
}

func (d Directory) Valid() bool { return len(d.Path) > 0 }
func (d Directory) Basename() string {
	return filepath.Base(d.Path)
}
func (d Directory) Parent() Directory {
	return Directory{Path: filepath.Dir(d.Path)}
}
func (d Directory) Folder(name ...string) Directory {
	return Directory{Path: filepath.Join(append([]string{d.Path}, name...)...)}
}
func (d Directory) File(name ...string) Filename {
	joined := filepath.Join(append([]string{d.Path}, name...)...)
	return Filename{
		Dirname:  Directory{Path: filepath.Dir(joined)},
		Basename: filepath.Base(joined),
	}
}
func (d Directory) Relative(to Directory) string {
	if rel, err := filepath.Rel(to.Path, d.Path); err == nil {
		return rel
	}
	return d.Path
}
func (d Directory) Equals(o Directory) bool {
	return d.Path == o.Path
}
func (d Directory) Exists() bool {
	if info, err := os.Stat(d.Path); err == nil {
		return info.IsDir()
	}
	return false
}
func (d Directory) Directories() (result []Directory) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return
	}
	for _, it := range entries {
		if it.IsDir() {
			result = append(result, d.Folder(it.Name()))
		}
	}
	return
}
func (d Directory) String() string {
	return d.Path
}
func (d *Directory) Set(str string) error {
	*d = MakeDirectory(str)
	return nil
}

/***************************************
 * Filename
 ***************************************/

type Filename struct {
	Dirname  Directory
	Basename string
}

func MakeFilename(str string) Filename {
	cleaned := cleanPath(str)
	return Filename{
		Dirname:  Directory{Path: filepath.Dir(cleaned)},
		Basename: filepath.Base(cleaned),
	}
}

func (f Filename) Valid() bool { return len(f.Basename) > 0 }
func (f Filename) Ext() string {
	return filepath.Ext(f.Basename)
}
func (f Filename) TrimExt() string {
	return strings.TrimSuffix(f.Basename, f.Ext())
}
func (f Filename) ReplaceExt(ext string) Filename {
	return Filename{
		Dirname:  f.Dirname,
		Basename: f.TrimExt() + ext,
	}
}
func (f Filename) Relative(to Directory) string {
	if rel, err := filepath.Rel(to.Path, f.String()); err == nil {
		return rel
	}
	return f.String()
}
func (f Filename) Equals(o Filename) bool {
	return f.Basename == o.Basename && f.Dirname.Equals(o.Dirname)
}
func (f Filename) Exists() bool {
	if info, err := os.Stat(f.String()); err == nil {
		return !info.IsDir()
	}
	return false
}
func (f Filename) String() string {
	if !f.Dirname.Valid() {
		return f.Basename
	}
	return filepath.Join(f.Dirname.Path, f.Basename)
}
func (f *Filename) Set(str string) error {
	*f = MakeFilename(str)
	return nil
}

/***************************************
 * UFS front-end
 ***************************************/

var UFS UFSFrontEnd = make_ufs_frontend()

type UFSFrontEnd struct {
	Executable Filename
	Working    Directory
}

func make_ufs_frontend() (ufs UFSFrontEnd) {
	if executable, err := os.Executable(); err == nil {
		ufs.Executable = MakeFilename(executable)
	}
	if wd, err := os.Getwd(); err == nil {
		ufs.Working = MakeDirectory(wd)
	}
	return
}

func (ufs *UFSFrontEnd) File(str string) Filename {
	return MakeFilename(str)
}
func (ufs *UFSFrontEnd) Dir(str string) Directory {
	return MakeDirectory(str)
}
func (ufs *UFSFrontEnd) Mkdir(dst Directory) error {
	if err := os.MkdirAll(dst.Path, 0755); err != nil {
		base.LogWarning(LogUFS, "mkdir: caught %v while trying to create %v", err, dst)
		return err
	}
	return nil
}
func (ufs *UFSFrontEnd) Remove(dst Filename) error {
	return os.Remove(dst.String())
}
func (ufs *UFSFrontEnd) RemoveAll(dst Directory) error {
	return os.RemoveAll(dst.Path)
}
func (ufs *UFSFrontEnd) MTime(src Filename) time.Time {
	if spec, err := times.Stat(src.String()); err == nil {
		return spec.ModTime()
	}
	return time.Time{}
}

func (ufs *UFSFrontEnd) CreateFile(dst Filename, write func(*os.File) error) error {
	if err := ufs.Mkdir(dst.Dirname); err != nil {
		return err
	}
	outp, err := os.Create(dst.String())
	if err != nil {
		return err
	}
	if err = write(outp); err == nil {
		err = outp.Close()
	} else {
		outp.Close()
	}
	return err
}
func (ufs *UFSFrontEnd) Create(dst Filename, write func(io.Writer) error) error {
	return ufs.CreateFile(dst, func(f *os.File) error {
		buffered := bufio.NewWriter(f)
		if err := write(buffered); err != nil {
			return err
		}
		return buffered.Flush()
	})
}

// SafeCreate renders the whole payload in memory first, then skips the write
// entirely when the destination already holds the exact same content, else
// commits through a temporary file and a rename.
func (ufs *UFSFrontEnd) SafeCreate(dst Filename, write func(io.Writer) error) error {
	buf := bytes.Buffer{}
	if err := write(&buf); err != nil {
		return err
	}

	fingerprint := base.BytesFingerprint(buf.Bytes())
	if previous, err := os.ReadFile(dst.String()); err == nil {
		if base.BytesFingerprint(previous).Equals(fingerprint) {
			base.LogTrace(LogUFS, "safe-create: %v is unchanged (%v)", dst, fingerprint.ShortString())
			return nil
		}
	}

	if err := ufs.Mkdir(dst.Dirname); err != nil {
		return err
	}

	tmpFilename := dst.ReplaceExt(dst.Ext() + ".tmp")
	defer os.Remove(tmpFilename.String())

	err := os.WriteFile(tmpFilename.String(), buf.Bytes(), 0644)
	if err == nil {
		if err = os.Rename(tmpFilename.String(), dst.String()); err != nil {
			base.LogWarning(LogUFS, "safe-create: %v", err)
		} else {
			base.LogDebug(LogUFS, "safe-create: wrote %v (%v)", dst, fingerprint.ShortString())
		}
	}
	return err
}

func (ufs *UFSFrontEnd) OpenFile(src Filename, read func(*os.File) error) error {
	inp, err := os.Open(src.String())
	if err != nil {
		return err
	}
	defer inp.Close()
	return read(inp)
}
func (ufs *UFSFrontEnd) Open(src Filename, read func(io.Reader) error) error {
	return ufs.OpenFile(src, func(f *os.File) error {
		return read(bufio.NewReader(f))
	})
}
func (ufs *UFSFrontEnd) ReadAll(src Filename) ([]byte, error) {
	return os.ReadFile(src.String())
}
func (ufs *UFSFrontEnd) ReadLines(src Filename, line func(string) error) error {
	return ufs.OpenFile(src, func(f *os.File) error {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if err := line(scanner.Text()); err != nil {
				return err
			}
		}
		return scanner.Err()
	})
}

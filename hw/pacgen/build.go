package pacgen

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/regmap"
	"github.com/chaseadam/gateware/hw/svd"
)

// Load reads and validates the description at path.
func Load(fsys afero.Fs, path string) (*regmap.Device, error) {
	buf, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &StageError{Stage: StageRead, Path: path, Err: err}
	}
	sdev, err := svd.DecodeBytes(buf)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Path: path, Err: err}
	}
	dev, err := regmap.Build(sdev)
	if err != nil {
		return nil, &StageError{Stage: StageModel, Path: path, Err: err}
	}
	return dev, nil
}

func generateFile(fsys afero.Fs, in string, opts Options) ([]byte, error) {
	dev, err := Load(fsys, in)
	if err != nil {
		return nil, err
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(in)
	}
	return Generate(dev, opts)
}

// Build generates the access package described by in and writes it to out.
// Nothing is written if any stage fails, nor if out is already up to date,
// in which case changed is false.
func Build(fsys afero.Fs, in, out string, opts Options) (changed bool, err error) {
	src, err := generateFile(fsys, in, opts)
	if err != nil {
		return false, err
	}

	old, err := afero.ReadFile(fsys, out)
	if err == nil && bytes.Equal(old, src) {
		log.ModGen.DebugZ("up to date").String("out", out).End()
		return false, nil
	}

	if err := writeFile(fsys, out, src); err != nil {
		return false, &StageError{Stage: StageWrite, Path: out, Err: err}
	}
	log.ModGen.InfoZ("wrote").String("out", out).Int("bytes", len(src)).End()
	return true, nil
}

// writeFile replaces path with data through a temporary file, so that a
// failed write never leaves a truncated artifact behind.
func writeFile(fsys afero.Fs, path string, data []byte) error {
	f, err := afero.TempFile(fsys, filepath.Dir(path), ".pacgen-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		fsys.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		fsys.Remove(tmp)
		return err
	}
	if err := fsys.Chmod(tmp, 0o644); err != nil {
		fsys.Remove(tmp)
		return err
	}
	if err := fsys.Rename(tmp, path); err != nil {
		fsys.Remove(tmp)
		return err
	}
	return nil
}

// Check reports the difference between the checked-in artifact out and what
// Build would write. An empty diff means out is up to date. A missing out
// file counts as empty.
func Check(fsys afero.Fs, in, out string, opts Options) (string, error) {
	src, err := generateFile(fsys, in, opts)
	if err != nil {
		return "", err
	}

	old, err := afero.ReadFile(fsys, out)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", &StageError{Stage: StageRead, Path: out, Err: err}
	}
	if bytes.Equal(old, src) {
		return "", nil
	}
	return lineDiff(string(old), string(src)), nil
}

// lineDiff returns a line-oriented diff of a and b, lines prefixed with
// '-', '+' or ' '.
func lineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

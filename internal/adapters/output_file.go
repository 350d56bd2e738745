package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vspcatalog/internal/core"
	"vspcatalog/internal/ports"
	"vspcatalog/internal/types"
)

// OutputFileAdapter writes the external text formats. Relative file names
// resolve against Dir.
type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

func (a OutputFileAdapter) WriteDes(filename string, snapshot types.Snapshot, applyOrder bool) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(core.FormatDes(snapshot, applyOrder)), 0644)
}

func (a OutputFileAdapter) WriteXDDM(filename string, snapshot types.Snapshot) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(core.FormatXDDM(snapshot)), 0644)
}

// WriteScript writes the tool script; its result files go to workDir, or
// to Dir when workDir is empty.
func (a OutputFileAdapter) WriteScript(filename string, snapshot types.Snapshot, workDir string) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	if workDir == "" {
		workDir = a.Dir
	}
	return os.WriteFile(path, []byte(core.FormatScript(snapshot, workDir)), 0644)
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if filename == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output file name is empty")
	}
	path := filename
	if !filepath.IsAbs(path) {
		if a.Dir == "" {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("output directory is empty")
		}
		path = filepath.Join(a.Dir, filename)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return path, nil
}

var _ ports.OutputPort = OutputFileAdapter{}

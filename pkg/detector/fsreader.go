package detector

import (
	"io"
	"io/fs"
)

// FSReader provides filesystem operations abstracted over fs.FS. It
// satisfies detectors.FSReader, so detectors and tests never touch the real
// filesystem directly.
type FSReader struct {
	fsys fs.FS
}

// NewFSReader creates a new FSReader for the given filesystem.
func NewFSReader(fsys fs.FS) *FSReader {
	return &FSReader{fsys: fsys}
}

// Open implements fs.FS by delegating to the wrapped filesystem.
func (r *FSReader) Open(name string) (fs.File, error) {
	return r.fsys.Open(name)
}

// Has checks if a file exists at the given path.
func (r *FSReader) Has(path string) bool {
	_, err := fs.Stat(r.fsys, path)
	return err == nil
}

// Read reads a file and returns its content as a string, empty on error.
func (r *FSReader) Read(path string) string {
	f, err := r.fsys.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return ""
	}
	return string(data)
}

// DirExists checks if a directory exists at the given path.
func (r *FSReader) DirExists(path string) bool {
	fi, err := fs.Stat(r.fsys, path)
	return err == nil && fi.IsDir()
}

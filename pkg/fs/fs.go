package fs

import (
	"os"
)

// LocalFileSystem implements file access against the local disk.
// Reads are whole-file and performed exactly once per call; callers own
// retry decisions (the checksum workflow never retries).
type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Reads the entire file into memory. The returned buffer is owned by
// the caller and never shared.
func (lfs *LocalFileSystem) ReadFile(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return contents, nil
}

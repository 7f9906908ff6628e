//go:build !unix

package mmspan

import (
	"fmt"
	"os"
	"path/filepath"
)

// openRegion reads the whole file when mmap is not available.
func openRegion(path string) (*Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Region{data: data, path: path}, nil
}

// createRegion sizes the file and keeps a heap copy of its bytes; Flush
// writes them back.
func createRegion(path string, size int) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if truncErr := f.Truncate(int64(size)); truncErr != nil {
		f.Close()
		return nil, fmt.Errorf("truncate to region size: %w", truncErr)
	}
	if closeErr := f.Close(); closeErr != nil {
		return nil, closeErr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := &Region{data: data, path: path, writable: true}
	r.sync = func() error { return writeFileAtomic(r.path, r.data) }
	return r, nil
}

// writeFileAtomic replaces the file at path via temp file + rename so a crash
// mid-flush never leaves a torn region on disk.
func writeFileAtomic(path string, buf []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".bufkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

//go:build unix

package mmspan

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// openRegion maps the file at path read-only.
func openRegion(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Region{data: []byte{}, path: path}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmspan: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &Region{
		data:  data,
		path:  path,
		unmap: unmapFunc(data),
	}, nil
}

// createRegion sizes the file at path and maps it read-write.
func createRegion(path string, size int) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.Truncate(int64(size)); err != nil {
		return nil, fmt.Errorf("truncate to region size: %w", err)
	}
	if size == 0 {
		return &Region{data: []byte{}, path: path, writable: true}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &Region{
		data:     data,
		path:     path,
		writable: true,
		unmap:    unmapFunc(data),
		sync: func() error {
			return unix.Msync(data, unix.MS_SYNC)
		},
	}, nil
}

// unmapFunc releases the mapping. Double-unmap surfaces as EINVAL and is
// treated as a no-op for callers.
func unmapFunc(data []byte) func() error {
	return func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
}

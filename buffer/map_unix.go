//go:build unix

package buffer

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Map opens path as a read-only, file-backed buffer using mmap. Detach
// unmaps the region. An empty file yields an attached buffer of length 0
// without a mapping.
func Map(path string) (*ArrayBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return &ArrayBuffer{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	Logger().Debug("mapped file buffer", zap.String("path", path), zap.Int64("size", size))

	return &ArrayBuffer{
		data: data,
		release: func(d []byte) {
			if err := unix.Munmap(d); err != nil {
				Logger().Warn("munmap failed", zap.Error(err))
			}
		},
	}, nil
}

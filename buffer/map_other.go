//go:build !unix

package buffer

import (
	"fmt"
	"os"
)

// Map opens path as a file-backed buffer. Without mmap support the file
// contents are copied into the heap; Detach drops the copy.
func Map(path string) (*ArrayBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return FromBytes(data), nil
}

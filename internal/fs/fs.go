package fs

import (
	"os"
	"path/filepath"
)

// DirSize returns the total size in bytes of the tree rooted at path. A
// regular file reports its own size.
func DirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

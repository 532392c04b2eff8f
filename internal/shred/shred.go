// Package shred provides irrecoverable deletion of files and of previously
// trashed items. A regular file is destroyed by overwriting its contents
// with zero bytes, syncing the overwrite to storage, and only then removing
// the directory entry, so that the data is gone before the name is.
package shred

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// chunkSize is the size of a single overwrite write. The final chunk may
// run past the original length; the loop stops once the original length is
// covered.
const chunkSize = 4096

// Shreddable is the capability shared by every destroy target. Callers need
// not distinguish a raw path from a trashed item; both destroy their target
// irrecoverably.
type Shreddable interface {
	// Shred destroys the target. Any failure aborts the operation and is
	// surfaced as-is; nothing is retried internally.
	Shred() error
}

// Path is a filesystem path targeted for shredding. Shredding a path that
// names a directory is a no-op: directory handling belongs to the caller,
// not here.
type Path string

// Shred overwrites the file's contents with zeros, syncs the overwrite to
// persistent storage, and removes the file. A missing regular file is an
// error; a directory target (including a missing path with a trailing
// separator) succeeds without touching anything.
func (p Path) Shred() error {
	path := string(p)

	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if isDirPath(path) {
				return nil
			}
			return NewError("shred", path, ErrTargetMissing)
		}
		return NewError("shred", path, err)
	}

	// Directories carry no overwritable content. Same for sockets, pipes
	// and devices: only regular files are shredded here.
	if !fi.Mode().IsRegular() {
		return nil
	}

	return p.overwrite(fi.Size())
}

// overwrite rewrites the file in chunkSize blocks of zero bytes, flushes
// the buffered writes, forces them to the device, and then unlinks the
// file. The ordering is the point: the unlink must not happen until the
// zeros are durably on storage.
func (p Path) overwrite(size int64) error {
	path := string(p)

	// Must not create, must not truncate; the current length is the
	// erasure target.
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return NewError("open", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	zeros := make([]byte, chunkSize)

	var written int64
	for written < size {
		if _, err := w.Write(zeros); err != nil {
			return NewError("overwrite", path, err)
		}
		written += chunkSize
	}

	if err := w.Flush(); err != nil {
		return NewError("flush", path, err)
	}

	// Flush alone only makes the zeros visible to readers; Sync pushes
	// them through to the device.
	if err := f.Sync(); err != nil {
		return NewError("sync", path, err)
	}

	if err := os.Remove(path); err != nil {
		return NewError("remove", path, err)
	}

	return nil
}

// Tree overwrites every regular file under root, then removes the remaining
// structure. Any walk or entry failure aborts before anything structural is
// removed: a partially shredded tree stays in place rather than being torn
// down around unshredded content.
func Tree(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return NewError("walk", path, err)
		}
		// Skip the walk root; it is removed structurally below.
		if path == root {
			return nil
		}
		// Nested directories are a no-op here and fall to RemoveAll.
		return Path(path).Shred()
	})
	if err != nil {
		return err
	}

	if err := os.RemoveAll(root); err != nil {
		return NewError("remove", root, err)
	}
	return nil
}

// isDirPath reports whether a (possibly nonexistent) path names a
// directory by its spelling alone.
func isDirPath(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator))
}

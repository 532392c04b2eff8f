package shred

import (
	"os"
	"path/filepath"
	"strings"
)

// TrashedItem identifies an entry in an XDG-style trash directory by its
// trashinfo record. The record's location encodes everything needed to find
// the stored content: two levels up is the trash root, and the record's
// file stem is the name under which the content lives in the root's "files"
// subdirectory.
type TrashedItem struct {
	// ID is the path of the item's trashinfo record, e.g.
	// ~/.local/share/Trash/info/report.txt.trashinfo
	ID string

	// Name is the original base name of the item, used for display and
	// selection only
	Name string
}

// Shred resolves the item's stored content, destroys it, and removes the
// trashinfo record. Regular files are overwritten before removal; directory
// trees have every regular file within them overwritten, then the tree and
// the record are removed structurally.
func (t TrashedItem) Shred() error {
	// Crawl up two directories, e.g.
	// ~/.local/share/Trash/info/foo.trashinfo -> ~/.local/share/Trash
	infoDir, err := parentOf(t.ID)
	if err != nil {
		return err
	}
	trashRoot, err := parentOf(infoDir)
	if err != nil {
		return err
	}

	storedName, err := stemOf(t.ID)
	if err != nil {
		return err
	}

	content := filepath.Join(trashRoot, "files", storedName)

	fi, statErr := os.Stat(content)
	if statErr != nil && !os.IsNotExist(statErr) {
		return NewError("resolve", content, statErr)
	}

	// Directory: content destruction strictly precedes both structural
	// removals, and a failed destruction keeps the record in place.
	if statErr == nil && fi.IsDir() {
		if err := Tree(content); err != nil {
			return err
		}
		if err := os.Remove(t.ID); err != nil {
			return NewError("remove", t.ID, err)
		}
		return nil
	}

	// Regular file, or content already gone. An absent content location is
	// tolerated: the record is stale bookkeeping and is removed regardless.
	var shredErr error
	if statErr == nil {
		shredErr = Path(content).Shred()
	}
	rmErr := os.Remove(t.ID)
	if shredErr != nil {
		// The record removal was still attempted, but the content
		// failure is the one that matters.
		return shredErr
	}
	if rmErr != nil {
		return NewError("remove", t.ID, rmErr)
	}
	return nil
}

// parentOf returns the parent directory of path, failing when there is no
// parent component left to take. filepath.Dir never errors, so "no parent"
// is detected as the fixed point of Dir; this rejects ".", the root, and a
// bare filename on the second application, all before any filesystem call.
func parentOf(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == path {
		return "", NewError("resolve", path, ErrNoParent)
	}
	return dir, nil
}

// stemOf returns the base name of path without its final extension.
func stemOf(path string) (string, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", NewError("resolve", path, ErrNoName)
	}
	return stem, nil
}

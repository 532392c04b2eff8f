package trash

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/babarot/saidan/internal/config"
	"github.com/babarot/saidan/internal/fs"
	"github.com/babarot/saidan/internal/trash/xdg"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Manager scans every trash directory visible to the current user and
// hands out the items stored in them. Listing is read-only; destruction is
// the shred package's job.
type Manager struct {
	dirs []string
	opts FilterOptions
}

// NewManager creates a Manager over all discovered trash directories
func NewManager(history config.History) (*Manager, error) {
	dirs, err := xdg.FindAllTrashDirectories()
	if err != nil {
		return nil, fmt.Errorf("failed to discover trash directories: %w", err)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no trash directory found")
	}

	slog.Debug("trash directories discovered", "dirs", dirs)

	return &Manager{
		dirs: dirs,
		opts: FilterOptions{
			Include: history.Include,
			Exclude: history.Exclude,
		},
	}, nil
}

// Dirs returns the trash directories this manager scans
func (m *Manager) Dirs() []string {
	return m.dirs
}

// List returns all items from all trash directories, newest first. A
// directory that cannot be read is skipped with a warning; listing fails
// only when every directory is unreadable.
func (m *Manager) List() ([]*Item, error) {
	var mu sync.Mutex
	var all []*Item
	var failed int

	var g errgroup.Group
	for _, dir := range m.dirs {
		g.Go(func() error {
			items, err := listDirectory(dir)
			if err != nil {
				slog.Warn("failed to list trash directory", "dir", dir, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			all = append(all, items...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if failed == len(m.dirs) {
		return nil, fmt.Errorf("all trash directories failed to list")
	}

	all = Filter(all, m.opts)

	sort.Slice(all, func(i, j int) bool {
		return all[i].DeletedAt.After(all[j].DeletedAt)
	})

	return all, nil
}

// Lookup resolves stored names to items. Every requested name must match
// at least one item or the lookup fails.
func (m *Manager) Lookup(names []string) ([]*Item, error) {
	all, err := m.List()
	if err != nil {
		return nil, err
	}

	matched := lo.Filter(all, func(item *Item, _ int) bool {
		return lo.Contains(names, item.Name)
	})

	missing := lo.Reject(names, func(name string, _ int) bool {
		return lo.ContainsBy(matched, func(item *Item) bool {
			return item.Name == name
		})
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("not found in trash: %s", strings.Join(missing, ", "))
	}

	return matched, nil
}

// listDirectory reads one trash directory. Entries without a valid
// trashinfo record are skipped: shredding keys off the record, so an
// orphaned content file is invisible here.
func listDirectory(dir string) ([]*Item, error) {
	filesDir := filepath.Join(dir, "files")
	infoDir := filepath.Join(dir, "info")

	entries, err := os.ReadDir(filesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read files directory: %w", err)
	}

	var items []*Item
	for _, entry := range entries {
		infoPath := filepath.Join(infoDir, entry.Name()+".trashinfo")
		info, err := xdg.LoadInfo(infoPath)
		if err != nil {
			slog.Debug("skipping entry without valid trashinfo", "entry", entry.Name(), "error", err)
			continue
		}
		info.MountRoot = filepath.Dir(dir)

		trashPath := filepath.Join(filesDir, entry.Name())
		fi, err := os.Stat(trashPath)
		if err != nil {
			continue
		}

		// A directory inode's own stat size says nothing about the tree;
		// report the total content size instead.
		size := fi.Size()
		if fi.IsDir() {
			if treeSize, err := fs.DirSize(trashPath); err == nil {
				size = treeSize
			}
		}

		items = append(items, &Item{
			Name:         entry.Name(),
			OriginalPath: info.GetAbsolutePath(),
			InfoPath:     infoPath,
			TrashPath:    trashPath,
			DeletedAt:    info.DeletionDate,
			Size:         size,
			IsDir:        fi.IsDir(),
		})
	}

	return items, nil
}
